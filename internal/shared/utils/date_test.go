package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLooseDate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		year  int
		month int
		day   int
	}{
		{name: "iso", input: "2020-06-15", year: 2020, month: 6, day: 15},
		{name: "us slash", input: "06/15/2020", year: 2020, month: 6, day: 15},
		{name: "long form", input: "June 15, 2020", year: 2020, month: 6, day: 15},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, ok := ParseLooseDate(tc.input)
			require.True(t, ok)
			assert.Equal(t, tc.year, parsed.Year())
			assert.Equal(t, tc.month, int(parsed.Month()))
			assert.Equal(t, tc.day, parsed.Day())
		})
	}
}

func TestParseLooseDateRejectsNonDates(t *testing.T) {
	for _, input := range []string{"not-a-date", "", "showtime"} {
		_, ok := ParseLooseDate(input)
		assert.False(t, ok, "input %q must not parse", input)
	}
}
