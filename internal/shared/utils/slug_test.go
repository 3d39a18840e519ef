package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSlug(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain name", input: "John Doe", want: "john-doe"},
		{name: "mixed case", input: "Paula Poundstone", want: "paula-poundstone"},
		{name: "punctuation run", input: "P.J. O'Rourke", want: "p-j-o-rourke"},
		{name: "unicode folding", input: "Mo Rocca café", want: "mo-rocca-cafe"},
		{name: "surrounding whitespace", input: "  Chicago, IL  ", want: "chicago-il"},
		{name: "already canonical", input: "john-doe", want: "john-doe"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeSlug(tc.input))
		})
	}
}

func TestNormalizeSlugIdempotent(t *testing.T) {
	inputs := []string{
		"John Doe",
		"P.J. O'Rourke",
		"UPPER CASE",
		"  spaced   out  ",
		"déjà-vu",
		"already-canonical-slug",
		"",
	}

	for _, input := range inputs {
		once := NormalizeSlug(input)
		twice := NormalizeSlug(once)
		assert.Equal(t, once, twice, "normalize must be idempotent for %q", input)
	}
}

func TestIsCanonicalSlug(t *testing.T) {
	assert.True(t, IsCanonicalSlug("john-doe"))
	assert.False(t, IsCanonicalSlug("John Doe"))
	assert.False(t, IsCanonicalSlug("john-doe "))
}
