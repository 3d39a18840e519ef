package utils

import (
	"time"

	"github.com/araddon/dateparse"
)

// ParseLooseDate parses free-text date input: ISO ("2020-06-15"), US slash
// ("06/15/2020"), long form ("June 15, 2020") and the other layouts dateparse
// understands. The boolean is false when the text is not a date; callers
// redirect rather than surface an error in that case.
func ParseLooseDate(text string) (time.Time, bool) {
	parsed, err := dateparse.ParseAny(text)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
