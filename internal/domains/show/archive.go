package show

import (
	"fmt"
	"strings"
	"time"
)

// The external archive changed URL schemes on 2006-01-07. Shows on or after
// the threshold use the query-parameter format; earlier shows live under the
// legacy per-year directory layout.
const (
	archiveCurrentPrefix = "http://www.npr.org/programs/wait-wait-dont-tell-me/archive?date="
	archiveLegacyPrefix  = "http://www.npr.org/programs/waitwait/archrndwn"
	archiveLegacySuffix  = ".waitwait.html"
)

var archiveThreshold = BroadcastDate{Year: 2006, Month: 1, Day: 7}

// ResolveArchiveURL maps a confirmed broadcast date to its permanent archive
// link. Pure string derivation, no I/O; callers must have verified the date
// exists before resolving.
func ResolveArchiveURL(d BroadcastDate) string {
	t := d.Time(time.UTC)

	if !d.Before(archiveThreshold) {
		return archiveCurrentPrefix + t.Format("01-02-2006")
	}

	return fmt.Sprintf("%s/%d/%s/%s%s",
		archiveLegacyPrefix,
		d.Year,
		strings.ToLower(t.Format("Jan")),
		t.Format("060102"),
		archiveLegacySuffix,
	)
}
