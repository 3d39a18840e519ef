package show

import (
	"fmt"
	"time"

	"panelshow-stats/internal/domains/roster"
)

// BroadcastDate is the calendar date a show aired, the primary key for show
// lookups. A valid value is always a real Gregorian date.
type BroadcastDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// NewBroadcastDate builds a date and reports whether the triple is a real
// calendar date. time.Date normalizes overflow (Feb 30 becomes Mar 1/2), so a
// round trip that changes any component means the input was invalid.
func NewBroadcastDate(year, month, day int) (BroadcastDate, bool) {
	d := BroadcastDate{Year: year, Month: month, Day: day}
	return d, d.Valid()
}

func (d BroadcastDate) Valid() bool {
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return t.Year() == d.Year && int(t.Month()) == d.Month && t.Day() == d.Day
}

// Time pins the date to midnight in the given location.
func (d BroadcastDate) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}

// DateOf truncates a moment to its calendar day.
func DateOf(t time.Time) BroadcastDate {
	return BroadcastDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

func (d BroadcastDate) Before(other BroadcastDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d BroadcastDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Show is one broadcast with its venue and ordered participant lists. Shows
// are immutable in this layer: rows are validated once at the repository
// boundary and discarded at response completion.
type Show struct {
	ID          int64           `json:"id"`
	Date        BroadcastDate   `json:"date"`
	BestOf      bool            `json:"best_of"`
	Repeat      bool            `json:"repeat"`
	Location    *roster.Entity  `json:"location,omitempty"`
	Host        *roster.Entity  `json:"host,omitempty"`
	Scorekeeper *roster.Entity  `json:"scorekeeper,omitempty"`
	Panelists   []roster.Entity `json:"panelists"`
	Guests      []roster.Entity `json:"guests"`
}

// YearShows groups one year's shows in the storage collaborator's natural
// chronological order.
type YearShows struct {
	Year  int    `json:"year"`
	Shows []Show `json:"shows"`
}

// RecentWindow is the derived date range used to select recent shows,
// inclusive on both ends. It is request-scoped and never persisted.
type RecentWindow struct {
	From BroadcastDate `json:"from"`
	To   BroadcastDate `json:"to"`
}

func (w RecentWindow) Contains(d BroadcastDate) bool {
	return !d.Before(w.From) && !w.To.Before(d)
}
