package show

import "context"

// Outcome is the closed result set for hierarchical date resolution. The
// router's branching over these three cases is exhaustive and testable
// without driving control flow through errors.
type Outcome int

const (
	// OutcomeFound means data exists at the requested specificity.
	OutcomeFound Outcome = iota
	// OutcomeFallback means no data at this level; the caller redirects
	// exactly one level up the hierarchy.
	OutcomeFallback
	// OutcomeInvalid means the components do not form a real calendar date.
	OutcomeInvalid
)

// Service is the resolution layer over the show repository. Every method is a
// stateless single-pass computation; nothing is cached across requests.
type Service interface {
	// Years lists available show years, most recent first.
	Years(ctx context.Context) ([]int, error)

	// ResolveDay resolves a Year-Month-Day scope. Invalid triple ->
	// OutcomeInvalid (fall back to the year); no show -> OutcomeFallback
	// (fall back to the month).
	ResolveDay(ctx context.Context, year, month, day int) (*Show, Outcome, error)

	// ResolveMonth resolves a Year-Month scope; empty months fall back to
	// the year.
	ResolveMonth(ctx context.Context, year, month int) ([]Show, Outcome, error)

	// ResolveYear resolves a Year scope into its months with data; a year
	// without data falls back to the show index.
	ResolveYear(ctx context.Context, year int) ([]int, Outcome, error)

	// ResolveYearAll resolves the Year-All scope (every show of the year);
	// empty years fall back to the year's month view.
	ResolveYearAll(ctx context.Context, year int) ([]Show, Outcome, error)

	// AllShows assembles every year's shows, years ascending, shows in
	// chronological order within each year. One storage round trip per year.
	AllShows(ctx context.Context) ([]YearShows, error)

	// OnThisDay returns shows sharing today's month and day across all
	// years, oldest first. An empty result is a valid outcome.
	OnThisDay(ctx context.Context) ([]Show, error)

	// Recent returns shows inside the configured window around today, most
	// recent first.
	Recent(ctx context.Context) ([]Show, error)

	// ArchiveRedirect parses free-text date input and derives the external
	// archive URL for it. ok is false when the text is not a date or no show
	// aired on it; callers redirect to the site index in that case.
	ArchiveRedirect(ctx context.Context, text string) (url string, ok bool, err error)
}
