package show

import "context"

// Repository is the storage collaborator for shows.
//
// Ordinary absence is an empty result, never an error: a date with no show
// yields (nil, nil), a year with no data yields empty slices. Only genuine
// connectivity or storage faults surface as errors. Slices come back in
// chronological (ascending) order.
type Repository interface {
	RetrieveByID(ctx context.Context, id int64) (*Show, error)
	RetrieveByDate(ctx context.Context, year, month, day int) (*Show, error)
	RetrieveByYear(ctx context.Context, year int) ([]Show, error)
	RetrieveByYearMonth(ctx context.Context, year, month int) ([]Show, error)
	RetrieveMonthsByYear(ctx context.Context, year int) ([]int, error)
	RetrieveYears(ctx context.Context) ([]int, error)
	RetrieveRecent(ctx context.Context) ([]Show, error)
	RetrieveOnThisDayIDs(ctx context.Context, month, day int) ([]int64, error)
	DateExists(ctx context.Context, year, month, day int) (bool, error)
}

// WindowedRepository is an optional capability: backends that can filter
// recent shows by date range server-side implement it in addition to
// Repository. The recent-shows calculator negotiates at call time with a type
// assertion and falls back to RetrieveRecent when the capability is missing.
type WindowedRepository interface {
	RetrieveRecentWindow(ctx context.Context, window RecentWindow) ([]Show, error)
}
