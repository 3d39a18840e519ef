package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"panelshow-stats/internal/domains/show"
	"panelshow-stats/internal/shared/utils"
)

// Config carries the request-independent inputs of the resolution layer. All
// fields are fixed at construction and immutable afterwards.
type Config struct {
	// RecentDaysAhead / RecentDaysBack bound the recent-shows window around
	// today. Zero values fall back to the site defaults.
	RecentDaysAhead int
	RecentDaysBack  int

	// TimeZone determines the calendar day used for "today"; nil means UTC.
	TimeZone *time.Location

	// Now is the clock; nil means time.Now. Tests pin it.
	Now func() time.Time
}

const (
	defaultRecentDaysAhead = 2
	defaultRecentDaysBack  = 30
)

type showService struct {
	repo      show.Repository
	daysAhead int
	daysBack  int
	timeZone  *time.Location
	now       func() time.Time
}

func NewShowService(repo show.Repository, cfg Config) show.Service {
	s := &showService{
		repo:      repo,
		daysAhead: cfg.RecentDaysAhead,
		daysBack:  cfg.RecentDaysBack,
		timeZone:  cfg.TimeZone,
		now:       cfg.Now,
	}
	if s.daysAhead <= 0 {
		s.daysAhead = defaultRecentDaysAhead
	}
	if s.daysBack <= 0 {
		s.daysBack = defaultRecentDaysBack
	}
	if s.timeZone == nil {
		s.timeZone = time.UTC
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// today is the current calendar day in the configured time zone.
func (s *showService) today() time.Time {
	return s.now().In(s.timeZone)
}

func (s *showService) Years(ctx context.Context) ([]int, error) {
	years, err := s.repo.RetrieveYears(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve show years: %w", err)
	}

	// Index pages list the most recent year first.
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years, nil
}

func (s *showService) ResolveDay(ctx context.Context, year, month, day int) (*show.Show, show.Outcome, error) {
	if _, ok := show.NewBroadcastDate(year, month, day); !ok {
		return nil, show.OutcomeInvalid, nil
	}

	found, err := s.repo.RetrieveByDate(ctx, year, month, day)
	if err != nil {
		return nil, show.OutcomeFallback, fmt.Errorf("failed to retrieve show %04d-%02d-%02d: %w", year, month, day, err)
	}
	if found == nil {
		return nil, show.OutcomeFallback, nil
	}
	return found, show.OutcomeFound, nil
}

func (s *showService) ResolveMonth(ctx context.Context, year, month int) ([]show.Show, show.Outcome, error) {
	if month < 1 || month > 12 {
		return nil, show.OutcomeInvalid, nil
	}

	shows, err := s.repo.RetrieveByYearMonth(ctx, year, month)
	if err != nil {
		return nil, show.OutcomeFallback, fmt.Errorf("failed to retrieve shows for %04d-%02d: %w", year, month, err)
	}
	if len(shows) == 0 {
		return nil, show.OutcomeFallback, nil
	}
	return shows, show.OutcomeFound, nil
}

func (s *showService) ResolveYear(ctx context.Context, year int) ([]int, show.Outcome, error) {
	months, err := s.repo.RetrieveMonthsByYear(ctx, year)
	if err != nil {
		return nil, show.OutcomeFallback, fmt.Errorf("failed to retrieve months for %04d: %w", year, err)
	}
	if len(months) == 0 {
		return nil, show.OutcomeFallback, nil
	}
	return months, show.OutcomeFound, nil
}

func (s *showService) ResolveYearAll(ctx context.Context, year int) ([]show.Show, show.Outcome, error) {
	shows, err := s.repo.RetrieveByYear(ctx, year)
	if err != nil {
		return nil, show.OutcomeFallback, fmt.Errorf("failed to retrieve shows for %04d: %w", year, err)
	}
	if len(shows) == 0 {
		return nil, show.OutcomeFallback, nil
	}
	return shows, show.OutcomeFound, nil
}

// AllShows performs one sequential round trip per year. O(years) calls is an
// accepted tradeoff for a low-traffic reference site; revisit before reusing
// this at larger scale.
func (s *showService) AllShows(ctx context.Context) ([]show.YearShows, error) {
	years, err := s.repo.RetrieveYears(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve show years: %w", err)
	}
	sort.Ints(years)

	all := make([]show.YearShows, 0, len(years))
	for _, year := range years {
		shows, err := s.repo.RetrieveByYear(ctx, year)
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve shows for %04d: %w", year, err)
		}
		all = append(all, show.YearShows{Year: year, Shows: shows})
	}
	return all, nil
}

func (s *showService) OnThisDay(ctx context.Context) ([]show.Show, error) {
	today := s.today()

	ids, err := s.repo.RetrieveOnThisDayIDs(ctx, int(today.Month()), today.Day())
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve on-this-day show ids: %w", err)
	}

	// Ids arrive ordered by broadcast date ascending, so the result is
	// oldest year first. Zero matches renders as an empty list.
	shows := make([]show.Show, 0, len(ids))
	for _, id := range ids {
		found, err := s.repo.RetrieveByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve show %d: %w", id, err)
		}
		if found != nil {
			shows = append(shows, *found)
		}
	}
	return shows, nil
}

func (s *showService) Recent(ctx context.Context) ([]show.Show, error) {
	today := s.today()
	window := show.RecentWindow{
		From: show.DateOf(today.AddDate(0, 0, -s.daysBack)),
		To:   show.DateOf(today.AddDate(0, 0, s.daysAhead)),
	}

	var (
		shows []show.Show
		err   error
	)
	if windowed, ok := s.repo.(show.WindowedRepository); ok {
		shows, err = windowed.RetrieveRecentWindow(ctx, window)
	} else {
		// Capability missing: unwindowed retrieval, same ordering contract.
		shows, err = s.repo.RetrieveRecent(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve recent shows: %w", err)
	}

	// Storage returns chronological order; the index wants most recent
	// first.
	reversed := make([]show.Show, 0, len(shows))
	for i := len(shows) - 1; i >= 0; i-- {
		reversed = append(reversed, shows[i])
	}
	return reversed, nil
}

func (s *showService) ArchiveRedirect(ctx context.Context, text string) (string, bool, error) {
	parsed, ok := utils.ParseLooseDate(text)
	if !ok {
		return "", false, nil
	}

	date := show.DateOf(parsed)
	exists, err := s.repo.DateExists(ctx, date.Year, date.Month, date.Day)
	if err != nil {
		return "", false, fmt.Errorf("failed to check date %s: %w", date, err)
	}
	if !exists {
		return "", false, nil
	}

	return show.ResolveArchiveURL(date), true, nil
}
