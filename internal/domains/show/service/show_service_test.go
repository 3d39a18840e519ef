package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"panelshow-stats/internal/domains/show"
)

// fakeRepo is an in-memory storage collaborator. Absence is an empty result,
// matching the repository contract.
type fakeRepo struct {
	shows []show.Show
	err   error

	recentCalled       bool
	recentWindowCalled bool
	lastWindow         show.RecentWindow
}

func dateOf(y, m, d int) show.BroadcastDate {
	return show.BroadcastDate{Year: y, Month: m, Day: d}
}

func (f *fakeRepo) RetrieveByID(_ context.Context, id int64) (*show.Show, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.shows {
		if f.shows[i].ID == id {
			return &f.shows[i], nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) RetrieveByDate(_ context.Context, year, month, day int) (*show.Show, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.shows {
		if f.shows[i].Date == dateOf(year, month, day) {
			return &f.shows[i], nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) RetrieveByYear(_ context.Context, year int) ([]show.Show, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]show.Show, 0)
	for _, s := range f.shows {
		if s.Date.Year == year {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRepo) RetrieveByYearMonth(_ context.Context, year, month int) ([]show.Show, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]show.Show, 0)
	for _, s := range f.shows {
		if s.Date.Year == year && s.Date.Month == month {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRepo) RetrieveMonthsByYear(_ context.Context, year int) ([]int, error) {
	if f.err != nil {
		return nil, f.err
	}
	seen := map[int]bool{}
	months := make([]int, 0)
	for _, s := range f.shows {
		if s.Date.Year == year && !seen[s.Date.Month] {
			seen[s.Date.Month] = true
			months = append(months, s.Date.Month)
		}
	}
	return months, nil
}

func (f *fakeRepo) RetrieveYears(_ context.Context) ([]int, error) {
	if f.err != nil {
		return nil, f.err
	}
	seen := map[int]bool{}
	years := make([]int, 0)
	for _, s := range f.shows {
		if !seen[s.Date.Year] {
			seen[s.Date.Year] = true
			years = append(years, s.Date.Year)
		}
	}
	return years, nil
}

func (f *fakeRepo) RetrieveRecent(_ context.Context) ([]show.Show, error) {
	f.recentCalled = true
	if f.err != nil {
		return nil, f.err
	}
	return f.shows, nil
}

func (f *fakeRepo) RetrieveOnThisDayIDs(_ context.Context, month, day int) ([]int64, error) {
	if f.err != nil {
		return nil, f.err
	}
	ids := make([]int64, 0)
	for _, s := range f.shows {
		if s.Date.Month == month && s.Date.Day == day {
			ids = append(ids, s.ID)
		}
	}
	return ids, nil
}

func (f *fakeRepo) DateExists(_ context.Context, year, month, day int) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, s := range f.shows {
		if s.Date == dateOf(year, month, day) {
			return true, nil
		}
	}
	return false, nil
}

// windowedFakeRepo adds the optional windowed-recent capability.
type windowedFakeRepo struct {
	fakeRepo
}

func (f *windowedFakeRepo) RetrieveRecentWindow(_ context.Context, w show.RecentWindow) ([]show.Show, error) {
	f.recentWindowCalled = true
	f.lastWindow = w
	if f.err != nil {
		return nil, f.err
	}
	out := make([]show.Show, 0)
	for _, s := range f.shows {
		if w.Contains(s.Date) {
			out = append(out, s)
		}
	}
	return out, nil
}

func fixedClock(y int, m time.Month, d int) func() time.Time {
	return func() time.Time {
		return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	}
}

func TestResolveDayInvalidDate(t *testing.T) {
	svc := NewShowService(&fakeRepo{}, Config{})

	_, outcome, err := svc.ResolveDay(context.Background(), 2020, 2, 30)
	require.NoError(t, err)
	assert.Equal(t, show.OutcomeInvalid, outcome)
}

func TestResolveDayFallsBackWhenNoShow(t *testing.T) {
	repo := &fakeRepo{shows: []show.Show{{ID: 1, Date: dateOf(2020, 6, 13)}}}
	svc := NewShowService(repo, Config{})

	_, outcome, err := svc.ResolveDay(context.Background(), 2020, 6, 14)
	require.NoError(t, err)
	assert.Equal(t, show.OutcomeFallback, outcome)
}

func TestResolveDayFound(t *testing.T) {
	repo := &fakeRepo{shows: []show.Show{{ID: 1, Date: dateOf(2020, 6, 13)}}}
	svc := NewShowService(repo, Config{})

	found, outcome, err := svc.ResolveDay(context.Background(), 2020, 6, 13)
	require.NoError(t, err)
	assert.Equal(t, show.OutcomeFound, outcome)
	assert.Equal(t, int64(1), found.ID)
}

func TestResolveMonthFallsBackWhenEmpty(t *testing.T) {
	repo := &fakeRepo{shows: []show.Show{{ID: 1, Date: dateOf(2020, 6, 13)}}}
	svc := NewShowService(repo, Config{})

	_, outcome, err := svc.ResolveMonth(context.Background(), 2020, 7)
	require.NoError(t, err)
	assert.Equal(t, show.OutcomeFallback, outcome)
}

func TestResolveMonthRejectsOutOfRange(t *testing.T) {
	svc := NewShowService(&fakeRepo{}, Config{})

	_, outcome, err := svc.ResolveMonth(context.Background(), 2020, 13)
	require.NoError(t, err)
	assert.Equal(t, show.OutcomeInvalid, outcome)
}

func TestResolveYearFallsBackWhenNoMonths(t *testing.T) {
	svc := NewShowService(&fakeRepo{}, Config{})

	_, outcome, err := svc.ResolveYear(context.Background(), 1997)
	require.NoError(t, err)
	assert.Equal(t, show.OutcomeFallback, outcome)
}

func TestResolveYearAll(t *testing.T) {
	repo := &fakeRepo{shows: []show.Show{
		{ID: 1, Date: dateOf(2020, 1, 4)},
		{ID: 2, Date: dateOf(2020, 1, 11)},
	}}
	svc := NewShowService(repo, Config{})

	shows, outcome, err := svc.ResolveYearAll(context.Background(), 2020)
	require.NoError(t, err)
	assert.Equal(t, show.OutcomeFound, outcome)
	assert.Len(t, shows, 2)

	_, outcome, err = svc.ResolveYearAll(context.Background(), 2021)
	require.NoError(t, err)
	assert.Equal(t, show.OutcomeFallback, outcome)
}

func TestYearsDescending(t *testing.T) {
	repo := &fakeRepo{shows: []show.Show{
		{ID: 1, Date: dateOf(1998, 1, 3)},
		{ID: 2, Date: dateOf(2020, 1, 4)},
		{ID: 3, Date: dateOf(2005, 1, 1)},
	}}
	svc := NewShowService(repo, Config{})

	years, err := svc.Years(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{2020, 2005, 1998}, years)
}

func TestAllShowsGroupsYearsAscending(t *testing.T) {
	repo := &fakeRepo{shows: []show.Show{
		{ID: 1, Date: dateOf(2020, 1, 4)},
		{ID: 2, Date: dateOf(1998, 1, 3)},
		{ID: 3, Date: dateOf(1998, 2, 7)},
	}}
	svc := NewShowService(repo, Config{})

	all, err := svc.AllShows(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 1998, all[0].Year)
	assert.Len(t, all[0].Shows, 2)
	assert.Equal(t, 2020, all[1].Year)
}

func TestRecentWindowBounds(t *testing.T) {
	repo := &windowedFakeRepo{fakeRepo: fakeRepo{shows: []show.Show{
		{ID: 1, Date: dateOf(2020, 5, 15)}, // one day before the window
		{ID: 2, Date: dateOf(2020, 5, 16)}, // lower bound, included
		{ID: 3, Date: dateOf(2020, 6, 17)}, // upper bound, included
		{ID: 4, Date: dateOf(2020, 6, 18)}, // one day past the window
	}}}
	svc := NewShowService(repo, Config{
		RecentDaysAhead: 2,
		RecentDaysBack:  30,
		Now:             fixedClock(2020, time.June, 15),
	})

	recent, err := svc.Recent(context.Background())
	require.NoError(t, err)
	assert.True(t, repo.recentWindowCalled)
	assert.Equal(t, dateOf(2020, 5, 16), repo.lastWindow.From)
	assert.Equal(t, dateOf(2020, 6, 17), repo.lastWindow.To)

	require.Len(t, recent, 2)
	// Most recent first.
	assert.Equal(t, int64(3), recent[0].ID)
	assert.Equal(t, int64(2), recent[1].ID)
}

func TestRecentFallsBackWithoutWindowCapability(t *testing.T) {
	repo := &fakeRepo{shows: []show.Show{
		{ID: 1, Date: dateOf(2020, 6, 6)},
		{ID: 2, Date: dateOf(2020, 6, 13)},
	}}
	svc := NewShowService(repo, Config{Now: fixedClock(2020, time.June, 15)})

	recent, err := svc.Recent(context.Background())
	require.NoError(t, err)
	assert.True(t, repo.recentCalled)

	require.Len(t, recent, 2)
	assert.Equal(t, int64(2), recent[0].ID, "unwindowed result is still reversed into descending order")
}

func TestOnThisDayOrdersOldestFirst(t *testing.T) {
	repo := &fakeRepo{shows: []show.Show{
		{ID: 1, Date: dateOf(1999, 6, 15)},
		{ID: 2, Date: dateOf(2010, 6, 15)},
		{ID: 3, Date: dateOf(2010, 6, 16)},
	}}
	svc := NewShowService(repo, Config{Now: fixedClock(2020, time.June, 15)})

	shows, err := svc.OnThisDay(context.Background())
	require.NoError(t, err)
	require.Len(t, shows, 2)
	assert.Equal(t, int64(1), shows[0].ID)
	assert.Equal(t, int64(2), shows[1].ID)
}

func TestOnThisDayEmptyIsNotAnError(t *testing.T) {
	svc := NewShowService(&fakeRepo{}, Config{Now: fixedClock(2020, time.June, 15)})

	shows, err := svc.OnThisDay(context.Background())
	require.NoError(t, err)
	assert.Empty(t, shows)
}

func TestArchiveRedirect(t *testing.T) {
	repo := &fakeRepo{shows: []show.Show{{ID: 1, Date: dateOf(2018, 10, 27)}}}
	svc := NewShowService(repo, Config{})

	url, ok, err := svc.ArchiveRedirect(context.Background(), "2018-10-27")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "http://www.npr.org/programs/wait-wait-dont-tell-me/archive?date=10-27-2018", url)

	_, ok, err = svc.ArchiveRedirect(context.Background(), "2018-10-28")
	require.NoError(t, err)
	assert.False(t, ok, "a date without a show does not resolve")

	_, ok, err = svc.ArchiveRedirect(context.Background(), "not-a-date")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStorageFailurePropagates(t *testing.T) {
	repo := &fakeRepo{err: errors.New("connection refused")}
	svc := NewShowService(repo, Config{})

	_, _, err := svc.ResolveDay(context.Background(), 2020, 6, 13)
	assert.Error(t, err)

	_, err = svc.Recent(context.Background())
	assert.Error(t, err)
}
