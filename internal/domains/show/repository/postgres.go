package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"panelshow-stats/internal/domains/roster"
	"panelshow-stats/internal/domains/show"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository returns the show storage collaborator. The returned
// value also implements show.WindowedRepository, so the recent-shows
// calculator negotiates the windowed path at call time.
func NewPostgresRepository(pool *pgxpool.Pool) show.Repository {
	return &postgresRepository{pool: pool}
}

// baseShowQuery joins the venue, host and scorekeeper references in one round
// trip; panelists and guests are ordered lists and loaded separately.
const baseShowQuery = `
	SELECT
		s.id, s.show_date, s.best_of, s.repeat_show,
		l.id, l.slug, l.venue,
		h.id, h.slug, h.name,
		sk.id, sk.slug, sk.name
	FROM shows s
	LEFT JOIN locations l ON l.id = s.location_id
	LEFT JOIN hosts h ON h.id = s.host_id
	LEFT JOIN scorekeepers sk ON sk.id = s.scorekeeper_id`

func scanShow(row pgx.Row) (*show.Show, error) {
	var (
		sh       show.Show
		showDate time.Time

		locID, hostID, skID *int64
		locSlug, locVenue   *string
		hostSlug, hostName  *string
		skSlug, skName      *string
	)

	err := row.Scan(
		&sh.ID, &showDate, &sh.BestOf, &sh.Repeat,
		&locID, &locSlug, &locVenue,
		&hostID, &hostSlug, &hostName,
		&skID, &skSlug, &skName,
	)
	if err != nil {
		return nil, err
	}

	sh.Date = show.DateOf(showDate)
	if locID != nil {
		sh.Location = &roster.Entity{ID: *locID, Slug: *locSlug, Name: *locVenue}
	}
	if hostID != nil {
		sh.Host = &roster.Entity{ID: *hostID, Slug: *hostSlug, Name: *hostName}
	}
	if skID != nil {
		sh.Scorekeeper = &roster.Entity{ID: *skID, Slug: *skSlug, Name: *skName}
	}
	return &sh, nil
}

// loadParticipants fills the ordered panelist and guest lists for one show.
func (r *postgresRepository) loadParticipants(ctx context.Context, sh *show.Show) error {
	const panelistQuery = `
		SELECT p.id, p.slug, p.name
		FROM show_panelist_map m
		JOIN panelists p ON p.id = m.panelist_id
		WHERE m.show_id = $1
		ORDER BY m.display_order ASC`

	const guestQuery = `
		SELECT g.id, g.slug, g.name
		FROM show_guest_map m
		JOIN guests g ON g.id = m.guest_id
		WHERE m.show_id = $1
		ORDER BY m.display_order ASC`

	panelists, err := r.queryEntities(ctx, panelistQuery, sh.ID)
	if err != nil {
		return fmt.Errorf("failed to load panelists for show %d: %w", sh.ID, err)
	}
	guests, err := r.queryEntities(ctx, guestQuery, sh.ID)
	if err != nil {
		return fmt.Errorf("failed to load guests for show %d: %w", sh.ID, err)
	}

	sh.Panelists = panelists
	sh.Guests = guests
	return nil
}

func (r *postgresRepository) queryEntities(ctx context.Context, query string, showID int64) ([]roster.Entity, error) {
	rows, err := r.pool.Query(ctx, query, showID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entities := make([]roster.Entity, 0)
	for rows.Next() {
		var e roster.Entity
		if err := rows.Scan(&e.ID, &e.Slug, &e.Name); err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	return entities, rows.Err()
}

func (r *postgresRepository) queryShows(ctx context.Context, query string, args ...interface{}) ([]show.Show, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query shows: %w", err)
	}
	defer rows.Close()

	shows := make([]show.Show, 0)
	for rows.Next() {
		sh, err := scanShow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan show row: %w", err)
		}
		shows = append(shows, *sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read show rows: %w", err)
	}

	for i := range shows {
		if err := r.loadParticipants(ctx, &shows[i]); err != nil {
			return nil, err
		}
	}
	return shows, nil
}

func (r *postgresRepository) RetrieveByID(ctx context.Context, id int64) (*show.Show, error) {
	query := baseShowQuery + ` WHERE s.id = $1`

	sh, err := scanShow(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query show %d: %w", id, err)
	}

	if err := r.loadParticipants(ctx, sh); err != nil {
		return nil, err
	}
	return sh, nil
}

func (r *postgresRepository) RetrieveByDate(ctx context.Context, year, month, day int) (*show.Show, error) {
	query := baseShowQuery + ` WHERE s.show_date = make_date($1, $2, $3)`

	sh, err := scanShow(r.pool.QueryRow(ctx, query, year, month, day))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query show %04d-%02d-%02d: %w", year, month, day, err)
	}

	if err := r.loadParticipants(ctx, sh); err != nil {
		return nil, err
	}
	return sh, nil
}

func (r *postgresRepository) RetrieveByYear(ctx context.Context, year int) ([]show.Show, error) {
	query := baseShowQuery + `
	WHERE EXTRACT(YEAR FROM s.show_date) = $1
	ORDER BY s.show_date ASC`

	return r.queryShows(ctx, query, year)
}

func (r *postgresRepository) RetrieveByYearMonth(ctx context.Context, year, month int) ([]show.Show, error) {
	query := baseShowQuery + `
	WHERE EXTRACT(YEAR FROM s.show_date) = $1
	  AND EXTRACT(MONTH FROM s.show_date) = $2
	ORDER BY s.show_date ASC`

	return r.queryShows(ctx, query, year, month)
}

func (r *postgresRepository) RetrieveMonthsByYear(ctx context.Context, year int) ([]int, error) {
	const query = `
		SELECT DISTINCT EXTRACT(MONTH FROM show_date)::int AS month
		FROM shows
		WHERE EXTRACT(YEAR FROM show_date) = $1
		ORDER BY month ASC`

	return r.queryInts(ctx, query, year)
}

func (r *postgresRepository) RetrieveYears(ctx context.Context) ([]int, error) {
	const query = `
		SELECT DISTINCT EXTRACT(YEAR FROM show_date)::int AS year
		FROM shows
		ORDER BY year ASC`

	return r.queryInts(ctx, query)
}

func (r *postgresRepository) queryInts(ctx context.Context, query string, args ...interface{}) ([]int, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}
	defer rows.Close()

	values := make([]int, 0)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return values, nil
}

// RetrieveRecent is the unwindowed fallback: the site default window applied
// server-side relative to the database clock.
func (r *postgresRepository) RetrieveRecent(ctx context.Context) ([]show.Show, error) {
	query := baseShowQuery + `
	WHERE s.show_date >= CURRENT_DATE - INTERVAL '30 days'
	  AND s.show_date <= CURRENT_DATE + INTERVAL '2 days'
	ORDER BY s.show_date ASC`

	return r.queryShows(ctx, query)
}

// RetrieveRecentWindow implements show.WindowedRepository.
func (r *postgresRepository) RetrieveRecentWindow(ctx context.Context, window show.RecentWindow) ([]show.Show, error) {
	query := baseShowQuery + `
	WHERE s.show_date >= make_date($1, $2, $3)
	  AND s.show_date <= make_date($4, $5, $6)
	ORDER BY s.show_date ASC`

	return r.queryShows(ctx, query,
		window.From.Year, window.From.Month, window.From.Day,
		window.To.Year, window.To.Month, window.To.Day,
	)
}

func (r *postgresRepository) RetrieveOnThisDayIDs(ctx context.Context, month, day int) ([]int64, error) {
	const query = `
		SELECT id FROM shows
		WHERE EXTRACT(MONTH FROM show_date) = $1
		  AND EXTRACT(DAY FROM show_date) = $2
		ORDER BY show_date ASC`

	rows, err := r.pool.Query(ctx, query, month, day)
	if err != nil {
		return nil, fmt.Errorf("failed to query on-this-day ids: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan show id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *postgresRepository) DateExists(ctx context.Context, year, month, day int) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM shows WHERE show_date = make_date($1, $2, $3)
		)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, year, month, day).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check date %04d-%02d-%02d: %w", year, month, day, err)
	}
	return exists, nil
}
