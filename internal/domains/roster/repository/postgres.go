package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"panelshow-stats/internal/domains/roster"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) roster.Repository {
	return &postgresRepository{pool: pool}
}

// kindTables maps each kind to its table and columns. Identifiers come from
// this closed map only, never from request input, so interpolating them into
// query text is safe.
var kindTables = map[roster.Kind]struct {
	table string
	name  string
}{
	roster.KindGuest:       {table: "guests", name: "name"},
	roster.KindHost:        {table: "hosts", name: "name"},
	roster.KindPanelist:    {table: "panelists", name: "name"},
	roster.KindScorekeeper: {table: "scorekeepers", name: "name"},
	roster.KindLocation:    {table: "locations", name: "venue"},
}

func (r *postgresRepository) RetrieveAll(ctx context.Context, kind roster.Kind) ([]roster.Entity, error) {
	cols, ok := kindTables[kind]
	if !ok {
		return nil, roster.ErrUnknownKind
	}

	query := fmt.Sprintf(
		`SELECT id, slug, %s FROM %s ORDER BY slug ASC`,
		cols.name, cols.table,
	)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", cols.table, err)
	}
	defer rows.Close()

	entities := make([]roster.Entity, 0)
	for rows.Next() {
		var e roster.Entity
		if err := rows.Scan(&e.ID, &e.Slug, &e.Name); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", cols.table, err)
		}
		entities = append(entities, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s rows: %w", cols.table, err)
	}

	return entities, nil
}

func (r *postgresRepository) RetrieveBySlug(ctx context.Context, kind roster.Kind, slug string) (*roster.Entity, error) {
	cols, ok := kindTables[kind]
	if !ok {
		return nil, roster.ErrUnknownKind
	}

	query := fmt.Sprintf(
		`SELECT id, slug, %s FROM %s WHERE slug = $1`,
		cols.name, cols.table,
	)

	var e roster.Entity
	err := r.pool.QueryRow(ctx, query, slug).Scan(&e.ID, &e.Slug, &e.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query %s by slug: %w", cols.table, err)
	}

	return &e, nil
}
