package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/notehub/notehub/internal/app/models"
	"github.com/notehub/notehub/internal/db"
	"github.com/notehub/notehub/internal/pkg/logger"
)

// TaxonomyRepository handles database operations for subjects and professors
type TaxonomyRepository struct {
	db db.DBTX
}

// NewTaxonomyRepository creates a new TaxonomyRepository
func NewTaxonomyRepository(conn db.DBTX) *TaxonomyRepository {
	return &TaxonomyRepository{db: conn}
}

func tableFor(kind models.TaxonomyKind) (string, error) {
	table := kind.Table()
	if table == "" {
		return "", fmt.Errorf("unknown taxonomy kind %q", kind)
	}
	return table, nil
}

func listTaxonomyQuery(table string) squirrel.SelectBuilder {
	return psql.Select("id", "name").From(table).OrderBy("name ASC")
}

func createTaxonomyQuery(table, name string) squirrel.InsertBuilder {
	return psql.Insert(table).Columns("name").Values(name).Suffix("RETURNING id, name")
}

// List returns every entry of kind ordered by name
func (r *TaxonomyRepository) List(ctx context.Context, kind models.TaxonomyKind) ([]models.TaxonomyEntry, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	sql, args, err := listTaxonomyQuery(table).ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Error building list taxonomy SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	entries := make([]models.TaxonomyEntry, 0)
	for rows.Next() {
		var e models.TaxonomyEntry
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", table, err)
	}

	return entries, nil
}

// Create inserts a new entry and returns the stored row
func (r *TaxonomyRepository) Create(ctx context.Context, kind models.TaxonomyKind, name string) (*models.TaxonomyEntry, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	sql, args, err := createTaxonomyQuery(table, name).ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Error building create taxonomy SQL")
		return nil, err
	}

	var e models.TaxonomyEntry
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&e.ID, &e.Name); err != nil {
		return nil, fmt.Errorf("insert into %s: %w", table, err)
	}
	return &e, nil
}

// Count returns the number of entries of kind
func (r *TaxonomyRepository) Count(ctx context.Context, kind models.TaxonomyKind) (int64, error) {
	table, err := tableFor(kind)
	if err != nil {
		return 0, err
	}

	sql, args, err := psql.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, err
	}

	var n int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}
