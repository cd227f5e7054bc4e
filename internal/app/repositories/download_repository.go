package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/notehub/notehub/internal/db"
)

// DownloadRepository appends to the downloads log
type DownloadRepository struct {
	db db.DBTX
}

// NewDownloadRepository creates a new DownloadRepository
func NewDownloadRepository(conn db.DBTX) *DownloadRepository {
	return &DownloadRepository{db: conn}
}

// Record appends one download event
func (r *DownloadRepository) Record(ctx context.Context, noteID, userID uuid.UUID) error {
	sql, args, err := psql.Insert("downloads").
		Columns("note_id", "user_id").
		Values(noteID, userID).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("record download: %w", err)
	}
	return nil
}
