package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/notehub/notehub/internal/app/models"
	"github.com/notehub/notehub/internal/db"
	"github.com/notehub/notehub/internal/pkg/logger"
)

// RatingRepository handles database operations for ratings
type RatingRepository struct {
	db db.DBTX
}

// NewRatingRepository creates a new RatingRepository
func NewRatingRepository(conn db.DBTX) *RatingRepository {
	return &RatingRepository{db: conn}
}

func listRatingsQuery(noteID uuid.UUID) squirrel.SelectBuilder {
	return psql.Select(
		"r.id", "r.note_id", "r.user_id", "r.stars", "r.comment", "r.created_at",
		"COALESCE(u.username, '') AS rater_name",
	).From("ratings r").
		LeftJoin("user_profiles u ON u.id = r.user_id").
		Where(squirrel.Eq{"r.note_id": noteID}).
		OrderBy("r.created_at DESC")
}

// upsertRatingQuery replaces the caller's previous rating of the note, if any
func upsertRatingQuery(rating *models.Rating) squirrel.InsertBuilder {
	return psql.Insert("ratings").
		Columns("note_id", "user_id", "stars", "comment").
		Values(rating.NoteID, rating.UserID, rating.Stars, rating.Comment).
		Suffix("ON CONFLICT (note_id, user_id) DO UPDATE SET stars = EXCLUDED.stars, comment = EXCLUDED.comment, created_at = now() RETURNING id, created_at")
}

// ListForNote returns the ratings of a note, newest first
func (r *RatingRepository) ListForNote(ctx context.Context, noteID uuid.UUID) ([]models.RatingDetails, error) {
	sql, args, err := listRatingsQuery(noteID).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list ratings SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	defer rows.Close()

	ratings := make([]models.RatingDetails, 0)
	for rows.Next() {
		var rd models.RatingDetails
		if err := rows.Scan(&rd.ID, &rd.NoteID, &rd.UserID, &rd.Stars, &rd.Comment, &rd.CreatedAt, &rd.RaterName); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		ratings = append(ratings, rd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ratings: %w", err)
	}

	return ratings, nil
}

// Upsert stores rating as the only rating of its user for its note
func (r *RatingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	sql, args, err := upsertRatingQuery(rating).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building upsert rating SQL")
		return err
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&rating.ID, &rating.CreatedAt); err != nil {
		return fmt.Errorf("upsert rating: %w", err)
	}
	return nil
}
