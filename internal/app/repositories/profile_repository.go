package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/notehub/notehub/internal/app/models"
	"github.com/notehub/notehub/internal/db"
)

// ProfileRepository handles database operations for user profiles
type ProfileRepository struct {
	db db.DBTX
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(conn db.DBTX) *ProfileRepository {
	return &ProfileRepository{db: conn}
}

// ensureProfileQuery inserts the profile unless one exists and returns the stored
// row either way. An existing username is never overwritten.
func ensureProfileQuery(p *models.UserProfile) squirrel.InsertBuilder {
	return psql.Insert("user_profiles").
		Columns("id", "username").
		Values(p.ID, p.Username).
		Suffix("ON CONFLICT (id) DO UPDATE SET username = user_profiles.username RETURNING id, username")
}

// Ensure returns the stored profile of p.ID, creating it from p when missing
func (r *ProfileRepository) Ensure(ctx context.Context, p *models.UserProfile) (*models.UserProfile, error) {
	sql, args, err := ensureProfileQuery(p).ToSql()
	if err != nil {
		return nil, err
	}

	var stored models.UserProfile
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&stored.ID, &stored.Username); err != nil {
		return nil, fmt.Errorf("ensure profile: %w", err)
	}
	return &stored, nil
}
