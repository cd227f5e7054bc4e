package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/notehub/notehub/internal/app/models"
	"github.com/notehub/notehub/internal/db"
)

// psql is the statement builder every repository starts from
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// TaxonomyStore reads and extends the subject and professor lists
type TaxonomyStore interface {
	List(ctx context.Context, kind models.TaxonomyKind) ([]models.TaxonomyEntry, error)
	Create(ctx context.Context, kind models.TaxonomyKind, name string) (*models.TaxonomyEntry, error)
	Count(ctx context.Context, kind models.TaxonomyKind) (int64, error)
}

// NoteStore persists notes
type NoteStore interface {
	ListDetails(ctx context.Context) ([]models.NoteDetails, error)
	GetDetails(ctx context.Context, id uuid.UUID) (*models.NoteDetails, error)
	Create(ctx context.Context, note *models.Note) error
	DeleteOwned(ctx context.Context, id, userID uuid.UUID) error
}

// RatingStore persists ratings, one per (note, user)
type RatingStore interface {
	ListForNote(ctx context.Context, noteID uuid.UUID) ([]models.RatingDetails, error)
	Upsert(ctx context.Context, rating *models.Rating) error
}

// DownloadStore appends download events
type DownloadStore interface {
	Record(ctx context.Context, noteID, userID uuid.UUID) error
}

// ProfileStore keeps display names of identity-provider users
type ProfileStore interface {
	Ensure(ctx context.Context, profile *models.UserProfile) (*models.UserProfile, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	TaxonomyRepository *TaxonomyRepository
	NoteRepository     *NoteRepository
	RatingRepository   *RatingRepository
	DownloadRepository *DownloadRepository
	ProfileRepository  *ProfileRepository
}

// NewRepositories initializes all repositories
func NewRepositories(conn db.DBTX) *Repositories {
	return &Repositories{
		TaxonomyRepository: NewTaxonomyRepository(conn),
		NoteRepository:     NewNoteRepository(conn),
		RatingRepository:   NewRatingRepository(conn),
		DownloadRepository: NewDownloadRepository(conn),
		ProfileRepository:  NewProfileRepository(conn),
	}
}
