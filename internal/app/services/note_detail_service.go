package services

import (
	"context"
	"errors"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/notehub/notehub/internal/app/auth"
	"github.com/notehub/notehub/internal/app/models"
	"github.com/notehub/notehub/internal/app/repositories"
	"github.com/notehub/notehub/internal/pkg/apperrors"
	"github.com/notehub/notehub/internal/pkg/blobstore"
	"github.com/notehub/notehub/internal/pkg/dberrors"
	"github.com/notehub/notehub/internal/pkg/logger"
)

// DetailState is the settled state of a note detail view. Loading is the
// client's state while a request is in flight.
type DetailState string

const (
	DetailLoaded    DetailState = "loaded"
	DetailNotFound  DetailState = "not_found"
	DetailLoadError DetailState = "load_error"
)

// StateFor maps the outcome of a load to the resulting state
func StateFor(err error) DetailState {
	switch {
	case err == nil:
		return DetailLoaded
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return DetailNotFound
	}
	return DetailLoadError
}

// RatingDraft is the principal's own rating pre-filled for editing. Zero stars
// means the principal has not rated the note.
type RatingDraft struct {
	Stars   int
	Comment string
}

// NoteView is one loaded note detail
type NoteView struct {
	State   DetailState
	Note    *models.NoteDetails
	Ratings []models.RatingDetails
	Draft   RatingDraft
}

// DraftFor finds userID's rating in ratings
func DraftFor(ratings []models.RatingDetails, userID uuid.UUID) RatingDraft {
	for _, r := range ratings {
		if r.UserID == userID {
			return RatingDraft{Stars: r.Stars, Comment: r.Comment}
		}
	}
	return RatingDraft{}
}

// DownloadedFile is a note file ready to be sent to the client
type DownloadedFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// DownloadFilename suggests a file name from the note title and the key's
// extension, falling back to "note" for titles without usable characters.
func DownloadFilename(title, key string) string {
	name := slug.Make(title)
	if name == "" {
		name = "note"
	}
	if i := strings.LastIndex(key, "."); i >= 0 && i < len(key)-1 {
		return name + key[i:]
	}
	return name
}

// NoteDetailService defines the interface for the note detail workflow
type NoteDetailService interface {
	LoadNote(ctx context.Context, session *auth.Session, id uuid.UUID) (*NoteView, error)
	Download(ctx context.Context, session *auth.Session, note *models.Note) (*DownloadedFile, error)
	DownloadByID(ctx context.Context, session *auth.Session, id uuid.UUID) (*DownloadedFile, error)
	Rate(ctx context.Context, session *auth.Session, noteID uuid.UUID, stars int, comment string) (*NoteView, error)
}

type noteDetailServiceImpl struct {
	notes     repositories.NoteStore
	ratings   repositories.RatingStore
	downloads repositories.DownloadStore
	blobs     blobstore.BlobStore
}

// NewNoteDetailService creates a new NoteDetailService
func NewNoteDetailService(
	notes repositories.NoteStore,
	ratings repositories.RatingStore,
	downloads repositories.DownloadStore,
	blobs blobstore.BlobStore,
) NoteDetailService {
	return &noteDetailServiceImpl{
		notes:     notes,
		ratings:   ratings,
		downloads: downloads,
		blobs:     blobs,
	}
}

// LoadNote fetches the note and its ratings. The returned view is non-nil even on
// error so callers can render its State.
func (s *noteDetailServiceImpl) LoadNote(ctx context.Context, session *auth.Session, id uuid.UUID) (*NoteView, error) {
	details, err := loadNoteDetails(ctx, s.notes, id)
	if err != nil {
		return &NoteView{State: StateFor(err)}, err
	}

	ratings, err := s.ratings.ListForNote(ctx, id)
	if err != nil {
		logger.Error().Err(err).Str("noteID", id.String()).Msg("Error loading ratings")
		err = apperrors.NewRemoteFailure("could not load the note", err)
		return &NoteView{State: StateFor(err)}, err
	}

	return &NoteView{
		State:   DetailLoaded,
		Note:    details,
		Ratings: ratings,
		Draft:   DraftFor(ratings, session.UserID()),
	}, nil
}

// Download fetches the note's file and records the download. A note without a
// file fails before any call.
func (s *noteDetailServiceImpl) Download(ctx context.Context, session *auth.Session, note *models.Note) (*DownloadedFile, error) {
	if note == nil || !note.HasFile() {
		return nil, apperrors.NewValidationError("this note has no file")
	}
	key := *note.FilePath

	data, err := s.blobs.Download(ctx, key)
	if err != nil {
		logger.Error().Err(err).Str("noteID", note.ID.String()).Str("key", key).Msg("Error downloading note file")
		return nil, apperrors.NewRemoteFailure("could not download the file", err)
	}

	// the count is informational; a failed insert does not fail the download
	if err := s.downloads.Record(ctx, note.ID, session.UserID()); err != nil {
		logger.Warn().Err(err).Str("noteID", note.ID.String()).Msg("Error recording download")
	}

	return &DownloadedFile{
		Filename:    DownloadFilename(note.Title, key),
		ContentType: mimetype.Detect(data).String(),
		Data:        data,
	}, nil
}

// DownloadByID loads the note and downloads it through Download
func (s *noteDetailServiceImpl) DownloadByID(ctx context.Context, session *auth.Session, id uuid.UUID) (*DownloadedFile, error) {
	details, err := loadNoteDetails(ctx, s.notes, id)
	if err != nil {
		return nil, err
	}
	return s.Download(ctx, session, &details.Note)
}

// Rate stores the principal's rating, replacing any earlier one, and reloads the
// detail so aggregates reflect the store.
func (s *noteDetailServiceImpl) Rate(ctx context.Context, session *auth.Session, noteID uuid.UUID, stars int, comment string) (*NoteView, error) {
	if stars < models.MinStars || stars > models.MaxStars {
		return nil, apperrors.NewValidationError("stars must be between 1 and 5")
	}

	rating := &models.Rating{
		NoteID:  noteID,
		UserID:  session.UserID(),
		Stars:   stars,
		Comment: comment,
	}
	if err := s.ratings.Upsert(ctx, rating); err != nil {
		logger.Error().Err(err).Str("noteID", noteID.String()).Msg("Error saving rating")
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, apperrors.NewRemoteFailure("could not save the rating", err)
	}

	return s.LoadNote(ctx, session, noteID)
}
