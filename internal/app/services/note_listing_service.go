package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/notehub/notehub/internal/app/auth"
	"github.com/notehub/notehub/internal/app/models"
	"github.com/notehub/notehub/internal/app/repositories"
	"github.com/notehub/notehub/internal/pkg/apperrors"
	"github.com/notehub/notehub/internal/pkg/logger"
)

// Filter returns the notes whose title, subject name or professor name contains
// term (case-insensitive) and whose subject is subjectID. An empty term or a nil
// subjectID matches everything. notes is never modified.
func Filter(notes []models.NoteDetails, term string, subjectID uuid.UUID) []models.NoteDetails {
	term = strings.ToLower(term)
	out := make([]models.NoteDetails, 0, len(notes))
	for _, n := range notes {
		if subjectID != uuid.Nil && n.SubjectID != subjectID {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(n.Title), term) &&
			!strings.Contains(strings.ToLower(n.SubjectName), term) &&
			!strings.Contains(strings.ToLower(n.ProfessorName), term) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Listing owns one fetched sequence of notes, newest first
type Listing struct {
	Notes []models.NoteDetails
}

// Filter applies Filter to the listing
func (l *Listing) Filter(term string, subjectID uuid.UUID) []models.NoteDetails {
	return Filter(l.Notes, term, subjectID)
}

// Remove drops the note with id, keeping the order of the rest. It reports
// whether a note was removed.
func (l *Listing) Remove(id uuid.UUID) bool {
	for i := range l.Notes {
		if l.Notes[i].ID == id {
			l.Notes = append(l.Notes[:i:i], l.Notes[i+1:]...)
			return true
		}
	}
	return false
}

// NoteListingService defines the interface for browsing and deleting notes
type NoteListingService interface {
	ListNotes(ctx context.Context) (*Listing, error)
	DeleteNote(ctx context.Context, session *auth.Session, note *models.Note) error
	DeleteByID(ctx context.Context, session *auth.Session, id uuid.UUID) error
}

type noteListingServiceImpl struct {
	notes repositories.NoteStore
}

// NewNoteListingService creates a new NoteListingService
func NewNoteListingService(notes repositories.NoteStore) NoteListingService {
	return &noteListingServiceImpl{notes: notes}
}

// ListNotes returns every note with its joined names, newest first
func (s *noteListingServiceImpl) ListNotes(ctx context.Context) (*Listing, error) {
	notes, err := s.notes.ListDetails(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing notes")
		return nil, apperrors.NewRemoteFailure("could not load notes", err)
	}
	return &Listing{Notes: notes}, nil
}

// DeleteNote deletes note when the session's principal owns it. Ownership is
// checked before any store call. The note's blob is kept.
func (s *noteListingServiceImpl) DeleteNote(ctx context.Context, session *auth.Session, note *models.Note) error {
	if err := auth.ValidateNoteOwnership(session.Principal, note); err != nil {
		return err
	}

	if err := s.notes.DeleteOwned(ctx, note.ID, session.UserID()); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return err
		}
		logger.Error().Err(err).Str("noteID", note.ID.String()).Msg("Error deleting note")
		return apperrors.NewRemoteFailure("could not delete the note", err)
	}

	logger.Info().Str("noteID", note.ID.String()).Str("userID", session.UserID().String()).Msg("Note deleted")
	return nil
}

// DeleteByID loads the note and deletes it through DeleteNote
func (s *noteListingServiceImpl) DeleteByID(ctx context.Context, session *auth.Session, id uuid.UUID) error {
	details, err := loadNoteDetails(ctx, s.notes, id)
	if err != nil {
		return err
	}
	return s.DeleteNote(ctx, session, &details.Note)
}

// loadNoteDetails fetches one note, keeping not-found distinct from store failures
func loadNoteDetails(ctx context.Context, notes repositories.NoteStore, id uuid.UUID) (*models.NoteDetails, error) {
	details, err := notes.GetDetails(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrNoteNotFound
		}
		logger.Error().Err(err).Str("noteID", id.String()).Msg("Error loading note")
		return nil, apperrors.NewRemoteFailure("could not load the note", err)
	}
	return details, nil
}
