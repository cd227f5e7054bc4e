package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/notehub/notehub/internal/app/auth"
	"github.com/notehub/notehub/internal/app/models"
	"github.com/notehub/notehub/internal/app/repositories"
	"github.com/notehub/notehub/internal/pkg/apperrors"
	"github.com/notehub/notehub/internal/pkg/blobstore"
	"github.com/notehub/notehub/internal/pkg/dberrors"
	"github.com/notehub/notehub/internal/pkg/logger"
)

// Upload is a file received with a submission
type Upload struct {
	Filename string
	Content  io.Reader
	Size     int64
}

// SubmitNoteInput carries the raw form values of a submission
type SubmitNoteInput struct {
	Title       string
	SubjectID   string
	ProfessorID string
	Year        string
	Mode        models.SubmissionMode
	File        *Upload
	Content     string
}

// NoteSubmissionService defines the interface for creating notes
type NoteSubmissionService interface {
	Submit(ctx context.Context, session *auth.Session, in *SubmitNoteInput) (*models.Note, error)
}

type noteSubmissionServiceImpl struct {
	notes repositories.NoteStore
	blobs blobstore.BlobStore
}

// NewNoteSubmissionService creates a new NoteSubmissionService
func NewNoteSubmissionService(notes repositories.NoteStore, blobs blobstore.BlobStore) NoteSubmissionService {
	return &noteSubmissionServiceImpl{notes: notes, blobs: blobs}
}

// FileExtension returns the text after the last dot of name, or name itself
// when it has no dot.
func FileExtension(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}

// FileTypeFor classifies an extension. Only exactly "pdf" is a pdf.
func FileTypeFor(ext string) models.FileType {
	if ext == "pdf" {
		return models.FileTypePDF
	}
	return models.FileTypeImage
}

// StorageKey builds the object key {user}/{random}.{ext}
func StorageKey(userID uuid.UUID, filename string) string {
	return fmt.Sprintf("%s/%s.%s", userID, uuid.New(), FileExtension(filename))
}

// checkPolicy applies the ordered submission rules; the first failure wins
func checkPolicy(in *SubmitNoteInput) error {
	switch in.Mode {
	case models.ModeFile:
		if in.File == nil || in.File.Content == nil {
			return apperrors.NewValidationError("file required")
		}
	case models.ModeText:
		if strings.TrimSpace(in.Content) == "" {
			return apperrors.NewValidationError("content required")
		}
	default:
		return apperrors.NewValidationError("mode must be file or text")
	}
	return nil
}

func parseFields(in *SubmitNoteInput) (*models.Note, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperrors.NewValidationError("title required")
	}

	subjectID, err := uuid.Parse(in.SubjectID)
	if err != nil {
		return nil, apperrors.NewValidationError("subject required")
	}
	professorID, err := uuid.Parse(in.ProfessorID)
	if err != nil {
		return nil, apperrors.NewValidationError("professor required")
	}

	// 2000-2100 is only a hint to the form
	year, err := strconv.Atoi(strings.TrimSpace(in.Year))
	if err != nil {
		return nil, apperrors.NewValidationError("year must be a number")
	}

	return &models.Note{
		Title:       in.Title,
		SubjectID:   subjectID,
		ProfessorID: professorID,
		Year:        year,
	}, nil
}

// Submit validates the input, uploads the file when there is one and inserts the
// note. A blob uploaded before a failed insert is left in place.
func (s *noteSubmissionServiceImpl) Submit(ctx context.Context, session *auth.Session, in *SubmitNoteInput) (*models.Note, error) {
	if err := checkPolicy(in); err != nil {
		return nil, err
	}

	note, err := parseFields(in)
	if err != nil {
		return nil, err
	}
	note.UserID = session.UserID()

	var uploadedKey string
	switch in.Mode {
	case models.ModeFile:
		key, fileType, err := s.upload(ctx, session, in.File)
		if err != nil {
			return nil, err
		}
		uploadedKey = key
		note.FilePath = &key
		note.FileType = &fileType
	case models.ModeText:
		content := in.Content
		fileType := models.FileTypeText
		note.Content = &content
		note.FileType = &fileType
	}

	if err := s.notes.Create(ctx, note); err != nil {
		event := logger.Error().Err(err).Str("userID", note.UserID.String())
		if uploadedKey != "" {
			event = event.Str("orphanedKey", uploadedKey)
		}
		event.Msg("Error inserting note")

		switch {
		case dberrors.IsForeignKeyViolation(err):
			return nil, apperrors.NewValidationError("unknown subject or professor")
		case dberrors.IsInvalidInput(err):
			return nil, apperrors.NewValidationError("invalid note")
		}
		return nil, apperrors.NewRemoteFailure("could not save the note", err)
	}

	logger.Info().
		Str("noteID", note.ID.String()).
		Str("userID", note.UserID.String()).
		Str("fileType", string(*note.FileType)).
		Msg("Note created")
	return note, nil
}

func (s *noteSubmissionServiceImpl) upload(ctx context.Context, session *auth.Session, file *Upload) (string, models.FileType, error) {
	data, err := io.ReadAll(file.Content)
	if err != nil {
		logger.Error().Err(err).Str("filename", file.Filename).Msg("Error reading uploaded file")
		return "", "", apperrors.NewValidationError("could not read the file")
	}

	key := StorageKey(session.UserID(), file.Filename)
	contentType := mimetype.Detect(data).String()

	if err := s.blobs.Upload(ctx, key, bytes.NewReader(data), contentType); err != nil {
		logger.Error().Err(err).Str("key", key).Msg("Error uploading note file")
		return "", "", apperrors.NewRemoteFailure("could not upload the file", err)
	}

	return key, FileTypeFor(FileExtension(file.Filename)), nil
}
