package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/notehub/notehub/internal/app/models"
	"github.com/notehub/notehub/internal/app/services"
	"github.com/notehub/notehub/internal/mocks"
	"github.com/notehub/notehub/internal/pkg/apperrors"
	"github.com/notehub/notehub/internal/pkg/dberrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type detailMocks struct {
	notes     *mocks.MockNoteStore
	ratings   *mocks.MockRatingStore
	downloads *mocks.MockDownloadStore
	blobs     *mocks.MockBlobStore
	svc       services.NoteDetailService
}

func newDetailMocks(t *testing.T) *detailMocks {
	ctrl := gomock.NewController(t)
	m := &detailMocks{
		notes:     mocks.NewMockNoteStore(ctrl),
		ratings:   mocks.NewMockRatingStore(ctrl),
		downloads: mocks.NewMockDownloadStore(ctrl),
		blobs:     mocks.NewMockBlobStore(ctrl),
	}
	m.svc = services.NewNoteDetailService(m.notes, m.ratings, m.downloads, m.blobs)
	return m
}

func TestStateFor(t *testing.T) {
	assert.Equal(t, services.DetailLoaded, services.StateFor(nil))
	assert.Equal(t, services.DetailNotFound, services.StateFor(apperrors.ErrNoteNotFound))
	assert.Equal(t, services.DetailLoadError, services.StateFor(apperrors.NewRemoteFailure("x", errors.New("y"))))
}

func TestDownloadFilename(t *testing.T) {
	tests := []struct {
		title, key, want string
	}{
		{title: "Calc I midterm", key: "u/abc.pdf", want: "calc-i-midterm.pdf"},
		{title: "Ćwiczenia z fizyki", key: "u/abc.png", want: "cwiczenia-z-fizyki.png"},
		{title: "???", key: "u/abc.jpg", want: "note.jpg"},
		{title: "Plain", key: "u/README", want: "plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, services.DownloadFilename(tt.title, tt.key), tt.title)
	}
}

func TestNoteDetail_LoadNote(t *testing.T) {
	m := newDetailMocks(t)
	session := newSession()

	note := &models.NoteDetails{Note: models.Note{ID: uuid.New(), Title: "Optics"}, AverageRating: 4}
	ratings := []models.RatingDetails{
		{Rating: models.Rating{UserID: uuid.New(), Stars: 5}},
		{Rating: models.Rating{UserID: session.UserID(), Stars: 3, Comment: "ok"}},
	}
	m.notes.EXPECT().GetDetails(gomock.Any(), note.ID).Return(note, nil)
	m.ratings.EXPECT().ListForNote(gomock.Any(), note.ID).Return(ratings, nil)

	view, err := m.svc.LoadNote(context.Background(), session, note.ID)
	require.NoError(t, err)
	assert.Equal(t, services.DetailLoaded, view.State)
	assert.Equal(t, note, view.Note)
	assert.Equal(t, ratings, view.Ratings)
	assert.Equal(t, services.RatingDraft{Stars: 3, Comment: "ok"}, view.Draft)
}

func TestNoteDetail_LoadNote_Failures(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name      string
		setup     func(m *detailMocks)
		wantState services.DetailState
		wantErr   error
	}{
		{
			name: "unknown id",
			setup: func(m *detailMocks) {
				m.notes.EXPECT().GetDetails(gomock.Any(), id).Return(nil, apperrors.ErrNoteNotFound)
			},
			wantState: services.DetailNotFound,
			wantErr:   apperrors.ErrResourceNotFound,
		},
		{
			name: "store failure",
			setup: func(m *detailMocks) {
				m.notes.EXPECT().GetDetails(gomock.Any(), id).Return(nil, errors.New("timeout"))
			},
			wantState: services.DetailLoadError,
			wantErr:   apperrors.ErrRemoteFailure,
		},
		{
			name: "ratings failure",
			setup: func(m *detailMocks) {
				m.notes.EXPECT().GetDetails(gomock.Any(), id).Return(&models.NoteDetails{Note: models.Note{ID: id}}, nil)
				m.ratings.EXPECT().ListForNote(gomock.Any(), id).Return(nil, errors.New("timeout"))
			},
			wantState: services.DetailLoadError,
			wantErr:   apperrors.ErrRemoteFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newDetailMocks(t)
			tt.setup(m)

			view, err := m.svc.LoadNote(context.Background(), newSession(), id)
			assert.ErrorIs(t, err, tt.wantErr)
			require.NotNil(t, view)
			assert.Equal(t, tt.wantState, view.State)
		})
	}
}

func TestNoteDetail_Download(t *testing.T) {
	m := newDetailMocks(t)
	session := newSession()

	key := "u/abc.pdf"
	note := &models.Note{ID: uuid.New(), Title: "Calc I midterm", FilePath: &key}

	gomock.InOrder(
		m.blobs.EXPECT().Download(gomock.Any(), key).Return([]byte("%PDF-1.7"), nil),
		m.downloads.EXPECT().Record(gomock.Any(), note.ID, session.UserID()).Return(nil),
	)

	file, err := m.svc.Download(context.Background(), session, note)
	require.NoError(t, err)
	assert.Equal(t, "calc-i-midterm.pdf", file.Filename)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.Equal(t, []byte("%PDF-1.7"), file.Data)
}

func TestNoteDetail_Download_WithoutFile(t *testing.T) {
	m := newDetailMocks(t)
	content := "text only"

	_, err := m.svc.Download(context.Background(), newSession(), &models.Note{ID: uuid.New(), Content: &content})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestNoteDetail_Download_RecordFailureIsIgnored(t *testing.T) {
	m := newDetailMocks(t)
	key := "u/abc.png"
	note := &models.Note{ID: uuid.New(), Title: "Board", FilePath: &key}

	m.blobs.EXPECT().Download(gomock.Any(), key).Return([]byte("png"), nil)
	m.downloads.EXPECT().Record(gomock.Any(), note.ID, gomock.Any()).Return(errors.New("insert failed"))

	file, err := m.svc.Download(context.Background(), newSession(), note)
	require.NoError(t, err)
	assert.Equal(t, "board.png", file.Filename)
}

func TestNoteDetail_Download_BlobFailure(t *testing.T) {
	m := newDetailMocks(t)
	key := "u/abc.png"
	note := &models.Note{ID: uuid.New(), FilePath: &key}

	m.blobs.EXPECT().Download(gomock.Any(), key).Return(nil, errors.New("404"))

	_, err := m.svc.Download(context.Background(), newSession(), note)
	assert.ErrorIs(t, err, apperrors.ErrRemoteFailure)
}

func TestNoteDetail_Rate(t *testing.T) {
	m := newDetailMocks(t)
	session := newSession()
	noteID := uuid.New()

	reloaded := &models.NoteDetails{Note: models.Note{ID: noteID}, AverageRating: 4}
	mine := []models.RatingDetails{{Rating: models.Rating{NoteID: noteID, UserID: session.UserID(), Stars: 4, Comment: "better"}}}

	gomock.InOrder(
		m.ratings.EXPECT().Upsert(gomock.Any(), &models.Rating{
			NoteID: noteID, UserID: session.UserID(), Stars: 4, Comment: "better",
		}).Return(nil),
		m.notes.EXPECT().GetDetails(gomock.Any(), noteID).Return(reloaded, nil),
		m.ratings.EXPECT().ListForNote(gomock.Any(), noteID).Return(mine, nil),
	)

	view, err := m.svc.Rate(context.Background(), session, noteID, 4, "better")
	require.NoError(t, err)
	assert.Equal(t, services.DetailLoaded, view.State)
	assert.Equal(t, float64(4), view.Note.AverageRating)
	assert.Equal(t, services.RatingDraft{Stars: 4, Comment: "better"}, view.Draft)
}

func TestNoteDetail_Rate_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		stars   int
		setup   func(m *detailMocks)
		wantErr error
	}{
		{name: "zero stars", stars: 0, setup: func(m *detailMocks) {}, wantErr: apperrors.ErrValidationFailed},
		{name: "six stars", stars: 6, setup: func(m *detailMocks) {}, wantErr: apperrors.ErrValidationFailed},
		{
			name:  "note vanished",
			stars: 3,
			setup: func(m *detailMocks) {
				m.ratings.EXPECT().Upsert(gomock.Any(), gomock.Any()).
					Return(&pgconn.PgError{Code: dberrors.CodeForeignKeyViolation})
			},
			wantErr: apperrors.ErrResourceNotFound,
		},
		{
			name:  "store failure",
			stars: 3,
			setup: func(m *detailMocks) {
				m.ratings.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("down"))
			},
			wantErr: apperrors.ErrRemoteFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newDetailMocks(t)
			tt.setup(m)

			view, err := m.svc.Rate(context.Background(), newSession(), uuid.New(), tt.stars, "")
			assert.Nil(t, view)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
