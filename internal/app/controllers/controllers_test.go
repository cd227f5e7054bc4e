package controllers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appauth "github.com/notehub/notehub/internal/app/auth"
	"github.com/notehub/notehub/internal/app/controllers"
	"github.com/notehub/notehub/internal/app/models"
	"github.com/notehub/notehub/internal/app/services"
	"github.com/notehub/notehub/internal/middleware"
	"github.com/notehub/notehub/internal/mocks"
	"github.com/notehub/notehub/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testMaxUpload = 1 << 20

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newSession() *appauth.Session {
	return &appauth.Session{
		Principal:   appauth.Principal{ID: uuid.New(), Email: "ala@uni.test"},
		AccessToken: "token",
	}
}

// newRouter injects session the way JWTAuth would
func newRouter(session *appauth.Session) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if session != nil {
			c.Set(middleware.SessionKey, session)
		}
		c.Next()
	})
	return r
}

func perform(t *testing.T, r http.Handler, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body envelope
	if w.Body.Len() > 0 && strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

type noteMocks struct {
	submission *mocks.MockNoteSubmissionService
	listing    *mocks.MockNoteListingService
	detail     *mocks.MockNoteDetailService
}

func setupNoteRouter(t *testing.T, session *appauth.Session) (*gin.Engine, noteMocks) {
	ctrl := gomock.NewController(t)
	m := noteMocks{
		submission: mocks.NewMockNoteSubmissionService(ctrl),
		listing:    mocks.NewMockNoteListingService(ctrl),
		detail:     mocks.NewMockNoteDetailService(ctrl),
	}
	c := controllers.NewNoteController(m.submission, m.listing, m.detail, testMaxUpload)

	r := newRouter(session)
	r.POST("/notes", c.CreateNote)
	r.GET("/notes", c.ListNotes)
	r.GET("/notes/:id", c.GetNote)
	r.DELETE("/notes/:id", c.DeleteNote)
	r.GET("/notes/:id/download", c.DownloadNote)
	r.PUT("/notes/:id/rating", c.RateNote)
	return r, m
}

func multipartRequest(t *testing.T, fields map[string]string, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		part, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/notes", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestCreateNote(t *testing.T) {
	subjectID, professorID := uuid.New(), uuid.New()
	fields := func(mode string) map[string]string {
		return map[string]string{
			"title":       "Calc I midterm",
			"subjectId":   subjectID.String(),
			"professorId": professorID.String(),
			"year":        "2024",
			"mode":        mode,
		}
	}

	t.Run("file mode passes the upload through", func(t *testing.T) {
		session := newSession()
		r, m := setupNoteRouter(t, session)

		m.submission.EXPECT().
			Submit(gomock.Any(), session, gomock.Any()).
			DoAndReturn(func(_ any, _ *appauth.Session, in *services.SubmitNoteInput) (*models.Note, error) {
				assert.Equal(t, models.ModeFile, in.Mode)
				assert.Equal(t, "2024", in.Year)
				require.NotNil(t, in.File)
				assert.Equal(t, "calc.pdf", in.File.Filename)
				data, err := io.ReadAll(in.File.Content)
				require.NoError(t, err)
				assert.Equal(t, "%PDF-1.4", string(data))

				path := "u/calc.pdf"
				return &models.Note{ID: uuid.New(), Title: in.Title, FilePath: &path}, nil
			})

		w, body := perform(t, r, multipartRequest(t, fields("file"), "calc.pdf", []byte("%PDF-1.4")))
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, body.Success)
		assert.Contains(t, string(body.Data), "Calc I midterm")
	})

	t.Run("text mode ignores a stray file", func(t *testing.T) {
		session := newSession()
		r, m := setupNoteRouter(t, session)

		f := fields("text")
		f["content"] = "integrals"
		m.submission.EXPECT().
			Submit(gomock.Any(), session, gomock.Any()).
			DoAndReturn(func(_ any, _ *appauth.Session, in *services.SubmitNoteInput) (*models.Note, error) {
				assert.Nil(t, in.File)
				assert.Equal(t, "integrals", in.Content)
				return &models.Note{ID: uuid.New(), Title: in.Title, Content: &in.Content}, nil
			})

		w, _ := perform(t, r, multipartRequest(t, f, "calc.pdf", []byte("%PDF")))
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("oversized file is rejected before the workflow", func(t *testing.T) {
		r, _ := setupNoteRouter(t, newSession())

		big := bytes.Repeat([]byte("a"), testMaxUpload+1)
		w, body := perform(t, r, multipartRequest(t, fields("file"), "big.pdf", big))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, body.Error)
		assert.Contains(t, body.Error.Message, "larger than")
	})

	t.Run("workflow validation error maps to 400", func(t *testing.T) {
		r, m := setupNoteRouter(t, newSession())

		m.submission.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewValidationError("file required"))

		w, body := perform(t, r, multipartRequest(t, fields("file"), "", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "file required", body.Error.Message)
	})

	t.Run("missing session", func(t *testing.T) {
		r, _ := setupNoteRouter(t, nil)

		w, _ := perform(t, r, multipartRequest(t, fields("text"), "", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestListNotes(t *testing.T) {
	mathID := uuid.New()
	listing := func() *services.Listing {
		return &services.Listing{Notes: []models.NoteDetails{
			{Note: models.Note{ID: uuid.New(), Title: "Calc I", SubjectID: mathID}, SubjectName: "Math"},
			{Note: models.Note{ID: uuid.New(), Title: "Optics", SubjectID: uuid.New()}, SubjectName: "Physics"},
		}}
	}

	tests := []struct {
		name       string
		query      string
		mockErr    error
		expectCall bool
		wantStatus int
		wantTitles []string
	}{
		{name: "no filter", expectCall: true, wantStatus: http.StatusOK, wantTitles: []string{"Calc I", "Optics"}},
		{name: "search term", query: "?search=opt", expectCall: true, wantStatus: http.StatusOK, wantTitles: []string{"Optics"}},
		{name: "subject filter", query: "?subjectId=" + mathID.String(), expectCall: true, wantStatus: http.StatusOK, wantTitles: []string{"Calc I"}},
		{name: "upper case subject id", query: "?subjectId=" + strings.ToUpper(mathID.String()), expectCall: true, wantStatus: http.StatusOK, wantTitles: []string{"Calc I"}},
		{name: "bad subject id", query: "?subjectId=nope", wantStatus: http.StatusBadRequest},
		{
			name:       "store failure",
			mockErr:    apperrors.NewRemoteFailure("could not load notes", errors.New("conn refused")),
			expectCall: true,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, m := setupNoteRouter(t, newSession())
			if tt.expectCall {
				if tt.mockErr != nil {
					m.listing.EXPECT().ListNotes(gomock.Any()).Return(nil, tt.mockErr)
				} else {
					m.listing.EXPECT().ListNotes(gomock.Any()).Return(listing(), nil)
				}
			}

			w, body := perform(t, r, httptest.NewRequest(http.MethodGet, "/notes"+tt.query, nil))
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantTitles == nil {
				return
			}

			var notes []struct {
				Title string `json:"title"`
			}
			require.NoError(t, json.Unmarshal(body.Data, &notes))
			got := make([]string, 0, len(notes))
			for _, n := range notes {
				got = append(got, n.Title)
			}
			assert.Equal(t, tt.wantTitles, got)
		})
	}
}

func TestGetNote(t *testing.T) {
	noteID := uuid.New()

	t.Run("loaded view", func(t *testing.T) {
		session := newSession()
		r, m := setupNoteRouter(t, session)

		m.detail.EXPECT().LoadNote(gomock.Any(), session, noteID).Return(&services.NoteView{
			State:   services.DetailLoaded,
			Note:    &models.NoteDetails{Note: models.Note{ID: noteID, Title: "Calc I"}},
			Ratings: []models.RatingDetails{{Rating: models.Rating{Stars: 4, UserID: session.UserID()}, RaterName: "ala"}},
			Draft:   services.RatingDraft{Stars: 4},
		}, nil)

		w, body := perform(t, r, httptest.NewRequest(http.MethodGet, "/notes/"+noteID.String(), nil))
		assert.Equal(t, http.StatusOK, w.Code)

		var detail struct {
			State string `json:"state"`
			Draft struct {
				Stars int `json:"stars"`
			} `json:"draft"`
			Ratings []json.RawMessage `json:"ratings"`
		}
		require.NoError(t, json.Unmarshal(body.Data, &detail))
		assert.Equal(t, "loaded", detail.State)
		assert.Equal(t, 4, detail.Draft.Stars)
		assert.Len(t, detail.Ratings, 1)
	})

	t.Run("not found", func(t *testing.T) {
		r, m := setupNoteRouter(t, newSession())
		m.detail.EXPECT().LoadNote(gomock.Any(), gomock.Any(), noteID).
			Return(&services.NoteView{State: services.DetailNotFound}, apperrors.ErrNoteNotFound)

		w, body := perform(t, r, httptest.NewRequest(http.MethodGet, "/notes/"+noteID.String(), nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "note not found", body.Error.Message)
	})

	t.Run("malformed id", func(t *testing.T) {
		r, _ := setupNoteRouter(t, newSession())

		w, _ := perform(t, r, httptest.NewRequest(http.MethodGet, "/notes/42", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteNote(t *testing.T) {
	noteID := uuid.New()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "owner deletes", wantStatus: http.StatusNoContent},
		{name: "not the owner", err: apperrors.NewForbiddenError("only the owner can delete this note"), wantStatus: http.StatusForbidden},
		{name: "already gone", err: apperrors.ErrNoteNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := newSession()
			r, m := setupNoteRouter(t, session)
			m.listing.EXPECT().DeleteByID(gomock.Any(), session, noteID).Return(tt.err)

			w, _ := perform(t, r, httptest.NewRequest(http.MethodDelete, "/notes/"+noteID.String(), nil))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestDownloadNote(t *testing.T) {
	noteID := uuid.New()

	t.Run("streams the file as an attachment", func(t *testing.T) {
		session := newSession()
		r, m := setupNoteRouter(t, session)
		m.detail.EXPECT().DownloadByID(gomock.Any(), session, noteID).Return(&services.DownloadedFile{
			Filename:    "calc-i.pdf",
			ContentType: "application/pdf",
			Data:        []byte("%PDF-1.4"),
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notes/"+noteID.String()+"/download", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="calc-i.pdf"`, w.Header().Get("Content-Disposition"))
		assert.Equal(t, "%PDF-1.4", w.Body.String())
	})

	t.Run("text note has no file", func(t *testing.T) {
		r, m := setupNoteRouter(t, newSession())
		m.detail.EXPECT().DownloadByID(gomock.Any(), gomock.Any(), noteID).
			Return(nil, apperrors.NewValidationError("this note has no file"))

		w, _ := perform(t, r, httptest.NewRequest(http.MethodGet, "/notes/"+noteID.String()+"/download", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRateNote(t *testing.T) {
	noteID := uuid.New()

	tests := []struct {
		name       string
		body       string
		expectCall bool
		wantStatus int
	}{
		{name: "valid rating", body: `{"stars":5,"comment":"great"}`, expectCall: true, wantStatus: http.StatusOK},
		{name: "stars above range", body: `{"stars":6}`, wantStatus: http.StatusBadRequest},
		{name: "missing stars", body: `{"comment":"meh"}`, wantStatus: http.StatusBadRequest},
		{name: "malformed json", body: `{"stars":`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := newSession()
			r, m := setupNoteRouter(t, session)
			if tt.expectCall {
				m.detail.EXPECT().Rate(gomock.Any(), session, noteID, 5, "great").Return(&services.NoteView{
					State: services.DetailLoaded,
					Note:  &models.NoteDetails{Note: models.Note{ID: noteID}, AverageRating: 5},
					Draft: services.RatingDraft{Stars: 5, Comment: "great"},
				}, nil)
			}

			req := httptest.NewRequest(http.MethodPut, "/notes/"+noteID.String()+"/rating", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w, _ := perform(t, r, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestTaxonomyController(t *testing.T) {
	setup := func(t *testing.T) (*gin.Engine, *mocks.MockTaxonomyService) {
		svc := mocks.NewMockTaxonomyService(gomock.NewController(t))
		c := controllers.NewTaxonomyController(svc)
		r := newRouter(newSession())
		r.GET("/taxonomy", c.GetTaxonomy)
		r.GET("/subjects", c.ListSubjects)
		r.POST("/subjects", c.CreateSubject)
		r.GET("/professors", c.ListProfessors)
		r.POST("/professors", c.CreateProfessor)
		return r, svc
	}

	t.Run("taxonomy returns both lists", func(t *testing.T) {
		r, svc := setup(t)
		svc.EXPECT().Load(gomock.Any()).Return(&services.Catalog{
			Subjects:   []models.TaxonomyEntry{{ID: uuid.New(), Name: "Math"}},
			Professors: []models.TaxonomyEntry{{ID: uuid.New(), Name: "Dr. X"}, {ID: uuid.New(), Name: "Dr. Y"}},
		}, nil)

		w, body := perform(t, r, httptest.NewRequest(http.MethodGet, "/taxonomy", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Subjects   []json.RawMessage `json:"subjects"`
			Professors []json.RawMessage `json:"professors"`
		}
		require.NoError(t, json.Unmarshal(body.Data, &resp))
		assert.Len(t, resp.Subjects, 1)
		assert.Len(t, resp.Professors, 2)
	})

	t.Run("taxonomy load failure", func(t *testing.T) {
		r, svc := setup(t)
		svc.EXPECT().Load(gomock.Any()).
			Return(nil, apperrors.NewRemoteFailure("could not load subjects and professors", errors.New("timeout")))

		w, body := perform(t, r, httptest.NewRequest(http.MethodGet, "/taxonomy", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "could not load subjects and professors", body.Error.Message)
	})

	t.Run("professors list uses the professor kind", func(t *testing.T) {
		r, svc := setup(t)
		svc.EXPECT().List(gomock.Any(), models.KindProfessor).Return([]models.TaxonomyEntry{}, nil)

		w, body := perform(t, r, httptest.NewRequest(http.MethodGet, "/professors", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, string(body.Data))
	})

	t.Run("quick add subject", func(t *testing.T) {
		r, svc := setup(t)
		id := uuid.New()
		svc.EXPECT().QuickAdd(gomock.Any(), nil, models.KindSubject, "  Topology ").
			Return(&models.TaxonomyEntry{ID: id, Name: "Topology"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/subjects", strings.NewReader(`{"name":"  Topology "}`))
		req.Header.Set("Content-Type", "application/json")
		w, body := perform(t, r, req)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, string(body.Data), id.String())
	})

	t.Run("blank professor name", func(t *testing.T) {
		r, svc := setup(t)
		svc.EXPECT().QuickAdd(gomock.Any(), nil, models.KindProfessor, " ").
			Return(nil, apperrors.NewValidationError("name required"))

		req := httptest.NewRequest(http.MethodPost, "/professors", strings.NewReader(`{"name":" "}`))
		req.Header.Set("Content-Type", "application/json")
		w, body := perform(t, r, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "name required", body.Error.Message)
	})
}

func TestSessionController(t *testing.T) {
	setup := func(t *testing.T, session *appauth.Session) (*gin.Engine, *mocks.MockSessionService) {
		svc := mocks.NewMockSessionService(gomock.NewController(t))
		c := controllers.NewSessionController(svc)
		r := newRouter(session)
		r.GET("/session", c.GetSession)
		r.POST("/session/logout", c.Logout)
		return r, svc
	}

	t.Run("resolves the profile", func(t *testing.T) {
		session := newSession()
		r, svc := setup(t, session)
		svc.EXPECT().Resolve(gomock.Any(), session).
			Return(&models.UserProfile{ID: session.UserID(), Username: "ala"}, nil)

		w, body := perform(t, r, httptest.NewRequest(http.MethodGet, "/session", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			UserID   uuid.UUID `json:"userId"`
			Email    string    `json:"email"`
			Username string    `json:"username"`
		}
		require.NoError(t, json.Unmarshal(body.Data, &resp))
		assert.Equal(t, session.UserID(), resp.UserID)
		assert.Equal(t, "ala@uni.test", resp.Email)
		assert.Equal(t, "ala", resp.Username)
	})

	t.Run("revoked token", func(t *testing.T) {
		session := newSession()
		r, svc := setup(t, session)
		svc.EXPECT().Resolve(gomock.Any(), session).Return(nil, apperrors.ErrTokenInvalid)

		w, _ := perform(t, r, httptest.NewRequest(http.MethodGet, "/session", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("logout", func(t *testing.T) {
		session := newSession()
		r, svc := setup(t, session)
		svc.EXPECT().SignOut(gomock.Any(), session).Return(nil)

		w, _ := perform(t, r, httptest.NewRequest(http.MethodPost, "/session/logout", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("logout without session", func(t *testing.T) {
		r, _ := setup(t, nil)

		w, _ := perform(t, r, httptest.NewRequest(http.MethodPost, "/session/logout", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
