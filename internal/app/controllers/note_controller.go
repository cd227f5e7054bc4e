package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/notehub/notehub/internal/app/models"
	"github.com/notehub/notehub/internal/app/models/dto"
	"github.com/notehub/notehub/internal/app/services"
	"github.com/notehub/notehub/internal/middleware"
	"github.com/notehub/notehub/internal/pkg/apperrors"
	"github.com/notehub/notehub/internal/pkg/logger"
)

// multipartOverhead is allowed on top of the file limit for the other form fields
const multipartOverhead = 1 << 20

// NoteController handles note operations
type NoteController struct {
	submission     services.NoteSubmissionService
	listing        services.NoteListingService
	detail         services.NoteDetailService
	maxUploadBytes int64
}

// NewNoteController creates a new NoteController
func NewNoteController(
	submission services.NoteSubmissionService,
	listing services.NoteListingService,
	detail services.NoteDetailService,
	maxUploadBytes int64,
) *NoteController {
	return &NoteController{
		submission:     submission,
		listing:        listing,
		detail:         detail,
		maxUploadBytes: maxUploadBytes,
	}
}

// CreateNote godoc
// @Summary Submit a note
// @Description Create a note from an uploaded file (mode=file) or typed text (mode=text)
// @Tags notes
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param subjectId formData string true "Subject ID"
// @Param professorId formData string true "Professor ID"
// @Param year formData int true "Year (2000-2100)"
// @Param mode formData string true "Submission mode" Enums(file, text)
// @Param file formData file false "Note file, required in file mode"
// @Param content formData string false "Note text, required in text mode"
// @Success 201 {object} dto.APIResponse{data=dto.NoteResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes [post]
func (c *NoteController) CreateNote(ctx *gin.Context) {
	session, err := middleware.GetSession(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, c.maxUploadBytes+multipartOverhead)

	var req dto.CreateNoteRequest
	if !middleware.BindAndValidate(ctx, &req, ctx.ShouldBind) {
		return
	}

	in := &services.SubmitNoteInput{
		Title:       req.Title,
		SubjectID:   req.SubjectID,
		ProfessorID: req.ProfessorID,
		Year:        req.Year,
		Mode:        models.SubmissionMode(req.Mode),
		Content:     req.Content,
	}

	fileHeader, err := ctx.FormFile("file")
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("could not read the uploaded file"))
		return
	case in.Mode == models.ModeFile:
		if fileHeader.Size > c.maxUploadBytes {
			middleware.HandleAPIError(ctx, apperrors.NewValidationError(
				fmt.Sprintf("file is larger than %d MB", c.maxUploadBytes>>20)))
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
			middleware.HandleAPIError(ctx, apperrors.NewValidationError("could not read the uploaded file"))
			return
		}
		defer file.Close()
		in.File = &services.Upload{Filename: fileHeader.Filename, Content: file, Size: fileHeader.Size}
	}

	note, err := c.submission.Submit(ctx.Request.Context(), session, in)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewNoteResponse(note)))
}

// ListNotes godoc
// @Summary List notes
// @Description List all notes newest first, optionally filtered by a search term and a subject
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param search query string false "Matches title, subject name or professor name (case-insensitive)"
// @Param subjectId query string false "Subject ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.NoteResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes [get]
func (c *NoteController) ListNotes(ctx *gin.Context) {
	var query dto.ListNotesQuery
	if !middleware.BindAndValidate(ctx, &query, ctx.ShouldBindQuery) {
		return
	}

	subjectID := uuid.Nil
	if query.SubjectID != "" {
		id, err := uuid.Parse(query.SubjectID)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid subjectId"))
			return
		}
		subjectID = id
	}

	listing, err := c.listing.ListNotes(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	notes := listing.Filter(query.Search, subjectID)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewNoteListResponse(notes)))
}

// GetNote godoc
// @Summary Get a note
// @Description Get one note with its ratings, newest first, and the caller's own rating
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Note ID"
// @Success 200 {object} dto.APIResponse{data=dto.NoteDetailResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes/{id} [get]
func (c *NoteController) GetNote(ctx *gin.Context) {
	session, err := middleware.GetSession(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	view, err := c.detail.LoadNote(ctx.Request.Context(), session, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(newNoteDetailResponse(view)))
}

// DeleteNote godoc
// @Summary Delete a note
// @Description Delete a note owned by the caller. The stored file is kept.
// @Tags notes
// @Security BearerAuth
// @Param id path string true "Note ID"
// @Success 204
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes/{id} [delete]
func (c *NoteController) DeleteNote(ctx *gin.Context) {
	session, err := middleware.GetSession(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.listing.DeleteByID(ctx.Request.Context(), session, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// DownloadNote godoc
// @Summary Download a note file
// @Description Download the file of a note and record the download
// @Tags notes
// @Produce octet-stream
// @Security BearerAuth
// @Param id path string true "Note ID"
// @Success 200 {file} file
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes/{id}/download [get]
func (c *NoteController) DownloadNote(ctx *gin.Context) {
	session, err := middleware.GetSession(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	file, err := c.detail.DownloadByID(ctx.Request.Context(), session, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	ctx.Data(http.StatusOK, file.ContentType, file.Data)
}

// RateNote godoc
// @Summary Rate a note
// @Description Create or replace the caller's rating of a note and return the reloaded note
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Note ID"
// @Param rating body dto.RateNoteRequest true "Rating"
// @Success 200 {object} dto.APIResponse{data=dto.NoteDetailResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /notes/{id}/rating [put]
func (c *NoteController) RateNote(ctx *gin.Context) {
	session, err := middleware.GetSession(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.RateNoteRequest
	if !middleware.BindAndValidate(ctx, &req, ctx.ShouldBindJSON) {
		return
	}

	view, err := c.detail.Rate(ctx.Request.Context(), session, id, req.Stars, req.Comment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(newNoteDetailResponse(view)))
}

func newNoteDetailResponse(view *services.NoteView) dto.NoteDetailResponse {
	return dto.NoteDetailResponse{
		State:   string(view.State),
		Note:    dto.NewNoteDetailsResponse(view.Note),
		Ratings: dto.NewRatingResponses(view.Ratings),
		Draft:   dto.RatingDraft{Stars: view.Draft.Stars, Comment: view.Draft.Comment},
	}
}
