package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/notehub/notehub/internal/app/models"
)

// CreateNoteRequest is the multipart form of a note submission. The file part is
// read separately by the controller. Fields are checked by the submission
// workflow, which applies its rules in a fixed order.
type CreateNoteRequest struct {
	Title       string `form:"title"`
	SubjectID   string `form:"subjectId"`
	ProfessorID string `form:"professorId"`
	Year        string `form:"year"`
	Mode        string `form:"mode"`
	Content     string `form:"content"`
}

// ListNotesQuery holds the listing filter parameters
type ListNotesQuery struct {
	Search    string `form:"search"`
	SubjectID string `form:"subjectId"`
}

// RateNoteRequest is the body of a rating submission
type RateNoteRequest struct {
	Stars   int    `json:"stars" validate:"required,min=1,max=5" example:"4"`
	Comment string `json:"comment" example:"Clear and complete"`
}

// NoteResponse is a note as returned by the API
type NoteResponse struct {
	ID            uuid.UUID        `json:"id"`
	Title         string           `json:"title" example:"Calc I midterm"`
	SubjectID     uuid.UUID        `json:"subjectId"`
	SubjectName   string           `json:"subjectName,omitempty" example:"Math"`
	ProfessorID   uuid.UUID        `json:"professorId"`
	ProfessorName string           `json:"professorName,omitempty" example:"Dr. X"`
	Year          int              `json:"year" example:"2024"`
	UserID        uuid.UUID        `json:"userId"`
	OwnerName     string           `json:"ownerName,omitempty" example:"ala"`
	FilePath      *string          `json:"filePath"`
	FileType      *models.FileType `json:"fileType" example:"pdf"`
	Content       *string          `json:"content"`
	DownloadCount int64            `json:"downloadCount" example:"3"`
	AverageRating float64          `json:"averageRating" example:"4.5"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// RatingResponse is one entry of a note's rating history
type RatingResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	RaterName string    `json:"raterName" example:"ala"`
	Stars     int       `json:"stars" example:"5"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// RatingDraft is the caller's own rating, pre-filled for editing
type RatingDraft struct {
	Stars   int    `json:"stars" example:"0"`
	Comment string `json:"comment"`
}

// NoteDetailResponse is the detail view of one note
type NoteDetailResponse struct {
	State   string           `json:"state" example:"loaded"`
	Note    NoteResponse     `json:"note"`
	Ratings []RatingResponse `json:"ratings"`
	Draft   RatingDraft      `json:"draft"`
}

// NewNoteResponse maps a plain note row
func NewNoteResponse(n *models.Note) NoteResponse {
	return NoteResponse{
		ID:          n.ID,
		Title:       n.Title,
		SubjectID:   n.SubjectID,
		ProfessorID: n.ProfessorID,
		Year:        n.Year,
		UserID:      n.UserID,
		FilePath:    n.FilePath,
		FileType:    n.FileType,
		Content:     n.Content,
		CreatedAt:   n.CreatedAt,
	}
}

// NewNoteDetailsResponse maps a joined note row
func NewNoteDetailsResponse(n *models.NoteDetails) NoteResponse {
	resp := NewNoteResponse(&n.Note)
	resp.SubjectName = n.SubjectName
	resp.ProfessorName = n.ProfessorName
	resp.OwnerName = n.OwnerName
	resp.DownloadCount = n.DownloadCount
	resp.AverageRating = n.AverageRating
	return resp
}

// NewNoteListResponse maps a listing, keeping its order
func NewNoteListResponse(notes []models.NoteDetails) []NoteResponse {
	out := make([]NoteResponse, 0, len(notes))
	for i := range notes {
		out = append(out, NewNoteDetailsResponse(&notes[i]))
	}
	return out
}

// NewRatingResponses maps a rating history
func NewRatingResponses(ratings []models.RatingDetails) []RatingResponse {
	out := make([]RatingResponse, 0, len(ratings))
	for _, r := range ratings {
		out = append(out, RatingResponse{
			ID:        r.ID,
			UserID:    r.UserID,
			RaterName: r.RaterName,
			Stars:     r.Stars,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
		})
	}
	return out
}
