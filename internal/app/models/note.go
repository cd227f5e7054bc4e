package models

import (
	"time"

	"github.com/google/uuid"
)

// FileType classifies what a note carries
type FileType string

const (
	FileTypePDF   FileType = "pdf"
	FileTypeImage FileType = "image"
	FileTypeText  FileType = "text"
)

// SubmissionMode selects which branch of the submission workflow runs
type SubmissionMode string

const (
	ModeFile SubmissionMode = "file"
	ModeText SubmissionMode = "text"
)

// Note is a row of the notes table. Exactly one of FilePath and Content is non-nil.
type Note struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	SubjectID   uuid.UUID `db:"subject_id" json:"subjectId"`
	ProfessorID uuid.UUID `db:"professor_id" json:"professorId"`
	Year        int       `db:"year" json:"year"`
	UserID      uuid.UUID `db:"user_id" json:"userId"`
	FilePath    *string   `db:"file_path" json:"filePath"`
	FileType    *FileType `db:"file_type" json:"fileType"`
	Content     *string   `db:"content" json:"content"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// HasFile reports whether the note is backed by a stored blob.
func (n *Note) HasFile() bool {
	return n.FilePath != nil && *n.FilePath != ""
}

// NoteDetails is a note joined with its taxonomy names, owner name and the
// aggregates the store computes.
type NoteDetails struct {
	Note
	SubjectName   string  `db:"subject_name" json:"subjectName"`
	ProfessorName string  `db:"professor_name" json:"professorName"`
	OwnerName     string  `db:"owner_name" json:"ownerName"`
	DownloadCount int64   `db:"download_count" json:"downloadCount"`
	AverageRating float64 `db:"average_rating" json:"averageRating"`
}
