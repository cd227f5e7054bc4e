package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinStars = 1
	MaxStars = 5
)

// Rating is one user's rating of one note. (NoteID, UserID) is unique.
type Rating struct {
	ID        uuid.UUID `db:"id" json:"id"`
	NoteID    uuid.UUID `db:"note_id" json:"noteId"`
	UserID    uuid.UUID `db:"user_id" json:"userId"`
	Stars     int       `db:"stars" json:"stars"`
	Comment   string    `db:"comment" json:"comment"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// RatingDetails is a rating joined with the rater's display name.
type RatingDetails struct {
	Rating
	RaterName string `db:"rater_name" json:"raterName"`
}

// Download is an append-only record of one file fetch.
type Download struct {
	NoteID    uuid.UUID `db:"note_id" json:"noteId"`
	UserID    uuid.UUID `db:"user_id" json:"userId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
