package models

import "github.com/google/uuid"

// UserProfile holds the display name of an identity-provider user.
type UserProfile struct {
	ID       uuid.UUID `db:"id" json:"id"`
	Username string    `db:"username" json:"username"`
}
