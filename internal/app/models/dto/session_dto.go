package dto

import "github.com/google/uuid"

// SessionResponse describes the authenticated principal
type SessionResponse struct {
	UserID   uuid.UUID `json:"userId"`
	Email    string    `json:"email" example:"ala@uni.test"`
	Username string    `json:"username" example:"ala"`
}
