package auth

import (
	"github.com/notehub/notehub/internal/app/models"
	"github.com/notehub/notehub/internal/pkg/apperrors"
)

// CanModifyNote reports whether the principal owns the note
func CanModifyNote(p Principal, note *models.Note) bool {
	return note != nil && note.UserID == p.ID
}

// ValidateNoteOwnership returns a permission error unless the principal owns the note
func ValidateNoteOwnership(p Principal, note *models.Note) error {
	if note == nil {
		return apperrors.ErrNoteNotFound
	}
	if !CanModifyNote(p, note) {
		return apperrors.NewForbiddenError("only the owner can delete this note")
	}
	return nil
}
