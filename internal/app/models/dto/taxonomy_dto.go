package dto

import (
	"github.com/google/uuid"
	"github.com/notehub/notehub/internal/app/models"
)

// CreateTaxonomyEntryRequest is the body of a subject or professor quick-add
type CreateTaxonomyEntryRequest struct {
	Name string `json:"name" example:"Linear Algebra"`
}

// TaxonomyEntryResponse is a subject or professor
type TaxonomyEntryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name" example:"Linear Algebra"`
}

// TaxonomyResponse carries both lookup lists
type TaxonomyResponse struct {
	Subjects   []TaxonomyEntryResponse `json:"subjects"`
	Professors []TaxonomyEntryResponse `json:"professors"`
}

// NewTaxonomyEntryResponses maps entries, keeping their order
func NewTaxonomyEntryResponses(entries []models.TaxonomyEntry) []TaxonomyEntryResponse {
	out := make([]TaxonomyEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, TaxonomyEntryResponse{ID: e.ID, Name: e.Name})
	}
	return out
}
