package models

import "github.com/google/uuid"

// TaxonomyKind names one of the two tagging vocabularies
type TaxonomyKind string

const (
	KindSubject   TaxonomyKind = "subject"
	KindProfessor TaxonomyKind = "professor"
)

// Table returns the table that stores entries of this kind.
func (k TaxonomyKind) Table() string {
	switch k {
	case KindSubject:
		return "subjects"
	case KindProfessor:
		return "professors"
	}
	return ""
}

// Valid reports whether k is a known kind.
func (k TaxonomyKind) Valid() bool {
	return k.Table() != ""
}

// TaxonomyEntry is a subject or a professor
type TaxonomyEntry struct {
	ID   uuid.UUID `db:"id" json:"id"`
	Name string    `db:"name" json:"name"`
}
