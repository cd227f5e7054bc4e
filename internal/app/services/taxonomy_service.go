package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/notehub/notehub/internal/app/models"
	"github.com/notehub/notehub/internal/app/repositories"
	"github.com/notehub/notehub/internal/pkg/apperrors"
	"github.com/notehub/notehub/internal/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// Catalog is the form-scoped copy of both lookup lists plus the current choice of
// each. Quick-added entries are appended, so the lists are only name-ordered up to
// the first quick-add.
type Catalog struct {
	Subjects            []models.TaxonomyEntry
	Professors          []models.TaxonomyEntry
	SelectedSubjectID   uuid.UUID
	SelectedProfessorID uuid.UUID
}

// Entries returns the list of the given kind
func (c *Catalog) Entries(kind models.TaxonomyKind) []models.TaxonomyEntry {
	if kind == models.KindProfessor {
		return c.Professors
	}
	return c.Subjects
}

func (c *Catalog) add(kind models.TaxonomyKind, entry models.TaxonomyEntry) {
	switch kind {
	case models.KindSubject:
		c.Subjects = append(c.Subjects, entry)
		c.SelectedSubjectID = entry.ID
	case models.KindProfessor:
		c.Professors = append(c.Professors, entry)
		c.SelectedProfessorID = entry.ID
	}
}

// TaxonomyService defines the interface for subject and professor lookups
type TaxonomyService interface {
	Load(ctx context.Context) (*Catalog, error)
	List(ctx context.Context, kind models.TaxonomyKind) ([]models.TaxonomyEntry, error)
	QuickAdd(ctx context.Context, catalog *Catalog, kind models.TaxonomyKind, name string) (*models.TaxonomyEntry, error)
}

type taxonomyServiceImpl struct {
	store repositories.TaxonomyStore
}

// NewTaxonomyService creates a new TaxonomyService
func NewTaxonomyService(store repositories.TaxonomyStore) TaxonomyService {
	return &taxonomyServiceImpl{store: store}
}

// Load fetches subjects and professors concurrently and waits for both
func (s *taxonomyServiceImpl) Load(ctx context.Context) (*Catalog, error) {
	var catalog Catalog

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		subjects, err := s.store.List(gctx, models.KindSubject)
		catalog.Subjects = subjects
		return err
	})
	g.Go(func() error {
		professors, err := s.store.List(gctx, models.KindProfessor)
		catalog.Professors = professors
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("Error loading taxonomy")
		return nil, apperrors.NewRemoteFailure("could not load subjects and professors", err)
	}
	return &catalog, nil
}

// List returns the entries of one kind ordered by name
func (s *taxonomyServiceImpl) List(ctx context.Context, kind models.TaxonomyKind) ([]models.TaxonomyEntry, error) {
	if !kind.Valid() {
		return nil, apperrors.NewValidationError("unknown taxonomy kind")
	}

	entries, err := s.store.List(ctx, kind)
	if err != nil {
		logger.Error().Err(err).Str("kind", string(kind)).Msg("Error listing taxonomy")
		return nil, apperrors.NewRemoteFailure("could not load "+kind.Table(), err)
	}
	return entries, nil
}

// QuickAdd creates an entry from a trimmed name. When catalog is non-nil the new
// entry is appended to it and selected; a failed insert leaves it untouched.
func (s *taxonomyServiceImpl) QuickAdd(ctx context.Context, catalog *Catalog, kind models.TaxonomyKind, name string) (*models.TaxonomyEntry, error) {
	if !kind.Valid() {
		return nil, apperrors.NewValidationError("unknown taxonomy kind")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("name required")
	}

	entry, err := s.store.Create(ctx, kind, name)
	if err != nil {
		logger.Error().Err(err).Str("kind", string(kind)).Str("name", name).Msg("Error creating taxonomy entry")
		return nil, apperrors.NewRemoteFailure("could not add "+string(kind), err)
	}

	if catalog != nil {
		catalog.add(kind, *entry)
	}
	return entry, nil
}
