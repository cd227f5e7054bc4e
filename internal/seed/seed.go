package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/notehub/notehub/internal/app/models"
	"github.com/notehub/notehub/internal/app/repositories"
	"github.com/rs/zerolog"
)

// Defaults lists the subjects and professors created on an empty database
type Defaults struct {
	Subjects   []string
	Professors []string
}

// CreateDefaultData fills each empty lookup table with its defaults. Tables that
// already hold entries are left alone. Errors are collected so one failing kind
// does not block the other.
func CreateDefaultData(ctx context.Context, store repositories.TaxonomyStore, defaults Defaults, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data...")

	var finalErr error
	finalErr = errors.Join(finalErr, seedKind(ctx, store, models.KindSubject, defaults.Subjects, lgr))
	finalErr = errors.Join(finalErr, seedKind(ctx, store, models.KindProfessor, defaults.Professors, lgr))

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}

func seedKind(ctx context.Context, store repositories.TaxonomyStore, kind models.TaxonomyKind, names []string, lgr zerolog.Logger) error {
	if len(names) == 0 {
		return nil
	}

	count, err := store.Count(ctx, kind)
	if err != nil {
		lgr.Error().Err(err).Str("kind", string(kind)).Msg("Error counting existing entries")
		return fmt.Errorf("count %s: %w", kind.Table(), err)
	}
	if count > 0 {
		lgr.Info().Str("kind", string(kind)).Int64("count", count).Msg("Entries already exist, skipping creation")
		return nil
	}

	var finalErr error
	created := 0
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, err := store.Create(ctx, kind, name); err != nil {
			lgr.Error().Err(err).Str("kind", string(kind)).Str("name", name).Msg("Error creating default entry")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		created++
	}

	lgr.Info().Str("kind", string(kind)).Int("created", created).Msg("Default entries created")
	return finalErr
}
