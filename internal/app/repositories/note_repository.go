package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/notehub/notehub/internal/app/models"
	"github.com/notehub/notehub/internal/db"
	"github.com/notehub/notehub/internal/pkg/apperrors"
	"github.com/notehub/notehub/internal/pkg/dberrors"
	"github.com/notehub/notehub/internal/pkg/logger"
)

// NoteRepository handles database operations for notes
type NoteRepository struct {
	db db.DBTX
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(conn db.DBTX) *NoteRepository {
	return &NoteRepository{db: conn}
}

// selectNoteDetailsQuery joins names with LEFT JOINs so a note whose owner has no
// profile row still lists. Counts are computed by the store on every read.
func selectNoteDetailsQuery() squirrel.SelectBuilder {
	return psql.Select(
		"n.id", "n.title", "n.subject_id", "n.professor_id", "n.year", "n.user_id",
		"n.file_path", "n.file_type", "n.content", "n.created_at",
		"COALESCE(s.name, '') AS subject_name",
		"COALESCE(p.name, '') AS professor_name",
		"COALESCE(u.username, '') AS owner_name",
		"(SELECT COUNT(*) FROM downloads d WHERE d.note_id = n.id) AS download_count",
		"(SELECT COALESCE(AVG(r.stars), 0)::float8 FROM ratings r WHERE r.note_id = n.id) AS average_rating",
	).From("notes n").
		LeftJoin("subjects s ON s.id = n.subject_id").
		LeftJoin("professors p ON p.id = n.professor_id").
		LeftJoin("user_profiles u ON u.id = n.user_id")
}

func insertNoteQuery(note *models.Note) squirrel.InsertBuilder {
	var fileType *string
	if note.FileType != nil {
		s := string(*note.FileType)
		fileType = &s
	}
	return psql.Insert("notes").
		Columns("title", "subject_id", "professor_id", "year", "user_id", "file_path", "file_type", "content").
		Values(note.Title, note.SubjectID, note.ProfessorID, note.Year, note.UserID, note.FilePath, fileType, note.Content).
		Suffix("RETURNING id, created_at")
}

func deleteOwnedNoteQuery(id, userID uuid.UUID) squirrel.DeleteBuilder {
	return psql.Delete("notes").Where(squirrel.Eq{"id": id, "user_id": userID})
}

func scanNoteDetails(row pgx.Row) (*models.NoteDetails, error) {
	var (
		n        models.NoteDetails
		fileType *string
	)
	err := row.Scan(
		&n.ID, &n.Title, &n.SubjectID, &n.ProfessorID, &n.Year, &n.UserID,
		&n.FilePath, &fileType, &n.Content, &n.CreatedAt,
		&n.SubjectName, &n.ProfessorName, &n.OwnerName,
		&n.DownloadCount, &n.AverageRating,
	)
	if err != nil {
		return nil, err
	}
	if fileType != nil {
		ft := models.FileType(*fileType)
		n.FileType = &ft
	}
	return &n, nil
}

// ListDetails returns every note, newest first
func (r *NoteRepository) ListDetails(ctx context.Context) ([]models.NoteDetails, error) {
	sql, args, err := selectNoteDetailsQuery().OrderBy("n.created_at DESC").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list notes SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]models.NoteDetails, 0)
	for rows.Next() {
		n, err := scanNoteDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}

	return notes, nil
}

// GetDetails returns one note or apperrors.ErrNoteNotFound
func (r *NoteRepository) GetDetails(ctx context.Context, id uuid.UUID) (*models.NoteDetails, error) {
	sql, args, err := selectNoteDetailsQuery().Where(squirrel.Eq{"n.id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get note SQL")
		return nil, err
	}

	n, err := scanNoteDetails(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, fmt.Errorf("get note %s: %w", id, err)
	}
	return n, nil
}

// Create inserts note and fills in its generated id and timestamp
func (r *NoteRepository) Create(ctx context.Context, note *models.Note) error {
	sql, args, err := insertNoteQuery(note).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create note SQL")
		return err
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&note.ID, &note.CreatedAt); err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

// DeleteOwned deletes the note only when userID owns it. No matching row yields
// apperrors.ErrNoteNotFound.
func (r *NoteRepository) DeleteOwned(ctx context.Context, id, userID uuid.UUID) error {
	sql, args, err := deleteOwnedNoteQuery(id, userID).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete note SQL")
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete note %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNoteNotFound
	}
	return nil
}
