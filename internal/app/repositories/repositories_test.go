package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/notehub/notehub/internal/app/models"
	"github.com/notehub/notehub/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRow scans fixed values into the destinations in order
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *uuid.UUID:
			*p = r.values[i].(uuid.UUID)
		case *time.Time:
			*p = r.values[i].(time.Time)
		case *string:
			*p = r.values[i].(string)
		case *int64:
			*p = r.values[i].(int64)
		}
	}
	return nil
}

// fakeDB records the last statement and answers with canned results
type fakeDB struct {
	sql  string
	args []any
	row  fakeRow
	tag  pgconn.CommandTag
	err  error
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.sql, f.args = sql, args
	return f.tag, f.err
}

func (f *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.sql, f.args = sql, args
	return nil, errors.New("not used")
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.sql, f.args = sql, args
	return f.row
}

func TestTaxonomyQueries(t *testing.T) {
	sql, _, err := listTaxonomyQuery(models.KindProfessor.Table()).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name FROM professors ORDER BY name ASC", sql)

	sql, args, err := createTaxonomyQuery("subjects", "Algebra").ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "INSERT INTO subjects")
	assert.Contains(t, sql, "RETURNING id, name")
	assert.Equal(t, []any{"Algebra"}, args)
}

func TestTaxonomyRepository_UnknownKind(t *testing.T) {
	fake := &fakeDB{}
	repo := NewTaxonomyRepository(fake)

	_, err := repo.Create(context.Background(), models.TaxonomyKind("course"), "x")
	assert.Error(t, err)
	assert.Empty(t, fake.sql)
}

func TestTaxonomyRepository_Create(t *testing.T) {
	id := uuid.New()
	fake := &fakeDB{row: fakeRow{values: []any{id, "Physics"}}}
	repo := NewTaxonomyRepository(fake)

	entry, err := repo.Create(context.Background(), models.KindSubject, "Physics")
	require.NoError(t, err)
	assert.Equal(t, &models.TaxonomyEntry{ID: id, Name: "Physics"}, entry)
	assert.Contains(t, fake.sql, "INSERT INTO subjects")
}

func TestSelectNoteDetailsQuery(t *testing.T) {
	sql, _, err := selectNoteDetailsQuery().OrderBy("n.created_at DESC").ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "LEFT JOIN user_profiles u ON u.id = n.user_id")
	assert.Contains(t, sql, "AS download_count")
	assert.Contains(t, sql, "AS average_rating")
	assert.Contains(t, sql, "ORDER BY n.created_at DESC")
}

func TestNoteRepository_Create(t *testing.T) {
	id := uuid.New()
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	fake := &fakeDB{row: fakeRow{values: []any{id, created}}}
	repo := NewNoteRepository(fake)

	content := "derivative rules..."
	ft := models.FileTypeText
	note := &models.Note{Title: "Calc I midterm", Year: 2024, FileType: &ft, Content: &content}

	require.NoError(t, repo.Create(context.Background(), note))
	assert.Equal(t, id, note.ID)
	assert.Equal(t, created, note.CreatedAt)
	assert.Contains(t, fake.sql, "RETURNING id, created_at")
	require.Len(t, fake.args, 8)
	assert.Equal(t, "text", *(fake.args[6].(*string)))
	assert.Nil(t, fake.args[5])
}

func TestNoteRepository_GetDetails_NoRows(t *testing.T) {
	fake := &fakeDB{row: fakeRow{err: pgx.ErrNoRows}}
	repo := NewNoteRepository(fake)

	_, err := repo.GetDetails(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestNoteRepository_DeleteOwned(t *testing.T) {
	noteID, userID := uuid.New(), uuid.New()

	tests := []struct {
		name    string
		tag     string
		err     error
		wantErr error
	}{
		{name: "deleted", tag: "DELETE 1"},
		{name: "not owned or missing", tag: "DELETE 0", wantErr: apperrors.ErrResourceNotFound},
		{name: "store failure", err: errors.New("conn reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeDB{tag: pgconn.NewCommandTag(tt.tag), err: tt.err}
			repo := NewNoteRepository(fake)

			err := repo.DeleteOwned(context.Background(), noteID, userID)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.err != nil:
				assert.ErrorIs(t, err, tt.err)
			default:
				assert.NoError(t, err)
			}
			assert.Equal(t, "DELETE FROM notes WHERE id = $1 AND user_id = $2", fake.sql)
			// squirrel.Eq stores uuid values through driver.Valuer
			assert.Equal(t, []any{noteID.String(), userID.String()}, fake.args)
		})
	}
}

func TestUpsertRatingQuery(t *testing.T) {
	rating := &models.Rating{NoteID: uuid.New(), UserID: uuid.New(), Stars: 4, Comment: "good"}

	sql, args, err := upsertRatingQuery(rating).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "ON CONFLICT (note_id, user_id) DO UPDATE SET stars = EXCLUDED.stars, comment = EXCLUDED.comment, created_at = now()")
	assert.Equal(t, []any{rating.NoteID, rating.UserID, 4, "good"}, args)
}

func TestListRatingsQuery(t *testing.T) {
	noteID := uuid.New()
	sql, args, err := listRatingsQuery(noteID).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "WHERE r.note_id = $1")
	assert.Contains(t, sql, "ORDER BY r.created_at DESC")
	assert.Equal(t, []any{noteID.String()}, args)
}

func TestProfileRepository_Ensure(t *testing.T) {
	id := uuid.New()
	fake := &fakeDB{row: fakeRow{values: []any{id, "existing"}}}
	repo := NewProfileRepository(fake)

	p, err := repo.Ensure(context.Background(), &models.UserProfile{ID: id, Username: "ala"})
	require.NoError(t, err)
	assert.Equal(t, "existing", p.Username)
	assert.Contains(t, fake.sql, "ON CONFLICT (id) DO UPDATE SET username = user_profiles.username")
}

func TestDownloadRepository_Record(t *testing.T) {
	noteID, userID := uuid.New(), uuid.New()
	fake := &fakeDB{tag: pgconn.NewCommandTag("INSERT 0 1")}
	repo := NewDownloadRepository(fake)

	require.NoError(t, repo.Record(context.Background(), noteID, userID))
	assert.Contains(t, fake.sql, "INSERT INTO downloads")
	assert.Equal(t, []any{noteID, userID}, fake.args)
}
