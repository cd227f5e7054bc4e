package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/notehub/notehub/internal/app/models"
	"github.com/notehub/notehub/internal/app/services"
	"github.com/notehub/notehub/internal/mocks"
	"github.com/notehub/notehub/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func entry(name string) models.TaxonomyEntry {
	return models.TaxonomyEntry{ID: uuid.New(), Name: name}
}

func TestTaxonomyService_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTaxonomyStore(ctrl)
	svc := services.NewTaxonomyService(store)

	subjects := []models.TaxonomyEntry{entry("Algebra"), entry("Physics")}
	professors := []models.TaxonomyEntry{entry("Dr. X")}
	store.EXPECT().List(gomock.Any(), models.KindSubject).Return(subjects, nil)
	store.EXPECT().List(gomock.Any(), models.KindProfessor).Return(professors, nil)

	catalog, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, subjects, catalog.Subjects)
	assert.Equal(t, professors, catalog.Professors)
	assert.Equal(t, uuid.Nil, catalog.SelectedSubjectID)
}

func TestTaxonomyService_Load_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTaxonomyStore(ctrl)
	svc := services.NewTaxonomyService(store)

	store.EXPECT().List(gomock.Any(), models.KindSubject).Return(nil, errors.New("unreachable"))
	store.EXPECT().List(gomock.Any(), models.KindProfessor).Return([]models.TaxonomyEntry{}, nil).AnyTimes()

	catalog, err := svc.Load(context.Background())
	assert.Nil(t, catalog)
	assert.ErrorIs(t, err, apperrors.ErrRemoteFailure)
	assert.Equal(t, "could not load subjects and professors", err.Error())
}

func TestTaxonomyService_QuickAdd(t *testing.T) {
	existing := entry("Algebra")
	created := entry("Zoology")

	tests := []struct {
		name      string
		kind      models.TaxonomyKind
		input     string
		setup     func(store *mocks.MockTaxonomyStore)
		wantErr   error
		checkList func(t *testing.T, c *services.Catalog)
	}{
		{
			name:  "appends trimmed entry last and selects it",
			kind:  models.KindSubject,
			input: "  Zoology ",
			setup: func(store *mocks.MockTaxonomyStore) {
				store.EXPECT().Create(gomock.Any(), models.KindSubject, "Zoology").Return(&created, nil)
			},
			checkList: func(t *testing.T, c *services.Catalog) {
				assert.Equal(t, []models.TaxonomyEntry{existing, created}, c.Subjects)
				assert.Equal(t, created.ID, c.SelectedSubjectID)
				assert.Equal(t, uuid.Nil, c.SelectedProfessorID)
			},
		},
		{
			name:  "professor goes to the professor list",
			kind:  models.KindProfessor,
			input: "Dr. Y",
			setup: func(store *mocks.MockTaxonomyStore) {
				store.EXPECT().Create(gomock.Any(), models.KindProfessor, "Dr. Y").Return(&created, nil)
			},
			checkList: func(t *testing.T, c *services.Catalog) {
				assert.Equal(t, []models.TaxonomyEntry{existing}, c.Subjects)
				assert.Equal(t, []models.TaxonomyEntry{created}, c.Professors)
				assert.Equal(t, created.ID, c.SelectedProfessorID)
			},
		},
		{
			name:    "whitespace name is rejected without a store call",
			kind:    models.KindSubject,
			input:   " \t ",
			setup:   func(store *mocks.MockTaxonomyStore) {},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "unknown kind",
			kind:    models.TaxonomyKind("course"),
			input:   "x",
			setup:   func(store *mocks.MockTaxonomyStore) {},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:  "insert failure leaves the catalog untouched",
			kind:  models.KindSubject,
			input: "Zoology",
			setup: func(store *mocks.MockTaxonomyStore) {
				store.EXPECT().Create(gomock.Any(), models.KindSubject, "Zoology").Return(nil, errors.New("timeout"))
			},
			wantErr: apperrors.ErrRemoteFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockTaxonomyStore(ctrl)
			tt.setup(store)
			svc := services.NewTaxonomyService(store)

			catalog := &services.Catalog{Subjects: []models.TaxonomyEntry{existing}}
			got, err := svc.QuickAdd(context.Background(), catalog, tt.kind, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				assert.Equal(t, []models.TaxonomyEntry{existing}, catalog.Subjects)
				assert.Empty(t, catalog.Professors)
				assert.Equal(t, uuid.Nil, catalog.SelectedSubjectID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, &created, got)
			tt.checkList(t, catalog)
		})
	}
}

func TestTaxonomyService_QuickAdd_NilCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTaxonomyStore(ctrl)
	svc := services.NewTaxonomyService(store)

	created := entry("Dr. Z")
	store.EXPECT().Create(gomock.Any(), models.KindProfessor, "Dr. Z").Return(&created, nil)

	got, err := svc.QuickAdd(context.Background(), nil, models.KindProfessor, "Dr. Z")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}
