package categories

import (
	"context"
	"errors"
	"testing"

	"github.com/mytheresa/ecommerce-catalog/app/database/databasetest"
	"github.com/mytheresa/ecommerce-catalog/app/validation"
	"github.com/mytheresa/ecommerce-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock Repository ---

type MockCategoryRepo struct {
	Categories []models.Category
	ListErr    error
	WriteErr   error

	LastSaved   *models.Category
	LastUpdated *models.Category
	LastDeleted uint
}

func (m *MockCategoryRepo) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Categories, nil
}

func (m *MockCategoryRepo) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	for _, c := range m.Categories {
		if c.ID == id {
			category := c
			return &category, nil
		}
	}
	return nil, models.ErrCategoryNotFound
}

func (m *MockCategoryRepo) CreateCategory(ctx context.Context, cat *models.Category) error {
	m.LastSaved = cat
	if m.WriteErr != nil {
		return m.WriteErr
	}
	cat.ID = uint(len(m.Categories) + 1)
	m.Categories = append(m.Categories, *cat)
	return nil
}

func (m *MockCategoryRepo) UpdateCategory(ctx context.Context, cat *models.Category) error {
	m.LastUpdated = cat
	return m.WriteErr
}

func (m *MockCategoryRepo) DeleteCategory(ctx context.Context, id uint) error {
	m.LastDeleted = id
	return m.WriteErr
}

// --- Tests ---

func TestCreate(t *testing.T) {
	testCases := []struct {
		name          string
		input         CategoryInput
		mockRepoSetup func() *MockCategoryRepo
		expectedErr   error
		checkResult   func(t *testing.T, c *models.Category)
		checkRepoCall func(t *testing.T, repo *MockCategoryRepo)
	}{
		{
			name:  "Success",
			input: CategoryInput{Title: "Fiction"},
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{}
			},
			checkResult: func(t *testing.T, c *models.Category) {
				assert.Equal(t, uint(1), c.ID)
				assert.Equal(t, "Fiction", c.Title)
			},
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				require.NotNil(t, repo.LastSaved)
				assert.Equal(t, "Fiction", repo.LastSaved.Title)
			},
		},
		{
			name:  "Missing title",
			input: CategoryInput{},
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{}
			},
			expectedErr: models.ErrValidation,
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.Nil(t, repo.LastSaved, "CreateCategory should not be called with missing title")
			},
		},
		{
			name:  "Repository error",
			input: CategoryInput{Title: "Toys"},
			mockRepoSetup: func() *MockCategoryRepo {
				return &MockCategoryRepo{WriteErr: models.ErrStoreUnavailable}
			},
			expectedErr: models.ErrStoreUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			mockRepo := tc.mockRepoSetup()
			svc := NewCategoryService(mockRepo, validation.New())

			// Act
			c, err := svc.Create(context.Background(), tc.input)

			// Assert
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, c)
			} else {
				require.NoError(t, err)
				tc.checkResult(t, c)
			}
			if tc.checkRepoCall != nil {
				tc.checkRepoCall(t, mockRepo)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	testCases := []struct {
		name          string
		id            uint
		input         CategoryInput
		expectedErr   error
		checkRepoCall func(t *testing.T, repo *MockCategoryRepo)
	}{
		{
			name:  "Success",
			id:    1,
			input: CategoryInput{Title: "Sci-Fi"},
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				require.NotNil(t, repo.LastUpdated)
				assert.Equal(t, models.Category{ID: 1, Title: "Sci-Fi"}, *repo.LastUpdated)
			},
		},
		{
			name:        "Unknown id",
			id:          9,
			input:       CategoryInput{Title: "Sci-Fi"},
			expectedErr: models.ErrNotFound,
			checkRepoCall: func(t *testing.T, repo *MockCategoryRepo) {
				assert.Nil(t, repo.LastUpdated)
			},
		},
		{
			name:        "Empty title",
			id:          1,
			expectedErr: models.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &MockCategoryRepo{Categories: []models.Category{{ID: 1, Title: "Fiction"}}}
			svc := NewCategoryService(mockRepo, validation.New())

			c, err := svc.Update(context.Background(), tc.id, tc.input)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.input.Title, c.Title)
				assert.Equal(t, tc.id, c.ID)
			}
			if tc.checkRepoCall != nil {
				tc.checkRepoCall(t, mockRepo)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	mockRepo := &MockCategoryRepo{Categories: []models.Category{{ID: 3, Title: "Dairy"}}}
	svc := NewCategoryService(mockRepo, validation.New())

	assert.NoError(t, svc.Delete(context.Background(), 3))
	assert.Equal(t, uint(3), mockRepo.LastDeleted)

	mockRepo.LastDeleted = 0
	assert.ErrorIs(t, svc.Delete(context.Background(), 4), models.ErrCategoryNotFound)
	assert.Zero(t, mockRepo.LastDeleted, "DeleteCategory should not be called for unknown ids")
}

func TestList(t *testing.T) {
	svc := NewCategoryService(&MockCategoryRepo{ListErr: errors.New("db down")}, validation.New())
	_, err := svc.List(context.Background())
	assert.EqualError(t, err, "db down")
}

// TestLifecycle runs create, update and delete against a real store.
func TestLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewCategoryService(models.NewCategoriesRepository(databasetest.New(t)), validation.New())

	created, err := svc.Create(ctx, CategoryInput{Title: "Fiction"})
	require.NoError(t, err)
	assert.Equal(t, &models.Category{ID: 1, Title: "Fiction"}, created)

	updated, err := svc.Update(ctx, 1, CategoryInput{Title: "Sci-Fi"})
	require.NoError(t, err)
	assert.Equal(t, &models.Category{ID: 1, Title: "Sci-Fi"}, updated)

	require.NoError(t, svc.Delete(ctx, 1))
	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	assert.ErrorIs(t, svc.Delete(ctx, 1), models.ErrNotFound)
}
