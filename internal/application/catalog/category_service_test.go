package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marketbay/backend/internal/domain/catalog"
	"github.com/marketbay/backend/internal/domain/shared"
)

// MockCategoryRepository is a mock implementation of catalog.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Category, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, c *catalog.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreateCategory(t *testing.T) {
	repo := new(MockCategoryRepository)
	svc := NewCategoryService(repo, zap.NewNop())

	repo.On("FindBySlug", mock.Anything, "summer-wear").Return(nil, shared.ErrNotFound)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Category")).Return(nil)

	info, err := svc.CreateCategory(context.Background(), CreateCategoryInput{
		Name:        "Summer Wear",
		Description: "Light clothing for the hot season",
	})
	require.NoError(t, err)

	assert.Equal(t, "Summer Wear", info.Name)
	assert.Equal(t, "summer-wear", info.Slug)
	assert.True(t, info.IsActive)
}

func TestCreateCategoryDuplicateSlug(t *testing.T) {
	repo := new(MockCategoryRepository)
	svc := NewCategoryService(repo, zap.NewNop())

	existing, err := catalog.NewCategory("Summer Wear", "")
	require.NoError(t, err)
	repo.On("FindBySlug", mock.Anything, "summer-wear").Return(existing, nil)

	_, err = svc.CreateCategory(context.Background(), CreateCategoryInput{Name: "Summer Wear"})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "SLUG_TAKEN", domainErr.Code)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUpdateCategory(t *testing.T) {
	repo := new(MockCategoryRepository)
	svc := NewCategoryService(repo, zap.NewNop())

	category, err := catalog.NewCategory("Summer Wear", "")
	require.NoError(t, err)
	repo.On("FindByID", mock.Anything, category.ID).Return(category, nil)
	repo.On("Save", mock.Anything, category).Return(nil)

	newName := "Beachwear"
	inactive := false
	info, err := svc.UpdateCategory(context.Background(), UpdateCategoryInput{
		ID:       category.ID,
		Name:     &newName,
		IsActive: &inactive,
	})
	require.NoError(t, err)

	assert.Equal(t, "Beachwear", info.Name)
	// Slug stays stable across renames
	assert.Equal(t, "summer-wear", info.Slug)
	assert.False(t, info.IsActive)
}

func TestListCategories(t *testing.T) {
	repo := new(MockCategoryRepository)
	svc := NewCategoryService(repo, zap.NewNop())

	c1, err := catalog.NewCategory("Shoes", "")
	require.NoError(t, err)
	c2, err := catalog.NewCategory("Hats", "")
	require.NoError(t, err)

	filter := shared.DefaultFilter()
	repo.On("FindAll", mock.Anything, filter).Return([]catalog.Category{*c1, *c2}, nil)
	repo.On("Count", mock.Anything, filter).Return(int64(2), nil)

	result, err := svc.ListCategories(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)
	assert.Len(t, result.Items, 2)
}

func TestDeleteCategoryNotFound(t *testing.T) {
	repo := new(MockCategoryRepository)
	svc := NewCategoryService(repo, zap.NewNop())

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	err := svc.DeleteCategory(context.Background(), id)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
