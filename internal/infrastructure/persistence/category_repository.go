package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marketbay/backend/internal/domain/catalog"
	"github.com/marketbay/backend/internal/domain/shared"
	"github.com/marketbay/backend/internal/infrastructure/persistence/models"
)

// GormCategoryRepository implements CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindByID finds a category by its ID
func (r *GormCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	var model models.CategoryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBySlug finds a category by its URL slug
func (r *GormCategoryRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	if slug == "" {
		return nil, shared.NewDomainError("INVALID_SLUG", "Slug cannot be empty")
	}
	var model models.CategoryModel
	if err := r.db.WithContext(ctx).
		Where("slug = ?", strings.ToLower(slug)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all categories matching the filter
func (r *GormCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Category, error) {
	var categoryModels []models.CategoryModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.CategoryModel{}), filter)

	if err := query.Find(&categoryModels).Error; err != nil {
		return nil, err
	}

	categories := make([]catalog.Category, len(categoryModels))
	for i, model := range categoryModels {
		categories[i] = *model.ToDomain()
	}
	return categories, nil
}

// Count counts categories matching the filter
func (r *GormCategoryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.CategoryModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a category
func (r *GormCategoryRepository) Save(ctx context.Context, c *catalog.Category) error {
	model := models.CategoryModelFromDomain(c)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a category
func (r *GormCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies filter options to the query
func (r *GormCategoryRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, CategorySortFields, "name")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormCategoryRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR slug LIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "is_active":
			query = query.Where("is_active = ?", value)
		case "slug":
			query = query.Where("slug = ?", value)
		}
	}

	return query
}

// Ensure GormCategoryRepository implements CategoryRepository
var _ catalog.CategoryRepository = (*GormCategoryRepository)(nil)
