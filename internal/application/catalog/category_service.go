package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marketbay/backend/internal/domain/catalog"
	"github.com/marketbay/backend/internal/domain/shared"
)

// CategoryService handles category management
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
	logger       *zap.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo catalog.CategoryRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// CreateCategory creates a new category with a unique slug
func (s *CategoryService) CreateCategory(ctx context.Context, input CreateCategoryInput) (*CategoryInfo, error) {
	category, err := catalog.NewCategory(input.Name, input.Slug)
	if err != nil {
		return nil, err
	}
	if err := category.SetDescription(input.Description); err != nil {
		return nil, err
	}

	existing, err := s.categoryRepo.FindBySlug(ctx, category.Slug)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("SLUG_TAKEN", "A category with this slug already exists")
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("category created",
		zap.String("category_id", category.ID.String()),
		zap.String("slug", category.Slug))

	info := NewCategoryInfo(category)
	return &info, nil
}

// UpdateCategory applies partial updates to a category
func (s *CategoryService) UpdateCategory(ctx context.Context, input UpdateCategoryInput) (*CategoryInfo, error) {
	category, err := s.categoryRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := category.Rename(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		if err := category.SetDescription(*input.Description); err != nil {
			return nil, err
		}
	}
	if input.IsActive != nil {
		if *input.IsActive {
			category.Activate()
		} else {
			category.Deactivate()
		}
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	info := NewCategoryInfo(category)
	return &info, nil
}

// GetCategory returns a category by ID
func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*CategoryInfo, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	info := NewCategoryInfo(category)
	return &info, nil
}

// GetCategoryBySlug returns a category by its URL slug
func (s *CategoryService) GetCategoryBySlug(ctx context.Context, slug string) (*CategoryInfo, error) {
	category, err := s.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	info := NewCategoryInfo(category)
	return &info, nil
}

// ListCategories returns a paginated list of categories
func (s *CategoryService) ListCategories(ctx context.Context, filter shared.Filter) (*shared.Paginated[CategoryInfo], error) {
	categories, err := s.categoryRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.categoryRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	infos := make([]CategoryInfo, len(categories))
	for i := range categories {
		infos[i] = NewCategoryInfo(&categories[i])
	}

	result := shared.NewPaginated(infos, total, filter.Page, filter.PageSize)
	return &result, nil
}

// DeleteCategory removes a category
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("category deleted", zap.String("category_id", id.String()))

	return nil
}
