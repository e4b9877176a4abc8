package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/marketbay/backend/internal/domain/shared"
)

// CategoryRepository defines the persistence operations for categories
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindBySlug(ctx context.Context, slug string) (*Category, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Category, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}
