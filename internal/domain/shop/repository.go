package shop

import (
	"context"

	"github.com/google/uuid"
	"github.com/marketbay/backend/internal/domain/shared"
)

// ShopRepository defines the persistence operations for shops
type ShopRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Shop, error)
	// FindByIDs loads multiple shops at once, used by order creation to
	// validate line items against the blacklist
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Shop, error)
	FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]Shop, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Shop, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, s *Shop) error
	Delete(ctx context.Context, id uuid.UUID) error
}
