package order

import (
	"context"

	"github.com/google/uuid"
	"github.com/marketbay/backend/internal/domain/shared"
)

// OrderRepository defines the persistence operations for orders
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByTransactionRef(ctx context.Context, ref string) (*Order, error)

	// FindAll lists orders across all customers (admin scope)
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// FindByCustomer lists a customer's own orders. The matching count is
	// scoped to the same customer and filter set.
	FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]Order, error)
	CountByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) (int64, error)

	// FindByVendor lists orders that contain at least one item from one of
	// the vendor's shops.
	FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]Order, error)
	CountByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) (int64, error)

	// Create persists a new order and its items in a single transaction,
	// re-checking inside that transaction that none of the referenced
	// shops are blacklisted. Returns shared.ErrShopBlacklisted if a shop
	// was blacklisted after the caller's own validation.
	Create(ctx context.Context, o *Order) error
	// Save persists the order and its items in a single transaction
	Save(ctx context.Context, o *Order) error
	// SaveWithLock persists with an optimistic version check
	SaveWithLock(ctx context.Context, o *Order) error
	Delete(ctx context.Context, id uuid.UUID) error

	// GenerateOrderNumber produces the next human-readable order number
	GenerateOrderNumber(ctx context.Context) (string, error)
}
