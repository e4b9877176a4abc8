package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/marketbay/backend/internal/domain/shared"
)

// CustomerRepository defines the persistence operations for customers
type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Customer, error)
	FindByEmail(ctx context.Context, email string) (*Customer, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Customer, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// VendorRepository defines the persistence operations for vendors
type VendorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Vendor, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Vendor, error)
	FindByEmail(ctx context.Context, email string) (*Vendor, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Vendor, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, v *Vendor) error
	Delete(ctx context.Context, id uuid.UUID) error
}
