package partner

import (
	"time"

	"github.com/google/uuid"

	"github.com/marketbay/backend/internal/domain/partner"
)

// CustomerInfo is the client representation of a customer profile
type CustomerInfo struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Email           string
	Name            string
	Phone           string
	ShippingAddress string
	CreatedAt       time.Time
}

// NewCustomerInfo maps a domain customer to its client representation
func NewCustomerInfo(c *partner.Customer) CustomerInfo {
	return CustomerInfo{
		ID:              c.ID,
		UserID:          c.UserID,
		Email:           c.Email,
		Name:            c.Name,
		Phone:           c.Phone,
		ShippingAddress: c.ShippingAddress,
		CreatedAt:       c.CreatedAt,
	}
}

// UpdateCustomerInput contains the input for customer profile updates
type UpdateCustomerInput struct {
	UserID          uuid.UUID
	Name            *string
	Phone           *string
	ShippingAddress *string
}

// VendorInfo is the client representation of a vendor profile
type VendorInfo struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Email     string
	Name      string
	Phone     string
	CreatedAt time.Time
}

// NewVendorInfo maps a domain vendor to its client representation
func NewVendorInfo(v *partner.Vendor) VendorInfo {
	return VendorInfo{
		ID:        v.ID,
		UserID:    v.UserID,
		Email:     v.Email,
		Name:      v.Name,
		Phone:     v.Phone,
		CreatedAt: v.CreatedAt,
	}
}

// UpdateVendorInput contains the input for vendor profile updates
type UpdateVendorInput struct {
	UserID uuid.UUID
	Name   *string
	Phone  *string
}
