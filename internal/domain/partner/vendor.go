package partner

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/marketbay/backend/internal/domain/shared"
)

// Vendor represents a seller profile aggregate root. Vendors own shops.
type Vendor struct {
	shared.BaseAggregateRoot
	UserID uuid.UUID
	Email  string
	Name   string
	Phone  string
}

// NewVendor creates a new vendor profile
func NewVendor(userID uuid.UUID, email, name string) (*Vendor, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Vendor name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Vendor name cannot exceed 200 characters")
	}

	return &Vendor{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Email:             strings.ToLower(strings.TrimSpace(email)),
		Name:              name,
	}, nil
}

// SetPhone sets the vendor's phone number
func (v *Vendor) SetPhone(phone string) error {
	if phone != "" && len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}

	v.Phone = strings.TrimSpace(phone)
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	return nil
}

// Rename changes the vendor's display name
func (v *Vendor) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Vendor name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Vendor name cannot exceed 200 characters")
	}

	v.Name = name
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	return nil
}
