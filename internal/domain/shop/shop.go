package shop

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/marketbay/backend/internal/domain/shared"
)

// Shop represents a vendor-owned storefront aggregate root.
// A blacklisted shop cannot receive new order items.
type Shop struct {
	shared.BaseAggregateRoot
	Name            string
	Description     string
	VendorID        uuid.UUID
	Blacklisted     bool
	BlacklistReason string
}

// NewShop creates a new shop owned by a vendor
func NewShop(name string, vendorID uuid.UUID) (*Shop, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Shop name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Shop name cannot exceed 200 characters")
	}
	if vendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Vendor ID cannot be empty")
	}

	s := &Shop{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		VendorID:          vendorID,
	}

	s.AddDomainEvent(NewShopCreatedEvent(s))

	return s, nil
}

// Rename changes the shop name
func (s *Shop) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Shop name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Shop name cannot exceed 200 characters")
	}

	s.Name = name
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetDescription sets the shop description
func (s *Shop) SetDescription(description string) error {
	if len(description) > 1000 {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 1000 characters")
	}

	s.Description = description
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// Blacklist marks the shop as blacklisted with a reason
func (s *Shop) Blacklist(reason string) error {
	if s.Blacklisted {
		return shared.NewDomainError("ALREADY_BLACKLISTED", "Shop is already blacklisted")
	}

	s.Blacklisted = true
	s.BlacklistReason = reason
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewShopBlacklistedEvent(s))

	return nil
}

// Unblacklist clears the blacklist flag
func (s *Shop) Unblacklist() error {
	if !s.Blacklisted {
		return shared.NewDomainError("NOT_BLACKLISTED", "Shop is not blacklisted")
	}

	s.Blacklisted = false
	s.BlacklistReason = ""
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// IsBlacklisted returns true if the shop is blacklisted
func (s *Shop) IsBlacklisted() bool {
	return s.Blacklisted
}

// IsOwnedBy returns true if the given vendor owns this shop
func (s *Shop) IsOwnedBy(vendorID uuid.UUID) bool {
	return s.VendorID == vendorID
}
