package shop

import (
	"time"

	"github.com/google/uuid"

	"github.com/marketbay/backend/internal/domain/shop"
)

// CreateShopInput contains the input for shop creation
type CreateShopInput struct {
	VendorUserID uuid.UUID // Identity user of the owning vendor
	Name         string
	Description  string
}

// UpdateShopInput contains the input for shop updates
type UpdateShopInput struct {
	VendorUserID uuid.UUID
	ShopID       uuid.UUID
	Name         *string
	Description  *string
}

// BlacklistShopInput contains the input for blacklisting a shop
type BlacklistShopInput struct {
	ShopID uuid.UUID
	Reason string
}

// ShopInfo is the client representation of a shop
type ShopInfo struct {
	ID              uuid.UUID
	VendorID        uuid.UUID
	Name            string
	Description     string
	Blacklisted     bool
	BlacklistReason string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewShopInfo maps a domain shop to its client representation
func NewShopInfo(s *shop.Shop) ShopInfo {
	return ShopInfo{
		ID:              s.ID,
		VendorID:        s.VendorID,
		Name:            s.Name,
		Description:     s.Description,
		Blacklisted:     s.Blacklisted,
		BlacklistReason: s.BlacklistReason,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
