package shop

import (
	"github.com/google/uuid"
	"github.com/marketbay/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeShop = "Shop"

// Event type constants
const (
	EventTypeShopCreated     = "ShopCreated"
	EventTypeShopBlacklisted = "ShopBlacklisted"
)

// ShopCreatedEvent is raised when a new shop is created
type ShopCreatedEvent struct {
	shared.BaseDomainEvent
	ShopID   uuid.UUID `json:"shop_id"`
	Name     string    `json:"name"`
	VendorID uuid.UUID `json:"vendor_id"`
}

// NewShopCreatedEvent creates a new ShopCreatedEvent
func NewShopCreatedEvent(s *Shop) *ShopCreatedEvent {
	return &ShopCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeShopCreated, AggregateTypeShop, s.ID),
		ShopID:          s.ID,
		Name:            s.Name,
		VendorID:        s.VendorID,
	}
}

// EventType returns the event type name
func (e *ShopCreatedEvent) EventType() string {
	return EventTypeShopCreated
}

// ShopBlacklistedEvent is raised when a shop is blacklisted
type ShopBlacklistedEvent struct {
	shared.BaseDomainEvent
	ShopID uuid.UUID `json:"shop_id"`
	Name   string    `json:"name"`
	Reason string    `json:"reason"`
}

// NewShopBlacklistedEvent creates a new ShopBlacklistedEvent
func NewShopBlacklistedEvent(s *Shop) *ShopBlacklistedEvent {
	return &ShopBlacklistedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeShopBlacklisted, AggregateTypeShop, s.ID),
		ShopID:          s.ID,
		Name:            s.Name,
		Reason:          s.BlacklistReason,
	}
}

// EventType returns the event type name
func (e *ShopBlacklistedEvent) EventType() string {
	return EventTypeShopBlacklisted
}
