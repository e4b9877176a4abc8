package order

import (
	"github.com/google/uuid"
	"github.com/marketbay/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeOrder = "Order"

// Event type constants
const (
	EventTypeOrderCreated        = "OrderCreated"
	EventTypeOrderStatusAdvanced = "OrderStatusAdvanced"
	EventTypeOrderPaid           = "OrderPaid"
)

// OrderCreatedEvent is raised when a new order is created
type OrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderID        uuid.UUID       `json:"order_id"`
	OrderNumber    string          `json:"order_number"`
	CustomerID     uuid.UUID       `json:"customer_id"`
	TransactionRef string          `json:"transaction_ref"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Total          decimal.Decimal `json:"total"`
}

// NewOrderCreatedEvent creates a new OrderCreatedEvent
func NewOrderCreatedEvent(o *Order) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderCreated, AggregateTypeOrder, o.ID),
		OrderID:         o.ID,
		OrderNumber:     o.OrderNumber,
		CustomerID:      o.CustomerID,
		TransactionRef:  o.TransactionRef,
		Subtotal:        o.Subtotal,
		Total:           o.Total,
	}
}

// EventType returns the event type name
func (e *OrderCreatedEvent) EventType() string {
	return EventTypeOrderCreated
}

// OrderStatusAdvancedEvent is raised when an order moves along the status order
type OrderStatusAdvancedEvent struct {
	shared.BaseDomainEvent
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	FromStatus  Status    `json:"from_status"`
	ToStatus    Status    `json:"to_status"`
}

// NewOrderStatusAdvancedEvent creates a new OrderStatusAdvancedEvent
func NewOrderStatusAdvancedEvent(o *Order, from, to Status) *OrderStatusAdvancedEvent {
	return &OrderStatusAdvancedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderStatusAdvanced, AggregateTypeOrder, o.ID),
		OrderID:         o.ID,
		OrderNumber:     o.OrderNumber,
		FromStatus:      from,
		ToStatus:        to,
	}
}

// EventType returns the event type name
func (e *OrderStatusAdvancedEvent) EventType() string {
	return EventTypeOrderStatusAdvanced
}

// OrderPaidEvent is raised when a payment completes for an order
type OrderPaidEvent struct {
	shared.BaseDomainEvent
	OrderID        uuid.UUID       `json:"order_id"`
	OrderNumber    string          `json:"order_number"`
	TransactionRef string          `json:"transaction_ref"`
	Total          decimal.Decimal `json:"total"`
}

// NewOrderPaidEvent creates a new OrderPaidEvent
func NewOrderPaidEvent(o *Order) *OrderPaidEvent {
	return &OrderPaidEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderPaid, AggregateTypeOrder, o.ID),
		OrderID:         o.ID,
		OrderNumber:     o.OrderNumber,
		TransactionRef:  o.TransactionRef,
		Total:           o.Total,
	}
}

// EventType returns the event type name
func (e *OrderPaidEvent) EventType() string {
	return EventTypeOrderPaid
}
