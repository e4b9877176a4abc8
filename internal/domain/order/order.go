package order

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/marketbay/backend/internal/domain/shared"
	"github.com/marketbay/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Status represents the fulfilment status of an order
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusOngoing   Status = "ONGOING"
	StatusDelivered Status = "DELIVERED"
)

// IsValid checks if the status is a valid order Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusOngoing, StatusDelivered:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status.
// Transitions only move forward; DELIVERED is terminal and idempotent.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusOngoing
	case StatusOngoing:
		return target == StatusDelivered
	case StatusDelivered:
		return target == StatusDelivered
	}
	return false
}

// Next returns the successor status in the fixed advancement order
func (s Status) Next() (Status, error) {
	switch s {
	case StatusPending:
		return StatusOngoing, nil
	case StatusOngoing:
		return StatusDelivered, nil
	case StatusDelivered:
		return StatusDelivered, nil
	}
	return "", shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown order status %q", string(s)))
}

// PaymentStatus represents the payment state of an order
type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "UNPAID"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// IsValid checks if the status is a valid PaymentStatus
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusUnpaid, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// String returns the string representation of PaymentStatus
func (s PaymentStatus) String() string {
	return string(s)
}

// Item represents a line item in an order
type Item struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ShopID    uuid.UUID
	ProductID uuid.UUID
	Size      string
	Quantity  int
	UnitPrice decimal.Decimal
	Discount  decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewItem creates a new order line item
func NewItem(orderID, shopID, productID uuid.UUID, size string, quantity int, unitPrice valueobject.Money, discount decimal.Decimal) (*Item, error) {
	if shopID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SHOP", "Shop ID cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.Amount().IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	if discount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_DISCOUNT", "Item discount cannot be negative")
	}
	if len(size) > 20 {
		return nil, shared.NewDomainError("INVALID_SIZE", "Size cannot exceed 20 characters")
	}

	now := time.Now()
	return &Item{
		ID:        uuid.New(),
		OrderID:   orderID,
		ShopID:    shopID,
		ProductID: productID,
		Size:      size,
		Quantity:  quantity,
		UnitPrice: unitPrice.Amount(),
		Discount:  discount,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// LineSubtotal returns Quantity * UnitPrice
func (i *Item) LineSubtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// LineTotal returns the line subtotal minus the item discount
func (i *Item) LineTotal() decimal.Decimal {
	return i.LineSubtotal().Sub(i.Discount)
}

// Order represents a customer order aggregate root.
// It owns its line items and tracks payment and fulfilment state.
type Order struct {
	shared.BaseAggregateRoot
	OrderNumber    string
	CustomerID     uuid.UUID
	CouponID       *uuid.UUID
	Items          []Item
	Subtotal       decimal.Decimal // Sum of line subtotals
	Discount       decimal.Decimal // Order-level discount
	Total          decimal.Decimal // Subtotal - Discount - item discounts, floored at zero
	TransactionRef string
	PaymentStatus  PaymentStatus
	Status         Status
	DeliveredAt    *time.Time
}

// NewOrder creates a new pending order with a generated transaction reference
func NewOrder(orderNumber string, customerID uuid.UUID, couponID *uuid.UUID, discount valueobject.Money) (*Order, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if len(orderNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot exceed 50 characters")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if discount.Amount().IsNegative() {
		return nil, shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot be negative")
	}

	o := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		CustomerID:        customerID,
		CouponID:          couponID,
		Items:             make([]Item, 0),
		Subtotal:          decimal.Zero,
		Discount:          discount.Amount(),
		Total:             decimal.Zero,
		TransactionRef:    NewTransactionRef(),
		PaymentStatus:     PaymentStatusUnpaid,
		Status:            StatusPending,
	}

	o.AddDomainEvent(NewOrderCreatedEvent(o))

	return o, nil
}

// AddItem adds a new line item to the order.
// Only allowed while the order is PENDING and unpaid.
func (o *Order) AddItem(shopID, productID uuid.UUID, size string, quantity int, unitPrice valueobject.Money, discount decimal.Decimal) (*Item, error) {
	if o.Status != StatusPending {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add items to a non-pending order")
	}
	if o.PaymentStatus == PaymentStatusPaid {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add items to a paid order")
	}

	item, err := NewItem(o.ID, shopID, productID, size, quantity, unitPrice, discount)
	if err != nil {
		return nil, err
	}

	o.Items = append(o.Items, *item)
	o.recalculateTotals()
	o.UpdatedAt = time.Now()

	return item, nil
}

// Advance moves the order one step along the fixed status order.
// PENDING becomes ONGOING, ONGOING becomes DELIVERED, and DELIVERED stays
// DELIVERED (idempotent terminal state).
func (o *Order) Advance() (Status, error) {
	next, err := o.Status.Next()
	if err != nil {
		return o.Status, err
	}

	if o.Status == StatusDelivered {
		return StatusDelivered, nil
	}

	from := o.Status
	now := time.Now()
	o.Status = next
	if next == StatusDelivered {
		o.DeliveredAt = &now
	}
	o.UpdatedAt = now
	o.IncrementVersion()

	o.AddDomainEvent(NewOrderStatusAdvancedEvent(o, from, next))

	return next, nil
}

// MarkPaid records a successful payment for the order
func (o *Order) MarkPaid() error {
	if o.PaymentStatus == PaymentStatusPaid {
		return nil
	}
	if o.PaymentStatus == PaymentStatusRefunded {
		return shared.NewDomainError("INVALID_STATE", "Cannot pay a refunded order")
	}

	o.PaymentStatus = PaymentStatusPaid
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	o.AddDomainEvent(NewOrderPaidEvent(o))

	return nil
}

// MarkPaymentFailed records a failed payment attempt
func (o *Order) MarkPaymentFailed() error {
	if o.PaymentStatus == PaymentStatusPaid {
		return shared.NewDomainError("INVALID_STATE", "Cannot fail a paid order")
	}
	if o.PaymentStatus == PaymentStatusFailed {
		return nil
	}

	o.PaymentStatus = PaymentStatusFailed
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// MarkRefunded records a refund for a previously paid order
func (o *Order) MarkRefunded() error {
	if o.PaymentStatus != PaymentStatusPaid {
		return shared.NewDomainError("INVALID_STATE", "Only paid orders can be refunded")
	}

	o.PaymentStatus = PaymentStatusRefunded
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// recalculateTotals recalculates the order totals from its items
func (o *Order) recalculateTotals() {
	subtotal := decimal.Zero
	itemDiscounts := decimal.Zero
	for _, item := range o.Items {
		subtotal = subtotal.Add(item.LineSubtotal())
		itemDiscounts = itemDiscounts.Add(item.Discount)
	}
	o.Subtotal = subtotal
	o.Total = subtotal.Sub(o.Discount).Sub(itemDiscounts)

	if o.Total.IsNegative() {
		o.Total = decimal.Zero
	}
}

// GetSubtotalMoney returns the subtotal as Money
func (o *Order) GetSubtotalMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(o.Subtotal)
}

// GetTotalMoney returns the payable total as Money
func (o *Order) GetTotalMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(o.Total)
}

// ItemCount returns the number of line items in the order
func (o *Order) ItemCount() int {
	return len(o.Items)
}

// ShopIDs returns the distinct shop IDs referenced by the order's items
func (o *Order) ShopIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(o.Items))
	ids := make([]uuid.UUID, 0, len(o.Items))
	for _, item := range o.Items {
		if !seen[item.ShopID] {
			seen[item.ShopID] = true
			ids = append(ids, item.ShopID)
		}
	}
	return ids
}

// IsPending returns true if the order has not started fulfilment
func (o *Order) IsPending() bool {
	return o.Status == StatusPending
}

// IsDelivered returns true if the order reached the terminal status
func (o *Order) IsDelivered() bool {
	return o.Status == StatusDelivered
}

// IsPaid returns true if the order has been paid
func (o *Order) IsPaid() bool {
	return o.PaymentStatus == PaymentStatusPaid
}

// NewTransactionRef generates a transaction reference from the current
// timestamp and a random hex suffix. Collision-unlikely rather than
// guaranteed unique; the storage layer keeps a unique index as backstop.
func NewTransactionRef() string {
	suffix := make([]byte, 3)
	if _, err := rand.Read(suffix); err != nil {
		// Degrade to a nanosecond tail if the random source fails
		return fmt.Sprintf("TXN-%d-%06d", time.Now().UnixMilli(), time.Now().Nanosecond()%1000000)
	}
	return fmt.Sprintf("TXN-%d-%s", time.Now().UnixMilli(), hex.EncodeToString(suffix))
}
