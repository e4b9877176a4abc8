package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketbay/backend/internal/domain/order"
)

// CreateOrderItemInput is one line item of a new order
type CreateOrderItemInput struct {
	ShopID    uuid.UUID
	ProductID uuid.UUID
	Size      string
	Quantity  int
	UnitPrice decimal.Decimal
	Discount  decimal.Decimal
}

// CreateOrderInput contains the input for order creation
type CreateOrderInput struct {
	CustomerUserID uuid.UUID // Identity user placing the order
	CouponID       *uuid.UUID
	Discount       decimal.Decimal // Order-level discount
	Items          []CreateOrderItemInput
}

// CreateOrderResult contains the created order and the payment redirect
type CreateOrderResult struct {
	Order       OrderInfo
	RedirectURL string
}

// GetOrderInput identifies the order and the caller asking for it
type GetOrderInput struct {
	OrderID uuid.UUID
	UserID  uuid.UUID
	Role    string
}

// AdvanceOrderInput identifies the order to advance and the caller
type AdvanceOrderInput struct {
	OrderID uuid.UUID
	UserID  uuid.UUID
	Role    string
}

// OrderItemInfo is the client representation of an order line item
type OrderItemInfo struct {
	ID        uuid.UUID
	ShopID    uuid.UUID
	ProductID uuid.UUID
	Size      string
	Quantity  int
	UnitPrice decimal.Decimal
	Discount  decimal.Decimal
}

// OrderInfo is the client representation of an order
type OrderInfo struct {
	ID             uuid.UUID
	OrderNumber    string
	CustomerID     uuid.UUID
	CouponID       *uuid.UUID
	Items          []OrderItemInfo
	Subtotal       decimal.Decimal
	Discount       decimal.Decimal
	Total          decimal.Decimal
	TransactionRef string
	PaymentStatus  string
	Status         string
	DeliveredAt    *time.Time
	CreatedAt      time.Time
}

// NewOrderInfo maps a domain order to its client representation
func NewOrderInfo(o *order.Order) OrderInfo {
	items := make([]OrderItemInfo, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemInfo{
			ID:        item.ID,
			ShopID:    item.ShopID,
			ProductID: item.ProductID,
			Size:      item.Size,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Discount:  item.Discount,
		}
	}

	return OrderInfo{
		ID:             o.ID,
		OrderNumber:    o.OrderNumber,
		CustomerID:     o.CustomerID,
		CouponID:       o.CouponID,
		Items:          items,
		Subtotal:       o.Subtotal,
		Discount:       o.Discount,
		Total:          o.Total,
		TransactionRef: o.TransactionRef,
		PaymentStatus:  o.PaymentStatus.String(),
		Status:         o.Status.String(),
		DeliveredAt:    o.DeliveredAt,
		CreatedAt:      o.CreatedAt,
	}
}
