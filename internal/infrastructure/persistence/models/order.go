package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketbay/backend/internal/domain/order"
)

// OrderModel is the persistence model for the Order aggregate root.
// Line items are always loaded and saved together with the order.
type OrderModel struct {
	AggregateModel
	OrderNumber    string              `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerID     uuid.UUID           `gorm:"type:uuid;not null;index"`
	CouponID       *uuid.UUID          `gorm:"type:uuid"`
	Items          []OrderItemModel    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Subtotal       decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	Discount       decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	Total          decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	TransactionRef string              `gorm:"type:varchar(50);not null;uniqueIndex"`
	PaymentStatus  order.PaymentStatus `gorm:"type:varchar(20);not null;default:'UNPAID';index"`
	Status         order.Status        `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	DeliveredAt    *time.Time
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order aggregate.
func (m *OrderModel) ToDomain() *order.Order {
	items := make([]order.Item, len(m.Items))
	for i, im := range m.Items {
		items[i] = *im.ToDomain()
	}

	o := &order.Order{
		OrderNumber:    m.OrderNumber,
		CustomerID:     m.CustomerID,
		CouponID:       m.CouponID,
		Items:          items,
		Subtotal:       m.Subtotal,
		Discount:       m.Discount,
		Total:          m.Total,
		TransactionRef: m.TransactionRef,
		PaymentStatus:  m.PaymentStatus,
		Status:         m.Status,
		DeliveredAt:    m.DeliveredAt,
	}
	m.PopulateAggregateRoot(&o.BaseAggregateRoot)
	return o
}

// FromDomain populates the persistence model from a domain Order aggregate.
func (m *OrderModel) FromDomain(o *order.Order) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.OrderNumber = o.OrderNumber
	m.CustomerID = o.CustomerID
	m.CouponID = o.CouponID
	m.Subtotal = o.Subtotal
	m.Discount = o.Discount
	m.Total = o.Total
	m.TransactionRef = o.TransactionRef
	m.PaymentStatus = o.PaymentStatus
	m.Status = o.Status
	m.DeliveredAt = o.DeliveredAt

	m.Items = make([]OrderItemModel, len(o.Items))
	for i := range o.Items {
		m.Items[i].FromDomain(&o.Items[i])
	}
}

// OrderModelFromDomain creates a new persistence model from a domain Order aggregate.
func OrderModelFromDomain(o *order.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}

// OrderItemModel is the persistence model for an order line item.
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ShopID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Size      string          `gorm:"type:varchar(20)"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Discount  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain order Item.
func (m *OrderItemModel) ToDomain() *order.Item {
	return &order.Item{
		ID:        m.ID,
		OrderID:   m.OrderID,
		ShopID:    m.ShopID,
		ProductID: m.ProductID,
		Size:      m.Size,
		Quantity:  m.Quantity,
		UnitPrice: m.UnitPrice,
		Discount:  m.Discount,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain order Item.
func (m *OrderItemModel) FromDomain(i *order.Item) {
	m.ID = i.ID
	m.OrderID = i.OrderID
	m.ShopID = i.ShopID
	m.ProductID = i.ProductID
	m.Size = i.Size
	m.Quantity = i.Quantity
	m.UnitPrice = i.UnitPrice
	m.Discount = i.Discount
	m.CreatedAt = i.CreatedAt
	m.UpdatedAt = i.UpdatedAt
}
