package models

import (
	"github.com/google/uuid"

	"github.com/marketbay/backend/internal/domain/shop"
)

// ShopModel is the persistence model for the Shop domain entity.
type ShopModel struct {
	AggregateModel
	Name            string    `gorm:"type:varchar(200);not null"`
	Description     string    `gorm:"type:text"`
	VendorID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Blacklisted     bool      `gorm:"not null;default:false;index"`
	BlacklistReason string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ShopModel) TableName() string {
	return "shops"
}

// ToDomain converts the persistence model to a domain Shop entity.
func (m *ShopModel) ToDomain() *shop.Shop {
	s := &shop.Shop{
		Name:            m.Name,
		Description:     m.Description,
		VendorID:        m.VendorID,
		Blacklisted:     m.Blacklisted,
		BlacklistReason: m.BlacklistReason,
	}
	m.PopulateAggregateRoot(&s.BaseAggregateRoot)
	return s
}

// FromDomain populates the persistence model from a domain Shop entity.
func (m *ShopModel) FromDomain(s *shop.Shop) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.Name = s.Name
	m.Description = s.Description
	m.VendorID = s.VendorID
	m.Blacklisted = s.Blacklisted
	m.BlacklistReason = s.BlacklistReason
}

// ShopModelFromDomain creates a new persistence model from a domain Shop entity.
func ShopModelFromDomain(s *shop.Shop) *ShopModel {
	m := &ShopModel{}
	m.FromDomain(s)
	return m
}
