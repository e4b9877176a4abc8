package models

import (
	"github.com/google/uuid"

	"github.com/marketbay/backend/internal/domain/partner"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	AggregateModel
	UserID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Email           string    `gorm:"type:varchar(200);not null;uniqueIndex"`
	Name            string    `gorm:"type:varchar(200);not null"`
	Phone           string    `gorm:"type:varchar(50)"`
	ShippingAddress string    `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *partner.Customer {
	c := &partner.Customer{
		UserID:          m.UserID,
		Email:           m.Email,
		Name:            m.Name,
		Phone:           m.Phone,
		ShippingAddress: m.ShippingAddress,
	}
	m.PopulateAggregateRoot(&c.BaseAggregateRoot)
	return c
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.UserID = c.UserID
	m.Email = c.Email
	m.Name = c.Name
	m.Phone = c.Phone
	m.ShippingAddress = c.ShippingAddress
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

// VendorModel is the persistence model for the Vendor domain entity.
type VendorModel struct {
	AggregateModel
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Email  string    `gorm:"type:varchar(200);not null;uniqueIndex"`
	Name   string    `gorm:"type:varchar(200);not null"`
	Phone  string    `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (VendorModel) TableName() string {
	return "vendors"
}

// ToDomain converts the persistence model to a domain Vendor entity.
func (m *VendorModel) ToDomain() *partner.Vendor {
	v := &partner.Vendor{
		UserID: m.UserID,
		Email:  m.Email,
		Name:   m.Name,
		Phone:  m.Phone,
	}
	m.PopulateAggregateRoot(&v.BaseAggregateRoot)
	return v
}

// FromDomain populates the persistence model from a domain Vendor entity.
func (m *VendorModel) FromDomain(v *partner.Vendor) {
	m.FromDomainAggregateRoot(v.BaseAggregateRoot)
	m.UserID = v.UserID
	m.Email = v.Email
	m.Name = v.Name
	m.Phone = v.Phone
}

// VendorModelFromDomain creates a new persistence model from a domain Vendor entity.
func VendorModelFromDomain(v *partner.Vendor) *VendorModel {
	m := &VendorModel{}
	m.FromDomain(v)
	return m
}
