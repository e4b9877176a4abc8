package models

import (
	"github.com/marketbay/backend/internal/domain/catalog"
)

// CategoryModel is the persistence model for the Category domain entity.
type CategoryModel struct {
	AggregateModel
	Name        string `gorm:"type:varchar(100);not null"`
	Slug        string `gorm:"type:varchar(120);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	IsActive    bool   `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts the persistence model to a domain Category entity.
func (m *CategoryModel) ToDomain() *catalog.Category {
	c := &catalog.Category{
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		IsActive:    m.IsActive,
	}
	m.PopulateAggregateRoot(&c.BaseAggregateRoot)
	return c
}

// FromDomain populates the persistence model from a domain Category entity.
func (m *CategoryModel) FromDomain(c *catalog.Category) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Name = c.Name
	m.Slug = c.Slug
	m.Description = c.Description
	m.IsActive = c.IsActive
}

// CategoryModelFromDomain creates a new persistence model from a domain Category entity.
func CategoryModelFromDomain(c *catalog.Category) *CategoryModel {
	m := &CategoryModel{}
	m.FromDomain(c)
	return m
}
