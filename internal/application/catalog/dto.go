package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/marketbay/backend/internal/domain/catalog"
)

// CreateCategoryInput contains the input for category creation
type CreateCategoryInput struct {
	Name        string
	Slug        string // Derived from the name when empty
	Description string
}

// UpdateCategoryInput contains the input for category updates
type UpdateCategoryInput struct {
	ID          uuid.UUID
	Name        *string
	Description *string
	IsActive    *bool
}

// CategoryInfo is the client representation of a category
type CategoryInfo struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategoryInfo maps a domain category to its client representation
func NewCategoryInfo(c *catalog.Category) CategoryInfo {
	return CategoryInfo{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
