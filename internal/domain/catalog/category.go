package catalog

import (
	"regexp"
	"strings"
	"time"

	"github.com/marketbay/backend/internal/domain/shared"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Category represents a product category aggregate root
type Category struct {
	shared.BaseAggregateRoot
	Name        string
	Slug        string
	Description string
	IsActive    bool
}

// NewCategory creates a new active category
func NewCategory(name, slug string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 100 characters")
	}
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		slug = Slugify(name)
	}
	if !slugRegex.MatchString(slug) {
		return nil, shared.NewDomainError("INVALID_SLUG", "Slug may only contain lowercase letters, numbers, and hyphens")
	}
	if len(slug) > 120 {
		return nil, shared.NewDomainError("INVALID_SLUG", "Slug cannot exceed 120 characters")
	}

	return &Category{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Slug:              slug,
		IsActive:          true,
	}, nil
}

// Rename changes the category name; the slug stays stable
func (c *Category) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 100 characters")
	}

	c.Name = name
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetDescription sets the category description
func (c *Category) SetDescription(description string) error {
	if len(description) > 1000 {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 1000 characters")
	}

	c.Description = description
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// Activate makes the category visible
func (c *Category) Activate() {
	c.IsActive = true
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// Deactivate hides the category without deleting it
func (c *Category) Deactivate() {
	c.IsActive = false
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// Slugify derives a URL slug from a display name
func Slugify(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	prevHyphen := false
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen && b.Len() > 0 {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
