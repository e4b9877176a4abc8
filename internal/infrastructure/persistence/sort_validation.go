package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// UserSortFields contains allowed sort fields for users
var UserSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"email":         true,
	"display_name":  true,
	"role":          true,
	"status":        true,
	"last_login_at": true,
}

// CategorySortFields contains allowed sort fields for categories
var CategorySortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"slug":       true,
	"is_active":  true,
}

// CustomerSortFields contains allowed sort fields for customers
var CustomerSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"email":      true,
	"name":       true,
	"phone":      true,
}

// VendorSortFields contains allowed sort fields for vendors
var VendorSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"email":      true,
	"name":       true,
	"phone":      true,
}

// ShopSortFields contains allowed sort fields for shops
var ShopSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"name":        true,
	"vendor_id":   true,
	"blacklisted": true,
}

// OrderSortFields contains allowed sort fields for orders
var OrderSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"order_number":   true,
	"customer_id":    true,
	"status":         true,
	"payment_status": true,
	"subtotal":       true,
	"total":          true,
	"delivered_at":   true,
}
