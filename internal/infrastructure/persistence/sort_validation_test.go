package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"asc", "ASC"},
		{"ASC", "ASC"},
		{" Asc ", "ASC"},
		{"desc", "DESC"},
		{"DESC", "DESC"},
		{"", "DESC"},
		{"sideways", "DESC"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidateSortOrder(tt.in), "input %q", tt.in)
	}
}

func TestValidateSortField(t *testing.T) {
	assert.Equal(t, "total", ValidateSortField("total", OrderSortFields, "created_at"))
	assert.Equal(t, "created_at", ValidateSortField("", OrderSortFields, "created_at"))
	assert.Equal(t, "created_at", ValidateSortField("password_hash", OrderSortFields, "created_at"))
	assert.Equal(t, "created_at", ValidateSortField("total; DROP TABLE orders", OrderSortFields, "created_at"))
}
