package shop

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestShop(t *testing.T) *Shop {
	t.Helper()
	s, err := NewShop("Corner Outfitters", uuid.New())
	require.NoError(t, err)
	return s
}

func TestNewShop(t *testing.T) {
	tests := []struct {
		name     string
		shopName string
		vendorID uuid.UUID
		wantErr  bool
	}{
		{"valid shop", "Corner Outfitters", uuid.New(), false},
		{"empty name", "", uuid.New(), true},
		{"whitespace name", "   ", uuid.New(), true},
		{"name too long", strings.Repeat("x", 201), uuid.New(), true},
		{"nil vendor", "Corner Outfitters", uuid.Nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewShop(tt.shopName, tt.vendorID)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.False(t, s.IsBlacklisted())
			assert.Len(t, s.GetDomainEvents(), 1)
		})
	}
}

func TestShopBlacklist(t *testing.T) {
	s := createTestShop(t)

	require.NoError(t, s.Blacklist("chargeback fraud"))
	assert.True(t, s.IsBlacklisted())
	assert.Equal(t, "chargeback fraud", s.BlacklistReason)

	// Blacklisting twice is an error
	assert.Error(t, s.Blacklist("again"))

	require.NoError(t, s.Unblacklist())
	assert.False(t, s.IsBlacklisted())
	assert.Empty(t, s.BlacklistReason)

	assert.Error(t, s.Unblacklist())
}

func TestShopRename(t *testing.T) {
	s := createTestShop(t)

	require.NoError(t, s.Rename("New Corner"))
	assert.Equal(t, "New Corner", s.Name)

	assert.Error(t, s.Rename(""))
	assert.Error(t, s.Rename(strings.Repeat("x", 201)))
}

func TestShopIsOwnedBy(t *testing.T) {
	vendorID := uuid.New()
	s, err := NewShop("Corner Outfitters", vendorID)
	require.NoError(t, err)

	assert.True(t, s.IsOwnedBy(vendorID))
	assert.False(t, s.IsOwnedBy(uuid.New()))
}
