package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketbay/backend/internal/domain/shared"
	"github.com/marketbay/backend/internal/domain/shop"
)

func TestShopRepositorySaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormShopRepository(db)
	ctx := context.Background()

	vendorID := uuid.New()
	s, err := shop.NewShop("Trendy Threads", vendorID)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, s))

	found, err := repo.FindByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Trendy Threads", found.Name)
	assert.Equal(t, vendorID, found.VendorID)
	assert.False(t, found.Blacklisted)
}

func TestShopRepositoryFindByIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormShopRepository(db)
	ctx := context.Background()

	s1 := seedShop(t, db, uuid.New())
	s2 := seedShop(t, db, uuid.New())
	seedShop(t, db, uuid.New())

	found, err := repo.FindByIDs(ctx, []uuid.UUID{s1.ID, s2.ID})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = repo.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, found)

	// Missing IDs simply produce fewer rows
	found, err = repo.FindByIDs(ctx, []uuid.UUID{s1.ID, uuid.New()})
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestShopRepositoryBlacklistRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormShopRepository(db)
	ctx := context.Background()

	s := seedShop(t, db, uuid.New())
	require.NoError(t, s.Blacklist("fraudulent listings"))
	require.NoError(t, repo.Save(ctx, s))

	found, err := repo.FindByID(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, found.Blacklisted)
	assert.Equal(t, "fraudulent listings", found.BlacklistReason)

	filter := shared.DefaultFilter()
	filter.Filters["blacklisted"] = true
	listed, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, s.ID, listed[0].ID)
}

func TestShopRepositoryFindByVendor(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormShopRepository(db)
	ctx := context.Background()

	vendorA := uuid.New()
	seedShop(t, db, vendorA)
	seedShop(t, db, vendorA)
	seedShop(t, db, uuid.New())

	found, err := repo.FindByVendor(ctx, vendorA, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Len(t, found, 2)
}
