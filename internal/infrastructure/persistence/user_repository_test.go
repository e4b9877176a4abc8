package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketbay/backend/internal/domain/identity"
	"github.com/marketbay/backend/internal/domain/shared"
)

func TestUserRepositorySaveAndFindByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	u, err := identity.NewUser("Buyer@Example.com", "password1", identity.RoleCustomer)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, u))

	found, err := repo.FindByEmail(ctx, "buyer@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)
	assert.Equal(t, identity.RoleCustomer, found.Role)
	assert.True(t, found.VerifyPassword("password1"))

	// Lookup is case-insensitive on the stored lowercase email
	found, err = repo.FindByEmail(ctx, "Buyer@Example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)
}

func TestUserRepositoryExistsByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	exists, err := repo.ExistsByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	u, err := identity.NewUser("seller@example.com", "password1", identity.RoleVendor)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, u))

	exists, err = repo.ExistsByEmail(ctx, "seller@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserRepositoryFindAllRoleFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	for _, tc := range []struct {
		email string
		role  identity.Role
	}{
		{"c1@example.com", identity.RoleCustomer},
		{"c2@example.com", identity.RoleCustomer},
		{"v1@example.com", identity.RoleVendor},
	} {
		u, err := identity.NewUser(tc.email, "password1", tc.role)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, u))
	}

	filter := shared.DefaultFilter()
	filter.Filters["role"] = "customer"
	users, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	count, err := repo.Count(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestUserRepositoryDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	u, err := identity.NewUser("gone@example.com", "password1", identity.RoleCustomer)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, u))

	require.NoError(t, repo.Delete(ctx, u.ID))
	_, err = repo.FindByID(ctx, u.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
