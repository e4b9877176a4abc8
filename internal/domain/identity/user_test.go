package identity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T) *User {
	t.Helper()
	u, err := NewUser("jane@example.com", "password1", RoleCustomer)
	require.NoError(t, err)
	return u
}

func TestNewUser(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		role     Role
		wantErr  bool
	}{
		{"valid customer", "jane@example.com", "password1", RoleCustomer, false},
		{"valid vendor", "shop@example.com", "password1", RoleVendor, false},
		{"valid admin", "admin@example.com", "password1", RoleAdmin, false},
		{"empty email", "", "password1", RoleCustomer, true},
		{"bad email", "not-an-email", "password1", RoleCustomer, true},
		{"short password", "jane@example.com", "pass1", RoleCustomer, true},
		{"password without digit", "jane@example.com", "passwords", RoleCustomer, true},
		{"password without letter", "jane@example.com", "12345678", RoleCustomer, true},
		{"unknown role", "jane@example.com", "password1", Role("root"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser(tt.email, tt.password, tt.role)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, UserStatusActive, u.Status)
			assert.NotEqual(t, tt.password, u.PasswordHash)
			assert.True(t, u.VerifyPassword(tt.password))
			assert.Len(t, u.GetDomainEvents(), 1)
		})
	}
}

func TestUserEmailNormalized(t *testing.T) {
	u, err := NewUser("Jane@Example.COM", "password1", RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", u.Email)
}

func TestUserChangePassword(t *testing.T) {
	u := createTestUser(t)

	assert.Error(t, u.ChangePassword("wrong-pass1", "newpassword1"))

	require.NoError(t, u.ChangePassword("password1", "newpassword1"))
	assert.True(t, u.VerifyPassword("newpassword1"))
	assert.False(t, u.VerifyPassword("password1"))
}

func TestUserLockout(t *testing.T) {
	u := createTestUser(t)

	locked := u.RecordLoginFailure(3, time.Hour)
	assert.False(t, locked)
	locked = u.RecordLoginFailure(3, time.Hour)
	assert.False(t, locked)
	locked = u.RecordLoginFailure(3, time.Hour)
	assert.True(t, locked)

	assert.True(t, u.IsLocked())
	assert.False(t, u.CanLogin())

	require.NoError(t, u.Enable())
	assert.True(t, u.CanLogin())
	assert.Zero(t, u.FailedAttempts)
}

func TestUserLockExpiry(t *testing.T) {
	u := createTestUser(t)

	require.NoError(t, u.Lock(-time.Minute))
	assert.False(t, u.IsLocked())
	assert.True(t, u.CanLogin())
}

func TestUserDisable(t *testing.T) {
	u := createTestUser(t)

	require.NoError(t, u.Disable())
	assert.False(t, u.CanLogin())
	assert.Error(t, u.Disable())
	assert.Error(t, u.Lock(time.Hour))

	require.NoError(t, u.Enable())
	assert.True(t, u.CanLogin())
}

func TestUserRoleHelpers(t *testing.T) {
	u := createTestUser(t)
	assert.True(t, u.IsCustomer())
	assert.False(t, u.IsVendor())
	assert.False(t, u.IsAdmin())
}

func TestUserSetDisplayName(t *testing.T) {
	u := createTestUser(t)

	require.NoError(t, u.SetDisplayName("Jane"))
	assert.Equal(t, "Jane", u.DisplayName)
	assert.Error(t, u.SetDisplayName(strings.Repeat("x", 201)))
}

func TestUserLoginSuccessResetsFailures(t *testing.T) {
	u := createTestUser(t)
	u.RecordLoginFailure(5, time.Hour)
	u.RecordLoginFailure(5, time.Hour)

	u.RecordLoginSuccess()
	assert.Zero(t, u.FailedAttempts)
	require.NotNil(t, u.LastLoginAt)
}
