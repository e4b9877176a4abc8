package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/marketbay/backend/internal/domain/identity"
)

// RegisterInput contains the input for account registration
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Role     string // "customer" or "vendor"
}

// RegisterResult contains the result of a successful registration
type RegisterResult struct {
	User UserInfo
}

// LoginInput contains the input for user login
type LoginInput struct {
	Email    string
	Password string
	IP       string // Client IP for login tracking
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
	User                  UserInfo
}

// UserInfo contains basic user information returned to clients
type UserInfo struct {
	ID          uuid.UUID
	Email       string
	DisplayName string
	Role        string
	Status      string
	LastLoginAt *time.Time
	CreatedAt   time.Time
}

// NewUserInfo maps a domain user to its client representation
func NewUserInfo(u *identity.User) UserInfo {
	return UserInfo{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role.String(),
		Status:      string(u.Status),
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

// RefreshTokenInput contains the input for token refresh
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenResult contains the result of a token refresh
type RefreshTokenResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
}

// LogoutInput contains the input for user logout
type LogoutInput struct {
	UserID      uuid.UUID
	TokenJTI    string        // JWT ID of the presented access token
	TokenTTL    time.Duration // Remaining validity of the presented token
	AllSessions bool          // Invalidate every session of the user
}

// ChangePasswordInput contains the input for password change
type ChangePasswordInput struct {
	UserID      uuid.UUID
	OldPassword string
	NewPassword string
}

// ResetPasswordInput contains the input for an admin password reset
type ResetPasswordInput struct {
	UserID      uuid.UUID
	NewPassword string
}
