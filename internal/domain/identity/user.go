package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/marketbay/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Role represents what a user is allowed to do in the marketplace
type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
	RoleAdmin    Role = "admin"
)

// IsValid checks if the role is a known Role
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleVendor, RoleAdmin:
		return true
	}
	return false
}

// String returns the string representation of Role
func (r Role) String() string {
	return string(r)
}

// UserStatus represents the status of a user
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusLocked   UserStatus = "locked"
	UserStatusDisabled UserStatus = "disabled"
)

// Password cost for bcrypt
const bcryptCost = 12

// User represents an account in the system.
// Users authenticate by email; their role decides which order listing
// variant and which admin surfaces they may reach.
type User struct {
	shared.BaseAggregateRoot
	Email          string
	PasswordHash   string
	DisplayName    string
	Role           Role
	Status         UserStatus
	LastLoginAt    *time.Time
	FailedAttempts int
	LockedUntil    *time.Time
}

// NewUser creates a new active user with a hashed password
func NewUser(email, password string, role Role) (*User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown user role")
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	user := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             strings.ToLower(strings.TrimSpace(email)),
		PasswordHash:      passwordHash,
		Role:              role,
		Status:            UserStatusActive,
	}

	user.AddDomainEvent(NewUserCreatedEvent(user))

	return user, nil
}

// SetDisplayName sets the user's display name
func (u *User) SetDisplayName(displayName string) error {
	if displayName != "" && len(displayName) > 200 {
		return shared.NewDomainError("INVALID_DISPLAY_NAME", "Display name cannot exceed 200 characters")
	}

	u.DisplayName = strings.TrimSpace(displayName)
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// ChangePassword changes the user's password after verifying the old one
func (u *User) ChangePassword(oldPassword, newPassword string) error {
	if !u.VerifyPassword(oldPassword) {
		return shared.NewDomainError("INVALID_PASSWORD", "Current password is incorrect")
	}

	return u.SetPassword(newPassword)
}

// SetPassword sets a new password (admin reset, no old password check)
func (u *User) SetPassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	passwordHash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// Disable deactivates the user
func (u *User) Disable() error {
	if u.Status == UserStatusDisabled {
		return shared.NewDomainError("ALREADY_DISABLED", "User is already disabled")
	}

	oldStatus := u.Status
	u.Status = UserStatusDisabled
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	u.AddDomainEvent(NewUserStatusChangedEvent(u, oldStatus, UserStatusDisabled))

	return nil
}

// Enable reactivates a disabled or locked user
func (u *User) Enable() error {
	if u.Status == UserStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "User is already active")
	}

	oldStatus := u.Status
	u.Status = UserStatusActive
	u.FailedAttempts = 0
	u.LockedUntil = nil
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	u.AddDomainEvent(NewUserStatusChangedEvent(u, oldStatus, UserStatusActive))

	return nil
}

// Lock locks the user account for the given duration
func (u *User) Lock(duration time.Duration) error {
	if u.Status == UserStatusDisabled {
		return shared.NewDomainError("USER_DISABLED", "Cannot lock a disabled user")
	}

	oldStatus := u.Status
	u.Status = UserStatusLocked
	if duration > 0 {
		lockedUntil := time.Now().Add(duration)
		u.LockedUntil = &lockedUntil
	}
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	u.AddDomainEvent(NewUserStatusChangedEvent(u, oldStatus, UserStatusLocked))

	return nil
}

// RecordLoginSuccess records a successful login
func (u *User) RecordLoginSuccess() {
	now := time.Now()
	u.LastLoginAt = &now
	u.FailedAttempts = 0
	u.UpdatedAt = now
	u.IncrementVersion()
}

// RecordLoginFailure records a failed login attempt.
// Returns true if the account was locked as a result.
func (u *User) RecordLoginFailure(maxAttempts int, lockDuration time.Duration) bool {
	u.FailedAttempts++
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	if u.FailedAttempts >= maxAttempts {
		_ = u.Lock(lockDuration)
		return true
	}

	return false
}

// IsLocked returns true if user is locked and the lock has not expired
func (u *User) IsLocked() bool {
	if u.Status != UserStatusLocked {
		return false
	}

	if u.LockedUntil != nil && time.Now().After(*u.LockedUntil) {
		return false
	}

	return true
}

// CanLogin returns true if user can login
func (u *User) CanLogin() bool {
	if u.Status == UserStatusDisabled {
		return false
	}
	return !u.IsLocked()
}

// IsAdmin returns true for admin users
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsVendor returns true for vendor users
func (u *User) IsVendor() bool {
	return u.Role == RoleVendor
}

// IsCustomer returns true for customer users
func (u *User) IsCustomer() bool {
	return u.Role == RoleCustomer
}

// Validation functions

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}

	hasLetter := regexp.MustCompile(`[a-zA-Z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`[0-9]`).MatchString(password)
	if !hasLetter || !hasNumber {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must contain at least one letter and one number")
	}

	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
