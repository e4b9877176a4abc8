package models

import (
	"time"

	"github.com/marketbay/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	AggregateModel
	Email          string              `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash   string              `gorm:"type:varchar(200);not null"`
	DisplayName    string              `gorm:"type:varchar(200)"`
	Role           identity.Role       `gorm:"type:varchar(20);not null;index"`
	Status         identity.UserStatus `gorm:"type:varchar(20);not null;default:'active'"`
	LastLoginAt    *time.Time
	FailedAttempts int `gorm:"not null;default:0"`
	LockedUntil    *time.Time
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	u := &identity.User{
		Email:          m.Email,
		PasswordHash:   m.PasswordHash,
		DisplayName:    m.DisplayName,
		Role:           m.Role,
		Status:         m.Status,
		LastLoginAt:    m.LastLoginAt,
		FailedAttempts: m.FailedAttempts,
		LockedUntil:    m.LockedUntil,
	}
	m.PopulateAggregateRoot(&u.BaseAggregateRoot)
	return u
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.DisplayName = u.DisplayName
	m.Role = u.Role
	m.Status = u.Status
	m.LastLoginAt = u.LastLoginAt
	m.FailedAttempts = u.FailedAttempts
	m.LockedUntil = u.LockedUntil
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
