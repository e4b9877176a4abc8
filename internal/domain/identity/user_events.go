package identity

import (
	"github.com/google/uuid"
	"github.com/marketbay/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeUser = "User"

// Event type constants
const (
	EventTypeUserCreated       = "UserCreated"
	EventTypeUserStatusChanged = "UserStatusChanged"
)

// UserCreatedEvent is raised when a new user is created
type UserCreatedEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   Role      `json:"role"`
}

// NewUserCreatedEvent creates a new UserCreatedEvent
func NewUserCreatedEvent(u *User) *UserCreatedEvent {
	return &UserCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserCreated, AggregateTypeUser, u.ID),
		UserID:          u.ID,
		Email:           u.Email,
		Role:            u.Role,
	}
}

// EventType returns the event type name
func (e *UserCreatedEvent) EventType() string {
	return EventTypeUserCreated
}

// UserStatusChangedEvent is raised when a user's status changes
type UserStatusChangedEvent struct {
	shared.BaseDomainEvent
	UserID    uuid.UUID  `json:"user_id"`
	OldStatus UserStatus `json:"old_status"`
	NewStatus UserStatus `json:"new_status"`
}

// NewUserStatusChangedEvent creates a new UserStatusChangedEvent
func NewUserStatusChangedEvent(u *User, oldStatus, newStatus UserStatus) *UserStatusChangedEvent {
	return &UserStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserStatusChanged, AggregateTypeUser, u.ID),
		UserID:          u.ID,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}

// EventType returns the event type name
func (e *UserStatusChangedEvent) EventType() string {
	return EventTypeUserStatusChanged
}
