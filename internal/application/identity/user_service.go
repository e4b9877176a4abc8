package identity

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marketbay/backend/internal/domain/identity"
	"github.com/marketbay/backend/internal/domain/shared"
)

// UserService handles admin-facing account management
type UserService struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo identity.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// ListUsers returns a paginated list of accounts
func (s *UserService) ListUsers(ctx context.Context, filter shared.Filter) (*shared.Paginated[UserInfo], error) {
	users, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.userRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	infos := make([]UserInfo, len(users))
	for i := range users {
		infos[i] = NewUserInfo(&users[i])
	}

	result := shared.NewPaginated(infos, total, filter.Page, filter.PageSize)
	return &result, nil
}

// GetUser returns a single account by ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	info := NewUserInfo(user)
	return &info, nil
}

// DisableUser deactivates an account. Admins cannot disable themselves.
func (s *UserService) DisableUser(ctx context.Context, adminID, targetID uuid.UUID) error {
	if adminID == targetID {
		return shared.NewDomainError("SELF_DISABLE", "Cannot disable your own account")
	}

	user, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return err
	}

	if err := user.Disable(); err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	s.logger.Info("user disabled",
		zap.String("user_id", targetID.String()),
		zap.String("admin_id", adminID.String()))

	return nil
}

// EnableUser reactivates a disabled or locked account
func (s *UserService) EnableUser(ctx context.Context, adminID, targetID uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return err
	}

	if err := user.Enable(); err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	s.logger.Info("user enabled",
		zap.String("user_id", targetID.String()),
		zap.String("admin_id", adminID.String()))

	return nil
}

// ResetPassword sets a new password without the old one (admin reset)
func (s *UserService) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return err
	}

	if err := user.SetPassword(input.NewPassword); err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	s.logger.Info("password reset", zap.String("user_id", input.UserID.String()))

	return nil
}
