package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marketbay/backend/internal/domain/identity"
	"github.com/marketbay/backend/internal/domain/partner"
	"github.com/marketbay/backend/internal/domain/shared"
	"github.com/marketbay/backend/internal/infrastructure/auth"
)

// AuthServiceConfig contains configuration for the auth service
type AuthServiceConfig struct {
	MaxLoginAttempts int
	LockDuration     time.Duration
}

// DefaultAuthServiceConfig returns the default auth service configuration
func DefaultAuthServiceConfig() AuthServiceConfig {
	return AuthServiceConfig{
		MaxLoginAttempts: 5,
		LockDuration:     15 * time.Minute,
	}
}

// AuthService handles registration, login and session lifecycle.
// Registration creates both the identity user and the matching
// customer or vendor profile.
type AuthService struct {
	userRepo     identity.UserRepository
	customerRepo partner.CustomerRepository
	vendorRepo   partner.VendorRepository
	jwtService   *auth.JWTService
	blacklist    auth.TokenBlacklist
	config       AuthServiceConfig
	logger       *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo identity.UserRepository,
	customerRepo partner.CustomerRepository,
	vendorRepo partner.VendorRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	config AuthServiceConfig,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		customerRepo: customerRepo,
		vendorRepo:   vendorRepo,
		jwtService:   jwtService,
		blacklist:    blacklist,
		config:       config,
		logger:       logger,
	}
}

// Register creates a new account and the role-matching profile.
// Admin accounts cannot self-register.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	role := identity.Role(input.Role)
	if !role.IsValid() || role == identity.RoleAdmin {
		return nil, shared.NewDomainError("INVALID_ROLE", "Role must be customer or vendor")
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("EMAIL_TAKEN", "An account with this email already exists")
	}

	user, err := identity.NewUser(input.Email, input.Password, role)
	if err != nil {
		return nil, err
	}
	if err := user.SetDisplayName(input.Name); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	// The profile carries the marketplace-facing identity; orders and
	// shops reference it rather than the user record.
	switch role {
	case identity.RoleCustomer:
		customer, err := partner.NewCustomer(user.ID, user.Email, input.Name)
		if err != nil {
			return nil, err
		}
		if err := customer.SetPhone(input.Phone); err != nil {
			return nil, err
		}
		if err := s.customerRepo.Save(ctx, customer); err != nil {
			return nil, err
		}
	case identity.RoleVendor:
		vendor, err := partner.NewVendor(user.ID, user.Email, input.Name)
		if err != nil {
			return nil, err
		}
		if err := vendor.SetPhone(input.Phone); err != nil {
			return nil, err
		}
		if err := s.vendorRepo.Save(ctx, vendor); err != nil {
			return nil, err
		}
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", role.String()))

	return &RegisterResult{User: NewUserInfo(user)}, nil
}

// Login authenticates a user and issues a token pair
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
		}
		return nil, err
	}

	if user.Status == identity.UserStatusDisabled {
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account has been deactivated")
	}
	if user.IsLocked() {
		return nil, shared.NewDomainError("ACCOUNT_LOCKED", "Account is locked due to too many failed login attempts")
	}

	if !user.VerifyPassword(input.Password) {
		locked := user.RecordLoginFailure(s.config.MaxLoginAttempts, s.config.LockDuration)
		if saveErr := s.userRepo.Save(ctx, user); saveErr != nil {
			s.logger.Error("failed to persist login failure",
				zap.String("user_id", user.ID.String()),
				zap.Error(saveErr))
		}
		if locked {
			s.logger.Warn("account locked after repeated failures",
				zap.String("user_id", user.ID.String()),
				zap.String("ip", input.IP))
			return nil, shared.NewDomainError("ACCOUNT_LOCKED", "Account is locked due to too many failed login attempts")
		}
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	tokens, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role.String(),
	})
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_GENERATION_FAILED", "Failed to generate tokens")
	}

	user.RecordLoginSuccess()
	if err := s.userRepo.Save(ctx, user); err != nil {
		// Login still succeeds; only the bookkeeping failed
		s.logger.Error("failed to persist login success",
			zap.String("user_id", user.ID.String()),
			zap.Error(err))
	}

	s.logger.Info("user logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("ip", input.IP))

	return &LoginResult{
		AccessToken:           tokens.AccessToken,
		RefreshToken:          tokens.RefreshToken,
		AccessTokenExpiresAt:  tokens.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokens.RefreshTokenExpiresAt,
		TokenType:             tokens.TokenType,
		User:                  NewUserInfo(user),
	}, nil
}

// RefreshToken exchanges a valid refresh token for a new token pair.
// The user's current email and role are re-read so that role or status
// changes take effect immediately.
func (s *AuthService) RefreshToken(ctx context.Context, input RefreshTokenInput) (*RefreshTokenResult, error) {
	claims, err := s.jwtService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, s.mapTokenError(err)
	}

	blacklisted, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		s.logger.Error("blacklist lookup failed", zap.Error(err))
	} else if blacklisted {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Token has been revoked")
	}

	invalidated, err := s.blacklist.IsUserTokenInvalidated(ctx, claims.UserID, claims.GetIssuedAtTime())
	if err != nil {
		s.logger.Error("blacklist lookup failed", zap.Error(err))
	} else if invalidated {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Token has been revoked")
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
		}
		return nil, err
	}
	if !user.CanLogin() {
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account is no longer active")
	}

	tokens, err := s.jwtService.RefreshTokenPair(input.RefreshToken, user.Email, user.Role.String())
	if err != nil {
		return nil, s.mapTokenError(err)
	}

	return &RefreshTokenResult{
		AccessToken:           tokens.AccessToken,
		RefreshToken:          tokens.RefreshToken,
		AccessTokenExpiresAt:  tokens.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokens.RefreshTokenExpiresAt,
		TokenType:             tokens.TokenType,
	}, nil
}

// Logout revokes the presented token, and optionally every session of
// the user.
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	if input.TokenJTI != "" && input.TokenTTL > 0 {
		if err := s.blacklist.AddToBlacklist(ctx, input.TokenJTI, input.TokenTTL); err != nil {
			return err
		}
	}

	if input.AllSessions {
		ttl := s.jwtService.GetRefreshTokenExpiration()
		if err := s.blacklist.AddUserTokensToBlacklist(ctx, input.UserID.String(), ttl); err != nil {
			return err
		}
	}

	s.logger.Info("user logged out",
		zap.String("user_id", input.UserID.String()),
		zap.Bool("all_sessions", input.AllSessions))

	return nil
}

// GetCurrentUser returns the authenticated user's account information
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	info := NewUserInfo(user)
	return &info, nil
}

// ChangePassword changes the user's password and revokes existing
// sessions so stolen tokens stop working.
func (s *AuthService) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return err
	}

	if err := user.ChangePassword(input.OldPassword, input.NewPassword); err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	ttl := s.jwtService.GetRefreshTokenExpiration()
	if err := s.blacklist.AddUserTokensToBlacklist(ctx, user.ID.String(), ttl); err != nil {
		s.logger.Error("failed to revoke sessions after password change",
			zap.String("user_id", user.ID.String()),
			zap.Error(err))
	}

	s.logger.Info("password changed", zap.String("user_id", user.ID.String()))

	return nil
}

// mapTokenError translates JWT validation errors to domain errors
func (s *AuthService) mapTokenError(err error) error {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return shared.NewDomainError("TOKEN_EXPIRED", "Refresh token has expired")
	case errors.Is(err, auth.ErrMaxRefreshExceeded):
		return shared.NewDomainError("TOKEN_MAX_REFRESH", "Session has expired, please log in again")
	default:
		return shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
	}
}
