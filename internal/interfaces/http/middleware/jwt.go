package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marketbay/backend/internal/infrastructure/auth"
	"github.com/marketbay/backend/internal/infrastructure/logger"
)

// JWT context keys
const (
	JWTClaimsKey  = "jwt_claims"
	JWTUserIDKey  = "jwt_user_id"
	JWTEmailKey   = "jwt_email"
	JWTRoleKey    = "jwt_role"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// JWTMiddlewareConfig holds configuration for JWT middleware
type JWTMiddlewareConfig struct {
	// JWTService is required for token validation
	JWTService *auth.JWTService
	// TokenBlacklist is optional for checking revoked tokens
	TokenBlacklist auth.TokenBlacklist
	// SkipPaths are paths that don't require authentication
	SkipPaths []string
	// SkipPathPrefixes are path prefixes that don't require authentication
	SkipPathPrefixes []string
	// Optional callback if token is invalid (default: return 401)
	OnError func(c *gin.Context, err error)
	// Logger for middleware logging
	Logger *zap.Logger
}

// DefaultJWTConfig returns default JWT middleware configuration.
// The payment callback path is public because the gateway posts to it
// server-to-server without a bearer token.
func DefaultJWTConfig(jwtService *auth.JWTService) JWTMiddlewareConfig {
	return JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: nil,
		SkipPaths: []string{
			"/health",
			"/healthz",
			"/api/v1/health",
			"/api/v1/auth/register",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
			"/api/v1/payments/callback",
		},
		SkipPathPrefixes: []string{},
		OnError:          nil,
		Logger:           nil,
	}
}

// JWTAuthMiddleware creates JWT authentication middleware
func JWTAuthMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return JWTAuthMiddlewareWithConfig(DefaultJWTConfig(jwtService))
}

// JWTAuthMiddlewareWithConfig creates JWT authentication middleware with custom config
func JWTAuthMiddlewareWithConfig(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		for _, skipPath := range cfg.SkipPaths {
			if path == skipPath {
				c.Next()
				return
			}
		}

		for _, prefix := range cfg.SkipPathPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			handleAuthError(c, cfg, auth.ErrInvalidToken, "Missing authorization header")
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			handleAuthError(c, cfg, auth.ErrInvalidToken, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		if tokenString == "" {
			handleAuthError(c, cfg, auth.ErrInvalidToken, "Missing token")
			return
		}

		claims, err := cfg.JWTService.ValidateAccessToken(tokenString)
		if err != nil {
			handleAuthError(c, cfg, err, "Token validation failed")
			return
		}

		if cfg.TokenBlacklist != nil {
			ctx := c.Request.Context()

			// Individual logout revokes a single JTI
			if claims.ID != "" {
				blacklisted, err := cfg.TokenBlacklist.IsBlacklisted(ctx, claims.ID)
				if err != nil {
					// Fail open for availability; the lookup failure is logged
					if cfg.Logger != nil {
						cfg.Logger.Error("failed to check token blacklist",
							zap.String("jti", claims.ID),
							zap.Error(err))
					}
				} else if blacklisted {
					handleAuthError(c, cfg, auth.ErrTokenBlacklisted, "Token has been revoked")
					return
				}
			}

			// Password change or forced logout invalidates every token
			// issued before the invalidation timestamp
			if claims.UserID != "" {
				invalidated, err := cfg.TokenBlacklist.IsUserTokenInvalidated(ctx, claims.UserID, claims.GetIssuedAtTime())
				if err != nil {
					if cfg.Logger != nil {
						cfg.Logger.Error("failed to check user token invalidation",
							zap.String("user_id", claims.UserID),
							zap.Error(err))
					}
				} else if invalidated {
					handleAuthError(c, cfg, auth.ErrTokenBlacklisted, "User session has been invalidated")
					return
				}
			}
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(JWTUserIDKey, claims.UserID)
		c.Set(JWTEmailKey, claims.Email)
		c.Set(JWTRoleKey, claims.Role)

		// Also enrich the request context so service-layer logs carry
		// the user ID
		ctx := c.Request.Context()
		log := logger.FromContext(ctx)
		ctx, _ = logger.WithUserID(ctx, log, claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireAnyRole aborts with 403 unless the authenticated user carries
// one of the given roles. Must run after JWTAuthMiddleware.
func RequireAnyRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetJWTClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Authentication required",
				},
			})
			return
		}
		if !claims.HasAnyRole(roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FORBIDDEN",
					"message": "Insufficient role for this operation",
				},
			})
			return
		}
		c.Next()
	}
}

// RequireRole aborts with 403 unless the authenticated user carries the
// given role
func RequireRole(role string) gin.HandlerFunc {
	return RequireAnyRole(role)
}

// handleAuthError handles authentication errors
func handleAuthError(c *gin.Context, cfg JWTMiddlewareConfig, err error, message string) {
	if cfg.OnError != nil {
		cfg.OnError(c, err)
		return
	}

	if cfg.Logger != nil {
		cfg.Logger.Warn("JWT authentication failed",
			zap.Error(err),
			zap.String("message", message),
			zap.String("path", c.Request.URL.Path),
		)
	}

	errorCode := "UNAUTHORIZED"
	errorMessage := "Authentication required"

	switch err {
	case auth.ErrExpiredToken:
		errorCode = "TOKEN_EXPIRED"
		errorMessage = "Token has expired"
	case auth.ErrInvalidToken:
		errorCode = "INVALID_TOKEN"
		errorMessage = "Invalid token"
	case auth.ErrInvalidTokenType:
		errorCode = "INVALID_TOKEN_TYPE"
		errorMessage = "Invalid token type"
	case auth.ErrTokenNotYetValid:
		errorCode = "TOKEN_NOT_VALID"
		errorMessage = "Token is not yet valid"
	case auth.ErrTokenBlacklisted:
		errorCode = "TOKEN_REVOKED"
		errorMessage = "Token has been revoked"
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    errorCode,
			"message": errorMessage,
		},
	})
}

// GetJWTClaims retrieves JWT claims from gin.Context
func GetJWTClaims(c *gin.Context) *auth.Claims {
	if claims, exists := c.Get(JWTClaimsKey); exists {
		if jwtClaims, ok := claims.(*auth.Claims); ok {
			return jwtClaims
		}
	}
	return nil
}

// MustGetJWTClaims retrieves JWT claims from gin.Context or panics if not found
func MustGetJWTClaims(c *gin.Context) *auth.Claims {
	claims := GetJWTClaims(c)
	if claims == nil {
		panic("jwt claims not found in context")
	}
	return claims
}

// GetJWTUserID retrieves the user ID from JWT claims in context
func GetJWTUserID(c *gin.Context) string {
	if userID, exists := c.Get(JWTUserIDKey); exists {
		if id, ok := userID.(string); ok {
			return id
		}
	}
	return ""
}

// GetJWTRole retrieves the role from JWT claims in context
func GetJWTRole(c *gin.Context) string {
	if role, exists := c.Get(JWTRoleKey); exists {
		if r, ok := role.(string); ok {
			return r
		}
	}
	return ""
}
