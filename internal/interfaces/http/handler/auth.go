package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marketbay/backend/internal/application/identity"
	"github.com/marketbay/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService *identity.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *identity.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.RefreshToken)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", h.Me)
		auth.POST("/change-password", h.ChangePassword)
	}
}

// Register godoc
// @Summary      Register a new account
// @Description  Create a customer or vendor account with its profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      201 {object} dto.Response{data=UserResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Register(c.Request.Context(), identity.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
		Role:     req.Role,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newUserResponse(result.User))
}

// Login godoc
// @Summary      User login
// @Description  Authenticate with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200 {object} dto.Response{data=LoginResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), identity.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		IP:       c.ClientIP(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, LoginResponse{
		Token: TokenResponse{
			AccessToken:           result.AccessToken,
			RefreshToken:          result.RefreshToken,
			AccessTokenExpiresAt:  result.AccessTokenExpiresAt,
			RefreshTokenExpiresAt: result.RefreshTokenExpiresAt,
			TokenType:             result.TokenType,
		},
		User: newUserResponse(result.User),
	})
}

// RefreshToken godoc
// @Summary      Refresh access token
// @Description  Exchange a valid refresh token for a new token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RefreshTokenRequest true "Refresh token"
// @Success      200 {object} dto.Response{data=RefreshTokenResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.RefreshToken(c.Request.Context(), identity.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, RefreshTokenResponse{
		Token: TokenResponse{
			AccessToken:           result.AccessToken,
			RefreshToken:          result.RefreshToken,
			AccessTokenExpiresAt:  result.AccessTokenExpiresAt,
			RefreshTokenExpiresAt: result.RefreshTokenExpiresAt,
			TokenType:             result.TokenType,
		},
	})
}

// Logout godoc
// @Summary      User logout
// @Description  Revoke the presented token, optionally every session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LogoutRequest false "Logout options"
// @Success      200 {object} dto.Response
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	// Body is optional; an empty body logs out the current session only
	var req LogoutRequest
	_ = c.ShouldBindJSON(&req)

	input := identity.LogoutInput{
		UserID:      userID,
		AllSessions: req.AllSessions,
	}
	if claims := middleware.GetJWTClaims(c); claims != nil {
		input.TokenJTI = claims.ID
		input.TokenTTL = claims.GetRemainingTTL()
	}

	if err := h.authService.Logout(c.Request.Context(), input); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Logged out"})
}

// Me godoc
// @Summary      Current account
// @Description  Return the authenticated user's account information
// @Tags         auth
// @Produce      json
// @Success      200 {object} dto.Response{data=UserResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.authService.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newUserResponse(*info))
}

// ChangePassword godoc
// @Summary      Change password
// @Description  Change the authenticated user's password and revoke existing sessions
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body ChangePasswordRequest true "Password change data"
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), identity.ChangePasswordInput{
		UserID:      userID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	}); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Password changed"})
}
