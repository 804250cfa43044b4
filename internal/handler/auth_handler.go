package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "motohub/internal/errors"
	"motohub/internal/service"
)

// AuthHandler handles admin authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents an admin login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Token  string      `json:"token"`
	Expiry time.Time   `json:"expiry"`
	User   interface{} `json:"user"`
}

// VerifyRequest represents a token verification request.
type VerifyRequest struct {
	Token string `json:"token"`
}

// VerifyResponse represents a token verification result.
type VerifyResponse struct {
	Valid bool        `json:"valid"`
	User  interface{} `json:"user,omitempty"`
}

// Login godoc
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: err.Error()})
	}

	token, expiry, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		if httpErr.StatusCode == http.StatusInternalServerError {
			c.Logger().Error(err)
		}
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Token:  token,
		Expiry: expiry,
		User:   echo.Map{"id": user.ID, "username": user.Username},
	})
}

// Verify godoc
// @Summary Verify an admin session token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body VerifyRequest true "Token"
// @Success 200 {object} VerifyResponse
// @Router /admin/verify [post]
func (h *AuthHandler) Verify(c echo.Context) error {
	var req VerifyRequest
	if err := c.Bind(&req); err != nil {
		// Verification never fails outward; a bad body is just invalid.
		return c.JSON(http.StatusOK, VerifyResponse{Valid: false})
	}

	claims, ok := h.authService.Verify(req.Token)
	if !ok {
		return c.JSON(http.StatusOK, VerifyResponse{Valid: false})
	}

	return c.JSON(http.StatusOK, VerifyResponse{
		Valid: true,
		User:  echo.Map{"id": claims.UserID, "username": claims.Username},
	})
}
