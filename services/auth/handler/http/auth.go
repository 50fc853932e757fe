package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mototrack/mototrack/internal/pkg/logger"
	"github.com/mototrack/mototrack/internal/pkg/models"
	"github.com/mototrack/mototrack/internal/utils"
	"github.com/mototrack/mototrack/services/auth"
	"github.com/mototrack/mototrack/services/auth/usecase"
)

// AuthHandler handles HTTP requests for account operations
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth HTTP handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// Register creates an account and returns a session token
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	resp, err := h.authUC.Register(c.Request().Context(), req)
	if err != nil {
		if isValidationError(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to register account", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to register account")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Account created", resp)
}

// Login verifies credentials and returns a session token
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	resp, err := h.authUC.Login(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, err.Error())
		}
		logger.Error("Failed to log in", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to log in")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logged in", resp)
}

// isValidationError reports whether the failure should surface inline on the
// registration form rather than as a server error
func isValidationError(err error) bool {
	return errors.Is(err, usecase.ErrFieldsRequired) ||
		errors.Is(err, usecase.ErrPasswordTooShort) ||
		errors.Is(err, usecase.ErrPasswordMismatch) ||
		errors.Is(err, usecase.ErrEmailTaken)
}
