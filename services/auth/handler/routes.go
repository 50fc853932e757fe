package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/mototrack/mototrack/services/auth"
	httpHandler "github.com/mototrack/mototrack/services/auth/handler/http"
)

// HTTPHandler combines all handlers for the auth service
type HTTPHandler struct {
	authHTTP *httpHandler.AuthHandler
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(authUC auth.AuthUC) *HTTPHandler {
	return &HTTPHandler{
		authHTTP: httpHandler.NewAuthHandler(authUC),
	}
}

// RegisterRoutes registers the public auth routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	grp := e.Group("/api/auth")
	grp.POST("/register", h.authHTTP.Register)
	grp.POST("/login", h.authHTTP.Login)
}
