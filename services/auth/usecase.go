package auth

import (
	"context"

	"github.com/mototrack/mototrack/internal/pkg/models"
)

// AuthUC defines the interface for dashboard account management
type AuthUC interface {
	// Register creates an account and signs the new user in
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)

	// Login verifies credentials and issues a session token
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
}
