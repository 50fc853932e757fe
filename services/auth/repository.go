package auth

import (
	"context"
	"errors"

	"github.com/mototrack/mototrack/internal/pkg/models"
)

// ErrUserNotFound is returned when no account exists for an email
var ErrUserNotFound = errors.New("user not found")

// UserRepo defines the interface for account persistence
type UserRepo interface {
	// CreateUser inserts a new account; fails when the email is taken
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail returns the account for an email, or ErrUserNotFound
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
