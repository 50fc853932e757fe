package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mototrack/mototrack/internal/pkg/jwt"
	"github.com/mototrack/mototrack/internal/pkg/logger"
	"github.com/mototrack/mototrack/internal/pkg/models"
	"github.com/mototrack/mototrack/services/auth"
	"golang.org/x/crypto/bcrypt"
)

// minPasswordLength is the minimum accepted password length
const minPasswordLength = 6

var (
	// ErrFieldsRequired is returned when a registration field is empty
	ErrFieldsRequired = errors.New("all fields are required")

	// ErrPasswordTooShort is returned for passwords under the minimum length
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters", minPasswordLength)

	// ErrPasswordMismatch is returned when the confirmation does not match
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrEmailTaken is returned when an account already exists for the email
	ErrEmailTaken = errors.New("an account with this email already exists")

	// ErrInvalidCredentials is returned for a bad email/password pair
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthUC implements auth.AuthUC
type AuthUC struct {
	cfg  *models.Config
	repo auth.UserRepo
}

// NewAuthUC creates the auth usecase
func NewAuthUC(cfg *models.Config, repo auth.UserRepo) *AuthUC {
	return &AuthUC{
		cfg:  cfg,
		repo: repo,
	}
}

// Register creates an account and signs the new user in. Validation failures
// surface as errors the handler renders inline; the submitted form state is
// the client's to keep.
func (uc *AuthUC) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if email == "" || req.Password == "" || req.ConfirmPassword == "" {
		return nil, ErrFieldsRequired
	}
	if len(req.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	if _, err := uc.repo.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, auth.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	logger.Info("Account created", logger.String("email", user.Email))

	return uc.issueToken(user)
}

// Login verifies credentials and issues a session token
func (uc *AuthUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := uc.repo.GetUserByEmail(ctx, email)
	if errors.Is(err, auth.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return uc.issueToken(user)
}

func (uc *AuthUC) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwt.GenerateToken(user.ID, user.Email, uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		UserID:    user.ID,
		Email:     user.Email,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
