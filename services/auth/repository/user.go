package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mototrack/mototrack/internal/pkg/database"
	"github.com/mototrack/mototrack/internal/pkg/models"
	"github.com/mototrack/mototrack/services/auth"
)

// UserRepository implements auth.UserRepo on Postgres
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a repository on the shared Postgres client
func NewUserRepository(client *database.PostgresClient) *UserRepository {
	return &UserRepository{db: client.GetDB()}
}

// NewUserRepositoryFromDB creates a repository from a raw DB handle, used in tests
func NewUserRepositoryFromDB(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts a new account, assigning its ID and timestamps
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO accounts (id, email, password_hash, created_at, updated_at)
		VALUES (:id, :email, :password_hash, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}
	return nil
}

// GetUserByEmail returns the account for an email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, created_at, updated_at
		FROM accounts
		WHERE email = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, auth.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &user, nil
}
