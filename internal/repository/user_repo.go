package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines operations for user documents
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	UpdateAddress(ctx context.Context, id string, address model.Address, updatedAt time.Time) error
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, name, email, password, avatar, address, created_at, updated_at`

// Create inserts a new user document
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	address, err := json.Marshal(user.Address)
	if err != nil {
		return fmt.Errorf("failed to encode address: %w", err)
	}

	sql := `INSERT INTO users (` + userColumns + `)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.db.Exec(ctx, sql, user.ID, user.Name, user.Email, user.Password, user.Avatar, address, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByEmail retrieves a user by email; a missing user is (nil, nil)
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(r.db.QueryRow(ctx, sql, email))
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

// FindByID retrieves a user by id; a missing user is (nil, nil)
func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}

// UpdateAddress replaces the whole address sub-document
func (r *userRepository) UpdateAddress(ctx context.Context, id string, address model.Address, updatedAt time.Time) error {
	doc, err := json.Marshal(address)
	if err != nil {
		return fmt.Errorf("failed to encode address: %w", err)
	}

	sql := `UPDATE users SET address = $1, updated_at = $2 WHERE id = $3`
	tag, err := r.db.Exec(ctx, sql, doc, updatedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update address: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	var address []byte
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Avatar, &address, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(address, &user.Address); err != nil {
		return nil, fmt.Errorf("failed to decode address: %w", err)
	}
	return user, nil
}
