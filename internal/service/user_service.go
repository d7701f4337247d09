package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/model"
	"storefront/internal/repository"
)

// UserService provides profile operations for an authenticated user
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*model.User, error)
	UpdateAddress(ctx context.Context, userID string, address model.Address) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateAddress replaces the user's address wholesale and returns the updated user
func (s *userService) UpdateAddress(ctx context.Context, userID string, address model.Address) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user for address update: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	updatedAt := time.Now()
	if err := s.userRepo.UpdateAddress(ctx, userID, address, updatedAt); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update address in repo: %w", err)
	}

	user.Address = address
	user.UpdatedAt = updatedAt
	return user, nil
}
