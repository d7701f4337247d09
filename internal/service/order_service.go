package service

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/google/uuid"
)

// OrderService defines order operations for an authenticated user
type OrderService interface {
	PlaceOrder(ctx context.Context, userID string, req model.PlaceOrderRequest) (*model.Order, error)
	ListOrders(ctx context.Context, userID string) ([]model.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo repository.OrderRepository, userRepo repository.UserRepository) OrderService {
	return &orderService{orderRepo: orderRepo, userRepo: userRepo}
}

// PlaceOrder records an order, copying the user's contact details as they are now
func (s *orderService) PlaceOrder(ctx context.Context, userID string, req model.PlaceOrderRequest) (*model.Order, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ordering user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	now := time.Now()
	order := &model.Order{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Mobile:    user.Address.Mobile,
		Items:     req.Items,
		Tax:       req.Tax,
		Total:     req.Total,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order in repo: %w", err)
	}
	return order, nil
}

// ListOrders returns only the caller's orders
func (s *orderService) ListOrders(ctx context.Context, userID string) ([]model.Order, error) {
	orders, err := s.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
