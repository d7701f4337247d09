package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"storefront/internal/model"
)

// OrderRepository defines operations for order documents
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByUser(ctx context.Context, userID string) ([]model.Order, error)
}

type orderRepository struct {
	db DB
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db DB) OrderRepository {
	return &orderRepository{db: db}
}

const orderColumns = `id, user_id, name, email, mobile, items, tax, total, created_at, updated_at`

// Create inserts a new order document
func (r *orderRepository) Create(ctx context.Context, o *model.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("failed to encode order items: %w", err)
	}

	sql := `INSERT INTO orders (` + orderColumns + `)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = r.db.Exec(ctx, sql, o.ID, o.UserID, o.Name, o.Email, o.Mobile, items, o.Tax, o.Total, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// FindByUser lists the orders placed by one user, newest first
func (r *orderRepository) FindByUser(ctx context.Context, userID string) ([]model.Order, error) {
	sql := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC, id`
	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders by user: %w", err)
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		var o model.Order
		var items []byte
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.Name, &o.Email, &o.Mobile, &items,
			&o.Tax, &o.Total, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("failed to decode order items: %w", err)
		}
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}
	return orders, nil
}
