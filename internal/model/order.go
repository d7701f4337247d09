package model

import "time"

// OrderItem is an opaque line item as sent by the client
type OrderItem map[string]any

// Order is a placed order. Name, Email and Mobile are copied from the user
// at placement time and are not kept in sync afterwards.
type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Mobile    string      `json:"mobile"`
	Items     []OrderItem `json:"items"`
	Tax       float64     `json:"tax"`
	Total     float64     `json:"total"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// PlaceOrderRequest is the body of POST /order
type PlaceOrderRequest struct {
	Items []OrderItem `json:"items"`
	Tax   float64     `json:"tax"`
	Total float64     `json:"total"`
}
