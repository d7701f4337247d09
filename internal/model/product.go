package model

import (
	"strings"
	"time"
)

const (
	CategoryMens  = "MENS"
	CategoryWomen = "WOMEN"
	CategoryKids  = "KIDS"
)

// NormalizeCategory is the stored form of a category: trimmed and upper-cased
func NormalizeCategory(category string) string {
	return strings.ToUpper(strings.TrimSpace(category))
}

// Product is a catalog entry. It is not modified after upload.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	Price       float64   `json:"price"`
	Qty         int       `json:"qty"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Usage       string    `json:"usage"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateProductRequest is the body of POST /product/upload and an entry of a seed catalog
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Price       float64 `json:"price"`
	Qty         int     `json:"qty"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Usage       string  `json:"usage"`
}
