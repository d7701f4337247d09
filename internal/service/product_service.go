package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/google/uuid"
)

var ErrProductNotFound = errors.New("product not found")

// ProductService defines catalog operations
type ProductService interface {
	CreateProduct(ctx context.Context, req model.CreateProductRequest) (*model.Product, error)
	ListByCategory(ctx context.Context, category string) ([]model.Product, error)
	GetProductByID(ctx context.Context, id string) (*model.Product, error)
}

type productService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) CreateProduct(ctx context.Context, req model.CreateProductRequest) (*model.Product, error) {
	now := time.Now()
	product := &model.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Brand:       req.Brand,
		Price:       req.Price,
		Qty:         req.Qty,
		Image:       req.Image,
		Category:    model.NormalizeCategory(req.Category),
		Description: req.Description,
		Usage:       req.Usage,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product in repo: %w", err)
	}
	return product, nil
}

// ListByCategory matches case-insensitively; categories are stored normalized
// by CreateProduct.
func (s *productService) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	products, err := s.repo.FindByCategory(ctx, model.NormalizeCategory(category))
	if err != nil {
		return nil, fmt.Errorf("failed to list products by category: %w", err)
	}
	return products, nil
}

func (s *productService) GetProductByID(ctx context.Context, id string) (*model.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrProductNotFound
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}
