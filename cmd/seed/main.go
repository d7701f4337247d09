// Command seed uploads the products listed in a YAML catalog.
package main

import (
	"context"
	"flag"
	"log"

	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/logger"
	"storefront/internal/repository"
	"storefront/internal/service"
	"storefront/internal/validation"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	file := flag.String("file", "catalog.yaml", "path to the product catalog")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	products, err := catalog.LoadFile(*file, validation.New())
	if err != nil {
		zlog.Fatal("failed to load catalog", zap.String("file", *file), zap.Error(err))
	}

	ctx := context.Background()
	dbPool, err := config.ConnectDB(ctx, cfg.DatabaseURL, zlog)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer dbPool.Close()

	if err := config.AutoMigrate(ctx, dbPool, zlog); err != nil {
		zlog.Fatal("failed to auto-migrate database", zap.Error(err))
	}

	productService := service.NewProductService(repository.NewProductRepository(dbPool))
	for _, req := range products {
		product, err := productService.CreateProduct(ctx, req)
		if err != nil {
			zlog.Fatal("failed to upload product", zap.String("name", req.Name), zap.Error(err))
		}
		zlog.Info("product uploaded", zap.String("id", product.ID), zap.String("name", product.Name), zap.String("category", product.Category))
	}
	zlog.Info("catalog seeded", zap.Int("products", len(products)))
}
