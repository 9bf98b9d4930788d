package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"chat-commerce/config"
	"chat-commerce/config/postgre"
	catalogRepo "chat-commerce/internal/catalog/repository"
	catalogPostgre "chat-commerce/internal/catalog/repository/postgre"
	"chat-commerce/pkg/log"
)

type seedFile struct {
	Categories []seedCategory `yaml:"categories"`
}

type seedCategory struct {
	Name     string        `yaml:"name"`
	Slug     string        `yaml:"slug"`
	Products []seedProduct `yaml:"products"`
}

type seedProduct struct {
	Name          string   `yaml:"name"`
	Slug          string   `yaml:"slug"`
	Description   string   `yaml:"description"`
	Price         float64  `yaml:"price"`
	DiscountPrice *float64 `yaml:"discount_price"`
	Stock         int      `yaml:"stock"`
	SKU           string   `yaml:"sku"`
	Images        []string `yaml:"images"`
	Inactive      bool     `yaml:"inactive"`
}

func main() {
	file := flag.String("file", "scripts/seed-catalog/catalog.yaml", "path to the catalog seed file")
	flag.Parse()

	data, err := os.ReadFile(*file)
	if err != nil {
		fmt.Printf("Failed to read %s: %v\n", *file, err)
		os.Exit(1)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		fmt.Printf("Failed to parse %s: %v\n", *file, err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	db := postgre.NewLazy(cfg.Postgres, logger)
	defer db.Close()
	repo := catalogPostgre.New(db, logger)

	var categories, products int
	for _, sc := range seed.Categories {
		cat, err := repo.UpsertCategory(ctx, catalogRepo.UpsertCategoryOptions{Name: sc.Name, Slug: sc.Slug})
		if err != nil {
			logger.Fatalf(ctx, "Failed to upsert category %s: %v", sc.Slug, err)
		}
		categories++

		for _, sp := range sc.Products {
			_, err := repo.UpsertProduct(ctx, catalogRepo.UpsertProductOptions{
				Name:          sp.Name,
				Slug:          sp.Slug,
				Description:   sp.Description,
				Price:         sp.Price,
				DiscountPrice: sp.DiscountPrice,
				Stock:         sp.Stock,
				SKU:           sp.SKU,
				Images:        sp.Images,
				CategoryID:    cat.ID,
				IsActive:      !sp.Inactive,
			})
			if err != nil {
				logger.Fatalf(ctx, "Failed to upsert product %s: %v", sp.SKU, err)
			}
			products++
		}
	}

	logger.Infof(ctx, "Seeded %d categories and %d products", categories, products)
}
