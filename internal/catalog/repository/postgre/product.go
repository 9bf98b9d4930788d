package postgre

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"chat-commerce/internal/catalog"
	repo "chat-commerce/internal/catalog/repository"
)

const productColumns = `
	p.id, p.name, p.slug, p.description, p.price, p.discount_price, p.stock, p.sku, p.images,
	p.ratings_average, p.ratings_count, p.is_active, p.created_at, p.updated_at,
	c.id, c.name, c.slug`

const productFrom = `FROM products p JOIN categories c ON c.id = p.category_id`

func scanProduct(row pgx.Row) (catalog.Product, error) {
	var p catalog.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.DiscountPrice, &p.Stock, &p.SKU, &p.Images,
		&p.RatingsAverage, &p.RatingsCount, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		&p.Category.ID, &p.Category.Name, &p.Category.Slug,
	)
	return p, err
}

// ListProducts returns active products matching the options, newest first.
func (r *implRepository) ListProducts(ctx context.Context, opt repo.ListProductsOptions) ([]catalog.Product, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListProducts"), err)
		return nil, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s %s %s", productColumns, productFrom, mods)

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListProducts"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	products := make([]catalog.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListProducts"), err)
			return nil, repo.ErrFailedToList
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListProducts"), err)
		return nil, repo.ErrFailedToList
	}
	return products, nil
}

// GetOneProduct retrieves a single product by the provided filters (AND condition).
// Returns zero-value Product (ID == "") when not found.
func (r *implRepository) GetOneProduct(ctx context.Context, opt repo.GetOneProductOptions) (catalog.Product, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneProduct"), err)
		return catalog.Product{}, repo.ErrFailedToGet
	}

	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s %s WHERE %s LIMIT 1", productColumns, productFrom, mods)

	p, err := scanProduct(pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return catalog.Product{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneProduct"), err)
		return catalog.Product{}, repo.ErrFailedToGet
	}
	return p, nil
}

// UpsertProduct inserts a product or updates the row with the same sku.
func (r *implRepository) UpsertProduct(ctx context.Context, opt repo.UpsertProductOptions) (catalog.Product, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertProduct"), err)
		return catalog.Product{}, repo.ErrFailedToUpsert
	}

	const query = `
		INSERT INTO products (id, name, slug, description, price, discount_price, stock, sku, images, category_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (sku) DO UPDATE SET
			name = EXCLUDED.name, slug = EXCLUDED.slug, description = EXCLUDED.description,
			price = EXCLUDED.price, discount_price = EXCLUDED.discount_price, stock = EXCLUDED.stock,
			images = EXCLUDED.images, category_id = EXCLUDED.category_id, is_active = EXCLUDED.is_active,
			updated_at = NOW()
		RETURNING id`

	images := opt.Images
	if images == nil {
		images = []string{}
	}

	var id string
	err = pool.QueryRow(ctx, query,
		uuid.NewString(), opt.Name, opt.Slug, opt.Description, opt.Price, opt.DiscountPrice,
		opt.Stock, opt.SKU, images, opt.CategoryID, opt.IsActive,
	).Scan(&id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertProduct"), err)
		return catalog.Product{}, repo.ErrFailedToUpsert
	}

	return r.GetOneProduct(ctx, repo.GetOneProductOptions{ID: id})
}

// UpsertCategory inserts a category or renames the one with the same slug.
func (r *implRepository) UpsertCategory(ctx context.Context, opt repo.UpsertCategoryOptions) (catalog.Category, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertCategory"), err)
		return catalog.Category{}, repo.ErrFailedToUpsert
	}

	const query = `
		INSERT INTO categories (id, name, slug)
		VALUES ($1, $2, $3)
		ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, slug`

	var c catalog.Category
	if err := pool.QueryRow(ctx, query, uuid.NewString(), opt.Name, opt.Slug).Scan(&c.ID, &c.Name, &c.Slug); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertCategory"), err)
		return catalog.Category{}, repo.ErrFailedToUpsert
	}
	return c, nil
}
