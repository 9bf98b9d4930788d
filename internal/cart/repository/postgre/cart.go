package postgre

import (
	"context"

	"github.com/google/uuid"

	"chat-commerce/internal/cart"
	repo "chat-commerce/internal/cart/repository"
)

// ListItems returns the user's cart lines joined with their products, in the
// order they were added. No cart means no lines.
func (r *implRepository) ListItems(ctx context.Context, userID string) ([]cart.Item, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToGet
	}

	const query = `
		SELECT ci.product_id, p.name, p.slug, COALESCE(p.images[1], ''), p.price, p.discount_price,
		       p.stock, p.is_active, ci.quantity, ci.price_snapshot
		FROM carts c
		JOIN cart_items ci ON ci.cart_id = c.id
		JOIN products p ON p.id = ci.product_id
		WHERE c.user_id = $1
		ORDER BY ci.added_at ASC`

	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToGet
	}
	defer rows.Close()

	items := make([]cart.Item, 0)
	for rows.Next() {
		var it cart.Item
		if err := rows.Scan(
			&it.ProductID, &it.Name, &it.Slug, &it.Image, &it.Price, &it.DiscountPrice,
			&it.Stock, &it.IsActive, &it.Quantity, &it.PriceSnapshot,
		); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListItems"), err)
			return nil, repo.ErrFailedToGet
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToGet
	}
	return items, nil
}

// UpsertItem sets the quantity and price snapshot of a line.
func (r *implRepository) UpsertItem(ctx context.Context, opt repo.UpsertItemOptions) error {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertItem"), err)
		return repo.ErrFailedToUpsert
	}

	const query = `
		WITH c AS (
			INSERT INTO carts (id, user_id) VALUES ($1, $2)
			ON CONFLICT (user_id) DO UPDATE SET updated_at = NOW()
			RETURNING id
		)
		INSERT INTO cart_items (cart_id, product_id, quantity, price_snapshot)
		SELECT c.id, $3, $4, $5 FROM c
		ON CONFLICT (cart_id, product_id) DO UPDATE SET
			quantity = EXCLUDED.quantity, price_snapshot = EXCLUDED.price_snapshot`

	if _, err := pool.Exec(ctx, query, uuid.NewString(), opt.UserID, opt.ProductID, opt.Quantity, opt.PriceSnapshot); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertItem"), err)
		return repo.ErrFailedToUpsert
	}
	return nil
}

// DeleteItem removes a line and reports whether it existed.
func (r *implRepository) DeleteItem(ctx context.Context, userID, productID string) (bool, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return false, repo.ErrFailedToDelete
	}

	const query = `
		DELETE FROM cart_items ci USING carts c
		WHERE ci.cart_id = c.id AND c.user_id = $1 AND ci.product_id = $2`

	tag, err := pool.Exec(ctx, query, userID, productID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return false, repo.ErrFailedToDelete
	}
	return tag.RowsAffected() > 0, nil
}

// ClearItems empties the user's cart.
func (r *implRepository) ClearItems(ctx context.Context, userID string) error {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ClearItems"), err)
		return repo.ErrFailedToDelete
	}

	const query = `DELETE FROM cart_items ci USING carts c WHERE ci.cart_id = c.id AND c.user_id = $1`
	if _, err := pool.Exec(ctx, query, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ClearItems"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
