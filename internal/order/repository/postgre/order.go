package postgre

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"chat-commerce/internal/order"
	repo "chat-commerce/internal/order/repository"
)

const orderColumns = `
	id, user_id, total_amount, ship_full_name, ship_phone, ship_address, ship_city, ship_state,
	ship_pincode, order_status, payment_status, COALESCE(gateway_order_id, ''), created_at, updated_at`

func scanOrder(row pgx.Row) (order.Order, error) {
	var o order.Order
	a := &o.ShippingAddress
	err := row.Scan(
		&o.ID, &o.UserID, &o.TotalAmount, &a.FullName, &a.Phone, &a.Address, &a.City, &a.State,
		&a.Pincode, &o.OrderStatus, &o.PaymentStatus, &o.GatewayOrderID, &o.CreatedAt, &o.UpdatedAt,
	)
	return o, err
}

// CreateOrder persists the order. A stock decrement that would go negative
// aborts the transaction with an InsufficientStockError.
func (r *implRepository) CreateOrder(ctx context.Context, opt repo.CreateOrderOptions) (order.Order, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateOrder"), err)
		return order.Order{}, repo.ErrFailedToInsert
	}

	const insertOrder = `
		INSERT INTO orders (id, user_id, total_amount, ship_full_name, ship_phone, ship_address,
			ship_city, ship_state, ship_pincode, order_status, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	const insertItem = `
		INSERT INTO order_items (order_id, product_id, name, price, quantity, position)
		VALUES ($1, $2, $3, $4, $5, $6)`
	const decrementStock = `
		UPDATE products SET stock = stock - $1, updated_at = NOW()
		WHERE id = $2 AND stock >= $1
		RETURNING stock`
	const clearCart = `
		DELETE FROM cart_items ci USING carts c WHERE ci.cart_id = c.id AND c.user_id = $1`

	a := opt.ShippingAddress
	err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, insertOrder,
			opt.ID, opt.UserID, opt.TotalAmount, a.FullName, a.Phone, a.Address, a.City, a.State, a.Pincode,
			order.StatusPlaced, order.PaymentPending,
		); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		for i, it := range opt.Items {
			if _, err := tx.Exec(ctx, insertItem, opt.ID, it.ProductID, it.Name, it.Price, it.Quantity, i); err != nil {
				return fmt.Errorf("insert item: %w", err)
			}

			var left int
			err := tx.QueryRow(ctx, decrementStock, it.Quantity, it.ProductID).Scan(&left)
			if errors.Is(err, pgx.ErrNoRows) {
				return r.stockError(ctx, tx, it)
			}
			if err != nil {
				return fmt.Errorf("decrement stock: %w", err)
			}
		}

		if _, err := tx.Exec(ctx, clearCart, opt.UserID); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}
		return nil
	})
	if err != nil {
		var stockErr *order.InsufficientStockError
		if errors.As(err, &stockErr) {
			return order.Order{}, stockErr
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateOrder"), err)
		return order.Order{}, repo.ErrFailedToInsert
	}

	return r.GetOneOrder(ctx, repo.GetOneOrderOptions{ID: opt.ID})
}

func (r *implRepository) stockError(ctx context.Context, tx pgx.Tx, it order.Item) error {
	var available int
	if err := tx.QueryRow(ctx, `SELECT stock FROM products WHERE id = $1`, it.ProductID).Scan(&available); err != nil {
		return fmt.Errorf("read stock: %w", err)
	}
	return &order.InsufficientStockError{Name: it.Name, Available: available}
}

// GetOneOrder retrieves a single order with its items. Returns zero-value
// Order (ID == "") when not found.
func (r *implRepository) GetOneOrder(ctx context.Context, opt repo.GetOneOrderOptions) (order.Order, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneOrder"), err)
		return order.Order{}, repo.ErrFailedToGet
	}

	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM orders WHERE %s LIMIT 1", orderColumns, mods)

	o, err := scanOrder(pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return order.Order{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneOrder"), err)
		return order.Order{}, repo.ErrFailedToGet
	}

	orders := []order.Order{o}
	if err := r.loadItems(ctx, pool, orders); err != nil {
		r.l.Errorf(ctx, "%s items: %v", r.dsn("GetOneOrder"), err)
		return order.Order{}, repo.ErrFailedToGet
	}
	return orders[0], nil
}

// ListOrders returns the user's orders newest first, with items.
func (r *implRepository) ListOrders(ctx context.Context, opt repo.ListOrdersOptions) ([]order.Order, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListOrders"), err)
		return nil, repo.ErrFailedToList
	}

	query := fmt.Sprintf("SELECT %s FROM orders WHERE user_id = $1 ORDER BY created_at DESC", orderColumns)
	args := []any{opt.UserID}
	if opt.Limit > 0 {
		query += " LIMIT $2"
		args = append(args, opt.Limit)
	}

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListOrders"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	orders := make([]order.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListOrders"), err)
			return nil, repo.ErrFailedToList
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListOrders"), err)
		return nil, repo.ErrFailedToList
	}

	if err := r.loadItems(ctx, pool, orders); err != nil {
		r.l.Errorf(ctx, "%s items: %v", r.dsn("ListOrders"), err)
		return nil, repo.ErrFailedToList
	}
	return orders, nil
}

// loadItems fills Items of every order in one query.
func (r *implRepository) loadItems(ctx context.Context, pool *pgxpool.Pool, orders []order.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]string, len(orders))
	index := make(map[string]int, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
		index[o.ID] = i
		orders[i].Items = []order.Item{}
	}

	const query = `
		SELECT order_id, product_id, name, price, quantity
		FROM order_items WHERE order_id = ANY($1)
		ORDER BY order_id, position`

	rows, err := pool.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID string
		var it order.Item
		if err := rows.Scan(&orderID, &it.ProductID, &it.Name, &it.Price, &it.Quantity); err != nil {
			return err
		}
		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, it)
		}
	}
	return rows.Err()
}

// UpdateGatewayOrder stores the payment gateway order id.
func (r *implRepository) UpdateGatewayOrder(ctx context.Context, orderID, gatewayOrderID string) error {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateGatewayOrder"), err)
		return repo.ErrFailedToUpdate
	}

	const query = `UPDATE orders SET gateway_order_id = $1, updated_at = NOW() WHERE id = $2`
	if _, err := pool.Exec(ctx, query, gatewayOrderID, orderID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateGatewayOrder"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// MarkPaid sets the payment status to PAID. It reports false when the order
// was already paid (or does not exist).
func (r *implRepository) MarkPaid(ctx context.Context, orderID string) (bool, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkPaid"), err)
		return false, repo.ErrFailedToUpdate
	}

	const query = `
		UPDATE orders SET payment_status = $1, updated_at = NOW()
		WHERE id = $2 AND payment_status <> $1`

	tag, err := pool.Exec(ctx, query, order.PaymentPaid, orderID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkPaid"), err)
		return false, repo.ErrFailedToUpdate
	}
	return tag.RowsAffected() > 0, nil
}
