package postgre

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"chat-commerce/internal/payment"
	repo "chat-commerce/internal/payment/repository"
)

const paymentColumns = `
	id, order_id, user_id, provider, payment_id, status, amount, currency, created_at, updated_at`

func scanPayment(row pgx.Row) (payment.Payment, error) {
	var p payment.Payment
	err := row.Scan(&p.ID, &p.OrderID, &p.UserID, &p.Provider, &p.PaymentID, &p.Status,
		&p.Amount, &p.Currency, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// UpsertPayment inserts the order's payment record or overwrites the existing
// one. opt.ID is only used on insert.
func (r *implRepository) UpsertPayment(ctx context.Context, opt repo.UpsertPaymentOptions) (payment.Payment, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertPayment"), err)
		return payment.Payment{}, repo.ErrFailedToUpsert
	}

	const query = `
		INSERT INTO payments (id, order_id, user_id, provider, payment_id, status, amount, currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (order_id) DO UPDATE SET
			provider = EXCLUDED.provider,
			payment_id = EXCLUDED.payment_id,
			status = EXCLUDED.status,
			amount = EXCLUDED.amount,
			currency = EXCLUDED.currency,
			updated_at = NOW()
		RETURNING` + paymentColumns

	p, err := scanPayment(pool.QueryRow(ctx, query,
		opt.ID, opt.OrderID, opt.UserID, opt.Provider, opt.PaymentID, opt.Status, opt.Amount, opt.Currency))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertPayment"), err)
		return payment.Payment{}, repo.ErrFailedToUpsert
	}
	return p, nil
}

// GetByOrder returns the order's payment record, or a zero value when none exists.
func (r *implRepository) GetByOrder(ctx context.Context, orderID string) (payment.Payment, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetByOrder"), err)
		return payment.Payment{}, repo.ErrFailedToGet
	}

	p, err := scanPayment(pool.QueryRow(ctx, `SELECT`+paymentColumns+` FROM payments WHERE order_id = $1`, orderID))
	if errors.Is(err, pgx.ErrNoRows) {
		return payment.Payment{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetByOrder"), err)
		return payment.Payment{}, repo.ErrFailedToGet
	}
	return p, nil
}
