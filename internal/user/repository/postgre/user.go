package postgre

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"chat-commerce/internal/model"
	"chat-commerce/internal/user"
	repo "chat-commerce/internal/user/repository"
)

const (
	userColumns = ` id, name, email, password_hash, role, phone, addresses, created_at, updated_at`

	pgUniqueViolation = "23505"
)

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Phone, &u.Addresses, &u.CreatedAt, &u.UpdatedAt)
	if u.Addresses == nil {
		u.Addresses = []model.ShippingAddress{}
	}
	return u, err
}

func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (user.User, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return user.User{}, repo.ErrFailedToInsert
	}

	const query = `
		INSERT INTO users (id, name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING` + userColumns

	u, err := scanUser(pool.QueryRow(ctx, query, opt.ID, opt.Name, opt.Email, opt.PasswordHash, opt.Role))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return user.User{}, repo.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return user.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// GetOneUser returns a zero-value User (ID == "") when not found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (user.User, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return user.User{}, repo.ErrFailedToGet
	}

	query, arg := `SELECT`+userColumns+` FROM users WHERE id = $1`, opt.ID
	if opt.ID == "" {
		query, arg = `SELECT`+userColumns+` FROM users WHERE email = $1`, opt.Email
	}

	u, err := scanUser(pool.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return user.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return user.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

func (r *implRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (user.User, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUser"), err)
		return user.User{}, repo.ErrFailedToUpdate
	}

	const query = `
		UPDATE users SET
			name = COALESCE($2, name),
			phone = COALESCE($3, phone),
			addresses = COALESCE($4, addresses),
			updated_at = NOW()
		WHERE id = $1
		RETURNING` + userColumns

	u, err := scanUser(pool.QueryRow(ctx, query, opt.ID, opt.Name, opt.Phone, opt.Addresses))
	if errors.Is(err, pgx.ErrNoRows) {
		return user.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUser"), err)
		return user.User{}, repo.ErrFailedToUpdate
	}
	return u, nil
}
