// AngelaMos | 2026
// repository.go

package customer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/carterperez-dev/etsy-dashboard-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, id string) (*Customer, error)
	GetByEmail(ctx context.Context, email string) (*Customer, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	ListProductIDs(ctx context.Context, customerID string) ([]string, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const customerColumns = `
	id, email, password_hash, shop_name, access_key, data_consent,
	consent_updated_at, signup_date, usage_count, usage_reset_date,
	is_premium, is_email_verified, last_login, created_at`

// Create inserts c and fills in the store-assigned id and timestamps. A
// second account for the same email is rejected by the unique index and
// reported as core.ErrDuplicateKey.
func (r *repository) Create(ctx context.Context, c *Customer) error {
	query := `
		INSERT INTO customers (
			email, password_hash, shop_name, access_key, data_consent,
			consent_updated_at, signup_date, usage_count, usage_reset_date,
			is_premium, is_email_verified
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
		RETURNING id, created_at`

	row := r.db.QueryRowxContext(ctx, query,
		c.Email,
		c.PasswordHash,
		c.ShopName,
		c.AccessKey,
		c.DataConsent,
		c.ConsentUpdatedAt,
		c.SignupDate,
		c.UsageCount,
		c.UsageResetDate,
		c.IsPremium,
		c.IsEmailVerified,
	)

	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create customer: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create customer: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Customer, error) {
	query := `SELECT` + customerColumns + `
		FROM customers
		WHERE id = $1`

	var c Customer
	err := r.db.GetContext(ctx, &c, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get customer: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	return &c, nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*Customer, error) {
	query := `SELECT` + customerColumns + `
		FROM customers
		WHERE lower(email) = lower($1)`

	var c Customer
	err := r.db.GetContext(ctx, &c, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get customer by email: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get customer by email: %w", err)
	}

	return &c, nil
}

func (r *repository) UpdateLastLogin(
	ctx context.Context,
	id string,
	at time.Time,
) error {
	query := `UPDATE customers SET last_login = $2 WHERE id = $1`

	return r.execOne(ctx, "update last login", query, id, at)
}

func (r *repository) UpdatePassword(
	ctx context.Context,
	id, passwordHash string,
) error {
	query := `UPDATE customers SET password_hash = $2 WHERE id = $1`

	return r.execOne(ctx, "update password", query, id, passwordHash)
}

func (r *repository) ListProductIDs(
	ctx context.Context,
	customerID string,
) ([]string, error) {
	query := `
		SELECT product_id
		FROM customer_products
		WHERE customer_id = $1
		ORDER BY created_at`

	var products []string
	if err := r.db.SelectContext(ctx, &products, query, customerID); err != nil {
		return nil, fmt.Errorf("list customer products: %w", err)
	}

	return products, nil
}

func (r *repository) execOne(
	ctx context.Context,
	op, query string,
	args ...any,
) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if rows == 0 {
		return fmt.Errorf("%s: %w", op, core.ErrNotFound)
	}

	return nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
