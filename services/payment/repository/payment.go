package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
)

const paymentColumns = `
	id, booking_id, provider, provider_order_id, status, amount,
	deposit_amount, pay_url, customer_phone, callback_data, paid_at,
	created_at, updated_at`

// PaymentRepo implements the payment store over Postgres
type PaymentRepo struct {
	db *sqlx.DB
}

// NewPaymentRepo creates the payment repository
func NewPaymentRepo(db *sqlx.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

// CreatePayment inserts a pending payment attempt and flags the booking's
// deposit as pending
func (r *PaymentRepo) CreatePayment(ctx context.Context, payment *models.Payment) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin payment create: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.NamedExecContext(ctx, `
		INSERT INTO payments (
			id, booking_id, provider, provider_order_id, status, amount,
			deposit_amount, pay_url, customer_phone, created_at, updated_at
		) VALUES (
			:id, :booking_id, :provider, :provider_order_id, :status, :amount,
			:deposit_amount, :pay_url, :customer_phone, NOW(), NOW()
		)
	`, payment); err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE bookings
		SET deposit_status = 'pending', updated_at = NOW()
		WHERE id = $1
	`, payment.BookingID); err != nil {
		return fmt.Errorf("failed to flag booking deposit: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit payment create: %w", err)
	}
	return nil
}

// GetByProviderOrderID returns a payment by its provider order reference
func (r *PaymentRepo) GetByProviderOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	var payment models.Payment
	query := fmt.Sprintf(`SELECT %s FROM payments WHERE provider_order_id = $1`, paymentColumns)
	if err := r.db.GetContext(ctx, &payment, query, orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("payment for order %s: %w", orderID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &payment, nil
}

// ApplyCallback settles a payment from a verified callback. The row lock and
// the pending check make replays harmless: the first callback settles, every
// later one reads the settled row and applies nothing.
func (r *PaymentRepo) ApplyCallback(ctx context.Context, orderID string, success bool, raw []byte) (bool, *models.Payment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, nil, fmt.Errorf("failed to begin callback apply: %w", err)
	}
	defer tx.Rollback()

	var payment models.Payment
	query := fmt.Sprintf(`SELECT %s FROM payments WHERE provider_order_id = $1 FOR UPDATE`, paymentColumns)
	if err := tx.GetContext(ctx, &payment, query, orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil, fmt.Errorf("payment for order %s: %w", orderID, models.ErrNotFound)
		}
		return false, nil, fmt.Errorf("failed to lock payment: %w", err)
	}

	if payment.Status != models.PaymentStatusPending {
		return false, &payment, tx.Commit()
	}

	status := models.PaymentStatusFailed
	if success {
		status = models.PaymentStatusPaid
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE payments
		SET status = $2,
		    callback_data = $3,
		    paid_at = CASE WHEN $2 = 'paid' THEN NOW() ELSE NULL END,
		    updated_at = NOW()
		WHERE id = $1
	`, payment.ID, status, raw); err != nil {
		return false, nil, fmt.Errorf("failed to settle payment: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE bookings
		SET deposit_status = $2, updated_at = NOW()
		WHERE id = $1
	`, payment.BookingID, status); err != nil {
		return false, nil, fmt.Errorf("failed to update booking deposit: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, nil, fmt.Errorf("failed to commit callback apply: %w", err)
	}

	payment.Status = status
	return true, &payment, nil
}
