package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/models"
)

// OTPRepo implements the one-time code store over Postgres
type OTPRepo struct {
	db *sqlx.DB
}

// NewOTPRepo creates the OTP repository
func NewOTPRepo(db *sqlx.DB) *OTPRepo {
	return &OTPRepo{db: db}
}

// CreateOTP stores a freshly issued code
func (r *OTPRepo) CreateOTP(ctx context.Context, otp *models.OTP) error {
	query := `
		INSERT INTO otps (id, phone, action, code, expires_at, is_verified, created_at)
		VALUES (:id, :phone, :action, :code, :expires_at, FALSE, NOW())
	`
	if _, err := r.db.NamedExecContext(ctx, query, otp); err != nil {
		return fmt.Errorf("failed to create otp: %w", err)
	}
	return nil
}

// ConsumeOTP marks the newest matching code as verified. The single UPDATE
// with the unverified/unexpired conditions makes the consumption atomic: two
// concurrent verifications of the same code cannot both succeed.
func (r *OTPRepo) ConsumeOTP(ctx context.Context, phone, code string, action models.OTPAction) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE otps
		SET is_verified = TRUE
		WHERE id = (
			SELECT id FROM otps
			WHERE phone = $1
			  AND code = $2
			  AND action = $3
			  AND is_verified = FALSE
			  AND expires_at > NOW()
			ORDER BY created_at DESC
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
	`, phone, code, action)
	if err != nil {
		return false, fmt.Errorf("failed to consume otp: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return rows > 0, nil
}
