package paymentrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/andredsp/taxgate/internal/domain"
	"github.com/andredsp/taxgate/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

const paymentColumns = `id, user_id, pack_id, amount, currency, status, payment_method, transaction_id, created_at, updated_at`

func (r *Repository) Save(ctx context.Context, payment *domain.Payment) error {
	query := `
        INSERT INTO payments (user_id, pack_id, amount, currency, status, payment_method)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at
    `
	row := r.db.QueryRow(ctx, query,
		payment.UserID, payment.PackID, payment.Amount, payment.Currency, payment.Status, payment.PaymentMethod)
	if err := row.Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt); err != nil {
		zap.L().Error("failed to save payment", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, paymentID int) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	row := r.db.QueryRow(ctx, query, paymentID)
	var p domain.Payment
	err := row.Scan(&p.ID, &p.UserID, &p.PackID, &p.Amount, &p.Currency, &p.Status, &p.PaymentMethod, &p.TransactionID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get payment", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to get payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.UserID, &p.PackID, &p.Amount, &p.Currency, &p.Status, &p.PaymentMethod, &p.TransactionID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			zap.L().Error("failed to scan payment", zap.Error(err))
			return nil, err
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return payments, nil
}

// MarkCompleted transitions the payment PENDING -> COMPLETED. The status
// check is part of the UPDATE itself so a payment can leave PENDING at
// most once. Returns false when the payment was not PENDING.
func (r *Repository) MarkCompleted(ctx context.Context, paymentID int, transactionID string) (bool, error) {
	query := `
        UPDATE payments
        SET status = 'COMPLETED', transaction_id = $2, updated_at = now()
        WHERE id = $1 AND status = 'PENDING'
    `
	tag, err := r.db.Exec(ctx, query, paymentID, transactionID)
	if err != nil {
		zap.L().Error("failed to complete payment", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// MarkFailed transitions the payment PENDING -> FAILED under the same guard.
func (r *Repository) MarkFailed(ctx context.Context, paymentID int) (bool, error) {
	query := `
        UPDATE payments
        SET status = 'FAILED', updated_at = now()
        WHERE id = $1 AND status = 'PENDING'
    `
	tag, err := r.db.Exec(ctx, query, paymentID)
	if err != nil {
		zap.L().Error("failed to fail payment", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
