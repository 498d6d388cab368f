package userpackrepo

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

const userPackColumns = `id, user_id, pack_id, payment_id, submissions_remaining, is_premium, is_active, created_at`

// Issue creates the credit ledger entry for a completed payment. The UNIQUE
// constraint on payment_id makes issuance exactly-once per payment.
func (r *Repository) Issue(ctx context.Context, userPack *domain.UserPack) error {
	query := `
        INSERT INTO user_packs (user_id, pack_id, payment_id, submissions_remaining, is_premium, is_active)
        VALUES ($1, $2, $3, $4, $5, $4 > 0)
        RETURNING id, is_active, created_at
    `
	row := r.db.QueryRow(ctx, query,
		userPack.UserID, userPack.PackID, userPack.PaymentID, userPack.SubmissionsRemaining, userPack.IsPremium)
	if err := row.Scan(&userPack.ID, &userPack.IsActive, &userPack.CreatedAt); err != nil {
		zap.L().Error("failed to issue user pack", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, userPackID int) (*domain.UserPack, error) {
	query := `SELECT ` + userPackColumns + ` FROM user_packs WHERE id = $1`
	row := r.db.QueryRow(ctx, query, userPackID)
	var up domain.UserPack
	err := row.Scan(&up.ID, &up.UserID, &up.PackID, &up.PaymentID, &up.SubmissionsRemaining, &up.IsPremium, &up.IsActive, &up.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get user pack", zap.Error(err))
		return nil, err
	}
	return &up, nil
}

// FindActiveByUserID returns active entries in allocation order:
// premium first, then oldest first within a tier.
func (r *Repository) FindActiveByUserID(ctx context.Context, userID int) ([]domain.UserPack, error) {
	query := `
        SELECT ` + userPackColumns + `
        FROM user_packs
        WHERE user_id = $1 AND is_active
        ORDER BY is_premium DESC, created_at ASC, id ASC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to get active user packs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var userPacks []domain.UserPack
	for rows.Next() {
		var up domain.UserPack
		if err := rows.Scan(&up.ID, &up.UserID, &up.PackID, &up.PaymentID, &up.SubmissionsRemaining, &up.IsPremium, &up.IsActive, &up.CreatedAt); err != nil {
			zap.L().Error("failed to scan user pack", zap.Error(err))
			return nil, err
		}
		userPacks = append(userPacks, up)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return userPacks, nil
}

func (r *Repository) TotalRemaining(ctx context.Context, userID int) (int, error) {
	query := `
        SELECT COALESCE(SUM(submissions_remaining), 0)
        FROM user_packs
        WHERE user_id = $1 AND is_active
    `
	var total int
	if err := r.db.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		zap.L().Error("failed to sum remaining submissions", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// Debit decrements submissions_remaining by one as a single conditional
// UPDATE. Two concurrent debits against one remaining credit can never both
// succeed: the remaining > 0 check and the decrement are one statement.
// Returns false when no credit was left.
func (r *Repository) Debit(ctx context.Context, userPackID int) (bool, error) {
	query := `
        UPDATE user_packs
        SET submissions_remaining = submissions_remaining - 1,
            is_active = submissions_remaining - 1 > 0
        WHERE id = $1 AND submissions_remaining > 0
    `
	tag, err := r.db.Exec(ctx, query, userPackID)
	if err != nil {
		zap.L().Error("failed to debit user pack", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Release is the compensating increment for a debit whose submission was
// never created. Re-activates the entry.
func (r *Repository) Release(ctx context.Context, userPackID int) error {
	query := `
        UPDATE user_packs
        SET submissions_remaining = submissions_remaining + 1,
            is_active = TRUE
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query, userPackID)
	if err != nil {
		zap.L().Error("failed to release user pack credit", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
