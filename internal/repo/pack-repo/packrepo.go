package packrepo

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

func (r *Repository) FindByID(ctx context.Context, packID int) (*domain.Pack, error) {
	query := `
        SELECT id, name, price, submissions_granted, is_premium, is_active, created_at
        FROM packs
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, packID)
	var pack domain.Pack
	err := row.Scan(&pack.ID, &pack.Name, &pack.Price, &pack.SubmissionsGranted, &pack.IsPremium, &pack.IsActive, &pack.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get pack", zap.Error(err))
		return nil, err
	}
	return &pack, nil
}

func (r *Repository) FindAll(ctx context.Context, onlyActive bool) ([]domain.Pack, error) {
	query := `
        SELECT id, name, price, submissions_granted, is_premium, is_active, created_at
        FROM packs
        WHERE NOT $1 OR is_active
        ORDER BY is_premium, price
    `
	rows, err := r.db.Query(ctx, query, onlyActive)
	if err != nil {
		zap.L().Error("failed to list packs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var packs []domain.Pack
	for rows.Next() {
		var pack domain.Pack
		if err := rows.Scan(&pack.ID, &pack.Name, &pack.Price, &pack.SubmissionsGranted, &pack.IsPremium, &pack.IsActive, &pack.CreatedAt); err != nil {
			zap.L().Error("failed to scan pack", zap.Error(err))
			return nil, err
		}
		packs = append(packs, pack)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return packs, nil
}
