package userrepo

import (
	"context"
	"errors"

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

// FindByLogin returns nil without an error when the login is unknown, so the
// caller can distinguish "no such user" from a storage failure.
func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx,
		`SELECT id, login, password_hash FROM users WHERE login = $1`, login,
	).Scan(&user.ID, &user.Login, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("user lookup failed", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (login, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`
	if err := repo.db.QueryRow(ctx, query, user.Login, user.PasswordHash).Scan(&user.ID); err != nil {
		zap.L().Error("user insert failed", zap.Error(err))
		return nil, err
	}
	return user, nil
}
