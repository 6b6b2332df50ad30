package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-jobboard-backend/internal/domain"
)

type tokenRepo struct {
	db *pgxpool.Pool
}

func NewTokenRepository(db *pgxpool.Pool) domain.TokenRepository {
	return &tokenRepo{db: db}
}

// GetOrCreate inserts key as the user's token. Concurrent logins race to
// insert; the conflict clause keeps whichever key landed first, and the
// RETURNING row is always the persisted one.
func (r *tokenRepo) GetOrCreate(ctx context.Context, userID int64, key string) (*domain.Token, error) {
	query := `INSERT INTO auth_tokens (key, user_id, created_at)
              VALUES ($1, $2, $3)
              ON CONFLICT (user_id) DO UPDATE SET user_id = auth_tokens.user_id
              RETURNING key, user_id, created_at`
	var token domain.Token
	err := r.db.QueryRow(ctx, query, key, userID, time.Now()).Scan(
		&token.Key, &token.UserID, &token.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *tokenRepo) GetByKey(ctx context.Context, key string) (*domain.Token, error) {
	query := `SELECT key, user_id, created_at FROM auth_tokens WHERE key = $1`
	var token domain.Token
	err := r.db.QueryRow(ctx, query, key).Scan(&token.Key, &token.UserID, &token.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &token, nil
}
