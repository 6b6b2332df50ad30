package domain

import (
	"context"
	"time"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Token is the opaque bearer credential for a user. One token per user,
// issued on first register/login and reused afterwards. Tokens never expire.
type Token struct {
	Key       string    `json:"key"`
	UserID    int64     `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}

type TokenRepository interface {
	// GetOrCreate stores key as the user's token unless one already exists
	// and returns whichever token ends up persisted.
	GetOrCreate(ctx context.Context, userID int64, key string) (*Token, error)
	GetByKey(ctx context.Context, key string) (*Token, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, username, password, email string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	Authorize(ctx context.Context, key string) (*User, error)
}
