package session

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("session not found")

// Repository stores hashed token ids. Validate returns ErrNotFound for
// unknown, revoked and expired sessions alike.
type Repository interface {
	Create(ctx context.Context, accountID string, tokenHash string, expiresAt time.Time) error
	Validate(ctx context.Context, tokenHash string) (string, error)
	Revoke(ctx context.Context, tokenHash string) error
}
