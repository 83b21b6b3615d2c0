package postgres

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"linkedink/internal/domain/session"
)

type SessionRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewSessionRepository(db *Storage, log *slog.Logger) *SessionRepository {
	return &SessionRepository{
		db:  db,
		log: log,
	}
}

var _ session.Repository = (*SessionRepository)(nil)

func (r *SessionRepository) Create(ctx context.Context, accountID string, tokenHash string, expiresAt time.Time) error {
	_, err := r.db.Pool().Exec(ctx,
		`INSERT INTO sessions (account_id, token_hash, expires_at)
         VALUES ($1, decode($2, 'hex'), $3)`,
		accountID, tokenHash, expiresAt)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Validate(ctx context.Context, tokenHash string) (string, error) {
	var accountID string
	err := r.db.Pool().QueryRow(ctx,
		`SELECT account_id FROM sessions
         WHERE token_hash = decode($1, 'hex') AND expires_at > NOW()`,
		tokenHash).Scan(&accountID)
	if isNoRows(err) {
		return "", session.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("select session: %w", err)
	}
	return accountID, nil
}

func (r *SessionRepository) Revoke(ctx context.Context, tokenHash string) error {
	tag, err := r.db.Pool().Exec(ctx,
		`DELETE FROM sessions WHERE token_hash = decode($1, 'hex')`, tokenHash)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return session.ErrNotFound
	}
	return nil
}

// PurgeExpired removes sessions that can no longer validate.
func (r *SessionRepository) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Pool().Exec(ctx, `DELETE FROM sessions WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	if n := tag.RowsAffected(); n > 0 {
		r.log.Info("expired sessions purged", "count", n)
	}
	return tag.RowsAffected(), nil
}
