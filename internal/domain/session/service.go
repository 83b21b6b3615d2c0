package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

const (
	issuer     = "linkedink"
	defaultTTL = 24 * time.Hour
)

// Validator resolves a bearer token to the account it was issued to.
type Validator interface {
	Validate(ctx context.Context, token string) (string, error)
}

type Servicer interface {
	Validator
	Create(ctx context.Context, accountID string) (Token, error)
	Revoke(ctx context.Context, token string) error
}

// Service issues signed tokens backed by a session row, so a token stops
// working once revoked even before it expires.
type Service struct {
	repo   Repository
	signer signer
	ttl    time.Duration
	now    func() time.Time
	log    *slog.Logger
}

type Option func(*Service)

func WithTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo Repository, secret string, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		signer: signer{secret: []byte(secret), issuer: issuer},
		ttl:    defaultTTL,
		now:    time.Now,
		log:    log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Create(ctx context.Context, accountID string) (Token, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl).Truncate(time.Second)
	jti := uuid.NewString()

	access, err := s.signer.sign(accountID, jti, now, expiresAt)
	if err != nil {
		return Token{}, err
	}

	if err := s.repo.Create(ctx, accountID, hashID(jti), expiresAt); err != nil {
		return Token{}, fmt.Errorf("save session: %w", err)
	}

	s.log.Debug("session created", "account_id", accountID, "expires_at", expiresAt)

	return Token{Access: access, ExpiresAt: expiresAt}, nil
}

// Validate returns the account id the token was issued to.
func (s *Service) Validate(ctx context.Context, token string) (string, error) {
	c, err := s.signer.parse(token, s.now())
	if err != nil {
		return "", err
	}

	accountID, err := s.repo.Validate(ctx, hashID(c.ID))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrInvalidToken
		}
		return "", fmt.Errorf("validate session: %w", err)
	}
	if accountID != c.Subject {
		s.log.Warn("session subject mismatch", "account_id", accountID)
		return "", ErrInvalidToken
	}

	return accountID, nil
}

// Revoke is idempotent for tokens whose session is already gone.
func (s *Service) Revoke(ctx context.Context, token string) error {
	c, err := s.signer.parse(token, s.now())
	if err != nil {
		return err
	}

	if err := s.repo.Revoke(ctx, hashID(c.ID)); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}
