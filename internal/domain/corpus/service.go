package corpus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"linkedink/internal/domain/account"
	"linkedink/internal/domain/apperr"
	"linkedink/internal/task"
)

type Servicer interface {
	Upload(ctx context.Context, owner, raw string) (int, error)
	List(ctx context.Context, owner string) ([]string, error)
}

type Service struct {
	repo     Repository
	accounts account.Patcher
	delay    time.Duration
	limit    int
	log      *slog.Logger
}

type Option func(*Service)

// WithDelay makes Upload wait before storing anything.
func WithDelay(d time.Duration) Option {
	return func(s *Service) { s.delay = d }
}

// WithLimit keeps at most n posts per upload. Zero means no limit.
func WithLimit(n int) Option {
	return func(s *Service) { s.limit = n }
}

func NewService(repo Repository, accounts account.Patcher, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		accounts: accounts,
		log:      log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Upload validates raw, replaces owner's posts with it and overwrites the
// owner's postsCount. Cancelling ctx during the delay stores nothing.
func (s *Service) Upload(ctx context.Context, owner, raw string) (int, error) {
	posts, err := ParseBlob(raw)
	if err != nil {
		return 0, err
	}

	if s.limit > 0 && len(posts) > s.limit {
		s.log.Debug("upload truncated", "owner", owner, "parsed", len(posts), "kept", s.limit)
		posts = posts[:s.limit]
	}

	return task.Run(ctx, s.delay, func(ctx context.Context) (int, error) {
		if err := s.store(ctx, owner, posts); err != nil {
			return 0, err
		}

		s.log.Info("posts uploaded", "owner", owner, "count", len(posts))
		return len(posts), nil
	})
}

func (s *Service) store(ctx context.Context, owner string, posts []string) error {
	if cr, ok := s.repo.(CountingRepository); ok {
		if err := cr.ReplaceAndCount(ctx, owner, posts); err != nil {
			if errors.Is(err, account.ErrNotFound) {
				return apperr.NotFound(account.CodeAccountNotFound, account.MsgAccountNotFound)
			}
			return fmt.Errorf("store posts: %w", err)
		}
		return nil
	}

	if err := s.repo.Replace(ctx, owner, posts); err != nil {
		return fmt.Errorf("store posts: %w", err)
	}
	_, err := s.accounts.Patch(ctx, owner, account.SetPostsCount(len(posts)))
	return err
}

func (s *Service) List(ctx context.Context, owner string) ([]string, error) {
	posts, err := s.repo.List(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}
