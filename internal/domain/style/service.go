package style

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

const (
	CodeNoProfile = "no_profile"
	MsgNoProfile  = "Analyze style first!"
)

type Servicer interface {
	Analyze(ctx context.Context, owner string) (Profile, error)
	Get(ctx context.Context, owner string) (Profile, error)
}

type Service struct {
	posts    PostSource
	profiles Repository
	accounts account.Patcher
	delay    time.Duration
	limit    int
	log      *slog.Logger
}

type Option func(*Service)

func WithDelay(d time.Duration) Option {
	return func(s *Service) { s.delay = d }
}

// WithLimit analyzes only the first n posts. Zero means all of them.
func WithLimit(n int) Option {
	return func(s *Service) { s.limit = n }
}

func NewService(posts PostSource, profiles Repository, accounts account.Patcher, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		posts:    posts,
		profiles: profiles,
		accounts: accounts,
		log:      log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Analyze builds a profile from owner's posts, waits for the configured delay,
// then saves it and marks the account profile-ready.
func (s *Service) Analyze(ctx context.Context, owner string) (Profile, error) {
	posts, err := s.posts.List(ctx, owner)
	if err != nil {
		return Profile{}, fmt.Errorf("load posts: %w", err)
	}

	if s.limit > 0 && len(posts) > s.limit {
		posts = posts[:s.limit]
	}

	profile, err := Analyze(posts)
	if err != nil {
		return Profile{}, err
	}

	return task.Run(ctx, s.delay, func(ctx context.Context) (Profile, error) {
		if err := s.profiles.Save(ctx, owner, profile); err != nil {
			return Profile{}, fmt.Errorf("save profile: %w", err)
		}

		if _, err := s.accounts.Patch(ctx, owner, account.MarkProfileReady()); err != nil {
			return Profile{}, err
		}

		s.log.Info("style analyzed", "owner", owner, "posts", len(posts), "avg_length", profile.AvgLength)
		return profile, nil
	})
}

func (s *Service) Get(ctx context.Context, owner string) (Profile, error) {
	p, err := s.profiles.Get(ctx, owner)
	if errors.Is(err, ErrNotFound) {
		return Profile{}, apperr.NotFound(CodeNoProfile, MsgNoProfile)
	}
	if err != nil {
		return Profile{}, fmt.Errorf("load profile: %w", err)
	}
	return p, nil
}
