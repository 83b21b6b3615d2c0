package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"linkedink/internal/domain/apperr"
	"linkedink/internal/domain/style"
	"linkedink/internal/task"
)

const (
	CodeEmptyTopic = "empty_topic"
	MsgEmptyTopic  = "Please enter a topic"
)

type Servicer interface {
	Generate(ctx context.Context, owner, topic, language string) (Post, error)
	List(ctx context.Context, owner string) ([]Post, error)
}

type Service struct {
	repo     Repository
	profiles ProfileSource
	delay    time.Duration
	now      func() time.Time
	log      *slog.Logger
}

type Option func(*Service)

func WithDelay(d time.Duration) Option {
	return func(s *Service) { s.delay = d }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo Repository, profiles ProfileSource, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		profiles: profiles,
		now:      time.Now,
		log:      log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate drafts a post about topic for owner. The owner must have a style
// profile. The draft is seeded by its generation time so it can be rendered
// again from Post.Request.
func (s *Service) Generate(ctx context.Context, owner, topic, language string) (Post, error) {
	if strings.TrimSpace(topic) == "" {
		return Post{}, apperr.Validation(CodeEmptyTopic, MsgEmptyTopic)
	}
	if language == "" {
		language = DefaultLanguage
	}

	profile, err := s.profiles.Get(ctx, owner)
	if errors.Is(err, style.ErrNotFound) {
		return Post{}, apperr.Precondition(style.CodeNoProfile, style.MsgNoProfile)
	}
	if err != nil {
		return Post{}, fmt.Errorf("load style profile: %w", err)
	}

	return task.Run(ctx, s.delay, func(ctx context.Context) (Post, error) {
		at := s.now().Truncate(time.Millisecond)

		post := Post{
			ID:           uuid.NewString(),
			Topic:        topic,
			Language:     language,
			TargetLength: profile.TargetLength(),
			Content:      Generate(Seeded(at.UnixMilli()), topic, language),
			GeneratedAt:  at,
		}

		if err := s.repo.Save(ctx, owner, post); err != nil {
			return Post{}, fmt.Errorf("save post: %w", err)
		}

		s.log.Info("post generated", "owner", owner, "post_id", post.ID, "language", language)
		return post, nil
	})
}

func (s *Service) List(ctx context.Context, owner string) ([]Post, error) {
	posts, err := s.repo.List(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}
