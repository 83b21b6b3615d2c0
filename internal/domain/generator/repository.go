package generator

import (
	"context"
	"time"

	"linkedink/internal/domain/style"
)

type Post struct {
	ID           string    `json:"id"`
	Topic        string    `json:"topic"`
	Language     string    `json:"language"`
	TargetLength int       `json:"targetLength"`
	Content      string    `json:"content"`
	GeneratedAt  time.Time `json:"generatedAt"`
}

// Request returns the viewer record for p.
func (p Post) Request() Request {
	return Request{
		Topic:     p.Topic,
		Language:  p.Language,
		Timestamp: p.GeneratedAt.UnixMilli(),
	}
}

type Repository interface {
	Save(ctx context.Context, owner string, p Post) error
	// List returns owner's posts, newest first.
	List(ctx context.Context, owner string) ([]Post, error)
}

// ProfileSource returns style.ErrNotFound for an owner that was never
// analyzed.
type ProfileSource interface {
	Get(ctx context.Context, owner string) (style.Profile, error)
}
