package style

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("style profile not found")

type Repository interface {
	Save(ctx context.Context, owner string, p Profile) error
	// Get returns ErrNotFound when owner has never been analyzed.
	Get(ctx context.Context, owner string) (Profile, error)
}

// PostSource supplies the posts to analyze.
type PostSource interface {
	List(ctx context.Context, owner string) ([]string, error)
}
