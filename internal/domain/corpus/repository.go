package corpus

import "context"

type Repository interface {
	// Replace drops every post stored for owner and stores posts instead.
	Replace(ctx context.Context, owner string, posts []string) error
	List(ctx context.Context, owner string) ([]string, error)
}

// CountingRepository replaces the posts and overwrites the owner's
// postsCount in one commit. Upload prefers it over Replace plus a patch.
type CountingRepository interface {
	Repository
	ReplaceAndCount(ctx context.Context, owner string, posts []string) error
}
