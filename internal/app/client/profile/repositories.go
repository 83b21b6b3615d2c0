package profile

import (
	"context"
	"errors"
	"time"

	"linkedink/internal/domain/account"
	"linkedink/internal/domain/corpus"
	"linkedink/internal/domain/generator"
	"linkedink/internal/domain/style"
	"linkedink/internal/storage/kv"
)

// The local profile has one posts blob, one style blob and one generation
// blob shared by every account on the machine. The owner arguments below are
// accepted and ignored.

var (
	_ account.Repository   = (*AccountRepository)(nil)
	_ corpus.Repository    = (*PostRepository)(nil)
	_ style.Repository     = (*StyleRepository)(nil)
	_ generator.Repository = (*GenerationRepository)(nil)
)

type AccountRepository struct {
	kv kv.Store
}

func NewAccountRepository(s kv.Store) *AccountRepository {
	return &AccountRepository{kv: s}
}

func (r *AccountRepository) Create(ctx context.Context, a account.Account) error {
	_, err := kv.UpdateJSON(ctx, r.kv, KeyUsers, func(users *[]account.Account) error {
		for _, u := range *users {
			if u.Email == a.Email {
				return account.ErrEmailTaken
			}
		}
		*users = append(*users, a)
		return nil
	})
	return err
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (account.Account, error) {
	return r.find(ctx, func(a account.Account) bool { return a.Email == email })
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (account.Account, error) {
	return r.find(ctx, func(a account.Account) bool { return a.ID == id })
}

func (r *AccountRepository) Update(ctx context.Context, id string, fn func(*account.Account) error) (account.Account, error) {
	var updated account.Account

	_, err := kv.UpdateJSON(ctx, r.kv, KeyUsers, func(users *[]account.Account) error {
		for i := range *users {
			if (*users)[i].ID != id {
				continue
			}
			if err := fn(&(*users)[i]); err != nil {
				return err
			}
			updated = (*users)[i]
			return nil
		}
		return account.ErrNotFound
	})
	if err != nil {
		return account.Account{}, err
	}
	return updated, nil
}

func (r *AccountRepository) find(ctx context.Context, match func(account.Account) bool) (account.Account, error) {
	users, err := kv.LoadJSON[[]account.Account](ctx, r.kv, KeyUsers)
	if err != nil {
		return account.Account{}, err
	}
	for _, u := range users {
		if match(u) {
			return u, nil
		}
	}
	return account.Account{}, account.ErrNotFound
}

type PostRepository struct {
	kv kv.Store
}

func NewPostRepository(s kv.Store) *PostRepository {
	return &PostRepository{kv: s}
}

func (r *PostRepository) Replace(ctx context.Context, _ string, posts []string) error {
	return kv.SaveJSON(ctx, r.kv, KeyPosts, posts)
}

func (r *PostRepository) List(ctx context.Context, _ string) ([]string, error) {
	return kv.LoadJSON[[]string](ctx, r.kv, KeyPosts)
}

type StyleRepository struct {
	kv kv.Store
}

func NewStyleRepository(s kv.Store) *StyleRepository {
	return &StyleRepository{kv: s}
}

func (r *StyleRepository) Save(ctx context.Context, _ string, p style.Profile) error {
	return kv.SaveJSON(ctx, r.kv, KeyStyle, p)
}

func (r *StyleRepository) Get(ctx context.Context, _ string) (style.Profile, error) {
	p, _, err := kv.GetJSON[style.Profile](ctx, r.kv, KeyStyle)
	if errors.Is(err, kv.ErrNotFound) {
		return style.Profile{}, style.ErrNotFound
	}
	return p, err
}

// GenerationRepository keeps only the request of the last generation. The
// draft itself is rendered again from it.
type GenerationRepository struct {
	kv kv.Store
}

func NewGenerationRepository(s kv.Store) *GenerationRepository {
	return &GenerationRepository{kv: s}
}

func (r *GenerationRepository) Save(ctx context.Context, _ string, p generator.Post) error {
	return kv.SaveJSON(ctx, r.kv, KeyGenerated, p.Request())
}

func (r *GenerationRepository) List(ctx context.Context, _ string) ([]generator.Post, error) {
	req, err := r.Last(ctx)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []generator.Post{postFromRequest(req)}, nil
}

// Last returns the stored request, or kv.ErrNotFound.
func (r *GenerationRepository) Last(ctx context.Context) (generator.Request, error) {
	req, _, err := kv.GetJSON[generator.Request](ctx, r.kv, KeyGenerated)
	return req, err
}

func postFromRequest(req generator.Request) generator.Post {
	return generator.Post{
		Topic:       req.Topic,
		Language:    req.Language,
		Content:     req.Render(),
		GeneratedAt: time.UnixMilli(req.Timestamp),
	}
}
