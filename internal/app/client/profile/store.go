package profile

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/exp/slog"

	"linkedink/internal/domain/account"
	"linkedink/internal/storage/kv"
)

// Store owns the session of the local profile. Passwords are kept as typed.
type Store struct {
	kv       kv.Store
	repo     *AccountRepository
	accounts *account.Service
	log      *slog.Logger
}

func NewStore(s kv.Store, log *slog.Logger) *Store {
	repo := NewAccountRepository(s)
	return &Store{
		kv:       s,
		repo:     repo,
		accounts: account.NewService(repo, account.NewRegisterValidator(), account.PlainHasher{}, log),
		log:      log,
	}
}

// Register adds an account. It does not log the new account in.
func (s *Store) Register(ctx context.Context, in account.RegisterInput) (account.View, error) {
	return s.accounts.Register(ctx, in)
}

func (s *Store) Login(ctx context.Context, email, password string) (account.View, error) {
	view, err := s.accounts.Authenticate(ctx, email, password)
	if err != nil {
		return account.View{}, err
	}

	if err := s.kv.Put(ctx, KeyCurrentUser, []byte(view.ID)); err != nil {
		return account.View{}, fmt.Errorf("save session: %w", err)
	}

	s.log.Debug("logged in", "account_id", view.ID)
	return view, nil
}

func (s *Store) Logout(ctx context.Context) error {
	if err := s.kv.Delete(ctx, KeyCurrentUser); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// CurrentUser resolves the session pointer. It returns nil without an error
// when nobody is logged in or the pointer names an account that no longer
// exists; the pointer is left in place in the second case.
func (s *Store) CurrentUser(ctx context.Context) (*account.View, error) {
	id, err := s.sessionID(ctx)
	if err != nil || id == "" {
		return nil, err
	}

	acc, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, account.ErrNotFound) {
		s.log.Warn("session points at an unknown account", "account_id", id)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load current user: %w", err)
	}

	view := acc.View()
	return &view, nil
}

// UpdateUser merge-patches the logged-in account. Without a session it does
// nothing and returns nil.
func (s *Store) UpdateUser(ctx context.Context, p account.Patch) (*account.View, error) {
	current, err := s.CurrentUser(ctx)
	if err != nil || current == nil {
		return nil, err
	}

	view, err := s.accounts.Patch(ctx, current.ID, p)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// Patcher adapts UpdateUser to account.Patcher for the upload and analysis
// services. The id argument is ignored: the session decides the account.
func (s *Store) Patcher() account.Patcher {
	return sessionPatcher{store: s}
}

func (s *Store) sessionID(ctx context.Context) (string, error) {
	e, err := s.kv.Get(ctx, KeyCurrentUser)
	if errors.Is(err, kv.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	if !utf8.Valid(e.Value) {
		return "", fmt.Errorf("%w: %s", kv.ErrCorrupt, KeyCurrentUser)
	}
	return string(e.Value), nil
}

type sessionPatcher struct {
	store *Store
}

func (p sessionPatcher) Patch(ctx context.Context, _ string, patch account.Patch) (account.View, error) {
	view, err := p.store.UpdateUser(ctx, patch)
	if err != nil || view == nil {
		return account.View{}, err
	}
	return *view, nil
}
