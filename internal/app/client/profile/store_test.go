package profile

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"linkedink/internal/domain/account"
	"linkedink/internal/domain/apperr"
	"linkedink/internal/storage/kv"
	"linkedink/internal/storage/kv/memory"
	"linkedink/internal/storage/kv/sqlite"
)

func register(t *testing.T, s *Store, name, email, password string) account.View {
	t.Helper()

	view, err := s.Register(context.Background(), account.RegisterInput{
		Name: name, Email: email, Password: password, ConfirmPassword: password,
	})
	require.NoError(t, err)
	return view
}

func TestStore_JaneScenario(t *testing.T) {
	ctx := context.Background()
	s := NewStore(memory.New(), slog.Default())

	register(t, s, "Jane", "jane@x.com", "secret1")

	current, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current, "registration must not log in")

	view, err := s.Login(ctx, "jane@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Jane", view.Name)

	updated, err := s.UpdateUser(ctx, account.SetPostsCount(5))
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 5, updated.PostsCount)

	current, err = s.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, 5, current.PostsCount)

	require.NoError(t, s.Logout(ctx))

	current, err = s.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestStore_Register_Errors(t *testing.T) {
	ctx := context.Background()
	s := NewStore(memory.New(), slog.Default())
	register(t, s, "Jane", "jane@x.com", "secret1")

	tests := []struct {
		name string
		in   account.RegisterInput
		kind error
		msg  string
	}{
		{
			name: "mismatch on an otherwise duplicate email",
			in:   account.RegisterInput{Email: "jane@x.com", Password: "secret1", ConfirmPassword: "secret2"},
			kind: apperr.ErrValidation,
			msg:  "Passwords don't match",
		},
		{
			name: "mismatch with short password",
			in:   account.RegisterInput{Email: "new@x.com", Password: "a", ConfirmPassword: "b"},
			kind: apperr.ErrValidation,
			msg:  "Passwords don't match",
		},
		{
			name: "short password",
			in:   account.RegisterInput{Email: "new@x.com", Password: "abcde", ConfirmPassword: "abcde"},
			kind: apperr.ErrValidation,
			msg:  "Password must be at least 6 characters",
		},
		{
			name: "duplicate email",
			in:   account.RegisterInput{Name: "Other", Email: "jane@x.com", Password: "secret2", ConfirmPassword: "secret2"},
			kind: apperr.ErrConflict,
			msg:  "Email already registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Register(ctx, tt.in)
			assert.ErrorIs(t, err, tt.kind)
			assert.Equal(t, tt.msg, apperr.Message(err))
		})
	}
}

func TestStore_Register_EmailCaseSensitive(t *testing.T) {
	ctx := context.Background()
	s := NewStore(memory.New(), slog.Default())

	first := register(t, s, "Jane", "jane@x.com", "secret1")
	second := register(t, s, "Jane Upper", "Jane@X.com", "secret2")
	assert.NotEqual(t, first.ID, second.ID)

	_, err := s.Login(ctx, "JANE@X.COM", "secret1")
	assert.ErrorIs(t, err, apperr.ErrAuth)
}

func TestStore_Login(t *testing.T) {
	ctx := context.Background()
	s := NewStore(memory.New(), slog.Default())
	registered := register(t, s, "Jane", "jane@x.com", "secret1")

	t.Run("wrong password", func(t *testing.T) {
		_, err := s.Login(ctx, "jane@x.com", "secret2")
		assert.ErrorIs(t, err, apperr.ErrAuth)
		assert.Equal(t, "Invalid email or password", apperr.Message(err))

		current, err := s.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Nil(t, current)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := s.Login(ctx, "nobody@x.com", "secret1")
		assert.ErrorIs(t, err, apperr.ErrAuth)
	})

	t.Run("success", func(t *testing.T) {
		view, err := s.Login(ctx, "jane@x.com", "secret1")
		require.NoError(t, err)
		assert.Equal(t, registered, view)

		e, err := s.kv.Get(ctx, KeyCurrentUser)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, string(e.Value))
	})
}

func TestStore_RegistryKeepsClearTextPasswords(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	s := NewStore(store, slog.Default())
	register(t, s, "Jane", "jane@x.com", "secret1")

	users, err := kv.LoadJSON[[]account.Account](ctx, store, KeyUsers)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "secret1", users[0].Password)
	assert.Equal(t, 0, users[0].PostsCount)
	assert.False(t, users[0].HasProfile)
}

func TestStore_UpdateUser_WithoutSession(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	s := NewStore(store, slog.Default())
	register(t, s, "Jane", "jane@x.com", "secret1")

	view, err := s.UpdateUser(ctx, account.SetPostsCount(9))
	require.NoError(t, err)
	assert.Nil(t, view)

	users, err := kv.LoadJSON[[]account.Account](ctx, store, KeyUsers)
	require.NoError(t, err)
	assert.Equal(t, 0, users[0].PostsCount)
}

func TestStore_UpdateUser_OnlyTouchesCurrentAccount(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	s := NewStore(store, slog.Default())
	register(t, s, "Jane", "jane@x.com", "secret1")
	register(t, s, "John", "john@x.com", "secret1")

	_, err := s.Login(ctx, "john@x.com", "secret1")
	require.NoError(t, err)

	_, err = s.UpdateUser(ctx, account.MarkProfileReady())
	require.NoError(t, err)

	users, err := kv.LoadJSON[[]account.Account](ctx, store, KeyUsers)
	require.NoError(t, err)
	assert.False(t, users[0].HasProfile)
	assert.True(t, users[1].HasProfile)
}

func TestStore_PersistsAcrossRecreation(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "profile.db")

	db, err := sqlite.New(path)
	require.NoError(t, err)

	s := NewStore(db, slog.Default())
	register(t, s, "Jane", "jane@x.com", "secret1")
	_, err = s.Login(ctx, "jane@x.com", "secret1")
	require.NoError(t, err)
	_, err = s.UpdateUser(ctx, account.SetPostsCount(5))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	reopened, err := sqlite.New(path)
	require.NoError(t, err)
	defer reopened.Close()

	current, err := NewStore(reopened, slog.Default()).CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "Jane", current.Name)
	assert.Equal(t, 5, current.PostsCount)
}

func TestStore_StalePointer(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	s := NewStore(store, slog.Default())

	require.NoError(t, store.Put(ctx, KeyCurrentUser, []byte("gone")))

	current, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	e, err := store.Get(ctx, KeyCurrentUser)
	require.NoError(t, err)
	assert.Equal(t, "gone", string(e.Value), "stale pointer is left in place")
}

func TestStore_CorruptRegistry(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	s := NewStore(store, slog.Default())

	require.NoError(t, store.Put(ctx, KeyUsers, []byte("{broken")))
	require.NoError(t, store.Put(ctx, KeyCurrentUser, []byte("acc-1")))

	_, err := s.CurrentUser(ctx)
	assert.ErrorIs(t, err, kv.ErrCorrupt)

	_, err = s.Register(ctx, account.RegisterInput{Email: "a@x.com", Password: "secret1", ConfirmPassword: "secret1"})
	assert.ErrorIs(t, err, kv.ErrCorrupt)

	_, err = s.Login(ctx, "a@x.com", "secret1")
	assert.ErrorIs(t, err, kv.ErrCorrupt)
}

func TestStore_CorruptPointer(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	s := NewStore(store, slog.Default())

	require.NoError(t, store.Put(ctx, KeyCurrentUser, []byte{0xff, 0xfe}))

	_, err := s.CurrentUser(ctx)
	assert.ErrorIs(t, err, kv.ErrCorrupt)
}

func TestStore_LogoutIdempotent(t *testing.T) {
	s := NewStore(memory.New(), slog.Default())

	require.NoError(t, s.Logout(context.Background()))
	require.NoError(t, s.Logout(context.Background()))
}

func TestStore_Patcher(t *testing.T) {
	ctx := context.Background()
	s := NewStore(memory.New(), slog.Default())
	register(t, s, "Jane", "jane@x.com", "secret1")

	view, err := s.Patcher().Patch(ctx, "ignored", account.SetPostsCount(3))
	require.NoError(t, err)
	assert.Equal(t, account.View{}, view, "no session, nothing patched")

	_, err = s.Login(ctx, "jane@x.com", "secret1")
	require.NoError(t, err)

	view, err = s.Patcher().Patch(ctx, "ignored", account.SetPostsCount(3))
	require.NoError(t, err)
	assert.Equal(t, 3, view.PostsCount)
}
