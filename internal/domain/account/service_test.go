package account

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"linkedink/internal/domain/apperr"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, a Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (Account, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(Account), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id string) (Account, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Account), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id string, fn func(*Account) error) (Account, error) {
	args := m.Called(ctx, id, fn)
	return args.Get(0).(Account), args.Error(1)
}

func newTestService(repo Repository) *Service {
	s := NewService(repo, NewRegisterValidator(), PlainHasher{}, slog.Default())
	s.newID = func() string { return "acc-1" }
	return s
}

func TestService_Register(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Create", mock.Anything, Account{
		ID:       "acc-1",
		Name:     "Ann Lee",
		Email:    "ann@example.com",
		Password: "secret1",
	}).Return(nil)

	view, err := service.Register(context.Background(), RegisterInput{
		Name:            "Ann Lee",
		Email:           "ann@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, View{ID: "acc-1", Name: "Ann Lee", Email: "ann@example.com"}, view)

	mockRepo.AssertExpectations(t)
}

func TestService_Register_UsesUUIDByDefault(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewRegisterValidator(), PlainHasher{}, slog.Default())

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(a Account) bool {
		return len(a.ID) == 36
	})).Return(nil)

	view, err := service.Register(context.Background(), RegisterInput{
		Email: "ann@example.com", Password: "secret1", ConfirmPassword: "secret1",
	})
	require.NoError(t, err)
	assert.Len(t, view.ID, 36)
}

func TestService_Register_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    RegisterInput
		wantCode string
	}{
		{
			name:     "mismatch wins over short password",
			input:    RegisterInput{Email: "a@b.c", Password: "abc", ConfirmPassword: "abd"},
			wantCode: CodePasswordMismatch,
		},
		{
			name:     "mismatch wins over missing email",
			input:    RegisterInput{Password: "secret1", ConfirmPassword: "secret2"},
			wantCode: CodePasswordMismatch,
		},
		{
			name:     "five characters",
			input:    RegisterInput{Email: "a@b.c", Password: "abcde", ConfirmPassword: "abcde"},
			wantCode: CodePasswordTooShort,
		},
		{
			name:     "missing email",
			input:    RegisterInput{Password: "abcdef", ConfirmPassword: "abcdef"},
			wantCode: CodeEmailRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := newTestService(mockRepo)

			_, err := service.Register(context.Background(), tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperr.ErrValidation)
			assert.Equal(t, tt.wantCode, apperr.Code(err))

			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Register_EmailTaken(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("account.Account")).Return(ErrEmailTaken)

	_, err := service.Register(context.Background(), RegisterInput{
		Email: "ann@example.com", Password: "secret1", ConfirmPassword: "secret1",
	})
	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.Equal(t, MsgEmailTaken, apperr.Message(err))
}

func TestService_Register_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("account.Account")).Return(errors.New("database error"))

	_, err := service.Register(context.Background(), RegisterInput{
		Email: "ann@example.com", Password: "secret1", ConfirmPassword: "secret1",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	assert.False(t, apperr.IsUserFacing(err))
}

func TestService_Register_HashesWithBcrypt(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewRegisterValidator(), &BcryptHasher{Cost: 4}, slog.Default())

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(a Account) bool {
		return a.Password != "secret1" && (&BcryptHasher{}).Compare(a.Password, "secret1")
	})).Return(nil)

	_, err := service.Register(context.Background(), RegisterInput{
		Email: "ann@example.com", Password: "secret1", ConfirmPassword: "secret1",
	})
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_Authenticate(t *testing.T) {
	stored := Account{ID: "acc-1", Name: "Ann", Email: "ann@example.com", Password: "secret1", PostsCount: 4}

	tests := []struct {
		name     string
		email    string
		password string
		found    Account
		findErr  error
		want     View
		wantKind error
	}{
		{
			name:     "success",
			email:    "ann@example.com",
			password: "secret1",
			found:    stored,
			want:     stored.View(),
		},
		{
			name:     "wrong password",
			email:    "ann@example.com",
			password: "secret2",
			found:    stored,
			wantKind: apperr.ErrAuth,
		},
		{
			name:     "unknown email",
			email:    "bob@example.com",
			password: "secret1",
			findErr:  ErrNotFound,
			wantKind: apperr.ErrAuth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := newTestService(mockRepo)

			mockRepo.On("FindByEmail", mock.Anything, tt.email).Return(tt.found, tt.findErr)

			view, err := service.Authenticate(context.Background(), tt.email, tt.password)
			if tt.wantKind != nil {
				assert.ErrorIs(t, err, tt.wantKind)
				assert.Equal(t, MsgInvalidCredentials, apperr.Message(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, view)
		})
	}
}

func TestService_Get_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("FindByID", mock.Anything, "missing").Return(Account{}, ErrNotFound)

	_, err := service.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestService_Patch(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	acc := Account{ID: "acc-1", Email: "ann@example.com", Password: "secret1"}
	mockRepo.On("Update", mock.Anything, "acc-1", mock.Anything).
		Run(func(args mock.Arguments) {
			fn := args.Get(2).(func(*Account) error)
			require.NoError(t, fn(&acc))
		}).
		Return(Account{ID: "acc-1", Email: "ann@example.com", Password: "secret1", PostsCount: 5}, nil).Once()

	view, err := service.Patch(context.Background(), "acc-1", SetPostsCount(5))
	require.NoError(t, err)
	assert.Equal(t, 5, acc.PostsCount)
	assert.Equal(t, View{ID: "acc-1", Email: "ann@example.com", PostsCount: 5}, view)
}

func TestService_Patch_Errors(t *testing.T) {
	t.Run("unknown account", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := newTestService(mockRepo)
		mockRepo.On("Update", mock.Anything, "missing", mock.Anything).Return(Account{}, ErrNotFound)

		_, err := service.Patch(context.Background(), "missing", MarkProfileReady())
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("validation passes through", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := newTestService(mockRepo)
		mockRepo.On("Update", mock.Anything, "acc-1", mock.Anything).
			Return(Account{}, apperr.Validation("invalid_posts_count", "Posts count cannot be negative"))

		_, err := service.Patch(context.Background(), "acc-1", SetPostsCount(-1))
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})
}
