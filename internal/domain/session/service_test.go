package session

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, accountID string, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, accountID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockRepository) Validate(ctx context.Context, tokenHash string) (string, error) {
	args := m.Called(ctx, tokenHash)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) Revoke(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

const testSecret = "test-secret"

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService(repo Repository, opts ...Option) *Service {
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewService(repo, testSecret, slog.Default(), opts...)
}

func isHexHash(hash string) bool {
	return len(hash) == 64 && strings.Trim(hash, "0123456789abcdef") == ""
}

func TestService_Create(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo, WithTTL(time.Hour))

	var stored string
	mockRepo.On("Create", mock.Anything, "acc-1", mock.MatchedBy(isHexHash), fixedNow.Add(time.Hour)).
		Run(func(args mock.Arguments) { stored = args.String(2) }).
		Return(nil)

	token, err := service.Create(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.Equal(t, fixedNow.Add(time.Hour), token.ExpiresAt)

	c, err := service.signer.parse(token.Access, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", c.Subject)
	assert.Equal(t, stored, hashID(c.ID))
	assert.NotContains(t, stored, c.ID)

	mockRepo.AssertExpectations(t)
}

func TestService_Create_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Create", mock.Anything, "acc-1", mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Return(errors.New("database error"))

	_, err := service.Create(context.Background(), "acc-1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")

	mockRepo.AssertExpectations(t)
}

func TestService_Validate(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Create", mock.Anything, "acc-1", mock.Anything, mock.Anything).Return(nil)
	token, err := service.Create(context.Background(), "acc-1")
	require.NoError(t, err)

	mockRepo.On("Validate", mock.Anything, mock.MatchedBy(isHexHash)).Return("acc-1", nil)

	accountID, err := service.Validate(context.Background(), token.Access)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", accountID)

	mockRepo.AssertExpectations(t)
}

func TestService_Validate_Rejects(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo, WithTTL(time.Minute))

	mockRepo.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	token, err := service.Create(context.Background(), "acc-1")
	require.NoError(t, err)

	other := NewService(mockRepo, "another-secret", slog.Default(), WithClock(func() time.Time { return fixedNow }))
	forged, err := other.Create(context.Background(), "acc-1")
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{ID: "x", Subject: "acc-1"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		service *Service
		token   string
	}{
		{name: "garbage", service: service, token: "not-a-jwt"},
		{name: "wrong secret", service: service, token: forged.Access},
		{name: "alg none", service: service, token: unsigned},
		{
			name:    "expired",
			service: NewService(mockRepo, testSecret, slog.Default(), WithClock(func() time.Time { return fixedNow.Add(2 * time.Minute) })),
			token:   token.Access,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.service.Validate(context.Background(), tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}

	mockRepo.AssertNotCalled(t, "Validate", mock.Anything, mock.Anything)
}

func TestService_Validate_Revoked(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	token, err := service.Create(context.Background(), "acc-1")
	require.NoError(t, err)

	mockRepo.On("Validate", mock.Anything, mock.Anything).Return("", ErrNotFound)

	_, err = service.Validate(context.Background(), token.Access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Validate_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	token, err := service.Create(context.Background(), "acc-1")
	require.NoError(t, err)

	mockRepo.On("Validate", mock.Anything, mock.Anything).Return("", errors.New("db down"))

	_, err = service.Validate(context.Background(), token.Access)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidToken)
}

func TestService_Revoke(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	var created string
	mockRepo.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { created = args.String(2) }).
		Return(nil)
	token, err := service.Create(context.Background(), "acc-1")
	require.NoError(t, err)

	mockRepo.On("Revoke", mock.Anything, mock.Anything).Return(ErrNotFound).Once()

	assert.NoError(t, service.Revoke(context.Background(), token.Access))
	mockRepo.AssertCalled(t, "Revoke", mock.Anything, created)

	assert.ErrorIs(t, service.Revoke(context.Background(), "bogus"), ErrInvalidToken)
}
