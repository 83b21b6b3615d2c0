package style

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"linkedink/internal/app/server/api/http/middleware/auth"
	"linkedink/internal/domain/apperr"
	"linkedink/internal/domain/style"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Analyze(ctx context.Context, owner string) (style.Profile, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).(style.Profile), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, owner string) (style.Profile, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).(style.Profile), args.Error(1)
}

func setup(t *testing.T) (humatest.TestAPI, *MockService) {
	_, api := humatest.New(t)

	signedIn := func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, auth.WithAccountID(ctx.Context(), "acc-1")))
	}
	svc := new(MockService)
	NewHandler(svc, slog.Default(), huma.Middlewares{signedIn}).SetupRoutes(api)

	return api, svc
}

var profile = style.Profile{
	Tone:        style.DefaultTone,
	AvgLength:   12,
	CommonWords: []string{},
	Structure:   style.DefaultStructure,
}

func TestHandler_analyze(t *testing.T) {
	api, svc := setup(t)
	svc.On("Analyze", mock.Anything, "acc-1").Return(profile, nil)

	resp := api.Post("/style/analyze/")

	assert.Equal(t, http.StatusOK, resp.Code)
	var got style.Profile
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, profile, got)
}

func TestHandler_analyze_NoPosts(t *testing.T) {
	api, svc := setup(t)
	svc.On("Analyze", mock.Anything, "acc-1").Return(style.Profile{}, apperr.Precondition("no_posts", "Upload posts first"))

	resp := api.Post("/style/analyze/")

	assert.Equal(t, http.StatusPreconditionFailed, resp.Code)
}

func TestHandler_get(t *testing.T) {
	api, svc := setup(t)
	svc.On("Get", mock.Anything, "acc-1").Return(profile, nil).Once()
	svc.On("Get", mock.Anything, "acc-1").Return(style.Profile{}, apperr.NotFound(style.CodeNoProfile, style.MsgNoProfile))

	assert.Equal(t, http.StatusOK, api.Get("/style/").Code)

	resp := api.Get("/style/")
	assert.Equal(t, http.StatusNotFound, resp.Code)
	var model huma.ErrorModel
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &model))
	assert.Equal(t, style.MsgNoProfile, model.Detail)
}
