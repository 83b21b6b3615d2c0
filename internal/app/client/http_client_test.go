package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"linkedink/internal/app/client/config"
	"linkedink/internal/app/client/profile"
	"linkedink/internal/domain/account"
	"linkedink/internal/domain/apperr"
	"linkedink/internal/storage/kv/memory"
)

func newRemoteApp(t *testing.T, handler http.Handler) *App {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		ServerAddress:  strings.TrimPrefix(srv.URL, "http://"),
		RequestTimeout: 5 * time.Second,
	}
	app, err := NewWithStore(cfg, slog.Default(), memory.New())
	require.NoError(t, err)
	return app
}

func TestRemote_LoginStoresToken(t *testing.T) {
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /token/", func(w http.ResponseWriter, r *http.Request) {
		var req tokenRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "jane@x.com", req.Username)
		assert.Equal(t, "secret1", req.Password)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(TokenResponse{Access: "tok-1", TokenType: "Bearer", ExpiresAt: expires})
	})
	mux.HandleFunc("GET /me/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(account.View{ID: "acc-1", Name: "Jane", Email: "jane@x.com"})
	})

	app := newRemoteApp(t, mux)
	ctx := context.Background()
	remote := app.Remote()

	_, err := remote.Me(ctx)
	assert.ErrorIs(t, err, apperr.ErrAuth, "no token yet")

	token, err := remote.Login(ctx, "jane@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token.Access)
	assert.True(t, expires.Equal(token.ExpiresAt))

	e, err := app.kv.Get(ctx, profile.KeyAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", string(e.Value))

	me, err := remote.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", me.ID)
}

func TestRemote_TokenSurvivesRestart(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /me/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer saved", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(account.View{ID: "acc-1"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := memory.New()
	require.NoError(t, store.Put(context.Background(), profile.KeyAccessToken, []byte("saved")))

	cfg := &config.Config{ServerAddress: strings.TrimPrefix(srv.URL, "http://"), RequestTimeout: time.Second}
	app, err := NewWithStore(cfg, slog.Default(), store)
	require.NoError(t, err)

	me, err := app.Remote().Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "acc-1", me.ID)
}

func TestRemote_Logout(t *testing.T) {
	var revoked bool
	mux := http.NewServeMux()
	mux.HandleFunc("POST /token/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(TokenResponse{Access: "tok-1"})
	})
	mux.HandleFunc("POST /logout/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		revoked = true
		w.WriteHeader(http.StatusNoContent)
	})

	app := newRemoteApp(t, mux)
	ctx := context.Background()

	_, err := app.Remote().Login(ctx, "jane@x.com", "secret1")
	require.NoError(t, err)

	require.NoError(t, app.Remote().Logout(ctx))
	assert.True(t, revoked)
	assert.False(t, app.Remote().LoggedIn())

	_, err = app.kv.Get(ctx, profile.KeyAccessToken)
	assert.Error(t, err)

	require.NoError(t, app.Remote().Logout(ctx), "logout without token is a no-op")
}

func TestRemote_PostsFlow(t *testing.T) {
	generatedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /posts/upload/", func(w http.ResponseWriter, r *http.Request) {
		var req uploadRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "A---B---C", req.PostsText)
		json.NewEncoder(w).Encode(uploadResponse{Count: 3})
	})
	mux.HandleFunc("POST /style/analyze/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tone":"Professional and inspirational","avgLength":1,"commonWords":["team"],"structure":"Story-based with clear takeaways"}`))
	})
	mux.HandleFunc("POST /posts/generate/", func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "AI", req.Topic)
		json.NewEncoder(w).Encode(postResponse{ID: "p1", Topic: req.Topic, Language: "English", TargetLength: 250, Content: "draft", GeneratedAt: generatedAt})
	})
	mux.HandleFunc("GET /posts/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]postResponse{{ID: "p1", Content: "draft"}})
	})
	mux.HandleFunc("GET /templates/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"title":"Career Milestone","category":"Achievement","content":"x"}]`))
	})

	app := newRemoteApp(t, mux)
	app.httpClient.SetToken("tok")
	ctx := context.Background()
	remote := app.Remote()

	n, err := remote.Upload(ctx, "A---B---C")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	p, err := remote.Analyze(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, p.AvgLength)

	post, err := remote.Generate(ctx, "AI", "")
	require.NoError(t, err)
	assert.Equal(t, "p1", post.ID)
	assert.Equal(t, 250, post.TargetLength)
	assert.True(t, generatedAt.Equal(post.GeneratedAt))

	posts, err := remote.Posts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "draft", posts[0].Content)

	templates, err := remote.Templates(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Career Milestone", templates[0].Title)
}

func TestHTTPClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		kind    error
		message string
	}{
		{"problem detail", http.StatusUnprocessableEntity, `{"title":"Unprocessable Entity","status":422,"detail":"Passwords don't match"}`, apperr.ErrValidation, "Passwords don't match"},
		{"conflict", http.StatusConflict, `{"detail":"Email already registered"}`, apperr.ErrConflict, "Email already registered"},
		{"middleware body", http.StatusUnauthorized, `{"error":"invalid token"}`, apperr.ErrAuth, "invalid token"},
		{"precondition", http.StatusPreconditionFailed, `{"detail":"Analyze style first!"}`, apperr.ErrPrecondition, "Analyze style first!"},
		{"not found without body", http.StatusNotFound, ``, apperr.ErrNotFound, "Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newRemoteApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))

			_, err := app.Remote().Register(context.Background(), account.RegisterInput{Email: "a@x.com"})
			assert.ErrorIs(t, err, tt.kind)
			assert.Equal(t, tt.message, apperr.Message(err))
		})
	}
}

func TestHTTPClient_ServerError(t *testing.T) {
	app := newRemoteApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"internal error"}`))
	}))

	err := app.Remote().Health(context.Background())
	require.Error(t, err)
	assert.False(t, apperr.IsUserFacing(err))
	assert.Contains(t, err.Error(), "500")
}

func TestHTTPClient_Unreachable(t *testing.T) {
	cfg := &config.Config{ServerAddress: "127.0.0.1:1", RequestTimeout: time.Second}
	app, err := NewWithStore(cfg, slog.Default(), memory.New())
	require.NoError(t, err)

	err = app.Remote().Health(context.Background())
	assert.ErrorContains(t, err, "server unreachable")
}
