package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/exp/slog"

	"linkedink/internal/app/client/config"
	"linkedink/internal/domain/account"
	"linkedink/internal/domain/apperr"
	"linkedink/internal/domain/generator"
	"linkedink/internal/domain/style"
)

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	return &httpClient{
		client: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		log:       log,
		baseURL:   cfg.BaseURL(),
		userAgent: "LinkedInk-Client/1.0",
	}
}

// SetToken устанавливает токен аутентификации
func (h *httpClient) SetToken(token string) {
	h.token = token
}

// HealthCheck проверяет доступность сервера
func (h *httpClient) HealthCheck(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/v1/health", nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) Register(ctx context.Context, in account.RegisterInput) (account.View, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/register/", registerRequest{
		Name:            in.Name,
		Email:           in.Email,
		Password:        in.Password,
		ConfirmPassword: in.ConfirmPassword,
	})
	if err != nil {
		return account.View{}, err
	}

	var view account.View
	err = h.parseResponse(resp, &view)
	return view, err
}

func (h *httpClient) Login(ctx context.Context, email, password string) (TokenResponse, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/token/", tokenRequest{Username: email, Password: password})
	if err != nil {
		return TokenResponse{}, err
	}

	var token TokenResponse
	if err := h.parseResponse(resp, &token); err != nil {
		return TokenResponse{}, err
	}

	h.SetToken(token.Access)
	return token, nil
}

func (h *httpClient) Logout(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodPost, "/logout/", nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) Me(ctx context.Context) (account.View, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/me/", nil)
	if err != nil {
		return account.View{}, err
	}

	var view account.View
	err = h.parseResponse(resp, &view)
	return view, err
}

func (h *httpClient) Upload(ctx context.Context, postsText string) (int, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/posts/upload/", uploadRequest{PostsText: postsText})
	if err != nil {
		return 0, err
	}

	var out uploadResponse
	err = h.parseResponse(resp, &out)
	return out.Count, err
}

func (h *httpClient) Analyze(ctx context.Context) (style.Profile, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/style/analyze/", nil)
	if err != nil {
		return style.Profile{}, err
	}

	var p style.Profile
	err = h.parseResponse(resp, &p)
	return p, err
}

func (h *httpClient) Style(ctx context.Context) (style.Profile, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/style/", nil)
	if err != nil {
		return style.Profile{}, err
	}

	var p style.Profile
	err = h.parseResponse(resp, &p)
	return p, err
}

func (h *httpClient) Generate(ctx context.Context, topic, language string) (generator.Post, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/posts/generate/", generateRequest{Topic: topic, Language: language})
	if err != nil {
		return generator.Post{}, err
	}

	var p postResponse
	if err := h.parseResponse(resp, &p); err != nil {
		return generator.Post{}, err
	}
	return p.toPost(), nil
}

func (h *httpClient) Posts(ctx context.Context) ([]generator.Post, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/posts/", nil)
	if err != nil {
		return nil, err
	}

	var list []postResponse
	if err := h.parseResponse(resp, &list); err != nil {
		return nil, err
	}

	posts := make([]generator.Post, 0, len(list))
	for _, p := range list {
		posts = append(posts, p.toPost())
	}
	return posts, nil
}

func (h *httpClient) Templates(ctx context.Context) ([]generator.Template, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/templates/", nil)
	if err != nil {
		return nil, err
	}

	var list []generator.Template
	err = h.parseResponse(resp, &list)
	return list, err
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("sending request", "method", method, "url", req.URL.String())

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("server unreachable: %w", err)
	}

	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	h.log.Debug("response received", "status", resp.StatusCode, "bytes", len(body))

	if resp.StatusCode >= 400 {
		return statusError(resp.StatusCode, body)
	}

	if result != nil && len(body) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

// statusError turns an error response into the same kinds the local flows
// return, so the CLI reports both alike.
func statusError(status int, body []byte) error {
	var er errorResponse
	_ = json.Unmarshal(body, &er)

	msg := er.message()
	if msg == "" {
		msg = http.StatusText(status)
	}

	var kind error
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		kind = apperr.ErrValidation
	case http.StatusConflict:
		kind = apperr.ErrConflict
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = apperr.ErrAuth
	case http.StatusNotFound:
		kind = apperr.ErrNotFound
	case http.StatusPreconditionFailed:
		kind = apperr.ErrPrecondition
	default:
		return fmt.Errorf("server error: status %d: %s", status, msg)
	}

	return &apperr.DomainError{Err: kind, Message: msg}
}
