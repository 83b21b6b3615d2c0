package user

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"linkedink/internal/app/server/api/http/httperr"
	"linkedink/internal/app/server/api/http/middleware/auth"
	"linkedink/internal/domain/account"
	"linkedink/internal/domain/session"
)

type Handler struct {
	service account.Servicer
	session session.Servicer
	log     *slog.Logger
	public  huma.Middlewares
	login   huma.Middlewares
	private huma.Middlewares
}

// NewHandler takes separate middleware chains for open routes, the token
// route and routes that need a bearer token.
func NewHandler(service account.Servicer, session session.Servicer, log *slog.Logger, public, login, private huma.Middlewares) *Handler {
	return &Handler{
		service: service,
		session: session,
		log:     log.With(slog.String("component", "user_handler")),
		public:  public,
		login:   login,
		private: private,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.tokenOp(), h.token)
	huma.Register(api, h.logoutOp(), h.logout)
	huma.Register(api, h.meOp(), h.me)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*accountOutput, error) {
	confirm := input.Body.ConfirmPassword
	if confirm == "" {
		confirm = input.Body.Password
	}

	view, err := h.service.Register(ctx, account.RegisterInput{
		Name:            input.Body.Name,
		Email:           input.Body.Email,
		Password:        input.Body.Password,
		ConfirmPassword: confirm,
	})
	if err != nil {
		return nil, httperr.From(h.log, err)
	}

	return &accountOutput{Body: view}, nil
}

func (h *Handler) token(ctx context.Context, input *tokenInput) (*tokenOutput, error) {
	view, err := h.service.Authenticate(ctx, input.Body.Username, input.Body.Password)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}

	token, err := h.session.Create(ctx, view.ID)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}

	h.log.Info("token issued", slog.String("account_id", view.ID))

	return &tokenOutput{Body: TokenResponse{
		Access:    token.Access,
		TokenType: session.TokenType,
		ExpiresAt: token.ExpiresAt,
	}}, nil
}

func (h *Handler) logout(ctx context.Context, _ *emptyInput) (*emptyOutput, error) {
	token, ok := auth.Token(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.session.Revoke(ctx, token); err != nil {
		return nil, httperr.From(h.log, err)
	}

	return &emptyOutput{}, nil
}

func (h *Handler) me(ctx context.Context, _ *emptyInput) (*accountOutput, error) {
	accountID, ok := auth.AccountID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	view, err := h.service.Get(ctx, accountID)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}

	return &accountOutput{Body: view}, nil
}
