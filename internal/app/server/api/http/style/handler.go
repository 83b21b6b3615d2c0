package style

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"linkedink/internal/app/server/api/http/httperr"
	"linkedink/internal/app/server/api/http/middleware/auth"
	"linkedink/internal/domain/style"
)

type Handler struct {
	service    style.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service style.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With(slog.String("component", "style_handler")),
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.analyzeOp(), h.analyze)
	huma.Register(api, h.getOp(), h.get)
}

func (h *Handler) analyze(ctx context.Context, _ *struct{}) (*profileOutput, error) {
	owner, ok := auth.AccountID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	p, err := h.service.Analyze(ctx, owner)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}
	return &profileOutput{Body: p}, nil
}

func (h *Handler) get(ctx context.Context, _ *struct{}) (*profileOutput, error) {
	owner, ok := auth.AccountID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	p, err := h.service.Get(ctx, owner)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}
	return &profileOutput{Body: p}, nil
}
