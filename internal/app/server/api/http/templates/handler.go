package templates

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"linkedink/internal/domain/generator"
)

type listOutput struct {
	Body []generator.Template
}

type Handler struct {
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "templates-list",
		Method:      http.MethodGet,
		Path:        "/templates/",
		Summary:     "Post template gallery",
		Tags:        []string{"templates"},
		Middlewares: h.middleware,
	}, h.list)
}

func (h *Handler) list(_ context.Context, _ *struct{}) (*listOutput, error) {
	return &listOutput{Body: generator.Templates()}, nil
}
