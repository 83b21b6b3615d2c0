package posts

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"linkedink/internal/app/server/api/http/httperr"
	"linkedink/internal/app/server/api/http/middleware/auth"
	"linkedink/internal/domain/corpus"
	"linkedink/internal/domain/generator"
)

type Handler struct {
	corpus     corpus.Servicer
	generator  generator.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(corpus corpus.Servicer, generator generator.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		corpus:     corpus,
		generator:  generator,
		log:        log.With(slog.String("component", "posts_handler")),
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.uploadOp(), h.upload)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.generateOp(), h.generate)
}

func (h *Handler) upload(ctx context.Context, input *uploadInput) (*uploadOutput, error) {
	owner, ok := auth.AccountID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	n, err := h.corpus.Upload(ctx, owner, input.Body.PostsText)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}

	out := &uploadOutput{}
	out.Body.Count = n
	return out, nil
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	owner, ok := auth.AccountID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	posts, err := h.generator.List(ctx, owner)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}

	out := &listOutput{Body: make([]PostResponse, 0, len(posts))}
	for _, p := range posts {
		out.Body = append(out.Body, toResponse(p))
	}
	return out, nil
}

func (h *Handler) generate(ctx context.Context, input *generateInput) (*postOutput, error) {
	owner, ok := auth.AccountID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	p, err := h.generator.Generate(ctx, owner, input.Body.Topic, input.Body.Language)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}

	return &postOutput{Body: toResponse(p)}, nil
}
