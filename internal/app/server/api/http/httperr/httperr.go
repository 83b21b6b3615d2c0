// Package httperr converts domain errors into huma status errors.
package httperr

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"linkedink/internal/domain/apperr"
	"linkedink/internal/task"
)

const msgInternal = "Internal server error"

// From maps err to the status its kind stands for. Anything outside the
// domain taxonomy is logged and hidden behind a 500.
func From(log *slog.Logger, err error) error {
	if err == nil {
		return nil
	}

	msg := apperr.Message(err)

	switch {
	case errors.Is(err, apperr.ErrValidation):
		return huma.Error422UnprocessableEntity(msg)
	case errors.Is(err, apperr.ErrConflict):
		return huma.Error409Conflict(msg)
	case errors.Is(err, apperr.ErrAuth):
		return huma.Error401Unauthorized(msg)
	case errors.Is(err, apperr.ErrNotFound):
		return huma.Error404NotFound(msg)
	case errors.Is(err, apperr.ErrPrecondition):
		return huma.Error412PreconditionFailed(msg)
	case errors.Is(err, task.ErrCancelled), errors.Is(err, context.Canceled):
		log.Debug("request abandoned", slog.String("error", err.Error()))
		return huma.Error503ServiceUnavailable("Request cancelled")
	default:
		log.Error("request failed", slog.String("error", err.Error()))
		return huma.Error500InternalServerError(msgInternal)
	}
}
