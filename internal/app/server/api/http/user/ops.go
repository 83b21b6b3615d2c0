package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler) registerOp() huma.Operation {
	return huma.Operation{
		OperationID:   "account-register",
		Method:        http.MethodPost,
		Path:          "/register/",
		Summary:       "Register an account",
		Tags:          []string{"accounts"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusConflict, http.StatusUnprocessableEntity},
		Middlewares:   h.public,
	}
}

func (h *Handler) tokenOp() huma.Operation {
	return huma.Operation{
		OperationID: "account-token",
		Method:      http.MethodPost,
		Path:        "/token/",
		Summary:     "Exchange email and password for an access token",
		Tags:        []string{"accounts"},
		Errors:      []int{http.StatusUnauthorized, http.StatusTooManyRequests},
		Middlewares: h.login,
	}
}

func (h *Handler) logoutOp() huma.Operation {
	return huma.Operation{
		OperationID:   "account-logout",
		Method:        http.MethodPost,
		Path:          "/logout/",
		Summary:       "Revoke the current access token",
		Tags:          []string{"accounts"},
		DefaultStatus: http.StatusNoContent,
		Security:      bearer,
		Middlewares:   h.private,
	}
}

func (h *Handler) meOp() huma.Operation {
	return huma.Operation{
		OperationID: "account-me",
		Method:      http.MethodGet,
		Path:        "/me/",
		Summary:     "Current account",
		Tags:        []string{"accounts"},
		Security:    bearer,
		Middlewares: h.private,
	}
}
