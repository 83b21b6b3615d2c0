package style

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler) analyzeOp() huma.Operation {
	return huma.Operation{
		OperationID: "style-analyze",
		Method:      http.MethodPost,
		Path:        "/style/analyze/",
		Summary:     "Derive a style profile from the uploaded posts",
		Tags:        []string{"style"},
		Errors:      []int{http.StatusPreconditionFailed},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "style-get",
		Method:      http.MethodGet,
		Path:        "/style/",
		Summary:     "Current style profile",
		Tags:        []string{"style"},
		Errors:      []int{http.StatusNotFound},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}
