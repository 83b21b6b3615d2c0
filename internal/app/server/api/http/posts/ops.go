package posts

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler) uploadOp() huma.Operation {
	return huma.Operation{
		OperationID: "posts-upload",
		Method:      http.MethodPost,
		Path:        "/posts/upload/",
		Summary:     "Replace the sample posts used for style analysis",
		Tags:        []string{"posts"},
		Errors:      []int{http.StatusUnprocessableEntity},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "posts-list",
		Method:      http.MethodGet,
		Path:        "/posts/",
		Summary:     "Generated posts, newest first",
		Tags:        []string{"posts"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) generateOp() huma.Operation {
	return huma.Operation{
		OperationID: "posts-generate",
		Method:      http.MethodPost,
		Path:        "/posts/generate/",
		Summary:     "Generate a post on a topic",
		Tags:        []string{"posts"},
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusPreconditionFailed},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}
