package posts

import (
	"time"

	"linkedink/internal/domain/generator"
)

type uploadInput struct {
	Body struct {
		PostsText string `json:"posts_text" doc:"Posts separated by lines of ---"`
	}
}

type uploadOutput struct {
	Body struct {
		Count int `json:"count" doc:"Posts stored"`
	}
}

type generateInput struct {
	Body struct {
		Topic    string `json:"topic" maxLength:"500"`
		Language string `json:"language,omitempty" doc:"Accepted but does not change the text yet"`
	}
}

type postOutput struct {
	Body PostResponse
}

type listOutput struct {
	Body []PostResponse
}

type PostResponse struct {
	ID           string    `json:"id"`
	Topic        string    `json:"topic"`
	Language     string    `json:"language"`
	TargetLength int       `json:"target_length"`
	Content      string    `json:"content"`
	GeneratedAt  time.Time `json:"generated_at"`
}

func toResponse(p generator.Post) PostResponse {
	return PostResponse{
		ID:           p.ID,
		Topic:        p.Topic,
		Language:     p.Language,
		TargetLength: p.TargetLength,
		Content:      p.Content,
		GeneratedAt:  p.GeneratedAt,
	}
}
