package client

import (
	"time"

	"linkedink/internal/domain/generator"
)

// Wire formats of the backend API.

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password,omitempty"`
}

// tokenRequest keeps the backend's field name: the email goes in username.
type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Access    string    `json:"access"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

type uploadRequest struct {
	PostsText string `json:"posts_text"`
}

type uploadResponse struct {
	Count int `json:"count"`
}

type generateRequest struct {
	Topic    string `json:"topic"`
	Language string `json:"language,omitempty"`
}

type postResponse struct {
	ID           string    `json:"id"`
	Topic        string    `json:"topic"`
	Language     string    `json:"language"`
	TargetLength int       `json:"target_length"`
	Content      string    `json:"content"`
	GeneratedAt  time.Time `json:"generated_at"`
}

func (p postResponse) toPost() generator.Post {
	return generator.Post{
		ID:           p.ID,
		Topic:        p.Topic,
		Language:     p.Language,
		TargetLength: p.TargetLength,
		Content:      p.Content,
		GeneratedAt:  p.GeneratedAt,
	}
}

// errorResponse covers both the problem documents huma writes and the plain
// {"error": "..."} bodies of the auth middleware.
type errorResponse struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Error  string `json:"error"`
}

func (e errorResponse) message() string {
	switch {
	case e.Detail != "":
		return e.Detail
	case e.Error != "":
		return e.Error
	default:
		return e.Title
	}
}
