package user

import (
	"time"

	"linkedink/internal/domain/account"
)

type registerInput struct {
	Body RegisterRequest
}

type RegisterRequest struct {
	Name            string `json:"name" maxLength:"200" doc:"Display name"`
	Email           string `json:"email" maxLength:"320" doc:"Login email, compared case-sensitively"`
	Password        string `json:"password" maxLength:"256"`
	ConfirmPassword string `json:"confirm_password,omitempty" maxLength:"256" doc:"Defaults to password when omitted"`
}

type accountOutput struct {
	Body account.View
}

type tokenInput struct {
	Body TokenRequest
}

type TokenRequest struct {
	Username string `json:"username" doc:"Account email"`
	Password string `json:"password"`
}

type tokenOutput struct {
	Body TokenResponse
}

type TokenResponse struct {
	Access    string    `json:"access"`
	TokenType string    `json:"token_type" example:"bearer"`
	ExpiresAt time.Time `json:"expires_at"`
}

type emptyInput struct{}

type emptyOutput struct{}
