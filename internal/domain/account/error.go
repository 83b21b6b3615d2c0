package account

import "errors"

// Repository level errors. The service turns them into apperr kinds.
var (
	ErrNotFound   = errors.New("account not found")
	ErrEmailTaken = errors.New("email already registered")
)

const (
	CodePasswordMismatch   = "password_mismatch"
	CodePasswordTooShort   = "password_too_short"
	CodeEmailRequired      = "email_required"
	CodeEmailTaken         = "email_taken"
	CodeInvalidCredentials = "invalid_credentials"
	CodeAccountNotFound    = "account_not_found"
)

const (
	MsgPasswordMismatch   = "Passwords don't match"
	MsgPasswordTooShort   = "Password must be at least 6 characters"
	MsgEmailRequired      = "Email is required"
	MsgEmailTaken         = "Email already registered"
	MsgInvalidCredentials = "Invalid email or password"
	MsgAccountNotFound    = "Account not found"
)
