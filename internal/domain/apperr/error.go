// Package apperr holds the user-facing error taxonomy shared by the domain
// packages. Every error that should reach a person as a message is a
// *DomainError whose Err is one of the kind sentinels below.
package apperr

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrAuth         = errors.New("authentication failed")
	ErrNotFound     = errors.New("not found")
	ErrPrecondition = errors.New("precondition failed")
)

type DomainError struct {
	Err     error
	Message string
	Code    string
}

func (e *DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func Validation(code, message string) error {
	return &DomainError{Err: ErrValidation, Code: code, Message: message}
}

func Conflict(code, message string) error {
	return &DomainError{Err: ErrConflict, Code: code, Message: message}
}

func Auth(code, message string) error {
	return &DomainError{Err: ErrAuth, Code: code, Message: message}
}

func NotFound(code, message string) error {
	return &DomainError{Err: ErrNotFound, Code: code, Message: message}
}

func Precondition(code, message string) error {
	return &DomainError{Err: ErrPrecondition, Code: code, Message: message}
}

// Code returns the machine-readable code of the first DomainError in err's
// chain, or "" when there is none.
func Code(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// Message returns the text to show a user for err.
func Message(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Error()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// IsUserFacing reports whether err belongs to the taxonomy above.
func IsUserFacing(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}
