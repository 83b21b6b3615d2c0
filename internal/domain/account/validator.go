package account

import (
	"strings"
	"unicode/utf8"

	"linkedink/internal/domain/apperr"
)

const MinPasswordLen = 6

type Validator interface {
	ValidateRegister(in RegisterInput) error
}

type RegisterValidator struct {
	minPasswordLen int
}

func NewRegisterValidator() *RegisterValidator {
	return &RegisterValidator{minPasswordLen: MinPasswordLen}
}

// ValidateRegister checks the confirmation first, so a mismatch is reported
// whatever else is wrong with the input. Length is counted in characters.
func (v *RegisterValidator) ValidateRegister(in RegisterInput) error {
	if in.Password != in.ConfirmPassword {
		return apperr.Validation(CodePasswordMismatch, MsgPasswordMismatch)
	}

	if utf8.RuneCountInString(in.Password) < v.minPasswordLen {
		return apperr.Validation(CodePasswordTooShort, MsgPasswordTooShort)
	}

	if strings.TrimSpace(in.Email) == "" {
		return apperr.Validation(CodeEmailRequired, MsgEmailRequired)
	}

	return nil
}
