package style

import "linkedink/internal/domain/style"

type profileOutput struct {
	Body style.Profile
}
