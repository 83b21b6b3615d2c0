package account

import "context"

type Repository interface {
	// Create stores a new account. It returns ErrEmailTaken when the email
	// is already registered.
	Create(ctx context.Context, a Account) error
	FindByEmail(ctx context.Context, email string) (Account, error)
	FindByID(ctx context.Context, id string) (Account, error)
	// Update loads one account, lets fn mutate it and persists the result
	// atomically with respect to other updates of the same account.
	Update(ctx context.Context, id string, fn func(*Account) error) (Account, error)
}
