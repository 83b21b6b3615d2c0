package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"linkedink/internal/domain/account"
)

const accountColumns = `id, name, email, password_hash, posts_count, has_profile`

type AccountRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewAccountRepository(db *Storage, log *slog.Logger) *AccountRepository {
	return &AccountRepository{
		db:  db,
		log: log,
	}
}

var _ account.Repository = (*AccountRepository)(nil)

func (r *AccountRepository) Create(ctx context.Context, a account.Account) error {
	_, err := r.db.Pool().Exec(ctx,
		`INSERT INTO accounts (id, name, email, password_hash, posts_count, has_profile)
         VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.Name, a.Email, a.Password, a.PostsCount, a.HasProfile)
	if isUniqueViolation(err) {
		return account.ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (account.Account, error) {
	row := r.db.Pool().QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE email = $1`, email)
	return scanAccount(row)
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (account.Account, error) {
	row := r.db.Pool().QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	return scanAccount(row)
}

// Update locks the row for the duration of fn.
func (r *AccountRepository) Update(ctx context.Context, id string, fn func(*account.Account) error) (account.Account, error) {
	var updated account.Account

	err := pgx.BeginFunc(ctx, r.db.Pool(), func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx,
			`SELECT `+accountColumns+` FROM accounts WHERE id = $1 FOR UPDATE`, id)
		a, err := scanAccount(row)
		if err != nil {
			return err
		}

		if err := fn(&a); err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`UPDATE accounts SET name = $2, posts_count = $3, has_profile = $4 WHERE id = $1`,
			a.ID, a.Name, a.PostsCount, a.HasProfile)
		if err != nil {
			return fmt.Errorf("update account: %w", err)
		}

		updated = a
		return nil
	})
	if err != nil {
		return account.Account{}, err
	}

	return updated, nil
}

func scanAccount(row pgx.Row) (account.Account, error) {
	var a account.Account
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Password, &a.PostsCount, &a.HasProfile)
	if isNoRows(err) {
		return account.Account{}, account.ErrNotFound
	}
	if err != nil {
		return account.Account{}, fmt.Errorf("scan account: %w", err)
	}
	return a, nil
}
