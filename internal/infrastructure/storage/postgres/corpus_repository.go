package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"linkedink/internal/domain/account"
	"linkedink/internal/domain/corpus"
)

type CorpusRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewCorpusRepository(db *Storage, log *slog.Logger) *CorpusRepository {
	return &CorpusRepository{
		db:  db,
		log: log,
	}
}

var _ corpus.CountingRepository = (*CorpusRepository)(nil)

func (r *CorpusRepository) Replace(ctx context.Context, owner string, posts []string) error {
	return pgx.BeginFunc(ctx, r.db.Pool(), func(tx pgx.Tx) error {
		return replacePosts(ctx, tx, owner, posts)
	})
}

// ReplaceAndCount locks the account row, swaps the corpus and sets
// posts_count in the same transaction.
func (r *CorpusRepository) ReplaceAndCount(ctx context.Context, owner string, posts []string) error {
	return pgx.BeginFunc(ctx, r.db.Pool(), func(tx pgx.Tx) error {
		var id string
		err := tx.QueryRow(ctx, `SELECT id FROM accounts WHERE id = $1 FOR UPDATE`, owner).Scan(&id)
		if isNoRows(err) {
			return account.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("lock account: %w", err)
		}

		if err := replacePosts(ctx, tx, owner, posts); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx,
			`UPDATE accounts SET posts_count = $2 WHERE id = $1`, owner, len(posts)); err != nil {
			return fmt.Errorf("update posts count: %w", err)
		}
		return nil
	})
}

func replacePosts(ctx context.Context, tx pgx.Tx, owner string, posts []string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM corpus_posts WHERE account_id = $1`, owner); err != nil {
		return fmt.Errorf("clear corpus: %w", err)
	}

	rows := make([][]any, len(posts))
	for i, p := range posts {
		rows[i] = []any{owner, i, p}
	}
	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"corpus_posts"},
		[]string{"account_id", "position", "body"},
		pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("copy corpus: %w", err)
	}
	return nil
}

func (r *CorpusRepository) List(ctx context.Context, owner string) ([]string, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT body FROM corpus_posts WHERE account_id = $1 ORDER BY position`, owner)
	if err != nil {
		return nil, fmt.Errorf("select corpus: %w", err)
	}

	posts, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan corpus: %w", err)
	}
	return posts, nil
}
