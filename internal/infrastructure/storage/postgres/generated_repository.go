package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"linkedink/internal/domain/generator"
)

type GeneratedRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewGeneratedRepository(db *Storage, log *slog.Logger) *GeneratedRepository {
	return &GeneratedRepository{
		db:  db,
		log: log,
	}
}

var _ generator.Repository = (*GeneratedRepository)(nil)

func (r *GeneratedRepository) Save(ctx context.Context, owner string, p generator.Post) error {
	_, err := r.db.Pool().Exec(ctx,
		`INSERT INTO generated_posts (id, account_id, topic, language, target_length, content, generated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, owner, p.Topic, p.Language, p.TargetLength, p.Content, p.GeneratedAt)
	if err != nil {
		return fmt.Errorf("insert generated post: %w", err)
	}
	return nil
}

func (r *GeneratedRepository) List(ctx context.Context, owner string) ([]generator.Post, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, topic, language, target_length, content, generated_at
         FROM generated_posts WHERE account_id = $1
         ORDER BY generated_at DESC, id`, owner)
	if err != nil {
		return nil, fmt.Errorf("select generated posts: %w", err)
	}

	posts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (generator.Post, error) {
		var p generator.Post
		err := row.Scan(&p.ID, &p.Topic, &p.Language, &p.TargetLength, &p.Content, &p.GeneratedAt)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan generated posts: %w", err)
	}
	return posts, nil
}
