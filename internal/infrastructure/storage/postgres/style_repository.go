package postgres

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"linkedink/internal/domain/style"
)

type StyleRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewStyleRepository(db *Storage, log *slog.Logger) *StyleRepository {
	return &StyleRepository{
		db:  db,
		log: log,
	}
}

var _ style.Repository = (*StyleRepository)(nil)

func (r *StyleRepository) Save(ctx context.Context, owner string, p style.Profile) error {
	words := p.CommonWords
	if words == nil {
		words = []string{}
	}
	_, err := r.db.Pool().Exec(ctx,
		`INSERT INTO style_profiles (account_id, tone, avg_length, common_words, structure, analyzed_at)
         VALUES ($1, $2, $3, $4, $5, NOW())
         ON CONFLICT (account_id) DO UPDATE
         SET tone = EXCLUDED.tone,
             avg_length = EXCLUDED.avg_length,
             common_words = EXCLUDED.common_words,
             structure = EXCLUDED.structure,
             analyzed_at = EXCLUDED.analyzed_at`,
		owner, p.Tone, p.AvgLength, words, p.Structure)
	if err != nil {
		return fmt.Errorf("upsert style profile: %w", err)
	}
	return nil
}

func (r *StyleRepository) Get(ctx context.Context, owner string) (style.Profile, error) {
	var p style.Profile
	err := r.db.Pool().QueryRow(ctx,
		`SELECT tone, avg_length, common_words, structure FROM style_profiles WHERE account_id = $1`,
		owner).Scan(&p.Tone, &p.AvgLength, &p.CommonWords, &p.Structure)
	if isNoRows(err) {
		return style.Profile{}, style.ErrNotFound
	}
	if err != nil {
		return style.Profile{}, fmt.Errorf("select style profile: %w", err)
	}
	return p, nil
}
