// Package sqlite keeps a kv.Store in a single sqlite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"linkedink/internal/storage/kv"
)

type Store struct {
	db *sql.DB
}

func New(path string) (*Store, error) {
	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000&_txlock=immediate"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open profile database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init profile tables: %w", err)
	}

	return s, nil
}

func (s *Store) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			version INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS kv_sequence (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			value INTEGER NOT NULL
		);

		INSERT OR IGNORE INTO kv_sequence (id, value) VALUES (1, 0);
	`)
	return err
}

func (s *Store) Get(ctx context.Context, key string) (kv.Entry, error) {
	var e kv.Entry
	err := s.db.QueryRowContext(ctx, `SELECT value, version FROM kv WHERE key = ?`, key).Scan(&e.Value, &e.Version)
	if errors.Is(err, sql.ErrNoRows) {
		return kv.Entry{}, kv.ErrNotFound
	}
	if err != nil {
		return kv.Entry{}, fmt.Errorf("get %s: %w", key, err)
	}
	return e, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		_, err := write(ctx, tx, key, value)
		return err
	})
}

func (s *Store) PutAll(ctx context.Context, values map[string][]byte) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		for k, v := range values {
			if _, err := write(ctx, tx, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) CompareAndSwap(ctx context.Context, key string, version int64, value []byte) (int64, error) {
	var next int64
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		var current int64
		err := tx.QueryRowContext(ctx, `SELECT version FROM kv WHERE key = ?`, key).Scan(&current)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("read version of %s: %w", key, err)
		}

		if current != version {
			return kv.ErrVersionConflict
		}

		next, err = write(ctx, tx, key, value)
		return err
	})
	if err != nil {
		return 0, err
	}
	return next, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func write(ctx context.Context, tx *sql.Tx, key string, value []byte) (int64, error) {
	var version int64
	err := tx.QueryRowContext(ctx, `UPDATE kv_sequence SET value = value + 1 WHERE id = 1 RETURNING value`).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("next version: %w", err)
	}

	if value == nil {
		value = []byte{}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO kv (key, value, version) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, version = excluded.version
	`, key, value, version)
	if err != nil {
		return 0, fmt.Errorf("write %s: %w", key, err)
	}
	return version, nil
}
