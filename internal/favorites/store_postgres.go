// Copyright (c) 2026 Drama Collection. All rights reserved.
// Author: dev@dramacollection.com

package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dramacollection/storefront/internal/platform/database/schema"
	"github.com/dramacollection/storefront/internal/platform/dberr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository implements Repository on the users.favorite table:
// one row per identity with the set stored as a JSONB document. It exists
// for installations that keep favorites next to accounts instead of in
// Redis; writes are merge-style upserts keyed by email.
type PostgresRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresRepository(db *pgxpool.Pool, logger *slog.Logger) *PostgresRepository {
	return &PostgresRepository{db: db, logger: logger}
}

func (repository *PostgresRepository) Load(context context.Context, email string) (*Set, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.UserFavorite.Favorites, schema.UserFavorite.Table, schema.UserFavorite.Email,
	)

	var payload []byte
	err := repository.db.QueryRow(context, query, email).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &Set{}, nil
		}
		return nil, dberr.Wrap(err, "load_favorites")
	}

	var stored Set
	if err := json.Unmarshal(payload, &stored); err != nil {
		repository.logger.Warn("favorites_payload_corrupt", slog.String("email", email), slog.String("error", err.Error()))
		return &Set{}, nil
	}

	return &stored, nil
}

func (repository *PostgresRepository) Save(context context.Context, email string, s *Set) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("postgres_favorites_encode_failed: %w", err)
	}

	// Merge upsert: only the document and its timestamp move on conflict
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, NOW())
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s, %s = NOW()
	`,
		schema.UserFavorite.Table,
		schema.UserFavorite.Email, schema.UserFavorite.Favorites, schema.UserFavorite.UpdatedAt,
		schema.UserFavorite.Email,
		schema.UserFavorite.Favorites, schema.UserFavorite.Favorites, schema.UserFavorite.UpdatedAt,
	)

	_, err = repository.db.Exec(context, query, email, payload)
	return dberr.Wrap(err, "save_favorites")
}

func (repository *PostgresRepository) Clear(context context.Context, email string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.UserFavorite.Table, schema.UserFavorite.Email)

	_, err := repository.db.Exec(context, query, email)
	return dberr.Wrap(err, "clear_favorites")
}
