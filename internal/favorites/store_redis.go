// Copyright (c) 2026 Drama Collection. All rights reserved.
// Author: dev@dramacollection.com

package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dramacollection/storefront/internal/platform/constants"
	"github.com/redis/go-redis/v9"
)

// RedisRepository implements Repository as a single JSON document per
// identity under "favorites:<email>".
type RedisRepository struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisRepository creates a new Redis-backed favorites Repository.
func NewRedisRepository(client *redis.Client, logger *slog.Logger) *RedisRepository {
	return &RedisRepository{client: client, logger: logger}
}

/*
Load fetches and decodes the favorites set stored for an email.

Description: A missing key yields an empty set, not an error. A payload
that fails to decode is discarded with a warning and yields an empty set.

Parameters:
  - context: context.Context
  - email: string (identity namespace)

Returns:
  - *Set: Stored favorites
  - error: Connectivity errors only
*/
func (repository *RedisRepository) Load(context context.Context, email string) (*Set, error) {

	// Use constants for key prefix
	key := fmt.Sprintf(constants.FavoritesKeyFormat, email)

	payload, err := repository.client.Get(context, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &Set{}, nil
		}
		return nil, fmt.Errorf("redis_favorites_load_failed: %w", err)
	}

	var stored Set
	if err := json.Unmarshal(payload, &stored); err != nil {
		repository.logger.Warn("favorites_payload_corrupt", slog.String("email", email), slog.String("error", err.Error()))
		return &Set{}, nil
	}

	return &stored, nil
}

/*
Save overwrites the stored favorites set for an email.

Parameters:
  - context: context.Context
  - email: string (identity namespace)
  - s: *Set

Returns:
  - error: Encoding or connectivity errors
*/
func (repository *RedisRepository) Save(context context.Context, email string, s *Set) error {

	// Use constants for key prefix
	key := fmt.Sprintf(constants.FavoritesKeyFormat, email)

	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("redis_favorites_encode_failed: %w", err)
	}

	// Favorites persist until cleared, no TTL
	if err := repository.client.Set(context, key, payload, 0).Err(); err != nil {
		return fmt.Errorf("redis_favorites_save_failed: %w", err)
	}

	return nil
}

/*
Clear removes the stored favorites set for an email.

Parameters:
  - context: context.Context
  - email: string (identity namespace)

Returns:
  - error: Connectivity errors
*/
func (repository *RedisRepository) Clear(context context.Context, email string) error {

	// Use constants for key prefix
	key := fmt.Sprintf(constants.FavoritesKeyFormat, email)

	if err := repository.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_favorites_clear_failed: %w", err)
	}

	return nil
}
