// Copyright (c) 2026 Drama Collection. All rights reserved.
// Author: dev@dramacollection.com

package cart

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
// identity under "cart:<email>".
type RedisRepository struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisRepository creates a new Redis-backed cart Repository.
func NewRedisRepository(client *redis.Client, logger *slog.Logger) *RedisRepository {
	return &RedisRepository{client: client, logger: logger}
}

/*
Load fetches and decodes the cart stored for an email.

Description: A missing key yields an empty cart, not an error. A payload
that fails to decode is discarded with a warning and also yields an empty
cart: a corrupt cart must never lock an identity out of shopping.

Parameters:
  - context: context.Context
  - email: string (identity namespace)

Returns:
  - *Cart: Sanitized cart (invalid lines filtered out)
  - error: Connectivity errors only
*/
func (repository *RedisRepository) Load(context context.Context, email string) (*Cart, error) {

	// Use constants for key prefix
	key := fmt.Sprintf(constants.CartKeyFormat, email)

	payload, err := repository.client.Get(context, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &Cart{}, nil
		}
		return nil, fmt.Errorf("redis_cart_load_failed: %w", err)
	}

	var stored Cart
	if err := json.Unmarshal(payload, &stored); err != nil {
		repository.logger.Warn("cart_payload_corrupt", slog.String("email", email), slog.String("error", err.Error()))
		return &Cart{}, nil
	}

	// Drop entries that violate the cart invariants
	stored.Lines = Sanitize(stored.Lines)
	return &stored, nil
}

/*
Save overwrites the stored cart for an email.

Parameters:
  - context: context.Context
  - email: string (identity namespace)
  - c: *Cart

Returns:
  - error: Encoding or connectivity errors
*/
func (repository *RedisRepository) Save(context context.Context, email string, c *Cart) error {

	// Use constants for key prefix
	key := fmt.Sprintf(constants.CartKeyFormat, email)

	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("redis_cart_encode_failed: %w", err)
	}

	// Carts persist until cleared, no TTL
	if err := repository.client.Set(context, key, payload, 0).Err(); err != nil {
		return fmt.Errorf("redis_cart_save_failed: %w", err)
	}

	return nil
}

/*
Clear removes the stored cart for an email.

Parameters:
  - context: context.Context
  - email: string (identity namespace)

Returns:
  - error: Connectivity errors
*/
func (repository *RedisRepository) Clear(context context.Context, email string) error {

	// Use constants for key prefix
	key := fmt.Sprintf(constants.CartKeyFormat, email)

	if err := repository.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_cart_clear_failed: %w", err)
	}

	return nil
}
