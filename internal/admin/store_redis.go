// Copyright (c) 2026 Drama Collection. All rights reserved.
// Author: dev@dramacollection.com

package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/dramacollection/storefront/internal/platform/constants"
	"github.com/redis/go-redis/v9"
)

// RedisElevationRepository persists elevation flags under
// "admin:elevated:<email>". Flags carry no TTL: elevation lasts for the
// whole identity tenure and is cleared explicitly on logout or identity
// switch, never by expiry mid-session.
type RedisElevationRepository struct {
	client *redis.Client
}

func NewRedisElevationRepository(client *redis.Client) *RedisElevationRepository {
	return &RedisElevationRepository{client: client}
}

func (repository *RedisElevationRepository) IsElevated(context context.Context, email string) (bool, error) {
	key := fmt.Sprintf(constants.AdminElevationKeyFormat, email)

	_, err := repository.client.Get(context, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis_elevation_get_failed: %w", err)
	}

	return true, nil
}

func (repository *RedisElevationRepository) SetElevated(context context.Context, email string) error {
	key := fmt.Sprintf(constants.AdminElevationKeyFormat, email)

	if err := repository.client.Set(context, key, "1", 0).Err(); err != nil {
		return fmt.Errorf("redis_elevation_set_failed: %w", err)
	}
	return nil
}

func (repository *RedisElevationRepository) ClearElevated(context context.Context, email string) error {
	key := fmt.Sprintf(constants.AdminElevationKeyFormat, email)

	if err := repository.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_elevation_clear_failed: %w", err)
	}
	return nil
}
