// Copyright (c) 2026 Smart Wardrobe. All rights reserved.
// Author: vigneshrv10

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/apperr"
	"github.com/vigneshrv10/AI-driven-smart-wardrobe/internal/platform/constants"
)

// RedisHandleStore implements HandleStore using Redis.
type RedisHandleStore struct {
	client *redis.Client
}

// NewHandleStore creates a new Redis-backed HandleStore.
func NewHandleStore(client *redis.Client) *RedisHandleStore {
	return &RedisHandleStore{client: client}
}

func handleKey(handle string) string {
	return constants.RedisPrefixSession + handle
}

/*
Set stores a session handle with its associated userID and [HandleTTL].

Parameters:
  - context: context.Context
  - handle: string
  - userID: string

Returns:
  - error: Execution errors
*/
func (store *RedisHandleStore) Set(context context.Context, handle, userID string) error {
	if err := store.client.Set(context, handleKey(handle), userID, HandleTTL).Err(); err != nil {
		return fmt.Errorf("redis_session_handle_set_failed: %w", err)
	}
	return nil
}

/*
Get retrieves the userID for a given handle.

Description: Returns apperr.NotFound if the handle is absent or expired.

Parameters:
  - context: context.Context
  - handle: string

Returns:
  - string: UserID
  - error: apperr.NotFound or connectivity errors
*/
func (store *RedisHandleStore) Get(context context.Context, handle string) (string, error) {
	userID, err := store.client.Get(context, handleKey(handle)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.NotFound("Session")
		}
		return "", fmt.Errorf("redis_session_handle_get_failed: %w", err)
	}
	return userID, nil
}

// Touch restarts the handle's TTL. An expired handle is left expired.
func (store *RedisHandleStore) Touch(context context.Context, handle string) error {
	if err := store.client.Expire(context, handleKey(handle), HandleTTL).Err(); err != nil {
		return fmt.Errorf("redis_session_handle_touch_failed: %w", err)
	}
	return nil
}

/*
Delete removes the handle from Redis.

Parameters:
  - context: context.Context
  - handle: string

Returns:
  - error: Deletion failures
*/
func (store *RedisHandleStore) Delete(context context.Context, handle string) error {
	if err := store.client.Del(context, handleKey(handle)).Err(); err != nil {
		return fmt.Errorf("redis_session_handle_delete_failed: %w", err)
	}
	return nil
}
