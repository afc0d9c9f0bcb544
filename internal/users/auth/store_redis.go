// Copyright (c) 2026 Vestnik MIIGAiK. All rights reserved.

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/miigaik/vestnik/internal/platform/apperr"
	"github.com/miigaik/vestnik/internal/platform/constants"
)

// RedisSessionRepository implements SessionRepository using Redis.
//
// Each session is stored under its refresh token hash with a TTL equal to
// the remaining token lifetime, plus a per-user index set so that all of an
// account's sessions can be revoked at once.
type RedisSessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a new Redis-backed SessionRepository.
func NewSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

func sessionKey(tokenHash string) string {
	return constants.RedisPrefixSession + tokenHash
}

func userIndexKey(userID string) string {
	return constants.RedisPrefixSession + "user:" + userID
}

/*
Create stores a session keyed by its refresh token hash.

Description: The TTL is derived from the session's ExpiresAt, so Redis
enforces expiry without any cleanup job. The token hash is also added to
the account's session index for bulk revocation.

Parameters:
  - context: context.Context
  - tokenHash: string
  - session: *Session

Returns:
  - error: Marshalling or storage failures
*/
func (repository *RedisSessionRepository) Create(context context.Context, tokenHash string, session *Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("redis_session_create_failed: session already expired")
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("redis_session_marshal_failed: %w", err)
	}

	if err := repository.client.Set(context, sessionKey(tokenHash), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}

	// Index entries outlive their sessions by design; revocation tolerates
	// hashes that no longer resolve.
	indexKey := userIndexKey(session.UserID)
	if err := repository.client.SAdd(context, indexKey, tokenHash).Err(); err != nil {
		return fmt.Errorf("redis_session_index_failed: %w", err)
	}
	_ = repository.client.Expire(context, indexKey, RefreshTokenTTL).Err()

	return nil
}

/*
FindByTokenHash returns the active session for a token hash.

Description: An expired session has already been evicted by Redis, so a miss
and an expiry are the same apperr.NotFound outcome.

Parameters:
  - context: context.Context
  - tokenHash: string

Returns:
  - *Session: Hydrated session metadata
  - error: apperr.NotFound or connectivity errors
*/
func (repository *RedisSessionRepository) FindByTokenHash(context context.Context, tokenHash string) (*Session, error) {
	payload, err := repository.client.Get(context, sessionKey(tokenHash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFound("Session not found or expired")
		}
		return nil, fmt.Errorf("redis_session_get_failed: %w", err)
	}

	session := &Session{}
	if err := json.Unmarshal(payload, session); err != nil {
		return nil, fmt.Errorf("redis_session_unmarshal_failed: %w", err)
	}

	return session, nil
}

/*
Delete revokes the session for a token hash.

Description: Deleting an absent session is a no-op, which makes logout
idempotent.

Parameters:
  - context: context.Context
  - tokenHash: string

Returns:
  - error: Deletion failures
*/
func (repository *RedisSessionRepository) Delete(context context.Context, tokenHash string) error {
	if err := repository.client.Del(context, sessionKey(tokenHash)).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}
	return nil
}

/*
DeleteAllForUser revokes every session belonging to the account.

Description: Walks the account's session index and removes each session key,
then drops the index itself. Used after password changes.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - error: Bulk revocation failures
*/
func (repository *RedisSessionRepository) DeleteAllForUser(context context.Context, userID string) error {
	indexKey := userIndexKey(userID)

	hashes, err := repository.client.SMembers(context, indexKey).Result()
	if err != nil {
		return fmt.Errorf("redis_session_index_read_failed: %w", err)
	}

	keys := make([]string, 0, len(hashes)+1)
	for _, hash := range hashes {
		keys = append(keys, sessionKey(hash))
	}
	keys = append(keys, indexKey)

	if err := repository.client.Del(context, keys...).Err(); err != nil {
		return fmt.Errorf("redis_session_bulk_delete_failed: %w", err)
	}
	return nil
}
