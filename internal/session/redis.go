package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/franciscosanchezn/gin-pizza-designer/internal/models"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each session order as a redis list of JSON encoded designs
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a RedisStore; a zero ttl keeps orders until cleared
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func designsKey(sessionID string) string {
	return fmt.Sprintf("session:%s:order:designs", sessionID)
}

func (s *RedisStore) Order(ctx context.Context, sessionID string) (*models.Order, error) {
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}

	raw, err := s.client.LRange(ctx, designsKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get session order: %w", err)
	}

	order := models.NewOrder()
	for _, item := range raw {
		var design models.Pizza
		if err := json.Unmarshal([]byte(item), &design); err != nil {
			return nil, fmt.Errorf("invalid design in session %s: %w", sessionID, err)
		}
		order.AddDesign(design)
	}
	return order, nil
}

func (s *RedisStore) AddDesign(ctx context.Context, sessionID string, design models.Pizza) error {
	if sessionID == "" {
		return ErrInvalidSessionID
	}

	payload, err := json.Marshal(design)
	if err != nil {
		return fmt.Errorf("failed to encode design: %w", err)
	}

	key := designsKey(sessionID)
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, payload)
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to add design to session order: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrInvalidSessionID
	}

	if err := s.client.Del(ctx, designsKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear session order: %w", err)
	}
	return nil
}

// Close releases the underlying redis client
func (s *RedisStore) Close() error {
	return s.client.Close()
}
