package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/einsteinmuna/dialoguedesk/internal/domain/entities"
	"github.com/einsteinmuna/dialoguedesk/pkg/config"
)

// NewRedisClient creates a Redis client and verifies connectivity
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// RedisHistory stores recent conversation turns in bounded Redis lists.
// Only the conversational responder reads this; record lookups always
// re-query the store.
type RedisHistory struct {
	client   *redis.Client
	maxTurns int
	ttl      time.Duration
}

// NewRedisHistory creates a Redis-backed chat history
func NewRedisHistory(client *redis.Client, maxTurns int, ttl time.Duration) *RedisHistory {
	if maxTurns <= 0 {
		maxTurns = 20
	}
	return &RedisHistory{
		client:   client,
		maxTurns: maxTurns,
		ttl:      ttl,
	}
}

func historyKey(conversationID string) string {
	return "chat:history:" + conversationID
}

// Append records one turn, trimming the list to the configured bound
func (h *RedisHistory) Append(ctx context.Context, conversationID string, turn entities.ChatTurn) error {
	b, err := json.Marshal(turn)
	if err != nil {
		return err
	}

	key := historyKey(conversationID)
	pipe := h.client.TxPipeline()
	pipe.RPush(ctx, key, b)
	pipe.LTrim(ctx, key, int64(-h.maxTurns), -1)
	if h.ttl > 0 {
		pipe.Expire(ctx, key, h.ttl)
	}
	_, err = pipe.Exec(ctx)
	return err
}

// Recent returns up to n most recent turns, oldest first
func (h *RedisHistory) Recent(ctx context.Context, conversationID string, n int) ([]entities.ChatTurn, error) {
	if n <= 0 || n > h.maxTurns {
		n = h.maxTurns
	}

	raw, err := h.client.LRange(ctx, historyKey(conversationID), int64(-n), -1).Result()
	if err != nil {
		return nil, err
	}

	turns := make([]entities.ChatTurn, 0, len(raw))
	for _, item := range raw {
		var turn entities.ChatTurn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			continue
		}
		turns = append(turns, turn)
	}
	return turns, nil
}
