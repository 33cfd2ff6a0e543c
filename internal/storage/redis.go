package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"hitman/pkg/game"
)

const savePrefix = "save:"

// RedisStore implements the Store interface using Redis
type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
}

// Ensure RedisStore implements Store interface
var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a new Redis store from a redis:// URL
func NewRedisStore(redisURL string, logger *slog.Logger) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	return &RedisStore{
		client: redis.NewClient(opt),
		logger: logger,
	}, nil
}

func (r *RedisStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup)
func (r *RedisStore) WaitForConnection(ctx context.Context) error {
	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}

func (r *RedisStore) SaveGame(ctx context.Context, doc *game.SaveDoc) error {
	data, err := json.Marshal(doc)
	if err != nil {
		r.logger.Error("Failed to marshal save", "uuid", doc.ID, "error", err)
		return fmt.Errorf("failed to marshal save: %w", err)
	}

	key := savePrefix + doc.ID.String()
	if err := r.client.Set(ctx, key, string(data), 0).Err(); err != nil {
		r.logger.Error("Failed to write save", "uuid", doc.ID, "error", err)
		return fmt.Errorf("failed to write save: %w", err)
	}
	return nil
}

func (r *RedisStore) LoadGame(ctx context.Context, id uuid.UUID) (*game.SaveDoc, error) {
	key := savePrefix + id.String()
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			r.logger.Warn("Save not found", "uuid", id)
			return nil, nil
		}
		r.logger.Error("Failed to read save", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to read save: %w", err)
	}

	var doc game.SaveDoc
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		r.logger.Error("Failed to unmarshal save", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to unmarshal save: %w", err)
	}
	return &doc, nil
}

func (r *RedisStore) ListGames(ctx context.Context) ([]SaveInfo, error) {
	var infos []SaveInfo
	iter := r.client.Scan(ctx, 0, savePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		id, err := uuid.Parse(strings.TrimPrefix(iter.Val(), savePrefix))
		if err != nil {
			r.logger.Warn("Skipping malformed save key", "key", iter.Val())
			continue
		}
		doc, err := r.LoadGame(ctx, id)
		if err != nil || doc == nil {
			continue
		}
		infos = append(infos, infoFor(doc))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan saves: %w", err)
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].SavedAt.After(infos[j].SavedAt) })
	return infos, nil
}

func (r *RedisStore) DeleteGame(ctx context.Context, id uuid.UUID) error {
	key := savePrefix + id.String()
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Failed to delete save", "uuid", id, "error", err)
		return fmt.Errorf("failed to delete save: %w", err)
	}
	return nil
}
