package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"whatameating/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisAuditStore appends access log entries to a Redis stream. Stream entries
// are never rewritten, so the stream acts as an append-only keyed log.
type RedisAuditStore struct {
	client *redis.Client
	stream string
}

func NewRedisAuditStore(client *redis.Client, stream string) *RedisAuditStore {
	return &RedisAuditStore{
		client: client,
		stream: stream,
	}
}

// Append writes the entry and returns the stream id Redis assigned to it.
func (s *RedisAuditStore) Append(ctx context.Context, entry entity.AuditLogEntry) (string, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	id, err := s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		Values: auditFields(entry),
	}).Result()
	if err != nil {
		return "", fmt.Errorf("xadd %s: %w", s.stream, err)
	}
	return id, nil
}

func auditFields(e entity.AuditLogEntry) map[string]any {
	return map[string]any{
		"id":       e.ID,
		"ip":       e.IP,
		"initTime": formatTime(e.InitTime),
		"size":     strconv.Itoa(e.Size),
		"compTime": formatTime(e.CompTime),
		"desc":     e.Desc,
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
