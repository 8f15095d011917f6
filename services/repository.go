package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrNotCached is returned by Load when the key is absent or expired.
var ErrNotCached = errors.New("not_cached")

// SnapshotRepository is the key-value store for derived state: dashboard
// summaries, the hostel-settings mirror, anything the UI wants back fast. The
// reconciliation core never touches it; values stored here are always
// recomputable from the database.
type SnapshotRepository interface {
	Load(ctx context.Context, key string, out interface{}) error
	Save(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Clear(ctx context.Context, key string) error
}

// RedisRepository stores JSON-encoded snapshots in redis.
type RedisRepository struct {
	Client *redis.Client
	Prefix string
}

func NewRedisRepository(client *redis.Client, prefix string) *RedisRepository {
	return &RedisRepository{Client: client, Prefix: prefix}
}

func (r *RedisRepository) key(k string) string {
	if r.Prefix == "" {
		return k
	}
	return r.Prefix + ":" + k
}

func (r *RedisRepository) Load(ctx context.Context, key string, out interface{}) error {
	raw, err := r.Client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return ErrNotCached
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(raw), out)
}

func (r *RedisRepository) Save(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, r.key(key), raw, ttl).Err()
}

func (r *RedisRepository) Clear(ctx context.Context, key string) error {
	return r.Client.Del(ctx, r.key(key)).Err()
}

// MemoryRepository is the in-process fallback used when redis is not
// configured, and in tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	raw       []byte
	expiresAt time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[string]memoryEntry)}
}

func (m *MemoryRepository) Load(_ context.Context, key string, out interface{}) error {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok || (!entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt)) {
		return ErrNotCached
	}
	return json.Unmarshal(entry.raw, out)
}

func (m *MemoryRepository) Save(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	entry := memoryEntry{raw: raw}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	m.mu.Lock()
	m.entries[key] = entry
	m.mu.Unlock()
	return nil
}

func (m *MemoryRepository) Clear(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}
