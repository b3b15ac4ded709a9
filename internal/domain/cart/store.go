// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
)

// Storage is the persistence port for cart state: a namespaced durable
// record holding an opaque string blob per session.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

// Store owns cart state for all sessions. Persistence goes through the
// injected Storage; when storage is unavailable the store degrades to a
// session-only in-memory cart and keeps working.
type Store struct {
	storage   Storage
	namespace string
	logger    *logrus.Logger

	mu       sync.Mutex
	fallback map[string][]LineItem
}

// NewStore creates a cart store backed by the given storage port
func NewStore(storage Storage, cfg *config.Config, logger *logrus.Logger) *Store {
	return &Store{
		storage:   storage,
		namespace: cfg.Cart.StorageNamespace,
		logger:    logger,
		fallback:  make(map[string][]LineItem),
	}
}

func (s *Store) key(sessionID string) string {
	return fmt.Sprintf("%s:%s", s.namespace, sessionID)
}

// Items returns the current line items for a session. A missing record or
// an unreadable blob yields an empty cart, never an error.
func (s *Store) Items(ctx context.Context, sessionID string) []LineItem {
	blob, ok, err := s.storage.Get(ctx, s.key(sessionID))
	if err != nil {
		s.logger.WithError(err).Warn("cart storage unavailable, using session-only cart")
		return s.fallbackItems(sessionID)
	}
	if !ok {
		return []LineItem{}
	}

	var lines []LineItem
	if err := json.Unmarshal([]byte(blob), &lines); err != nil {
		s.logger.WithError(err).Warn("discarding unreadable cart record")
		return []LineItem{}
	}
	return lines
}

// Add merges an item into the session's cart
func (s *Store) Add(ctx context.Context, sessionID string, item LineItem) []LineItem {
	return s.apply(ctx, sessionID, func(lines []LineItem) []LineItem {
		return Add(lines, item)
	})
}

// Remove deletes the line matching (productID, size); no-op if absent
func (s *Store) Remove(ctx context.Context, sessionID, productID, size string) []LineItem {
	return s.apply(ctx, sessionID, func(lines []LineItem) []LineItem {
		return Remove(lines, productID, size)
	})
}

// UpdateQuantity sets a line's quantity verbatim; see UpdateQuantity in
// state.go for the caller contract.
func (s *Store) UpdateQuantity(ctx context.Context, sessionID, productID, size string, quantity int) []LineItem {
	return s.apply(ctx, sessionID, func(lines []LineItem) []LineItem {
		return UpdateQuantity(lines, productID, size, quantity)
	})
}

// Clear empties the session's cart
func (s *Store) Clear(ctx context.Context, sessionID string) {
	if err := s.storage.Delete(ctx, s.key(sessionID)); err != nil {
		s.logger.WithError(err).Warn("cart storage unavailable, clearing session-only cart")
	}
	s.mu.Lock()
	delete(s.fallback, sessionID)
	s.mu.Unlock()
}

// apply loads the session's lines, transforms them and writes them back.
// Write failures fall back to the in-memory map for the session.
func (s *Store) apply(ctx context.Context, sessionID string, fn func([]LineItem) []LineItem) []LineItem {
	lines := fn(s.Items(ctx, sessionID))

	blob, err := json.Marshal(lines)
	if err != nil {
		// Line items always marshal; treat like a storage failure anyway
		s.logger.WithError(err).Error("failed to encode cart state")
		s.setFallback(sessionID, lines)
		return lines
	}

	if err := s.storage.Set(ctx, s.key(sessionID), string(blob)); err != nil {
		s.logger.WithError(err).Warn("cart storage unavailable, keeping session-only cart")
		s.setFallback(sessionID, lines)
		return lines
	}

	s.mu.Lock()
	delete(s.fallback, sessionID)
	s.mu.Unlock()
	return lines
}

func (s *Store) fallbackItems(sessionID string) []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]LineItem, len(s.fallback[sessionID]))
	copy(lines, s.fallback[sessionID])
	return lines
}

func (s *Store) setFallback(sessionID string, lines []LineItem) {
	s.mu.Lock()
	s.fallback[sessionID] = lines
	s.mu.Unlock()
}

// RedisStorage implements Storage on top of Redis with a per-record TTL
type RedisStorage struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStorage creates a Redis-backed cart storage
func NewRedisStorage(client *redis.Client, cfg *config.Config) *RedisStorage {
	return &RedisStorage{
		client: client,
		ttl:    cfg.Cart.TTL,
	}
}

func (r *RedisStorage) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *RedisStorage) Set(ctx context.Context, key string, value string) error {
	return r.client.Set(ctx, key, value, r.ttl).Err()
}

func (r *RedisStorage) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// MemoryStorage implements Storage in process memory. Used in tests and as
// a standalone fallback.
type MemoryStorage struct {
	mu      sync.Mutex
	records map[string]string
}

// NewMemoryStorage creates an empty in-memory storage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{records: make(map[string]string)}
}

func (m *MemoryStorage) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.records[key]
	return value, ok, nil
}

func (m *MemoryStorage) Set(ctx context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[key] = value
	return nil
}

func (m *MemoryStorage) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, key)
	return nil
}
