package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "leasehub/internal/errors"
)

// Store is the key/value surface the services depend on.
// A missing key reads as (nil, nil).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// StateStore is a Store for state that must not be lost silently, such as
// sessions and wizard progress. Backend failures are reported, and SetNX
// claims a key only when it is absent.
type StateStore interface {
	Store
	SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)
}

// Client wraps redis.Client but fails safe by swallowing connectivity errors.
type Client struct {
	client *redis.Client
}

var _ Store = (*Client)(nil)

// New creates a new Redis client.
func New(addr, password string, db int) *Client {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Client{client: redis.NewClient(opts)}
}

// Ping checks connectivity. Unlike the data methods it reports the error.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return fmt.Errorf("redis client not configured")
	}
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying connections.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Get returns value or nil if missing or redis unavailable.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		// fail safe: behave like cache miss
		return nil, nil
	}
	return res, nil
}

// Set stores value with TTL, ignoring redis errors.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		// fail safe: ignore redis errors
		return nil
	}
	return nil
}

// Delete removes a key, ignoring redis errors.
func (c *Client) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return nil
	}
	return nil
}

// Strict returns a view of the same connection that reports redis failures
// instead of treating them as misses.
func (c *Client) Strict() *Strict {
	if c == nil {
		return &Strict{}
	}
	return &Strict{client: c.client}
}

// Strict is the failure-reporting view of Client. Errors wrap
// apperrors.ErrStoreUnavailable.
type Strict struct {
	client *redis.Client
}

var _ StateStore = (*Strict)(nil)

func storeError(op, key string, err error) error {
	return fmt.Errorf("redis %s %s: %w: %w", op, key, apperrors.ErrStoreUnavailable, err)
}

var errNotConfigured = errors.New("redis client not configured")

// Get returns value, nil if missing, or the redis error.
func (s *Strict) Get(ctx context.Context, key string) ([]byte, error) {
	if s.client == nil {
		return nil, storeError("get", key, errNotConfigured)
	}
	res, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError("get", key, err)
	}
	return res, nil
}

// Set stores value with TTL.
func (s *Strict) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if s.client == nil {
		return storeError("set", key, errNotConfigured)
	}
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return storeError("set", key, err)
	}
	return nil
}

// Delete removes a key.
func (s *Strict) Delete(ctx context.Context, key string) error {
	if s.client == nil {
		return storeError("del", key, errNotConfigured)
	}
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return storeError("del", key, err)
	}
	return nil
}

// SetNX stores value only when key is absent and reports whether it did.
func (s *Strict) SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	if s.client == nil {
		return false, storeError("setnx", key, errNotConfigured)
	}
	ok, err := s.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return false, storeError("setnx", key, err)
	}
	return ok, nil
}

// Memory is an in-process Store for local runs without Redis and for tests.
type Memory struct {
	mu    sync.Mutex
	items map[string]memoryItem
	now   func() time.Time
}

type memoryItem struct {
	value   []byte
	expires time.Time
}

var _ StateStore = (*Memory)(nil)

// NewMemory creates an empty in-process store.
func NewMemory() *Memory {
	return &Memory{items: make(map[string]memoryItem), now: time.Now}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[key]
	if !ok {
		return nil, nil
	}
	if !it.expires.IsZero() && !m.now().Before(it.expires) {
		delete(m.items, key)
		return nil, nil
	}
	out := make([]byte, len(it.value))
	copy(out, it.value)
	return out, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	it := memoryItem{value: append([]byte(nil), value...)}
	if ttl > 0 {
		it.expires = m.now().Add(ttl)
	}
	m.items[key] = it
	return nil
}

func (m *Memory) SetNX(_ context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if it, ok := m.items[key]; ok && (it.expires.IsZero() || m.now().Before(it.expires)) {
		return false, nil
	}
	it := memoryItem{value: append([]byte(nil), value...)}
	if ttl > 0 {
		it.expires = m.now().Add(ttl)
	}
	m.items[key] = it
	return true, nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// GetJSON decodes the value at key into dest. It reports false on a miss.
func GetJSON(ctx context.Context, s Store, key string, dest any) (bool, error) {
	data, err := s.Get(ctx, key)
	if err != nil || data == nil {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// SetJSON encodes value and stores it at key.
func SetJSON(ctx context.Context, s Store, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, payload, ttl)
}

// QueryKey derives a stable key from prefix and query parameters, independent
// of parameter order.
func QueryKey(prefix string, q url.Values) string {
	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for i, k := range keys {
		if i > 0 {
			builder.WriteString(":")
		}
		builder.WriteString(k)
		builder.WriteString("=")
		builder.WriteString(strings.Join(q[k], ","))
	}

	hash := md5.Sum([]byte(builder.String()))
	return prefix + ":" + hex.EncodeToString(hash[:])
}
