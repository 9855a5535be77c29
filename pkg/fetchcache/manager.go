// Package fetchcache deduplicates outbound reads by caching recent results
// in process, and retries failed fetches with exponential backoff.
//
// A Manager is built once at start-up and handed to every consumer:
//
//	m := fetchcache.New(fetchcache.Config{CacheTimeout: time.Minute})
//	events, err := fetchcache.Fetch(ctx, m, "events:list:music", func(ctx context.Context) ([]domain.Event, error) {
//		return repo.ListEvents(ctx, filter)
//	})
package fetchcache

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/IsaacDSC/eventory/pkg/ctxlogger"
	"github.com/benbjohnson/clock"
	"golang.org/x/sync/singleflight"
)

var (
	ErrEmptyKey       = errors.New("fetchcache: key must not be empty")
	ErrNilFetch       = errors.New("fetchcache: fetch function is nil")
	ErrNegativeTTL    = errors.New("fetchcache: ttl must not be negative")
	ErrRequestTimeout = errors.New("fetchcache: request timeout")
	ErrTypeMismatch   = errors.New("fetchcache: cached value has unexpected type")
)

// Fn produces the value for a key.
type Fn func(ctx context.Context) (any, error)

type entry struct {
	value     any
	timestamp time.Time
}

// Manager is a TTL cache keyed by string with a retrying fetch on miss.
// It is safe for concurrent use.
type Manager struct {
	mu      sync.Mutex
	entries map[string]entry
	cfg     Config

	clock clock.Clock
	group *singleflight.Group
}

// Option customizes a Manager.
type Option func(*Manager)

// WithClock replaces the wall clock, mostly for tests.
func WithClock(c clock.Clock) Option {
	return func(m *Manager) {
		if c != nil {
			m.clock = c
		}
	}
}

// WithSingleFlight makes concurrent misses on the same key share a single
// fetch. The context of the caller that started the fetch is the one used.
func WithSingleFlight() Option {
	return func(m *Manager) {
		m.group = &singleflight.Group{}
	}
}

// New builds a Manager. Zero durations in cfg take their defaults; a zero
// MaxRetries disables retries.
func New(cfg Config, opts ...Option) *Manager {
	m := &Manager{
		entries: make(map[string]entry),
		cfg:     cfg.withDefaults(),
		clock:   clock.New(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RetryDecider reports whether a failed attempt should be retried.
type RetryDecider func(err error) bool

func retryAll(error) bool { return true }

type fetchOptions struct {
	ttl     time.Duration
	hasTTL  bool
	retryIf RetryDecider
}

// FetchOption customizes a single GetCachedOrFetch call.
type FetchOption func(*fetchOptions)

// WithTTL overrides the default TTL for this lookup.
func WithTTL(ttl time.Duration) FetchOption {
	return func(o *fetchOptions) {
		o.ttl = ttl
		o.hasTTL = true
	}
}

// WithRetryIf limits retries to errors for which decide returns true.
// Without it every failure is retried.
func WithRetryIf(decide RetryDecider) FetchOption {
	return func(o *fetchOptions) {
		if decide != nil {
			o.retryIf = decide
		}
	}
}

// GetCachedOrFetch returns the value cached under key while it is younger
// than the TTL. Otherwise it runs fn through the retry wrapper, stores a
// successful result and returns it. Failures are never cached.
func (m *Manager) GetCachedOrFetch(ctx context.Context, key string, fn Fn, opts ...FetchOption) (any, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	if fn == nil {
		return nil, ErrNilFetch
	}

	o := fetchOptions{retryIf: retryAll}
	for _, opt := range opts {
		opt(&o)
	}
	if o.hasTTL && o.ttl < 0 {
		return nil, ErrNegativeTTL
	}

	m.mu.Lock()
	cfg := m.cfg
	ttl := cfg.CacheTimeout
	if o.hasTTL {
		ttl = o.ttl
	}
	if e, ok := m.entries[key]; ok && m.clock.Now().Sub(e.timestamp) < ttl {
		m.mu.Unlock()
		return e.value, nil
	}
	m.mu.Unlock()

	ctxlogger.GetLogger(ctx).Debug("Cache miss, fetching", "key", key)

	if m.group == nil {
		return m.fetchAndStore(ctx, key, fn, cfg, o.retryIf)
	}

	v, err, _ := m.group.Do(key, func() (any, error) {
		return m.fetchAndStore(ctx, key, fn, cfg, o.retryIf)
	})
	return v, err
}

func (m *Manager) fetchAndStore(ctx context.Context, key string, fn Fn, cfg Config, retryIf RetryDecider) (any, error) {
	v, err := m.fetchWithRetry(ctx, fn, cfg, retryIf)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	now := m.clock.Now()
	m.entries[key] = entry{value: v, timestamp: now}
	m.sweepLocked(now)
	m.mu.Unlock()

	return v, nil
}

// sweepLocked drops entries older than twice the default timeout,
// whatever TTL they were read with.
func (m *Manager) sweepLocked(now time.Time) {
	maxAge := 2 * m.cfg.CacheTimeout
	for k, e := range m.entries {
		if now.Sub(e.timestamp) > maxAge {
			delete(m.entries, k)
		}
	}
}

// Clear removes every entry.
func (m *Manager) Clear() {
	m.mu.Lock()
	clear(m.entries)
	m.mu.Unlock()
}

// Invalidate removes a single key.
func (m *Manager) Invalidate(key string) {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
}

// InvalidatePrefix removes every key starting with prefix and reports how
// many were dropped.
func (m *Manager) InvalidatePrefix(prefix string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for k := range m.entries {
		if strings.HasPrefix(k, prefix) {
			delete(m.entries, k)
			removed++
		}
	}
	return removed
}

// UpdateConfig merges u into the current configuration. Entries already
// cached are untouched; the new values apply from the next call.
func (m *Manager) UpdateConfig(u ConfigUpdate) Config {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cfg = m.cfg.merge(u)
	return m.cfg
}

func (m *Manager) Config() Config {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg
}

// Len reports the number of stored entries, expired ones included.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Fetch is the typed form of GetCachedOrFetch.
func Fetch[T any](ctx context.Context, m *Manager, key string, fn func(ctx context.Context) (T, error), opts ...FetchOption) (T, error) {
	var zero T
	v, err := m.GetCachedOrFetch(ctx, key, func(ctx context.Context) (any, error) {
		return fn(ctx)
	}, opts...)
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}

	typed, ok := v.(T)
	if !ok {
		return zero, ErrTypeMismatch
	}
	return typed, nil
}
