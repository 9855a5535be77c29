package cachemanager

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// Fn defines a function type that takes a context and returns any value and an error.
type Fn func(ctx context.Context) (any, error)

// Key represents a cache key as a string.
type Key string

// String returns the string representation of the Key.
func (k Key) String() string {
	return string(k)
}

// Strategy provides caching methods using a Redis client.
type Strategy struct {
	appPrefix  string
	defaultTTL time.Duration
	client     *redis.Client
}

var _ Cache = (*Strategy)(nil)

// NewStrategy creates a new Strategy with the given Redis client.
func NewStrategy(appPrefix string, defaultTTL time.Duration, client *redis.Client) *Strategy {
	return &Strategy{appPrefix: appPrefix, defaultTTL: defaultTTL, client: client}
}

// Key joins the app prefix and params with ":". Empty params are skipped.
func (s Strategy) Key(params ...string) Key {
	parts := make([]string, 0, len(params)+1)
	if s.appPrefix != "" {
		parts = append(parts, s.appPrefix)
	}
	for _, p := range params {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return Key(strings.Join(parts, ":"))
}

// GetDefaultTTL for cache entries, set from CACHE_DEFAULT_TTL.
func (s Strategy) GetDefaultTTL() time.Duration {
	return s.defaultTTL
}

// Hydrate executes the provided function, stores its result in the cache, and unmarshals it into value.
// It always refreshes the cache with the latest value.
func (s Strategy) Hydrate(ctx context.Context, key Key, value any, ttl time.Duration, fn Fn) error {
	v, err := fn(ctx)
	if err != nil {
		return fmt.Errorf("error executing function for key %s: %w", key.String(), err)
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("error marshalling value for key %s: %w", key.String(), err)
	}

	if err := s.client.Set(ctx, key.String(), b, ttl).Err(); err != nil {
		return fmt.Errorf("error setting value for key %s: %w", key.String(), err)
	}

	if err := json.Unmarshal(b, value); err != nil {
		return fmt.Errorf("error unmarshalling value for key %s: %w", key.String(), err)
	}

	return nil
}

// Once retrieves the value from the cache if present, otherwise executes the function, stores, and returns the result.
// It only executes the function if the cache is missing.
func (s Strategy) Once(ctx context.Context, key Key, value any, ttl time.Duration, fn Fn) error {
	v, err := s.client.Get(ctx, key.String()).Bytes()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("error getting value for key %s: %w", key.String(), err)
	}

	if err == nil {
		if err := json.Unmarshal(v, value); err != nil {
			return fmt.Errorf("error unmarshalling value for key %s: %w", key.String(), err)
		}

		return nil
	}

	return s.Hydrate(ctx, key, value, ttl, fn)
}

// RemoveValue runs fn and drops key once it succeeds.
func (s Strategy) RemoveValue(ctx context.Context, key Key, fn func(ctx context.Context) error) error {
	if fn != nil {
		if err := fn(ctx); err != nil {
			return fmt.Errorf("error executing function for key %s: %w", key.String(), err)
		}
	}

	if err := s.client.Del(ctx, key.String()).Err(); err != nil {
		return fmt.Errorf("error removing key %s: %w", key.String(), err)
	}

	return nil
}
