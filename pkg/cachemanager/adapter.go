package cachemanager

import (
	"context"
	"time"
)

// Cache is the redis tier shared by every API replica. Values are stored as
// JSON and decoded into the pointer the caller passes.
type Cache interface {
	Key(params ...string) Key
	GetDefaultTTL() time.Duration
	// Once decodes the stored value into value, running fn only on a miss.
	Once(ctx context.Context, key Key, value any, ttl time.Duration, fn Fn) error
	// Hydrate runs fn and overwrites the stored value.
	Hydrate(ctx context.Context, key Key, value any, ttl time.Duration, fn Fn) error
	RemoveValue(ctx context.Context, key Key, fn func(ctx context.Context) error) error
}
