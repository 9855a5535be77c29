package fetchcache

import "time"

const (
	DefaultCacheTimeout   = 5 * time.Minute
	DefaultMaxRetries     = 3
	DefaultRequestTimeout = 10 * time.Second

	// baseBackoff is the wait before the first retry; it doubles per attempt.
	baseBackoff = time.Second
	// maxBackoffShift keeps baseBackoff<<shift inside int64 nanoseconds.
	maxBackoffShift = 32
)

// Config holds the manager-wide settings.
type Config struct {
	// CacheTimeout is the default TTL for entries fetched without an override.
	CacheTimeout time.Duration `json:"cache_timeout"`
	// MaxRetries is the number of retries after the first attempt fails.
	MaxRetries int `json:"max_retries"`
	// RequestTimeout bounds a single attempt.
	RequestTimeout time.Duration `json:"request_timeout"`
}

// DefaultConfig is the configuration used by the service when nothing is set.
func DefaultConfig() Config {
	return Config{
		CacheTimeout:   DefaultCacheTimeout,
		MaxRetries:     DefaultMaxRetries,
		RequestTimeout: DefaultRequestTimeout,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.CacheTimeout <= 0 {
		c.CacheTimeout = def.CacheTimeout
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = def.RequestTimeout
	}
	return c
}

// ConfigUpdate is a partial Config. Nil fields keep their current value.
type ConfigUpdate struct {
	CacheTimeout   *time.Duration
	MaxRetries     *int
	RequestTimeout *time.Duration
}

func (c Config) merge(u ConfigUpdate) Config {
	if u.CacheTimeout != nil && *u.CacheTimeout > 0 {
		c.CacheTimeout = *u.CacheTimeout
	}
	if u.MaxRetries != nil && *u.MaxRetries >= 0 {
		c.MaxRetries = *u.MaxRetries
	}
	if u.RequestTimeout != nil && *u.RequestTimeout > 0 {
		c.RequestTimeout = *u.RequestTimeout
	}
	return c
}
