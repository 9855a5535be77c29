package cfg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", c.ApiPort)
	assert.Equal(t, "eventory", c.ConfigDatabase.DbName)
	assert.Equal(t, DriverMongo, c.ConfigDatabase.Driver)
	assert.Equal(t, "admin", c.Admin.User)
	assert.Empty(t, c.Admin.Password)
	assert.Equal(t, 10*time.Minute, c.Cache.DefaultTTL.Std())
	assert.Equal(t, AsynqQueues{"critical": 6, "default": 3, "low": 1}, c.AsynqConfig.Queues)

	fc := c.FetchCache.ToConfig()
	assert.Equal(t, 5*time.Minute, fc.CacheTimeout)
	assert.Equal(t, 3, fc.MaxRetries)
	assert.Equal(t, 10*time.Second, fc.RequestTimeout)
	assert.False(t, c.FetchCache.SingleFlight)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("FETCH_CACHE_TIMEOUT", "1m30s")
	t.Setenv("FETCH_MAX_RETRIES", "0")
	t.Setenv("FETCH_SINGLE_FLIGHT", "true")
	t.Setenv("WQ_QUEUES", `{"critical":2,"default":1,"notifications":4}`)

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", c.ApiPort)
	assert.Equal(t, 90*time.Second, c.FetchCache.CacheTimeout.Std())
	assert.Equal(t, 0, c.FetchCache.MaxRetries)
	assert.True(t, c.FetchCache.SingleFlight)
	assert.Equal(t, 4, c.AsynqConfig.Queues["notifications"])
}

func TestLoad_InvalidQueues(t *testing.T) {
	t.Run("missing default", func(t *testing.T) {
		t.Setenv("WQ_QUEUES", `{"critical":1}`)
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("zero weight", func(t *testing.T) {
		t.Setenv("WQ_QUEUES", `{"critical":0,"default":1}`)
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("not json", func(t *testing.T) {
		t.Setenv("WQ_QUEUES", `critical=1`)
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestSetConfig(t *testing.T) {
	SetConfig(Config{ApiPort: "1234"})
	assert.Equal(t, "1234", Get().ApiPort)
}

func TestLoad_Driver(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		t.Setenv("DB_DRIVER", DriverMemory)
		c, err := Load()
		require.NoError(t, err)
		assert.Equal(t, DriverMemory, c.ConfigDatabase.Driver)
	})

	t.Run("unknown", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "pg")
		_, err := Load()
		assert.ErrorContains(t, err, "DB_DRIVER")
	})
}
