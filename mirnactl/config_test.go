package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rcrowley/go-metrics"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mirnaexplorer/mirna"
)

func TestReadConfigDefaults(t *testing.T) {
	c, err := ReadConfig("")
	require.NoError(t, err)

	assert.Equal(t, mirna.DefaultBaseURL, c.Client.BaseURL)
	assert.Equal(t, time.Duration(0), c.Client.Timeout)
	assert.Equal(t, 8, c.Client.Concurrency)
	assert.Equal(t, CacheNone, c.Client.Cache.Type)
	assert.Equal(t, "INFO", c.Logging.Level)
}

func TestReadConfigFile(t *testing.T) {
	c, err := ReadConfig(filepath.Join("testdata", "mirnactl.yml"))
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:9090/api", c.Client.BaseURL)
	assert.Equal(t, 5*time.Second, c.Client.Timeout)
	assert.Equal(t, 4, c.Client.Concurrency)
	assert.Equal(t, CacheRedis, c.Client.Cache.Type)
	assert.Equal(t, "redis:6379", c.Client.Cache.Redis.Address)
	assert.Equal(t, "mirna:", c.Client.Cache.Redis.Prefix)
	assert.Equal(t, 10*time.Minute, c.Client.Cache.Redis.TTL)
	assert.Equal(t, "debug", c.Logging.Level)
	assert.True(t, c.Logging.Pretty)
}

func TestReadConfigUnknownCache(t *testing.T) {
	_, err := ReadConfig(filepath.Join("testdata", "bad_cache.yml"))
	assert.ErrorContains(t, err, `unknown cache type "disk"`)
}

func TestExampleConfig(t *testing.T) {
	c, err := ReadConfig("mirnactl.example.yml")
	require.NoError(t, err)
	assert.Equal(t, mirna.DefaultBaseURL, c.Client.BaseURL)
}

func TestNewClient(t *testing.T) {
	for _, cacheType := range []string{CacheNone, CacheMemory, CacheRedis} {
		t.Run(cacheType, func(t *testing.T) {
			c, err := ReadConfig("")
			require.NoError(t, err)
			c.Client.Cache.Type = cacheType

			client, closeClient, err := NewClient(c.Client, metrics.NewRegistry(), zerolog.Nop())
			require.NoError(t, err)
			defer closeClient()

			assert.Equal(t, mirna.DefaultBaseURL, client.BaseURL())
		})
	}
}

func TestUserAgent(t *testing.T) {
	assert.Equal(t, "mirnactl/"+version, userAgent(""))
	assert.Equal(t, "custom/1.0", userAgent("custom/1.0"))
}
