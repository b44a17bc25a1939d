package main

import (
	"net/http"

	"github.com/gregjones/httpcache"
	"github.com/rcrowley/go-metrics"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"mirnaexplorer/cache"
	"mirnaexplorer/mirna"
)

// NewClient builds a miRNA client from configuration. The returned func
// releases any cache connection and must be called when done.
func NewClient(c ClientConfig, registry metrics.Registry, logger zerolog.Logger) (*mirna.Client, func(), error) {
	closer := func() {}

	opts := []mirna.Option{
		mirna.WithHTTPClient(&http.Client{Timeout: c.Timeout}),
		mirna.WithRegistry(registry),
		mirna.WithUserAgent(userAgent(c.UserAgent)),
	}
	if c.EmptyBearer {
		opts = append(opts, mirna.WithEmptyBearer())
	}

	switch c.Cache.Type {
	case CacheMemory:
		opts = append(opts, mirna.WithCache(httpcache.NewMemoryCache()))
	case CacheRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     c.Cache.Redis.Address,
			Password: c.Cache.Redis.Password,
			DB:       c.Cache.Redis.DB,
		})
		closer = func() {
			if err := rdb.Close(); err != nil {
				logger.Warn().Err(err).Msg("Failed to close redis client")
			}
		}
		opts = append(opts, mirna.WithCache(cache.NewRedis(rdb, c.Cache.Redis.Prefix, c.Cache.Redis.TTL, logger)))
	}

	client, err := mirna.New(c.BaseURL, opts...)
	if err != nil {
		closer()
		return nil, nil, err
	}
	return client, closer, nil
}

func userAgent(configured string) string {
	if configured != "" {
		return configured
	}
	return "mirnactl/" + version
}
