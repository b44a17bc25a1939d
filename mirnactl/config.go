package main

import (
	"os"
	"strings"
	"time"

	"github.com/palantir/go-baseapp/baseapp"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"mirnaexplorer/mirna"
)

type Config struct {
	Client  ClientConfig          `yaml:"client"`
	Logging baseapp.LoggingConfig `yaml:"logging"`
}

type ClientConfig struct {
	BaseURL string `yaml:"base_url"`
	// Timeout bounds each request. Zero means no timeout.
	Timeout     time.Duration `yaml:"timeout"`
	UserAgent   string        `yaml:"user_agent"`
	EmptyBearer bool          `yaml:"empty_bearer"`
	Concurrency int           `yaml:"concurrency"`
	Cache       CacheConfig   `yaml:"cache"`
}

type CacheConfig struct {
	// Type is one of none, memory or redis
	Type  string      `yaml:"type"`
	Redis RedisConfig `yaml:"redis"`
}

type RedisConfig struct {
	Address  string        `yaml:"address"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	Prefix   string        `yaml:"prefix"`
	TTL      time.Duration `yaml:"ttl"`
}

const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// ReadConfig loads the configuration at path. An empty path yields the defaults.
func ReadConfig(path string) (*Config, error) {
	var c Config

	if path != "" {
		bytes, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed reading config file: %s", path)
		}

		if err := yaml.UnmarshalStrict(bytes, &c); err != nil {
			return nil, errors.Wrap(err, "failed parsing configuration file")
		}
	}

	// Set defaults if not specified
	if c.Logging.Level == "" {
		c.Logging.Level = "INFO"
	}
	if c.Client.BaseURL == "" {
		c.Client.BaseURL = mirna.DefaultBaseURL
	}
	if c.Client.Concurrency <= 0 {
		c.Client.Concurrency = 8
	}
	if c.Client.Cache.Type == "" {
		c.Client.Cache.Type = CacheNone
	}
	if c.Client.Cache.Redis.Address == "" {
		c.Client.Cache.Redis.Address = "localhost:6379"
	}
	if c.Client.Cache.Redis.Prefix == "" {
		c.Client.Cache.Redis.Prefix = "mirna:"
	}

	c.Client.Cache.Type = strings.ToLower(c.Client.Cache.Type)
	switch c.Client.Cache.Type {
	case CacheNone, CacheMemory, CacheRedis:
	default:
		return nil, errors.Errorf("unknown cache type %q", c.Client.Cache.Type)
	}

	return &c, nil
}
