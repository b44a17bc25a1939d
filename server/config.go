package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/palantir/go-baseapp/baseapp"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server  baseapp.HTTPConfig    `yaml:"server"`
	Logging baseapp.LoggingConfig `yaml:"logging"`
	Auth    AuthConfig            `yaml:"auth"`

	// CacheMaxAge is advertised to clients in Cache-Control. Zero disables caching.
	CacheMaxAge time.Duration `yaml:"cache_max_age"`

	FixturesPath string   `yaml:"fixtures_path"`
	Fixtures     Fixtures `yaml:"fixtures"`
}

type AuthConfig struct {
	// Tokens accepted as bearer credentials. Empty leaves the API open.
	Tokens []string `yaml:"tokens"`
}

func ReadConfig(path string) (*Config, error) {
	var c Config

	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed reading server config file: %s", path)
	}

	if err := yaml.UnmarshalStrict(bytes, &c); err != nil {
		return nil, errors.Wrap(err, "failed parsing configuration file")
	}

	// Set defaults if not specified
	if c.Logging.Level == "" {
		c.Logging.Level = "INFO"
	}
	if c.Server.Address == "" {
		c.Server.Address = "127.0.0.1"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}

	// Fixture files are resolved relative to the config file
	if c.FixturesPath != "" {
		fixturesPath := c.FixturesPath
		if !filepath.IsAbs(fixturesPath) {
			fixturesPath = filepath.Join(filepath.Dir(path), fixturesPath)
		}

		extra, err := LoadFixtures(fixturesPath)
		if err != nil {
			return nil, err
		}
		c.Fixtures.Merge(extra)
	}

	return &c, nil
}
