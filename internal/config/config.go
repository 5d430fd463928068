// Package config loads the service configuration from an optional YAML file
// and the process environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/valuin/domikado/pkg/allocation"
)

// Store drivers.
const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

type Config struct {
	Server   ServerConfig      `yaml:"server"`
	Store    StoreConfig       `yaml:"store"`
	LogLevel string            `yaml:"log_level"`
	Policy   allocation.Policy `yaml:"policy"`
}

type ServerConfig struct {
	Port           int           `yaml:"port"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	IdleTimeout    time.Duration `yaml:"idle_timeout"`
}

type StoreConfig struct {
	Driver        string        `yaml:"driver"`
	DataDir       string        `yaml:"data_dir"`
	PostgresDSN   string        `yaml:"postgres_dsn"`
	MongoURI      string        `yaml:"mongo_uri"`
	MongoDatabase string        `yaml:"mongo_database"`
	CacheTTL      time.Duration `yaml:"cache_ttl"`
}

// Default returns the configuration used when no file or environment
// override is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://127.0.0.1:3000",
			},
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Store: StoreConfig{
			Driver:        DriverFile,
			DataDir:       "data/provinces",
			MongoURI:      "mongodb://localhost:27017",
			MongoDatabase: "domikado",
			CacheTTL:      10 * time.Minute,
		},
		LogLevel: "info",
		Policy:   allocation.DefaultPolicy(),
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, eris.Wrapf(err, "reading config %s", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, eris.Wrapf(err, "parsing config %s", path)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.Port = getEnvAsInt("PORT", c.Server.Port)
	c.Store.Driver = getEnvWithDefault("STORE_DRIVER", c.Store.Driver)
	c.Store.DataDir = getEnvWithDefault("DATA_DIR", c.Store.DataDir)
	c.Store.PostgresDSN = getEnvWithDefault("DATABASE_URL", c.Store.PostgresDSN)
	c.Store.MongoURI = getEnvWithDefault("MONGO_URI", c.Store.MongoURI)
	c.Store.MongoDatabase = getEnvWithDefault("MONGO_DB_NAME", c.Store.MongoDatabase)
	c.LogLevel = getEnvWithDefault("LOG_LEVEL", c.LogLevel)
}

// Validate reports every problem in one error.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port %d is out of range", c.Server.Port))
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.IdleTimeout <= 0 {
		errs = append(errs, "server timeouts must be positive")
	}

	switch c.Store.Driver {
	case DriverFile:
		if c.Store.DataDir == "" {
			errs = append(errs, "store.data_dir is required for the file driver")
		}
	case DriverPostgres:
		if c.Store.PostgresDSN == "" {
			errs = append(errs, "store.postgres_dsn (or DATABASE_URL) is required for the postgres driver")
		}
	case DriverMongo:
		if c.Store.MongoURI == "" || c.Store.MongoDatabase == "" {
			errs = append(errs, "store.mongo_uri and store.mongo_database are required for the mongo driver")
		}
	default:
		errs = append(errs, fmt.Sprintf("store.driver %q must be one of file, postgres, mongo", c.Store.Driver))
	}
	if c.Store.CacheTTL < 0 {
		errs = append(errs, "store.cache_ttl must not be negative")
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Sprintf("log_level %q is not a valid level", c.LogLevel))
	}

	if err := c.Policy.Validate(); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return eris.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Server.Port)
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
