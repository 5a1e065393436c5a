package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/unklstewy/airforcenone/internal/errors"
	"github.com/unklstewy/airforcenone/pkg/classify"
)

// EnvPrefix is the prefix for environment overrides, e.g. AIRFORCENONE_LOG_LEVEL.
const EnvPrefix = "AIRFORCENONE"

// Config represents the complete application configuration.
type Config struct {
	Source   SourceConfig   `mapstructure:"source"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Database DatabaseConfig `mapstructure:"database"`
	Geo      GeoConfig      `mapstructure:"geo"`
	Classify ClassifyConfig `mapstructure:"classify"`
	Rules    RulesConfig    `mapstructure:"rules"`
	Watch    WatchConfig    `mapstructure:"watch"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
}

// SourceConfig contains ADSB.One feed settings.
type SourceConfig struct {
	// BaseURL is the API root (default: "https://api.adsb.one")
	BaseURL string `mapstructure:"base_url"`

	// UserAgent identifies this client to the API
	UserAgent string `mapstructure:"user_agent"`

	// Timeout bounds each HTTP request
	Timeout time.Duration `mapstructure:"timeout"`

	// MinInterval is the minimum spacing between requests (the API allows 1 req/s)
	MinInterval time.Duration `mapstructure:"min_interval"`

	// MaxRetries is how many times a failed fetch is retried (0 = no retry)
	MaxRetries int `mapstructure:"max_retries"`
}

// CatalogConfig selects where known aircraft come from.
// With no path and no database, the built-in table is used.
type CatalogConfig struct {
	// Path is a plane-alert-db style CSV file
	Path string `mapstructure:"path"`

	// UseDatabase loads the registry from the known_aircraft table instead
	UseDatabase bool `mapstructure:"use_database"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	// Driver is the database driver (postgres, sqlite)
	Driver string `mapstructure:"driver"`

	// Host is the database server hostname
	Host string `mapstructure:"host"`

	// Port is the database server port
	Port int `mapstructure:"port"`

	// Database is the database name, or the file path for sqlite
	Database string `mapstructure:"database"`

	// Username for database authentication
	Username string `mapstructure:"username"`

	// Password for database authentication (should be loaded from environment)
	Password string `mapstructure:"password"`

	// SSLMode for PostgreSQL connections (disable, require, verify-ca, verify-full)
	SSLMode string `mapstructure:"ssl_mode"`

	// MaxOpenConns is the maximum number of open connections
	MaxOpenConns int `mapstructure:"max_open_conns"`

	// MaxIdleConns is the maximum number of idle connections
	MaxIdleConns int `mapstructure:"max_idle_conns"`
}

// GeoConfig controls overflight-country enrichment.
type GeoConfig struct {
	// Enabled turns on offline reverse geocoding
	Enabled bool `mapstructure:"enabled"`

	// CacheSize bounds the cache; 0 means unbounded
	CacheSize int `mapstructure:"cache_size"`
}

// ClassifyConfig controls tiering.
type ClassifyConfig struct {
	// Variant is "country" or "category"
	Variant string `mapstructure:"variant"`

	PriorityCountries  []string `mapstructure:"priority_countries"`
	TopCategories      []string `mapstructure:"top_categories"`
	HighCategories     []string `mapstructure:"high_categories"`
	MilitaryCategories []string `mapstructure:"military_categories"`

	// SampleSize is how many raw tracks to show when nothing matched (0 = none)
	SampleSize int `mapstructure:"sample_size"`
}

// RulesConfig points at an optional YAML callsign rule file.
type RulesConfig struct {
	Path string `mapstructure:"path"`
}

// WatchConfig controls the live poll loop used by watch and serve.
type WatchConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	// Port is the HTTP server port (default: 8080)
	Port string `mapstructure:"port"`

	// Host is the server bind address (default: "127.0.0.1").
	// The API has no authentication; bind wider only behind a trusted network.
	Host string `mapstructure:"host"`

	// CORSOrigins lists allowed browser origins for the API
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	// Level is debug, info, warn or error
	Level string `mapstructure:"level"`

	// Format is console or json
	Format string `mapstructure:"format"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			BaseURL:     "https://api.adsb.one",
			UserAgent:   "AirForceNone/2.0",
			Timeout:     30 * time.Second,
			MinInterval: time.Second,
			MaxRetries:  0,
		},
		Database: DatabaseConfig{
			Driver:       "postgres",
			Host:         "localhost",
			Port:         5432,
			Database:     "airforcenone",
			Username:     "airforcenone",
			SSLMode:      "disable",
			MaxOpenConns: 10,
			MaxIdleConns: 2,
		},
		Geo: GeoConfig{
			Enabled:   true,
			CacheSize: 4096,
		},
		Classify: ClassifyConfig{
			Variant:            "country",
			PriorityCountries:  clone(classify.DefaultPriorityCountries),
			TopCategories:      clone(classify.DefaultTopCategories),
			HighCategories:     clone(classify.DefaultHighCategories),
			MilitaryCategories: clone(classify.DefaultMilitaryCategories),
			SampleSize:         classify.DefaultSampleSize,
		},
		Watch: WatchConfig{
			Interval: 30 * time.Second,
		},
		Server: ServerConfig{
			Port:        "8080",
			Host:        "127.0.0.1",
			CORSOrigins: []string{"*"},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}

// Load reads configuration from a file (json, yaml or toml by extension)
// layered over DefaultConfig and under AIRFORCENONE_* environment variables.
// If path is empty, airforcenone.{yaml,json,toml} is searched in the working
// directory and $HOME/.config/airforcenone. A missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "stat config file %s", path)
		}
	} else {
		v.SetConfigName("airforcenone")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home + "/.config/airforcenone")
		}
	}

	if path == "" || v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.Wrap(err, "failed to read config file")
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// setDefaults registers every key so that environment overrides apply to it.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("source.base_url", d.Source.BaseURL)
	v.SetDefault("source.user_agent", d.Source.UserAgent)
	v.SetDefault("source.timeout", d.Source.Timeout)
	v.SetDefault("source.min_interval", d.Source.MinInterval)
	v.SetDefault("source.max_retries", d.Source.MaxRetries)

	v.SetDefault("catalog.path", d.Catalog.Path)
	v.SetDefault("catalog.use_database", d.Catalog.UseDatabase)

	v.SetDefault("database.driver", d.Database.Driver)
	v.SetDefault("database.host", d.Database.Host)
	v.SetDefault("database.port", d.Database.Port)
	v.SetDefault("database.database", d.Database.Database)
	v.SetDefault("database.username", d.Database.Username)
	v.SetDefault("database.password", d.Database.Password)
	v.SetDefault("database.ssl_mode", d.Database.SSLMode)
	v.SetDefault("database.max_open_conns", d.Database.MaxOpenConns)
	v.SetDefault("database.max_idle_conns", d.Database.MaxIdleConns)

	v.SetDefault("geo.enabled", d.Geo.Enabled)
	v.SetDefault("geo.cache_size", d.Geo.CacheSize)

	v.SetDefault("classify.variant", d.Classify.Variant)
	v.SetDefault("classify.priority_countries", d.Classify.PriorityCountries)
	v.SetDefault("classify.top_categories", d.Classify.TopCategories)
	v.SetDefault("classify.high_categories", d.Classify.HighCategories)
	v.SetDefault("classify.military_categories", d.Classify.MilitaryCategories)
	v.SetDefault("classify.sample_size", d.Classify.SampleSize)

	v.SetDefault("rules.path", d.Rules.Path)
	v.SetDefault("watch.interval", d.Watch.Interval)

	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.cors_origins", d.Server.CORSOrigins)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.Source.MinInterval <= 0 {
		return errors.New("source.min_interval must be greater than 0")
	}
	if c.Source.Timeout <= 0 {
		return errors.New("source.timeout must be greater than 0")
	}
	if c.Source.MaxRetries < 0 {
		return errors.New("source.max_retries must not be negative")
	}
	if c.Watch.Interval <= 0 {
		return errors.New("watch.interval must be greater than 0")
	}
	if c.Geo.CacheSize < 0 {
		return errors.New("geo.cache_size must not be negative")
	}

	switch strings.ToLower(c.Classify.Variant) {
	case "country", "category":
	default:
		return errors.Newf("invalid classify.variant: %s (must be country or category)", c.Classify.Variant)
	}

	switch strings.ToLower(c.Database.Driver) {
	case "postgres", "sqlite":
	default:
		return errors.Newf("invalid database.driver: %s (must be postgres or sqlite)", c.Database.Driver)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.Newf("invalid log level: %s (must be debug, info, warn, or error)", c.Log.Level)
	}

	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return errors.Newf("invalid log format: %s (must be console or json)", c.Log.Format)
	}

	return nil
}
