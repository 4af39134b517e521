package datausa

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultQueryTimeout = 30 * time.Second
	DefaultCacheSize    = 1024
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	cfg := DefaultConfig()
	if err = toml.NewDecoder(file).DisallowUnknownFields().Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultConfig is the configuration used for keys missing from the file.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  slog.LevelInfo,
			Format: "text",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Database: "datausa",
			PoolSize: 10,
			SSLMode:  "disable",
		},
		Cache: CacheConfig{
			Size: DefaultCacheSize,
		},
		Query: QueryConfig{
			Timeout: Duration(DefaultQueryTimeout),
		},
	}
}

type Config struct {
	Log   LogConfig   `toml:"log"`
	DB    DBConfig    `toml:"db"`
	Cache CacheConfig `toml:"cache"`
	Query QueryConfig `toml:"query"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

type DBConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	Database     string `toml:"database"`
	PoolSize     int    `toml:"pool_size"`
	MaxIdleConns int    `toml:"max_idle_conns"`
	MaxLifetime  int    `toml:"max_lifetime"`
	SSLMode      string `toml:"sslmode"`
}

type CacheConfig struct {
	// Size is the number of query results kept. Zero disables the cache.
	Size int `toml:"size"`
}

type QueryConfig struct {
	Timeout Duration `toml:"timeout"`
	// MaxLimit caps the number of rows a single query may return. Zero means
	// no cap.
	MaxLimit int `toml:"max_limit"`
}

// Duration decodes TOML strings such as "30s".
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}
