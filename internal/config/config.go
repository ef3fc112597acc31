// Package config loads the global ~/.chatzy/config.toml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Backend names accepted by [store].backend.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config represents the global config file.
type Config struct {
	DefaultProfile string      `toml:"default_profile"`
	Store          StoreConfig `toml:"store"`
	Sync           SyncConfig  `toml:"sync"`
	API            APIConfig   `toml:"api"`
}

type StoreConfig struct {
	Backend     string `toml:"backend"`
	RedisAddr   string `toml:"redis_addr"`
	RedisPrefix string `toml:"redis_prefix"`
}

// SyncConfig holds the session loop periods. A zero period disables the loop.
type SyncConfig struct {
	MessagePoll     Duration `toml:"message_poll"`
	Heartbeat       Duration `toml:"heartbeat"`
	CallSimulation  Duration `toml:"call_simulation"`
	CallProbability float64  `toml:"call_probability"`
	PresenceTimeout Duration `toml:"presence_timeout"`
}

type APIConfig struct {
	AuthRatePerMinute int `toml:"auth_rate_per_minute"`
	AuthBurst         int `toml:"auth_burst"`
}

// Duration is a time.Duration written as a string such as "5s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Backend:     BackendSQLite,
			RedisAddr:   "localhost:6379",
			RedisPrefix: "chatzy:",
		},
		Sync: SyncConfig{
			MessagePoll:     Duration{5 * time.Second},
			Heartbeat:       Duration{30 * time.Second},
			CallSimulation:  Duration{30 * time.Second},
			CallProbability: 0.05,
			PresenceTimeout: Duration{2 * time.Minute},
		},
		API: APIConfig{
			AuthRatePerMinute: 10,
			AuthBurst:         5,
		},
	}
}

// Load reads config from path over the defaults. Returns an error if the
// file is missing or invalid.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate rejects values the daemon cannot run with.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendSQLite, BackendMemory:
	case BackendRedis:
		if c.Store.RedisAddr == "" {
			return errors.New("store.redis_addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown store.backend %q", c.Store.Backend)
	}
	for name, d := range map[string]Duration{
		"sync.message_poll":     c.Sync.MessagePoll,
		"sync.heartbeat":        c.Sync.Heartbeat,
		"sync.call_simulation":  c.Sync.CallSimulation,
		"sync.presence_timeout": c.Sync.PresenceTimeout,
	} {
		if d.Duration < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}
	if p := c.Sync.CallProbability; p < 0 || p > 1 {
		return fmt.Errorf("sync.call_probability %v is outside [0, 1]", p)
	}
	return nil
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
