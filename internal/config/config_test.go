package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.DefaultProfile = "work"
	cfg.Sync.MessagePoll = Duration{2 * time.Second}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.DefaultProfile != "work" {
		t.Errorf("DefaultProfile = %q, want work", loaded.DefaultProfile)
	}
	if loaded.Sync.MessagePoll.Duration != 2*time.Second {
		t.Errorf("MessagePoll = %v, want 2s", loaded.Sync.MessagePoll)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
default_profile = "home"

[store]
backend = "redis"
redis_addr = "10.0.0.5:6379"

[sync]
presence_timeout = "0s"
`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Store.Backend != BackendRedis || cfg.Store.RedisAddr != "10.0.0.5:6379" {
		t.Errorf("store = %+v", cfg.Store)
	}
	if cfg.Store.RedisPrefix != "chatzy:" {
		t.Errorf("redis prefix default lost: %q", cfg.Store.RedisPrefix)
	}
	if cfg.Sync.Heartbeat.Duration != 30*time.Second {
		t.Errorf("heartbeat = %v, want default 30s", cfg.Sync.Heartbeat)
	}
	if cfg.Sync.PresenceTimeout.Duration != 0 {
		t.Errorf("presence timeout = %v, want 0", cfg.Sync.PresenceTimeout)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load("/nonexistent/config.toml"); err == nil {
		t.Error("Load() expected error for missing file")
	}
	cfg, err := LoadOrDefault("/nonexistent/config.toml")
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.Store.Backend != BackendSQLite || cfg.Sync.CallProbability != 0.05 {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		"bad backend":     "[store]\nbackend = \"mongo\"\n",
		"bad duration":    "[sync]\nheartbeat = \"soon\"\n",
		"negative":        "[sync]\nmessage_poll = \"-1s\"\n",
		"probability":     "[sync]\ncall_probability = 1.5\n",
		"redis sans addr": "[store]\nbackend = \"redis\"\nredis_addr = \"\"\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(data), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() should fail")
			}
			if _, err := LoadOrDefault(path); err == nil {
				t.Error("LoadOrDefault() should fail for an invalid file")
			}
		})
	}
}

func TestSavePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := Save(path, Default()); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file permission = %o, want 0600", perm)
	}
}
