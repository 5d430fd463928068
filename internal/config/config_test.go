package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "domikado.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Store.Driver != DriverFile {
		t.Errorf("driver = %s, want file", cfg.Store.Driver)
	}
	if cfg.Policy.TotalBudget != 81.7e12 {
		t.Errorf("policy total budget = %v, want 81.7e12", cfg.Policy.TotalBudget)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Addr() = %q, want :8080", cfg.Addr())
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  read_timeout: 5s
store:
  driver: postgres
  postgres_dsn: postgres://localhost/domikado
  cache_ttl: 1m
log_level: debug
policy:
  max_allocation_share: 0.2
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != 9090 || cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Server.WriteTimeout != 15*time.Second {
		t.Errorf("write timeout = %v, want default 15s", cfg.Server.WriteTimeout)
	}
	if cfg.Store.Driver != DriverPostgres || cfg.Store.CacheTTL != time.Minute {
		t.Errorf("store = %+v", cfg.Store)
	}
	if cfg.Policy.MaxAllocationShare != 0.2 {
		t.Errorf("max share = %v, want 0.2", cfg.Policy.MaxAllocationShare)
	}
	// Unset policy fields keep their defaults.
	if cfg.Policy.AllocationFactor != 1900 {
		t.Errorf("allocation factor = %v, want 1900", cfg.Policy.AllocationFactor)
	}
	if cfg.Level() != zerolog.DebugLevel {
		t.Errorf("Level() = %v, want debug", cfg.Level())
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")
	t.Setenv("PORT", "7000")
	t.Setenv("STORE_DRIVER", "mongo")
	t.Setenv("MONGO_DB_NAME", "edu")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("port = %d, want 7000", cfg.Server.Port)
	}
	if cfg.Store.Driver != DriverMongo || cfg.Store.MongoDatabase != "edu" {
		t.Errorf("store = %+v", cfg.Store)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("log level = %s, want warn", cfg.LogLevel)
	}
}

func TestInvalidPortEnvIgnored(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
}

func TestValidateAggregatesProblems(t *testing.T) {
	cfg := Default()
	cfg.Server.Port = 0
	cfg.Store.Driver = "sqlite"
	cfg.LogLevel = "loud"
	cfg.Policy.AllocationFactor = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{"server.port", "store.driver", "log_level", "allocation_factor"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not mention %s", msg, want)
		}
	}
}

func TestValidateDriverRequirements(t *testing.T) {
	cfg := Default()
	cfg.Store.Driver = DriverPostgres
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "postgres_dsn") {
		t.Errorf("expected postgres_dsn error, got %v", err)
	}

	cfg = Default()
	cfg.Store.DataDir = ""
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "data_dir") {
		t.Errorf("expected data_dir error, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "server: [unclosed")
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
