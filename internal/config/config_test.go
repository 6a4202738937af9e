package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatalf("Load() with a missing explicit file = %+v, want error", cfg)
	}

	chdir(t, t.TempDir())
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8080 || cfg.Server.ParseTimeout != time.Minute || cfg.Server.MaxUploadBytes() != 20<<20 {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Pending.TTL != 24*time.Hour {
		t.Errorf("Pending.TTL = %v, want 24h", cfg.Pending.TTL)
	}
	if !cfg.Redis.Enabled || cfg.Database.Name != "vlier" {
		t.Errorf("Redis = %+v, Database = %+v", cfg.Redis, cfg.Database)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "server:\n  port: 9000\n  parse_timeout: 30s\nlog:\n  level: debug\nparser:\n  ocr: true\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("VLIER_SERVER_PORT", "9100")
	t.Setenv("VLIER_REDIS_ENABLED", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("Server.Port = %d, want 9100 from env", cfg.Server.Port)
	}
	if cfg.Server.ParseTimeout != 30*time.Second || cfg.Log.Level != "debug" || !cfg.Parser.OCR {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Redis.Enabled {
		t.Error("Redis.Enabled = true, want false from env")
	}
}

func TestValidate(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("VLIER_SERVER_PORT", "70000")
	if _, err := Load(""); err == nil {
		t.Error("Load() with port 70000 succeeded, want error")
	}
}

func TestDSN(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "vlier", SSLMode: "disable", Timezone: "UTC"}
	want := "host=db port=5432 user=u password=p dbname=vlier sslmode=disable TimeZone=UTC"
	if got := c.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
