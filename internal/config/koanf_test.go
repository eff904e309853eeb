// Shelfmatch - Content-Based Book Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmatch

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

// isolate points the config search away from any real config file.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv(ConfigPathEnvVar, "")
}

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Catalog.Path != "dataset/books.csv" || cfg.Catalog.Source != "csv" {
		t.Errorf("Catalog = %+v", cfg.Catalog)
	}
	if cfg.Recommend.DefaultN != 5 || cfg.Recommend.Ranking != "legacy" || cfg.Recommend.Match != "substring" {
		t.Errorf("Recommend = %+v", cfg.Recommend)
	}
	if cfg.Server.Port != 8080 || cfg.Server.Address() != "0.0.0.0:8080" {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"*"}) {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf: %v", err)
	}
	want := defaultConfig()
	if !reflect.DeepEqual(cfg.Catalog, want.Catalog) {
		t.Errorf("Catalog = %+v, want %+v", cfg.Catalog, want.Catalog)
	}
	if !reflect.DeepEqual(cfg.Recommend, want.Recommend) {
		t.Errorf("Recommend = %+v, want %+v", cfg.Recommend, want.Recommend)
	}
	if cfg.Server.Timeout != want.Server.Timeout || cfg.API != want.API {
		t.Errorf("Server/API = %+v %+v", cfg.Server, cfg.API)
	}
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("DATASET_PATH", "/data/goodreads.csv")
	t.Setenv("CATALOG_SOURCE", "duckdb")
	t.Setenv("RECOMMEND_RANKING", "exclude-anchor")
	t.Setenv("RECOMMEND_DEFAULT_N", "8")
	t.Setenv("RECOMMEND_CACHE_TTL", "90s")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("UNRELATED_VARIABLE", "ignored")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf: %v", err)
	}
	if cfg.Catalog.Path != "/data/goodreads.csv" || cfg.Catalog.Source != "duckdb" {
		t.Errorf("Catalog = %+v", cfg.Catalog)
	}
	if cfg.Recommend.Ranking != "exclude-anchor" || cfg.Recommend.DefaultN != 8 {
		t.Errorf("Recommend = %+v", cfg.Recommend)
	}
	if cfg.Recommend.CacheTTL != 90*time.Second {
		t.Errorf("CacheTTL = %v", cfg.Recommend.CacheTTL)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Port = %d", cfg.Server.Port)
	}
	if want := []string{"https://a.example", "https://b.example"}; !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
}

func TestLoadWithKoanf_FileThenEnv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "shelfmatch.yaml")
	yaml := "catalog:\n  path: /srv/books.csv\nrecommend:\n  max_n: 20\nserver:\n  port: 7000\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "7001")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf: %v", err)
	}
	if cfg.Catalog.Path != "/srv/books.csv" {
		t.Errorf("Path = %q", cfg.Catalog.Path)
	}
	if cfg.Recommend.MaxN != 20 {
		t.Errorf("MaxN = %d", cfg.Recommend.MaxN)
	}
	if cfg.Server.Port != 7001 {
		t.Errorf("Port = %d, env should win over file", cfg.Server.Port)
	}
}

func TestLoadWithKoanf_Invalid(t *testing.T) {
	isolate(t)
	t.Setenv("RECOMMEND_RANKING", "magic")

	if _, err := LoadWithKoanf(); err == nil {
		t.Error("expected validation error")
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := map[string]string{
		"DATASET_PATH":       "catalog.path",
		"RECOMMEND_MAX_N":    "recommend.max_n",
		"DISABLE_RATE_LIMIT": "security.rate_limit_disabled",
		"HOME":               "",
	}
	for in, want := range tests {
		if got := envTransformFunc(in); got != want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty dataset path", func(c *Config) { c.Catalog.Path = " " }},
		{"bad source", func(c *Config) { c.Catalog.Source = "parquet" }},
		{"negative load timeout", func(c *Config) { c.Catalog.LoadTimeout = -time.Second }},
		{"bad match", func(c *Config) { c.Recommend.Match = "fuzzy" }},
		{"bad ranking", func(c *Config) { c.Recommend.Ranking = "best" }},
		{"zero default n", func(c *Config) { c.Recommend.DefaultN = 0 }},
		{"max below default", func(c *Config) { c.Recommend.MaxN = 2 }},
		{"zero cache size", func(c *Config) { c.Recommend.CacheSize = 0 }},
		{"zero cache ttl", func(c *Config) { c.Recommend.CacheTTL = 0 }},
		{"port zero", func(c *Config) { c.Server.Port = 0 }},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }},
		{"zero timeout", func(c *Config) { c.Server.Timeout = 0 }},
		{"zero shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = 0 }},
		{"zero title length", func(c *Config) { c.API.MaxTitleLength = 0 }},
		{"zero rate limit", func(c *Config) { c.Security.RateLimitReqs = 0 }},
		{"zero rate window", func(c *Config) { c.Security.RateLimitWindow = 0 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	}

	t.Run("rate limit disabled skips limits", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Security.RateLimitDisabled = true
		cfg.Security.RateLimitReqs = 0
		if err := cfg.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
