package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	expected := Default()
	if cfg.DataPath != expected.DataPath || cfg.Port != expected.Port || cfg.TopCastSize != 15 {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
	if !slices.Equal(cfg.SentinelSeasons, []int{27}) {
		t.Errorf("Expected sentinel seasons [27], got %v", cfg.SentinelSeasons)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "explorer.yaml")
	content := `data_path: data/episodes.parquet
port: "9000"
top_cast_size: 10
sentinel_seasons: [26, 27]
image_timeout: 2s
log_level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DataPath != "data/episodes.parquet" || cfg.Port != "9000" || cfg.TopCastSize != 10 {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if !slices.Equal(cfg.SentinelSeasons, []int{26, 27}) {
		t.Errorf("Expected sentinel seasons [26 27], got %v", cfg.SentinelSeasons)
	}
	if cfg.ImageTimeout != 2*time.Second {
		t.Errorf("Expected image timeout 2s, got %s", cfg.ImageTimeout)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/explorer.yaml"); err == nil {
		t.Error("Expected error for missing explicit config, got nil")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "explorer.yaml")
	if err := os.WriteFile(path, []byte("port: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected error for invalid YAML, got nil")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"EXPLORER_DATA_PATH":        "episodes.jsonl",
		"EXPLORER_PORT":             "3000",
		"EXPLORER_TOP_CAST_SIZE":    "5",
		"EXPLORER_IMAGE_TIMEOUT":    "750ms",
		"EXPLORER_SENTINEL_SEASONS": "27, 28",
		"EXPLORER_LOG_LEVEL":        "warn",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := Default()
	if err := cfg.applyEnv(lookup); err != nil {
		t.Fatalf("applyEnv failed: %v", err)
	}

	if cfg.DataPath != "episodes.jsonl" || cfg.Port != "3000" || cfg.TopCastSize != 5 || cfg.LogLevel != "warn" {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if cfg.ImageTimeout != 750*time.Millisecond {
		t.Errorf("Expected 750ms, got %s", cfg.ImageTimeout)
	}
	if !slices.Equal(cfg.SentinelSeasons, []int{27, 28}) {
		t.Errorf("Expected [27 28], got %v", cfg.SentinelSeasons)
	}
}

func TestApplyEnvErrors(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"EXPLORER_TOP_CAST_SIZE", "many"},
		{"EXPLORER_IMAGE_TIMEOUT", "soon"},
		{"EXPLORER_SENTINEL_SEASONS", "27,x"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			cfg := Default()
			err := cfg.applyEnv(func(key string) (string, bool) {
				if key == tt.key {
					return tt.value, true
				}
				return "", false
			})
			if err == nil || !strings.Contains(err.Error(), tt.key) {
				t.Errorf("Expected error mentioning %s, got %v", tt.key, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"empty data path", func(c *Config) { c.DataPath = " " }},
		{"negative top cast", func(c *Config) { c.TopCastSize = -1 }},
		{"zero timeout", func(c *Config) { c.ImageTimeout = 0 }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}

	if err := Default().Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}
