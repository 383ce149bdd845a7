package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by every command
type Config struct {
	DataPath        string        `yaml:"data_path"`
	Port            string        `yaml:"port"`
	TopCastSize     int           `yaml:"top_cast_size"`
	SentinelSeasons []int         `yaml:"sentinel_seasons"`
	ImageTimeout    time.Duration `yaml:"image_timeout"`
	LogLevel        string        `yaml:"log_level"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		DataPath:        "output_data/law_and_order_svu_episodes.csv",
		Port:            "8888",
		TopCastSize:     15,
		SentinelSeasons: []int{27},
		ImageTimeout:    5 * time.Second,
		LogLevel:        "info",
	}
}

// Load reads the YAML file at path over the defaults and then applies
// EXPLORER_* environment overrides. A missing file is only an error when
// the path was given explicitly.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = "explorer.yaml"
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		slog.Debug("Loaded config file", "path", path)
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("EXPLORER_DATA_PATH"); ok && v != "" {
		c.DataPath = v
	}
	if v, ok := lookup("EXPLORER_PORT"); ok && v != "" {
		c.Port = v
	}
	if v, ok := lookup("EXPLORER_LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup("EXPLORER_TOP_CAST_SIZE"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid EXPLORER_TOP_CAST_SIZE %q: %w", v, err)
		}
		c.TopCastSize = n
	}
	if v, ok := lookup("EXPLORER_IMAGE_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid EXPLORER_IMAGE_TIMEOUT %q: %w", v, err)
		}
		c.ImageTimeout = d
	}
	if v, ok := lookup("EXPLORER_SENTINEL_SEASONS"); ok {
		seasons := []int{}
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			n, err := strconv.Atoi(part)
			if err != nil {
				return fmt.Errorf("invalid EXPLORER_SENTINEL_SEASONS %q: %w", v, err)
			}
			seasons = append(seasons, n)
		}
		c.SentinelSeasons = seasons
	}
	return nil
}

// Validate checks values that would otherwise fail later at startup
func (c Config) Validate() error {
	if strings.TrimSpace(c.DataPath) == "" {
		return errors.New("data_path is required")
	}
	if c.TopCastSize < 0 {
		return fmt.Errorf("top_cast_size must not be negative, got %d", c.TopCastSize)
	}
	if c.ImageTimeout <= 0 {
		return fmt.Errorf("image_timeout must be positive, got %s", c.ImageTimeout)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a level name to a slog level
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", name)
	}
	return level, nil
}
