package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/ytget/font-sync/internal/download"
	"github.com/ytget/font-sync/internal/filter"
	"github.com/ytget/font-sync/internal/logging"
	"github.com/ytget/font-sync/internal/model"
	"github.com/ytget/font-sync/internal/platform"
)

// Environment variables overriding the config file
const (
	EnvTargetDir = "FONT_SYNC_DIR"
	EnvCatalog   = "FONT_SYNC_CATALOG"
	EnvEndpoint  = "FONT_SYNC_ENDPOINT"
	EnvLogLevel  = "LOG_LEVEL"
	EnvOnError   = "FONT_SYNC_ON_ERROR"
	EnvTimeout   = "FONT_SYNC_TIMEOUT"
)

// EnvFile is loaded before environment overrides are applied, if present
var EnvFile = ".env"

// FilterConfig is the criteria section of the config file
type FilterConfig struct {
	Categories []string `yaml:"categories"`
	Subset     string   `yaml:"subset"`
	StyleCount int      `yaml:"style_count"`
	Thickness  int      `yaml:"thickness"`
	Slant      int      `yaml:"slant"`
	Width      int      `yaml:"width"`
}

// CLIConfig holds the command line tool configuration
type CLIConfig struct {
	TargetDir string       `yaml:"target_dir"`
	Catalog   string       `yaml:"catalog"`
	Endpoint  string       `yaml:"endpoint"`
	LogLevel  string       `yaml:"log_level"`
	OnError   string       `yaml:"on_error"`
	Timeout   int          `yaml:"timeout"` // seconds, 0 disables
	Filter    FilterConfig `yaml:"filter"`
}

// DefaultCLIConfig returns the configuration used when nothing overrides it
func DefaultCLIConfig() *CLIConfig {
	return &CLIConfig{
		TargetDir: platform.DefaultFontDirectory(),
		Endpoint:  download.DefaultEndpoint,
		LogLevel:  logging.LevelInfo,
		OnError:   string(download.AbortOnError),
	}
}

// Load reads the YAML file at path over the defaults, then applies .env and
// environment overrides. An empty path skips the file.
func Load(path string) (*CLIConfig, error) {
	cfg := DefaultCLIConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", EnvFile, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *CLIConfig) applyEnv() error {
	if v := os.Getenv(EnvTargetDir); v != "" {
		c.TargetDir = v
	}
	if v := os.Getenv(EnvCatalog); v != "" {
		c.Catalog = v
	}
	if v := os.Getenv(EnvEndpoint); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvOnError); v != "" {
		c.OnError = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		c.Timeout = seconds
	}
	return nil
}

// Validate checks values that would otherwise fail late
func (c *CLIConfig) Validate() error {
	if strings.TrimSpace(c.TargetDir) == "" {
		return fmt.Errorf("target directory cannot be empty")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := download.ParseFailurePolicy(c.OnError); err != nil {
		return err
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got: %d", c.Timeout)
	}
	if !strings.Contains(c.Endpoint, download.FamilyPlaceholder) {
		return fmt.Errorf("endpoint must contain %s: %s", download.FamilyPlaceholder, c.Endpoint)
	}
	return nil
}

// FailurePolicy returns the parsed on_error value
func (c *CLIConfig) FailurePolicy() download.FailurePolicy {
	policy, _ := download.ParseFailurePolicy(c.OnError)
	return policy
}

// HTTPTimeout returns the per-request timeout, 0 meaning none
func (c *CLIConfig) HTTPTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// Criteria converts the filter section and validates it
func (c *CLIConfig) Criteria() (model.Criteria, error) {
	categories, err := filter.ParseCategories(c.Filter.Categories)
	if err != nil {
		return model.Criteria{}, err
	}

	criteria := model.Criteria{
		Categories:    categories,
		Subset:        c.Filter.Subset,
		MinStyleCount: c.Filter.StyleCount,
		MinThickness:  c.Filter.Thickness,
		MinSlant:      c.Filter.Slant,
		MinWidth:      c.Filter.Width,
	}
	if err := filter.Validate(criteria); err != nil {
		return model.Criteria{}, err
	}
	return criteria, nil
}
