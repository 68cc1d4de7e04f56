package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ytget/font-sync/internal/download"
	"github.com/ytget/font-sync/internal/filter"
	"github.com/ytget/font-sync/internal/model"
	"github.com/ytget/font-sync/internal/platform"
)

// isolateEnv unsets every override for the test and points EnvFile at a
// temporary location
func isolateEnv(t *testing.T) string {
	t.Helper()
	for _, key := range []string{EnvTargetDir, EnvCatalog, EnvEndpoint, EnvLogLevel, EnvOnError, EnvTimeout} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	dir := t.TempDir()
	previous := EnvFile
	EnvFile = filepath.Join(dir, ".env")
	t.Cleanup(func() { EnvFile = previous })
	return dir
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "font-sync.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(DefaultCLIConfig(), cfg); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}
	if cfg.TargetDir != platform.DefaultFontDirectory() {
		t.Errorf("Expected system font directory, got %s", cfg.TargetDir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Defaults should be valid: %v", err)
	}
}

func TestLoad_File(t *testing.T) {
	dir := isolateEnv(t)
	path := writeConfig(t, dir, `
target_dir: /srv/fonts
catalog: catalog.yaml
log_level: debug
on_error: skip
timeout: 30
filter:
  categories: [serif, Sans Serif]
  subset: latin-ext
  style_count: 3
  thickness: 4
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := &CLIConfig{
		TargetDir: "/srv/fonts",
		Catalog:   "catalog.yaml",
		Endpoint:  download.DefaultEndpoint,
		LogLevel:  "debug",
		OnError:   "skip",
		Timeout:   30,
		Filter: FilterConfig{
			Categories: []string{"serif", "Sans Serif"},
			Subset:     "latin-ext",
			StyleCount: 3,
			Thickness:  4,
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}
	if cfg.FailurePolicy() != download.SkipOnError {
		t.Errorf("Expected skip policy, got %s", cfg.FailurePolicy())
	}
	if cfg.HTTPTimeout() != 30*time.Second {
		t.Errorf("Expected 30s timeout, got %s", cfg.HTTPTimeout())
	}

	criteria, err := cfg.Criteria()
	if err != nil {
		t.Fatalf("Criteria failed: %v", err)
	}
	wantCriteria := model.Criteria{
		Categories:    []model.Category{model.CategorySerif, model.CategorySansSerif},
		Subset:        "latin-ext",
		MinStyleCount: 3,
		MinThickness:  4,
	}
	if diff := cmp.Diff(wantCriteria, criteria); diff != "" {
		t.Errorf("Criteria mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := isolateEnv(t)
	path := writeConfig(t, dir, "target_dir: /srv/fonts\non_error: skip\n")

	t.Setenv(EnvTargetDir, "/home/user/.fonts")
	t.Setenv(EnvOnError, "abort")
	t.Setenv(EnvTimeout, "5")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TargetDir != "/home/user/.fonts" {
		t.Errorf("Expected env target dir, got %s", cfg.TargetDir)
	}
	if cfg.FailurePolicy() != download.AbortOnError {
		t.Errorf("Expected abort policy, got %s", cfg.FailurePolicy())
	}
	if cfg.Timeout != 5 {
		t.Errorf("Expected timeout 5, got %d", cfg.Timeout)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := isolateEnv(t)
	if err := os.WriteFile(EnvFile, []byte("FONT_SYNC_CATALOG=https://example.com/metadata\nLOG_LEVEL=WARN\n"), 0644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	cfg, err := Load(writeConfig(t, dir, "catalog: local.yaml\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Catalog != "https://example.com/metadata" {
		t.Errorf("Expected catalog from env file, got %s", cfg.Catalog)
	}
	if cfg.LogLevel != "WARN" {
		t.Errorf("Expected WARN, got %s", cfg.LogLevel)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := isolateEnv(t)

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}

	if _, err := Load(writeConfig(t, dir, "filter: [not, a, map]\n")); err == nil {
		t.Error("Expected parse error")
	}

	t.Setenv(EnvTimeout, "soon")
	if _, err := Load(""); err == nil {
		t.Error("Expected error for invalid timeout")
	}
}

func TestCLIConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*CLIConfig)
		wantErr bool
	}{
		{"defaults", func(*CLIConfig) {}, false},
		{"empty dir", func(c *CLIConfig) { c.TargetDir = " " }, true},
		{"bad log level", func(c *CLIConfig) { c.LogLevel = "TRACE" }, true},
		{"bad policy", func(c *CLIConfig) { c.OnError = "retry" }, true},
		{"negative timeout", func(c *CLIConfig) { c.Timeout = -1 }, true},
		{"endpoint without placeholder", func(c *CLIConfig) { c.Endpoint = "https://example.com/" }, true},
		{"continue policy", func(c *CLIConfig) { c.OnError = "continue" }, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := DefaultCLIConfig()
			test.modify(cfg)
			if err := cfg.Validate(); (err != nil) != test.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, test.wantErr)
			}
		})
	}
}

func TestCLIConfig_CriteriaInvalid(t *testing.T) {
	cfg := DefaultCLIConfig()
	cfg.Filter.Categories = []string{"gothic"}

	var verr *filter.ValidationError
	if _, err := cfg.Criteria(); !errors.As(err, &verr) {
		t.Errorf("Expected ValidationError, got %v", err)
	}

	cfg.Filter.Categories = nil
	cfg.Filter.Width = 12
	if _, err := cfg.Criteria(); !errors.As(err, &verr) || verr.Field != "width" {
		t.Errorf("Expected width ValidationError, got %v", err)
	}
}
