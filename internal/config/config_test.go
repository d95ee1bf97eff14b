package config_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nimbus-weather/nimbus/internal/config"
)

// ─── Helpers ──────────────────────────────────────────────────────────────────

// writeConfig writes a config.json into dir and changes the working directory
// to dir for the duration of the test.
func writeConfig(t *testing.T, dir string, f config.File) {
	t.Helper()
	path := filepath.Join(dir, "config.json")
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	// Change working directory so config.Load() finds config.json
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

// clearEnv unsets the NIMBUS_* variables for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvLang, "")
	t.Setenv(config.EnvCacheDir, "")
	t.Setenv(config.EnvDBPath, "")
}

// ─── Defaults ─────────────────────────────────────────────────────────────────

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	clearEnv(t)
	// Change to temp dir so no config.json is found
	orig, _ := os.Getwd()
	_ = os.Chdir(dir)
	t.Cleanup(func() { _ = os.Chdir(orig) })

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Format != config.DefaultFormat {
		t.Errorf("Format: expected %q, got %q", config.DefaultFormat, cfg.Format)
	}
	if cfg.Mode != config.DefaultMode {
		t.Errorf("Mode: expected %q, got %q", config.DefaultMode, cfg.Mode)
	}
	if cfg.Timeout != config.DefaultTimeout {
		t.Errorf("Timeout: expected %v, got %v", config.DefaultTimeout, cfg.Timeout)
	}
	if cfg.Rate != config.DefaultRate {
		t.Errorf("Rate: expected %g, got %g", config.DefaultRate, cfg.Rate)
	}
	if cfg.DBPath == "" {
		t.Error("DBPath should have a default (home dir based) value")
	}
	if cfg.Imperial || cfg.Metric {
		t.Error("no unit flag should be set by default")
	}
}

// ─── Config file loading ──────────────────────────────────────────────────────

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	clearEnv(t)
	writeConfig(t, dir, config.File{
		Lang:       "fr",
		Units:      "imperial",
		Mode:       "emoji",
		Format:     "raw",
		Tier:       "compact",
		Timeout:    "30s",
		Rate:       4.0,
		CacheDir:   "/tmp/nimbus-cache",
		DBPath:     "/tmp/nimbus.db",
		WeatherURL: "https://wttr.example.com/",
	})

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Lang != "fr" {
		t.Errorf("Lang: expected fr, got %q", cfg.Lang)
	}
	if !cfg.Imperial || cfg.Metric {
		t.Errorf("Units imperial: expected imperial=true metric=false, got %v/%v", cfg.Imperial, cfg.Metric)
	}
	if cfg.Mode != "emoji" {
		t.Errorf("Mode: expected emoji, got %q", cfg.Mode)
	}
	if cfg.Format != "raw" {
		t.Errorf("Format: expected raw, got %q", cfg.Format)
	}
	if cfg.Tier != "compact" {
		t.Errorf("Tier: expected compact, got %q", cfg.Tier)
	}
	if cfg.Timeout.String() != "30s" {
		t.Errorf("Timeout: expected 30s, got %q", cfg.Timeout.String())
	}
	if cfg.Rate != 4.0 {
		t.Errorf("Rate: expected 4.0, got %g", cfg.Rate)
	}
	if cfg.CacheDir != "/tmp/nimbus-cache" {
		t.Errorf("CacheDir: expected /tmp/nimbus-cache, got %q", cfg.CacheDir)
	}
	if cfg.DBPath != "/tmp/nimbus.db" {
		t.Errorf("DBPath: expected /tmp/nimbus.db, got %q", cfg.DBPath)
	}
	if cfg.WeatherURL != "https://wttr.example.com/" {
		t.Errorf("WeatherURL: expected custom URL, got %q", cfg.WeatherURL)
	}
}

func TestLoadConfigPathRecorded(t *testing.T) {
	dir := t.TempDir()
	clearEnv(t)
	writeConfig(t, dir, config.File{Lang: "de"})

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ConfigPath == "" {
		t.Error("ConfigPath should be set when config.json is found")
	}
	if !strings.Contains(cfg.ConfigPath, "config.json") {
		t.Errorf("ConfigPath should contain config.json, got %q", cfg.ConfigPath)
	}
}

func TestLoadNoConfigFile(t *testing.T) {
	dir := t.TempDir()
	clearEnv(t)
	orig, _ := os.Getwd()
	_ = os.Chdir(dir)
	t.Cleanup(func() { _ = os.Chdir(orig) })

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load without config.json should not error: %v", err)
	}
	if cfg.ConfigPath != "" {
		t.Errorf("ConfigPath should be empty when no file found, got %q", cfg.ConfigPath)
	}
}

func TestLoadInvalidTimeoutIgnored(t *testing.T) {
	// Invalid timeout string in file should be ignored, not error
	dir := t.TempDir()
	clearEnv(t)
	writeConfig(t, dir, config.File{
		Lang:    "fr",
		Timeout: "not-a-duration",
	})

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// Should fall back to default timeout
	if cfg.Timeout != config.DefaultTimeout {
		t.Errorf("invalid timeout should use default %v, got %v", config.DefaultTimeout, cfg.Timeout)
	}
}

// ─── Environment variable priority ────────────────────────────────────────────

func TestLoadEnvLangOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, config.File{Lang: "fr"})
	t.Setenv(config.EnvLang, "de")
	t.Setenv(config.EnvCacheDir, "")
	t.Setenv(config.EnvDBPath, "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Lang != "de" {
		t.Errorf("env NIMBUS_LANG should override file: expected de, got %q", cfg.Lang)
	}
}

func TestLoadEnvCacheDirAndDBPath(t *testing.T) {
	dir := t.TempDir()
	clearEnv(t)
	orig, _ := os.Getwd()
	_ = os.Chdir(dir)
	t.Cleanup(func() { _ = os.Chdir(orig) })
	t.Setenv(config.EnvCacheDir, "/custom/cache")
	t.Setenv(config.EnvDBPath, "/custom/history.db")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CacheDir != "/custom/cache" {
		t.Errorf("NIMBUS_CACHE_DIR: expected /custom/cache, got %q", cfg.CacheDir)
	}
	if cfg.DBPath != "/custom/history.db" {
		t.Errorf("NIMBUS_DB_PATH: expected /custom/history.db, got %q", cfg.DBPath)
	}
}

// ─── Units ────────────────────────────────────────────────────────────────────

func TestUnitsFromFile(t *testing.T) {
	cases := []struct {
		in           string
		wantImperial bool
		wantMetric   bool
	}{
		{"imperial", true, false},
		{"metric", false, true},
		{"", false, false},
		{"kelvin", false, false}, // unknown selects nothing
	}
	for _, tc := range cases {
		imperial, metric := config.UnitsFromFile(tc.in)
		if imperial != tc.wantImperial || metric != tc.wantMetric {
			t.Errorf("UnitsFromFile(%q) = %v/%v, want %v/%v",
				tc.in, imperial, metric, tc.wantImperial, tc.wantMetric)
		}
	}
}

// ─── WriteFile / Template ─────────────────────────────────────────────────────

func TestWriteFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	f := config.File{
		Lang:    "fr",
		Units:   "metric",
		Mode:    "emoji",
		Format:  "raw",
		Timeout: "45s",
		Rate:    3.0,
		DBPath:  "/data/nimbus.db",
	}

	if err := config.WriteFile(path, f); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	// Read back and verify
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var got config.File
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}

	if got.Lang != f.Lang {
		t.Errorf("Lang: expected %q, got %q", f.Lang, got.Lang)
	}
	if got.Units != f.Units {
		t.Errorf("Units: expected %q, got %q", f.Units, got.Units)
	}
	if got.Mode != f.Mode {
		t.Errorf("Mode: expected %q, got %q", f.Mode, got.Mode)
	}
	if got.Timeout != f.Timeout {
		t.Errorf("Timeout: expected %q, got %q", f.Timeout, got.Timeout)
	}
	if got.Rate != f.Rate {
		t.Errorf("Rate: expected %g, got %g", f.Rate, got.Rate)
	}
	if got.DBPath != f.DBPath {
		t.Errorf("DBPath: expected %q, got %q", f.DBPath, got.DBPath)
	}
}

func TestWriteFilePermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := config.WriteFile(path, config.File{Lang: "fr"}); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	// Should be 0600 — owner read/write only
	if info.Mode().Perm() != 0600 {
		t.Errorf("file permissions: expected 0600, got %04o", info.Mode().Perm())
	}
}

func TestWriteFileIsValidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := config.WriteFile(path, config.Template()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, _ := os.ReadFile(path)

	var f config.File
	if err := json.Unmarshal(data, &f); err != nil {
		t.Errorf("WriteFile produced invalid JSON: %v", err)
	}
}

func TestTemplateDefaults(t *testing.T) {
	tmpl := config.Template()

	if tmpl.Format != "table" {
		t.Errorf("Template.Format: expected table, got %q", tmpl.Format)
	}
	if tmpl.Mode != "glyph" {
		t.Errorf("Template.Mode: expected glyph, got %q", tmpl.Mode)
	}
	if tmpl.Timeout != "10s" {
		t.Errorf("Template.Timeout: expected 10s, got %q", tmpl.Timeout)
	}
	if tmpl.Rate != config.DefaultRate {
		t.Errorf("Template.Rate: expected %g, got %g", config.DefaultRate, tmpl.Rate)
	}
	if tmpl.Units != "" {
		t.Errorf("Template.Units should be empty (resolved per location), got %q", tmpl.Units)
	}
}
