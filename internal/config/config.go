// Package config handles loading and resolving nimbus configuration.
// Resolution order (first non-empty value wins):
//  1. CLI flags
//  2. Environment variables (a .env file in the working directory is
//     loaded first, if present)
//  3. config.json in the current working directory
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultConfigFile = "config.json"
	DefaultFormat     = "table"
	DefaultMode       = "glyph"
	DefaultTimeout    = 10 * time.Second
	DefaultRate       = 2.0

	EnvLang     = "NIMBUS_LANG"
	EnvCacheDir = "NIMBUS_CACHE_DIR"
	EnvDBPath   = "NIMBUS_DB_PATH"
)

// File is the on-disk representation of config.json.
type File struct {
	Lang       string  `json:"lang"`
	Units      string  `json:"units"` // "", "imperial" or "metric"
	Mode       string  `json:"mode"`  // glyph|emoji|text
	Format     string  `json:"format"`
	Tier       string  `json:"tier"`
	Timeout    string  `json:"timeout"`
	Rate       float64 `json:"rate"`
	CacheDir   string  `json:"cache_dir"`
	DBPath     string  `json:"db_path"`
	WeatherURL string  `json:"weather_url"`
	GeocodeURL string  `json:"geocode_url"`
	IPURL      string  `json:"ip_url"`
	AirURL     string  `json:"air_url"`
}

// Config is the fully-resolved runtime configuration. All callers use this
// struct; File is only read during loading.
type Config struct {
	Lang       string
	Mode       string
	Format     string
	Tier       string
	Timeout    time.Duration
	Rate       float64
	CacheDir   string
	DBPath     string
	WeatherURL string
	GeocodeURL string
	IPURL      string
	AirURL     string
	ConfigPath string // path of the config.json that was loaded (empty if none)

	// Runtime overrides set from CLI flags after Load()
	Imperial  bool
	Metric    bool
	Refresh   bool
	NoHistory bool
	Debug     bool
}

// Load resolves configuration from all sources.
func Load() (*Config, error) {
	cfg := &Config{
		Format:  DefaultFormat,
		Mode:    DefaultMode,
		Timeout: DefaultTimeout,
		Rate:    DefaultRate,
	}

	// Layer 1: config.json (lowest priority)
	if f, path, err := loadFile(); err == nil {
		applyFile(cfg, f, path)
	}

	// Layer 2: environment, with .env merged in first. A missing .env is
	// the normal case, not an error.
	_ = godotenv.Load()
	if v := os.Getenv(EnvLang); v != "" {
		cfg.Lang = v
	}
	if v := os.Getenv(EnvCacheDir); v != "" {
		cfg.CacheDir = v
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.DBPath = v
	}

	// Flag overrides (layer 3) are applied by the command layer after Load.

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			cfg.DBPath = filepath.Join(home, ".nimbus", "history.db")
		}
	}

	return cfg, nil
}

// UnitsFromFile translates the config file's units string into the explicit
// flag pair used by unit selection. Unknown values select nothing.
func UnitsFromFile(units string) (imperial, metric bool) {
	switch units {
	case "imperial":
		return true, false
	case "metric":
		return false, true
	}
	return false, false
}

// loadFile attempts to read config.json from the current working directory.
func loadFile() (*File, string, error) {
	path, err := filepath.Abs(DefaultConfigFile)
	if err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("config.json not found at %s", path)
		}
		return nil, "", fmt.Errorf("reading config.json: %w", err)
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, "", fmt.Errorf("parsing config.json: %w", err)
	}
	return &f, path, nil
}

// applyFile copies values from a parsed File into cfg, skipping zero fields.
func applyFile(cfg *Config, f *File, path string) {
	cfg.ConfigPath = path
	if f.Lang != "" {
		cfg.Lang = f.Lang
	}
	if f.Mode != "" {
		cfg.Mode = f.Mode
	}
	if f.Format != "" {
		cfg.Format = f.Format
	}
	if f.Tier != "" {
		cfg.Tier = f.Tier
	}
	if f.Timeout != "" {
		if d, err := time.ParseDuration(f.Timeout); err == nil {
			cfg.Timeout = d
		}
	}
	if f.Rate > 0 {
		cfg.Rate = f.Rate
	}
	if f.CacheDir != "" {
		cfg.CacheDir = f.CacheDir
	}
	if f.DBPath != "" {
		cfg.DBPath = f.DBPath
	}
	if f.WeatherURL != "" {
		cfg.WeatherURL = f.WeatherURL
	}
	if f.GeocodeURL != "" {
		cfg.GeocodeURL = f.GeocodeURL
	}
	if f.IPURL != "" {
		cfg.IPURL = f.IPURL
	}
	if f.AirURL != "" {
		cfg.AirURL = f.AirURL
	}
	cfg.Imperial, cfg.Metric = UnitsFromFile(f.Units)
}

// Template returns a File populated with sensible defaults, suitable for
// writing an initial config.json via `nimbus config init`.
func Template() File {
	return File{
		Lang:    "",
		Units:   "",
		Mode:    DefaultMode,
		Format:  DefaultFormat,
		Timeout: "10s",
		Rate:    DefaultRate,
	}
}

// WriteFile serialises a File to the given path.
func WriteFile(path string, f File) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o600)
}
