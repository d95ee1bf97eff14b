// Package app wires together configuration, the upstream client, the disk
// cache and the history store into a single Deps struct that commands
// receive at runtime.
package app

import (
	"fmt"

	"github.com/nimbus-weather/nimbus/internal/cache"
	"github.com/nimbus-weather/nimbus/internal/config"
	"github.com/nimbus-weather/nimbus/internal/history"
	"github.com/nimbus-weather/nimbus/internal/meteo"
)

// Deps holds all runtime dependencies injected into command Run functions.
// Cache and History are opened lazily: the cache when a fetch needs it, the
// history store only when logging or the history commands run.
type Deps struct {
	Config  *config.Config
	Client  *meteo.Client
	Cache   *cache.Cache
	History *history.Store
}

// New builds a Deps from resolved config.
func New(cfg *config.Config) *Deps {
	client := meteo.NewClient(
		meteo.Endpoints{
			Weather: cfg.WeatherURL,
			Geocode: cfg.GeocodeURL,
			IP:      cfg.IPURL,
			Air:     cfg.AirURL,
		},
		cfg.Timeout,
		cfg.Rate,
		cfg.Debug,
	)
	return &Deps{
		Config: cfg,
		Client: client,
	}
}

// RequireCache opens the cache directory if not already open.
func (d *Deps) RequireCache() error {
	if d.Cache != nil {
		return nil
	}
	c, err := cache.Open(d.Config.CacheDir)
	if err != nil {
		return err
	}
	d.Cache = c
	return nil
}

// RequireHistory opens the history database if not already open.
func (d *Deps) RequireHistory() error {
	if d.History != nil {
		return nil
	}
	if d.Config.DBPath == "" {
		return fmt.Errorf("no history database path configured (set %s)", config.EnvDBPath)
	}
	s, err := history.Open(d.Config.DBPath)
	if err != nil {
		return err
	}
	d.History = s
	return nil
}

// Close releases any open resources.
func (d *Deps) Close() {
	if d.History != nil {
		d.History.Close()
		d.History = nil
	}
}
