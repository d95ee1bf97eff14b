// Shared helpers for the view commands: the acquisition pipeline (cache →
// resolve → fetch → write-through), display parameter resolution, result
// assembly and history logging.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nimbus-weather/nimbus/internal/app"
	"github.com/nimbus-weather/nimbus/internal/cache"
	"github.com/nimbus-weather/nimbus/internal/history"
	"github.com/nimbus-weather/nimbus/internal/icons"
	"github.com/nimbus-weather/nimbus/internal/meteo"
	"github.com/nimbus-weather/nimbus/internal/model"
	"github.com/nimbus-weather/nimbus/internal/render"
	"github.com/nimbus-weather/nimbus/internal/units"
	"github.com/nimbus-weather/nimbus/internal/view"
)

// queryArg extracts the optional positional location from args.
func queryArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return strings.TrimSpace(args[0])
}

// loadSnapshot runs the acquisition pipeline for one query: cache check,
// then location resolution + weather fetch on a miss, with write-through
// only after a fully-parsed success. withAir additionally attaches the
// air-quality sub-record (separately cached, longer TTL, non-fatal).
func loadSnapshot(cmd *cobra.Command, deps *app.Deps, query string, withAir bool) (*model.Snapshot, bool, error) {
	cfg := deps.Config
	if err := deps.RequireCache(); err != nil {
		return nil, false, err
	}

	ctx := cmd.Context()
	path := deps.Cache.Path(cache.Key(query, cfg.Lang, ""))
	slog.Debug("cache entry", "path", path)

	if !cfg.Refresh && deps.Cache.IsValid(path, cache.WeatherTTL) {
		payload, err := deps.Cache.Read(path)
		if err == nil {
			var snap *model.Snapshot
			if snap, err = meteo.DecodeSnapshot(payload); err == nil {
				slog.Debug("cache hit", "path", path)
				if withAir {
					snap.AirQuality = airQuality(ctx, deps, query, snap.Location)
				}
				return snap, true, nil
			}
		}
		// Unreadable or malformed entry: treat as a miss and refetch.
		slog.Debug("cache entry unusable, refetching", "err", err)
	}

	loc, err := resolveLocation(ctx, deps, query)
	if err != nil {
		return nil, false, err
	}
	slog.Debug("resolved location",
		"name", loc.Display(), "country_code", loc.CountryCode,
		"lat", loc.Latitude, "lon", loc.Longitude)

	snap, err := deps.Client.GetWeather(ctx, loc, cfg.Lang)
	if err != nil {
		return nil, false, err
	}

	// Write-through happens only now, after a successful fully-parsed
	// fetch — a partial or error payload is never persisted.
	payload, err := meteo.EncodeSnapshot(snap)
	if err != nil {
		return nil, false, err
	}
	if err := deps.Cache.Write(path, payload); err != nil {
		return nil, false, err
	}

	if withAir {
		snap.AirQuality = airQuality(ctx, deps, query, loc)
	}
	return snap, false, nil
}

// resolveLocation geocodes a non-empty query and IP-detects an empty one.
func resolveLocation(ctx context.Context, deps *app.Deps, query string) (model.Location, error) {
	if query == "" {
		return deps.Client.DetectLocation(ctx)
	}
	return deps.Client.Geocode(ctx, query, deps.Config.Lang)
}

// airQuality returns the air-quality record for a location, going through
// its own cache slot (kind "aqi", 30-minute TTL). Failures degrade to nil —
// the secondary fetch is never fatal.
func airQuality(ctx context.Context, deps *app.Deps, query string, loc model.Location) *model.AirQuality {
	cfg := deps.Config
	path := deps.Cache.Path(cache.Key(query, cfg.Lang, "aqi"))

	if !cfg.Refresh && deps.Cache.IsValid(path, cache.AirTTL) {
		if payload, err := deps.Cache.Read(path); err == nil {
			var aq model.AirQuality
			if json.Unmarshal(payload, &aq) == nil {
				slog.Debug("air quality cache hit", "path", path)
				return &aq
			}
		}
	}

	aq, err := deps.Client.GetAirQuality(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		slog.Debug("air quality unavailable", "err", err)
		return nil
	}
	if payload, err := json.Marshal(aq); err == nil {
		if werr := deps.Cache.Write(path, payload); werr != nil {
			slog.Debug("air quality cache write failed", "err", werr)
		}
	}
	return aq
}

// viewParams resolves the unit config and display mode for a snapshot. Unit
// selection keys off the resolved country code unless a flag pins it.
func viewParams(deps *app.Deps, snap *model.Snapshot) (view.Params, error) {
	mode, err := icons.ParseMode(deps.Config.Mode)
	if err != nil {
		return view.Params{}, err
	}
	u := units.Select(deps.Config.Imperial, deps.Config.Metric, snap.Location.CountryCode)
	slog.Debug("display parameters",
		"units", map[bool]string{true: "imperial", false: "metric"}[u.Imperial],
		"mode", mode.String())
	return view.Params{Units: u, Mode: mode}, nil
}

// newResult assembles the uniform result envelope.
func newResult(kind, command string, snap *model.Snapshot, data interface{}, cacheHit bool, start time.Time) *model.Result {
	return &model.Result{
		Kind:        kind,
		GeneratedAt: time.Now(),
		Command:     command,
		Location:    snap.Location.Display(),
		Data:        data,
		Stats: model.ResultStats{
			CacheHit:   cacheHit,
			DurationMs: time.Since(start).Milliseconds(),
		},
	}
}

// emit renders a result. --format json bypasses the envelope entirely and
// writes the verbatim provider payload.
func emit(w io.Writer, deps *app.Deps, result *model.Result, snap *model.Snapshot) error {
	if deps.Config.Format == render.FormatJSON {
		_, err := w.Write(append(snap.Raw, '\n'))
		return err
	}
	return render.Render(w, result, deps.Config.Format)
}

// logHistory appends a lookup to the query log. Best effort: a log failure
// never fails the command that triggered it.
func logHistory(deps *app.Deps, query string, snap *model.Snapshot, cacheHit bool) {
	if deps.Config.NoHistory {
		return
	}
	if err := deps.RequireHistory(); err != nil {
		slog.Debug("history unavailable", "err", err)
		return
	}
	now, ok := snap.Now()
	if !ok {
		return
	}
	e := history.Entry{
		Query:     query,
		Location:  snap.Location.Display(),
		TempC:     model.F64(now.TempC, 0),
		Condition: model.Or(now.WeatherDesc.First(), icons.Describe(model.Int(now.WeatherCode, -1))),
		CacheHit:  cacheHit,
	}
	if err := deps.History.Append(e); err != nil {
		slog.Debug("history append failed", "err", err)
	}
}

// printSimpleTable writes an aligned plain-text table without borders, for
// the small maintenance commands (cache stats, history list).
func printSimpleTable(w io.Writer, headers []string, fill func(add func(...string))) {
	rows := [][]string{headers}
	fill(func(cells ...string) {
		rows = append(rows, cells)
	})

	widths := make([]int, len(headers))
	for _, row := range rows {
		for i, c := range row {
			if i < len(widths) && len(c) > widths[i] {
				widths[i] = len(c)
			}
		}
	}
	for _, row := range rows {
		for i, c := range row {
			if i > 0 {
				fmt.Fprint(w, "  ")
			}
			fmt.Fprintf(w, "%-*s", widths[i], c)
		}
		fmt.Fprintln(w)
	}
}

// humanBytes formats a byte count for display.
func humanBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
