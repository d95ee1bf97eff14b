// Package units selects and carries the measurement system for one
// invocation. Exactly one of the two canonical configs (imperial, metric) is
// active at a time; every label, threshold and provider-field choice
// downstream flows from that single selection.
package units

import (
	"fmt"
	"strings"

	"github.com/nimbus-weather/nimbus/internal/model"
)

// Countries that use imperial units. Everything else defaults to metric.
var imperialCountries = map[string]bool{
	"US": true, // United States
	"BS": true, // Bahamas
	"BZ": true, // Belize
	"KY": true, // Cayman Islands
	"FM": true, // Micronesia
	"LR": true, // Liberia
	"MH": true, // Marshall Islands
	"MM": true, // Myanmar
	"PW": true, // Palau
}

// Config is the fully-resolved unit configuration. The func fields are the
// uniform value accessors view builders use: for dual-unit provider fields
// they select the right field key, for single-unit fields they convert from
// the canonical unit. Builders never branch on Imperial themselves.
type Config struct {
	Imperial bool

	TempLabel   string // °F or °C
	SpeedLabel  string // mph or km/h
	PrecipLabel string // in or mm
	VisLabel    string // mi or km
	PressLabel  string // inHg or hPa
	SnowLabel   string // in or cm

	// Temperature gradient limits in display units (hot and above, cold
	// and below).
	HotLimit  float64
	ColdLimit float64

	Temp       func(model.Conditions) float64
	FeelsLike  func(model.Conditions) float64
	WindSpeed  func(model.Conditions) float64
	Visibility func(model.Conditions) float64
	Precip     func(model.Conditions) float64
	Pressure   func(model.Conditions) float64

	HourTemp func(model.HourlyConditions) float64
	DayMax   func(model.Day) float64
	DayMin   func(model.Day) float64

	// Snow is a conversion accessor: the provider reports snowfall in
	// centimetres only, so imperial converts rather than re-reading.
	Snow func(model.Day) float64
}

// Imperial is the canonical imperial configuration.
var Imperial = Config{
	Imperial:    true,
	TempLabel:   "°F",
	SpeedLabel:  "mph",
	PrecipLabel: "in",
	VisLabel:    "mi",
	PressLabel:  "inHg",
	SnowLabel:   "in",
	HotLimit:    80,
	ColdLimit:   40,

	Temp:       func(c model.Conditions) float64 { return model.F64(c.TempF, 0) },
	FeelsLike:  func(c model.Conditions) float64 { return model.F64(c.FeelsLikeF, 0) },
	WindSpeed:  func(c model.Conditions) float64 { return model.F64(c.WindSpeedMiles, 0) },
	Visibility: func(c model.Conditions) float64 { return model.F64(c.VisibilityMi, 0) },
	Precip:     func(c model.Conditions) float64 { return model.F64(c.PrecipInches, 0) },
	Pressure:   func(c model.Conditions) float64 { return model.F64(c.PressureInches, 0) },

	HourTemp: func(h model.HourlyConditions) float64 { return model.F64(h.HourTempF, 0) },
	DayMax:   func(d model.Day) float64 { return model.F64(d.MaxTempF, 0) },
	DayMin:   func(d model.Day) float64 { return model.F64(d.MinTempF, 0) },
	Snow:     func(d model.Day) float64 { return model.F64(d.TotalSnowCM, 0) / 2.54 },
}

// Metric is the canonical metric configuration.
var Metric = Config{
	Imperial:    false,
	TempLabel:   "°C",
	SpeedLabel:  "km/h",
	PrecipLabel: "mm",
	VisLabel:    "km",
	PressLabel:  "hPa",
	SnowLabel:   "cm",
	HotLimit:    27,
	ColdLimit:   4,

	Temp:       func(c model.Conditions) float64 { return model.F64(c.TempC, 0) },
	FeelsLike:  func(c model.Conditions) float64 { return model.F64(c.FeelsLikeC, 0) },
	WindSpeed:  func(c model.Conditions) float64 { return model.F64(c.WindSpeedKmph, 0) },
	Visibility: func(c model.Conditions) float64 { return model.F64(c.Visibility, 0) },
	Precip:     func(c model.Conditions) float64 { return model.F64(c.PrecipMM, 0) },
	Pressure:   func(c model.Conditions) float64 { return model.F64(c.Pressure, 0) },

	HourTemp: func(h model.HourlyConditions) float64 { return model.F64(h.HourTempC, 0) },
	DayMax:   func(d model.Day) float64 { return model.F64(d.MaxTempC, 0) },
	DayMin:   func(d model.Day) float64 { return model.F64(d.MinTempC, 0) },
	Snow:     func(d model.Day) float64 { return model.F64(d.TotalSnowCM, 0) },
}

// Select resolves the unit configuration for one invocation.
// Priority: explicit imperial flag, explicit metric flag, country-code
// membership in the imperial set, metric. Imperial wins when both flags are
// given.
func Select(imperial, metric bool, countryCode string) Config {
	switch {
	case imperial:
		return Imperial
	case metric:
		return Metric
	case imperialCountries[strings.ToUpper(strings.TrimSpace(countryCode))]:
		return Imperial
	default:
		return Metric
	}
}

// FormatTemp renders a temperature with the config's label, e.g. "72°F".
func (c Config) FormatTemp(v float64) string {
	return fmt.Sprintf("%.0f%s", v, c.TempLabel)
}

// FormatSpeed renders a wind speed with the config's label.
func (c Config) FormatSpeed(v float64) string {
	return fmt.Sprintf("%.0f %s", v, c.SpeedLabel)
}

// TempGradient classifies a display-unit temperature against the config's
// hot/cold limits. Returns "hot", "cold" or "mild".
func (c Config) TempGradient(v float64) string {
	switch {
	case v >= c.HotLimit:
		return "hot"
	case v <= c.ColdLimit:
		return "cold"
	default:
		return "mild"
	}
}
