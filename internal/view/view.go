// Package view builds display-ready reports from a fetched snapshot. Every
// builder is a pure transform over (Snapshot, units.Config, icons.Mode):
// no network, no caching, no clock beyond what the payload carries. Each
// formatted field also carries its typed raw value so raw output needs no
// second build pass.
package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/nimbus-weather/nimbus/internal/icons"
	"github.com/nimbus-weather/nimbus/internal/model"
	"github.com/nimbus-weather/nimbus/internal/units"
)

// Params carries the per-invocation display decisions into the builders.
type Params struct {
	Units units.Config
	Mode  icons.Mode
}

// Field labels. The tier projection in render drops fields by label, so
// these are constants rather than inline strings.
const (
	LabelCondition  = "Condition"
	LabelTemp       = "Temperature"
	LabelFeelsLike  = "Feels like"
	LabelClouds     = "Cloud cover"
	LabelPrecip     = "Precipitation"
	LabelHumidity   = "Humidity"
	LabelWind       = "Wind"
	LabelPressure   = "Pressure"
	LabelVisibility = "Visibility"
	LabelUV         = "UV index"
	LabelAQI        = "Air quality"
	LabelSun        = "Sunrise/Sunset"
	LabelUpdated    = "Updated"

	LabelTime     = "Time"
	LabelDate     = "Date"
	LabelHigh     = "High"
	LabelLow      = "Low"
	LabelRain     = "Rain"
	LabelSnow     = "Snow"
	LabelSunrise  = "Sunrise"
	LabelSunset   = "Sunset"
	LabelMoonrise = "Moonrise"
	LabelMoonset  = "Moonset"
	LabelPhase    = "Moon phase"
	LabelIllum    = "Illumination"
	LabelPM25     = "PM2.5"
	LabelPM10     = "PM10"
	LabelOzone    = "Ozone"
	LabelNO2      = "NO2"
	LabelUSAQI    = "US AQI"
	LabelEuroAQI  = "EU AQI"
)

// condition renders "<icon> <description>" plus the severity marker for
// codes in the severe set. The raw value is the plain description.
func condition(c model.Conditions, mode icons.Mode, day bool) model.Field {
	code := model.Int(c.WeatherCode, -1)
	desc := model.Or(c.WeatherDesc.First(), icons.Describe(code))

	text := desc
	if icons.IsSevere(code) {
		text += icons.SevereMarker(mode)
	}
	if icon := icons.WeatherIcon(code, day, mode); icon != "" {
		text = icon + " " + text
	}
	return model.Field{Label: LabelCondition, Value: text, Raw: desc}
}

// wind renders "<direction> <speed> <unit> (Bft n)" with mode-appropriate
// direction and Beaufort markers. Beaufort classification always runs on the
// km/h field regardless of display units.
func wind(c model.Conditions, u units.Config, mode icons.Mode) model.Field {
	speed := u.WindSpeed(c)
	bft := icons.BeaufortScale(model.F64(c.WindSpeedKmph, 0))
	dir := icons.CompassIcon(model.Or(c.WindDir16, c.WindDirDegree), mode)

	value := fmt.Sprintf("%s %s", dir, u.FormatSpeed(speed))
	if mode == icons.ModeGlyph {
		value += " " + icons.BeaufortIcon(bft, mode)
	} else {
		value += " " + icons.BeaufortIcon(bft, icons.ModeText)
	}
	return model.Field{Label: LabelWind, Value: strings.TrimSpace(value), Raw: speed}
}

// temperature renders a value with the unit label, tagging temperatures past
// the config's hot/cold gradient limits.
func temperature(label string, v float64, u units.Config) model.Field {
	value := u.FormatTemp(v)
	if g := u.TempGradient(v); g != "mild" {
		value += " (" + g + ")"
	}
	return model.Field{Label: label, Value: value, Raw: v}
}

// clockLayouts covers the provider's "08:33 AM" style timestamps, with and
// without a leading zero.
var clockLayouts = []string{"03:04 PM", "3:04 PM"}

// parseClock parses a provider clock string into minutes since midnight.
func parseClock(s string) (int, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour()*60 + t.Minute(), true
		}
	}
	return 0, false
}

// isDaytimeHour reports whether the given hour falls between sunrise and
// sunset. Unparseable astronomy defaults to the 06:00–18:00 window.
func isDaytimeHour(hour int, astro model.Astronomy) bool {
	rise, okRise := parseClock(astro.Sunrise)
	set, okSet := parseClock(astro.Sunset)
	if !okRise || !okSet {
		rise, set = 6*60, 18*60
	}
	m := hour * 60
	return m >= rise && m < set
}

// isDaytimeNow derives daytime from the observation timestamp
// ("2024-01-20 10:20 AM"); a missing timestamp falls back to daytime.
func isDaytimeNow(c model.Conditions, astro model.Astronomy) bool {
	parts := strings.SplitN(strings.TrimSpace(c.ObsTime), " ", 2)
	if len(parts) == 2 {
		if m, ok := parseClock(parts[1]); ok {
			return isDaytimeHour(m/60, astro)
		}
	}
	return true
}

// percent formats a 0–100 provider percentage with an explicit default.
func percent(s string) model.Field {
	v := model.Int(s, 0)
	return model.Field{Value: fmt.Sprintf("%d%%", v), Raw: v}
}
