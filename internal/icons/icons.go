// Package icons holds the pure lookup tables mapping provider condition
// codes, wind, moon state and index values to labels and glyphs. Every
// function here is total: unknown inputs produce a defined fallback, never an
// error. Mode is always an explicit parameter, never ambient state.
package icons

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Mode is the closed set of display modes.
type Mode int

const (
	// ModeGlyph renders Nerd Font weather glyphs (the default).
	ModeGlyph Mode = iota
	// ModeEmoji renders Unicode emoji.
	ModeEmoji
	// ModeText renders plain text only; icon lookups yield "".
	ModeText
)

// ParseMode parses a --mode flag value.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "glyph":
		return ModeGlyph, nil
	case "emoji":
		return ModeEmoji, nil
	case "text":
		return ModeText, nil
	}
	return ModeGlyph, fmt.Errorf("unknown display mode %q (glyph|emoji|text)", s)
}

func (m Mode) String() string {
	switch m {
	case ModeEmoji:
		return "emoji"
	case ModeText:
		return "text"
	default:
		return "glyph"
	}
}

// ─── Condition categories ─────────────────────────────────────────────────────

// category buckets the provider's ~48 condition codes into the ten classes
// that have distinct glyphs.
type category int

const (
	catUnknown category = iota
	catClear
	catPartlyCloudy
	catCloudy
	catFog
	catDrizzle
	catRain
	catSleet
	catSnow
	catHail
	catThunder
)

// conditionTable maps provider (WWO) condition codes to a category and the
// fixed-English description. Descriptions are provider-defined and do not
// localise; callers must not assume they match the geocoding language.
var conditionTable = map[int]struct {
	cat  category
	desc string
}{
	113: {catClear, "Clear"},
	116: {catPartlyCloudy, "Partly cloudy"},
	119: {catCloudy, "Cloudy"},
	122: {catCloudy, "Overcast"},
	143: {catFog, "Mist"},
	176: {catRain, "Patchy rain possible"},
	179: {catSnow, "Patchy snow possible"},
	182: {catSleet, "Patchy sleet possible"},
	185: {catDrizzle, "Patchy freezing drizzle possible"},
	200: {catThunder, "Thundery outbreaks possible"},
	227: {catSnow, "Blowing snow"},
	230: {catSnow, "Blizzard"},
	248: {catFog, "Fog"},
	260: {catFog, "Freezing fog"},
	263: {catDrizzle, "Patchy light drizzle"},
	266: {catDrizzle, "Light drizzle"},
	281: {catDrizzle, "Freezing drizzle"},
	284: {catDrizzle, "Heavy freezing drizzle"},
	293: {catRain, "Patchy light rain"},
	296: {catRain, "Light rain"},
	299: {catRain, "Moderate rain at times"},
	302: {catRain, "Moderate rain"},
	305: {catRain, "Heavy rain at times"},
	308: {catRain, "Heavy rain"},
	311: {catSleet, "Light freezing rain"},
	314: {catSleet, "Moderate or heavy freezing rain"},
	317: {catSleet, "Light sleet"},
	320: {catSleet, "Moderate or heavy sleet"},
	323: {catSnow, "Patchy light snow"},
	326: {catSnow, "Light snow"},
	329: {catSnow, "Patchy moderate snow"},
	332: {catSnow, "Moderate snow"},
	335: {catSnow, "Patchy heavy snow"},
	338: {catSnow, "Heavy snow"},
	350: {catHail, "Ice pellets"},
	353: {catRain, "Light rain shower"},
	356: {catRain, "Moderate or heavy rain shower"},
	359: {catRain, "Torrential rain shower"},
	362: {catSleet, "Light sleet showers"},
	365: {catSleet, "Moderate or heavy sleet showers"},
	368: {catSnow, "Light snow showers"},
	371: {catSnow, "Moderate or heavy snow showers"},
	374: {catHail, "Light showers of ice pellets"},
	377: {catHail, "Moderate or heavy showers of ice pellets"},
	386: {catThunder, "Patchy light rain with thunder"},
	389: {catThunder, "Moderate or heavy rain with thunder"},
	392: {catThunder, "Patchy light snow with thunder"},
	395: {catThunder, "Moderate or heavy snow with thunder"},
}

// severeCodes are the hazardous conditions that get an alert marker appended
// to the condition text (blizzard and all thunder codes).
var severeCodes = map[int]bool{
	200: true,
	230: true,
	359: true,
	386: true,
	389: true,
	392: true,
	395: true,
}

// Nerd Font weather glyphs per category. Day and night variants where the
// font has them; the fallback is the thermometer.
var glyphDay = map[category]string{
	catUnknown:      "", // thermometer
	catClear:        "", // day-sunny
	catPartlyCloudy: "", // day-cloudy
	catCloudy:       "", // cloudy
	catFog:          "", // day-fog
	catDrizzle:      "", // day-sprinkle
	catRain:         "", // day-rain
	catSleet:        "", // day-sleet
	catSnow:         "", // day-snow
	catHail:         "", // day-hail
	catThunder:      "", // day-thunderstorm
}

var glyphNight = map[category]string{
	catUnknown:      "", // thermometer
	catClear:        "", // night-clear
	catPartlyCloudy: "", // night-alt-cloudy
	catCloudy:       "", // cloudy
	catFog:          "", // night-fog
	catDrizzle:      "", // night-alt-sprinkle
	catRain:         "", // night-alt-rain
	catSleet:        "", // night-alt-sleet
	catSnow:         "", // night-alt-snow
	catHail:         "", // night-alt-hail
	catThunder:      "", // night-alt-thunderstorm
}

var emojiDay = map[category]string{
	catUnknown:      "🌡️",
	catClear:        "☀️",
	catPartlyCloudy: "⛅",
	catCloudy:       "☁️",
	catFog:          "🌫️",
	catDrizzle:      "🌦️",
	catRain:         "🌧️",
	catSleet:        "🌨️",
	catSnow:         "❄️",
	catHail:         "🌨️",
	catThunder:      "⛈️",
}

var emojiNight = map[category]string{
	catUnknown:      "🌡️",
	catClear:        "🌙",
	catPartlyCloudy: "☁️",
	catCloudy:       "☁️",
	catFog:          "🌫️",
	catDrizzle:      "🌧️",
	catRain:         "🌧️",
	catSleet:        "🌨️",
	catSnow:         "❄️",
	catHail:         "🌨️",
	catThunder:      "⛈️",
}

// WeatherIcon maps a provider condition code to the mode's glyph. Unknown
// codes yield the thermometer fallback; text mode always yields "".
func WeatherIcon(code int, day bool, mode Mode) string {
	if mode == ModeText {
		return ""
	}
	cat := catUnknown
	if e, ok := conditionTable[code]; ok {
		cat = e.cat
	}
	switch {
	case mode == ModeEmoji && day:
		return emojiDay[cat]
	case mode == ModeEmoji:
		return emojiNight[cat]
	case day:
		return glyphDay[cat]
	default:
		return glyphNight[cat]
	}
}

// Describe returns the fixed-English description for a condition code, or
// "Unknown" for codes outside the table.
func Describe(code int) string {
	if e, ok := conditionTable[code]; ok {
		return e.desc
	}
	return "Unknown"
}

// IsSevere reports whether a condition code is in the severe set.
func IsSevere(code int) bool {
	return severeCodes[code]
}

// SevereMarker returns the alert marker appended to severe condition text.
func SevereMarker(mode Mode) string {
	switch mode {
	case ModeText:
		return " [SEVERE]"
	case ModeEmoji:
		return " ⚠️"
	default:
		return " " // storm-warning
	}
}

// ─── Beaufort ─────────────────────────────────────────────────────────────────

// beaufortCutoffs[i] is the lowest wind speed (km/h) above scale i, i.e. a
// wind is scale i while kmh <= beaufortCutoffs[i]. Anything above the last
// cutoff is hurricane force (12).
var beaufortCutoffs = [...]float64{1, 5, 11, 19, 28, 38, 49, 61, 74, 88, 102, 117}

// BeaufortScale classifies a wind speed in km/h on the 0–12 Beaufort scale.
func BeaufortScale(kmh float64) int {
	for i, cut := range beaufortCutoffs {
		if kmh <= cut {
			return i
		}
	}
	return 12
}

// Nerd Font wind-beaufort-0 .. wind-beaufort-12.
var beaufortGlyphs = [...]string{
	"", "", "", "", "", "", "",
	"", "", "", "", "", "",
}

// BeaufortIcon renders a Beaufort scale value. Glyph mode has a distinct
// glyph per scale; other modes return a bracketed label. Out-of-range scales
// are clamped.
func BeaufortIcon(scale int, mode Mode) string {
	if scale < 0 {
		scale = 0
	}
	if scale > 12 {
		scale = 12
	}
	if mode == ModeGlyph {
		return beaufortGlyphs[scale]
	}
	return fmt.Sprintf("[Bft %d]", scale)
}

// ─── Compass ──────────────────────────────────────────────────────────────────

// compassPoints in clockwise order starting at north. Index i covers the
// 22.5° sector centred on i*22.5°.
var compassPoints = [...]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// compassArrows maps each 16-point label to one of 8 directional arrows.
// Arrows point where the wind is blowing to (direction labels name where it
// blows from).
var compassArrows = map[string]string{
	"N": "↓", "NNE": "↓",
	"NE": "↙", "ENE": "↙",
	"E": "←", "ESE": "←",
	"SE": "↖", "SSE": "↖",
	"S": "↑", "SSW": "↑",
	"SW": "↗", "WSW": "↗",
	"W": "→", "WNW": "→",
	"NW": "↘", "NNW": "↘",
}

// CompassPoint converts degrees to the nearest 16-point compass label.
func CompassPoint(degrees float64) string {
	idx := int(math.Round((degrees+11.25)/22.5)) % 16
	if idx < 0 {
		idx += 16
	}
	return compassPoints[idx]
}

// CompassIcon renders a wind direction given either a 16-point label or raw
// degrees. Glyph mode returns the directional arrow; other modes return the
// label unchanged. Unrecognised labels pass through unchanged in every mode.
func CompassIcon(dir string, mode Mode) string {
	dir = strings.TrimSpace(dir)
	if deg, err := strconv.ParseFloat(dir, 64); err == nil {
		dir = CompassPoint(deg)
	}
	label := strings.ToUpper(dir)
	arrow, ok := compassArrows[label]
	if !ok {
		return dir
	}
	if mode == ModeGlyph {
		return arrow
	}
	return label
}

// ─── Moon ─────────────────────────────────────────────────────────────────────

// moonPhases is the ordered substring-match table over the 8 canonical phase
// names. Longer names come first so "waxing crescent" never matches "new".
var moonPhases = []struct {
	substr string
	glyph  string
}{
	{"waxing crescent", "🌒"},
	{"first quarter", "🌓"},
	{"waxing gibbous", "🌔"},
	{"waning gibbous", "🌖"},
	{"last quarter", "🌗"},
	{"third quarter", "🌗"},
	{"waning crescent", "🌘"},
	{"full", "🌕"},
	{"new", "🌑"},
}

// MoonIcon renders the moon for a named phase and illumination percentage.
// Phase-name matching takes priority; when no name matches, illumination
// banding decides. Text mode is always empty. The same Unicode moon symbols
// serve both glyph and emoji modes — the font covers them in both.
func MoonIcon(phase string, illumination int, mode Mode) string {
	if mode == ModeText {
		return ""
	}
	p := strings.ToLower(phase)
	for _, m := range moonPhases {
		if strings.Contains(p, m.substr) {
			return m.glyph
		}
	}
	switch {
	case illumination < 5:
		return "🌑"
	case illumination < 45:
		return "🌒"
	case illumination < 55:
		return "🌓"
	case illumination < 95:
		return "🌔"
	default:
		return "🌕"
	}
}

// ─── Index bands ──────────────────────────────────────────────────────────────

// UVBand classifies a UV index at the standard 3/6/8/11 thresholds.
func UVBand(index int) string {
	switch {
	case index < 3:
		return "Low"
	case index < 6:
		return "Moderate"
	case index < 8:
		return "High"
	case index < 11:
		return "Very High"
	default:
		return "Extreme"
	}
}

// AQIBand classifies an air-quality index at the 50/100/150/200 breakpoints.
// The second return is the gradient colour name used by the renderer.
func AQIBand(index float64) (label, colour string) {
	switch {
	case index <= 50:
		return "Good", "green"
	case index <= 100:
		return "Moderate", "yellow"
	case index <= 150:
		return "Unhealthy for sensitive groups", "orange"
	case index <= 200:
		return "Unhealthy", "red"
	default:
		return "Very unhealthy", "purple"
	}
}
