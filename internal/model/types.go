// Package model defines the canonical data types used throughout nimbus.
// These types are the single source of truth for the provider payload shape,
// the resolved location, and the report envelope every command returns.
package model

import (
	"strconv"
	"strings"
	"time"
)

// ─── Location ─────────────────────────────────────────────────────────────────

// Location is a resolved place: the output of geocoding or IP auto-detection.
// Immutable once resolved; CountryCode drives default unit selection.
type Location struct {
	Name        string  `json:"name"`
	Region      string  `json:"region"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// Display returns the human-readable "Name, Region, Country" form, skipping
// empty components and a Region that merely repeats the Name.
func (l Location) Display() string {
	parts := make([]string, 0, 3)
	if l.Name != "" {
		parts = append(parts, l.Name)
	}
	if l.Region != "" && l.Region != l.Name {
		parts = append(parts, l.Region)
	}
	if l.Country != "" {
		parts = append(parts, l.Country)
	}
	return strings.Join(parts, ", ")
}

// ─── Provider payload ─────────────────────────────────────────────────────────

// TextVal models the provider's `[{"value": "..."}]` wrapping of plain strings.
type TextVal []struct {
	Value string `json:"value"`
}

// First returns the first wrapped value, or "" when the array is empty.
func (t TextVal) First() string {
	if len(t) == 0 {
		return ""
	}
	return t[0].Value
}

// Conditions is one observed or predicted set of conditions. The provider
// serialises every numeric field as a string and may omit any of them, so
// readers go through the F64/Int accessors which apply explicit defaults.
type Conditions struct {
	TempC          string  `json:"temp_C"`
	TempF          string  `json:"temp_F"`
	FeelsLikeC     string  `json:"FeelsLikeC"`
	FeelsLikeF     string  `json:"FeelsLikeF"`
	CloudCover     string  `json:"cloudcover"`
	Humidity       string  `json:"humidity"`
	PrecipMM       string  `json:"precipMM"`
	PrecipInches   string  `json:"precipInches"`
	Pressure       string  `json:"pressure"`
	PressureInches string  `json:"pressureInches"`
	UVIndex        string  `json:"uvIndex"`
	Visibility     string  `json:"visibility"`
	VisibilityMi   string  `json:"visibilityMiles"`
	WeatherCode    string  `json:"weatherCode"`
	WeatherDesc    TextVal `json:"weatherDesc"`
	WindDir16      string  `json:"winddir16Point"`
	WindDirDegree  string  `json:"winddirDegree"`
	WindSpeedKmph  string  `json:"windspeedKmph"`
	WindSpeedMiles string  `json:"windspeedMiles"`
	ObsTime        string  `json:"localObsDateTime"`
}

// HourlyConditions extends Conditions with the fields only present in the
// per-hour forecast rows. Time is the hour of day encoded as "0", "300", ...
// "2100" (hour × 100).
type HourlyConditions struct {
	Conditions
	Time            string `json:"time"`
	HourTempC       string `json:"tempC"`
	HourTempF       string `json:"tempF"`
	ChanceOfRain    string `json:"chanceofrain"`
	ChanceOfSnow    string `json:"chanceofsnow"`
	ChanceOfThunder string `json:"chanceofthunder"`
}

// Hour returns the hour of day this row describes, or -1 when unparseable.
func (h HourlyConditions) Hour() int {
	v, err := strconv.Atoi(strings.TrimSpace(h.Time))
	if err != nil {
		return -1
	}
	return v / 100
}

// Astronomy is the per-day astronomy sub-record.
type Astronomy struct {
	Sunrise          string `json:"sunrise"`
	Sunset           string `json:"sunset"`
	Moonrise         string `json:"moonrise"`
	Moonset          string `json:"moonset"`
	MoonPhase        string `json:"moon_phase"`
	MoonIllumination string `json:"moon_illumination"`
}

// Day is one day of the provider's forecast horizon.
type Day struct {
	Date        string             `json:"date"`
	MaxTempC    string             `json:"maxtempC"`
	MaxTempF    string             `json:"maxtempF"`
	MinTempC    string             `json:"mintempC"`
	MinTempF    string             `json:"mintempF"`
	AvgTempC    string             `json:"avgtempC"`
	AvgTempF    string             `json:"avgtempF"`
	SunHour     string             `json:"sunHour"`
	TotalSnowCM string             `json:"totalSnow_cm"`
	UVIndex     string             `json:"uvIndex"`
	Astronomy   []Astronomy        `json:"astronomy"`
	Hourly      []HourlyConditions `json:"hourly"`
}

// Astro returns the day's astronomy sub-record, defaulting to the zero value
// when the provider omitted it.
func (d Day) Astro() Astronomy {
	if len(d.Astronomy) == 0 {
		return Astronomy{}
	}
	return d.Astronomy[0]
}

// Area is the provider's nearest-area record.
type Area struct {
	AreaName  TextVal `json:"areaName"`
	Region    TextVal `json:"region"`
	Country   TextVal `json:"country"`
	Latitude  string  `json:"latitude"`
	Longitude string  `json:"longitude"`
}

// AirQuality is the merged air-quality sub-record. Pointer fields are nil
// when the provider omitted the pollutant; a nil *AirQuality on the Snapshot
// means the secondary fetch failed or was not requested.
type AirQuality struct {
	PM25    *float64 `json:"pm2_5"`
	PM10    *float64 `json:"pm10"`
	Ozone   *float64 `json:"ozone"`
	NO2     *float64 `json:"nitrogen_dioxide"`
	USAQI   *float64 `json:"us_aqi"`
	EuroAQI *float64 `json:"european_aqi"`
}

// Snapshot is the full payload for one query: the provider's weather
// response plus the resolved location and the optional air-quality record.
// Read-only once fetched.
type Snapshot struct {
	Current     []Conditions `json:"current_condition"`
	Days        []Day        `json:"weather"`
	NearestArea []Area       `json:"nearest_area"`

	// Merged in after fetch; not part of the provider payload proper.
	Location   Location    `json:"resolved_location,omitempty"`
	AirQuality *AirQuality `json:"air_quality,omitempty"`

	// Raw is the verbatim provider JSON, kept for --format json.
	Raw []byte `json:"-"`
}

// Now returns the current-conditions record. ok is false when the provider
// omitted it entirely, which callers must treat as a malformed payload.
func (s *Snapshot) Now() (Conditions, bool) {
	if len(s.Current) == 0 {
		return Conditions{}, false
	}
	return s.Current[0], true
}

// Today returns the first forecast day, or the zero value when absent.
func (s *Snapshot) Today() Day {
	if len(s.Days) == 0 {
		return Day{}
	}
	return s.Days[0]
}

// ─── Defensive field access ───────────────────────────────────────────────────

// F64 parses a provider numeric string, returning def for empty, missing or
// malformed values. Every payload read goes through F64/Int: providers leave
// fields blank without warning.
func F64(s string, def float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

// Int parses a provider integer string with an explicit default.
func Int(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// Or returns s unless it is blank, in which case def.
func Or(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// ─── Report types ─────────────────────────────────────────────────────────────

// Field is one labelled line of a report. Value is the formatted display
// string; Raw, when non-nil, is the typed value emitted in raw mode instead.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Raw   any    `json:"raw,omitempty"`
}

// Report is an ordered list of fields — the unit of rendered output.
type Report struct {
	Title  string  `json:"title,omitempty"`
	Fields []Field `json:"fields"`
}

// Get returns the value of the first field with the given label.
func (r Report) Get(label string) (string, bool) {
	for _, f := range r.Fields {
		if f.Label == label {
			return f.Value, true
		}
	}
	return "", false
}

// Labels returns the ordered field labels.
func (r Report) Labels() []string {
	out := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		out[i] = f.Label
	}
	return out
}

// ─── Result Envelope ─────────────────────────────────────────────────────────

// ResultStats carries cache and timing metadata for a command result.
type ResultStats struct {
	CacheHit   bool  `json:"cache_hit"`
	DurationMs int64 `json:"duration_ms"`
}

// Result is the uniform envelope returned by every view command. Data holds
// a Report, []Report, or a plain string depending on Kind.
type Result struct {
	Kind        string      `json:"kind"`
	GeneratedAt time.Time   `json:"generated_at"`
	Command     string      `json:"command"`
	Location    string      `json:"location"`
	Data        interface{} `json:"data"`
	Stats       ResultStats `json:"stats"`
}

// Kind constants for Result.Kind.
const (
	KindReport     = "report"      // single Report (current, astro, air)
	KindReportList = "report_list" // []Report rows (hourly, forecast)
	KindOneLine    = "oneline"     // plain string
)
