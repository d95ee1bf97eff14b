package icons_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/nimbus-weather/nimbus/internal/icons"
)

// ─── Mode ─────────────────────────────────────────────────────────────────────

func TestParseMode(t *testing.T) {
	cases := []struct {
		in      string
		want    icons.Mode
		wantErr bool
	}{
		{"glyph", icons.ModeGlyph, false},
		{"emoji", icons.ModeEmoji, false},
		{"text", icons.ModeText, false},
		{"", icons.ModeGlyph, false},
		{"  Emoji ", icons.ModeEmoji, false},
		{"ascii", icons.ModeGlyph, true},
	}
	for _, tc := range cases {
		got, err := icons.ParseMode(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseMode(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMode(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestModeStringRoundTrip(t *testing.T) {
	for _, m := range []icons.Mode{icons.ModeGlyph, icons.ModeEmoji, icons.ModeText} {
		got, err := icons.ParseMode(m.String())
		if err != nil {
			t.Errorf("ParseMode(%q): %v", m.String(), err)
		}
		if got != m {
			t.Errorf("round trip %v: got %v", m, got)
		}
	}
}

// ─── Weather icons ────────────────────────────────────────────────────────────

func TestWeatherIconTextModeEmpty(t *testing.T) {
	for _, code := range []int{113, 308, 395, -1, 99999} {
		if got := icons.WeatherIcon(code, true, icons.ModeText); got != "" {
			t.Errorf("WeatherIcon(%d, text) = %q, want empty", code, got)
		}
	}
}

func TestWeatherIconKnownCodesNonEmpty(t *testing.T) {
	codes := []int{113, 116, 119, 122, 143, 176, 200, 230, 248, 266, 296, 308, 317, 326, 350, 389, 395}
	for _, code := range codes {
		for _, day := range []bool{true, false} {
			for _, mode := range []icons.Mode{icons.ModeGlyph, icons.ModeEmoji} {
				if got := icons.WeatherIcon(code, day, mode); got == "" {
					t.Errorf("WeatherIcon(%d, day=%v, %v) is empty", code, day, mode)
				}
			}
		}
	}
}

func TestWeatherIconUnknownCodeFallsBack(t *testing.T) {
	// Unknown codes get the thermometer fallback, not an empty string.
	for _, mode := range []icons.Mode{icons.ModeGlyph, icons.ModeEmoji} {
		if got := icons.WeatherIcon(99999, true, mode); got == "" {
			t.Errorf("unknown code in %v mode should fall back to a glyph", mode)
		}
	}
}

func TestWeatherIconDayNightDiffer(t *testing.T) {
	// Clear sky has distinct day/night variants in both icon modes.
	for _, mode := range []icons.Mode{icons.ModeGlyph, icons.ModeEmoji} {
		day := icons.WeatherIcon(113, true, mode)
		night := icons.WeatherIcon(113, false, mode)
		if day == night {
			t.Errorf("%v mode: clear-sky day and night icons should differ", mode)
		}
	}
}

// ─── Descriptions and severity ────────────────────────────────────────────────

func TestDescribe(t *testing.T) {
	if got := icons.Describe(113); got != "Clear" {
		t.Errorf("Describe(113): expected Clear, got %q", got)
	}
	if got := icons.Describe(230); got != "Blizzard" {
		t.Errorf("Describe(230): expected Blizzard, got %q", got)
	}
	if got := icons.Describe(12345); got != "Unknown" {
		t.Errorf("Describe(12345): expected Unknown, got %q", got)
	}
}

func TestIsSevere(t *testing.T) {
	severe := []int{200, 230, 359, 386, 389, 392, 395}
	for _, code := range severe {
		if !icons.IsSevere(code) {
			t.Errorf("code %d should be severe", code)
		}
	}
	benign := []int{113, 116, 296, 308, 338}
	for _, code := range benign {
		if icons.IsSevere(code) {
			t.Errorf("code %d should not be severe", code)
		}
	}
}

func TestSevereMarkerPerMode(t *testing.T) {
	if got := icons.SevereMarker(icons.ModeText); got != " [SEVERE]" {
		t.Errorf("text marker: expected ' [SEVERE]', got %q", got)
	}
	if got := icons.SevereMarker(icons.ModeEmoji); !strings.Contains(got, "⚠") {
		t.Errorf("emoji marker should contain warning sign, got %q", got)
	}
	if got := icons.SevereMarker(icons.ModeGlyph); got == "" {
		t.Error("glyph marker should not be empty")
	}
}

// ─── Beaufort ─────────────────────────────────────────────────────────────────

func TestBeaufortScaleBoundaries(t *testing.T) {
	cases := []struct {
		kmh  float64
		want int
	}{
		{0, 0},
		{1, 0},
		{1.1, 1},
		{5, 1},
		{11, 2},
		{19, 3},
		{28, 4},
		{38, 5},
		{49, 6},
		{61, 7},
		{74, 8},
		{88, 9},
		{102, 10},
		{117, 11},
		{117.1, 12},
		{250, 12},
	}
	for _, tc := range cases {
		if got := icons.BeaufortScale(tc.kmh); got != tc.want {
			t.Errorf("BeaufortScale(%g) = %d, want %d", tc.kmh, got, tc.want)
		}
	}
}

func TestBeaufortScaleMonotonicInRange(t *testing.T) {
	prev := 0
	for kmh := 0.0; kmh <= 200; kmh += 0.5 {
		s := icons.BeaufortScale(kmh)
		if s < 0 || s > 12 {
			t.Fatalf("BeaufortScale(%g) = %d out of [0,12]", kmh, s)
		}
		if s < prev {
			t.Fatalf("BeaufortScale not monotonic at %g: %d < %d", kmh, s, prev)
		}
		prev = s
	}
}

func TestBeaufortIcon(t *testing.T) {
	// Glyph mode: a distinct non-empty glyph per scale value.
	seen := make(map[string]bool)
	for s := 0; s <= 12; s++ {
		g := icons.BeaufortIcon(s, icons.ModeGlyph)
		if g == "" {
			t.Errorf("BeaufortIcon(%d, glyph) is empty", s)
		}
		if seen[g] {
			t.Errorf("BeaufortIcon(%d, glyph) duplicates another scale's glyph", s)
		}
		seen[g] = true
	}

	// Non-glyph modes get the bracketed label.
	if got := icons.BeaufortIcon(7, icons.ModeText); got != "[Bft 7]" {
		t.Errorf("BeaufortIcon(7, text) = %q, want [Bft 7]", got)
	}
	if got := icons.BeaufortIcon(3, icons.ModeEmoji); got != "[Bft 3]" {
		t.Errorf("BeaufortIcon(3, emoji) = %q, want [Bft 3]", got)
	}
}

func TestBeaufortIconClamps(t *testing.T) {
	if got := icons.BeaufortIcon(-2, icons.ModeText); got != "[Bft 0]" {
		t.Errorf("negative scale should clamp to 0, got %q", got)
	}
	if got := icons.BeaufortIcon(99, icons.ModeText); got != "[Bft 12]" {
		t.Errorf("oversized scale should clamp to 12, got %q", got)
	}
}

// ─── Compass ──────────────────────────────────────────────────────────────────

func TestCompassPoint(t *testing.T) {
	cases := []struct {
		deg  float64
		want string
	}{
		{0, "N"},
		{11, "N"},
		{11.3, "NNE"},
		{22.5, "NNE"},
		{45, "NE"},
		{90, "E"},
		{135, "SE"},
		{180, "S"},
		{225, "SW"},
		{270, "W"},
		{315, "NW"},
		{349, "NNW"},
		{350, "N"},
		{360, "N"},
	}
	for _, tc := range cases {
		if got := icons.CompassPoint(tc.deg); got != tc.want {
			t.Errorf("CompassPoint(%g) = %q, want %q", tc.deg, got, tc.want)
		}
	}
}

func TestCompassIconKnownLabels(t *testing.T) {
	labels := []string{
		"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
		"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
	}
	for _, l := range labels {
		glyph := icons.CompassIcon(l, icons.ModeGlyph)
		if glyph == "" {
			t.Errorf("CompassIcon(%q, glyph) is empty", l)
		}
		if glyph == l {
			t.Errorf("CompassIcon(%q, glyph) should be an arrow, got the label back", l)
		}
		// Non-glyph modes pass the label through.
		if got := icons.CompassIcon(l, icons.ModeText); got != l {
			t.Errorf("CompassIcon(%q, text) = %q, want label unchanged", l, got)
		}
	}
}

func TestCompassIconDegreesInput(t *testing.T) {
	// A numeric direction is converted to the label before icon lookup.
	if got := icons.CompassIcon("90", icons.ModeText); got != "E" {
		t.Errorf("CompassIcon(\"90\", text) = %q, want E", got)
	}
	if got := icons.CompassIcon("180", icons.ModeGlyph); got != "↑" {
		t.Errorf("CompassIcon(\"180\", glyph) = %q, want ↑", got)
	}
}

func TestCompassIconUnknownLabelPassesThrough(t *testing.T) {
	// A provider label outside the 16-point set (e.g. "VAR" for variable
	// winds) passes through unchanged in every mode, original casing intact.
	for _, label := range []string{"VAR", "Var", "calm"} {
		for _, mode := range []icons.Mode{icons.ModeGlyph, icons.ModeEmoji, icons.ModeText} {
			if got := icons.CompassIcon(label, mode); got != label {
				t.Errorf("CompassIcon(%q, %v) = %q, want %q", label, mode, got, label)
			}
		}
	}
}

func TestCompassIconLowercaseLabel(t *testing.T) {
	if got := icons.CompassIcon("ne", icons.ModeText); got != "NE" {
		t.Errorf("CompassIcon(ne, text) = %q, want NE", got)
	}
}

// ─── Moon ─────────────────────────────────────────────────────────────────────

func TestMoonIconByPhaseName(t *testing.T) {
	cases := []struct {
		phase string
		want  string
	}{
		{"New Moon", "🌑"},
		{"Waxing Crescent", "🌒"},
		{"First Quarter", "🌓"},
		{"Waxing Gibbous", "🌔"},
		{"Full Moon", "🌕"},
		{"Waning Gibbous", "🌖"},
		{"Last Quarter", "🌗"},
		{"Third Quarter", "🌗"},
		{"Waning Crescent", "🌘"},
	}
	for _, tc := range cases {
		// Illumination deliberately contradicts the name: the name wins.
		if got := icons.MoonIcon(tc.phase, 99, icons.ModeGlyph); got != tc.want {
			t.Errorf("MoonIcon(%q) = %q, want %q", tc.phase, got, tc.want)
		}
	}
}

func TestMoonIconOrderedMatching(t *testing.T) {
	// "Waxing Crescent" must not substring-match "crescent" fragments into
	// the wrong phase, and "New" must not shadow longer names.
	if got := icons.MoonIcon("Waxing Crescent", 0, icons.ModeGlyph); got != "🌒" {
		t.Errorf("Waxing Crescent matched wrong entry: %q", got)
	}
}

func TestMoonIconIlluminationBands(t *testing.T) {
	cases := []struct {
		illum int
		want  string
	}{
		{0, "🌑"},
		{4, "🌑"},
		{5, "🌒"},
		{44, "🌒"},
		{45, "🌓"},
		{54, "🌓"},
		{55, "🌔"},
		{94, "🌔"},
		{95, "🌕"},
		{100, "🌕"},
	}
	for _, tc := range cases {
		if got := icons.MoonIcon("", tc.illum, icons.ModeGlyph); got != tc.want {
			t.Errorf("MoonIcon(illum=%d) = %q, want %q", tc.illum, got, tc.want)
		}
	}
}

func TestMoonIconTextModeEmpty(t *testing.T) {
	if got := icons.MoonIcon("Full Moon", 100, icons.ModeText); got != "" {
		t.Errorf("text mode moon icon should be empty, got %q", got)
	}
}

// ─── Index bands ──────────────────────────────────────────────────────────────

func TestUVBand(t *testing.T) {
	cases := []struct {
		idx  int
		want string
	}{
		{0, "Low"},
		{2, "Low"},
		{3, "Moderate"},
		{5, "Moderate"},
		{6, "High"},
		{7, "High"},
		{8, "Very High"},
		{10, "Very High"},
		{11, "Extreme"},
		{15, "Extreme"},
	}
	for _, tc := range cases {
		if got := icons.UVBand(tc.idx); got != tc.want {
			t.Errorf("UVBand(%d) = %q, want %q", tc.idx, got, tc.want)
		}
	}
}

func TestAQIBand(t *testing.T) {
	cases := []struct {
		idx        float64
		wantLabel  string
		wantColour string
	}{
		{10, "Good", "green"},
		{50, "Good", "green"},
		{51, "Moderate", "yellow"},
		{100, "Moderate", "yellow"},
		{101, "Unhealthy for sensitive groups", "orange"},
		{150, "Unhealthy for sensitive groups", "orange"},
		{151, "Unhealthy", "red"},
		{200, "Unhealthy", "red"},
		{201, "Very unhealthy", "purple"},
		{400, "Very unhealthy", "purple"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("aqi_%g", tc.idx), func(t *testing.T) {
			label, colour := icons.AQIBand(tc.idx)
			if label != tc.wantLabel {
				t.Errorf("label = %q, want %q", label, tc.wantLabel)
			}
			if colour != tc.wantColour {
				t.Errorf("colour = %q, want %q", colour, tc.wantColour)
			}
		})
	}
}
