package view

import (
	"fmt"
	"strings"

	"github.com/nimbus-weather/nimbus/internal/icons"
	"github.com/nimbus-weather/nimbus/internal/model"
)

// Astro builds the astronomy report for today: sun and moon times, the moon
// phase with its icon, and the illumination percentage.
func Astro(snap *model.Snapshot, p Params) model.Report {
	a := snap.Today().Astro()
	illum := model.Int(a.MoonIllumination, 0)

	phase := model.Or(a.MoonPhase, "Unknown")
	if icon := icons.MoonIcon(a.MoonPhase, illum, p.Mode); icon != "" {
		phase = icon + " " + phase
	}

	return model.Report{
		Title: snap.Location.Display(),
		Fields: []model.Field{
			{Label: LabelSunrise, Value: model.Or(a.Sunrise, "n/a")},
			{Label: LabelSunset, Value: model.Or(a.Sunset, "n/a")},
			{Label: LabelMoonrise, Value: model.Or(a.Moonrise, "n/a")},
			{Label: LabelMoonset, Value: model.Or(a.Moonset, "n/a")},
			{Label: LabelPhase, Value: phase, Raw: strings.TrimSpace(a.MoonPhase)},
			{Label: LabelIllum, Value: fmt.Sprintf("%d%%", illum), Raw: illum},
		},
	}
}
