package view

import (
	"fmt"
	"strings"

	"github.com/nimbus-weather/nimbus/internal/icons"
	"github.com/nimbus-weather/nimbus/internal/model"
)

// OneLine builds the single-string summary used by status bars:
// "<location>: <icon> <temperature> - <condition>". Text mode simply omits
// the icon.
func OneLine(snap *model.Snapshot, p Params) string {
	now, ok := snap.Now()
	if !ok {
		return snap.Location.Display() + ": unavailable"
	}
	astro := snap.Today().Astro()

	code := model.Int(now.WeatherCode, -1)
	desc := model.Or(now.WeatherDesc.First(), icons.Describe(code))
	if icons.IsSevere(code) {
		desc += icons.SevereMarker(p.Mode)
	}

	icon := icons.WeatherIcon(code, isDaytimeNow(now, astro), p.Mode)
	temp := p.Units.FormatTemp(p.Units.Temp(now))

	parts := []string{icon, temp}
	lhs := strings.TrimSpace(strings.Join(parts, " "))
	return fmt.Sprintf("%s: %s - %s", snap.Location.Display(), lhs, desc)
}
