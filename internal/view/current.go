package view

import (
	"fmt"

	"github.com/nimbus-weather/nimbus/internal/icons"
	"github.com/nimbus-weather/nimbus/internal/model"
)

// Current builds the current-conditions report. Field order is the full-tier
// column order; the renderer projects it down for lower tiers. A snapshot
// with no current-conditions record yields an empty report — callers guard
// with Snapshot.Now before building.
func Current(snap *model.Snapshot, p Params) model.Report {
	now, ok := snap.Now()
	if !ok {
		return model.Report{}
	}
	astro := snap.Today().Astro()
	day := isDaytimeNow(now, astro)
	u := p.Units

	fields := []model.Field{
		condition(now, p.Mode, day),
		temperature(LabelTemp, u.Temp(now), u),
		temperature(LabelFeelsLike, u.FeelsLike(now), u),
		withLabel(LabelClouds, percent(now.CloudCover)),
		{
			Label: LabelPrecip,
			Value: fmt.Sprintf("%.1f %s", u.Precip(now), u.PrecipLabel),
			Raw:   u.Precip(now),
		},
		withLabel(LabelHumidity, percent(now.Humidity)),
		wind(now, u, p.Mode),
		{
			Label: LabelPressure,
			Value: fmt.Sprintf("%.0f %s", u.Pressure(now), u.PressLabel),
			Raw:   u.Pressure(now),
		},
		{
			Label: LabelVisibility,
			Value: fmt.Sprintf("%.0f %s", u.Visibility(now), u.VisLabel),
			Raw:   u.Visibility(now),
		},
		uvField(now),
	}

	if snap.AirQuality != nil && snap.AirQuality.USAQI != nil {
		aqi := *snap.AirQuality.USAQI
		band, _ := icons.AQIBand(aqi)
		fields = append(fields, model.Field{
			Label: LabelAQI,
			Value: fmt.Sprintf("%.0f (%s)", aqi, band),
			Raw:   aqi,
		})
	}

	fields = append(fields,
		model.Field{
			Label: LabelSun,
			Value: model.Or(astro.Sunrise, "n/a") + " / " + model.Or(astro.Sunset, "n/a"),
		},
		model.Field{Label: LabelUpdated, Value: model.Or(now.ObsTime, "n/a")},
	)

	return model.Report{Title: snap.Location.Display(), Fields: fields}
}

func uvField(c model.Conditions) model.Field {
	uv := model.Int(c.UVIndex, 0)
	return model.Field{
		Label: LabelUV,
		Value: fmt.Sprintf("%d (%s)", uv, icons.UVBand(uv)),
		Raw:   uv,
	}
}

func withLabel(label string, f model.Field) model.Field {
	f.Label = label
	return f
}
