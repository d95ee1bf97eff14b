package view

import (
	"fmt"

	"github.com/nimbus-weather/nimbus/internal/model"
)

// Forecast builds one row per day of the provider's forecast horizon. The
// snow column is all-or-none: present in every row when any day in the
// horizon has nonzero snowfall, absent everywhere otherwise.
func Forecast(snap *model.Snapshot, p Params) []model.Report {
	u := p.Units

	withSnow := false
	for _, d := range snap.Days {
		if model.F64(d.TotalSnowCM, 0) > 0 {
			withSnow = true
			break
		}
	}

	rows := make([]model.Report, 0, len(snap.Days))
	for _, d := range snap.Days {
		noon := representativeHour(d)
		astro := d.Astro()

		fields := []model.Field{
			{Label: LabelDate, Value: model.Or(d.Date, "n/a")},
			temperature(LabelHigh, u.DayMax(d), u),
			temperature(LabelLow, u.DayMin(d), u),
			condition(noon.Conditions, p.Mode, true),
			precipTotal(d, p),
			withLabel(LabelRain, percent(maxChanceOfRain(d))),
			wind(noon.Conditions, u, p.Mode),
			{
				Label: LabelUV,
				Value: fmt.Sprintf("%d", model.Int(d.UVIndex, 0)),
				Raw:   model.Int(d.UVIndex, 0),
			},
			{
				Label: LabelSunrise,
				Value: model.Or(astro.Sunrise, "n/a"),
			},
			{
				Label: LabelSunset,
				Value: model.Or(astro.Sunset, "n/a"),
			},
		}
		if withSnow {
			fields = append(fields, model.Field{
				Label: LabelSnow,
				Value: fmt.Sprintf("%.1f %s", u.Snow(d), u.SnowLabel),
				Raw:   u.Snow(d),
			})
		}
		rows = append(rows, model.Report{Fields: fields})
	}
	return rows
}

// representativeHour picks the daytime row that stands for the whole day:
// noon when present, else the middle row, else a zero record.
func representativeHour(d model.Day) model.HourlyConditions {
	for _, h := range d.Hourly {
		if h.Hour() == 12 {
			return h
		}
	}
	if len(d.Hourly) > 0 {
		return d.Hourly[len(d.Hourly)/2]
	}
	return model.HourlyConditions{}
}

// precipTotal sums the hourly precipitation for the day in display units.
func precipTotal(d model.Day, p Params) model.Field {
	var total float64
	for _, h := range d.Hourly {
		total += p.Units.Precip(h.Conditions)
	}
	return model.Field{
		Label: LabelPrecip,
		Value: fmt.Sprintf("%.1f %s", total, p.Units.PrecipLabel),
		Raw:   total,
	}
}

// maxChanceOfRain returns the day's peak precipitation probability.
func maxChanceOfRain(d model.Day) string {
	max := 0
	for _, h := range d.Hourly {
		if v := model.Int(h.ChanceOfRain, 0); v > max {
			max = v
		}
	}
	return fmt.Sprintf("%d", max)
}
