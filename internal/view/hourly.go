package view

import (
	"fmt"

	"github.com/nimbus-weather/nimbus/internal/model"
)

// Hourly builds one row per 3-hour boundary of the current calendar day.
// The provider delivers eight rows per day at those boundaries already, but
// the filter is explicit so a denser payload still yields 3-hourly output.
func Hourly(snap *model.Snapshot, p Params) []model.Report {
	today := snap.Today()
	astro := today.Astro()
	u := p.Units

	var rows []model.Report
	for _, h := range today.Hourly {
		hour := h.Hour()
		if hour < 0 || hour%3 != 0 {
			continue
		}
		rows = append(rows, model.Report{Fields: []model.Field{
			{Label: LabelTime, Value: fmt.Sprintf("%02d:00", hour), Raw: hour},
			temperature(LabelTemp, u.HourTemp(h), u),
			condition(h.Conditions, p.Mode, isDaytimeHour(hour, astro)),
			withLabel(LabelRain, percent(h.ChanceOfRain)),
			wind(h.Conditions, u, p.Mode),
			withLabel(LabelHumidity, percent(h.Humidity)),
		}})
	}
	return rows
}
