package view

import (
	"fmt"

	"github.com/nimbus-weather/nimbus/internal/icons"
	"github.com/nimbus-weather/nimbus/internal/model"
)

// Air builds the air-quality report. A nil sub-record (secondary fetch
// failed or unsupported) degrades every field to "unavailable" rather than
// failing the view.
func Air(snap *model.Snapshot, p Params) model.Report {
	aq := snap.AirQuality
	if aq == nil {
		aq = &model.AirQuality{}
	}

	return model.Report{
		Title: snap.Location.Display(),
		Fields: []model.Field{
			pollutant(LabelPM25, aq.PM25, "µg/m³"),
			pollutant(LabelPM10, aq.PM10, "µg/m³"),
			pollutant(LabelOzone, aq.Ozone, "µg/m³"),
			pollutant(LabelNO2, aq.NO2, "µg/m³"),
			aqiIndex(LabelUSAQI, aq.USAQI),
			aqiIndex(LabelEuroAQI, aq.EuroAQI),
		},
	}
}

func pollutant(label string, v *float64, unit string) model.Field {
	if v == nil {
		return model.Field{Label: label, Value: "unavailable"}
	}
	return model.Field{
		Label: label,
		Value: fmt.Sprintf("%.1f %s", *v, unit),
		Raw:   *v,
	}
}

// aqiIndex renders an AQI value with its band label. Both the US and EU
// scales band at the same 50/100/150/200 breakpoints.
func aqiIndex(label string, v *float64) model.Field {
	if v == nil {
		return model.Field{Label: label, Value: "unavailable"}
	}
	band, _ := icons.AQIBand(*v)
	return model.Field{
		Label: label,
		Value: fmt.Sprintf("%.0f (%s)", *v, band),
		Raw:   *v,
	}
}
