package meteo

import (
	"context"
	"fmt"
	"net/url"

	"github.com/nimbus-weather/nimbus/internal/model"
)

// airFields is the pollutant set requested from the air-quality service.
const airFields = "pm2_5,pm10,ozone,nitrogen_dioxide,us_aqi,european_aqi"

// GetAirQuality fetches the current air-quality record for a coordinate.
// Callers treat a failure here as non-fatal: the snapshot degrades to an
// absent air-quality sub-record.
func (c *Client) GetAirQuality(ctx context.Context, lat, lon float64) (*model.AirQuality, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%.4f", lat))
	params.Set("longitude", fmt.Sprintf("%.4f", lon))
	params.Set("current", airFields)

	var raw struct {
		Current model.AirQuality `json:"current"`
	}
	if _, err := c.getJSON(ctx, c.ep.Air+"?"+params.Encode(), &raw); err != nil {
		return nil, fmt.Errorf("air quality: %w", err)
	}
	aq := raw.Current
	return &aq, nil
}
