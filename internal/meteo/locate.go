package meteo

import (
	"context"
	"fmt"
	"net/url"

	"github.com/nimbus-weather/nimbus/internal/model"
)

// Geocode resolves free text to a location. Only the first (best) match is
// taken; zero results is a *NotFoundError.
func (c *Client) Geocode(ctx context.Context, query, lang string) (model.Location, error) {
	params := url.Values{}
	params.Set("name", query)
	params.Set("count", "1")
	params.Set("format", "json")
	if lang != "" {
		params.Set("language", lang)
	}

	var raw struct {
		Results []struct {
			Name        string  `json:"name"`
			Admin1      string  `json:"admin1"`
			Country     string  `json:"country"`
			CountryCode string  `json:"country_code"`
			Latitude    float64 `json:"latitude"`
			Longitude   float64 `json:"longitude"`
		} `json:"results"`
	}
	if _, err := c.getJSON(ctx, c.ep.Geocode+"?"+params.Encode(), &raw); err != nil {
		return model.Location{}, fmt.Errorf("geocoding %q: %w", query, err)
	}
	if len(raw.Results) == 0 {
		return model.Location{}, &NotFoundError{Query: query}
	}

	r := raw.Results[0]
	return model.Location{
		Name:        r.Name,
		Region:      r.Admin1,
		Country:     r.Country,
		CountryCode: r.CountryCode,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
	}, nil
}

// DetectLocation resolves the caller's location from their public IP. Used
// only when the query string is empty. A missing country code is defaulted
// to "" so downstream unit selection falls through to metric instead of
// failing.
func (c *Client) DetectLocation(ctx context.Context) (model.Location, error) {
	var raw struct {
		Status      string  `json:"status"`
		Message     string  `json:"message"`
		City        string  `json:"city"`
		RegionName  string  `json:"regionName"`
		Country     string  `json:"country"`
		CountryCode string  `json:"countryCode"`
		Lat         float64 `json:"lat"`
		Lon         float64 `json:"lon"`
	}
	if _, err := c.getJSON(ctx, c.ep.IP, &raw); err != nil {
		return model.Location{}, fmt.Errorf("detecting location: %w", err)
	}
	if raw.Status != "" && raw.Status != "success" {
		return model.Location{}, &FetchError{
			Err: fmt.Errorf("ip lookup: %s", model.Or(raw.Message, "unknown failure")),
		}
	}

	return model.Location{
		Name:        raw.City,
		Region:      raw.RegionName,
		Country:     raw.Country,
		CountryCode: raw.CountryCode,
		Latitude:    raw.Lat,
		Longitude:   raw.Lon,
	}, nil
}
