package meteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/nimbus-weather/nimbus/internal/model"
)

// GetWeather fetches the full forecast payload for a resolved location.
// The snapshot keeps the verbatim body in Raw and carries the location it
// was fetched for. A payload with no current-conditions record fails loudly
// rather than rendering a nonsensical table.
func (c *Client) GetWeather(ctx context.Context, loc model.Location, lang string) (*model.Snapshot, error) {
	place := fmt.Sprintf("%.4f,%.4f", loc.Latitude, loc.Longitude)
	reqURL := c.ep.Weather + url.PathEscape(place) + "?format=j1"
	if lang != "" {
		reqURL += "&lang=" + url.QueryEscape(lang)
	}

	var snap model.Snapshot
	body, err := c.getJSON(ctx, reqURL, &snap)
	if err != nil {
		return nil, fmt.Errorf("weather %s: %w", loc.Display(), err)
	}
	if len(snap.Current) == 0 {
		return nil, &MalformedError{Missing: "current_condition"}
	}
	snap.Raw = body
	snap.Location = loc
	return &snap, nil
}

// DecodeSnapshot restores a cached snapshot. Cached bodies already carry the
// resolved location merged in, so no second resolution happens on a hit.
func DecodeSnapshot(payload []byte) (*model.Snapshot, error) {
	var snap model.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("decoding cached snapshot: %w", err)
	}
	if len(snap.Current) == 0 {
		return nil, &MalformedError{Missing: "current_condition"}
	}
	snap.Raw = payload
	return &snap, nil
}

// EncodeSnapshot serialises a snapshot for the cache: the provider payload
// plus the resolved location (and air quality when present) merged in.
func EncodeSnapshot(snap *model.Snapshot) ([]byte, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}
