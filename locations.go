package hafas

import (
	"context"
	"encoding/json"
)

// LocationsOptions configures Client.Locations. The zero value is usable:
// Results defaults to 10. Language is not sent: the request's `lang` field
// is always the profile's Language().
type LocationsOptions struct {
	Results  int
	Language string
}

type hafasLocationsResponse struct {
	Match struct {
		LocL []json.RawMessage `json:"locL"`
	} `json:"match"`
}

// Locations resolves a free-text query to a ranked list of places. Places
// that individually fail to parse are dropped rather than failing the whole
// call, matching the original's filter_map.
func (c *Client) Locations(ctx context.Context, query string, opts LocationsOptions) ([]Place, error) {
	results := opts.Results
	if results == 0 {
		results = c.defaultResult.locations
	}
	lang := opts.Language
	if lang == "" {
		lang = c.profile.Language()
	}

	req := map[string]any{
		"input": map[string]any{
			"loc":    map[string]any{"type": "ALL", "name": query + "?"},
			"maxLoc": results,
			"field":  "S",
		},
	}
	cfg := map[string]any{"polyEnc": "GPA"}

	res, err := c.call(ctx, "LocMatch", cfg, req)
	if err != nil {
		return nil, err
	}

	data, err := decodeTyped[hafasLocationsResponse](res)
	if err != nil {
		return nil, err
	}

	var places []Place
	for _, raw := range data.Match.LocL {
		place, err := parseHafasPlace(c.profile, raw)
		if err != nil {
			continue
		}
		places = append(places, *place)
	}
	return places, nil
}
