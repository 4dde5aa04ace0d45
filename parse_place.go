package hafas

import "encoding/json"

// hafasPlace is the raw shape of one locL entry.
type hafasPlace struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	ExtID string `json:"extId"`
	PCls  int    `json:"pCls"`
	Crd   *struct {
		X int64 `json:"x"`
		Y int64 `json:"y"`
	} `json:"crd"`
}

// parseHafasPlace decodes one common.locL entry into a Place, branching on
// `type` per SPEC_FULL.md §4.6: "S" is a Station, "A" an Address, "P" a Point.
func parseHafasPlace(profile Profile, raw json.RawMessage) (*Place, error) {
	var hp hafasPlace
	if err := json.Unmarshal(raw, &hp); err != nil {
		return nil, &ParseError{Info: "decoding place", Err: err}
	}

	var lat, lon float64
	if hp.Crd != nil {
		lat = float64(hp.Crd.X) / 1e6
		lon = float64(hp.Crd.Y) / 1e6
	}

	name := hp.Name

	switch hp.Type {
	case "S":
		station := Station{
			ID:       hp.ExtID,
			Name:     &name,
			Products: parseProducts(hp.PCls, profile.Products()),
		}
		if hp.Crd != nil {
			station.Location = &Location{Latitude: lat, Longitude: lon}
		}
		p := PlaceFromStation(station)
		return &p, nil
	case "A":
		loc := Location{Address: name, Latitude: lat, Longitude: lon}
		p := PlaceFromLocation(loc)
		return &p, nil
	case "P":
		id := hp.ExtID
		loc := Location{Name: &name, POI: true, Latitude: lat, Longitude: lon}
		if id != "" {
			loc.ID = &id
		}
		p := PlaceFromLocation(loc)
		return &p, nil
	default:
		return nil, parseErrorf("unknown place type: %q", hp.Type)
	}
}
