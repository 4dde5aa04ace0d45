package hafas

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/polyline"
	"github.com/paulmach/orb/geojson"
)

// decodePolyline decodes a HAFAS "crdEncYX" Google-style encoded polyline
// (precision 5, per the original's `polyline::decode_polyline(&s, 5)`) into
// a FeatureCollection of point features, mirroring the original's
// geojson::FeatureCollection output shape. A malformed string yields an
// empty collection rather than failing the whole leg parse, since a
// polyline is supplementary geometry, never load-bearing for a Journey.
func decodePolyline(encoded string) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if encoded == "" {
		return fc
	}

	line, err := polyline.Codec5.Decode(encoded)
	if err != nil {
		return fc
	}
	for _, p := range line {
		fc.Append(geojson.NewFeature(orb.Point(p)))
	}
	return fc
}

// concatPolylines stitches the per-feature references addressed by a leg's
// polyG.polyXL into one FeatureCollection, per SPEC_FULL.md §4.7.
func concatPolylines(tables *commonTables, indices []int) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, idx := range indices {
		if idx < 0 || idx >= len(tables.polylines) {
			continue
		}
		src := tables.polylines[idx]
		if src == nil {
			continue
		}
		fc.Features = append(fc.Features, src.Features...)
	}
	return fc
}
