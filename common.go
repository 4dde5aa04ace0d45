package hafas

import (
	"encoding/json"

	"github.com/paulmach/orb/geojson"
)

// hafasCommon is the raw shape of a response's `common` indirection block:
// parallel arrays referenced by integer offset from everywhere else in the
// payload.
type hafasCommon struct {
	LocL  []json.RawMessage `json:"locL"`
	ProdL []json.RawMessage `json:"prodL"`
	OpL   []json.RawMessage `json:"opL"`
	TcocL []hafasTcoc       `json:"tcocL"`
	RemL  []json.RawMessage `json:"remL"`
	PolyL []hafasPoly       `json:"polyL"`
}

// hafasTcoc is one entry of the load-factor table: `c` is the tariff class
// ("FIRST"/"SECOND") and `r` the vendor's raw load-factor code.
type hafasTcoc struct {
	Class string `json:"c"`
	R     int    `json:"r"`
}

type hafasPoly struct {
	CrdEncYX string `json:"crdEncYX"`
}

// commonTables is the decoded, best-effort form of hafasCommon: entries that
// fail to parse individually are recorded as nil rather than aborting the
// whole response, per SPEC_FULL.md §4.5.
type commonTables struct {
	places      []*Place
	lines       []*Line
	operators   []Operator
	remarks     []*Remark
	loadFactors []hafasTcoc
	polylines   []*geojson.FeatureCollection

	// tariffClass is the class the originating request asked for, carried
	// along so leg parsing can pick the matching load-factor entry.
	tariffClass TariffClass
}

// resolveCommon decodes a response's common block. Places, lines, and
// remarks are decoded best-effort (a failing entry becomes nil); operators
// and load-factor entries must all succeed since nothing downstream has a
// sensible fallback for a missing operator or load level.
func resolveCommon(profile Profile, raw *hafasCommon, tariffClass TariffClass, withPolylines bool) (*commonTables, error) {
	tables := &commonTables{tariffClass: tariffClass}
	if raw == nil {
		return tables, nil
	}

	tables.places = make([]*Place, len(raw.LocL))
	for i, entry := range raw.LocL {
		place, err := parseHafasPlace(profile, entry)
		if err != nil {
			tables.places[i] = nil
			continue
		}
		tables.places[i] = place
	}

	tables.operators = make([]Operator, len(raw.OpL))
	for i, entry := range raw.OpL {
		op, err := parseOperator(entry)
		if err != nil {
			return nil, err
		}
		tables.operators[i] = op
	}

	tables.lines = make([]*Line, len(raw.ProdL))
	for i, entry := range raw.ProdL {
		line, err := parseLine(profile, entry, tables.operators)
		if err != nil {
			tables.lines[i] = nil
			continue
		}
		tables.lines[i] = line
	}

	tables.remarks = make([]*Remark, len(raw.RemL))
	for i, entry := range raw.RemL {
		rem, err := parseRemark(profile, entry)
		if err != nil {
			tables.remarks[i] = nil
			continue
		}
		tables.remarks[i] = rem
	}

	tables.loadFactors = raw.TcocL

	if withPolylines {
		tables.polylines = make([]*geojson.FeatureCollection, len(raw.PolyL))
		for i, entry := range raw.PolyL {
			tables.polylines[i] = decodePolyline(entry.CrdEncYX)
		}
	}

	return tables, nil
}

// placeAt dereferences a place-table index, turning an out-of-range index or
// a previously-failed entry into a parse error only at the point of actual
// use, per SPEC_FULL.md §4.5.
func (c *commonTables) placeAt(idx int) (*Place, error) {
	if idx < 0 || idx >= len(c.places) {
		return nil, parseErrorf("invalid place index: %d", idx)
	}
	p := c.places[idx]
	if p == nil {
		return nil, parseErrorf("parse error place index: %d", idx)
	}
	return p, nil
}

func (c *commonTables) lineAt(idx int) (*Line, error) {
	if idx < 0 || idx >= len(c.lines) {
		return nil, parseErrorf("invalid line index: %d", idx)
	}
	l := c.lines[idx]
	if l == nil {
		return nil, parseErrorf("parse error line index: %d", idx)
	}
	return l, nil
}

func (c *commonTables) remarkAt(idx int) (*Remark, error) {
	if idx < 0 || idx >= len(c.remarks) {
		return nil, parseErrorf("invalid remark index: %d", idx)
	}
	return c.remarks[idx], nil
}

// loadFactorFor picks the load-factor entry matching the originating
// request's tariff class among the entries referenced by a leg's
// dTrnCmpSX.tcocX indices, per SPEC_FULL.md §4.7.
func (c *commonTables) loadFactorFor(profile Profile, tcocX []int) (*LoadFactor, error) {
	want := c.tariffClass.hafasClassName()
	for _, idx := range tcocX {
		if idx < 0 || idx >= len(c.loadFactors) {
			continue
		}
		entry := c.loadFactors[idx]
		if entry.Class != want {
			continue
		}
		lf, err := profile.ParseLoadFactor(entry.R)
		if err != nil {
			return nil, err
		}
		return &lf, nil
	}
	return nil, nil
}
