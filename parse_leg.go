package hafas

import (
	"encoding/json"
	"time"
)

// hafasLegSide is the raw shape of a leg's dep/arr block.
type hafasLegSide struct {
	TZOffset *int    `json:"tZOffset"`
	TimeS    *string `json:"timeS"`
	TimeR    *string `json:"timeR"`
	PlatfS   *string `json:"platfS"`
	PlatfR   *string `json:"platfR"`
	PltfS    *struct {
		Txt string `json:"txt"`
	} `json:"pltfS"`
	PltfR *struct {
		Txt string `json:"txt"`
	} `json:"pltfR"`
	Cncl *bool `json:"cncl"`
	LocX int   `json:"locX"`
}

func (s hafasLegSide) toSide() hafasSide {
	side := hafasSide{
		TZOffset: s.TZOffset,
		TimeS:    s.TimeS,
		TimeR:    s.TimeR,
		PlatfS:   s.PlatfS,
		PlatfR:   s.PlatfR,
		LocX:     s.LocX,
	}
	if s.PltfS != nil {
		side.PltfSTxt = &s.PltfS.Txt
	}
	if s.PltfR != nil {
		side.PltfRTxt = &s.PltfR.Txt
	}
	if s.Cncl != nil {
		side.Cancel = *s.Cncl
	}
	return side
}

// hafasLegJny is the raw shape of a JNY/TETA leg's `jny` block.
type hafasLegJny struct {
	Jid     *string           `json:"jid"`
	IsRchbl *bool             `json:"isRchbl"`
	DirTxt  *string           `json:"dirTxt"`
	ProdX   *int              `json:"prodX"`
	StopL   []hafasStopover   `json:"stopL"`
	MsgL    []hafasLegMsg     `json:"msgL"`
	PolyG   *hafasLegJnyPolyG `json:"polyG"`
	DTrnCmpSX *struct {
		TcocX []int `json:"tcocX"`
	} `json:"dTrnCmpSX"`
	Freq *struct {
		MinC *uint64 `json:"minC"`
		MaxC *uint64 `json:"maxC"`
		NumC *uint64 `json:"numC"`
	} `json:"freq"`
}

type hafasLegJnyPolyG struct {
	PolyXL []int `json:"polyXL"`
}

type hafasLegMsg struct {
	RemX *int `json:"remX"`
}

type hafasLegGis struct {
	Dist *uint64 `json:"dist"`
}

// hafasLeg is the raw shape of one leg in a journey's `secL`.
type hafasLeg struct {
	Dep  hafasLegSide `json:"dep"`
	Arr  hafasLegSide `json:"arr"`
	Jny  *hafasLegJny `json:"jny"`
	Gis  *hafasLegGis `json:"gis"`
	Type string       `json:"type"`
	Hide *bool        `json:"hide"`
}

// parseLeg decodes one journey leg, branching by `type` per SPEC_FULL.md
// §4.7. Returns (nil, nil) for a hidden leg, which the caller drops.
func parseLeg(profile Profile, tables *commonTables, raw json.RawMessage, date time.Time, withPolylines bool) (*Leg, error) {
	var hl hafasLeg
	if err := json.Unmarshal(raw, &hl); err != nil {
		return nil, &ParseError{Info: "decoding leg", Err: err}
	}
	if hl.Hide != nil && *hl.Hide {
		return nil, nil
	}

	origin, err := tables.placeAt(hl.Dep.LocX)
	if err != nil {
		return nil, err
	}
	destination, err := tables.placeAt(hl.Arr.LocX)
	if err != nil {
		return nil, err
	}

	// Workaround for vendor timezone bugs on walking transitions: if one
	// side's offset is zero and the other's isn't, copy the non-zero
	// offset across.
	if hl.Type == "WALK" {
		depZero := hl.Dep.TZOffset == nil || *hl.Dep.TZOffset == 0
		arrZero := hl.Arr.TZOffset == nil || *hl.Arr.TZOffset == 0
		if depZero != arrZero {
			if depZero {
				hl.Dep.TZOffset = hl.Arr.TZOffset
			} else {
				hl.Arr.TZOffset = hl.Dep.TZOffset
			}
		}
	}

	dep, err := parseArrivalOrDeparture(profile, hl.Dep.toSide(), date)
	if err != nil {
		return nil, err
	}
	arr, err := parseArrivalOrDeparture(profile, hl.Arr.toSide(), date)
	if err != nil {
		return nil, err
	}

	leg := &Leg{
		Origin:                   *origin,
		Destination:              *destination,
		Departure:                rezone(profile, dep.Time),
		PlannedDeparture:         rezone(profile, dep.PlannedTime),
		Arrival:                  rezone(profile, arr.Time),
		PlannedArrival:           rezone(profile, arr.PlannedTime),
		ArrivalPlatform:          arr.Platform,
		PlannedArrivalPlatform:   arr.PlannedPlatform,
		DeparturePlatform:        dep.Platform,
		PlannedDeparturePlatform: dep.PlannedPlatform,
		Cancelled:                dep.Cancelled || arr.Cancelled,
		Reachable:                true,
	}

	switch hl.Type {
	case "JNY", "TETA":
		if hl.Jny == nil {
			return nil, parseErrorf("missing jny field")
		}
		jny := hl.Jny

		if jny.ProdX != nil {
			line, err := tables.lineAt(*jny.ProdX)
			if err != nil {
				return nil, err
			}
			leg.Line = line
		}
		if jny.IsRchbl != nil {
			leg.Reachable = *jny.IsRchbl
		}
		leg.TripID = jny.Jid
		leg.Direction = jny.DirTxt

		for _, s := range jny.StopL {
			stop, err := parseStopover(profile, tables, s, date)
			if err != nil {
				return nil, err
			}
			leg.IntermediateLocations = append(leg.IntermediateLocations, IntermediateLocation{Stop: stop})
		}

		for _, m := range jny.MsgL {
			if m.RemX == nil {
				continue
			}
			rem, err := tables.remarkAt(*m.RemX)
			if err != nil {
				return nil, err
			}
			if rem == nil {
				continue
			}
			leg.Remarks = append(leg.Remarks, *rem)
		}

		if jny.Freq != nil {
			freq := &Frequency{Iterations: jny.Freq.NumC}
			if jny.Freq.MinC != nil {
				d := time.Duration(*jny.Freq.MinC) * time.Minute
				freq.Minimum = &d
			}
			if jny.Freq.MaxC != nil {
				d := time.Duration(*jny.Freq.MaxC) * time.Minute
				freq.Maximum = &d
			}
			leg.Frequency = freq
		}

		if withPolylines && jny.PolyG != nil {
			leg.Polyline = concatPolylines(tables, jny.PolyG.PolyXL)
		}

		if jny.DTrnCmpSX != nil {
			lf, err := tables.loadFactorFor(profile, jny.DTrnCmpSX.TcocX)
			if err != nil {
				return nil, err
			}
			leg.LoadFactor = lf
		}

	case "WALK":
		leg.Walking = true
		if hl.Gis != nil {
			leg.Distance = hl.Gis.Dist
		}

	case "TRSF", "DEVI":
		leg.Transfer = true

	case "CHKI":
		// no extra flags

	default:
		return nil, parseErrorf("unknown leg type: %q", hl.Type)
	}

	return leg, nil
}

// hafasStopover is the raw shape of one jny.stopL entry.
type hafasStopover struct {
	LocX int `json:"locX"`

	ATZOffset *int    `json:"aTZOffset"`
	ATimeS    *string `json:"aTimeS"`
	ATimeR    *string `json:"aTimeR"`
	APlatfS   *string `json:"aPlatfS"`
	APlatfR   *string `json:"aPlatfR"`
	APltfS    *struct {
		Txt string `json:"txt"`
	} `json:"aPltfS"`
	APltfR *struct {
		Txt string `json:"txt"`
	} `json:"aPltfR"`
	ACncl *bool `json:"aCncl"`

	DTZOffset *int    `json:"dTZOffset"`
	DTimeS    *string `json:"dTimeS"`
	DTimeR    *string `json:"dTimeR"`
	DPlatfS   *string `json:"dPlatfS"`
	DPlatfR   *string `json:"dPlatfR"`
	DPltfS    *struct {
		Txt string `json:"txt"`
	} `json:"dPltfS"`
	DPltfR *struct {
		Txt string `json:"txt"`
	} `json:"dPltfR"`
	DCncl *bool `json:"dCncl"`

	MsgL []hafasLegMsg `json:"msgL"`
}

func parseStopover(profile Profile, tables *commonTables, raw hafasStopover, date time.Time) (*Stop, error) {
	place, err := tables.placeAt(raw.LocX)
	if err != nil {
		return nil, err
	}

	depSide := hafasSide{
		TZOffset: raw.DTZOffset, TimeS: raw.DTimeS, TimeR: raw.DTimeR,
		PlatfS: raw.DPlatfS, PlatfR: raw.DPlatfR,
	}
	if raw.DPltfS != nil {
		depSide.PltfSTxt = &raw.DPltfS.Txt
	}
	if raw.DPltfR != nil {
		depSide.PltfRTxt = &raw.DPltfR.Txt
	}
	if raw.DCncl != nil {
		depSide.Cancel = *raw.DCncl
	}

	arrSide := hafasSide{
		TZOffset: raw.ATZOffset, TimeS: raw.ATimeS, TimeR: raw.ATimeR,
		PlatfS: raw.APlatfS, PlatfR: raw.APlatfR,
	}
	if raw.APltfS != nil {
		arrSide.PltfSTxt = &raw.APltfS.Txt
	}
	if raw.APltfR != nil {
		arrSide.PltfRTxt = &raw.APltfR.Txt
	}
	if raw.ACncl != nil {
		arrSide.Cancel = *raw.ACncl
	}

	dep, err := parseArrivalOrDeparture(profile, depSide, date)
	if err != nil {
		return nil, err
	}
	arr, err := parseArrivalOrDeparture(profile, arrSide, date)
	if err != nil {
		return nil, err
	}

	stop := &Stop{
		Place:              *place,
		Departure:          rezone(profile, dep.Time),
		PlannedDeparture:   rezone(profile, dep.PlannedTime),
		Arrival:            rezone(profile, arr.Time),
		PlannedArrival:     rezone(profile, arr.PlannedTime),
		ArrivalPlatform:    arr.Platform,
		PlannedArrivalPlat: arr.PlannedPlatform,
		DeparturePlatform:  dep.Platform,
		PlannedDepartPlat:  dep.PlannedPlatform,
		Cancelled:          dep.Cancelled || arr.Cancelled,
	}

	for _, m := range raw.MsgL {
		if m.RemX == nil {
			continue
		}
		rem, err := tables.remarkAt(*m.RemX)
		if err != nil {
			return nil, err
		}
		if rem == nil {
			continue
		}
		stop.Remarks = append(stop.Remarks, *rem)
	}

	return stop, nil
}

// rezone re-zones a time into the profile's timezone, leaving a nil time nil.
func rezone(profile Profile, t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	zoned := t.In(profile.Timezone())
	return &zoned
}
