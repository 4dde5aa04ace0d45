package hafas

import (
	"encoding/json"
	"strings"
	"time"
)

// hafasJourney is the raw shape of one journey (`outConL`/Reconstruction
// entry).
type hafasJourney struct {
	Date     string            `json:"date"`
	CtxRecon *string           `json:"ctxRecon"`
	Recon    *hafasJourneyRecon `json:"recon"`
	SecL     []json.RawMessage `json:"secL"`
	TrfRes   *hafasJourneyTrfRes `json:"trfRes"`
}

type hafasJourneyRecon struct {
	Ctx *string `json:"ctx"`
}

type hafasJourneyTrfRes struct {
	FareSetL []hafasJourneyFareSet `json:"fareSetL"`
}

type hafasJourneyFareSet struct {
	FareL []hafasJourneyFare `json:"fareL"`
}

type hafasJourneyFare struct {
	Price *struct {
		Amount int64 `json:"amount"`
	} `json:"price"`
}

// parseJourney decodes one journey, aggregating its legs and computing the
// lowest fare and a stable id, per SPEC_FULL.md §4.8.
func parseJourney(profile Profile, tables *commonTables, raw json.RawMessage, withPolylines bool) (*Journey, SkipCounts, error) {
	var hj hafasJourney
	if err := json.Unmarshal(raw, &hj); err != nil {
		return nil, SkipCounts{}, &ParseError{Info: "decoding journey", Err: err}
	}

	date, err := time.ParseInLocation("20060102", hj.Date, profile.Timezone())
	if err != nil {
		return nil, SkipCounts{}, wrapTimeError(err)
	}

	var skips SkipCounts
	var legs []Leg
	for _, raw := range hj.SecL {
		leg, err := parseLeg(profile, tables, raw, date, withPolylines)
		if err != nil {
			return nil, skips, err
		}
		if leg == nil {
			continue // hidden leg, dropped
		}
		if leg.Walking && leg.PlannedDeparture != nil && leg.PlannedArrival != nil &&
			leg.PlannedDeparture.Equal(*leg.PlannedArrival) {
			skips.ZeroMinuteWalks++
			continue
		}
		legs = append(legs, *leg)
	}

	price := lowestPrice(profile, hj.TrfRes)

	id := journeyID(hj, legs)

	return &Journey{ID: id, Legs: legs, Price: price}, skips, nil
}

func lowestPrice(profile Profile, trfRes *hafasJourneyTrfRes) *Price {
	if trfRes == nil {
		return nil
	}
	var min int64
	found := false
	for _, set := range trfRes.FareSetL {
		for _, fare := range set.FareL {
			if fare.Price == nil || fare.Price.Amount <= 0 {
				continue
			}
			if !found || fare.Price.Amount < min {
				min = fare.Price.Amount
				found = true
			}
		}
	}
	if !found {
		return nil
	}
	return &Price{Amount: float64(min) / 100.0, Currency: profile.PriceCurrency()}
}

func journeyID(hj hafasJourney, legs []Leg) string {
	if hj.Recon != nil && hj.Recon.Ctx != nil && *hj.Recon.Ctx != "" {
		return *hj.Recon.Ctx
	}
	if hj.CtxRecon != nil && *hj.CtxRecon != "" {
		return *hj.CtxRecon
	}
	var b strings.Builder
	for _, l := range legs {
		b.WriteString(l.ID())
		b.WriteByte('|')
	}
	return b.String()
}

// SkipCounts surfaces diagnostic counters for entries the parser silently
// drops rather than treating as errors -- currently only zero-minute walk
// legs, an upstream artifact the original implementation also drops without
// explanation.
type SkipCounts struct {
	ZeroMinuteWalks int
}
