package hafas

import (
	"encoding/json"
	"testing"
)

func TestParseJourneyDropsZeroMinuteWalkAndBuildsFallbackID(t *testing.T) {
	tables := testCommonTables(t)

	raw := json.RawMessage(`{
		"date": "20240601",
		"secL": [
			{
				"type": "JNY",
				"dep": {"locX": 0, "timeS": "100000", "tZOffset": 60},
				"arr": {"locX": 1, "timeS": "110000", "tZOffset": 60},
				"jny": {"jid": "trip-1", "prodX": 0}
			},
			{
				"type": "WALK",
				"dep": {"locX": 1, "timeS": "120000", "tZOffset": 0},
				"arr": {"locX": 1, "timeS": "120000", "tZOffset": 0}
			}
		]
	}`)

	journey, skips, err := parseJourney(DB, tables, raw, false)
	if err != nil {
		t.Fatalf("parseJourney: %v", err)
	}
	if skips.ZeroMinuteWalks != 1 {
		t.Fatalf("got %d zero-minute-walk skips, want 1", skips.ZeroMinuteWalks)
	}
	if len(journey.Legs) != 1 {
		t.Fatalf("got %d legs, want 1 (the zero-minute walk should be dropped)", len(journey.Legs))
	}
	if journey.ID == "" {
		t.Fatalf("expected a non-empty fallback journey id")
	}
	if journey.ID != journey.Legs[0].ID()+"|" {
		t.Fatalf("got id %q, want the single surviving leg's id plus a trailing pipe", journey.ID)
	}
}

func TestParseJourneyPrefersReconCtx(t *testing.T) {
	tables := testCommonTables(t)

	raw := json.RawMessage(`{
		"date": "20240601",
		"recon": {"ctx": "recon-token-1"},
		"ctxRecon": "legacy-token",
		"secL": [
			{
				"type": "JNY",
				"dep": {"locX": 0, "timeS": "100000", "tZOffset": 60},
				"arr": {"locX": 1, "timeS": "110000", "tZOffset": 60},
				"jny": {"jid": "trip-1", "prodX": 0}
			}
		]
	}`)

	journey, _, err := parseJourney(DB, tables, raw, false)
	if err != nil {
		t.Fatalf("parseJourney: %v", err)
	}
	if journey.ID != "recon-token-1" {
		t.Fatalf("got id %q, want recon.ctx to take priority", journey.ID)
	}
}

func TestParseJourneyFallsBackToCtxRecon(t *testing.T) {
	tables := testCommonTables(t)

	raw := json.RawMessage(`{
		"date": "20240601",
		"ctxRecon": "legacy-token",
		"secL": [
			{
				"type": "JNY",
				"dep": {"locX": 0, "timeS": "100000", "tZOffset": 60},
				"arr": {"locX": 1, "timeS": "110000", "tZOffset": 60},
				"jny": {"jid": "trip-1", "prodX": 0}
			}
		]
	}`)

	journey, _, err := parseJourney(DB, tables, raw, false)
	if err != nil {
		t.Fatalf("parseJourney: %v", err)
	}
	if journey.ID != "legacy-token" {
		t.Fatalf("got id %q, want ctxRecon", journey.ID)
	}
}

func TestLowestPriceIgnoresZeroAndNegativeFares(t *testing.T) {
	trfRes := &hafasJourneyTrfRes{
		FareSetL: []hafasJourneyFareSet{
			{FareL: []hafasJourneyFare{
				{Price: &struct {
					Amount int64 `json:"amount"`
				}{Amount: 0}},
				{Price: &struct {
					Amount int64 `json:"amount"`
				}{Amount: 4200}},
				{Price: &struct {
					Amount int64 `json:"amount"`
				}{Amount: 1500}},
			}},
		},
	}
	price := lowestPrice(DB, trfRes)
	if price == nil {
		t.Fatalf("expected a non-nil price")
	}
	if price.Amount != 15.0 {
		t.Fatalf("got amount %v, want 15.0", price.Amount)
	}
	if price.Currency != "EUR" {
		t.Fatalf("got currency %q, want EUR", price.Currency)
	}
}

func TestLowestPriceNilWhenNoFares(t *testing.T) {
	if price := lowestPrice(DB, nil); price != nil {
		t.Fatalf("expected nil price for a nil trfRes, got %v", price)
	}
}
