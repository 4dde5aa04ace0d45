package hafas

import (
	"encoding/json"
	"testing"
)

func berlinPlaceFixture() string {
	return `{"type": "S", "name": "Berlin Hbf", "extId": "8011160", "pCls": 1, "crd": {"x": 52525589, "y": 13369545}}`
}

func icePLineFixture() string {
	return `{"name": "ICE 123", "cls": 1, "opX": 0, "prodCtx": {"catOutL": " ICE "}}`
}

func dbOperatorFixture() string {
	return `{"name": "DB Fernverkehr AG"}`
}

func TestResolveCommonBestEffortPlaces(t *testing.T) {
	raw := &hafasCommon{
		LocL:  []json.RawMessage{json.RawMessage(berlinPlaceFixture()), json.RawMessage(`{"type": "bogus"}`)},
		OpL:   []json.RawMessage{json.RawMessage(dbOperatorFixture())},
		ProdL: []json.RawMessage{json.RawMessage(icePLineFixture())},
	}

	tables, err := resolveCommon(DB, raw, TariffClassSecond, false)
	if err != nil {
		t.Fatalf("resolveCommon: %v", err)
	}

	if len(tables.places) != 2 {
		t.Fatalf("got %d places, want 2", len(tables.places))
	}
	if tables.places[0] == nil || tables.places[0].Station == nil {
		t.Fatalf("expected places[0] to be a parsed station")
	}
	if tables.places[1] != nil {
		t.Fatalf("expected places[1] to be nil (unknown type)")
	}

	if _, err := tables.placeAt(1); err == nil {
		t.Fatalf("expected placeAt to error on a failed entry")
	}
	if _, err := tables.placeAt(5); err == nil {
		t.Fatalf("expected placeAt to error on an out-of-range index")
	}
	place, err := tables.placeAt(0)
	if err != nil {
		t.Fatalf("placeAt(0): %v", err)
	}
	if place.Station.ID != "8011160" {
		t.Fatalf("got station id %q, want 8011160", place.Station.ID)
	}
}

func TestResolveCommonRequiresOperators(t *testing.T) {
	raw := &hafasCommon{
		OpL: []json.RawMessage{json.RawMessage(`{"name": ""}`)},
	}
	if _, err := resolveCommon(DB, raw, TariffClassSecond, false); err == nil {
		t.Fatalf("expected an error for an unnamed operator")
	}
}

func TestResolveCommonNilInput(t *testing.T) {
	tables, err := resolveCommon(DB, nil, TariffClassSecond, false)
	if err != nil {
		t.Fatalf("resolveCommon(nil): %v", err)
	}
	if tables == nil {
		t.Fatalf("expected a non-nil empty table set")
	}
	if len(tables.places) != 0 {
		t.Fatalf("expected no places")
	}
}

func TestLoadFactorForMatchesTariffClass(t *testing.T) {
	raw := &hafasCommon{
		TcocL: []hafasTcoc{
			{Class: "FIRST", R: 3},
			{Class: "SECOND", R: 1},
		},
	}
	tables, err := resolveCommon(DB, raw, TariffClassSecond, false)
	if err != nil {
		t.Fatalf("resolveCommon: %v", err)
	}

	lf, err := tables.loadFactorFor(DB, []int{0, 1})
	if err != nil {
		t.Fatalf("loadFactorFor: %v", err)
	}
	if lf == nil {
		t.Fatalf("expected a matching load factor")
	}
	if *lf != LoadFactorLowToMedium {
		t.Fatalf("got %v, want LoadFactorLowToMedium", *lf)
	}
}

func TestLoadFactorForNoMatch(t *testing.T) {
	raw := &hafasCommon{
		TcocL: []hafasTcoc{{Class: "FIRST", R: 3}},
	}
	tables, err := resolveCommon(DB, raw, TariffClassSecond, false)
	if err != nil {
		t.Fatalf("resolveCommon: %v", err)
	}
	lf, err := tables.loadFactorFor(DB, []int{0})
	if err != nil {
		t.Fatalf("loadFactorFor: %v", err)
	}
	if lf != nil {
		t.Fatalf("expected no match, got %v", *lf)
	}
}

func TestParseLineResolvesOperatorByIndex(t *testing.T) {
	operators := []Operator{NewOperator("DB Fernverkehr AG")}
	line, err := parseLine(DB, json.RawMessage(icePLineFixture()), operators)
	if err != nil {
		t.Fatalf("parseLine: %v", err)
	}
	if line.Mode != ModeHighSpeedTrain {
		t.Fatalf("got mode %v, want ModeHighSpeedTrain", line.Mode)
	}
	if line.Operator == nil || line.Operator.Name != "DB Fernverkehr AG" {
		t.Fatalf("expected operator to be resolved by index")
	}
	if line.ProductName == nil || *line.ProductName != "ICE" {
		t.Fatalf("got product name %v, want \"ICE\"", line.ProductName)
	}
}
