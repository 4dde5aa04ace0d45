package hafas

import (
	"testing"
	"time"
)

func TestParseHafasDateSixChars(t *testing.T) {
	raw := "143000"
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	offset := 120
	got, err := parseHafasDate(DB, &raw, &offset, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Hour() != 14 || got.Minute() != 30 {
		t.Fatalf("got %v, want 14:30", got)
	}
	if got.Day() != 1 {
		t.Fatalf("got day %d, want 1 (no day offset)", got.Day())
	}
}

func TestParseHafasDateEightCharsDayOffset(t *testing.T) {
	raw := "01143000"
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	offset := 0
	got, err := parseHafasDate(DB, &raw, &offset, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Day() != 2 {
		t.Fatalf("got day %d, want 2 (one day offset)", got.Day())
	}
}

func TestParseHafasDateNil(t *testing.T) {
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	got, err := parseHafasDate(DB, nil, nil, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil time for nil input")
	}
}

func TestParseHafasDateInvalidLength(t *testing.T) {
	raw := "123"
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := parseHafasDate(DB, &raw, nil, date)
	if err == nil {
		t.Fatalf("expected error for invalid length")
	}
}

func TestParseHafasDateResolvesOffsetFromTimezoneWhenUnambiguous(t *testing.T) {
	raw := "143000"
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	got, err := parseHafasDate(DB, &raw, nil, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, offset := got.Zone(); offset != 2*60*60 {
		t.Fatalf("got offset %d, want 7200 (CEST)", offset)
	}
}

func TestParseHafasDateRejectsAmbiguousFallBackTime(t *testing.T) {
	// Europe/Berlin falls back from CEST to CET at 2024-10-27 03:00 CEST,
	// so the wall-clock reading 02:30 occurs twice that morning.
	raw := "023000"
	date := time.Date(2024, 10, 27, 0, 0, 0, 0, time.UTC)
	if _, err := parseHafasDate(DB, &raw, nil, date); err == nil {
		t.Fatalf("expected an error for an ambiguous fall-back local time")
	}
}

func TestParseHafasDateDoesNotFlagSpringForwardGap(t *testing.T) {
	// Europe/Berlin springs forward from CET to CEST at 2024-03-31 02:00
	// CET, skipping straight to 03:00 CEST; 02:30 never occurs that day but
	// is not the ambiguity this guard targets, so it must not be rejected
	// for that reason (time.Date normalizes it to the post-transition side).
	raw := "023000"
	date := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	if _, err := parseHafasDate(DB, &raw, nil, date); err != nil {
		t.Fatalf("unexpected error for a spring-forward gap time: %v", err)
	}
}
