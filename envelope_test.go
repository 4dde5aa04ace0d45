package hafas

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestToHafasPlaceStation(t *testing.T) {
	p := PlaceFromStation(Station{ID: "8011160"})
	m, err := toHafasPlace(p)
	if err != nil {
		t.Fatalf("toHafasPlace: %v", err)
	}
	if m["type"] != "S" {
		t.Fatalf("got type %v, want S", m["type"])
	}
	if m["lid"] != "A=1@L=8011160@" {
		t.Fatalf("got lid %v, want A=1@L=8011160@", m["lid"])
	}
}

func TestToHafasPlaceAddress(t *testing.T) {
	p := PlaceFromLocation(Location{Address: "Alexanderplatz 1", Latitude: 52.521, Longitude: 13.411})
	m, err := toHafasPlace(p)
	if err != nil {
		t.Fatalf("toHafasPlace: %v", err)
	}
	if m["type"] != "A" {
		t.Fatalf("got type %v, want A", m["type"])
	}
	want := "A=2@O=Alexanderplatz 1@X=52521000@Y=13411000@"
	if m["lid"] != want {
		t.Fatalf("got lid %v, want %v", m["lid"], want)
	}
}

func TestToHafasPlacePointWithID(t *testing.T) {
	id := "900000000001"
	p := PlaceFromLocation(Location{POI: true, ID: &id, Latitude: 52.5, Longitude: 13.4})
	m, err := toHafasPlace(p)
	if err != nil {
		t.Fatalf("toHafasPlace: %v", err)
	}
	if m["type"] != "P" {
		t.Fatalf("got type %v, want P", m["type"])
	}
	got := m["lid"].(string)
	if !strings.HasPrefix(got, "A=4@X=52500000@Y=13400000@") || !strings.HasSuffix(got, "L=900000000001@") {
		t.Fatalf("got lid %v, doesn't match expected prefix/suffix", got)
	}
}

func TestToHafasPlaceEmptyErrors(t *testing.T) {
	if _, err := toHafasPlace(Place{}); err == nil {
		t.Fatalf("expected an error for a place with neither Station nor Location")
	}
}

func TestSignBodyWithSaltOnly(t *testing.T) {
	q := signBody(DB, []byte(`{"a":1}`))
	if q.Get("checksum") == "" {
		t.Fatalf("expected a checksum query param for a salted, non-micmac profile")
	}
	if q.Get("mic") != "" || q.Get("mac") != "" {
		t.Fatalf("did not expect mic/mac params for DB")
	}
}

func TestSignBodyNoSalt(t *testing.T) {
	q := signBody(fakeProfile{}, []byte(`{"a":1}`))
	if len(q) != 0 {
		t.Fatalf("expected no signing params for a profile with no checksum salt, got %v", q)
	}
}

func TestRequestURLAppendsQueryOnlyWhenPresent(t *testing.T) {
	p := fakeProfile{url: "https://example.test/gate"}
	if got := requestURL(p, nil); got != "https://example.test/gate" {
		t.Fatalf("got %q, want unchanged base URL", got)
	}

	q := signBody(DB, []byte(`{"a":1}`))
	got := requestURL(DB, q)
	if !strings.HasPrefix(got, DB.URL()+"?checksum=") {
		t.Fatalf("got %q, want a checksum query string appended", got)
	}
}

func TestBuildEnvelopeProducesValidJSON(t *testing.T) {
	raw, q, reqID, err := buildEnvelope(fakeProfile{}, "LocMatch", nil, map[string]any{"foo": "bar"})
	if err != nil {
		t.Fatalf("buildEnvelope: %v", err)
	}
	if reqID == "" {
		t.Fatalf("expected a non-empty request id")
	}
	if len(q) != 0 {
		t.Fatalf("fakeProfile has no salt, expected no query params")
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("envelope body is not valid JSON: %v", err)
	}
	svcReqL, ok := decoded["svcReqL"].([]any)
	if !ok || len(svcReqL) != 1 {
		t.Fatalf("expected exactly one svcReqL entry, got %v", decoded["svcReqL"])
	}
	entry := svcReqL[0].(map[string]any)
	if entry["meth"] != "LocMatch" {
		t.Fatalf("got meth %v, want LocMatch", entry["meth"])
	}
}
