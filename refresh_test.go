package hafas

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRefreshJourneyUsesCtxReconByDefault(t *testing.T) {
	var capturedReq map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		svcReqL := body["svcReqL"].([]any)
		capturedReq = svcReqL[0].(map[string]any)["req"].(map[string]any)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(journeysFixture()))
	})

	_, err := c.RefreshJourney(context.Background(), Journey{ID: "token-1"}, RefreshJourneyOptions{})
	if err != nil {
		t.Fatalf("RefreshJourney: %v", err)
	}
	if capturedReq["ctxRecon"] != "token-1" {
		t.Fatalf("got ctxRecon %v, want token-1", capturedReq["ctxRecon"])
	}
	if _, present := capturedReq["outReconL"]; present {
		t.Fatalf("did not expect outReconL when RefreshJourneyUseOutReconL is false")
	}
}

type outReconProfile struct {
	fakeProfile
}

func (outReconProfile) RefreshJourneyUseOutReconL() bool { return true }

func TestRefreshJourneyUsesOutReconLWhenProfileAsks(t *testing.T) {
	var capturedReq map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		svcReqL := body["svcReqL"].([]any)
		capturedReq = svcReqL[0].(map[string]any)["req"].(map[string]any)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(journeysFixture()))
	}))
	t.Cleanup(srv.Close)

	profile := outReconProfile{fakeProfile: fakeProfile{url: srv.URL}}
	c, err := NewClient(profile, WithTransport(stubTransport{srv: srv}))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = c.RefreshJourney(context.Background(), Journey{ID: "token-1"}, RefreshJourneyOptions{})
	if err != nil {
		t.Fatalf("RefreshJourney: %v", err)
	}
	outReconL, ok := capturedReq["outReconL"].([]any)
	if !ok || len(outReconL) != 1 {
		t.Fatalf("expected a one-element outReconL, got %v", capturedReq["outReconL"])
	}
	entry := outReconL[0].(map[string]any)
	if entry["ctx"] != "token-1" {
		t.Fatalf("got outReconL[0].ctx %v, want token-1", entry["ctx"])
	}
}

func TestRefreshJourneyErrorsOnEmptyResult(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"err":"OK","svcResL":[{"err":"OK","res":{"common":{},"outConL":[]}}]}`))
	})

	if _, err := c.RefreshJourney(context.Background(), Journey{ID: "token-1"}, RefreshJourneyOptions{}); err == nil {
		t.Fatalf("expected an error when reconstruction returns no journeys")
	}
}
