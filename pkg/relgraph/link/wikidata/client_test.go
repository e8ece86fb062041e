package wikidata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cognitext/relgraph/pkg/relgraph/internalerr"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("action") {
		case "wbsearchentities":
			w.Write([]byte(`{
				"search": [
					{"id": "Q1", "concepturi": "http://kb.test/Q1",
					 "label": "drug", "description": "substance used as medication"},
					{"id": "Q2", "concepturi": "http://kb.test/Q2",
					 "label": "Drug", "description": "1996 film"}
				]
			}`))
		case "wbgetentities":
			w.Write([]byte(`{
				"entities": {
					"Q1": {
						"labels": {"en": {"value": "drug"}},
						"descriptions": {"en": {"value": "substance used as medication"}},
						"claims": {
							"P31": [
								{"mainsnak": {"datavalue": {"value": {"id": "Q99"}}}},
								{"mainsnak": {"datavalue": {"value": {"id": "Q100"}}}}
							]
						}
					}
				}
			}`))
		default:
			w.Write([]byte(`{"error": {"code": "unknown_action", "info": "unknown action"}}`))
		}
	}))
}

func TestClientSearch(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	got, err := c.Search(context.Background(), "drug", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2", len(got))
	}
	want := Candidate{
		ID: "Q1", IRI: "http://kb.test/Q1",
		Label: "drug", Description: "substance used as medication",
	}
	if got[0] != want {
		t.Errorf("candidate[0] = %+v, want %+v", got[0], want)
	}
}

func TestClientFetchParsesTypeClaims(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	entities, err := c.Fetch(context.Background(), []string{"Q1"})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	e, ok := entities["Q1"]
	if !ok {
		t.Fatal("entity Q1 missing")
	}
	if e.Label != "drug" {
		t.Errorf("Label = %q", e.Label)
	}
	if len(e.TypeIDs) != 2 || e.TypeIDs[0] != "Q99" || e.TypeIDs[1] != "Q100" {
		t.Errorf("TypeIDs = %v, want [Q99 Q100]", e.TypeIDs)
	}
}

func TestClientFetchEmptyIDs(t *testing.T) {
	c := &Client{BaseURL: "http://unused.invalid"}
	entities, err := c.Fetch(context.Background(), nil)
	if err != nil {
		t.Fatalf("Fetch(nil): %v", err)
	}
	if len(entities) != 0 {
		t.Errorf("got %v, want empty", entities)
	}
}

func TestClientAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": {"code": "ratelimited", "info": "too many requests"}}`))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	if _, err := c.Search(context.Background(), "drug", 5); !errors.Is(err, internalerr.ErrLookupFailed) {
		t.Errorf("got %v, want ErrLookupFailed", err)
	}
}

func TestClientHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	if _, err := c.Search(context.Background(), "drug", 5); !errors.Is(err, internalerr.ErrLookupFailed) {
		t.Errorf("got %v, want ErrLookupFailed", err)
	}
}

func TestClientSendsLimit(t *testing.T) {
	var gotLimit string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		w.Write([]byte(`{"search": []}`))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	if _, err := c.Search(context.Background(), "drug", 7); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if gotLimit != "7" {
		t.Errorf("limit = %q, want 7", gotLimit)
	}
}

func TestClientTypeLabels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"entities": {
				"Q99": {"labels": {"en": {"value": "chemical substance"}}},
				"Q100": {"labels": {"en": {"value": ""}}}
			}
		}`))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	labels, err := c.TypeLabels(context.Background(), []string{"Q99", "Q100"})
	if err != nil {
		t.Fatalf("TypeLabels: %v", err)
	}
	// empty labels are dropped
	if len(labels) != 1 || labels[0] != "chemical substance" {
		t.Errorf("labels = %v, want [chemical substance]", labels)
	}
}
