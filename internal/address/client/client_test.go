package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Wim1201/locatie-informatie-v5/platform/config"
	"github.com/Wim1201/locatie-informatie-v5/platform/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(&config.Config{UpstreamTimeout: 2 * time.Second}, logger.Discard()).WithBaseURL(srv.URL)
}

func TestSearch_MapsTopDocument(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/free" {
			t.Errorf("expected /free, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("fq") != "type:adres" || r.URL.Query().Get("rows") != "1" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":{"numFound":1,"docs":[{
			"weergavenaam":"Domplein 29, 3512JE Utrecht",
			"straatnaam":"Domplein","huisnummer":29,"postcode":"3512JE",
			"woonplaatsnaam":"Utrecht","gemeentenaam":"Utrecht","provincienaam":"Utrecht",
			"centroide_ll":"POINT(5.12169 52.09085)",
			"adresseerbaarobject_id":"0344010000094411","nummeraanduiding_id":"0344200000094410",
			"buurtcode":"BU03440000"}]}}`))
	})

	loc, err := c.Search(context.Background(), "Domplein 29 Utrecht")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if loc == nil {
		t.Fatalf("expected a location")
	}
	if loc.StreetLine() != "Domplein 29" {
		t.Fatalf("expected street line Domplein 29, got %q", loc.StreetLine())
	}
	if loc.AddressableObjectID != "0344010000094411" {
		t.Fatalf("unexpected object id %q", loc.AddressableObjectID)
	}
	if !loc.Coordinates.Valid() || *loc.Coordinates.Lat != 52.09085 {
		t.Fatalf("expected parsed coordinates, got %+v", loc.Coordinates)
	}
	if loc.Postcode4() != "3512" {
		t.Fatalf("expected postcode4 3512, got %q", loc.Postcode4())
	}
}

func TestSearch_NoDocsReturnsNil(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response":{"numFound":0,"docs":[]}}`))
	})

	loc, err := c.Search(context.Background(), "nergens 1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if loc != nil {
		t.Fatalf("expected nil location, got %+v", loc)
	}
}

func TestSearch_UpstreamErrorIsReturned(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	if _, err := c.Search(context.Background(), "Domplein 29"); err == nil {
		t.Fatalf("expected error for 503")
	}
}

func TestSuggest_SkipsUnlabeledDocs(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/suggest" {
			t.Errorf("expected /suggest, got %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"response":{"docs":[
			{"id":"adr-1","weergavenaam":"Domplein 29, 3512JE Utrecht","score":12.5},
			{"id":"adr-2","weergavenaam":"","score":1}]}}`))
	})

	got, err := c.Suggest(context.Background(), "Dompl")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 1 || got[0].ID != "adr-1" {
		t.Fatalf("expected one suggestion adr-1, got %+v", got)
	}
}
