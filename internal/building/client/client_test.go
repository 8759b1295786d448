package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Wim1201/locatie-informatie-v5/platform/logger"
)

func TestGetObject_CombinesVerblijfsobjectAndPand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != "bag-key" {
			t.Errorf("expected X-Api-Key header")
		}
		switch r.URL.Path {
		case "/adresseerbareobjecten/0344010000094411":
			_, _ = w.Write([]byte(`{"verblijfsobject":{"verblijfsobject":{
				"identificatie":"0344010000094411","gebruiksdoelen":["woonfunctie"],
				"oppervlakte":112,"status":"Verblijfsobject in gebruik",
				"maaktDeelUitVan":["0344100000031505"]}}}`))
		case "/panden/0344100000031505":
			_, _ = w.Write([]byte(`{"pand":{"identificatie":"0344100000031505","oorspronkelijkBouwjaar":"1650"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := New("bag-key", 2*time.Second, logger.Discard()).WithBaseURL(srv.URL)
	obj, err := c.GetObject(context.Background(), "0344010000094411")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if obj.Bouwjaar != 1650 || obj.Oppervlakte != 112 || obj.Gebruiksdoel != "woonfunctie" {
		t.Fatalf("unexpected object %+v", obj)
	}
}

func TestGetObject_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New("bag-key", 2*time.Second, logger.Discard()).WithBaseURL(srv.URL)
	if _, err := c.GetObject(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
