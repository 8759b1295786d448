package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Wim1201/locatie-informatie-v5/platform/logger"
)

func TestGetPC4_MergesOlderYearsIntoSuppressedFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("jaarcode") {
		case "2024":
			_, _ = w.Write([]byte(`{"features":[{"properties":{"aantal_inwoners":4210,"gemiddelde_woz_waarde_woning":-99997}}]}`))
		case "2023":
			_, _ = w.Write([]byte(`{"features":[{"properties":{"aantal_inwoners":4100,"gemiddelde_woz_waarde_woning":"512"}}]}`))
		default:
			_, _ = w.Write([]byte(`{"features":[]}`))
		}
	}))
	defer srv.Close()

	c := New(2*time.Second, logger.Discard()).WithEndpoint(srv.URL)
	got, err := c.GetPC4(context.Background(), "3512")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got == nil || got.DataYear != 2024 {
		t.Fatalf("expected 2024 as primary year, got %+v", got)
	}
	if got.AantalInwoners == nil || *got.AantalInwoners != 4210 {
		t.Fatalf("expected newest inwoners 4210, got %v", got.AantalInwoners)
	}
	if got.GemiddeldeWOZWaarde == nil || *got.GemiddeldeWOZWaarde != 512 {
		t.Fatalf("expected WOZ filled from 2023, got %v", got.GemiddeldeWOZWaarde)
	}
	if got.KoopwoningenPct != nil {
		t.Fatalf("expected missing field to stay nil")
	}
}

func TestGetPC4_AllYearsFailingReturnsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(2*time.Second, logger.Discard()).WithEndpoint(srv.URL)
	got, err := c.GetPC4(context.Background(), "3512")
	if err == nil || got != nil {
		t.Fatalf("expected error and nil, got %+v, %v", got, err)
	}
}
