package address

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Wim1201/locatie-informatie-v5/internal/address/transport"
	apphttp "github.com/Wim1201/locatie-informatie-v5/internal/http"
	"github.com/Wim1201/locatie-informatie-v5/platform/logger"

	"github.com/gin-gonic/gin"
)

type stubSearcher struct{}

func (stubSearcher) Search(context.Context, string) (*transport.Location, error) {
	return nil, nil
}

func (stubSearcher) Suggest(_ context.Context, q string) ([]transport.Suggestion, error) {
	return []transport.Suggestion{{ID: "adr-1", Label: q + " 1, Utrecht"}}, nil
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	module := NewModuleWithSearcher(stubSearcher{}, logger.Discard())
	module.RegisterRoutes(&apphttp.RouterContext{Engine: engine, V1: engine.Group("/api/v1")})
	return engine
}

func TestSuggest_ReturnsCandidates(t *testing.T) {
	rec := httptest.NewRecorder()
	newEngine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/adres/suggest?q=Domplein", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got []transport.Suggestion
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Label != "Domplein 1, Utrecht" {
		t.Fatalf("unexpected suggestions %+v", got)
	}
}

func TestSuggest_RejectsShortQuery(t *testing.T) {
	rec := httptest.NewRecorder()
	newEngine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/adres/suggest?q=Do", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "zoekterm") {
		t.Fatalf("expected Dutch error message, got %s", rec.Body.String())
	}
}
