package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apphttp "github.com/Wim1201/locatie-informatie-v5/internal/http"
	"github.com/Wim1201/locatie-informatie-v5/platform/httpkit"
	"github.com/Wim1201/locatie-informatie-v5/platform/logger"

	"github.com/gin-gonic/gin"
)

type stubConfig struct {
	allowAll bool
	origins  []string
}

func (s stubConfig) GetHTTPAddr() string      { return ":0" }
func (s stubConfig) GetCORSAllowAll() bool    { return s.allowAll }
func (s stubConfig) GetCORSOrigins() []string { return s.origins }

type pingModule struct{}

func (pingModule) Name() string { return "ping" }

func (pingModule) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
}

func newEngine(cfg stubConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return New(&apphttp.App{
		Config:  cfg,
		Logger:  logger.Discard(),
		Modules: []apphttp.Module{pingModule{}},
	})
}

func TestHealthAndModuleRoutes(t *testing.T) {
	engine := newEngine(stubConfig{origins: []string{"http://localhost:5000"}})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected health 200, got %d", rec.Code)
	}
	if rec.Header().Get(httpkit.HeaderRequestID) == "" {
		t.Fatalf("expected request id header")
	}

	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "pong" {
		t.Fatalf("expected module route, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	engine := newEngine(stubConfig{allowAll: true})

	engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected metrics 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "locatie_http_request_duration_seconds") {
		t.Fatalf("expected request duration histogram in metrics output")
	}
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	engine := newEngine(stubConfig{origins: []string{"https://kaart.example"}})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://kaart.example")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Header().Get("Access-Control-Allow-Origin") != "https://kaart.example" {
		t.Fatalf("expected origin echoed, got %q", rec.Header().Get("Access-Control-Allow-Origin"))
	}
}
