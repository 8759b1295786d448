package httpkit

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Wim1201/locatie-informatie-v5/platform/apperr"
	"github.com/Wim1201/locatie-informatie-v5/platform/logger"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleError_MapsDomainKind(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	handled := HandleError(c, fmt.Errorf("wrapped: %w", apperr.NotFound("adres niet gevonden")))
	if !handled {
		t.Fatalf("expected error to be handled")
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandleError_UntypedIsInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	HandleError(c, errors.New("pq: connection refused"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, "interne serverfout") || strings.Contains(body, "connection refused") {
		t.Fatalf("expected generic message without internals, got %s", body)
	}
}

func TestRequestID_GeneratesAndPropagates(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID(), RequestLogger(logger.Discard()))

	var fromContext string
	engine.GET("/ping", func(c *gin.Context) {
		fromContext, _ = c.Request.Context().Value(logger.RequestIDKey).(string)
		c.Status(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	header := rec.Header().Get(HeaderRequestID)
	if header == "" {
		t.Fatalf("expected generated request id header")
	}
	if header != fromContext {
		t.Fatalf("expected context request id %q to match header %q", fromContext, header)
	}
}

func TestRequestID_KeepsValidInboundID(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	const inbound = "3f1c2f9e-8a0b-4c55-9a7e-0d1f2e3a4b5c"
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, inbound)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if got := rec.Header().Get(HeaderRequestID); got != inbound {
		t.Fatalf("expected inbound id to be kept, got %q", got)
	}
}
