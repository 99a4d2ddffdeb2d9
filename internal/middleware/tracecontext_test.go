package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/summitlabs/ascent-backend/internal/requestdata"
)

func TestAttachTraceContextGeneratesIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var seen *requestdata.TraceData
	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/ping", func(c *gin.Context) {
		seen = requestdata.GetTraceData(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if seen == nil || seen.TraceID == "" || seen.RequestID == "" {
		t.Fatalf("trace data missing from request context: %+v", seen)
	}
	if got := rec.Header().Get("X-Trace-Id"); got != seen.TraceID {
		t.Fatalf("trace id header: got=%q want=%q", got, seen.TraceID)
	}
	if got := rec.Header().Get("X-Request-Id"); got != seen.RequestID {
		t.Fatalf("request id header: got=%q want=%q", got, seen.RequestID)
	}
}

func TestAttachTraceContextKeepsInboundIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Trace-Id", "trace-123")
	req.Header.Set("X-Request-Id", "req-456")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Trace-Id"); got != "trace-123" {
		t.Fatalf("inbound trace id not preserved: got=%q", got)
	}
	if got := rec.Header().Get("X-Request-Id"); got != "req-456" {
		t.Fatalf("inbound request id not preserved: got=%q", got)
	}
}
