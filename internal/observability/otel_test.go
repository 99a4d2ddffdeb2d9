package observability

import (
	"context"
	"testing"

	"github.com/summitlabs/ascent-backend/internal/logger"
)

func TestSampleRatioClamped(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want float64
	}{
		{"unset", "", 0.1},
		{"garbage", "lots", 0.1},
		{"below zero", "-0.5", 0},
		{"above one", "3", 1},
		{"in range", "0.25", 0.25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("OTEL_SAMPLER_RATIO", tc.raw)
			if got := otelSampleRatio(); got != tc.want {
				t.Fatalf("otelSampleRatio(%q): want=%v got=%v", tc.raw, tc.want, got)
			}
		})
	}
}

func TestHeaderParsing(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "authorization=Bearer abc, x-team = scoring ,broken,=nokey")
	headers := otelHeaders()
	if len(headers) != 2 {
		t.Fatalf("want=2 headers got=%d (%v)", len(headers), headers)
	}
	if headers["authorization"] != "Bearer abc" {
		t.Fatalf("authorization header: got=%q", headers["authorization"])
	}
	if headers["x-team"] != "scoring" {
		t.Fatalf("x-team header: got=%q", headers["x-team"])
	}

	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", " , ,")
	if got := otelHeaders(); got != nil {
		t.Fatalf("blank header list should yield nil, got %v", got)
	}
}

// InitOTel guards with a sync.Once, so the enabled stdout path is exercised
// in a single test rather than split across several.
func TestInitOTelStdoutFallback(t *testing.T) {
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger init: %v", err)
	}

	shutdown := InitOTel(context.Background(), log, OtelConfig{
		ServiceName: "ascent-test",
		Environment: "test",
		Version:     "0.0.0",
	})
	if shutdown == nil {
		t.Fatal("enabled tracing must return a shutdown func")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
