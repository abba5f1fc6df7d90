package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

// Init is once-only per process, so a single test drives the root logger
// through a captured writer and checks enrichment on top of it.
func TestLoggerInitAndContextChild(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "debug", Format: "json", Service: "rentals-test", Writer: &buf})

	Get().Info().Str("k", "v").Msg("hello world")
	out := buf.String()
	if !strings.Contains(out, `"hello world"`) {
		t.Fatalf("root logger output missing message: %s", out)
	}
	if !strings.Contains(out, `"service":"rentals-test"`) {
		t.Fatalf("root logger output missing service field: %s", out)
	}

	buf.Reset()
	ctx := WithRequest(context.Background(), "req-123")
	C(ctx).Warn().Msg("scoped")
	out = buf.String()
	if !strings.Contains(out, `"request_id":"req-123"`) {
		t.Fatalf("context child missing request_id: %s", out)
	}

	buf.Reset()
	Named("store").Info().Msg("named")
	if out = buf.String(); !strings.Contains(out, `"component":"store"`) {
		t.Fatalf("named child missing component: %s", out)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"info": "info", "WARN": "warn", "warning": "warn",
		"error": "error", "trace": "trace", "junk": "debug", "": "debug",
	}
	for in, want := range cases {
		if got := parseLevel(in).String(); got != want {
			t.Fatalf("parseLevel(%q) = %q, want %q", in, got, want)
		}
	}
}
