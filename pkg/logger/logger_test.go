package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInit_StampsServiceName(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	log := Init(Options{Level: "info", Output: &buf})
	log.Info().Msg("started")

	if !strings.Contains(buf.String(), `"service":"inventario-api"`) {
		t.Fatalf("service field missing: %s", buf.String())
	}
}

func TestWithComponent_TagsChildLogger(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	log := WithComponent(base, "auth_service")
	log.Info().Msg("login")

	out := buf.String()
	if !strings.Contains(out, `"component":"auth_service"`) {
		t.Fatalf("component field missing: %s", out)
	}

	// The parent stays untagged.
	buf.Reset()
	base.Info().Msg("plain")
	if strings.Contains(buf.String(), "component") {
		t.Fatalf("base logger should not carry the component field: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"debug":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
