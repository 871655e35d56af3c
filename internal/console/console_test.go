package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestLoggerLevels(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	log := NewWriter(&buf, false)

	log.Startf("lead search for %q", "apex")
	log.Infof("probing %s", "apex.in")
	log.Warnf("source failed")

	out := buf.String()
	for _, want := range []string{
		"[START] lead search for \"apex\"",
		"[INFO] probing apex.in",
		"[WARN] source failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q, got:\n%s", want, out)
		}
	}
}

func TestDebugSuppressedWhenNotVerbose(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	log := NewWriter(&buf, false)
	log.Debugf("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}

	log = NewWriter(&buf, true)
	log.Debugf("shown")
	if !strings.Contains(buf.String(), "[DEBUG] shown") {
		t.Fatalf("expected debug line, got %q", buf.String())
	}
}
