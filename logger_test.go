package spirograph

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultIsSilent(t *testing.T) {
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger should discard everything")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	e := NewEpicycle()
	if err := e.AddCircles([]float64{1, 0.5}, []float64{1, 3}, []float64{0, 0}); err != nil {
		t.Fatal(err)
	}
	if err := e.SetTimeDomain(Linspace(0, 1, 4)); err != nil {
		t.Fatal(err)
	}
	if out := buf.String(); !strings.Contains(out, "recomputed epicycle trajectory") || !strings.Contains(out, "samples=4") {
		t.Errorf("unexpected log output:\n%s", out)
	}

	// Failures are returned and not logged.
	buf.Reset()
	if err := e.AddCircles([]float64{1}, nil, nil); err == nil {
		t.Fatal("expected an error")
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected log output:\n%s", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}
