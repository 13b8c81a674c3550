package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestHelpersTolerateNilLogger(t *testing.T) {
	Info(nil, "info")
	Warn(nil, "warn")
	Error(nil, "error", errors.New("boom"))
}

func TestHelpersWriteToLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Info(logger, "upstream ok", "k", "v")
	Warn(logger, "upstream slow")
	Error(logger, "upstream failed", errors.New("boom"))

	out := buf.String()
	for _, want := range []string{"upstream ok", "k=v", "upstream slow", "upstream failed", "error=boom"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in log output, got %s", want, out)
		}
	}
}

func TestErrorWithoutErrOmitsAttr(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Error(logger, "failed", nil)

	if strings.Contains(buf.String(), "error=") {
		t.Fatalf("expected no error attr for nil error, got %s", buf.String())
	}
}
