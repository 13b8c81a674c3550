package providers

import (
	"errors"
	"fmt"
	"testing"
)

func TestUpstreamErrorMessage(t *testing.T) {
	err := &UpstreamError{StatusCode: 429, Message: "quota exceeded"}
	if got := err.Error(); got != "quota exceeded (status=429)" {
		t.Fatalf("unexpected error string: %s", got)
	}

	err = &UpstreamError{}
	if got := err.Error(); got != "upstream request failed" {
		t.Fatalf("unexpected fallback error string: %s", got)
	}
}

func TestAsUpstreamError(t *testing.T) {
	inner := &UpstreamError{StatusCode: 404, Message: "not found"}
	wrapped := fmt.Errorf("fetch failed: %w", inner)

	upErr, ok := AsUpstreamError(wrapped)
	if !ok {
		t.Fatal("expected unwrap to succeed")
	}
	if upErr.StatusCode != 404 {
		t.Fatalf("expected status 404, got %d", upErr.StatusCode)
	}

	if _, ok := AsUpstreamError(errors.New("plain")); ok {
		t.Fatal("expected plain error not to unwrap")
	}
}
