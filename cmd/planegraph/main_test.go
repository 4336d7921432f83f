package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	errs "github.com/matzehuels/planegraph/pkg/errors"
)

func TestReport(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"success", nil, exitOK, ""},
		{"interrupted", fmt.Errorf("intersect: %w", context.Canceled), exitInterrupted, ""},
		{"bad radius", errs.New(errs.ErrCodeInvalidArgument, "radius must be positive, got 0"), exitUsage, "error: radius must be positive, got 0"},
		{"bad points file", errs.New(errs.ErrCodeInvalidInput, "point 2 has a non-finite coordinate"), exitUsage, "error: point 2 has a non-finite coordinate"},
		{"other", errors.New("disk full"), exitFailure, "error: disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if got := report(&buf, tt.err); got != tt.code {
				t.Errorf("report() = %d, want %d", got, tt.code)
			}
			if got := strings.TrimSpace(buf.String()); got != tt.message {
				t.Errorf("message = %q, want %q", got, tt.message)
			}
		})
	}
}

func TestRunVersion(t *testing.T) {
	if err := run(context.Background(), []string{"--version"}); err != nil {
		t.Fatalf("run --version: %v", err)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	if err := run(context.Background(), []string{"triangulate"}); err == nil {
		t.Error("unknown command should fail")
	}
}
