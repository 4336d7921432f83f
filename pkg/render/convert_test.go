package render

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	errs "github.com/matzehuels/planegraph/pkg/errors"
)

const tinySVG = `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><rect width="10" height="10"/></svg>`

func TestToPNGRejectsScale(t *testing.T) {
	for _, scale := range []float64{0, -1} {
		_, err := ToPNG(context.Background(), []byte(tinySVG), scale)
		if !errs.Is(err, errs.ErrCodeInvalidArgument) {
			t.Errorf("ToPNG(scale=%g) err = %v, want INVALID_ARGUMENT", scale, err)
		}
	}
}

func TestConvertCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ToPDF(ctx, []byte(tinySVG)); !errors.Is(err, context.Canceled) {
		t.Errorf("ToPDF() err = %v, want context.Canceled", err)
	}
}

func TestConvertMissingTool(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	_, err := ToPDF(context.Background(), []byte(tinySVG))
	if !errs.Is(err, errs.ErrCodeInternal) {
		t.Errorf("ToPDF() err = %v, want INTERNAL_ERROR", err)
	}
}

func TestToPDF(t *testing.T) {
	if _, err := exec.LookPath(converter); err != nil {
		t.Skip("rsvg-convert not installed")
	}
	pdf, err := ToPDF(context.Background(), []byte(tinySVG))
	if err != nil {
		t.Fatalf("ToPDF: %v", err)
	}
	if len(pdf) < 4 || string(pdf[:4]) != "%PDF" {
		t.Errorf("output does not start with %%PDF")
	}
}
