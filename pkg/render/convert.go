package render

import (
	"bytes"
	"context"
	"math"
	"os/exec"
	"strconv"
	"strings"

	errs "github.com/matzehuels/planegraph/pkg/errors"
)

// converter is the librsvg tool that turns SVG into PDF and PNG.
// Install it with `brew install librsvg` or `apt install librsvg2-bin`.
const converter = "rsvg-convert"

// ToPDF converts an SVG drawing to PDF.
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return convert(ctx, svg, "pdf")
}

// ToPNG converts an SVG drawing to PNG, rasterized at scale times its size.
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return nil, errs.New(errs.ErrCodeInvalidArgument, "png scale must be positive, got %g", scale)
	}
	return convert(ctx, svg, "png", "--zoom", strconv.FormatFloat(scale, 'f', -1, 64))
}

// convert pipes svg through the converter. The process is killed when ctx
// is cancelled.
func convert(ctx context.Context, svg []byte, format string, extra ...string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := exec.LookPath(converter)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "%s output needs %s from librsvg", format, converter)
	}

	cmd := exec.CommandContext(ctx, path, append([]string{"--format", format}, extra...)...)
	cmd.Stdin = bytes.NewReader(svg)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "%s: %s", converter, strings.TrimSpace(stderr.String()))
	}
	return out.Bytes(), nil
}
