package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports pipeline and cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnIntersectStart(_ context.Context, points int) {
	h.logger.Debug("intersect start", "points", points)
}

func (h *logHooks) OnIntersectComplete(_ context.Context, vertices, edges int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("intersect failed", "error", err, "duration", d)
		return
	}
	h.logger.Debug("intersect done", "vertices", vertices, "edges", edges, "duration", d)
}

func (h *logHooks) OnUDGStart(_ context.Context, vertices int, radius float64) {
	h.logger.Debug("udg start", "vertices", vertices, "radius", radius)
}

func (h *logHooks) OnUDGComplete(_ context.Context, edges int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("udg failed", "error", err, "duration", d)
		return
	}
	h.logger.Debug("udg done", "edges", edges, "duration", d)
}

func (h *logHooks) OnAnalyzeStart(_ context.Context, vertices, edges int) {
	h.logger.Debug("analyze start", "vertices", vertices, "edges", edges)
}

func (h *logHooks) OnAnalyzeComplete(_ context.Context, free, components int, d time.Duration) {
	h.logger.Debug("analyze done", "free", free, "components", components, "duration", d)
}

func (h *logHooks) OnRenderStart(_ context.Context, format string) {
	h.logger.Debug("render start", "format", format)
}

func (h *logHooks) OnRenderComplete(_ context.Context, format string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "format", format, "error", err)
		return
	}
	h.logger.Debug("render done", "format", format, "duration", d)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}
