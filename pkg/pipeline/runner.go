package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/planegraph/pkg/cache"
	"github.com/matzehuels/planegraph/pkg/components"
	errs "github.com/matzehuels/planegraph/pkg/errors"
	"github.com/matzehuels/planegraph/pkg/free"
	"github.com/matzehuels/planegraph/pkg/geom"
	"github.com/matzehuels/planegraph/pkg/graph"
	"github.com/matzehuels/planegraph/pkg/intersect"
	"github.com/matzehuels/planegraph/pkg/layout"
	"github.com/matzehuels/planegraph/pkg/observability"
	"github.com/matzehuels/planegraph/pkg/render/nodelink"
	"github.com/matzehuels/planegraph/pkg/udg"
)

// keyTypeIntersect labels intersection graph entries in cache hooks.
const keyTypeIntersect = "intersect"

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger: it doesn't store
// results. Graphs passed to it are not safe for concurrent use, so callers
// must not share one graph between goroutines.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// RunID identifies this runner in log output.
	RunID string
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// Every log line carries a fresh run id.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	id := uuid.NewString()
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger.With("run", id[:8]),
		RunID:  id,
	}
}

// =============================================================================
// Build
// =============================================================================

// ValidatePoints checks that every coordinate is finite.
func ValidatePoints(points []geom.Point) error {
	for i, p := range points {
		if err := errs.ValidateCoordinate(i, p.X, p.Y); err != nil {
			return err
		}
	}
	return nil
}

// IntersectWithCacheInfo builds the intersection graph of points, reading and
// writing the cache, and reports whether the result came from the cache.
func (r *Runner) IntersectWithCacheInfo(ctx context.Context, points []geom.Point, opts Options) (*graph.Graph, bool, error) {
	opts.SetDefaults()
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if err := ValidatePoints(points); err != nil {
		return nil, false, err
	}
	if err := errs.ValidatePointBudget(len(points), opts.MaxIntersectPoints); err != nil {
		return nil, false, err
	}

	key := r.Keyer.IntersectKey(cache.HashPoints(points))
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			g, err := unmarshalGraph(data)
			if err == nil {
				observability.Cache().OnCacheHit(ctx, keyTypeIntersect)
				r.Logger.Debug("intersection graph from cache", "points", len(points))
				return g, true, nil
			}
			r.Logger.Warn("discarding cached intersection graph", "err", err)
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeIntersect)
	}

	hooks := observability.Pipeline()
	hooks.OnIntersectStart(ctx, len(points))
	start := time.Now()
	g := intersect.Compute(points)
	elapsed := time.Since(start)
	hooks.OnIntersectComplete(ctx, g.VertexCount(), g.EdgeCount(), elapsed, nil)

	r.Logger.Info("built intersection graph",
		"points", len(points),
		"diagonals", g.VertexCount(),
		"crossings", g.EdgeCount(),
		"duration", elapsed)

	if data, err := marshalGraph(g); err == nil {
		if err := r.Cache.Set(ctx, key, data, opts.CacheTTL); err != nil {
			r.Logger.Warn("cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, keyTypeIntersect, len(data))
		}
	}
	return g, false, nil
}

// Intersect is a convenience wrapper that calls IntersectWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Intersect(ctx context.Context, points []geom.Point, opts Options) (*graph.Graph, error) {
	g, _, err := r.IntersectWithCacheInfo(ctx, points, opts)
	return g, err
}

// UDG replaces the edges of g with its unit disk graph for radius.
// On an invalid radius g is left untouched.
func (r *Runner) UDG(ctx context.Context, g *graph.Graph, radius float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	hooks := observability.Pipeline()
	hooks.OnUDGStart(ctx, g.VertexCount(), radius)
	start := time.Now()
	err := udg.Build(g, radius)
	elapsed := time.Since(start)
	hooks.OnUDGComplete(ctx, g.EdgeCount(), elapsed, err)
	if err != nil {
		return err
	}

	r.Logger.Info("built unit disk graph",
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
		"radius", radius,
		"duration", elapsed)
	return nil
}

// PointsGraph returns a new graph with one vertex per point and its unit disk
// edges for radius.
func (r *Runner) PointsGraph(ctx context.Context, points []geom.Point, radius float64) (*graph.Graph, error) {
	if err := ValidatePoints(points); err != nil {
		return nil, err
	}
	if err := errs.ValidateRadius(radius); err != nil {
		return nil, err
	}
	g := graph.New()
	for _, p := range points {
		g.AddVertex(p)
	}
	if err := r.UDG(ctx, g, radius); err != nil {
		return nil, err
	}
	return g, nil
}

// =============================================================================
// Analyze
// =============================================================================

// Analyze computes the free edges and classified components of g.
func (r *Runner) Analyze(ctx context.Context, g *graph.Graph) Analysis {
	hooks := observability.Pipeline()
	hooks.OnAnalyzeStart(ctx, g.VertexCount(), g.EdgeCount())
	start := time.Now()

	a := Analysis{
		Free:       free.Edges(g),
		Components: components.Connected(g),
	}
	a.Kinds = make([]components.Kind, len(a.Components))
	for i, c := range a.Components {
		kind := components.Classify(g, c)
		a.Kinds[i] = kind
		a.Summary.Add(kind, len(c))
	}
	a.Duration = time.Since(start)
	hooks.OnAnalyzeComplete(ctx, a.Free.Len(), len(a.Components), a.Duration)

	r.Logger.Info("analyzed graph",
		"free", a.Free.Len(),
		"components", a.Summary.Components,
		"paths", a.Summary.Paths,
		"duration", a.Duration)
	return a
}

// Layout arranges the components of g in rows. g is modified in place.
func (r *Runner) Layout(g *graph.Graph) layout.Result {
	res := layout.Arrange(g)
	r.Logger.Debug("arranged components",
		"isolated", len(res.Isolated),
		"paths", len(res.Paths),
		"other", len(res.Other))
	return res
}

// =============================================================================
// Render
// =============================================================================

// Render draws g in every requested format. Edges in freeSet are highlighted
// when opts.HighlightFree is set.
func (r *Runner) Render(ctx context.Context, g *graph.Graph, freeSet free.Set, opts Options) (map[string][]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	nlOpts := nodelink.Options{Scale: opts.Scale, Labels: opts.Labels}
	if opts.HighlightFree {
		nlOpts.Free = freeSet
	}
	dot := nodelink.ToDOT(g, nlOpts)

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := r.renderFormat(ctx, dot, format)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func (r *Runner) renderFormat(ctx context.Context, dot, format string) (data []byte, err error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, format)
	start := time.Now()
	defer func() {
		hooks.OnRenderComplete(ctx, format, time.Since(start), err)
	}()

	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return nodelink.RenderSVG(ctx, dot)
	case FormatPNG:
		return nodelink.RenderPNG(ctx, dot, DefaultPNGScale)
	case FormatPDF:
		return nodelink.RenderPDF(ctx, dot)
	default:
		return nil, ValidateFormat(format)
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
