package report

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"catwalk/pkg/cache"
	"catwalk/pkg/catgraph"
	"catwalk/pkg/errors"
	"catwalk/pkg/observability"
	"catwalk/pkg/render"
	"catwalk/pkg/snapshot"
)

// Runner encapsulates report execution with caching.
//
// The Runner is stateless except for the cache and logger; it doesn't store
// run results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is the time-to-live for cached graphs and reports.
	// Zero means cache.DefaultTTL.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
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
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → build → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}
	r.applyLogger(&opts)

	result := &Result{RunID: uuid.NewString()}
	logger := opts.Logger.With("run_id", result.RunID)

	// Stage 1: Load
	data, err := os.ReadFile(opts.SnapshotPath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read snapshot %s", opts.SnapshotPath)
	}
	result.SnapshotHash = cache.Hash(data)

	// Stage 2: Build
	buildStart := time.Now()
	g, pages, graphHit, err := r.buildWithCacheInfo(ctx, data, result.SnapshotHash, opts)
	if err != nil {
		return nil, err
	}
	result.Graph = g
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.PageCount = pages
	result.Stats.CategoryCount = len(g.Info)
	result.CacheInfo.GraphHit = graphHit

	logger.Info("built category graph",
		"pages", result.Stats.PageCount,
		"categories", result.Stats.CategoryCount,
		"cached", graphHit,
		"duration", result.Stats.BuildTime)

	// Stage 3: Render
	renderStart := time.Now()
	output, reportHit, err := r.renderWithCacheInfo(ctx, g, result.SnapshotHash, opts)
	if err != nil {
		return nil, err
	}
	result.Output = output
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.ReportHit = reportHit

	logger.Info("rendered report",
		"kind", opts.Kind,
		"format", opts.Format,
		"bytes", len(output),
		"cached", reportHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// buildWithCacheInfo builds the category graph with caching and returns the
// page count and cache hit info.
func (r *Runner) buildWithCacheInfo(ctx context.Context, data []byte, hash string, opts Options) (*catgraph.Graph, int, bool, error) {
	observability.Report().OnBuildStart(ctx, opts.SnapshotPath)
	start := time.Now()

	cacheKey := r.Keyer.GraphKey(hash)
	if !opts.Refresh {
		if cached, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, cacheKey)
			g, pages, err := unmarshalGraph(cached)
			if err == nil {
				observability.Report().OnBuildComplete(ctx, opts.SnapshotPath, len(g.Info), time.Since(start), nil)
				return g, pages, true, nil
			}
			// Undecodable entry, fall through to rebuild.
		} else {
			observability.Cache().OnCacheMiss(ctx, cacheKey)
		}
	}

	snap, err := snapshot.Unmarshal(data)
	if err != nil {
		wrapped := errors.Wrap(errors.ErrCodeInvalidSnapshot, err, "parse snapshot %s", opts.SnapshotPath)
		observability.Report().OnBuildComplete(ctx, opts.SnapshotPath, 0, time.Since(start), wrapped)
		return nil, 0, false, wrapped
	}

	g, err := catgraph.Build(snap.Records())
	if err != nil {
		wrapped := errors.Wrap(errors.ErrCodeInvalidSnapshot, err, "build graph from %s", opts.SnapshotPath)
		observability.Report().OnBuildComplete(ctx, opts.SnapshotPath, 0, time.Since(start), wrapped)
		return nil, 0, false, wrapped
	}

	if blob, err := marshalGraph(g, len(snap.Pages)); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, blob, r.ttl()); err == nil {
			observability.Cache().OnCacheSet(ctx, cacheKey, len(blob))
		}
	}

	observability.Report().OnBuildComplete(ctx, opts.SnapshotPath, len(g.Info), time.Since(start), nil)
	return g, len(snap.Pages), false, nil
}

// renderWithCacheInfo renders the report with caching and returns cache hit
// info.
func (r *Runner) renderWithCacheInfo(ctx context.Context, g *catgraph.Graph, hash string, opts Options) ([]byte, bool, error) {
	observability.Report().OnRenderStart(ctx, opts.Kind, opts.Format)
	start := time.Now()

	cacheKey := r.Keyer.ReportKey(hash, cache.ReportKeyOpts{
		Kind:      opts.Kind,
		Roots:     opts.Roots,
		Format:    opts.Format,
		Languages: opts.Languages,
	})
	if !opts.Refresh {
		if cached, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, cacheKey)
			observability.Report().OnRenderComplete(ctx, opts.Kind, opts.Format, time.Since(start), nil)
			return cached, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, cacheKey)
	}

	output, err := r.renderReport(ctx, g, opts)
	if err != nil {
		observability.Report().OnRenderComplete(ctx, opts.Kind, opts.Format, time.Since(start), err)
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, cacheKey, output, r.ttl()); err == nil {
		observability.Cache().OnCacheSet(ctx, cacheKey, len(output))
	}

	observability.Report().OnRenderComplete(ctx, opts.Kind, opts.Format, time.Since(start), nil)
	return output, false, nil
}

// renderReport produces the report output without caching.
func (r *Runner) renderReport(ctx context.Context, g *catgraph.Graph, opts Options) ([]byte, error) {
	listOpts := render.ListingOptions{
		ShowCounts: opts.ShowCounts,
		MaxDepth:   opts.MaxDepth,
	}

	var buf bytes.Buffer
	switch opts.Kind {
	case KindTree:
		root := opts.Roots[0]
		var err error
		if opts.Format == FormatWikitext {
			err = render.WriteWikitextListing(&buf, g, root, listOpts)
		} else {
			err = render.WriteListing(&buf, g, root, listOpts)
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s listing", opts.Format)
		}

	case KindCompare:
		detector, err := opts.Detector()
		if err != nil {
			return nil, err
		}
		d := catgraph.Diff(g, opts.Roots[0], opts.Roots[1], detector.RankTitle)
		if opts.Format == FormatWikitext {
			err = render.WriteWikitextCompare(&buf, opts.Roots[0], opts.Roots[1], d)
		} else {
			err = render.WriteCompare(&buf, d)
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s comparison", opts.Format)
		}

	case KindDOT:
		dot := render.ToDOT(g, opts.Roots[0], render.DOTOptions{
			ShowCounts: opts.ShowCounts,
			MaxDepth:   opts.MaxDepth,
		})
		if opts.Format == FormatSVG {
			svg, err := render.RenderSVG(ctx, dot)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "render SVG")
			}
			return svg, nil
		}
		return []byte(dot), nil

	default:
		// Unreachable after ValidateAndSetDefaults.
		return nil, errors.New(errors.ErrCodeUnsupported, "unknown report kind %q", opts.Kind)
	}
	return buf.Bytes(), nil
}

// Build runs only the load and build stages and returns the built graph.
// Commands that work on the graph directly (cache warming, the interactive
// browser) use this instead of Execute; only SnapshotPath is required.
func (r *Runner) Build(ctx context.Context, opts Options) (*catgraph.Graph, error) {
	if err := errors.ValidateSnapshotPath(opts.SnapshotPath); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	data, err := os.ReadFile(opts.SnapshotPath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read snapshot %s", opts.SnapshotPath)
	}
	g, _, _, err := r.buildWithCacheInfo(ctx, data, cache.Hash(data), opts)
	return g, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) ttl() time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return cache.DefaultTTL
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// cachedGraph is the cache serialization of a built graph plus the page
// count of the snapshot it came from.
type cachedGraph struct {
	Pages    int                              `json:"pages"`
	Parents  map[string][]string              `json:"parents"`
	Children map[string][]string              `json:"children"`
	Info     map[string]catgraph.CategoryInfo `json:"info"`
}

func marshalGraph(g *catgraph.Graph, pages int) ([]byte, error) {
	return json.Marshal(cachedGraph{
		Pages:    pages,
		Parents:  g.Parents,
		Children: g.Children,
		Info:     g.Info,
	})
}

func unmarshalGraph(data []byte) (*catgraph.Graph, int, error) {
	var c cachedGraph
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, 0, err
	}
	g := &catgraph.Graph{
		Parents:  c.Parents,
		Children: c.Children,
		Info:     c.Info,
	}
	if g.Parents == nil {
		g.Parents = map[string][]string{}
	}
	if g.Children == nil {
		g.Children = map[string][]string{}
	}
	if g.Info == nil {
		g.Info = map[string]catgraph.CategoryInfo{}
	}
	return g, c.Pages, nil
}
