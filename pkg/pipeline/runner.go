package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/ontodot/pkg/cache"
	"github.com/matzehuels/ontodot/pkg/config"
	"github.com/matzehuels/ontodot/pkg/observability"
	"github.com/matzehuels/ontodot/pkg/ontology"
	"github.com/matzehuels/ontodot/pkg/render/dot"
	"github.com/matzehuels/ontodot/pkg/transform"
)

// renderEngine is the Graphviz layout engine recorded in artifact keys.
const renderEngine = "dot"

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
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

// Execute loads opts.Input, writes the DOT document and, for image formats,
// renders and writes the artifact.
//
// A run either writes complete files or fails: the DOT document is written
// only after the whole graph transformed and assembled cleanly, and each
// file is replaced atomically.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	runID := uuid.NewString()
	logger := opts.Logger.With("run", runID[:8])
	logger.Debug("configuration\n" + opts.Config.String())

	// Stage 1: Load
	loadStart := time.Now()
	g, err := ontology.LoadFile(opts.Input, ontology.WithPrefixes(opts.LoadPrefixes()))
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	loadTime := time.Since(loadStart)
	logger.Info("loaded ontology", "input", opts.Input, "statements", g.Len(), "duration", loadTime)

	// Stages 2-3: Transform and assemble
	result, err := r.transform(ctx, g, *opts.Config, opts.Input, logger)
	if err != nil {
		return nil, err
	}
	result.RunID = runID
	result.Stats.LoadTime = loadTime

	source, artifact := dot.OutputPaths(opts.Output, opts.format)
	if err := dot.WriteFile(source, result.DOT); err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}
	result.SourcePath = source
	logger.Info("wrote DOT source", "path", source, "edges", result.Stats.Edges)

	// Stage 4: Render
	result.Format = opts.format
	if opts.format == dot.FormatDOT {
		result.Artifact = []byte(result.DOT)
		result.ArtifactPath = artifact
		return result, nil
	}

	renderCtx, cancel := context.WithTimeout(ctx, opts.RenderTimeout)
	defer cancel()

	renderStart := time.Now()
	data, hit, err := r.render(renderCtx, result.DOT, opts.format, opts.Refresh)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheHit = hit

	if err := dot.WriteArtifact(artifact, data); err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}
	result.Artifact = data
	result.ArtifactPath = artifact
	logger.Info("rendered diagram",
		"path", artifact,
		"format", opts.format,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Transform runs the engine over g and assembles the DOT document.
func (r *Runner) Transform(ctx context.Context, g ontology.Graph, cfg config.Config) (*Result, error) {
	return r.transform(ctx, g, cfg, "", r.Logger)
}

func (r *Runner) transform(ctx context.Context, g ontology.Graph, cfg config.Config, input string, logger *log.Logger) (result *Result, err error) {
	hooks := observability.Pipeline()
	hooks.OnTransformStart(ctx, input)
	start := time.Now()
	edges := 0
	defer func() {
		hooks.OnTransformComplete(ctx, input, edges, time.Since(start), err)
	}()

	res, err := transform.New(cfg, logger).Transform(g)
	if err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}
	doc, err := dot.Assemble(res, cfg)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	edges = len(res.Edges)

	return &Result{
		DOT:    doc,
		Format: dot.FormatDOT,
		Stats: Stats{
			Statements:         len(g.Statements()),
			Classes:            len(res.Sets.Classes),
			Individuals:        len(res.Sets.Individuals),
			Literals:           len(res.Sets.Literals),
			ObjectProperties:   len(res.Sets.ObjectProperties),
			DatatypeProperties: len(res.Sets.DatatypeProperties),
			Edges:              len(res.Edges),
			Synthesized:        res.Synthesized,
			TransformTime:      time.Since(start),
		},
	}, nil
}

// Render lays out src as format, consulting the cache first. It reports
// whether the bytes came from the cache. FormatDOT returns src unchanged.
func (r *Runner) Render(ctx context.Context, src string, format dot.Format) ([]byte, bool, error) {
	return r.render(ctx, src, format, false)
}

func (r *Runner) render(ctx context.Context, src string, format dot.Format, refresh bool) (data []byte, hit bool, err error) {
	if format == dot.FormatDOT {
		return []byte(src), false, nil
	}

	key := r.Keyer.ArtifactKey(cache.Hash([]byte(src)), cache.ArtifactKeyOpts{
		Format: string(format),
		Engine: renderEngine,
	})
	cacheHooks := observability.Cache()

	if !refresh {
		if data, ok, err := r.Cache.Get(ctx, key); err == nil && ok {
			cacheHooks.OnCacheHit(ctx, "artifact")
			return data, true, nil
		} else if err != nil {
			r.Logger.Warn("cache read failed", "error", err)
		}
		cacheHooks.OnCacheMiss(ctx, "artifact")
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, string(format))
	start := time.Now()
	data, err = dot.Render(ctx, src, format)
	hooks.OnRenderComplete(ctx, string(format), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
		r.Logger.Warn("cache write failed", "error", err)
	} else {
		cacheHooks.OnCacheSet(ctx, "artifact", len(data))
	}
	return data, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
