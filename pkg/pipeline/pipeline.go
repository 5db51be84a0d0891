// Package pipeline provides the ontology to diagram pipeline used by the CLI
// and the HTTP server.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Load: read an N-Triples/N-Quads file into an [ontology.Store]
//  2. Transform: classify elements and build edges ([transform.Engine])
//  3. Assemble: produce DOT text ([dot.Assemble]) and write it atomically
//  4. Render: lay the DOT out with Graphviz, with caching (optional)
//
// Stages 2 and 3 are always recomputed. Only rendered artifacts are cached,
// keyed by a hash of the DOT text and the output format.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:  "people.nt",
//	    Output: "people.svg",
//	    Format: "svg",
//	})
//
// Run individual stages:
//
//	res, err := runner.Transform(ctx, g, cfg)
//	svg, hit, err := runner.Render(ctx, res.DOT, dot.FormatSVG)
package pipeline

import (
	"io"
	"maps"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ontodot/pkg/config"
	"github.com/matzehuels/ontodot/pkg/errors"
	"github.com/matzehuels/ontodot/pkg/ontology"
	"github.com/matzehuels/ontodot/pkg/render/dot"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultFormat writes DOT text only.
	DefaultFormat = string(dot.FormatDOT)

	// DefaultRenderTimeout bounds a single Graphviz render.
	DefaultRenderTimeout = 60 * time.Second
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures one pipeline run.
type Options struct {
	// Input is the ontology file (N-Triples or N-Quads).
	Input string `json:"input"`

	// Output is the destination path. When empty it is derived from Input
	// and Format. For image formats the DOT source is written to
	// Output + ".dot".
	Output string `json:"output,omitempty"`

	// Format is one of dot, svg, png, jpg, pdf.
	Format string `json:"format,omitempty"`

	// Config holds naming and style settings. Nil means config.Default().
	Config *config.Config `json:"config,omitempty"`

	// Prefixes are extra prefix declarations, applied over the standard
	// rdf/rdfs/owl/xsd prefixes and the configuration's prefixes.
	Prefixes map[string]string `json:"prefixes,omitempty"`

	// RenderTimeout bounds the render stage.
	RenderTimeout time.Duration `json:"render_timeout,omitempty"`

	// Refresh skips cache reads; fresh artifacts are still written back.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	format    dot.Format
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string

	// DOT is the assembled document.
	DOT string

	// Format is the rendered format; Artifact holds its bytes. For
	// dot.FormatDOT Artifact is the DOT text itself.
	Format   dot.Format
	Artifact []byte

	// SourcePath and ArtifactPath are where Execute wrote its files.
	SourcePath   string
	ArtifactPath string

	// Stats contains timing and size information.
	Stats Stats

	// CacheHit reports whether the artifact came from the cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Statements         int
	Classes            int
	Individuals        int
	Literals           int
	ObjectProperties   int
	DatatypeProperties int
	Edges              int
	Synthesized        int

	LoadTime      time.Duration
	TransformTime time.Duration
	RenderTime    time.Duration
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidatePath(o.Input); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "input")
	}

	if o.Format == "" {
		o.Format = DefaultFormat
	}
	f, err := dot.ParseFormat(o.Format)
	if err != nil {
		return err
	}
	o.format = f
	o.Format = string(f)

	if o.Output == "" {
		o.Output = DefaultOutput(o.Input, f)
	}
	if err := errors.ValidatePath(o.Output); err != nil {
		return err
	}

	if o.Config == nil {
		cfg := config.Default()
		o.Config = &cfg
	}
	if err := o.Config.Validate(); err != nil {
		return err
	}
	for p := range o.Prefixes {
		if err := errors.ValidatePrefix(p); err != nil {
			return err
		}
	}

	o.SetDefaults()
	o.validated = true
	return nil
}

// SetDefaults fills runtime defaults that need no validation.
func (o *Options) SetDefaults() {
	if o.RenderTimeout <= 0 {
		o.RenderTimeout = DefaultRenderTimeout
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// LoadPrefixes merges the standard prefixes, the configuration's prefixes
// and o.Prefixes, later sources winning.
func (o *Options) LoadPrefixes() map[string]string {
	out := ontology.StandardPrefixes()
	if o.Config != nil {
		maps.Copy(out, o.Config.Prefixes)
	}
	maps.Copy(out, o.Prefixes)
	return out
}

// DefaultOutput derives an output path from the input file name: the
// extension is replaced by the format name.
func DefaultOutput(input string, format dot.Format) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "." + string(format)
}
