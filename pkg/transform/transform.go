package transform

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ontodot/pkg/config"
	"github.com/matzehuels/ontodot/pkg/naming"
	"github.com/matzehuels/ontodot/pkg/ontology"
)

// Engine transforms ontology graphs into diagram edges.
//
// An Engine holds only configuration, so one value can be used for many
// graphs. Each Transform call is single-threaded and the graph must not be
// modified while it runs.
type Engine struct {
	Config config.Config
	Logger *log.Logger
}

// New creates an engine. A nil logger discards output.
func New(cfg config.Config, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Engine{Config: cfg, Logger: logger}
}

// Transform classifies g's elements and turns its statements into edges.
func (e *Engine) Transform(g ontology.Graph) (*Result, error) {
	r := naming.NewResolver(e.Config.NodeNames, naming.BuildPrefixTable(g))

	res := &Result{Sets: Classify(g, r, e.Logger)}
	acc := NewPropertyAccumulator()

	for _, st := range g.Statements() {
		if st.Object.IsLiteral() {
			res.Sets.Literals = append(res.Sets.Literals, r.Name(st.Object))
		}

		if e.Config.Synthesize && divert(acc, st) {
			continue
		}

		res.Edges = append(res.Edges, Edge{
			Source: r.Name(st.Subject),
			Label:  r.Name(st.Predicate),
			Target: r.Name(st.Object),
		})
	}

	if e.Config.Synthesize {
		synthesized, err := acc.Finalize(g, r)
		if err != nil {
			return nil, fmt.Errorf("synthesize object properties: %w", err)
		}
		res.Edges = append(res.Edges, synthesized...)
		res.Synthesized = len(synthesized)
	}

	e.Logger.Debug("transformed graph",
		"classes", len(res.Sets.Classes),
		"individuals", len(res.Sets.Individuals),
		"literals", len(res.Sets.Literals),
		"edges", len(res.Edges),
		"synthesized", res.Synthesized)
	e.Logger.Debug(res.Dump())

	return res, nil
}

// divert records domain and range declarations in acc. It reports whether
// st was consumed.
func divert(acc *PropertyAccumulator, st ontology.Triple) bool {
	switch st.Predicate.IRI {
	case ontology.RDFSDomain:
		acc.Domain(st.Subject.String(), st.Object.String())
		return true
	case ontology.RDFSRange:
		acc.Range(st.Subject.String(), st.Object.String())
		return true
	}
	return false
}
