package transform

import (
	"fmt"
	"strings"

	"github.com/matzehuels/ontodot/pkg/errors"
)

// Edge is one labeled arc of the diagram, with resolved display names.
type Edge struct {
	Source string `json:"source"`
	Label  string `json:"label"`
	Target string `json:"target"`
}

// String renders the edge for logs.
func (e Edge) String() string {
	return fmt.Sprintf("<s=%s,e=%s,t=%s>", e.Source, e.Label, e.Target)
}

// Validate reports a MISSING_EDGE_COMPONENT error if any member is empty or
// the literal string "null".
func (e Edge) Validate() error {
	if missing(e.Source) || missing(e.Label) || missing(e.Target) {
		return errors.New(errors.ErrCodeMissingEdgeComponent, "triple with null member: %s", e)
	}
	return nil
}

func missing(s string) bool {
	return s == "" || s == "null"
}

// Sets holds the display names of each element category, in discovery order.
// Literals may repeat; the other sets hold each name once.
type Sets struct {
	Classes            []string `json:"classes,omitempty"`
	Individuals        []string `json:"individuals,omitempty"`
	Literals           []string `json:"literals,omitempty"`
	ObjectProperties   []string `json:"object_properties,omitempty"`
	DatatypeProperties []string `json:"datatype_properties,omitempty"`
}

// Result is the output of one transformation run.
type Result struct {
	Sets  Sets   `json:"sets"`
	Edges []Edge `json:"edges"`

	// Synthesized counts the edges produced from domain/range declarations.
	Synthesized int `json:"synthesized"`
}

// Validate checks every edge, stopping at the first bad one.
func (r *Result) Validate() error {
	for i, e := range r.Edges {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("edge %d: %w", i, err)
		}
	}
	return nil
}

// Dump lists the edges one per line, for debug logs.
func (r *Result) Dump() string {
	var b strings.Builder
	b.WriteString("----- DOT triples -----\n")
	for _, e := range r.Edges {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	b.WriteString("----- end DOT triples -----\n")
	return b.String()
}
