package transform

import (
	"github.com/matzehuels/ontodot/pkg/errors"
	"github.com/matzehuels/ontodot/pkg/naming"
	"github.com/matzehuels/ontodot/pkg/ontology"
)

// DefaultPropertyEnd fills the undeclared side of a property's signature.
const DefaultPropertyEnd = ontology.OWLThing

// PropertyPair is the domain and range URI of one property. An empty string
// means the side was never set.
type PropertyPair struct {
	Domain string
	Range  string
}

// PropertyAccumulator collects domain and range declarations per property
// during the statement scan. It is flushed once by Finalize.
type PropertyAccumulator struct {
	order []string
	pairs map[string]*PropertyPair
}

// NewPropertyAccumulator creates an empty accumulator.
func NewPropertyAccumulator() *PropertyAccumulator {
	return &PropertyAccumulator{pairs: make(map[string]*PropertyPair)}
}

// Domain records that property has the given domain. On first sighting of
// property its range defaults to [DefaultPropertyEnd].
func (a *PropertyAccumulator) Domain(property, domain string) {
	p, created := a.entry(property)
	if created {
		p.Range = DefaultPropertyEnd
	}
	p.Domain = domain
}

// Range records that property has the given range. On first sighting of
// property its domain defaults to [DefaultPropertyEnd].
func (a *PropertyAccumulator) Range(property, rng string) {
	p, created := a.entry(property)
	if created {
		p.Domain = DefaultPropertyEnd
	}
	p.Range = rng
}

func (a *PropertyAccumulator) entry(property string) (*PropertyPair, bool) {
	if p, ok := a.pairs[property]; ok {
		return p, false
	}
	p := &PropertyPair{}
	a.pairs[property] = p
	a.order = append(a.order, property)
	return p, true
}

// Len returns the number of properties seen.
func (a *PropertyAccumulator) Len() int {
	return len(a.order)
}

// Pair returns the accumulated pair of property.
func (a *PropertyAccumulator) Pair(property string) (PropertyPair, bool) {
	p, ok := a.pairs[property]
	if !ok {
		return PropertyPair{}, false
	}
	return *p, true
}

// Finalize resolves every accumulated property into one edge from its domain
// to its range, in first-sighting order. Any unresolved member aborts the
// whole flush.
func (a *PropertyAccumulator) Finalize(g ontology.Graph, r naming.Resolver) ([]Edge, error) {
	edges := make([]Edge, 0, len(a.order))
	for _, uri := range a.order {
		p := a.pairs[uri]
		if missing(p.Range) {
			return nil, errors.New(errors.ErrCodeMissingEdgeComponent, "null range for property %s [domain=%s]", uri, p.Domain)
		}
		if missing(p.Domain) {
			return nil, errors.New(errors.ErrCodeMissingEdgeComponent, "null domain for property %s [range=%s]", uri, p.Range)
		}

		domain, err := r.NameURI(g, p.Domain)
		if err != nil {
			return nil, err
		}
		rng, err := r.NameURI(g, p.Range)
		if err != nil {
			return nil, err
		}
		prop, err := r.NameURI(g, uri)
		if err != nil {
			return nil, err
		}
		edges = append(edges, Edge{Source: domain, Label: prop, Target: rng})
	}
	return edges, nil
}
