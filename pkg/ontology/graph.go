package ontology

import (
	"fmt"
	"strings"

	"github.com/matzehuels/ontodot/pkg/errors"
)

// Triple is a single statement of the graph.
type Triple struct {
	Subject   Node `json:"subject"`
	Predicate Node `json:"predicate"`
	Object    Node `json:"object"`
}

// String renders the triple in N-Triples-like form for logs.
func (t Triple) String() string {
	return fmt.Sprintf("%s %s %s", t.Subject, t.Predicate, t.Object)
}

// Graph is the queryable ontology graph the engine reads from.
type Graph interface {
	// Statements returns every statement in the store's iteration order.
	Statements() []Triple

	// Classes returns the declared classes.
	Classes() []Node
	// Individuals returns the declared individuals.
	Individuals() []Node
	// ObjectProperties returns the declared object properties.
	ObjectProperties() []Node
	// DatatypeProperties returns the declared datatype properties.
	DatatypeProperties() []Node

	// NsPrefixes returns the declared prefix to namespace bindings.
	NsPrefixes() map[string]string
	// Namespaces returns every namespace used by an IRI in any statement.
	Namespaces() []string

	// Resource dereferences a bare URI string into a node.
	Resource(uri string) (Node, error)
}

// Store is an in-memory [Graph].
//
// Statements are kept in insertion order and duplicates are dropped. Schema
// indices are computed from rdf:type statements on demand, so statements can
// be added in any order.
type Store struct {
	triples  []Triple
	seen     map[Triple]struct{}
	prefixes map[string]string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		seen:     make(map[Triple]struct{}),
		prefixes: make(map[string]string),
	}
}

// Add appends a statement. It returns false if the statement was already present.
func (s *Store) Add(t Triple) bool {
	if _, ok := s.seen[t]; ok {
		return false
	}
	s.seen[t] = struct{}{}
	s.triples = append(s.triples, t)
	return true
}

// AddTriple is shorthand for Add with separate terms.
func (s *Store) AddTriple(subject, predicate, object Node) bool {
	return s.Add(Triple{Subject: subject, Predicate: predicate, Object: object})
}

// SetPrefix binds prefix to namespace, replacing any previous binding of prefix.
func (s *Store) SetPrefix(prefix, namespace string) {
	s.prefixes[prefix] = namespace
}

// Len returns the number of statements.
func (s *Store) Len() int {
	return len(s.triples)
}

// Statements returns a copy of the statements in insertion order.
func (s *Store) Statements() []Triple {
	out := make([]Triple, len(s.triples))
	copy(out, s.triples)
	return out
}

// NsPrefixes returns a copy of the prefix bindings.
func (s *Store) NsPrefixes() map[string]string {
	out := make(map[string]string, len(s.prefixes))
	for p, ns := range s.prefixes {
		out[p] = ns
	}
	return out
}

// Namespaces returns the namespaces of all IRIs in first-seen order.
func (s *Store) Namespaces() []string {
	var out []string
	seen := make(map[string]bool)
	add := func(n Node) {
		if !n.IsIRI() {
			return
		}
		ns := n.Namespace()
		if ns == "" || seen[ns] {
			return
		}
		seen[ns] = true
		out = append(out, ns)
	}
	for _, t := range s.triples {
		add(t.Subject)
		add(t.Predicate)
		add(t.Object)
	}
	return out
}

// Resource dereferences uri. A "_:label" string names a blank node; any
// other non-empty string names an IRI node.
func (s *Store) Resource(uri string) (Node, error) {
	if uri == "" {
		return Node{}, errors.New(errors.ErrCodeUnresolvedDereference, "cannot dereference empty URI")
	}
	if label, ok := strings.CutPrefix(uri, "_:"); ok && label != "" {
		return Blank(label), nil
	}
	return IRI(uri), nil
}

// Classes returns subjects typed owl:Class or rdfs:Class.
func (s *Store) Classes() []Node {
	return s.typedWith(func(typ string) bool { return classTypes[typ] })
}

// ObjectProperties returns subjects typed owl:ObjectProperty or with an OWL
// property characteristic.
func (s *Store) ObjectProperties() []Node {
	return s.typedWith(func(typ string) bool { return objectPropertyTypes[typ] })
}

// DatatypeProperties returns subjects typed owl:DatatypeProperty.
func (s *Store) DatatypeProperties() []Node {
	return s.typedWith(func(typ string) bool { return typ == OWLDatatypeProperty })
}

// Individuals returns subjects typed owl:NamedIndividual or with a declared
// class. Classes and properties are never individuals.
func (s *Store) Individuals() []Node {
	schema := make(map[string]bool)
	classes := make(map[string]bool)
	for _, c := range s.Classes() {
		schema[c.IRI] = true
		classes[c.IRI] = true
	}
	for _, p := range s.ObjectProperties() {
		schema[p.IRI] = true
	}
	for _, p := range s.DatatypeProperties() {
		schema[p.IRI] = true
	}

	individuals := s.typedWith(func(typ string) bool {
		return typ == OWLNamedIndividual || classes[typ]
	})
	out := individuals[:0]
	for _, n := range individuals {
		if !schema[n.IRI] {
			out = append(out, n)
		}
	}
	return out
}

// typedWith returns the IRI subjects of rdf:type statements whose object
// satisfies match, deduplicated in first-declaration order.
func (s *Store) typedWith(match func(typ string) bool) []Node {
	var out []Node
	seen := make(map[string]bool)
	for _, t := range s.triples {
		if t.Predicate.IRI != RDFType || !t.Subject.IsIRI() || !t.Object.IsIRI() {
			continue
		}
		if !match(t.Object.IRI) || seen[t.Subject.IRI] {
			continue
		}
		seen[t.Subject.IRI] = true
		out = append(out, t.Subject)
	}
	return out
}

// Ensure Store implements Graph.
var _ Graph = (*Store)(nil)
