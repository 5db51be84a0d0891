// Package ontology provides the in-memory ontology graph consumed by the
// transformation engine.
//
// # Overview
//
// A [Graph] is a set of subject-predicate-object statements plus schema
// indices (classes, individuals, object properties, datatype properties),
// namespace prefix declarations and a way to dereference a bare URI string
// into a [Node]. The engine only reads from it; callers must not mutate a
// graph while a transformation is running.
//
// [Store] is the in-memory implementation. Statements keep their insertion
// order, which is the order the engine emits diagram edges in. Schema indices
// are derived from rdf:type statements:
//
//   - classes: owl:Class, rdfs:Class
//   - object properties: owl:ObjectProperty and the OWL property characteristics
//   - datatype properties: owl:DatatypeProperty
//   - individuals: owl:NamedIndividual, or typed with an indexed class
//
// # Loading
//
// [Load] and [LoadFile] read N-Triples and N-Quads using
// [github.com/cayleygraph/quad/nquads]:
//
//	g, err := ontology.LoadFile("people.nt", ontology.WithPrefixes(map[string]string{
//	    "ex": "http://ex.org/",
//	}))
//
// N-Triples carry no prefix declarations, so prefixes are supplied by the
// caller (usually from the configuration file).
package ontology
