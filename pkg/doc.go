// Package pkg holds the ontodot libraries.
//
// # Overview
//
// ontodot turns an RDF/OWL ontology into a Graphviz diagram. Data flows
// through the packages in one direction:
//
//	N-Triples / N-Quads
//	         ↓
//	[ontology]   in-memory graph with schema indices
//	         ↓
//	[transform]  categorized display names and diagram edges
//	         ↓
//	[render/dot] DOT document, optionally laid out as SVG, PNG, JPG or PDF
//
// [pipeline] orchestrates these steps, caching rendered artifacts through
// [cache]. [config] holds the TOML configuration, [naming] turns nodes into
// display names, [errors] defines the coded errors every package returns and
// [observability] exposes hooks for metrics.
package pkg
