// Package transform turns an ontology graph into the edges and style sets of
// a diagram.
//
// # Pipeline
//
// [Engine.Transform] runs one synchronous pass:
//
//  1. Build the prefix table ([naming.BuildPrefixTable]).
//  2. Classify classes, individuals and properties into display sets ([Classify]).
//  3. Scan every statement: record literal objects, divert rdfs:domain and
//     rdfs:range declarations into a [PropertyAccumulator] when synthesis is
//     enabled, and turn every other statement into an [Edge].
//  4. Flush the accumulator into one synthesized edge per property
//     ([PropertyAccumulator.Finalize]).
//
// The result is a [Result] value; the engine keeps no state between runs and
// can be reused for any number of graphs.
//
// # Synthesis
//
// With synthesis enabled, a property P declared with
//
//	P rdfs:domain D .
//	P rdfs:range  R .
//
// yields the single edge D -P-> R instead of two schema edges. A property
// with only one side declared gets owl:Thing on the other side.
//
// # Errors
//
// Synthesized edges whose members cannot be resolved abort the run with a
// MISSING_EDGE_COMPONENT or UNRESOLVED_DEREFERENCE error from
// [github.com/matzehuels/ontodot/pkg/errors]. No partial result is returned.
package transform
