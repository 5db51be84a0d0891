// Package dot assembles transformation results into Graphviz DOT documents
// and renders them to images.
//
// # Document Layout
//
// [Assemble] produces a fixed layout:
//
//	digraph ontodot_diagram {
//	rankdir=LR;
//	size="1501";
//	node [shape=ellipse, color="orange"]; "Person"; /*classes style*/
//	node [shape=box, color="black"]; "alice"; /*individuals style*/
//		"alice" -> "Person" [label="type"];
//	}
//
// Style blocks appear only for non-empty categories, always in the order
// classes, individuals, literals, object properties, data type properties.
// Edges follow in the order the transformation produced them. The same
// input always yields byte-identical output.
//
// Every edge is validated before any text is written. A single edge with an
// empty or "null" member fails the whole assembly with a
// MISSING_EDGE_COMPONENT error.
//
// # Writing
//
// [WriteFile] replaces the destination atomically, so a failed run never
// leaves a truncated document behind.
//
// # Rendering
//
// [Render] lays out a document with the dot engine of
// [github.com/goccy/go-graphviz] and encodes it as SVG, PNG or JPEG. PDF
// output goes through SVG and [render.ToPDF].
package dot
