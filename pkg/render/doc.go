// Package render turns assembled diagrams into files.
//
// The [dot] subpackage assembles and renders DOT documents with an
// in-process Graphviz. This package holds the format conversions that need
// external tools: [ToPDF] converts SVG using rsvg-convert from librsvg.
//
//	svg, err := dot.RenderSVG(ctx, src)
//	pdf, err := render.ToPDF(ctx, svg)
package render
