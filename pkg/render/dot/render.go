package dot

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/ontodot/pkg/errors"
	"github.com/matzehuels/ontodot/pkg/render"
)

// Format is an output image format.
type Format string

const (
	FormatDOT Format = "dot"
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
	FormatJPG Format = "jpg"
	FormatPDF Format = "pdf"
)

// Formats lists every format [ParseFormat] accepts.
var Formats = []Format{FormatDOT, FormatSVG, FormatPNG, FormatJPG, FormatPDF}

// ParseFormat parses a format name. "jpeg" is accepted for [FormatJPG].
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "jpeg" {
		f = FormatJPG
	}
	if !slices.Contains(Formats, f) {
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", s, formatList())
	}
	return f, nil
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	switch f {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatJPG:
		return "image/jpeg"
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/vnd.graphviz; charset=utf-8"
	}
}

// Render lays out src with Graphviz and encodes it as format. FormatDOT
// returns src unchanged.
//
// Layout runs in the background; if ctx is done first, Render returns a
// TIMEOUT error without waiting for it.
func Render(ctx context.Context, src string, format Format) ([]byte, error) {
	switch format {
	case FormatDOT:
		return []byte(src), nil
	case FormatPDF:
		svg, err := Render(ctx, src, FormatSVG)
		if err != nil {
			return nil, err
		}
		return render.ToPDF(ctx, svg)
	}

	gvFormat, ok := graphvizFormats[format]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeTimeout, err, "render %s", format)
	}

	type result struct {
		data []byte
		err  error
	}
	done := make(chan result, 1)
	go func() {
		data, err := layout(ctx, src, gvFormat)
		done <- result{data, err}
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Wrap(errors.ErrCodeTimeout, ctx.Err(), "render %s", format)
	case r := <-done:
		if r.err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderFailed, r.err, "render %s", format)
		}
		return r.data, nil
	}
}

var graphvizFormats = map[Format]graphviz.Format{
	FormatSVG: graphviz.SVG,
	FormatPNG: graphviz.PNG,
	FormatJPG: graphviz.JPG,
}

func layout(ctx context.Context, src string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(src))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderSVG renders src as SVG.
func RenderSVG(ctx context.Context, src string) ([]byte, error) {
	return Render(ctx, src, FormatSVG)
}

// RenderPNG renders src as PNG.
func RenderPNG(ctx context.Context, src string) ([]byte, error) {
	return Render(ctx, src, FormatPNG)
}

// WriteArtifact writes rendered bytes atomically to path.
func WriteArtifact(path string, data []byte) error {
	return writeAtomic(path, data)
}

// OutputPaths returns where a run writes its DOT source and its rendered
// artifact. For FormatDOT both are output itself; otherwise the source goes
// next to the artifact with a ".dot" suffix.
func OutputPaths(output string, format Format) (source, artifact string) {
	if format == FormatDOT {
		return output, output
	}
	return output + ".dot", output
}
