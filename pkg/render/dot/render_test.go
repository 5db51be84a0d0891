package dot

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/ontodot/pkg/errors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"dot", FormatDOT, false},
		{"SVG", FormatSVG, false},
		{" png ", FormatPNG, false},
		{"jpeg", FormatJPG, false},
		{"pdf", FormatPDF, false},
		{"gif", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("ParseFormat(%q) code = %s", tt.in, errors.GetCode(err))
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestOutputPaths(t *testing.T) {
	src, art := OutputPaths("out.svg", FormatSVG)
	if src != "out.svg.dot" || art != "out.svg" {
		t.Errorf("OutputPaths(svg) = %q, %q", src, art)
	}
	src, art = OutputPaths("out.dot", FormatDOT)
	if src != "out.dot" || art != "out.dot" {
		t.Errorf("OutputPaths(dot) = %q, %q", src, art)
	}
}

func TestRenderDOTPassthrough(t *testing.T) {
	src := "digraph x {}\n"
	got, err := Render(context.Background(), src, FormatDOT)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if string(got) != src {
		t.Errorf("Render() = %q, want %q", got, src)
	}
}

func TestRenderSVG(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	svg, err := RenderSVG(ctx, "digraph ontodot_diagram {\n\t\"alice\" -> \"Person\" [label=\"type\"];\n}\n")
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output is not SVG")
	}
	if !strings.Contains(string(svg), "alice") {
		t.Error("RenderSVG() output missing node label")
	}
}

func TestRenderCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Render(ctx, "digraph x {}", FormatPNG)
	if !errors.Is(err, errors.ErrCodeTimeout) {
		t.Errorf("Render() error = %v, want %s", err, errors.ErrCodeTimeout)
	}
}

func TestContentType(t *testing.T) {
	if got := FormatSVG.ContentType(); got != "image/svg+xml" {
		t.Errorf("ContentType() = %q", got)
	}
	if got := FormatDOT.ContentType(); !strings.HasPrefix(got, "text/vnd.graphviz") {
		t.Errorf("ContentType() = %q", got)
	}
}
