package dot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/ontodot/pkg/config"
	"github.com/matzehuels/ontodot/pkg/errors"
	"github.com/matzehuels/ontodot/pkg/ontology"
	"github.com/matzehuels/ontodot/pkg/transform"
)

func peopleResult(t *testing.T, mode config.NameMode) *transform.Result {
	t.Helper()
	g := ontology.NewStore()
	g.SetPrefix("ex", "http://ex.org/")
	g.AddTriple(ontology.IRI("http://ex.org/Person"), ontology.IRI(ontology.RDFType), ontology.IRI(ontology.OWLClass))
	g.AddTriple(ontology.IRI("http://ex.org/alice"), ontology.IRI(ontology.RDFType), ontology.IRI("http://ex.org/Person"))

	cfg := config.Default()
	cfg.NodeNames = mode
	res, err := transform.New(cfg, nil).Transform(g)
	if err != nil {
		t.Fatalf("Transform() error: %v", err)
	}
	return res
}

func TestAssemblePeople(t *testing.T) {
	doc, err := Assemble(peopleResult(t, config.LocalName), config.Default())
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}

	want := "digraph ontodot_diagram {\n" +
		"rankdir=LR;\n" +
		"size=\"1501\";\n" +
		"node [shape=ellipse, color=\"orange\"]; \"Person\"; /*classes style*/\n" +
		"node [shape=box, color=\"black\"]; \"alice\"; /*individuals style*/\n" +
		"\t\"Person\" -> \"Class\" [label=\"type\"];\n" +
		"\t\"alice\" -> \"Person\" [label=\"type\"];\n" +
		"}\n"
	if doc != want {
		t.Errorf("Assemble() =\n%s\nwant\n%s", doc, want)
	}
}

func TestAssemblePrefixed(t *testing.T) {
	doc, err := Assemble(peopleResult(t, config.Prefixed), config.Default())
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	for _, want := range []string{`"ex:Person"; /*classes style*/`, `"ex:alice" -> "ex:Person"`} {
		if !strings.Contains(doc, want) {
			t.Errorf("Assemble() missing %q:\n%s", want, doc)
		}
	}
}

func TestAssembleBlockOrder(t *testing.T) {
	res := &transform.Result{
		Sets: transform.Sets{
			Classes:            []string{"C"},
			Individuals:        []string{"i"},
			Literals:           []string{"l", "l"},
			ObjectProperties:   []string{"op"},
			DatatypeProperties: []string{"dp"},
		},
	}
	doc, err := Assemble(res, config.Default())
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}

	labels := []string{
		"/*classes style*/",
		"/*individuals style*/",
		"/*literals style*/",
		"/*object properties style*/",
		"/*data type properties style*/",
	}
	last := -1
	for _, l := range labels {
		i := strings.Index(doc, l)
		if i < 0 {
			t.Fatalf("Assemble() missing %s", l)
		}
		if i < last {
			t.Errorf("%s out of order", l)
		}
		last = i
	}
	if !strings.Contains(doc, `node [shape=rectangle, color="blue"]; "l" "l"; /*literals style*/`) {
		t.Errorf("literal block wrong:\n%s", doc)
	}
}

func TestAssembleSkipsEmptyBlocks(t *testing.T) {
	res := &transform.Result{Edges: []transform.Edge{{Source: "a", Label: "p", Target: "b"}}}
	doc, err := Assemble(res, config.Default())
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	if strings.Contains(doc, "node [") {
		t.Errorf("Assemble() emitted a style block for empty sets:\n%s", doc)
	}
}

func TestAssembleEscapes(t *testing.T) {
	res := &transform.Result{
		Sets:  transform.Sets{Literals: []string{`say "hi"`}},
		Edges: []transform.Edge{{Source: `a\b`, Label: "p", Target: `say "hi"`}},
	}
	doc, err := Assemble(res, config.Default())
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	if !strings.Contains(doc, `"a\\b" -> "say \"hi\""`) {
		t.Errorf("Assemble() did not escape names:\n%s", doc)
	}
}

func TestAssembleMissingComponent(t *testing.T) {
	tests := []struct {
		name string
		edge transform.Edge
	}{
		{"empty source", transform.Edge{Label: "p", Target: "b"}},
		{"null label", transform.Edge{Source: "a", Label: "null", Target: "b"}},
		{"null target", transform.Edge{Source: "a", Label: "p", Target: "null"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := &transform.Result{Edges: []transform.Edge{{Source: "x", Label: "y", Target: "z"}, tt.edge}}
			doc, err := Assemble(res, config.Default())
			if doc != "" {
				t.Errorf("Assemble() = %q, want no document", doc)
			}
			if !errors.Is(err, errors.ErrCodeMissingEdgeComponent) {
				t.Errorf("Assemble() error = %v, want %s", err, errors.ErrCodeMissingEdgeComponent)
			}
		})
	}
}

func TestAssembleDeterministic(t *testing.T) {
	res := peopleResult(t, config.FullURI)
	a, _ := Assemble(res, config.Default())
	b, _ := Assemble(res, config.Default())
	if a != b {
		t.Error("Assemble() output differs between calls")
	}
}

func TestAssembleHeaderFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.RankDir = "TB"
	cfg.ImageSize = "8,5"
	doc, err := Assemble(&transform.Result{}, cfg)
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	want := "digraph ontodot_diagram {\nrankdir=TB;\nsize=\"8,5\";\n}\n"
	if doc != want {
		t.Errorf("Assemble() = %q, want %q", doc, want)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.dot")

	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, "digraph x {}\n"); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "digraph x {}\n" {
		t.Errorf("file = %q", got)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("dir has %d entries, want 1 (temp file left behind?)", len(entries))
	}
}

func TestWriteFileMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.dot")
	if err := WriteFile(path, "x"); err == nil {
		t.Error("WriteFile() into a missing directory should fail")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("WriteFile() left a file behind")
	}
}
