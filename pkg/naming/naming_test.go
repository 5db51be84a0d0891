package naming

import (
	"strings"
	"testing"

	"github.com/matzehuels/ontodot/pkg/config"
	"github.com/matzehuels/ontodot/pkg/errors"
	"github.com/matzehuels/ontodot/pkg/ontology"
)

const ex = "http://ex.org/"

func testGraph() *ontology.Store {
	g := ontology.NewStore()
	g.SetPrefix("ex", ex)
	g.SetPrefix("owl", ontology.NamespaceOWL)
	g.AddTriple(ontology.IRI(ex+"alice"), ontology.IRI(ontology.RDFType), ontology.IRI(ex+"Person"))
	g.AddTriple(ontology.IRI(ex+"alice"), ontology.IRI("http://undeclared.org/ns#knows"), ontology.IRI(ex+"bob"))
	g.AddTriple(ontology.IRI(ex+"alice"), ontology.IRI(ex+"name"), ontology.LangLiteral("Alice", "en"))
	return g
}

func TestBuildPrefixTable(t *testing.T) {
	table := BuildPrefixTable(testGraph())

	tests := []struct {
		ns     string
		want   string
		wantOK bool
	}{
		{ex, "ex", true},
		{ontology.NamespaceOWL, "owl", true},
		{"http://undeclared.org/ns#", "", true},
		{ontology.NamespaceRDF, "", true},
		{"http://never.used/", "", false},
	}

	for _, tt := range tests {
		got, ok := table.Lookup(tt.ns)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Lookup(%q) = (%q, %v), want (%q, %v)", tt.ns, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestBuildPrefixTableDuplicateBinding(t *testing.T) {
	g := ontology.NewStore()
	g.SetPrefix("zz", ex)
	g.SetPrefix("aa", ex)

	for i := 0; i < 10; i++ {
		if got, _ := BuildPrefixTable(g).Lookup(ex); got != "aa" {
			t.Fatalf("Lookup(ex) = %q, want %q", got, "aa")
		}
	}
}

func TestResolverName(t *testing.T) {
	table := BuildPrefixTable(testGraph())
	alice := ontology.IRI(ex + "alice")
	knows := ontology.IRI("http://undeclared.org/ns#knows")
	unknown := ontology.IRI("http://never.used/thing")

	tests := []struct {
		name string
		mode config.NameMode
		node ontology.Node
		want string
	}{
		{"local name", config.LocalName, alice, "alice"},
		{"prefixed", config.Prefixed, alice, "ex:alice"},
		{"prefixed empty prefix", config.Prefixed, knows, ":knows"},
		{"prefixed unknown namespace", config.Prefixed, unknown, "http://never.used/thing"},
		{"full uri", config.FullURI, alice, ex + "alice"},
		{"blank local", config.LocalName, ontology.Blank("b0"), "_:b0"},
		{"blank prefixed", config.Prefixed, ontology.Blank("b0"), "_:b0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tt.mode, table)
			if got := r.Name(tt.node); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrefixedContainsPrefix(t *testing.T) {
	g := testGraph()
	table := BuildPrefixTable(g)
	r := NewResolver(config.Prefixed, table)

	for _, st := range g.Statements() {
		for _, n := range []ontology.Node{st.Subject, st.Predicate, st.Object} {
			if !n.IsIRI() {
				continue
			}
			got := r.Name(n)
			prefix, ok := table.Lookup(n.Namespace())
			if !ok {
				if got != n.IRI {
					t.Errorf("Name(%s) = %q, want full URI", n.IRI, got)
				}
				continue
			}
			if !strings.Contains(got, prefix+":") {
				t.Errorf("Name(%s) = %q, want it to contain %q", n.IRI, got, prefix+":")
			}
		}
	}
}

func TestLiteralNameIgnoresMode(t *testing.T) {
	table := BuildPrefixTable(testGraph())
	literals := []ontology.Node{
		ontology.Literal("Alice"),
		ontology.LangLiteral("Alice", "en"),
		ontology.TypedLiteral("30", ontology.NamespaceXSD+"int"),
		ontology.Literal("http://ex.org/looks-like-a-uri"),
	}

	for _, l := range literals {
		for _, mode := range []config.NameMode{config.LocalName, config.Prefixed, config.FullURI} {
			if got := NewResolver(mode, table).Name(l); got != l.String() {
				t.Errorf("Name(%q) in %s = %q, want %q", l.String(), mode, got, l.String())
			}
		}
	}
}

func TestNameURI(t *testing.T) {
	g := testGraph()
	r := NewResolver(config.Prefixed, BuildPrefixTable(g))

	got, err := r.NameURI(g, ontology.OWLThing)
	if err != nil {
		t.Fatalf("NameURI() error: %v", err)
	}
	if got != "owl:Thing" {
		t.Errorf("NameURI() = %q, want %q", got, "owl:Thing")
	}
}

func TestNameURIErrors(t *testing.T) {
	g := testGraph()

	tests := []struct {
		name string
		mode config.NameMode
		uri  string
	}{
		{"empty uri", config.FullURI, ""},
		{"empty local name", config.LocalName, ex},
		{"null local name", config.LocalName, ex + "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tt.mode, BuildPrefixTable(g))
			_, err := r.NameURI(g, tt.uri)
			if !errors.Is(err, errors.ErrCodeUnresolvedDereference) {
				t.Errorf("NameURI(%q) error = %v, want %s", tt.uri, err, errors.ErrCodeUnresolvedDereference)
			}
		})
	}
}
