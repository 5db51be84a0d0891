package ontology

import "testing"

func TestSplitIRI(t *testing.T) {
	tests := []struct {
		uri       string
		wantNS    string
		wantLocal string
	}{
		{"http://ex.org/Person", "http://ex.org/", "Person"},
		{"http://www.w3.org/2002/07/owl#Thing", "http://www.w3.org/2002/07/owl#", "Thing"},
		{"http://ex.org/path#frag/x", "http://ex.org/path#", "frag/x"},
		{"urn:isbn:123", "urn:isbn:", "123"},
		{"http://ex.org/", "http://ex.org/", ""},
		{"plain", "", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			ns, local := SplitIRI(tt.uri)
			if ns != tt.wantNS || local != tt.wantLocal {
				t.Errorf("SplitIRI(%q) = (%q, %q), want (%q, %q)", tt.uri, ns, local, tt.wantNS, tt.wantLocal)
			}
		})
	}
}

func TestNodeString(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"iri", IRI("http://ex.org/a"), "http://ex.org/a"},
		{"blank", Blank("b0"), "_:b0"},
		{"plain literal", Literal("Alice"), "Alice"},
		{"lang literal", LangLiteral("Alice", "en"), "Alice@en"},
		{"typed literal", TypedLiteral("42", NamespaceXSD+"int"), "42^^" + NamespaceXSD + "int"},
		{"xsd string", TypedLiteral("Alice", XSDString), "Alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNodeNamespaceNonIRI(t *testing.T) {
	for _, n := range []Node{Blank("b0"), Literal("x")} {
		if n.Namespace() != "" || n.LocalName() != "" {
			t.Errorf("%v: Namespace() = %q, LocalName() = %q, want empty", n.Kind, n.Namespace(), n.LocalName())
		}
	}
}
