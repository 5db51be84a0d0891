package ontology

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/ontodot/pkg/errors"
)

const peopleNT = `<http://ex.org/Person> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2002/07/owl#Class> .
<http://ex.org/alice> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://ex.org/Person> .
<http://ex.org/alice> <http://ex.org/name> "Alice"@en .
<http://ex.org/alice> <http://ex.org/age> "30"^^<http://www.w3.org/2001/XMLSchema#int> .
<http://ex.org/alice> <http://ex.org/nick> "Al" .
_:b0 <http://ex.org/knows> <http://ex.org/alice> .
`

func TestLoad(t *testing.T) {
	s, err := Load(strings.NewReader(peopleNT), WithPrefixes(map[string]string{"ex": ex}))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if s.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", s.Len())
	}

	st := s.Statements()
	if got := st[2].Object; got != LangLiteral("Alice", "en") {
		t.Errorf("lang literal = %+v", got)
	}
	if got := st[3].Object; got != TypedLiteral("30", NamespaceXSD+"int") {
		t.Errorf("typed literal = %+v", got)
	}
	if got := st[4].Object; got != Literal("Al") {
		t.Errorf("plain literal = %+v", got)
	}
	if got := st[5].Subject; !got.IsBlank() {
		t.Errorf("blank subject = %+v", got)
	}

	if got := s.NsPrefixes()["ex"]; got != ex {
		t.Errorf("prefix ex = %q, want %q", got, ex)
	}
	if got := iris(s.Classes()); !equal(got, []string{ex + "Person"}) {
		t.Errorf("Classes() = %v", got)
	}
	if got := iris(s.Individuals()); !equal(got, []string{ex + "alice"}) {
		t.Errorf("Individuals() = %v", got)
	}
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(strings.NewReader("<http://ex.org/a> this is not rdf\n"))
	if err == nil {
		t.Fatal("Load() should fail on malformed input")
	}
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Load() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.nt")
	if err := os.WriteFile(path, []byte(peopleNT), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if s.Len() != 6 {
		t.Errorf("Len() = %d, want 6", s.Len())
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.nt"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("LoadFile() error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}
