package ontology

import (
	"fmt"
	"io"
	"os"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"

	"github.com/matzehuels/ontodot/pkg/errors"
)

// LoadOption configures [Load].
type LoadOption func(*loadConfig)

type loadConfig struct {
	prefixes map[string]string
}

// WithPrefixes declares prefix to namespace bindings on the loaded store.
// It can be given multiple times; later bindings win.
func WithPrefixes(prefixes map[string]string) LoadOption {
	return func(c *loadConfig) {
		for p, ns := range prefixes {
			c.prefixes[p] = ns
		}
	}
}

// LoadFile reads an N-Triples or N-Quads file into a new store.
func LoadFile(path string, opts ...LoadOption) (*Store, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "ontology %s not found", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	return Load(f, opts...)
}

// Load reads N-Triples or N-Quads from r into a new store. Graph labels of
// quads are ignored; the result is a single merged graph.
func Load(r io.Reader, opts ...LoadOption) (*Store, error) {
	cfg := loadConfig{prefixes: make(map[string]string)}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := NewStore()
	for p, ns := range cfg.prefixes {
		s.SetPrefix(p, ns)
	}

	qr := nquads.NewReader(r, true)
	for line := 1; ; line++ {
		q, err := qr.ReadQuad()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "statement %d", line)
		}

		t, err := fromQuad(q)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "statement %d", line)
		}
		s.Add(t)
	}
	return s, nil
}

func fromQuad(q quad.Quad) (Triple, error) {
	subj := fromValue(q.Subject)
	if !subj.IsResource() {
		return Triple{}, fmt.Errorf("literal subject %s", subj)
	}
	pred := fromValue(q.Predicate)
	if !pred.IsIRI() {
		return Triple{}, fmt.Errorf("predicate %s is not an IRI", pred)
	}
	return Triple{Subject: subj, Predicate: pred, Object: fromValue(q.Object)}, nil
}

func fromValue(v quad.Value) Node {
	switch v := v.(type) {
	case quad.IRI:
		return IRI(string(v))
	case quad.BNode:
		return Blank(string(v))
	case quad.String:
		return Literal(string(v))
	case quad.TypedString:
		return TypedLiteral(string(v.Value), string(v.Type))
	case quad.LangString:
		return LangLiteral(string(v.Value), v.Lang)
	case nil:
		return Node{Kind: KindLiteral}
	default:
		return Literal(fmt.Sprint(v.Native()))
	}
}
