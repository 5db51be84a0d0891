package naming

import (
	"github.com/matzehuels/ontodot/pkg/config"
	"github.com/matzehuels/ontodot/pkg/errors"
	"github.com/matzehuels/ontodot/pkg/ontology"
)

// Resolver resolves display names under one naming mode.
type Resolver struct {
	Mode     config.NameMode
	Prefixes PrefixTable
}

// NewResolver creates a resolver.
func NewResolver(mode config.NameMode, prefixes PrefixTable) Resolver {
	return Resolver{Mode: mode, Prefixes: prefixes}
}

// Name returns the display name of n.
//
// Literals and blank nodes keep their string form in every mode. IRIs are
// shortened according to the mode; in Prefixed mode an IRI whose namespace
// is not in the table is shown in full.
func (r Resolver) Name(n ontology.Node) string {
	if !n.IsIRI() {
		return n.String()
	}

	switch r.Mode {
	case config.LocalName:
		return n.LocalName()
	case config.Prefixed:
		ns := n.Namespace()
		prefix, ok := r.Prefixes.Lookup(ns)
		if !ok {
			return n.IRI
		}
		return prefix + ":" + n.IRI[len(ns):]
	default:
		return n.IRI
	}
}

// NameURI dereferences uri against g and returns its display name. A failed
// dereference or an empty result is an UNRESOLVED_DEREFERENCE error.
func (r Resolver) NameURI(g ontology.Graph, uri string) (string, error) {
	n, err := g.Resource(uri)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeUnresolvedDereference, err, "dereference %q", uri)
	}
	name := r.Name(n)
	if name == "" || name == "null" {
		return "", errors.New(errors.ErrCodeUnresolvedDereference, "no display name for %q", uri)
	}
	return name, nil
}
