package ontology

import (
	"strings"
)

// Kind distinguishes the three kinds of graph nodes.
type Kind int

const (
	KindIRI Kind = iota
	KindBlank
	KindLiteral
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindIRI:
		return "iri"
	case KindBlank:
		return "blank"
	case KindLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// Node is a subject, predicate or object of a statement.
//
// For IRIs only IRI is set. For blank nodes Value holds the label. For
// literals Value holds the lexical form, with an optional Datatype IRI or
// language tag.
type Node struct {
	Kind     Kind   `json:"kind"`
	IRI      string `json:"iri,omitempty"`
	Value    string `json:"value,omitempty"`
	Datatype string `json:"datatype,omitempty"`
	Lang     string `json:"lang,omitempty"`
}

// IRI returns a node for the given URI.
func IRI(uri string) Node {
	return Node{Kind: KindIRI, IRI: uri}
}

// Blank returns a blank node with the given label.
func Blank(label string) Node {
	return Node{Kind: KindBlank, Value: label}
}

// Literal returns a plain literal.
func Literal(lex string) Node {
	return Node{Kind: KindLiteral, Value: lex}
}

// TypedLiteral returns a literal with a datatype IRI.
func TypedLiteral(lex, datatype string) Node {
	return Node{Kind: KindLiteral, Value: lex, Datatype: datatype}
}

// LangLiteral returns a language-tagged literal.
func LangLiteral(lex, lang string) Node {
	return Node{Kind: KindLiteral, Value: lex, Lang: lang}
}

// IsIRI reports whether n is a named resource.
func (n Node) IsIRI() bool { return n.Kind == KindIRI }

// IsBlank reports whether n is a blank node.
func (n Node) IsBlank() bool { return n.Kind == KindBlank }

// IsLiteral reports whether n is a literal.
func (n Node) IsLiteral() bool { return n.Kind == KindLiteral }

// IsResource reports whether n is an IRI or a blank node.
func (n Node) IsResource() bool { return n.Kind != KindLiteral }

// String returns the string form of the node.
//
// Literals render as "lex", "lex@lang" or "lex^^datatype"; xsd:string is
// treated as a plain literal. Blank nodes render as "_:label" and IRIs as
// the bare URI.
func (n Node) String() string {
	switch n.Kind {
	case KindLiteral:
		switch {
		case n.Lang != "":
			return n.Value + "@" + n.Lang
		case n.Datatype != "" && n.Datatype != XSDString:
			return n.Value + "^^" + n.Datatype
		default:
			return n.Value
		}
	case KindBlank:
		return "_:" + n.Value
	default:
		return n.IRI
	}
}

// Namespace returns the namespace part of an IRI node, or "" for other kinds.
func (n Node) Namespace() string {
	if n.Kind != KindIRI {
		return ""
	}
	ns, _ := SplitIRI(n.IRI)
	return ns
}

// LocalName returns the local part of an IRI node, or "" for other kinds.
func (n Node) LocalName() string {
	if n.Kind != KindIRI {
		return ""
	}
	_, local := SplitIRI(n.IRI)
	return local
}

// SplitIRI splits a URI into namespace and local name. The split happens
// after the last '#', else the last '/', else the last ':'. A URI without
// any separator has an empty namespace.
func SplitIRI(uri string) (ns, local string) {
	for _, sep := range []string{"#", "/", ":"} {
		if i := strings.LastIndex(uri, sep); i >= 0 {
			return uri[:i+1], uri[i+1:]
		}
	}
	return "", uri
}
