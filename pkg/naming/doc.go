// Package naming turns graph nodes into display names.
//
// A [PrefixTable] maps namespaces to short prefixes. It is the inverse of
// the graph's prefix declarations, extended with an empty prefix for every
// namespace the graph uses without declaring it.
//
// A [Resolver] applies one of the three naming modes of [config.NameMode]:
//
//	r := naming.NewResolver(config.Prefixed, naming.BuildPrefixTable(g))
//	r.Name(ontology.IRI("http://ex.org/alice")) // "ex:alice"
//
// Literals always resolve to their string form, whatever the mode.
package naming
