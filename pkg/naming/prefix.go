package naming

import (
	"sort"

	"github.com/matzehuels/ontodot/pkg/ontology"
)

// PrefixTable maps namespaces to prefixes. It is read-only once built.
type PrefixTable struct {
	byNamespace map[string]string
}

// BuildPrefixTable inverts the graph's prefix declarations and adds an empty
// prefix for every used namespace that has none.
//
// When several prefixes bind the same namespace, the lexically smallest
// prefix wins.
func BuildPrefixTable(g ontology.Graph) PrefixTable {
	declared := g.NsPrefixes()
	prefixes := make([]string, 0, len(declared))
	for p := range declared {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)

	t := PrefixTable{byNamespace: make(map[string]string, len(declared))}
	for _, p := range prefixes {
		ns := declared[p]
		if _, ok := t.byNamespace[ns]; !ok {
			t.byNamespace[ns] = p
		}
	}
	for _, ns := range g.Namespaces() {
		if _, ok := t.byNamespace[ns]; !ok {
			t.byNamespace[ns] = ""
		}
	}
	return t
}

// Lookup returns the prefix bound to ns.
func (t PrefixTable) Lookup(ns string) (string, bool) {
	p, ok := t.byNamespace[ns]
	return p, ok
}

// Len returns the number of namespaces in the table.
func (t PrefixTable) Len() int {
	return len(t.byNamespace)
}
