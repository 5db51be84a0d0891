package transform

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/ontodot/pkg/naming"
	"github.com/matzehuels/ontodot/pkg/ontology"
)

// Classify resolves the graph's classes, individuals and properties into
// display sets. The literal set is left empty; literals are collected while
// scanning statements.
//
// An ontology without classes is valid; it is only reported at info level.
func Classify(g ontology.Graph, r naming.Resolver, logger *log.Logger) Sets {
	sets := Sets{
		Classes:            names(g.Classes(), r),
		Individuals:        names(g.Individuals(), r),
		ObjectProperties:   names(g.ObjectProperties(), r),
		DatatypeProperties: names(g.DatatypeProperties(), r),
	}
	if len(sets.Classes) == 0 && logger != nil {
		logger.Info("no classes detected")
	}
	return sets
}

// names resolves nodes to display names, dropping repeated names.
func names(nodes []ontology.Node, r naming.Resolver) []string {
	var out []string
	seen := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		name := r.Name(n)
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
