package ontology_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/ontodot/pkg/ontology"
)

func ExampleLoad() {
	src := `<http://ex.org/Person> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2002/07/owl#Class> .
<http://ex.org/alice> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://ex.org/Person> .
`
	g, err := ontology.Load(strings.NewReader(src))
	if err != nil {
		panic(err)
	}

	for _, c := range g.Classes() {
		fmt.Println("class:", c.LocalName())
	}
	for _, i := range g.Individuals() {
		fmt.Println("individual:", i.LocalName())
	}
	// Output:
	// class: Person
	// individual: alice
}
