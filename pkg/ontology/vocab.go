package ontology

// Well-known namespaces.
const (
	NamespaceRDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NamespaceRDFS = "http://www.w3.org/2000/01/rdf-schema#"
	NamespaceOWL  = "http://www.w3.org/2002/07/owl#"
	NamespaceXSD  = "http://www.w3.org/2001/XMLSchema#"
)

// Vocabulary terms the store and the engine look at.
const (
	RDFType = NamespaceRDF + "type"

	RDFSClass  = NamespaceRDFS + "Class"
	RDFSDomain = NamespaceRDFS + "domain"
	RDFSRange  = NamespaceRDFS + "range"

	OWLClass                     = NamespaceOWL + "Class"
	OWLThing                     = NamespaceOWL + "Thing"
	OWLNamedIndividual           = NamespaceOWL + "NamedIndividual"
	OWLObjectProperty            = NamespaceOWL + "ObjectProperty"
	OWLDatatypeProperty          = NamespaceOWL + "DatatypeProperty"
	OWLTransitiveProperty        = NamespaceOWL + "TransitiveProperty"
	OWLSymmetricProperty         = NamespaceOWL + "SymmetricProperty"
	OWLAsymmetricProperty        = NamespaceOWL + "AsymmetricProperty"
	OWLReflexiveProperty         = NamespaceOWL + "ReflexiveProperty"
	OWLIrreflexiveProperty       = NamespaceOWL + "IrreflexiveProperty"
	OWLInverseFunctionalProperty = NamespaceOWL + "InverseFunctionalProperty"

	XSDString = NamespaceXSD + "string"
)

// StandardPrefixes returns the prefix declarations most ontologies rely on.
func StandardPrefixes() map[string]string {
	return map[string]string{
		"rdf":  NamespaceRDF,
		"rdfs": NamespaceRDFS,
		"owl":  NamespaceOWL,
		"xsd":  NamespaceXSD,
	}
}

var classTypes = map[string]bool{
	OWLClass:  true,
	RDFSClass: true,
}

var objectPropertyTypes = map[string]bool{
	OWLObjectProperty:            true,
	OWLTransitiveProperty:        true,
	OWLSymmetricProperty:         true,
	OWLAsymmetricProperty:        true,
	OWLReflexiveProperty:         true,
	OWLIrreflexiveProperty:       true,
	OWLInverseFunctionalProperty: true,
}
