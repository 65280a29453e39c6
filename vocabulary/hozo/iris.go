package hozo

// Namespaces of the fixed vocabulary written after the configured prefixes.
const (
	// RDFSNamespace is bound to the "rdfs" prefix.
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"

	// OWLNamespace is bound to the "owl" prefix.
	OWLNamespace = "http://www.w3.org/2002/07/owl#"
)

// Prefixed names used in the Turtle output.
const (
	// SubClassOf links a concept to its parent concept or to a restriction.
	SubClassOf = "rdfs:subClassOf"

	// SubPropertyOf links a relation property to its parent property.
	SubPropertyOf = "rdfs:subPropertyOf"

	// Label carries the concept label verbatim.
	Label = "rdfs:label"

	// Comment carries the concept definition text.
	Comment = "rdfs:comment"

	// Type is the Turtle shorthand for rdf:type.
	Type = "a"

	// ObjectProperty types relation properties.
	ObjectProperty = "owl:ObjectProperty"

	// Restriction types the anonymous class built from a slot.
	Restriction = "owl:Restriction"

	// OnProperty names the slot property of a restriction.
	OnProperty = "owl:onProperty"

	// SomeValuesFrom names the class constraint of a restriction.
	SomeValuesFrom = "owl:someValuesFrom"

	// HasValue holds the literal value of a restriction.
	HasValue = "owl:hasValue"

	// UnionOf lists the alternatives of a multi-class constraint.
	UnionOf = "owl:unionOf"
)

// Full IRIs for the prefixed names above.
const (
	SubClassOfIRI     = RDFSNamespace + "subClassOf"
	SubPropertyOfIRI  = RDFSNamespace + "subPropertyOf"
	ObjectPropertyIRI = OWLNamespace + "ObjectProperty"
	OnPropertyIRI     = OWLNamespace + "onProperty"
	SomeValuesFromIRI = OWLNamespace + "someValuesFrom"
	HasValueIRI       = OWLNamespace + "hasValue"
	UnionOfIRI        = OWLNamespace + "unionOf"
)
