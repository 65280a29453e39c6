package hozo

import "github.com/c360studio/semstreams/vocabulary"

// Concept predicates.
const (
	// ConceptLabel is the label of a CONCEPT, written as rdfs:label.
	ConceptLabel = "hozo.concept.label"

	// ConceptDefinition is the DEF text of a CONCEPT, written as rdfs:comment.
	ConceptDefinition = "hozo.concept.definition"

	// ConceptIsA is a W_CONCEPTS/ISA edge, written as rdfs:subClassOf.
	ConceptIsA = "hozo.concept.isa"
)

// Slot predicates.
const (
	// SlotConstraint is a slot without a value, written as an
	// owl:someValuesFrom restriction.
	SlotConstraint = "hozo.slot.constraint"

	// SlotValue is a slot with a literal value, written as an owl:hasValue
	// restriction.
	SlotValue = "hozo.slot.value"

	// SlotRole is the role of a slot, written as the restriction's
	// owl:onProperty.
	SlotRole = "hozo.slot.role"
)

// Relation predicates.
const (
	// RelationIsA is an R_CONCEPTS/ISA edge, written as rdfs:subPropertyOf.
	RelationIsA = "hozo.relation.isa"

	// RelationProperty declares a relation as owl:ObjectProperty.
	RelationProperty = "hozo.relation.property"
)

// Mapping pairs a registered predicate with the prefixed name it is
// written as.
type Mapping struct {
	Predicate string
	QName     string
}

// Mappings lists every predicate of the vocabulary in output order.
func Mappings() []Mapping {
	return []Mapping{
		{ConceptIsA, SubClassOf},
		{ConceptLabel, Label},
		{ConceptDefinition, Comment},
		{SlotRole, OnProperty},
		{SlotConstraint, SomeValuesFrom},
		{SlotValue, HasValue},
		{RelationProperty, Type + " " + ObjectProperty},
		{RelationIsA, SubPropertyOf},
	}
}

func init() {
	vocabulary.Register(ConceptLabel,
		vocabulary.WithDescription("Concept label, emitted verbatim as the class label"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.RdfsLabel),
		vocabulary.WithAlias(vocabulary.AliasTypeLabel, 0))

	vocabulary.Register(ConceptDefinition,
		vocabulary.WithDescription("Free-text concept definition (DEF)"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.RdfsComment))

	vocabulary.Register(ConceptIsA,
		vocabulary.WithDescription("Concept hierarchy edge from child to parent"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(SubClassOfIRI))

	vocabulary.Register(SlotRole,
		vocabulary.WithDescription("Slot role, emitted with the has_ marker as the restricted property"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(OnPropertyIRI))

	vocabulary.Register(SlotConstraint,
		vocabulary.WithDescription("Slot class constraint; several alternatives become an owl:unionOf"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(SomeValuesFromIRI))

	vocabulary.Register(SlotValue,
		vocabulary.WithDescription("Literal slot value, only for yamato:string constraints"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(HasValueIRI))

	vocabulary.Register(RelationProperty,
		vocabulary.WithDescription("Relation declared once per run as an object property"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(ObjectPropertyIRI))

	vocabulary.Register(RelationIsA,
		vocabulary.WithDescription("Relation hierarchy edge from child to parent property"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(SubPropertyOfIRI))
}
