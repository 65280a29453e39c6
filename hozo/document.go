// Package hozo reads ontologies exported by the Hozo ontology editor.
//
// Only the sections the OWL mapping needs are modelled: the concept
// hierarchy (W_CONCEPTS/ISA), concept definitions with their slots
// (W_CONCEPTS/CONCEPT) and the relation hierarchy (R_CONCEPTS/ISA). Every
// other element is ignored.
package hozo

// Document is a parsed Hozo XML file. Slices keep document order.
type Document struct {
	Hierarchy []Edge    `xml:"W_CONCEPTS>ISA"`
	Concepts  []Concept `xml:"W_CONCEPTS>CONCEPT"`
	Relations []Edge    `xml:"R_CONCEPTS>ISA"`
}

// Edge is an is-a link between two concepts or two relations.
// Parent and Child are nil when the attribute is absent.
type Edge struct {
	ID     string  `xml:"id,attr"`
	Parent *string `xml:"parent,attr"`
	Child  *string `xml:"child,attr"`
}

// Endpoints returns parent and child, and false if either is missing.
func (e Edge) Endpoints() (parent, child string, ok bool) {
	if e.Parent == nil || e.Child == nil {
		return "", "", false
	}
	return *e.Parent, *e.Child, true
}

// Concept is a CONCEPT element.
type Concept struct {
	ID          string   `xml:"id,attr"`
	Labels      []string `xml:"LABEL"`
	Definitions []string `xml:"DEF"`
	Slots       []Slot   `xml:"SLOTS>SLOT"`
}

// Label returns the text of the first LABEL element.
func (c Concept) Label() (string, bool) {
	if len(c.Labels) == 0 {
		return "", false
	}
	return c.Labels[0], true
}

// Definition returns the text of the first DEF element, or "".
func (c Concept) Definition() string {
	if len(c.Definitions) == 0 {
		return ""
	}
	return c.Definitions[0]
}

// Slot is a SLOT element of a concept. An absent attribute reads as "".
type Slot struct {
	Role            string `xml:"role,attr"`
	ClassConstraint string `xml:"class_constraint,attr"`
	Value           string `xml:"value,attr"`
}

// HasValue reports whether the slot carries a literal value.
func (s Slot) HasValue() bool {
	return s.Value != ""
}
