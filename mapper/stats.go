package mapper

// StatementKind classifies emitted output lines.
type StatementKind string

const (
	KindPrefix         StatementKind = "prefix"
	KindSubClassOf     StatementKind = "subclass_of"
	KindLabel          StatementKind = "label"
	KindComment        StatementKind = "comment"
	KindSomeValuesFrom StatementKind = "some_values_from"
	KindUnionOf        StatementKind = "union_of"
	KindHasValue       StatementKind = "has_value"
	KindObjectProperty StatementKind = "object_property"
	KindSubPropertyOf  StatementKind = "subproperty_of"
)

// SkipReason says why a slot produced no output.
type SkipReason string

const (
	// SkipNoConstraints means no class constraint alternative survived
	// filtering.
	SkipNoConstraints SkipReason = "no_constraints"

	// SkipLiteralNotString means the slot has a value but its first
	// constraint is not the string datatype.
	SkipLiteralNotString SkipReason = "literal_not_string"
)

// Observer is notified as a conversion runs.
type Observer interface {
	StatementEmitted(kind StatementKind)
	SlotSkipped(reason SkipReason)
}

// Stats counts what a conversion produced.
type Stats struct {
	Statements map[StatementKind]int
	Skipped    map[SkipReason]int
	Collisions int
}

func newStats() Stats {
	return Stats{
		Statements: make(map[StatementKind]int),
		Skipped:    make(map[SkipReason]int),
	}
}

// Triples returns the number of statement lines, excluding the preamble.
func (s Stats) Triples() int {
	n := 0
	for kind, count := range s.Statements {
		if kind != KindPrefix {
			n += count
		}
	}
	return n
}

// Restrictions returns the number of slot restrictions.
func (s Stats) Restrictions() int {
	return s.Statements[KindSomeValuesFrom] + s.Statements[KindUnionOf] + s.Statements[KindHasValue]
}

type nopObserver struct{}

func (nopObserver) StatementEmitted(StatementKind) {}
func (nopObserver) SlotSkipped(SkipReason)         {}
