// Package mapper converts a Hozo document into OWL statements in Turtle.
//
// Convert makes a single pass in a fixed order: the prefix preamble, the
// concept hierarchy, the concepts with their slots, then the relation
// hierarchy. Every statement is written to the sink as one line. Input
// problems that would make the output wrong are found before the first line
// is written, so a rejected document produces no output.
package mapper

import (
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/c360studio/semstreams/errors"

	"github.com/c360studio/hozo2owl/export"
	"github.com/c360studio/hozo2owl/hozo"
	"github.com/c360studio/hozo2owl/namespace"
	"github.com/c360studio/hozo2owl/term"
	vocab "github.com/c360studio/hozo2owl/vocabulary/hozo"
)

const (
	// PropertyMarker is inserted before the local name of slot roles and
	// relation terms so they do not clash with the class of the same name.
	PropertyMarker = "has_"

	// StringDatatype is the only first constraint for which a slot value
	// is mapped to owl:hasValue.
	StringDatatype = "yamato:string"
)

// Sink receives output lines in order.
type Sink interface {
	WriteLine(line string) error
}

// Options configures a Mapper.
type Options struct {
	// DefaultNamespace, when set, is declared for the empty prefix.
	DefaultNamespace string

	// Strict makes label collisions fatal.
	Strict bool

	Logger   *slog.Logger
	Observer Observer
}

// Mapper converts documents against a fixed prefix table. It holds no run
// state and may be reused.
type Mapper struct {
	prefixes *namespace.Table
	resolver *term.Resolver
	opts     Options
	logger   *slog.Logger
	observer Observer
}

// New creates a mapper for prefixes.
func New(prefixes *namespace.Table, opts Options) *Mapper {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	var observer Observer = nopObserver{}
	if opts.Observer != nil {
		observer = opts.Observer
	}
	return &Mapper{
		prefixes: prefixes,
		resolver: term.NewResolver(prefixes),
		opts:     opts,
		logger:   logger,
		observer: observer,
	}
}

// Result describes a finished conversion.
type Result struct {
	// ConceptNames maps concept ids to their RDF terms.
	ConceptNames map[string]string

	// ConceptIDs maps RDF terms to the id of the first concept using them.
	ConceptIDs map[string]string

	Stats Stats
}

// run is the state of one Convert call.
type run struct {
	sink     Sink
	observer Observer
	stats    Stats
	declared map[string]bool
}

func (r *run) emit(kind StatementKind, line string) error {
	if err := r.sink.WriteLine(line); err != nil {
		return errors.WrapFatal(err, "Mapper", "Convert", "write "+string(kind))
	}
	if kind != "" {
		r.stats.Statements[kind]++
		r.observer.StatementEmitted(kind)
	}
	return nil
}

func (r *run) triple(kind StatementKind, s, p, o string) error {
	return r.emit(kind, export.FormatTriple(s, p, o))
}

func (r *run) skip(reason SkipReason) {
	r.stats.Skipped[reason]++
	r.observer.SlotSkipped(reason)
}

// Convert writes the OWL translation of doc to sink.
//
// Invalid input is reported as an invalid error joining every problem found,
// with nothing written. A sink failure is reported as a fatal error.
func (m *Mapper) Convert(doc *hozo.Document, sink Sink) (*Result, error) {
	if doc == nil {
		return nil, errors.WrapInvalid(stderrors.New("nil document"), "Mapper", "Convert", "validate document")
	}

	names, result, err := m.validate(doc)
	if err != nil {
		return nil, errors.WrapInvalid(err, "Mapper", "Convert", "validate document")
	}

	r := &run{
		sink:     sink,
		observer: m.observer,
		stats:    result.Stats,
		declared: make(map[string]bool),
	}

	if err := m.writePreamble(r); err != nil {
		return nil, err
	}
	if err := m.writeHierarchy(r, doc.Hierarchy); err != nil {
		return nil, err
	}
	for i, c := range doc.Concepts {
		if err := m.writeConcept(r, c, names[i]); err != nil {
			return nil, err
		}
	}
	if err := m.writeRelations(r, doc.Relations); err != nil {
		return nil, err
	}

	result.Stats = r.stats
	m.logger.Debug("Conversion complete",
		"concepts", len(doc.Concepts),
		"triples", r.stats.Triples(),
		"restrictions", r.stats.Restrictions(),
		"skipped_slots", r.stats.Skipped[SkipNoConstraints]+r.stats.Skipped[SkipLiteralNotString])
	return result, nil
}

// validate resolves every concept term and checks all fatal preconditions.
// names holds the term of each concept by index.
func (m *Mapper) validate(doc *hozo.Document) (names []string, result *Result, err error) {
	var errs []error
	result = &Result{
		ConceptNames: make(map[string]string, len(doc.Concepts)),
		ConceptIDs:   make(map[string]string, len(doc.Concepts)),
		Stats:        newStats(),
	}
	names = make([]string, len(doc.Concepts))
	labelOf := make(map[string]string, len(doc.Concepts))

	for i, e := range doc.Hierarchy {
		if _, _, ok := e.Endpoints(); !ok {
			errs = append(errs, fmt.Errorf("W_CONCEPTS/ISA[%d] id=%q: %w", i, e.ID, ErrMalformedEdge))
		}
	}

	for i, c := range doc.Concepts {
		label, ok := c.Label()
		if !ok {
			errs = append(errs, fmt.Errorf("CONCEPT[%d] id=%q: %w", i, c.ID, ErrMissingLabel))
			continue
		}
		name := m.resolver.Resolve(label)
		if term.LocalName(name) == "" {
			errs = append(errs, fmt.Errorf("CONCEPT[%d] id=%q label=%q: %w", i, c.ID, label, ErrEmptyTerm))
			continue
		}
		names[i] = name

		if prev, seen := labelOf[name]; seen && prev != label {
			result.Stats.Collisions++
			if m.opts.Strict {
				errs = append(errs, fmt.Errorf("CONCEPT[%d] id=%q: labels %q and %q both map to %s: %w",
					i, c.ID, prev, label, name, ErrTermCollision))
			} else {
				m.logger.Warn("Distinct labels map to the same term",
					"term", name, "label", label, "previous_label", prev, "concept_id", c.ID)
			}
		} else if !seen {
			labelOf[name] = label
			result.ConceptIDs[name] = c.ID
		}
		result.ConceptNames[c.ID] = name

		for j, s := range c.Slots {
			if s.Role == "" {
				errs = append(errs, fmt.Errorf("CONCEPT[%d] id=%q SLOT[%d]: %w", i, c.ID, j, ErrMissingRole))
			}
		}
	}

	for i, e := range doc.Relations {
		if _, _, ok := e.Endpoints(); !ok {
			errs = append(errs, fmt.Errorf("R_CONCEPTS/ISA[%d] id=%q: %w", i, e.ID, ErrMalformedRelation))
		}
	}

	if len(errs) > 0 {
		return nil, nil, stderrors.Join(errs...)
	}
	return names, result, nil
}

func (m *Mapper) writePreamble(r *run) error {
	for _, e := range m.prefixes.Entries() {
		if err := r.emit(KindPrefix, export.FormatPrefix(e.Prefix, e.IRI)); err != nil {
			return err
		}
	}
	if m.opts.DefaultNamespace != "" {
		if err := r.emit(KindPrefix, export.FormatPrefix("", m.opts.DefaultNamespace)); err != nil {
			return err
		}
	}
	if err := r.emit(KindPrefix, export.FormatPrefix("rdfs", vocab.RDFSNamespace)); err != nil {
		return err
	}
	if err := r.emit(KindPrefix, export.FormatPrefix("owl", vocab.OWLNamespace)); err != nil {
		return err
	}
	return r.emit("", "")
}

func (m *Mapper) writeHierarchy(r *run, edges []hozo.Edge) error {
	for _, e := range edges {
		parent, child, _ := e.Endpoints()
		if err := r.triple(KindSubClassOf, m.resolver.Resolve(child), vocab.SubClassOf, m.resolver.Resolve(parent)); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mapper) writeConcept(r *run, c hozo.Concept, name string) error {
	label, _ := c.Label()
	if err := r.triple(KindLabel, name, vocab.Label, export.Literal(label)); err != nil {
		return err
	}
	if def := c.Definition(); def != "" {
		if err := r.triple(KindComment, name, vocab.Comment, export.Literal(def)); err != nil {
			return err
		}
	}
	for _, s := range c.Slots {
		if err := m.writeSlot(r, name, c.ID, s); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mapper) writeSlot(r *run, name, conceptID string, s hozo.Slot) error {
	property := m.resolver.ResolveMarked(s.Role, PropertyMarker)

	alternatives := Alternatives(s.ClassConstraint)
	if len(alternatives) == 0 {
		m.logger.Debug("Slot skipped",
			"concept_id", conceptID, "role", s.Role, "reason", SkipNoConstraints,
			"class_constraint", s.ClassConstraint)
		r.skip(SkipNoConstraints)
		return nil
	}
	constraints := make([]string, len(alternatives))
	for i, alt := range alternatives {
		constraints[i] = m.resolver.Resolve(alt)
	}

	if s.HasValue() {
		if constraints[0] != StringDatatype {
			m.logger.Debug("Slot skipped",
				"concept_id", conceptID, "role", s.Role, "reason", SkipLiteralNotString,
				"constraint", constraints[0])
			r.skip(SkipLiteralNotString)
			return nil
		}
		return r.triple(KindHasValue, name, vocab.SubClassOf,
			restriction(property, vocab.HasValue, export.Literal(s.Value)))
	}

	kind := KindSomeValuesFrom
	if len(constraints) > 1 {
		kind = KindUnionOf
	}
	return r.triple(kind, name, vocab.SubClassOf,
		restriction(property, vocab.SomeValuesFrom, someValuesFrom(constraints)))
}

func (m *Mapper) writeRelations(r *run, edges []hozo.Edge) error {
	for _, e := range edges {
		parentRaw, childRaw, _ := e.Endpoints()
		parent := m.resolver.ResolveMarked(parentRaw, PropertyMarker)
		child := m.resolver.ResolveMarked(childRaw, PropertyMarker)

		for _, p := range []string{parent, child} {
			if r.declared[p] {
				continue
			}
			if err := r.triple(KindObjectProperty, p, vocab.Type, vocab.ObjectProperty); err != nil {
				return err
			}
			r.declared[p] = true
		}
		if err := r.triple(KindSubPropertyOf, child, vocab.SubPropertyOf, parent); err != nil {
			return err
		}
	}
	return nil
}
