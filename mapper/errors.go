package mapper

import "errors"

// Input errors. Convert wraps them as invalid-input errors and joins all
// problems found in a document.
var (
	// ErrMissingLabel is returned for a CONCEPT without a LABEL.
	ErrMissingLabel = errors.New("concept has no label")

	// ErrEmptyTerm is returned when a concept label encodes to an empty
	// local name.
	ErrEmptyTerm = errors.New("label encodes to an empty term")

	// ErrMissingRole is returned for a SLOT without a role.
	ErrMissingRole = errors.New("slot has no role")

	// ErrMalformedEdge is returned for a W_CONCEPTS/ISA edge without parent
	// or child.
	ErrMalformedEdge = errors.New("concept isa edge missing parent or child")

	// ErrMalformedRelation is returned for an R_CONCEPTS/ISA edge without
	// parent or child.
	ErrMalformedRelation = errors.New("relation isa edge missing parent or child")

	// ErrTermCollision is returned in strict mode when two distinct labels
	// map to the same term.
	ErrTermCollision = errors.New("distinct labels map to the same term")
)
