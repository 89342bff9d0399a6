package runtime

import (
	"fmt"

	"github.com/geoknoesis/kastor-go/vocabulary/sh"
)

// ConstraintKind names the constraint a violation refers to.
type ConstraintKind string

const (
	ConstraintMinCount     ConstraintKind = "minCount"
	ConstraintMaxCount     ConstraintKind = "maxCount"
	ConstraintMinLength    ConstraintKind = "minLength"
	ConstraintMaxLength    ConstraintKind = "maxLength"
	ConstraintPattern      ConstraintKind = "pattern"
	ConstraintIn           ConstraintKind = "in"
	ConstraintHasValue     ConstraintKind = "hasValue"
	ConstraintMinInclusive ConstraintKind = "minInclusive"
	ConstraintMaxInclusive ConstraintKind = "maxInclusive"
	ConstraintMinExclusive ConstraintKind = "minExclusive"
	ConstraintMaxExclusive ConstraintKind = "maxExclusive"
)

// ComponentIRI returns the SHACL constraint component IRI for the kind,
// or "" for kinds without a standard component.
func (k ConstraintKind) ComponentIRI() string {
	switch k {
	case ConstraintMinCount:
		return sh.MinCountConstraintComponent
	case ConstraintMaxCount:
		return sh.MaxCountConstraintComponent
	case ConstraintMinLength:
		return sh.MinLengthConstraintComponent
	case ConstraintMaxLength:
		return sh.MaxLengthConstraintComponent
	case ConstraintPattern:
		return sh.PatternConstraintComponent
	case ConstraintIn:
		return sh.InConstraintComponent
	case ConstraintHasValue:
		return sh.HasValueConstraintComponent
	case ConstraintMinInclusive:
		return sh.MinInclusiveConstraintComponent
	case ConstraintMaxInclusive:
		return sh.MaxInclusiveConstraintComponent
	case ConstraintMinExclusive:
		return sh.MinExclusiveConstraintComponent
	case ConstraintMaxExclusive:
		return sh.MaxExclusiveConstraintComponent
	default:
		return ""
	}
}

// Violation is one unsatisfied constraint, reported as data. Constraint
// violations are never surfaced as Go errors: callers decide how to
// react to a report.
type Violation struct {
	// ShapeIRI is the shape whose constraint failed.
	ShapeIRI string

	// Path is the predicate IRI of the offending property.
	Path string

	// Kind is the violated constraint.
	Kind ConstraintKind

	// Message is a human-readable description.
	Message string
}

// String renders the violation for logs and test failures.
func (v Violation) String() string {
	return fmt.Sprintf("%s <%s>: %s", v.Kind, v.Path, v.Message)
}

// Report is the outcome of a validate() call: an empty report is the
// "ok" marker, otherwise it carries the accumulated violations in the
// order they were found.
type Report struct {
	Violations []Violation
}

// OK reports whether no violation was accumulated.
func (r Report) OK() bool { return len(r.Violations) == 0 }

// Add appends a violation.
func (r *Report) Add(v Violation) {
	r.Violations = append(r.Violations, v)
}

// Merge appends all violations from another report.
func (r *Report) Merge(other Report) {
	r.Violations = append(r.Violations, other.Violations...)
}
