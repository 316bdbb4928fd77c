// Package failure defines the canonical failure taxonomy shared by the
// validators, the aggregates and the HTTP problem translator.
package failure

import (
	"errors"
	"fmt"
	"strings"
)

// Kind standardizes failure semantics across the catalog and order domains.
type Kind string

const (
	KindMalformedInput      Kind = "malformed_input"
	KindValidation          Kind = "validation"
	KindNotFound            Kind = "not_found"
	KindUniquenessConflict  Kind = "uniqueness_conflict"
	KindRetirementConflict  Kind = "retirement_conflict"
	KindReferentialConflict Kind = "referential_conflict"
	KindInsufficientStock   Kind = "insufficient_stock"
	KindLineNotInOrder      Kind = "line_not_in_order"
	KindInternal            Kind = "internal"
)

// RetirementMode distinguishes the two retirement failure details.
type RetirementMode string

const (
	AlreadyRetired    RetirementMode = "already_retired"
	MustUnretireFirst RetirementMode = "must_unretire_first"
)

// FieldError is one field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the canonical failure wrapper. Exactly one of these crosses the
// core/orchestration boundary per failed operation.
type Error struct {
	Kind    Kind
	Op      string
	Detail  string
	Fields  []FieldError
	Mode    RetirementMode
	Nested  bool
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	detail := strings.TrimSpace(e.Detail)
	switch {
	case op != "" && detail != "":
		return fmt.Sprintf("%s: %s (%s)", op, detail, e.Kind)
	case op != "":
		return fmt.Sprintf("%s (%s)", op, e.Kind)
	case detail != "":
		return fmt.Sprintf("%s (%s)", detail, e.Kind)
	default:
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds a failure with explicit kind + operation.
func New(kind Kind, op, detail string, cause error) error {
	return &Error{
		Kind:   kind,
		Op:     strings.TrimSpace(op),
		Detail: strings.TrimSpace(detail),
		Cause:  cause,
	}
}

// Wrap annotates an existing error with failure semantics.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return New(kind, op, err.Error(), err)
}

// Malformed tags an unparsable request payload.
func Malformed(op string, cause error) error {
	detail := "request body could not be parsed"
	if cause != nil {
		detail = cause.Error()
	}
	return &Error{Kind: KindMalformedInput, Op: op, Detail: detail, Cause: cause}
}

// Validation carries the full ordered per-field error list.
func Validation(op string, fields []FieldError) error {
	return &Error{
		Kind:   KindValidation,
		Op:     strings.TrimSpace(op),
		Detail: "one or more fields failed validation",
		Fields: fields,
	}
}

// NotFound reports a missing entity looked up by primary key.
func NotFound(op, entity string, id uint) error {
	return &Error{
		Kind:   KindNotFound,
		Op:     strings.TrimSpace(op),
		Detail: fmt.Sprintf("%s with id %d does not exist", entity, id),
	}
}

// NotFoundNested reports a failed nested existence check (lookup by a
// non-key reference such as a status name).
func NotFoundNested(op, detail string) error {
	return &Error{
		Kind:   KindNotFound,
		Op:     strings.TrimSpace(op),
		Detail: strings.TrimSpace(detail),
		Nested: true,
	}
}

// Retirement reports a retirement conflict in one of its two modes.
func Retirement(op string, mode RetirementMode) error {
	detail := "already retired"
	if mode == MustUnretireFirst {
		detail = "retired, unretire before updating"
	}
	return &Error{Kind: KindRetirementConflict, Op: strings.TrimSpace(op), Detail: detail, Mode: mode}
}

// KindOf extracts the failure kind when available.
func KindOf(err error) Kind {
	var f *Error
	if !errors.As(err, &f) {
		return ""
	}
	return f.Kind
}

// IsKind checks whether err (or a wrapped err) carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// As unwraps err into a *Error when possible.
func As(err error) (*Error, bool) {
	var f *Error
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
