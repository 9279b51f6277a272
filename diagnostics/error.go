package diagnostics

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies the error kinds recognized by the core (§7).
type Kind string

const (
	KindParseError                       Kind = "ParseError"
	KindNameResolutionFailure            Kind = "NameResolutionFailure"
	KindOverloadResolutionFailure        Kind = "OverloadResolutionFailure"
	KindConditionalExecutionNotSupported Kind = "ConditionalExecutionNotSupported"
	KindNotParallelizable                Kind = "NotParallelizable"
	KindQubitsNotUnique                  Kind = "QubitsNotUnique"
	KindIndexOutOfRange                  Kind = "IndexOutOfRange"
	KindIndexNotInteger                  Kind = "IndexNotInteger"
	KindIndexNotConstant                 Kind = "IndexNotConstant"
	KindRangeMalformed                   Kind = "RangeMalformed"
	KindInvalidMatrixLiteral             Kind = "InvalidMatrixLiteral"
	KindNumQubitsError                   Kind = "NumQubitsError"
	KindUnsupportedPromotion             Kind = "UnsupportedPromotion"

	// KindVersionUnsupported and KindDuplicateErrorModel back the
	// original_source/-supplemented behaviors (version-ceiling checking
	// and single-error-model-per-program) that spec.md's own §7 Kind list
	// predates.
	KindVersionUnsupported  Kind = "VersionUnsupported"
	KindDuplicateErrorModel Kind = "DuplicateErrorModel"
)

// Error is a diagnostic raised anywhere in the pipeline: it carries a Kind,
// a human-readable message, and, once attached, a source Location.
type Error struct {
	Kind  Kind
	Loc   Location
	cause error
}

// New constructs an Error of the given kind, formatting msg/args with
// github.com/pkg/errors so the resulting error carries a stack trace for
// debugging, matching the teacher's own error-construction convention.
func New(kind Kind, msg string, args ...any) *Error {
	return &Error{Kind: kind, cause: errors.Errorf(msg, args...)}
}

// Wrap attaches a Kind to an existing error.
func Wrap(kind Kind, err error) *Error {
	return &Error{Kind: kind, cause: err}
}

// WithLocation returns a copy of e with loc attached, unless e already has
// a known location (the first, most specific, attachment wins, matching
// §7's propagation policy: "the source location of the statement is
// attached if not already present").
func (e *Error) WithLocation(loc Location) *Error {
	if e.Loc.Known() {
		return e
	}
	out := *e
	out.Loc = loc
	return &out
}

// Error renders "filename:line[:col][..line[:col]]: message" when a
// location is known, or just the message otherwise (§6.3).
func (e *Error) Error() string {
	if e.Loc.Known() {
		return fmt.Sprintf("%s: %s", e.Loc.String(), e.cause.Error())
	}
	return e.cause.Error()
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.cause
}
