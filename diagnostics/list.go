package diagnostics

import "go.uber.org/multierr"

// List accumulates diagnostics in discovery order (§5 "Errors are appended
// in discovery order"). It wraps go.uber.org/multierr, matching the
// teacher's golang/encoding/loader.go accumulation pattern, rather than a
// hand-rolled slice-plus-nil-check.
type List struct {
	err error
}

// Append adds err to the list. A nil err is a no-op.
func (l *List) Append(err error) {
	l.err = multierr.Append(l.err, err)
}

// Empty reports whether no diagnostics have been recorded.
func (l *List) Empty() bool {
	return l.err == nil
}

// Errors returns the recorded diagnostics in discovery order.
func (l *List) Errors() []error {
	return multierr.Errors(l.err)
}

// Strings renders every diagnostic with Error(), in discovery order.
func (l *List) Strings() []string {
	errs := l.Errors()
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Error()
	}
	return out
}

// Err returns the accumulated error, or nil if List is Empty.
func (l *List) Err() error {
	return l.err
}
