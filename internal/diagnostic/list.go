package diagnostic

import (
	"strings"
)

// List is an ordered collection of diagnostics.
type List []Diagnostic

// Add appends diagnostics to the list.
func (l *List) Add(d ...Diagnostic) {
	*l = append(*l, d...)
}

// Merge appends every diagnostic of other.
func (l *List) Merge(other List) {
	*l = append(*l, other...)
}

// HasErrors returns true if there are any error diagnostics.
func (l List) HasErrors() bool {
	for _, d := range l {
		if d.IsError() {
			return true
		}
	}

	return false
}

// Errors returns the error diagnostics in order.
func (l List) Errors() List {
	return l.filter(SeverityError)
}

// Warnings returns the warning diagnostics in order.
func (l List) Warnings() List {
	return l.filter(SeverityWarning)
}

func (l List) filter(s Severity) List {
	var out List

	for _, d := range l {
		if d.Severity == s {
			out = append(out, d)
		}
	}

	return out
}

// Err returns a combined error from all error diagnostics, or nil if there
// are none.
func (l List) Err() error {
	errs := l.Errors()
	if len(errs) == 0 {
		return nil
	}

	return &Error{List: errs}
}

// Error carries a non-empty list of error diagnostics as a Go error.
type Error struct {
	List List
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.List))
	for _, d := range e.List {
		parts = append(parts, d.String())
	}

	return strings.Join(parts, "\n")
}

// CollectAll applies fn to every item in order and never stops at the first
// failure. When no item produced an error diagnostic it returns every result
// in input order; otherwise the results are nil. The returned list always
// holds all diagnostics of all items, concatenated in input order.
func CollectAll[In, Out any](items []In, fn func(In) (Out, List)) ([]Out, List) {
	var (
		outs   = make([]Out, 0, len(items))
		diags  List
		failed bool
	)

	for _, item := range items {
		out, d := fn(item)
		diags = append(diags, d...)

		if d.HasErrors() {
			failed = true
			continue
		}

		outs = append(outs, out)
	}

	if failed {
		return nil, diags
	}

	return outs, diags
}
