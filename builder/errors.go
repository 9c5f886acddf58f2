// Package builder holds the runtime support shared by generated builders.
package builder

import "github.com/cockroachdb/errors"

// ErrFieldNotSet is matched by every error returned when a builder is
// finalized before one of its mandatory fields was set.
var ErrFieldNotSet = errors.New("field not set")

// NotSetError reports the mandatory field that was missing at Build time.
type NotSetError struct {
	Record string
	Field  string
}

func (e *NotSetError) Error() string {
	return e.Field + " not set"
}

// Is makes errors.Is(err, ErrFieldNotSet) hold.
func (e *NotSetError) Is(target error) bool {
	return target == ErrFieldNotSet
}

// NotSet returns the error for an unset mandatory field of record.
func NotSet(record, field string) error {
	return &NotSetError{Record: record, Field: field}
}
