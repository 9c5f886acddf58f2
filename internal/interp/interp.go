// Package interp executes builder artifacts on dynamic values.
//
// A Builder behaves like the code gen renders from the same artifacts: the
// constructor leaves optional slots absent and containers empty, methods
// apply their operation to one slot and Build moves every slot into the
// record, resetting it on the way.
package interp

import (
	"fmt"
	"reflect"

	"github.com/cockroachdb/errors"

	"builder-generator/builder"
	"builder-generator/internal/emit"
)

// SlotState is the observable content of one slot.
type SlotState struct {
	Present bool  // optional slots only
	Value   any   // optional slots only
	Items   []any // container slots only
}

type slot struct {
	kind    emit.SlotKind
	present bool
	value   any
	items   []any
}

func (s *slot) reset() {
	s.present, s.value, s.items = false, nil, nil
}

// Builder is a running instance of an emitted builder.
type Builder struct {
	a     *emit.Artifacts
	slots map[string]*slot
}

// New runs the constructor of a.
func New(a *emit.Artifacts) *Builder {
	b := &Builder{a: a, slots: make(map[string]*slot, len(a.Storage))}

	for _, s := range a.Storage {
		b.slots[s.Name] = &slot{kind: s.Kind}
	}

	for _, in := range a.Constructor.Inits {
		b.slots[in.Slot].reset()
	}

	return b
}

// Call invokes the named method with value and returns the builder for
// chaining. Bulk setters take any slice.
func (b *Builder) Call(method string, value any) (*Builder, error) {
	m, ok := b.a.Method(method)
	if !ok {
		return b, errors.Newf("%s has no method %s", b.a.Builder, method)
	}

	s := b.slots[m.Slot]

	switch m.Op {
	case emit.OpSetPresent:
		s.present, s.value = true, value

	case emit.OpReplace:
		items, err := toItems(value)
		if err != nil {
			return b, errors.Wrapf(err, "%s.%s", b.a.Builder, method)
		}

		s.items = items

	case emit.OpAppend:
		s.items = append(s.items, value)

	default:
		panic(fmt.Sprintf("interp: unexpected op %v", m.Op))
	}

	return b, nil
}

// MustCall is Call for known-good method names.
func (b *Builder) MustCall(method string, value any) *Builder {
	if _, err := b.Call(method, value); err != nil {
		panic(err)
	}

	return b
}

func toItems(value any) ([]any, error) {
	if value == nil {
		return nil, nil
	}

	if items, ok := value.([]any); ok {
		return append([]any(nil), items...), nil
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, errors.Newf("expected a slice, got %T", value)
	}

	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}

	return items, nil
}

// Build runs the finalize steps. It stops at the first required slot that
// is absent and returns a *builder.NotSetError; slots taken by earlier steps
// stay reset.
//
// Optional fields are nil when absent and containers are never nil.
func (b *Builder) Build() (map[string]any, error) {
	out := make(map[string]any, len(b.a.Finalize.Steps))

	for _, step := range b.a.Finalize.Steps {
		s := b.slots[step.Slot]
		taken := *s
		s.reset()

		switch taken.kind {
		case emit.SlotContainer:
			if taken.items == nil {
				taken.items = []any{}
			}

			out[step.Field] = taken.items

		case emit.SlotOptional:
			if step.Required && !taken.present {
				return nil, builder.NotSet(b.a.Finalize.Record, step.Field)
			}

			out[step.Field] = taken.value
		}
	}

	return out, nil
}

// Snapshot returns the current content of every slot, keyed by slot name.
func (b *Builder) Snapshot() map[string]SlotState {
	out := make(map[string]SlotState, len(b.slots))

	for name, s := range b.slots {
		st := SlotState{Present: s.present, Value: s.value}
		if s.items != nil {
			st.Items = append([]any(nil), s.items...)
		}

		out[name] = st
	}

	return out
}
