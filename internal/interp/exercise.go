package interp

import (
	"fmt"

	"builder-generator/internal/emit"
)

// Call is one recorded method invocation.
type Call struct {
	Method string
	Value  any
}

// Exercise invokes every method of a once, in declaration order, with a
// placeholder value naming the method, then builds. Bulk setters receive a
// one element slice. It is used to preview the behavior of a builder.
func Exercise(a *emit.Artifacts) ([]Call, map[string]any, error) {
	var (
		b     = New(a)
		calls []Call
	)

	for _, m := range a.Methods {
		var v any = fmt.Sprintf("<%s>", m.Name)
		if m.Op == emit.OpReplace {
			v = []any{v}
		}

		if _, err := b.Call(m.Name, v); err != nil {
			return calls, nil, err
		}

		calls = append(calls, Call{Method: m.Name, Value: v})
	}

	out, err := b.Build()

	return calls, out, err
}
