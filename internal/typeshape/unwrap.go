package typeshape

import "strings"

// Unwrap reports whether t is written as wrapper applied to exactly one type
// argument and returns that argument.
//
// The wrapper is either PointerWrapper, SliceWrapper or the name of a generic
// type. An unqualified wrapper name matches the last segment of a qualified
// type (Option matches opt.Option[T]); a qualified one must match both parts.
// Matching is textual: aliases are not resolved.
func Unwrap(t Type, wrapper string) (Type, bool) {
	switch wrapper {
	case PointerWrapper:
		if t.Kind == KindPointer && len(t.Args) == 1 {
			return t.Args[0], true
		}

	case SliceWrapper:
		if t.Kind == KindSlice && len(t.Args) == 1 {
			return t.Args[0], true
		}

	default:
		if t.Kind != KindNamed || len(t.Args) != 1 {
			return Type{}, false
		}

		if q, n, ok := strings.Cut(wrapper, "."); ok {
			if t.Qualifier == q && t.Name == n {
				return t.Args[0], true
			}

			return Type{}, false
		}

		if t.Name == wrapper {
			return t.Args[0], true
		}
	}

	return Type{}, false
}
