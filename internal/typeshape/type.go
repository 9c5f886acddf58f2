package typeshape

import (
	"go/ast"
	"go/types"
	"strings"
)

// Type is the written shape of a Go type expression.
//
// Args holds the type arguments of a Named type, the element of a Pointer,
// Slice, Array or Chan, and the key and value of a Map.
type Type struct {
	Kind      Kind
	Qualifier string      // package name of a qualified Named type ("time" in time.Time)
	Name      string      // Named types only
	Args      []Type      // see above
	Len       string      // Array length expression
	Dir       ast.ChanDir // Chan direction
	Text      string      // source text for Func and Opaque
	Refs      []string    // package qualifiers used inside Text or Len
}

// Named returns a named type, optionally applied to type arguments.
// A qualified name ("opt.Option") sets the qualifier.
func Named(name string, args ...Type) Type {
	t := Type{Kind: KindNamed, Name: name}
	if q, n, ok := strings.Cut(name, "."); ok {
		t.Qualifier, t.Name = q, n
	}

	if len(args) > 0 {
		t.Args = args
	}

	return t
}

// Pointer returns *elem.
func Pointer(elem Type) Type {
	return Type{Kind: KindPointer, Args: []Type{elem}}
}

// Slice returns []elem.
func Slice(elem Type) Type {
	return Type{Kind: KindSlice, Args: []Type{elem}}
}

// Apply wraps arg in the given wrapper shape. It is the inverse of Unwrap.
func Apply(wrapper string, arg Type) Type {
	switch wrapper {
	case PointerWrapper:
		return Pointer(arg)
	case SliceWrapper:
		return Slice(arg)
	default:
		return Named(wrapper, arg)
	}
}

// IsZero reports whether t is the zero Type.
func (t Type) IsZero() bool {
	return t.Kind == KindOpaque && t.Text == "" && t.Name == "" && len(t.Args) == 0
}

// QualifiedName returns the name with its qualifier, if any.
func (t Type) QualifiedName() string {
	if t.Qualifier == "" {
		return t.Name
	}

	return t.Qualifier + "." + t.Name
}

// Qualifiers returns every package qualifier referenced by t, depth first.
func (t Type) Qualifiers() []string {
	var out []string
	if t.Qualifier != "" {
		out = append(out, t.Qualifier)
	}

	out = append(out, t.Refs...)

	for _, a := range t.Args {
		out = append(out, a.Qualifiers()...)
	}

	return out
}

// String renders t as Go source.
func (t Type) String() string {
	var sb strings.Builder
	t.write(&sb)

	return sb.String()
}

func (t Type) write(sb *strings.Builder) {
	switch t.Kind {
	case KindNamed:
		sb.WriteString(t.QualifiedName())

		if len(t.Args) > 0 {
			sb.WriteByte('[')

			for i, a := range t.Args {
				if i > 0 {
					sb.WriteString(", ")
				}

				a.write(sb)
			}

			sb.WriteByte(']')
		}

	case KindPointer:
		sb.WriteByte('*')
		t.elem().write(sb)

	case KindSlice:
		sb.WriteString("[]")
		t.elem().write(sb)

	case KindArray:
		sb.WriteString("[" + t.Len + "]")
		t.elem().write(sb)

	case KindMap:
		sb.WriteString("map[")
		t.arg(0).write(sb)
		sb.WriteByte(']')
		t.arg(1).write(sb)

	case KindChan:
		switch t.Dir {
		case ast.RECV:
			sb.WriteString("<-chan ")
		case ast.SEND:
			sb.WriteString("chan<- ")
		default:
			sb.WriteString("chan ")
		}

		t.elem().write(sb)

	default:
		sb.WriteString(t.Text)
	}
}

func (t Type) elem() Type {
	return t.arg(0)
}

func (t Type) arg(i int) Type {
	if i < len(t.Args) {
		return t.Args[i]
	}

	return Type{Text: "?"}
}

// FromExpr converts a type expression to its syntactic shape.
func FromExpr(expr ast.Expr) Type {
	switch e := expr.(type) {
	case *ast.Ident:
		return Type{Kind: KindNamed, Name: e.Name}

	case *ast.SelectorExpr:
		if pkg, ok := e.X.(*ast.Ident); ok {
			return Type{Kind: KindNamed, Qualifier: pkg.Name, Name: e.Sel.Name}
		}

	case *ast.ParenExpr:
		return FromExpr(e.X)

	case *ast.StarExpr:
		return Pointer(FromExpr(e.X))

	case *ast.ArrayType:
		if e.Len == nil {
			return Slice(FromExpr(e.Elt))
		}

		return Type{Kind: KindArray, Len: types.ExprString(e.Len), Refs: selectorQualifiers(e.Len), Args: []Type{FromExpr(e.Elt)}}

	case *ast.MapType:
		return Type{Kind: KindMap, Args: []Type{FromExpr(e.Key), FromExpr(e.Value)}}

	case *ast.ChanType:
		return Type{Kind: KindChan, Dir: e.Dir, Args: []Type{FromExpr(e.Value)}}

	case *ast.FuncType:
		return Type{Kind: KindFunc, Text: types.ExprString(e), Refs: selectorQualifiers(e)}

	case *ast.IndexExpr:
		if base := FromExpr(e.X); base.Kind == KindNamed && len(base.Args) == 0 {
			base.Args = []Type{FromExpr(e.Index)}
			return base
		}

	case *ast.IndexListExpr:
		if base := FromExpr(e.X); base.Kind == KindNamed && len(base.Args) == 0 {
			for _, idx := range e.Indices {
				base.Args = append(base.Args, FromExpr(idx))
			}

			return base
		}
	}

	return Type{Kind: KindOpaque, Text: types.ExprString(expr), Refs: selectorQualifiers(expr)}
}

// selectorQualifiers returns the package names of every pkg.Name selector
// under n, in source order.
func selectorQualifiers(n ast.Node) []string {
	var out []string

	ast.Inspect(n, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}

		if pkg, ok := sel.X.(*ast.Ident); ok {
			out = append(out, pkg.Name)
			return false
		}

		return true
	})

	return out
}
