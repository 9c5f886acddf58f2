package typeshape

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind is the syntactic shape of a Type.
type Kind int

const (
	KindOpaque  Kind = iota // anything not modeled below, kept as source text
	KindNamed               // T, pkg.T, T[A], pkg.T[A, B]
	KindPointer             // *T
	KindSlice               // []T
	KindArray               // [N]T
	KindMap                 // map[K]V
	KindChan                // chan T, <-chan T, chan<- T
	KindFunc                // func(...) ...
)

// Wrapper names recognized for the built-in single-argument shapes.
const (
	PointerWrapper = "*"
	SliceWrapper   = "[]"
)
