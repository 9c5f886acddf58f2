package emit

//go:generate go tool stringer -type=SlotKind,Default,MethodKind,Op -linecomment -output=kinds_string.go

// SlotKind is the storage shape of a slot.
type SlotKind int

const (
	SlotOptional  SlotKind = iota // optional
	SlotContainer                 // container
)

// Default is the value a slot holds after construction and after Build.
type Default int

const (
	DefaultAbsent Default = iota // absent
	DefaultEmpty                 // empty
)

// MethodKind distinguishes the methods of a builder.
type MethodKind int

const (
	MethodSetter      MethodKind = iota // setter
	MethodBulkSetter                    // bulk-setter
	MethodAccumulator                   // accumulator
)

// Op is the effect of a method on its slot.
type Op int

const (
	OpSetPresent Op = iota // set-present
	OpReplace              // replace
	OpAppend               // append
)
