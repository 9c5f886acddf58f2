package plan

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind is the construction policy of a field.
type Kind int

const (
	_ Kind = iota // zero value is invalid

	KindMandatory // single value, must be set before Build
	KindOptional  // single value, may stay absent
	KindMulti     // accumulated container
)
