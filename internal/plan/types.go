package plan

import (
	"go/token"

	"builder-generator/internal/analyze"
	"builder-generator/internal/typeshape"
)

// Record is a classified record, ready for emission.
type Record struct {
	Name    string
	Pos     token.Position
	Fields  []Field
	Imports []analyze.Import // Imports referenced by field types
}

// Field is the classified form of one record field. The set of
// implementations is closed: Mandatory, Optional and Multi.
type Field interface {
	// FieldName returns the name of the record field.
	FieldName() string
	// Kind returns the construction policy.
	Kind() Kind

	field()
}

// Mandatory is a single-valued field that must be set before Build.
type Mandatory struct {
	Name string
	Type typeshape.Type
	Pos  token.Position
}

// Optional is a single-valued field declared with the optional wrapper.
// Inner is the wrapped type; Declared is the field type as written.
type Optional struct {
	Name     string
	Inner    typeshape.Type
	Declared typeshape.Type
	Pos      token.Position
}

// Multi is a container field filled one element at a time through its
// accumulator aliases.
type Multi struct {
	Name      string
	Container typeshape.Type
	Elem      typeshape.Type
	// Aliases are the accumulator method names, in declaration order.
	// Duplicates are kept.
	Aliases []string
	// AliasPos holds the position of each alias, parallel to Aliases.
	AliasPos []token.Position
	// BulkSetter is false when an alias equals Name, since the
	// accumulator then takes the name of the bulk-replace setter.
	BulkSetter bool
	Pos        token.Position
}

func (f *Mandatory) FieldName() string { return f.Name }
func (f *Optional) FieldName() string  { return f.Name }
func (f *Multi) FieldName() string     { return f.Name }

func (*Mandatory) Kind() Kind { return KindMandatory }
func (*Optional) Kind() Kind  { return KindOptional }
func (*Multi) Kind() Kind     { return KindMulti }

func (*Mandatory) field() {}
func (*Optional) field()  {}
func (*Multi) field()     {}
