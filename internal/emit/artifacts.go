package emit

import (
	"go/token"

	"builder-generator/internal/analyze"
	"builder-generator/internal/plan"
	"builder-generator/internal/typeshape"
)

// Artifacts are the four descriptors of one record's builder.
type Artifacts struct {
	Record      string
	Pos         token.Position // record declaration
	Builder     string         // builder type name
	Storage     []Slot
	Constructor Constructor
	Methods     []Method
	Finalize    Finalize
	Imports     []analyze.Import
}

// Slot is the per-field storage of the builder.
type Slot struct {
	Name   string // storage identifier
	Field  string // record field it backs
	Kind   SlotKind
	Policy plan.Kind
	// Type is the declared record field type.
	Type typeshape.Type
	// Elem is the value a setter takes: the field type for Mandatory, the
	// wrapped type for Optional and the element type for Multi.
	Elem typeshape.Type
	Pos  token.Position
}

// Constructor creates a builder with every slot at its default.
type Constructor struct {
	Name    string
	Builder string
	Inits   []SlotInit
}

// SlotInit is the initial state of one slot.
type SlotInit struct {
	Slot    string
	Default Default
}

// Method is one chaining method of the builder.
type Method struct {
	Name  string
	Kind  MethodKind
	Slot  string
	Param typeshape.Type
	Op    Op
	Pos   token.Position // field for setters, alias for accumulators
}

// Finalize is the method producing the record. Steps run in field order.
type Finalize struct {
	Name   string
	Record string
	Steps  []Step
}

// Step moves one slot into its record field. Build fails on the first
// Required step whose slot is absent.
type Step struct {
	Field    string
	Slot     string
	Required bool
}

// Slot returns the slot with the given storage name.
func (a *Artifacts) Slot(name string) (Slot, bool) {
	for _, s := range a.Storage {
		if s.Name == name {
			return s, true
		}
	}

	return Slot{}, false
}

// Method returns the first method with the given name.
func (a *Artifacts) Method(name string) (Method, bool) {
	for _, m := range a.Methods {
		if m.Name == name {
			return m, true
		}
	}

	return Method{}, false
}
