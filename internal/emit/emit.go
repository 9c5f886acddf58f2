package emit

import (
	"fmt"

	"go.uber.org/zap"

	"builder-generator/internal/diagnostic"
	"builder-generator/internal/logging"
	"builder-generator/internal/plan"
)

// CodeMethodConflict is reported when two different builder methods end up
// with the same name.
const CodeMethodConflict = "method_conflict"

// Options names the generated declarations.
type Options struct {
	// BuilderSuffix is appended to the record name to name the builder type.
	BuilderSuffix string
	// ConstructorPrefix is prepended to the builder name to name its constructor.
	ConstructorPrefix string
	// FinalizeName is the name of the method returning the record.
	FinalizeName string
	// SlotPrefix is prepended to field names to name storage slots.
	SlotPrefix string
}

// DefaultOptions returns Options producing CommandBuilder,
// NewCommandBuilder and Build for a Command record.
func DefaultOptions() Options {
	return Options{
		BuilderSuffix:     "Builder",
		ConstructorPrefix: "New",
		FinalizeName:      "Build",
		SlotPrefix:        "field",
	}
}

// Build produces the artifacts of a resolved record. It is total: every
// classified record has a builder.
func Build(r *plan.Record, opts Options) *Artifacts {
	builderName := r.Name + opts.BuilderSuffix

	a := &Artifacts{
		Record:  r.Name,
		Pos:     r.Pos,
		Builder: builderName,
		Constructor: Constructor{
			Name:    opts.ConstructorPrefix + builderName,
			Builder: builderName,
		},
		Finalize: Finalize{Name: opts.FinalizeName, Record: r.Name},
		Imports:  r.Imports,
	}

	for _, f := range r.Fields {
		slot := slotFor(f, opts.SlotPrefix)

		a.Storage = append(a.Storage, slot)
		a.Constructor.Inits = append(a.Constructor.Inits, SlotInit{Slot: slot.Name, Default: defaultOf(slot.Kind)})
		a.Methods = append(a.Methods, methodsFor(f, slot)...)
		a.Finalize.Steps = append(a.Finalize.Steps, Step{
			Field:    f.FieldName(),
			Slot:     slot.Name,
			Required: f.Kind() == plan.KindMandatory,
		})
	}

	logging.Logger().Debug("emitted builder",
		zap.String("record", r.Name),
		zap.Int("slots", len(a.Storage)),
		zap.Int("methods", len(a.Methods)))

	return a
}

func slotFor(f plan.Field, prefix string) Slot {
	s := Slot{Name: prefix + f.FieldName(), Field: f.FieldName(), Policy: f.Kind()}

	switch f := f.(type) {
	case *plan.Mandatory:
		s.Kind, s.Type, s.Elem, s.Pos = SlotOptional, f.Type, f.Type, f.Pos
	case *plan.Optional:
		s.Kind, s.Type, s.Elem, s.Pos = SlotOptional, f.Declared, f.Inner, f.Pos
	case *plan.Multi:
		s.Kind, s.Type, s.Elem, s.Pos = SlotContainer, f.Container, f.Elem, f.Pos
	default:
		panic(fmt.Sprintf("emit: unexpected field %T", f))
	}

	return s
}

func defaultOf(k SlotKind) Default {
	if k == SlotContainer {
		return DefaultEmpty
	}

	return DefaultAbsent
}

func methodsFor(f plan.Field, slot Slot) []Method {
	switch f := f.(type) {
	case *plan.Mandatory, *plan.Optional:
		return []Method{{Name: slot.Field, Kind: MethodSetter, Slot: slot.Name, Param: slot.Elem, Op: OpSetPresent, Pos: slot.Pos}}

	case *plan.Multi:
		var out []Method
		if f.BulkSetter {
			out = append(out, Method{Name: slot.Field, Kind: MethodBulkSetter, Slot: slot.Name, Param: slot.Type, Op: OpReplace, Pos: slot.Pos})
		}

		for i, alias := range f.Aliases {
			pos := slot.Pos
			if i < len(f.AliasPos) {
				pos = f.AliasPos[i]
			}

			out = append(out, Method{Name: alias, Kind: MethodAccumulator, Slot: slot.Name, Param: slot.Elem, Op: OpAppend, Pos: pos})
		}

		return out

	default:
		panic(fmt.Sprintf("emit: unexpected field %T", f))
	}
}

// Conflicts reports methods that share a name but not a behavior, methods
// named like the finalize method and methods named like a storage slot.
// Identical methods, as produced by a duplicated alias, are not conflicts.
func Conflicts(a *Artifacts) diagnostic.List {
	var (
		diags diagnostic.List
		seen  = map[string]Method{}
	)

	for _, m := range a.Methods {
		slot, _ := a.Slot(m.Slot)

		if m.Name == a.Finalize.Name {
			diags.Add(diagnostic.Errorf(m.Pos, CodeMethodConflict,
				"method %s of field %s collides with the %s method", m.Name, slot.Field, a.Finalize.Name,
			).WithField(a.Record, slot.Field))

			continue
		}

		if taken, ok := a.Slot(m.Name); ok {
			diags.Add(diagnostic.Errorf(m.Pos, CodeMethodConflict,
				"%s method %s of field %s collides with the storage of field %s", m.Kind, m.Name, slot.Field, taken.Field,
			).WithField(a.Record, slot.Field))

			continue
		}

		prev, ok := seen[m.Name]
		if !ok {
			seen[m.Name] = m
			continue
		}

		if prev.Slot == m.Slot && prev.Kind == m.Kind {
			continue
		}

		other, _ := a.Slot(prev.Slot)
		diags.Add(diagnostic.Errorf(m.Pos, CodeMethodConflict,
			"%s method %s of field %s collides with the %s method of field %s",
			m.Kind, m.Name, slot.Field, prev.Kind, other.Field,
		).WithField(a.Record, slot.Field))
	}

	return diags
}
