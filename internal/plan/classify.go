package plan

import (
	"fmt"
	"go/token"
	"slices"

	"go.uber.org/zap"

	"builder-generator/internal/analyze"
	"builder-generator/internal/attr"
	"builder-generator/internal/diagnostic"
	"builder-generator/internal/logging"
	"builder-generator/internal/typeshape"
)

// Diagnostic codes reported by this package.
const (
	CodeEachRequiresContainer = "each_requires_container"
	CodeEmbeddedField         = "embedded_field"
	CodeUnsupportedRecord     = "unsupported_record"
	CodeDuplicateAlias        = "duplicate_alias"
)

// Classifier decides the construction policy of fields.
type Classifier struct {
	// Keyword is the struct tag key holding builder annotations.
	Keyword string
	// OptionalWrapper is the wrapper shape of optional fields.
	OptionalWrapper string
	// MultiWrapper is the container shape of multi-valued fields.
	MultiWrapper string
}

// DefaultClassifier returns the classifier for plain Go shapes: *T is
// optional and []T is multi-valued.
func DefaultClassifier() Classifier {
	return Classifier{
		Keyword:         "builder",
		OptionalWrapper: typeshape.PointerWrapper,
		MultiWrapper:    typeshape.SliceWrapper,
	}
}

// Classify maps one field to exactly one of Mandatory, Optional or Multi.
// On failure the field is nil and the list holds at least one error.
// Warnings may accompany a successful classification.
func (c Classifier) Classify(f analyze.Field) (Field, diagnostic.List) {
	diags := append(diagnostic.List(nil), f.Diagnostics...)

	if f.Embedded {
		diags.Add(diagnostic.Errorf(f.Pos, CodeEmbeddedField,
			"embedded field %s is not supported; give it a name", f.Name))
	}

	aliases, parseDiags := attr.ParseEach(f.Attrs, c.Keyword)
	diags.Merge(parseDiags)

	if diags.HasErrors() {
		return nil, diags
	}

	var out Field

	switch {
	case len(aliases) > 0:
		elem, ok := typeshape.Unwrap(f.Type, c.MultiWrapper)
		if !ok {
			diags.Add(c.containerMismatch(f))
			return nil, diags
		}

		names := attr.Names(aliases)
		diags.Merge(duplicateAliases(aliases))

		out = &Multi{
			Name:       f.Name,
			Container:  f.Type,
			Elem:       elem,
			Aliases:    names,
			AliasPos:   aliasPositions(aliases),
			BulkSetter: !slices.Contains(names, f.Name),
			Pos:        f.Pos,
		}

	default:
		if inner, ok := typeshape.Unwrap(f.Type, c.OptionalWrapper); ok {
			out = &Optional{Name: f.Name, Inner: inner, Declared: f.Type, Pos: f.Pos}
		} else {
			out = &Mandatory{Name: f.Name, Type: f.Type, Pos: f.Pos}
		}
	}

	logging.Logger().Debug("classified field",
		zap.String("field", f.Name),
		zap.Stringer("kind", out.Kind()),
		zap.Stringer("type", f.Type))

	return out, diags
}

func (c Classifier) containerMismatch(f analyze.Field) diagnostic.Diagnostic {
	return diagnostic.Errorf(f.Pos, CodeEachRequiresContainer,
		"field %s has an `each` annotation but its type %s is not %s",
		f.Name, f.Type, describeWrapper(c.MultiWrapper),
	).WithSuggestions(fmt.Sprintf("declare %s as %s", f.Name, typeshape.Apply(c.MultiWrapper, f.Type)))
}

// describeWrapper names a wrapper shape for messages.
func describeWrapper(w string) string {
	switch w {
	case typeshape.SliceWrapper:
		return "a slice []T"
	case typeshape.PointerWrapper:
		return "a pointer *T"
	default:
		return fmt.Sprintf("a %s[T]", w)
	}
}

// duplicateAliases warns about aliases declared more than once on a field.
// They are kept: each declaration yields an accumulator.
func duplicateAliases(aliases []attr.Alias) diagnostic.List {
	var (
		seen  = map[string]bool{}
		diags diagnostic.List
	)

	for _, a := range aliases {
		if seen[a.Name] {
			diags.Add(diagnostic.Warnf(a.Pos, CodeDuplicateAlias, "accumulator %s is declared more than once", a.Name))
		}

		seen[a.Name] = true
	}

	return diags
}

func aliasPositions(aliases []attr.Alias) []token.Position {
	out := make([]token.Position, 0, len(aliases))
	for _, a := range aliases {
		out = append(out, a.Pos)
	}

	return out
}
