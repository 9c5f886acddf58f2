package plan

import (
	"strings"

	"go.uber.org/zap"

	"builder-generator/internal/analyze"
	"builder-generator/internal/diagnostic"
	"builder-generator/internal/logging"
)

// Resolve classifies every field of rec in declaration order.
//
// It never stops at the first failing field: the returned list holds the
// diagnostics of all fields, concatenated in declaration order. The record
// is nil whenever that list contains an error.
func Resolve(rec analyze.Record, c Classifier) (*Record, diagnostic.List) {
	var diags diagnostic.List

	if !rec.Struct {
		diags.Add(diagnostic.Errorf(rec.Pos, CodeUnsupportedRecord,
			"%s: only struct types with named fields are supported", rec.Name))

		return nil, withRecord(diags, rec.Name)
	}

	if len(rec.TypeParams) > 0 {
		diags.Add(diagnostic.Errorf(rec.Pos, CodeUnsupportedRecord,
			"%s[%s]: generic records are not supported", rec.Name, strings.Join(rec.TypeParams, ", ")))
	}

	fields, fieldDiags := diagnostic.CollectAll(rec.Fields, func(f analyze.Field) (Field, diagnostic.List) {
		out, d := c.Classify(f)
		for i := range d {
			d[i].Field = f.Name
		}

		return out, d
	})
	diags.Merge(fieldDiags)
	diags = withRecord(diags, rec.Name)

	if diags.HasErrors() {
		logging.Logger().Debug("record rejected",
			zap.String("record", rec.Name),
			zap.Int("errors", len(diags.Errors())))

		return nil, diags
	}

	return &Record{
		Name:    rec.Name,
		Pos:     rec.Pos,
		Fields:  fields,
		Imports: rec.UsedImports(),
	}, diags
}

func withRecord(diags diagnostic.List, name string) diagnostic.List {
	for i := range diags {
		diags[i].Record = name
	}

	return diags
}
