package plan

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ExportedRecord is the serializable view of a classified record.
type ExportedRecord struct {
	Name   string          `json:"name" yaml:"name"`
	Pos    string          `json:"pos,omitempty" yaml:"pos,omitempty"`
	Fields []ExportedField `json:"fields" yaml:"fields"`
}

// ExportedField is the serializable view of a classified field.
type ExportedField struct {
	Name       string   `json:"name" yaml:"name"`
	Kind       string   `json:"kind" yaml:"kind"`
	Type       string   `json:"type" yaml:"type"`
	Value      string   `json:"value" yaml:"value"` // inner or element type
	Aliases    []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	BulkSetter *bool    `json:"bulk_setter,omitempty" yaml:"bulk_setter,omitempty"`
}

// Export converts classified records to their serializable view.
func Export(records []*Record) []ExportedRecord {
	out := make([]ExportedRecord, 0, len(records))

	for _, r := range records {
		er := ExportedRecord{Name: r.Name, Fields: make([]ExportedField, 0, len(r.Fields))}
		if r.Pos.IsValid() {
			er.Pos = r.Pos.String()
		}

		for _, f := range r.Fields {
			er.Fields = append(er.Fields, exportField(f))
		}

		out = append(out, er)
	}

	return out
}

func exportField(f Field) ExportedField {
	ef := ExportedField{Name: f.FieldName(), Kind: strings.ToLower(f.Kind().String())}

	switch f := f.(type) {
	case *Mandatory:
		ef.Type = f.Type.String()
		ef.Value = f.Type.String()
	case *Optional:
		ef.Type = f.Declared.String()
		ef.Value = f.Inner.String()
	case *Multi:
		bulk := f.BulkSetter
		ef.Type = f.Container.String()
		ef.Value = f.Elem.String()
		ef.Aliases = append([]string{}, f.Aliases...)
		ef.BulkSetter = &bulk
	default:
		panic(fmt.Sprintf("plan: unexpected field %T", f))
	}

	return ef
}

// ExportYAML renders classified records as YAML.
func ExportYAML(records []*Record) ([]byte, error) {
	return yaml.Marshal(Export(records))
}

// ExportJSON renders classified records as indented JSON.
func ExportJSON(records []*Record) ([]byte, error) {
	return json.MarshalIndent(Export(records), "", "  ")
}

// Dump renders the classified records in full, for debugging.
func Dump(records []*Record) string {
	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}
	return cfg.Sdump(records)
}

// Summary renders one line per field: "Name kind type [aliases]".
func Summary(r *Record) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s\n", r.Name)

	for _, ef := range Export([]*Record{r})[0].Fields {
		fmt.Fprintf(&sb, "  %-16s %-9s %s", ef.Name, ef.Kind, ef.Type)

		if len(ef.Aliases) > 0 {
			fmt.Fprintf(&sb, " each=%s", strings.Join(ef.Aliases, ","))
		}

		if ef.BulkSetter != nil && !*ef.BulkSetter {
			sb.WriteString(" (no bulk setter)")
		}

		sb.WriteByte('\n')
	}

	return sb.String()
}
