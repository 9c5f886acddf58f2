package gen

import "text/template"

var builderTemplate = template.Must(template.New("builders").Parse(`// Code generated by builder-generator. DO NOT EDIT.

package {{.PackageName}}

{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}{{range $b := .Builders}}
{{if $.GenerateComments}}// {{$b.Builder}} builds {{$b.Record}} values.
{{end}}type {{$b.Builder}} struct {
{{range $b.Slots}}	{{.Name}} {{.Type}}
{{end}}}

{{if $.GenerateComments}}// {{$b.Constructor}} returns a {{$b.Builder}} with no field set.
{{end}}func {{$b.Constructor}}() *{{$b.Builder}} {
	return &{{$b.Builder}}{}
}
{{range $b.Methods}}
{{if $.GenerateComments}}// {{.Comment}}
{{end}}func (b *{{$b.Builder}}) {{.Name}}(v {{.Param}}) *{{$b.Builder}} {
	{{.Body}}
	return b
}
{{end}}
{{if $.GenerateComments}}// {{$b.Finalize}} returns the {{$b.Record}} and resets the builder.
// It fails on the first mandatory field that is not set.
{{end}}func (b *{{$b.Builder}}) {{$b.Finalize}}() ({{$b.Record}}, error) {
{{range $b.Steps}}	{{.Local}} := b.{{.Slot}}
	b.{{.Slot}} = {{.Reset}}
{{if .Required}}	if {{.Local}} == nil {
		return {{$b.Record}}{}, {{$.Runtime}}.NotSet("{{$b.Record}}", "{{.Field}}")
	}
{{end}}
{{end}}	return {{$b.Record}}{
{{range $b.Steps}}		{{.Field}}: {{.Value}},
{{end}}	}, nil
}
{{end}}`))
