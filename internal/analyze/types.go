package analyze

import (
	"go/token"

	"builder-generator/internal/attr"
	"builder-generator/internal/common"
	"builder-generator/internal/diagnostic"
	"builder-generator/internal/typeshape"
)

// Package holds the records found in one loaded package.
type Package struct {
	Name    string   // Package name
	Path    string   // Import path
	Dir     string   // Directory holding the package sources
	Records []Record // Records in file then declaration order
}

// Record describes a struct type to generate a builder for.
type Record struct {
	Name       string
	Pos        token.Position
	File       string   // Absolute path of the declaring file
	Imports    []Import // Imports of the declaring file
	TypeParams []string // Names of type parameters; records must have none
	Fields     []Field  // Fields in declaration order
	Struct     bool     // False when the named type is not a struct
}

// Field describes a struct field.
type Field struct {
	Name     string
	Type     typeshape.Type
	Attrs    []attr.Raw // Raw annotation tokens from the struct tag
	Embedded bool       // Whether the field is embedded (anonymous)
	Pos      token.Position
	// Diagnostics holds front-end problems with this field, such as a
	// malformed struct tag.
	Diagnostics diagnostic.List
}

// Import is an import spec of the file declaring a record.
type Import struct {
	Name string // Explicit name, empty when implied by the path
	Path string
}

// UsedImports returns the imports referenced by the field types of r, in
// import order. Qualifiers are matched against explicit names first, then
// the last path element.
func (r *Record) UsedImports() []Import {
	used := map[string]bool{}

	for _, f := range r.Fields {
		for _, q := range f.Type.Qualifiers() {
			used[q] = true
		}
	}

	var out []Import

	for _, imp := range r.Imports {
		if used[imp.LocalName()] {
			out = append(out, imp)
		}
	}

	return out
}

// LocalName returns the name the import is referred to by in source.
func (i Import) LocalName() string {
	if i.Name != "" {
		return i.Name
	}

	return common.PkgAlias(i.Path)
}
