package analyze

import (
	"context"
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"builder-generator/internal/attr"
	"builder-generator/internal/logging"
	"builder-generator/internal/typeshape"
)

// LoadMode specifies what information to load from packages.
// Extraction is syntactic, so neither types nor type info are needed.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedSyntax

// DefaultMarker is the directive marking a struct for builder generation.
const DefaultMarker = "builder:generate"

// Options controls which declarations become records.
type Options struct {
	// Marker is the directive (without the leading //) that marks a type.
	Marker string
	// Types lists additional type names to treat as records.
	Types []string
	// Dir is the directory packages are loaded from. Empty means the
	// current directory.
	Dir string
}

// Loader loads Go packages and extracts records.
type Loader struct {
	opts Options
}

// NewLoader creates a new Loader.
func NewLoader(opts Options) *Loader {
	if opts.Marker == "" {
		opts.Marker = DefaultMarker
	}

	return &Loader{opts: opts}
}

// Load loads the packages matching patterns and extracts their records.
// Patterns are standard Go package patterns (e.g., "./...", "example.com/mod/store").
// Packages without records are omitted.
func (l *Loader) Load(ctx context.Context, patterns ...string) ([]Package, error) {
	cfg := &packages.Config{
		Mode:    LoadMode,
		Context: ctx,
		Dir:     l.opts.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load packages")
	}

	// Check for package errors
	var errs []string
	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, e := range pkg.Errors {
			errs = append(errs, e.Error())
		}
	})

	if len(errs) > 0 {
		return nil, errors.WithHint(
			errors.Newf("package errors: %s", strings.Join(errs, "; ")),
			"records are read from source; fix syntax errors first",
		)
	}

	var out []Package

	for _, pkg := range pkgs {
		p := l.processPackage(pkg)

		logging.Logger().Debug("loaded package",
			zap.String("path", p.Path),
			zap.Int("records", len(p.Records)))

		if len(p.Records) > 0 {
			out = append(out, p)
		}
	}

	return out, nil
}

// processPackage extracts records from a loaded package.
func (l *Loader) processPackage(pkg *packages.Package) Package {
	p := Package{
		Name: pkg.Name,
		Path: pkg.PkgPath,
	}

	if len(pkg.GoFiles) > 0 {
		p.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	for _, file := range pkg.Syntax {
		p.Records = append(p.Records, l.ExtractFile(pkg.Fset, file)...)
	}

	return p
}

// ParseFile parses a single Go source file and extracts its records.
// src follows the conventions of go/parser.ParseFile.
func (l *Loader) ParseFile(fset *token.FileSet, filename string, src any) ([]Record, error) {
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", filename)
	}

	return l.ExtractFile(fset, file), nil
}

// ExtractFile returns the records declared in file, in declaration order.
// Generated files are skipped.
func (l *Loader) ExtractFile(fset *token.FileSet, file *ast.File) []Record {
	if ast.IsGenerated(file) {
		return nil
	}

	filename := fset.Position(file.Package).Filename
	imports := fileImports(file)

	var records []Record

	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}

		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok || !l.selected(gd, ts) {
				continue
			}

			rec := extractRecord(fset, ts)
			rec.File = filename
			rec.Imports = imports
			records = append(records, rec)
		}
	}

	return records
}

// selected reports whether a type declaration is a record: it carries the
// marker directive or its name is listed in the options.
func (l *Loader) selected(gd *ast.GenDecl, ts *ast.TypeSpec) bool {
	if slices.Contains(l.opts.Types, ts.Name.Name) {
		return true
	}

	docs := []*ast.CommentGroup{ts.Doc}
	// A lone spec is documented on its declaration.
	if len(gd.Specs) == 1 {
		docs = append(docs, gd.Doc)
	}

	for _, doc := range docs {
		if doc == nil {
			continue
		}

		for _, c := range doc.List {
			if strings.TrimSpace(c.Text) == "//"+l.opts.Marker {
				return true
			}
		}
	}

	return false
}

func extractRecord(fset *token.FileSet, ts *ast.TypeSpec) Record {
	rec := Record{
		Name: ts.Name.Name,
		Pos:  fset.Position(ts.Name.Pos()),
	}

	if ts.TypeParams != nil {
		for _, f := range ts.TypeParams.List {
			for _, n := range f.Names {
				rec.TypeParams = append(rec.TypeParams, n.Name)
			}
		}
	}

	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		return rec
	}

	rec.Struct = true

	for _, f := range st.Fields.List {
		raws, diags := attr.FromTag(fset, f.Tag)
		shape := typeshape.FromExpr(f.Type)

		if len(f.Names) == 0 {
			rec.Fields = append(rec.Fields, Field{
				Name:        embeddedName(shape),
				Type:        shape,
				Attrs:       raws,
				Embedded:    true,
				Pos:         fset.Position(f.Type.Pos()),
				Diagnostics: diags,
			})

			continue
		}

		for _, n := range f.Names {
			rec.Fields = append(rec.Fields, Field{
				Name:        n.Name,
				Type:        shape,
				Attrs:       raws,
				Pos:         fset.Position(n.Pos()),
				Diagnostics: diags,
			})
		}
	}

	return rec
}

// embeddedName returns the implicit field name of an embedded type.
func embeddedName(t typeshape.Type) string {
	if t.Kind == typeshape.KindPointer && len(t.Args) == 1 {
		t = t.Args[0]
	}

	if t.Kind == typeshape.KindNamed {
		return t.Name
	}

	return t.String()
}

func fileImports(file *ast.File) []Import {
	out := make([]Import, 0, len(file.Imports))

	for _, spec := range file.Imports {
		p, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		imp := Import{Path: p}
		if spec.Name != nil {
			imp.Name = spec.Name.Name
		}

		out = append(out, imp)
	}

	return out
}
