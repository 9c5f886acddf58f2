package gen

import (
	"bytes"
	"fmt"
	"go/token"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/tools/imports"

	"builder-generator/internal/analyze"
	"builder-generator/internal/common"
	"builder-generator/internal/emit"
	"builder-generator/internal/logging"
	"builder-generator/internal/match"
	"builder-generator/internal/plan"
	"builder-generator/internal/typeshape"
)

// RuntimeImport is the import path of the package generated code depends on.
const RuntimeImport = "builder-generator/builder"

// runtimeAlias names the runtime import when a record file already uses
// its package name.
const runtimeAlias = "builderrt"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// OutputFile is the name of the file generated in each package.
	OutputFile string
	// OptionalWrapper and MultiWrapper are the shapes the classifier used.
	OptionalWrapper string
	MultiWrapper    string
	// OptionalSome wraps a value into a named optional wrapper, e.g. "opt.Some".
	OptionalSome string
	// MultiAppend is the method appending one element to a named container
	// in place, e.g. "Push".
	MultiAppend string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
	// DebugDir receives the unformatted source when formatting fails.
	// Empty means the package directory.
	DebugDir string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputFile:       "builders_gen.go",
		OptionalWrapper:  typeshape.PointerWrapper,
		MultiWrapper:     typeshape.SliceWrapper,
		GenerateComments: true,
	}
}

// Generator renders builder artifacts to Go source.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) (*Generator, error) {
	if config.OptionalWrapper != typeshape.PointerWrapper && config.OptionalSome == "" {
		return nil, errors.Newf("optional wrapper %s needs a constructor function", config.OptionalWrapper)
	}

	if config.MultiWrapper != typeshape.SliceWrapper && config.MultiAppend == "" {
		return nil, errors.Newf("container %s needs an append method", config.MultiWrapper)
	}

	return &Generator{config: config}, nil
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the package directory the file belongs to.
	Dir string
	// Filename is the base name of the file (e.g., "builders_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Path returns the full path of the file.
func (f GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// Render generates the builders of one package into a single file.
// On a formatting failure the unformatted source is returned with the error.
func (g *Generator) Render(pkg analyze.Package, artifacts []*emit.Artifacts) (*GeneratedFile, error) {
	imps, diags := emit.MergeImports(artifacts)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags.Err(), "merging imports of %s", pkg.Path)
	}

	data := g.buildTemplateData(pkg, artifacts, imps)

	file := &GeneratedFile{Dir: pkg.Dir, Filename: g.config.OutputFile}

	var buf bytes.Buffer
	if err := builderTemplate.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(err, "executing template")
	}

	formatted, err := imports.Process(file.Path(), buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		debugDir := g.config.DebugDir
		if debugDir == "" {
			debugDir = pkg.Dir
		}

		if werr := writeDebugUnformatted(debugDir, file.Filename, buf.Bytes()); werr != nil {
			logging.Logger().Warn("writing unformatted source", zap.Error(werr))
		}

		file.Content = buf.Bytes()

		return file, errors.Wrapf(err, "formatting %s (unformatted code returned)", file.Path())
	}

	file.Content = formatted

	logging.Logger().Debug("rendered builders",
		zap.String("package", pkg.Path),
		zap.Int("builders", len(artifacts)),
		zap.Int("bytes", len(formatted)))

	return file, nil
}

// templateData holds all data needed for the builders template.
type templateData struct {
	PackageName      string
	Imports          []importSpec
	Runtime          string // local name of the runtime package
	Builders         []builderData
	GenerateComments bool
}

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

type builderData struct {
	Record      string
	Builder     string
	Constructor string
	Finalize    string
	Slots       []slotData
	Methods     []methodData
	Steps       []stepData
}

type slotData struct {
	Name string
	Type string
}

type methodData struct {
	Name    string
	Param   string
	Body    string
	Comment string
}

type stepData struct {
	Field    string
	Slot     string
	Local    string
	Reset    string
	Required bool
	Value    string // expression assigned to the record field
}

// buildTemplateData constructs the template data for one package.
func (g *Generator) buildTemplateData(pkg analyze.Package, artifacts []*emit.Artifacts, imps []analyze.Import) *templateData {
	data := &templateData{
		PackageName:      pkg.Name,
		GenerateComments: g.config.GenerateComments,
	}

	runtime := importSpec{Path: RuntimeImport}
	data.Runtime = common.PkgAlias(RuntimeImport)
	imported := false

	for _, imp := range imps {
		data.Imports = append(data.Imports, importSpec{Alias: imp.Name, Path: imp.Path})

		switch {
		case imp.Path == RuntimeImport:
			imported = true
			data.Runtime = imp.LocalName()
		case imp.LocalName() == data.Runtime:
			runtime.Alias = runtimeAlias
		}
	}

	for _, a := range artifacts {
		data.Builders = append(data.Builders, g.builderData(a))
	}

	// Only Build methods with a mandatory field refer to the runtime.
	if requiresRuntime(artifacts) && !imported {
		if runtime.Alias != "" {
			data.Runtime = runtime.Alias
		}

		data.Imports = append(data.Imports, runtime)
		sort.SliceStable(data.Imports, func(i, j int) bool {
			return data.Imports[i].Path < data.Imports[j].Path
		})
	}

	return data
}

func (g *Generator) builderData(a *emit.Artifacts) builderData {
	bd := builderData{
		Record:      a.Record,
		Builder:     a.Builder,
		Constructor: a.Constructor.Name,
		Finalize:    a.Finalize.Name,
	}

	slots := make(map[string]emit.Slot, len(a.Storage))
	for _, s := range a.Storage {
		slots[s.Name] = s
		bd.Slots = append(bd.Slots, slotData{Name: s.Name, Type: g.slotType(s)})
	}

	rendered := map[string]bool{}

	for _, m := range a.Methods {
		// Duplicate aliases yield identical methods; Go allows one.
		if rendered[m.Name] {
			continue
		}

		rendered[m.Name] = true
		bd.Methods = append(bd.Methods, g.methodData(m, slots[m.Slot]))
	}

	// Locals must not shadow what the finalize body refers to.
	locals := map[string]bool{"b": true, "builder": true, runtimeAlias: true, "new": true, "nil": true, a.Record: true}
	for _, imp := range a.Imports {
		locals[imp.LocalName()] = true
	}

	for _, step := range a.Finalize.Steps {
		s := slots[step.Slot]
		local := localName(step.Field, locals)

		value := local
		if step.Required {
			value = "*" + local
		}

		bd.Steps = append(bd.Steps, stepData{
			Field:    step.Field,
			Slot:     step.Slot,
			Local:    local,
			Reset:    g.zero(s),
			Required: step.Required,
			Value:    value,
		})
	}

	return bd
}

func requiresRuntime(artifacts []*emit.Artifacts) bool {
	for _, a := range artifacts {
		for _, step := range a.Finalize.Steps {
			if step.Required {
				return true
			}
		}
	}

	return false
}

// slotType is the Go type of a storage slot. Mandatory slots hold a
// pointer so that absence is observable for every field type.
func (g *Generator) slotType(s emit.Slot) string {
	if s.Policy == plan.KindMandatory {
		return typeshape.Pointer(s.Type).String()
	}

	return s.Type.String()
}

// zero is the expression resetting a slot to its default.
func (g *Generator) zero(s emit.Slot) string {
	switch {
	case s.Policy == plan.KindMandatory:
		return "nil"
	case s.Kind == emit.SlotOptional && g.config.OptionalWrapper == typeshape.PointerWrapper:
		return "nil"
	case s.Kind == emit.SlotContainer && g.config.MultiWrapper == typeshape.SliceWrapper:
		return "nil"
	default:
		return fmt.Sprintf("*new(%s)", s.Type)
	}
}

func (g *Generator) methodData(m emit.Method, s emit.Slot) methodData {
	md := methodData{Name: m.Name, Param: m.Param.String()}
	target := "b." + s.Name

	switch m.Op {
	case emit.OpSetPresent:
		value := "&v"
		if s.Policy == plan.KindOptional && g.config.OptionalWrapper != typeshape.PointerWrapper {
			value = g.config.OptionalSome + "(v)"
		}

		md.Body = fmt.Sprintf("%s = %s", target, value)
		md.Comment = fmt.Sprintf("%s sets %s.", m.Name, s.Field)

	case emit.OpReplace:
		md.Body = fmt.Sprintf("%s = v", target)
		md.Comment = fmt.Sprintf("%s replaces every element of %s.", m.Name, s.Field)

	case emit.OpAppend:
		if g.config.MultiWrapper == typeshape.SliceWrapper {
			md.Body = fmt.Sprintf("%s = append(%s, v)", target, target)
		} else {
			md.Body = fmt.Sprintf("%s.%s(v)", target, g.config.MultiAppend)
		}

		md.Comment = fmt.Sprintf("%s appends one element to %s.", m.Name, s.Field)

	default:
		panic(fmt.Sprintf("gen: unexpected op %v", m.Op))
	}

	return md
}

// localName derives a unique local variable name from a field name.
func localName(field string, taken map[string]bool) string {
	base := match.LowerCamel(field)

	switch {
	case base == "":
		base = "value"
	case token.IsKeyword(base):
		base += "Value"
	}

	name := base
	for i := 2; taken[name]; i++ {
		name = base + strconv.Itoa(i)
	}

	taken[name] = true

	return name
}
