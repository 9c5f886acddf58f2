package gen

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"builder-generator/internal/analyze"
	"builder-generator/internal/emit"
	"builder-generator/internal/plan"
	"builder-generator/internal/typeshape"
)

var str = typeshape.Named("string")

func commandArtifacts() *emit.Artifacts {
	return emit.Build(&plan.Record{
		Name: "Command",
		Fields: []plan.Field{
			&plan.Mandatory{Name: "Executable", Type: str},
			&plan.Multi{Name: "Args", Container: typeshape.Slice(str), Elem: str, Aliases: []string{"Arg"}, BulkSetter: true},
			&plan.Multi{Name: "Env", Container: typeshape.Slice(str), Elem: str, Aliases: []string{"Env", "Env"}},
			&plan.Optional{Name: "CurrentDir", Inner: str, Declared: typeshape.Pointer(str)},
			&plan.Mandatory{Name: "Timeout", Type: typeshape.Named("time.Duration")},
		},
		Imports: []analyze.Import{{Path: "time"}},
	}, emit.DefaultOptions())
}

func render(t *testing.T, cfg GeneratorConfig, artifacts ...*emit.Artifacts) string {
	t.Helper()

	g, err := NewGenerator(cfg)
	require.NoError(t, err)

	file, err := g.Render(analyze.Package{Name: "command", Path: "example.com/command", Dir: t.TempDir()}, artifacts)
	require.NoError(t, err)

	_, err = parser.ParseFile(token.NewFileSet(), file.Filename, file.Content, parser.AllErrors)
	require.NoError(t, err, "generated code must parse:\n%s", file.Content)

	return string(file.Content)
}

func TestGenerator_Render_Command(t *testing.T) {
	content := render(t, DefaultGeneratorConfig(), commandArtifacts())

	assert.Contains(t, content, "// Code generated by builder-generator. DO NOT EDIT.")
	assert.Contains(t, content, "package command")
	assert.Contains(t, content, `"builder-generator/builder"`)
	assert.Contains(t, content, `"time"`)

	assert.Contains(t, content, "type CommandBuilder struct {")
	assert.Contains(t, content, "func NewCommandBuilder() *CommandBuilder {")
	assert.Contains(t, content, "return &CommandBuilder{}")

	assert.Contains(t, content, "func (b *CommandBuilder) Executable(v string) *CommandBuilder {")
	assert.Contains(t, content, "b.fieldExecutable = &v")
	assert.Contains(t, content, "func (b *CommandBuilder) Args(v []string) *CommandBuilder {")
	assert.Contains(t, content, "b.fieldArgs = v")
	assert.Contains(t, content, "func (b *CommandBuilder) Arg(v string) *CommandBuilder {")
	assert.Contains(t, content, "b.fieldArgs = append(b.fieldArgs, v)")
	assert.Contains(t, content, "func (b *CommandBuilder) CurrentDir(v string) *CommandBuilder {")
	assert.Contains(t, content, "b.fieldCurrentDir = &v")
	assert.Contains(t, content, "func (b *CommandBuilder) Timeout(v time.Duration) *CommandBuilder {")

	assert.Contains(t, content, "func (b *CommandBuilder) Build() (Command, error) {")
	assert.Contains(t, content, `return Command{}, builder.NotSet("Command", "Executable")`)
	assert.Contains(t, content, `return Command{}, builder.NotSet("Command", "Timeout")`)
	assert.NotContains(t, content, `builder.NotSet("Command", "CurrentDir")`)
}

func TestGenerator_Render_DuplicateAliasRenderedOnce(t *testing.T) {
	content := render(t, DefaultGeneratorConfig(), commandArtifacts())

	assert.Equal(t, 1, strings.Count(content, "func (b *CommandBuilder) Env("))
}

func TestGenerator_Render_FinalizeResetsSlots(t *testing.T) {
	content := render(t, DefaultGeneratorConfig(), commandArtifacts())

	assert.Contains(t, content, "executable := b.fieldExecutable")
	assert.Contains(t, content, "b.fieldExecutable = nil")
	assert.Contains(t, content, "if executable == nil {")
	assert.Contains(t, content, "args := b.fieldArgs")
	assert.Contains(t, content, "b.fieldArgs = nil")
	assert.Contains(t, content, "*executable,")
}

func TestGenerator_Render_Comments(t *testing.T) {
	content := render(t, DefaultGeneratorConfig(), commandArtifacts())
	assert.Contains(t, content, "// Arg appends one element to Args.")
	assert.Contains(t, content, "// Build returns the Command and resets the builder.")

	cfg := DefaultGeneratorConfig()
	cfg.GenerateComments = false

	content = render(t, cfg, commandArtifacts())
	assert.NotContains(t, content, "// Arg appends")
}

func TestGenerator_Render_NoRuntimeWithoutMandatoryFields(t *testing.T) {
	a := emit.Build(&plan.Record{
		Name:   "Opts",
		Fields: []plan.Field{&plan.Optional{Name: "Dir", Inner: str, Declared: typeshape.Pointer(str)}},
	}, emit.DefaultOptions())

	content := render(t, DefaultGeneratorConfig(), a)

	assert.NotContains(t, content, "builder-generator/builder")
	assert.NotContains(t, content, "import")
}

func TestGenerator_Render_NamedWrappers(t *testing.T) {
	a := emit.Build(&plan.Record{
		Name: "User",
		Fields: []plan.Field{
			&plan.Optional{Name: "Nick", Inner: str, Declared: typeshape.Named("opt.Option", str)},
			&plan.Multi{
				Name: "Tags", Container: typeshape.Named("list.List", str), Elem: str,
				Aliases: []string{"Tag"}, BulkSetter: true,
			},
		},
		Imports: []analyze.Import{{Path: "example.com/opt"}, {Path: "example.com/list"}},
	}, emit.DefaultOptions())

	cfg := DefaultGeneratorConfig()
	cfg.OptionalWrapper, cfg.OptionalSome = "Option", "opt.Some"
	cfg.MultiWrapper, cfg.MultiAppend = "List", "Push"

	content := render(t, cfg, a)

	assert.Contains(t, content, "b.fieldNick = opt.Some(v)")
	assert.Contains(t, content, "b.fieldNick = *new(opt.Option[string])")
	assert.Contains(t, content, "b.fieldTags.Push(v)")
	assert.Contains(t, content, "b.fieldTags = *new(list.List[string])")
}

func TestGenerator_Render_LocalsAvoidKeywordsAndShadowing(t *testing.T) {
	a := emit.Build(&plan.Record{
		Name: "Token",
		Fields: []plan.Field{
			&plan.Mandatory{Name: "Type", Type: str},
			&plan.Mandatory{Name: "Builder", Type: str},
			&plan.Mandatory{Name: "type", Type: str},
		},
	}, emit.DefaultOptions())

	content := render(t, DefaultGeneratorConfig(), a)

	assert.Contains(t, content, "typeValue := b.fieldType")
	assert.Contains(t, content, "builder2 := b.fieldBuilder")
	assert.Contains(t, content, "typeValue2 := b.fieldtype")
}

func TestGenerator_Render_RuntimeAliasOnCollision(t *testing.T) {
	a := emit.Build(&plan.Record{
		Name:    "Job",
		Fields:  []plan.Field{&plan.Mandatory{Name: "Spec", Type: typeshape.Named("builder.Spec")}},
		Imports: []analyze.Import{{Path: "example.com/builder"}},
	}, emit.DefaultOptions())

	content := render(t, DefaultGeneratorConfig(), a)

	assert.Contains(t, content, `builderrt "builder-generator/builder"`)
	assert.Contains(t, content, `builderrt.NotSet("Job", "Spec")`)
}

func TestGenerator_Render_MultipleRecords(t *testing.T) {
	other := emit.Build(&plan.Record{
		Name:   "Empty",
		Fields: nil,
	}, emit.DefaultOptions())

	content := render(t, DefaultGeneratorConfig(), commandArtifacts(), other)

	assert.Contains(t, content, "type CommandBuilder struct {")
	assert.Contains(t, content, "type EmptyBuilder struct {")
	assert.Contains(t, content, "func (b *EmptyBuilder) Build() (Empty, error) {")
}

func TestNewGenerator_NamedWrappersNeedHelpers(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.OptionalWrapper = "Option"

	_, err := NewGenerator(cfg)
	require.Error(t, err)

	cfg = DefaultGeneratorConfig()
	cfg.MultiWrapper = "List"

	_, err = NewGenerator(cfg)
	require.Error(t, err)
}

func TestWriteFiles_AndStale(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "pkg")
	file := GeneratedFile{Dir: dir, Filename: "builders_gen.go", Content: []byte("package pkg\n")}

	stale, err := Stale(file)
	require.NoError(t, err)
	assert.True(t, stale)

	require.NoError(t, WriteFiles([]GeneratedFile{file}))

	got, err := os.ReadFile(filepath.Join(dir, "builders_gen.go"))
	require.NoError(t, err)
	assert.Equal(t, "package pkg\n", string(got))

	stale, err = Stale(file)
	require.NoError(t, err)
	assert.False(t, stale)

	file.Content = []byte("package pkg\n\n// changed\n")
	stale, err = Stale(file)
	require.NoError(t, err)
	assert.True(t, stale)
}

func TestWriteDebugUnformatted(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, writeDebugUnformatted(dir, "builders_gen.go", []byte("package x {")))

	got, err := os.ReadFile(filepath.Join(dir, "builders_gen.unformatted.go"))
	require.NoError(t, err)
	assert.Equal(t, "package x {", string(got))

	assert.NoError(t, writeDebugUnformatted("", "x.go", nil))
}

func TestLocalName(t *testing.T) {
	taken := map[string]bool{"b": true}

	assert.Equal(t, "url", localName("URL", taken))
	assert.Equal(t, "currentDir", localName("CurrentDir", taken))
	assert.Equal(t, "funcValue", localName("Func", taken))
	assert.Equal(t, "value", localName("_", taken))
	assert.Equal(t, "b2", localName("B", taken))
	assert.Equal(t, "url2", localName("Url", taken))
}
