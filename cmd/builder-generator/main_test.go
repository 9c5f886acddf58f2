package main

import (
	"bytes"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"builder-generator/internal/diagnostic"
	"builder-generator/internal/plan"
)

const sampleSrc = `package sample

//builder:generate
type Request struct {
	URL     *string
	Headers []string ` + "`builder:\"each=header\"`" + `
}
`

const brokenSrc = `package sample

//builder:generate
type Broken struct {
	Env string ` + "`builder:\"each=env\"`" + `
	Arg []string ` + "`builder:\"eac=arg\"`" + `
}
`

// chdirModule creates a module with one source file and makes it the
// working directory.
func chdirModule(t *testing.T, src string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/sample\n\ngo 1.24\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sample.go"), []byte(src), 0o644))
	t.Chdir(dir)

	return dir
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(append([]string{"--color", "off"}, args...))

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestPlan_Text(t *testing.T) {
	chdirModule(t, sampleSrc)

	stdout, stderr, err := run(t, "plan")
	require.NoError(t, err, stderr)

	assert.Contains(t, stdout, "Request\n")
	assert.Contains(t, stdout, "optional")
	assert.Contains(t, stdout, "each=header")
}

func TestPlan_YAML(t *testing.T) {
	chdirModule(t, sampleSrc)

	stdout, _, err := run(t, "plan", "--format", "yaml")
	require.NoError(t, err)

	var records []plan.ExportedRecord
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Headers", records[0].Fields[1].Name)
	assert.Equal(t, []string{"header"}, records[0].Fields[1].Aliases)
}

func TestPlan_JSON(t *testing.T) {
	chdirModule(t, sampleSrc)

	stdout, _, err := run(t, "plan", "--format", "json")
	require.NoError(t, err)

	var records []plan.ExportedRecord
	require.NoError(t, json.Unmarshal([]byte(stdout), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "optional", records[0].Fields[0].Kind)
}

func TestPlan_Dump(t *testing.T) {
	chdirModule(t, sampleSrc)

	stdout, _, err := run(t, "plan", "--format", "dump")
	require.NoError(t, err)
	assert.Contains(t, stdout, "plan.Optional")
}

func TestPlan_UnknownFormat(t *testing.T) {
	chdirModule(t, sampleSrc)

	_, _, err := run(t, "plan", "--format", "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestPlan_Simulate(t *testing.T) {
	chdirModule(t, sampleSrc)

	stdout, _, err := run(t, "plan", "--simulate")
	require.NoError(t, err)

	assert.Contains(t, stdout, "builder: RequestBuilder")
	assert.Contains(t, stdout, "header(<header>)")
}

func TestGen_WritesAndCheckPasses(t *testing.T) {
	dir := chdirModule(t, sampleSrc)

	_, _, err := run(t, "check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of date")

	stdout, stderr, err := run(t, "gen")
	require.NoError(t, err, stderr)
	assert.Contains(t, stdout, "builders_gen.go")
	assert.FileExists(t, filepath.Join(dir, "builders_gen.go"))

	_, _, err = run(t, "check")
	require.NoError(t, err)
}

func TestGen_ReportsEveryProblem(t *testing.T) {
	dir := chdirModule(t, brokenSrc)

	_, stderr, err := run(t, "gen")
	require.ErrorIs(t, err, errFailed)

	assert.Contains(t, stderr, "sample.go:5:2: error: [each_requires_container]")
	assert.Contains(t, stderr, "[expected_each]")
	assert.Contains(t, stderr, "help: did you mean `each`?")
	assert.Contains(t, stderr, "2 error(s), 0 warning(s)")
	assert.NoFileExists(t, filepath.Join(dir, "builders_gen.go"))
}

func TestGen_JSONDiagnostics(t *testing.T) {
	chdirModule(t, brokenSrc)

	_, stderr, err := run(t, "--diagnostics", "json", "gen")
	require.ErrorIs(t, err, errFailed)

	var diags []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stderr[:bytes.LastIndexByte([]byte(stderr), ']')+1]), &diags))
	require.Len(t, diags, 2)
	assert.Equal(t, "error", diags[0]["severity"])
	assert.Equal(t, "Broken", diags[0]["record"])
}

func TestMaxDiagnostics(t *testing.T) {
	chdirModule(t, brokenSrc)

	_, stderr, err := run(t, "--max-diagnostics", "1", "plan")
	require.ErrorIs(t, err, errFailed)
	assert.Contains(t, stderr, "... and 1 more")
}

func TestRoot_InvalidFlags(t *testing.T) {
	chdirModule(t, sampleSrc)

	_, _, err := run(t, "--color", "sometimes", "plan")
	require.Error(t, err)

	_, _, err = run(t, "--diagnostics", "xml", "plan")
	require.Error(t, err)

	_, _, err = run(t, "--log-level", "loud", "plan")
	require.Error(t, err)
}

func TestRoot_ConfigFile(t *testing.T) {
	dir := chdirModule(t, `package sample

type Untagged struct {
	Name string
}
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".builder-generator.yaml"), []byte("types: [Untagged]\n"), 0o644))

	stdout, _, err := run(t, "plan")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Untagged")
}

func TestWriteDiagnostics_Location(t *testing.T) {
	var buf bytes.Buffer

	writeDiagnostics(&buf, diagnostic.List{
		diagnostic.Errorf(token.Position{}, "code", "msg").WithField("R", "F"),
	}, 0)

	assert.Equal(t, "R.F: error: [code] msg\n1 error(s), 0 warning(s)\n", buf.String())
}
