package emit

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"builder-generator/internal/plan"
	"builder-generator/internal/typeshape"
)

var str = typeshape.Named("string")

func commandRecord() *plan.Record {
	return &plan.Record{
		Name: "Command",
		Fields: []plan.Field{
			&plan.Mandatory{Name: "Executable", Type: str, Pos: token.Position{Filename: "c.go", Line: 4, Column: 2}},
			&plan.Multi{
				Name: "Args", Container: typeshape.Slice(str), Elem: str,
				Aliases: []string{"Arg"}, BulkSetter: true,
				Pos: token.Position{Filename: "c.go", Line: 5, Column: 2},
			},
			&plan.Multi{
				Name: "Env", Container: typeshape.Slice(str), Elem: str,
				Aliases: []string{"Env", "Var"},
				Pos:     token.Position{Filename: "c.go", Line: 6, Column: 2},
			},
			&plan.Optional{
				Name: "CurrentDir", Inner: str, Declared: typeshape.Pointer(str),
				Pos: token.Position{Filename: "c.go", Line: 7, Column: 2},
			},
		},
	}
}

func TestBuild_Names(t *testing.T) {
	a := Build(commandRecord(), DefaultOptions())

	assert.Equal(t, "Command", a.Record)
	assert.Equal(t, "CommandBuilder", a.Builder)
	assert.Equal(t, "NewCommandBuilder", a.Constructor.Name)
	assert.Equal(t, "CommandBuilder", a.Constructor.Builder)
	assert.Equal(t, "Build", a.Finalize.Name)
	assert.Equal(t, "Command", a.Finalize.Record)
}

func TestBuild_Storage(t *testing.T) {
	a := Build(commandRecord(), DefaultOptions())
	require.Len(t, a.Storage, 4)

	assert.Equal(t, "fieldExecutable", a.Storage[0].Name)
	assert.Equal(t, SlotOptional, a.Storage[0].Kind)
	assert.Equal(t, plan.KindMandatory, a.Storage[0].Policy)

	assert.Equal(t, SlotContainer, a.Storage[1].Kind)
	assert.Equal(t, "[]string", a.Storage[1].Type.String())
	assert.Equal(t, "string", a.Storage[1].Elem.String())

	assert.Equal(t, SlotOptional, a.Storage[3].Kind)
	assert.Equal(t, "*string", a.Storage[3].Type.String())
	assert.Equal(t, "string", a.Storage[3].Elem.String())

	assert.Equal(t, []SlotInit{
		{Slot: "fieldExecutable", Default: DefaultAbsent},
		{Slot: "fieldArgs", Default: DefaultEmpty},
		{Slot: "fieldEnv", Default: DefaultEmpty},
		{Slot: "fieldCurrentDir", Default: DefaultAbsent},
	}, a.Constructor.Inits)
}

func TestBuild_MethodOrder(t *testing.T) {
	a := Build(commandRecord(), DefaultOptions())

	type sig struct {
		Name string
		Kind MethodKind
		Slot string
		Op   Op
	}

	var got []sig
	for _, m := range a.Methods {
		got = append(got, sig{m.Name, m.Kind, m.Slot, m.Op})
	}

	assert.Equal(t, []sig{
		{"Executable", MethodSetter, "fieldExecutable", OpSetPresent},
		{"Args", MethodBulkSetter, "fieldArgs", OpReplace},
		{"Arg", MethodAccumulator, "fieldArgs", OpAppend},
		{"Env", MethodAccumulator, "fieldEnv", OpAppend},
		{"Var", MethodAccumulator, "fieldEnv", OpAppend},
		{"CurrentDir", MethodSetter, "fieldCurrentDir", OpSetPresent},
	}, got)
}

func TestBuild_MethodParams(t *testing.T) {
	a := Build(commandRecord(), DefaultOptions())

	bulk, ok := a.Method("Args")
	require.True(t, ok)
	assert.Equal(t, "[]string", bulk.Param.String())

	acc, ok := a.Method("Arg")
	require.True(t, ok)
	assert.Equal(t, "string", acc.Param.String())

	opt, ok := a.Method("CurrentDir")
	require.True(t, ok)
	assert.Equal(t, "string", opt.Param.String())

	_, ok = a.Method("Missing")
	assert.False(t, ok)
}

func TestBuild_FinalizeSteps(t *testing.T) {
	a := Build(commandRecord(), DefaultOptions())

	assert.Equal(t, []Step{
		{Field: "Executable", Slot: "fieldExecutable", Required: true},
		{Field: "Args", Slot: "fieldArgs"},
		{Field: "Env", Slot: "fieldEnv"},
		{Field: "CurrentDir", Slot: "fieldCurrentDir"},
	}, a.Finalize.Steps)
}

func TestBuild_CustomOptions(t *testing.T) {
	a := Build(commandRecord(), Options{
		BuilderSuffix:     "Maker",
		ConstructorPrefix: "Make",
		FinalizeName:      "Done",
		SlotPrefix:        "_",
	})

	assert.Equal(t, "CommandMaker", a.Builder)
	assert.Equal(t, "MakeCommandMaker", a.Constructor.Name)
	assert.Equal(t, "Done", a.Finalize.Name)
	assert.Equal(t, "_Executable", a.Storage[0].Name)
}

func TestBuild_EmptyRecord(t *testing.T) {
	a := Build(&plan.Record{Name: "Empty"}, DefaultOptions())

	assert.Empty(t, a.Storage)
	assert.Empty(t, a.Methods)
	assert.Empty(t, a.Finalize.Steps)
	assert.Empty(t, Conflicts(a))
}

func TestConflicts_DuplicateAliasIsNotAConflict(t *testing.T) {
	r := &plan.Record{Name: "R", Fields: []plan.Field{
		&plan.Multi{Name: "Args", Container: typeshape.Slice(str), Elem: str, Aliases: []string{"arg", "arg"}, BulkSetter: true},
	}}

	a := Build(r, DefaultOptions())

	assert.Len(t, a.Methods, 3)
	assert.Empty(t, Conflicts(a))
}

func TestConflicts_AliasShadowsOtherField(t *testing.T) {
	r := &plan.Record{Name: "R", Fields: []plan.Field{
		&plan.Mandatory{Name: "Name", Type: str},
		&plan.Multi{Name: "Tags", Container: typeshape.Slice(str), Elem: str, Aliases: []string{"Name"}, BulkSetter: true},
	}}

	diags := Conflicts(Build(r, DefaultOptions()))

	require.Len(t, diags, 1)
	assert.Equal(t, CodeMethodConflict, diags[0].Code)
	assert.Equal(t, "Tags", diags[0].Field)
	assert.Equal(t, "accumulator method Name of field Tags collides with the setter method of field Name", diags[0].Message)
}

func TestConflicts_AliasShadowsStorage(t *testing.T) {
	aliasPos := token.Position{Filename: "c.go", Line: 5, Column: 27}
	r := &plan.Record{Name: "Command", Fields: []plan.Field{
		&plan.Multi{
			Name: "Args", Container: typeshape.Slice(str), Elem: str,
			Aliases: []string{"fieldArgs"}, AliasPos: []token.Position{aliasPos}, BulkSetter: true,
			Pos: token.Position{Filename: "c.go", Line: 5, Column: 2},
		},
	}}

	diags := Conflicts(Build(r, DefaultOptions()))

	require.Len(t, diags, 1)
	assert.Equal(t, CodeMethodConflict, diags[0].Code)
	assert.Equal(t, aliasPos, diags[0].Pos)
	assert.Equal(t, "Args", diags[0].Field)
	assert.Equal(t, "accumulator method fieldArgs of field Args collides with the storage of field Args", diags[0].Message)
}

func TestConflicts_SetterShadowsStorageWithEmptyPrefix(t *testing.T) {
	opts := DefaultOptions()
	opts.SlotPrefix = ""

	r := &plan.Record{Name: "R", Fields: []plan.Field{
		&plan.Optional{Name: "Dir", Inner: str, Declared: typeshape.Pointer(str)},
	}}

	diags := Conflicts(Build(r, opts))

	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "setter method Dir of field Dir collides with the storage of field Dir")
}

func TestConflicts_FinalizeName(t *testing.T) {
	r := &plan.Record{Name: "R", Fields: []plan.Field{
		&plan.Mandatory{Name: "Build", Type: str},
	}}

	diags := Conflicts(Build(r, DefaultOptions()))

	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "collides with the Build method")
}

func TestKinds_String(t *testing.T) {
	assert.Equal(t, "container", SlotContainer.String())
	assert.Equal(t, "empty", DefaultEmpty.String())
	assert.Equal(t, "bulk-setter", MethodBulkSetter.String())
	assert.Equal(t, "append", OpAppend.String())
	assert.Equal(t, "Op(7)", Op(7).String())
}
