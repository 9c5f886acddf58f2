package emit

import (
	"sort"

	"builder-generator/internal/analyze"
	"builder-generator/internal/diagnostic"
)

// CodeImportConflict is reported when records sharing a generated file
// refer to different packages by the same name.
const CodeImportConflict = "import_conflict"

// MergeImports returns the imports needed by the builders of one package.
// A path imported under several names is kept once per name. Two paths
// under one name cannot share a file and are reported against the record
// that brought in the second one.
func MergeImports(artifacts []*Artifacts) ([]analyze.Import, diagnostic.List) {
	var (
		out   []analyze.Import
		diags diagnostic.List
	)

	byName := map[string]analyze.Import{}
	owner := map[string]string{}

	for _, a := range artifacts {
		for _, imp := range a.Imports {
			name := imp.LocalName()

			prev, ok := byName[name]
			if !ok {
				byName[name] = imp
				owner[name] = a.Record
				out = append(out, imp)

				continue
			}

			if prev.Path != imp.Path {
				diags.Add(diagnostic.Errorf(a.Pos, CodeImportConflict,
					"record %s refers to %q as %s, but record %s refers to %q by the same name",
					a.Record, imp.Path, name, owner[name], prev.Path,
				).WithField(a.Record, "").WithSuggestions("import one of the packages under another name"))
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}

		return out[i].LocalName() < out[j].LocalName()
	})

	return out, diags
}
