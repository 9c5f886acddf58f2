package plan

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/require"

	"builder-generator/internal/analyze"
	"builder-generator/internal/diagnostic"
)

// parseRecord parses a single marked struct declaration.
func parseRecord(t *testing.T, decl string) analyze.Record {
	t.Helper()

	src := "package p\n\nimport \"time\"\n\nvar _ time.Duration\n\n//builder:generate\n" + decl + "\n"

	records, err := analyze.NewLoader(analyze.Options{}).ParseFile(token.NewFileSet(), "p.go", src)
	require.NoError(t, err)
	require.Len(t, records, 1)

	return records[0]
}

func codes(diags diagnostic.List) []string {
	var out []string
	for _, d := range diags {
		out = append(out, d.Code)
	}

	return out
}
