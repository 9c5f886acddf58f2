package gen_test

import (
	"os/exec"
	"path/filepath"
	"testing"
)

// runExampleIntegrationTest checks that the builders committed in an
// example package match what the CLI generates, then compiles and tests
// the package.
func runExampleIntegrationTest(t *testing.T, exampleName string) {
	t.Helper()

	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		t.Fatalf("repo root: %v", err)
	}

	cmd := exec.CommandContext(t.Context(), "go", "run", "./cmd/builder-generator", "--color", "off",
		"check", "./examples/"+exampleName)
	cmd.Dir = repoRoot

	b, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("check failed: %v\n%s", err, string(b))
	}

	test := exec.CommandContext(t.Context(), "go", "test", "./examples/"+exampleName, "-count=1")
	test.Dir = repoRoot

	b, err = test.CombinedOutput()
	if err != nil {
		t.Fatalf("example tests failed: %v\n%s", err, string(b))
	}
}
