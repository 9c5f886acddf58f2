package config

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"

	"builder-generator/internal/common"
	"builder-generator/internal/typeshape"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Marker == "" || strings.ContainsAny(c.Marker, " \t\n") {
		return errors.Newf("marker must be a single word, got %q", c.Marker)
	}

	// Struct tag keys: no spaces, quotes or colons.
	if c.Keyword == "" || strings.ContainsAny(c.Keyword, " \t\":") {
		return errors.Newf("keyword must be a valid struct tag key, got %q", c.Keyword)
	}

	for _, name := range c.Types {
		if !common.IsIdent(name) {
			return errors.Newf("types: %q is not a type name", name)
		}
	}

	if c.Optional.Wrapper == typeshape.SliceWrapper || c.Multi.Wrapper == typeshape.PointerWrapper {
		return errors.New("optional.wrapper cannot be [] and multi.wrapper cannot be *")
	}

	if c.Optional.Wrapper == c.Multi.Wrapper {
		return errors.Newf("optional.wrapper and multi.wrapper must differ, both are %q", c.Optional.Wrapper)
	}

	if c.Optional.Wrapper != typeshape.PointerWrapper {
		if !isTypeName(c.Optional.Wrapper) {
			return errors.Newf("optional.wrapper must be * or a generic type name, got %q", c.Optional.Wrapper)
		}

		if !isTypeName(c.Optional.Some) {
			return errors.WithHint(
				errors.Newf("optional.some is required for optional.wrapper %s", c.Optional.Wrapper),
				"set it to the function building a present value, e.g. opt.Some",
			)
		}
	}

	if c.Multi.Wrapper != typeshape.SliceWrapper {
		if !isTypeName(c.Multi.Wrapper) {
			return errors.Newf("multi.wrapper must be [] or a generic type name, got %q", c.Multi.Wrapper)
		}

		if !common.IsIdent(c.Multi.Append) {
			return errors.WithHint(
				errors.Newf("multi.append is required for multi.wrapper %s", c.Multi.Wrapper),
				"set it to the method appending one element in place, e.g. Push",
			)
		}
	}

	if c.Naming.BuilderSuffix != "" && !isIdentPart(c.Naming.BuilderSuffix) {
		return errors.Newf("naming.builder_suffix must be an identifier suffix, got %q", c.Naming.BuilderSuffix)
	}

	if c.Naming.BuilderSuffix == "" {
		return errors.New("naming.builder_suffix cannot be empty: the builder would be named like its record")
	}

	if !isIdentPart(c.Naming.ConstructorPrefix) || !isIdentPart(c.Naming.SlotPrefix) {
		return errors.Newf("naming prefixes must be identifier parts, got %q and %q",
			c.Naming.ConstructorPrefix, c.Naming.SlotPrefix)
	}

	if !common.IsIdent(c.Naming.FinalizeMethod) {
		return errors.Newf("naming.finalize_method must be an identifier, got %q", c.Naming.FinalizeMethod)
	}

	if filepath.Base(c.Output.File) != c.Output.File || filepath.Ext(c.Output.File) != ".go" ||
		strings.HasSuffix(c.Output.File, "_test.go") {
		return errors.Newf("output.file must be a .go file name without directories, got %q", c.Output.File)
	}

	if c.Jobs < 0 {
		return errors.Newf("jobs must be >= 0, got %d", c.Jobs)
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrapf(err, "log.level")
	}

	return nil
}

// isTypeName accepts Name and pkg.Name.
func isTypeName(s string) bool {
	if q, n, ok := strings.Cut(s, "."); ok {
		return common.IsIdent(q) && common.IsIdent(n)
	}

	return common.IsIdent(s)
}

// isIdentPart reports whether s may appear inside an identifier. Empty is
// allowed.
func isIdentPart(s string) bool {
	return s == "" || common.IsIdent("x"+s)
}
