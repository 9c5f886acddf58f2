package common

import (
	"path"
	"regexp"
	"strings"
)

var majorVersion = regexp.MustCompile(`^v[0-9]+$`)

// PkgAlias returns the package alias (last element of path) for a given package path.
// Major version suffixes are skipped ("example.com/mod/v2" -> "mod",
// "gopkg.in/yaml.v3" -> "yaml").
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if majorVersion.MatchString(base) {
		if parent := path.Dir(pkgPath); parent != "." {
			base = path.Base(parent)
		}
	}

	if i := strings.Index(base, ".v"); i > 0 && majorVersion.MatchString(base[i+1:]) {
		base = base[:i]
	}

	return base
}
