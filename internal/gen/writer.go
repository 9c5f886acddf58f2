package gen

import (
	"bytes"
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"builder-generator/internal/logging"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes every generated file into its package directory.
// Files whose content is unchanged are left untouched.
func WriteFiles(files []GeneratedFile) error {
	for _, file := range files {
		if file.Dir != "" {
			if err := os.MkdirAll(file.Dir, dirPerm); err != nil {
				return errors.Wrap(err, "creating output directory")
			}
		}

		if current, err := os.ReadFile(file.Path()); err == nil && bytes.Equal(current, file.Content) {
			logging.Logger().Debug("unchanged", zap.String("file", file.Path()))
			continue
		}

		if err := os.WriteFile(file.Path(), file.Content, filePerm); err != nil {
			return errors.Wrapf(err, "writing file %s", file.Path())
		}

		logging.Logger().Info("wrote", zap.String("file", file.Path()))
	}

	return nil
}

// Stale reports whether the file on disk differs from the generated content.
// A missing file is stale.
func Stale(file GeneratedFile) (bool, error) {
	current, err := os.ReadFile(file.Path())
	if errors.Is(err, os.ErrNotExist) {
		return true, nil
	}

	if err != nil {
		return false, errors.Wrapf(err, "reading %s", file.Path())
	}

	return !bytes.Equal(current, file.Content), nil
}
