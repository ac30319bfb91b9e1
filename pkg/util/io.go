package util

import (
	"os"
	"path/filepath"
)

// Exists reports whether the given file or directory exists.
func Exists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

// CreatNestedFile creates the file under the given path, together with
// any missing parent directories.
func CreatNestedFile(path string) (*os.File, error) {
	basePath := filepath.Dir(path)
	if !Exists(basePath) {
		err := os.MkdirAll(basePath, 0700)
		if err != nil {
			Log().Warning("Failed to create directory %q: %s", basePath, err)
			return nil, err
		}
	}

	return os.Create(path)
}
