package obsutil

import (
	"os"
	"path/filepath"
)

// FindUpward looks for name in the working directory and then in each
// parent up to the filesystem root. It returns the absolute path of the
// nearest hit, or "" when no ancestor has the file.
func FindUpward(name string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for dir := wd; ; {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return filepath.Abs(path)
		} else if !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
