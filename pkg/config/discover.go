package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
)

// FileNames are the style document names Discover looks for, in order.
var FileNames = []string{"neumorph.yaml", "neumorph.yml", "neumorph.toml"}

// Discover walks up from dir looking for a style document. The walk stops
// after the first directory holding a go.mod, or at the filesystem root.
// It returns "" when nothing is found.
func Discover(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			} else if !stderrors.Is(err, os.ErrNotExist) {
				return "", err
			}
		}
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return "", nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Resolve returns the built-in styles overlaid with the document at path.
// An empty path falls back to Discover from the working directory. The
// second result names the file that was read, or is empty.
func Resolve(path string) (*Document, string, error) {
	doc := Builtin()
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return doc, "", nil
		}
		found, err := Discover(wd)
		if err != nil || found == "" {
			return doc, "", err
		}
		path = found
	}
	user, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return doc.Merge(user), path, nil
}
