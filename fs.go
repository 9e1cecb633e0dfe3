package initproject

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

type PathResolver struct {
	root string
}

func NewPathResolver(root string) (*PathResolver, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("could not get current working directory: %w", err)
		}
		root = wd
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("could not resolve root %q: %w", root, err)
	}
	return &PathResolver{root: abs}, nil
}

func (r *PathResolver) Root() string { return r.root }

func (r *PathResolver) Resolve(relativePath string) string {
	if filepath.IsAbs(relativePath) {
		return filepath.Clean(relativePath)
	}
	return filepath.Join(r.root, relativePath)
}

func (r *PathResolver) Rel(path string) string {
	if rel, err := filepath.Rel(r.root, path); err == nil {
		return rel
	}
	return path
}

// RewriteFile substitutes old with new in the file at path, writing the
// file back only when the content changed. Reports whether a write happened.
func RewriteFile(path, old, new string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	replaced := strings.ReplaceAll(string(content), old, new)
	if replaced == string(content) {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(replaced), info.Mode().Perm()); err != nil {
		return false, err
	}
	return true, nil
}

// RenameDir moves a directory, refusing to clobber an existing destination.
func RenameDir(oldPath, newPath string) error {
	if _, err := os.Stat(newPath); err == nil {
		return &CollisionError{Path: newPath}
	}
	return os.Rename(oldPath, newPath)
}

// PythonFiles lists every .py file under root, including subpackages.
func PythonFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".py" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
