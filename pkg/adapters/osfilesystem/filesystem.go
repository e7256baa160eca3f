// Package osfilesystem provides a filesystem implementation using the os package.
package osfilesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/user/memecanvas/pkg/ports"
)

// FileSystem implements ports.FileSystem using the os package.
// Relative paths resolve against Root when it is set.
type FileSystem struct {
	Root string
}

// New creates a new FileSystem rooted at the working directory.
func New() *FileSystem {
	return &FileSystem{}
}

// NewRooted creates a FileSystem that resolves relative paths against root.
func NewRooted(root string) *FileSystem {
	return &FileSystem{Root: root}
}

func (fsys *FileSystem) resolve(path string) string {
	if fsys.Root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(fsys.Root, path)
}

// ReadFile reads the entire contents of a file.
func (fsys *FileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(fsys.resolve(path))
}

// WriteFile writes data to a file, creating parent directories as needed.
// The data is written to a temporary file first and renamed into place, so a
// reader never observes a partially written image.
func (fsys *FileSystem) WriteFile(path string, data []byte) error {
	path = fsys.resolve(path)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// MkdirAll creates a directory and all parent directories.
func (fsys *FileSystem) MkdirAll(path string) error {
	return os.MkdirAll(fsys.resolve(path), 0755)
}

// Exists checks if a file or directory exists.
func (fsys *FileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(fsys.resolve(path))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Ensure FileSystem implements ports.FileSystem
var _ ports.FileSystem = (*FileSystem)(nil)
