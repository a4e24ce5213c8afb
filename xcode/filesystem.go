package xcode

import (
	"os"
	"path/filepath"

	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/mitchellh/go-homedir"
)

// FileSystem is the filesystem surface used for discovery and executable lookup.
type FileSystem interface {
	Exists(pth string) bool
	IsDir(pth string) bool
	IsExecutable(pth string) bool
	ReadDir(pth string) ([]string, error)
	EvalSymlinks(pth string) (string, error)
	ExpandHome(pth string) (string, error)
}

type fileSystem struct {
	pathChecker pathutil.PathChecker
}

// NewFileSystem ...
func NewFileSystem(pathChecker pathutil.PathChecker) FileSystem {
	return fileSystem{pathChecker: pathChecker}
}

func (f fileSystem) Exists(pth string) bool {
	exists, err := f.pathChecker.IsPathExists(pth)
	return err == nil && exists
}

func (f fileSystem) IsDir(pth string) bool {
	exists, err := f.pathChecker.IsDirExists(pth)
	return err == nil && exists
}

func (f fileSystem) IsExecutable(pth string) bool {
	info, err := os.Stat(pth)
	if err != nil {
		return false
	}
	return !info.IsDir() && info.Mode().Perm()&0111 != 0
}

// ReadDir returns the paths of the directory's entries, sorted by name.
func (f fileSystem) ReadDir(pth string) ([]string, error) {
	entries, err := os.ReadDir(pth)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, filepath.Join(pth, entry.Name()))
	}
	return paths, nil
}

func (f fileSystem) EvalSymlinks(pth string) (string, error) {
	return filepath.EvalSymlinks(pth)
}

func (f fileSystem) ExpandHome(pth string) (string, error) {
	return homedir.Expand(pth)
}
