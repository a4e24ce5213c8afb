package xcode

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultPath is searched when PATH is not set.
const DefaultPath = "/usr/bin:/bin"

// ErrExecutableNotFound ...
var ErrExecutableNotFound = errors.New("executable not found")

// ExecutableNotFoundError is returned when LookPath finds no executable with the requested name.
type ExecutableNotFoundError struct {
	Name string
	Path string
}

func (e *ExecutableNotFoundError) Error() string {
	return fmt.Sprintf("executable (%s) not found in PATH (%s)", e.Name, e.Path)
}

// Is ...
func (e *ExecutableNotFoundError) Is(target error) bool {
	return target == ErrExecutableNotFound
}

// LookPath resolves name against the given PATH value.
//
// It does not consult the PATH of the current process: toolchain commands
// have to be resolved against the environment they will be run with.
func LookPath(fileSystem FileSystem, name, pathValue string) (string, error) {
	if name == "" {
		return "", &ExecutableNotFoundError{Name: name, Path: pathValue}
	}

	if fileSystem.IsExecutable(name) {
		return name, nil
	}
	// Paths are never searched in PATH.
	if strings.ContainsRune(name, filepath.Separator) {
		return "", &ExecutableNotFoundError{Name: name, Path: pathValue}
	}

	if pathValue == "" {
		pathValue = DefaultPath
	}

	for _, dir := range filepath.SplitList(pathValue) {
		if dir == "" {
			continue
		}

		pth := filepath.Join(dir, name)
		if fileSystem.IsExecutable(pth) {
			return pth, nil
		}
	}

	return "", &ExecutableNotFoundError{Name: name, Path: pathValue}
}
