package xcode

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-steplib/steps-xcode-invoke/xcodecommand"
)

// Environment keys set for toolchain commands.
const (
	DeveloperDirEnvKey      = "DEVELOPER_DIR"
	DyldFrameworkPathEnvKey = "DYLD_FRAMEWORK_PATH"
	DyldLibraryPathEnvKey   = "DYLD_LIBRARY_PATH"
	PathEnvKey              = "PATH"
)

const defaultToolchainPath = "Toolchains/XcodeDefault.xctoolchain"

// Xcode is an Xcode installation: a developer directory and an optional
// toolchain which takes priority over the installation's default toolchain.
//
// An Xcode is immutable, use WithToolchain to derive a variant.
type Xcode struct {
	developerDir string
	toolchain    string

	locator *Locator

	xcrunOnce sync.Once
	xcrunPath string
	xcrunErr  error
}

// RunOpts ...
type RunOpts struct {
	// Env is applied on top of the installation's environment.
	Env  map[string]string
	Mode xcodecommand.Mode
}

// DeveloperDir ...
func (x *Xcode) DeveloperDir() string {
	return x.developerDir
}

// Toolchain returns the toolchain override, empty if the default toolchain is used.
func (x *Xcode) Toolchain() string {
	return x.toolchain
}

// WithToolchain returns a variant of the installation which uses the given toolchain.
func (x *Xcode) WithToolchain(toolchain string) *Xcode {
	return &Xcode{
		developerDir: x.developerDir,
		toolchain:    toolchain,
		locator:      x.locator,
	}
}

func (x *Xcode) String() string {
	if x.toolchain == "" {
		return x.developerDir
	}
	return fmt.Sprintf("%s (%s)", x.developerDir, x.toolchain)
}

// ToolchainDirs returns the toolchain directories in search priority order.
func (x *Xcode) ToolchainDirs() []string {
	var dirs []string
	if x.toolchain != "" {
		dirs = append(dirs, x.toolchain)
	}
	return append(dirs, filepath.Join(x.developerDir, defaultToolchainPath), x.developerDir)
}

// Env returns the environment toolchain commands are run with.
// The search paths of the toolchain directories are prepended to the values found in host.
func (x *Xcode) Env(host env.Repository) map[string]string {
	var (
		dirs    = x.ToolchainDirs()
		libDirs = subpaths(dirs, "usr/lib")
		binDirs = subpaths(dirs, "usr/bin")
	)

	return map[string]string{
		DeveloperDirEnvKey:      x.developerDir,
		DyldFrameworkPathEnvKey: prependPathList(libDirs, host.Get(DyldFrameworkPathEnvKey)),
		DyldLibraryPathEnvKey:   prependPathList(libDirs, host.Get(DyldLibraryPathEnvKey)),
		PathEnvKey:              prependPathList(binDirs, host.Get(PathEnvKey)),
	}
}

// Run runs args[0] with the installation's environment.
// The executable is resolved against the PATH of that environment.
func (x *Xcode) Run(ctx context.Context, args []string, opts RunOpts) (xcodecommand.Output, error) {
	if len(args) == 0 {
		return xcodecommand.Output{}, errors.New("no command to run")
	}

	envs := x.runEnv(opts.Env)

	name, err := LookPath(x.locator.fileSystem, args[0], envs[PathEnvKey])
	if err != nil {
		return xcodecommand.Output{}, err
	}

	return x.locator.runner.Run(ctx, name, args[1:], envs, opts.Mode)
}

// Xcrun runs `xcrun <args>` and returns its stdout.
func (x *Xcode) Xcrun(ctx context.Context, args []string, extraEnv map[string]string) (string, error) {
	envs := x.runEnv(extraEnv)

	xcrun, err := x.resolveXcrun()
	if err != nil {
		return "", err
	}

	out, err := x.locator.runner.Run(ctx, xcrun, args, envs, xcodecommand.ModeStdout)
	if err != nil {
		return "", err
	}
	return string(out.Stdout), nil
}

func (x *Xcode) resolveXcrun() (string, error) {
	x.xcrunOnce.Do(func() {
		envs := x.Env(x.locator.envRepository)
		x.xcrunPath, x.xcrunErr = LookPath(x.locator.fileSystem, "xcrun", envs[PathEnvKey])
	})
	return x.xcrunPath, x.xcrunErr
}

func (x *Xcode) runEnv(extraEnv map[string]string) map[string]string {
	envs := x.Env(x.locator.envRepository)
	maps.Copy(envs, extraEnv)
	return envs
}

func subpaths(dirs []string, subpath string) []string {
	paths := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		paths = append(paths, filepath.Join(dir, subpath))
	}
	return paths
}

func prependPathList(paths []string, existing string) string {
	if existing != "" {
		paths = append(paths, existing)
	}
	return strings.Join(paths, string(os.PathListSeparator))
}
