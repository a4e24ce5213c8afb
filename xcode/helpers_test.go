package xcode

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/bitrise-io/go-utils/v2/log"
	cmd "github.com/bitrise-steplib/steps-xcode-invoke/command"
	"github.com/bitrise-steplib/steps-xcode-invoke/xcodecommand"
	"github.com/bitrise-steplib/steps-xcode-invoke/xcodecommand/mocks"
	"github.com/stretchr/testify/mock"
)

const (
	testHome  = "/Users/vagrant"
	testXcrun = "/usr/bin/xcrun"
)

type fakeFileSystem struct {
	executables map[string]bool
	dirs        map[string]bool
	children    map[string][]string
	symlinks    map[string]string
}

func newFakeFileSystem() *fakeFileSystem {
	return &fakeFileSystem{
		executables: map[string]bool{},
		dirs:        map[string]bool{},
		children:    map[string][]string{},
		symlinks:    map[string]string{},
	}
}

func (f *fakeFileSystem) Exists(pth string) bool {
	return f.dirs[pth] || f.executables[pth]
}

func (f *fakeFileSystem) IsDir(pth string) bool {
	return f.dirs[pth]
}

func (f *fakeFileSystem) IsExecutable(pth string) bool {
	return f.executables[pth]
}

func (f *fakeFileSystem) ReadDir(pth string) ([]string, error) {
	children, ok := f.children[pth]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return children, nil
}

func (f *fakeFileSystem) EvalSymlinks(pth string) (string, error) {
	if target, ok := f.symlinks[pth]; ok {
		if target == "" {
			return "", errors.New("broken symlink")
		}
		return target, nil
	}
	return pth, nil
}

func (f *fakeFileSystem) ExpandHome(pth string) (string, error) {
	if strings.HasPrefix(pth, "~") {
		return testHome + strings.TrimPrefix(pth, "~"), nil
	}
	return pth, nil
}

type envRepository map[string]string

func (r envRepository) Get(key string) string {
	return r[key]
}

func (r envRepository) Set(key, value string) error {
	r[key] = value
	return nil
}

func (r envRepository) Unset(key string) error {
	delete(r, key)
	return nil
}

func (r envRepository) List() []string {
	return cmd.EnvList(r)
}

type testingMocks struct {
	runner     *mocks.Runner
	fileSystem *fakeFileSystem
	env        envRepository
}

func createLocatorAndMocks(t *testing.T) (*Locator, testingMocks) {
	runner := mocks.NewRunner(t)
	fileSystem := newFakeFileSystem()
	fileSystem.executables[testXcrun] = true
	host := envRepository{"PATH": "/usr/bin:/bin"}

	locator := NewLocator(log.NewLogger(), runner, fileSystem, host)

	return locator, testingMocks{
		runner:     runner,
		fileSystem: fileSystem,
		env:        host,
	}
}

func developerDirEnv(developerDir string) interface{} {
	return mock.MatchedBy(func(envs map[string]string) bool {
		return envs[DeveloperDirEnvKey] == developerDir
	})
}

func stdout(s string) xcodecommand.Output {
	return xcodecommand.Output{Stdout: []byte(s)}
}

func mockXcodebuildVersion(runner *mocks.Runner, developerDir, output string) {
	runner.On("Run", mock.Anything, testXcrun, []string{"xcodebuild", "-version"}, developerDirEnv(developerDir), xcodecommand.ModeStdout).
		Return(stdout(output), nil).Maybe()
}

func mockSwiftVersion(runner *mocks.Runner, fileSystem *fakeFileSystem, swiftPath, output string) {
	fileSystem.executables[swiftPath] = true
	runner.On("Run", mock.Anything, swiftPath, []string{"--version"}, mock.Anything, xcodecommand.ModeStdout).
		Return(stdout(output), nil).Maybe()
}

func mockMdfind(runner *mocks.Runner, bundlePaths ...string) {
	runner.On("Run", mock.Anything, "mdfind", []string{xcodeBundleQuery}, mock.Anything, xcodecommand.ModeStdout).
		Return(stdout(strings.Join(bundlePaths, "\n")+"\n"), nil)
}

func xcodebuildOutput(version, build string) string {
	return "Xcode " + version + "\nBuild version " + build + "\n"
}

func swiftOutput(version string) string {
	return "Apple Swift version " + version + " (swiftlang-1300.0.31.1 clang-1300.0.29.1)\nTarget: x86_64-apple-macosx11.0\n"
}

func defaultSwiftPath(developerDir string) string {
	return developerDir + "/Toolchains/XcodeDefault.xctoolchain/usr/bin/swift"
}
