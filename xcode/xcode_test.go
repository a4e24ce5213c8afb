package xcode

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bitrise-steplib/steps-xcode-invoke/xcodecommand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testDeveloperDir = "/Applications/Xcode.app/Contents/Developer"
	testToolchain    = "/Library/Developer/Toolchains/swift-5.9-RELEASE.xctoolchain"
	testDefault      = testDeveloperDir + "/Toolchains/XcodeDefault.xctoolchain"
)

func Test_GivenToolchainOverride_WhenToolchainDirs_ThenOverrideComesFirst(t *testing.T) {
	// Given
	locator, _ := createLocatorAndMocks(t)
	xcode := locator.New(testDeveloperDir).WithToolchain(testToolchain)

	// When
	dirs := xcode.ToolchainDirs()

	// Then
	assert.Equal(t, []string{testToolchain, testDefault, testDeveloperDir}, dirs)
	assert.Equal(t, testDeveloperDir, xcode.DeveloperDir())
	assert.Equal(t, testToolchain, xcode.Toolchain())
	assert.Equal(t, testDeveloperDir+" ("+testToolchain+")", xcode.String())
}

func Test_GivenNoToolchainOverride_WhenToolchainDirs_ThenDefaultComesFirst(t *testing.T) {
	// Given
	locator, _ := createLocatorAndMocks(t)
	xcode := locator.New(testDeveloperDir)

	// When
	dirs := xcode.ToolchainDirs()

	// Then
	assert.Equal(t, []string{testDefault, testDeveloperDir}, dirs)
	assert.Equal(t, testDeveloperDir, xcode.String())
}

func Test_GivenHostEnvironment_WhenEnv_ThenToolchainPathsArePrepended(t *testing.T) {
	// Given
	locator, _ := createLocatorAndMocks(t)
	xcode := locator.New(testDeveloperDir).WithToolchain(testToolchain)
	host := envRepository{
		"PATH":              "/usr/local/bin:/usr/bin:/bin",
		"DYLD_LIBRARY_PATH": "/opt/lib",
	}

	// When
	envs := xcode.Env(host)

	// Then
	assert.Equal(t, map[string]string{
		"DEVELOPER_DIR":       testDeveloperDir,
		"DYLD_FRAMEWORK_PATH": testToolchain + "/usr/lib:" + testDefault + "/usr/lib:" + testDeveloperDir + "/usr/lib",
		"DYLD_LIBRARY_PATH":   testToolchain + "/usr/lib:" + testDefault + "/usr/lib:" + testDeveloperDir + "/usr/lib:/opt/lib",
		"PATH":                testToolchain + "/usr/bin:" + testDefault + "/usr/bin:" + testDeveloperDir + "/usr/bin:/usr/local/bin:/usr/bin:/bin",
	}, envs)

	path := envs["PATH"]
	override := strings.Index(path, testToolchain+"/usr/bin")
	defaultToolchain := strings.Index(path, testDefault+"/usr/bin")
	developerDir := strings.Index(path, testDeveloperDir+"/usr/bin")
	inherited := strings.Index(path, "/usr/local/bin")
	assert.True(t, override < defaultToolchain && defaultToolchain < developerDir && developerDir < inherited)
}

func Test_GivenExecutableInSeveralToolchains_WhenRun_ThenHighestPriorityOneRuns(t *testing.T) {
	// Given
	locator, mocks := createLocatorAndMocks(t)
	xcode := locator.New(testDeveloperDir).WithToolchain(testToolchain)

	mocks.fileSystem.executables[testToolchain+"/usr/bin/swift"] = true
	mocks.fileSystem.executables[testDefault+"/usr/bin/swift"] = true
	mocks.fileSystem.executables["/usr/bin/swift"] = true

	envMatcher := mock.MatchedBy(func(envs map[string]string) bool {
		return envs["DEVELOPER_DIR"] == testDeveloperDir &&
			envs["SWIFTPM_ENABLE_PLUGINS"] == "1" &&
			strings.HasPrefix(envs["PATH"], testToolchain+"/usr/bin:")
	})
	mocks.runner.On("Run", mock.Anything, testToolchain+"/usr/bin/swift", []string{"build", "-c", "release"}, envMatcher, xcodecommand.ModeCombined).
		Return(stdout("Build complete!\n"), nil)

	// When
	out, err := xcode.Run(context.Background(), []string{"swift", "build", "-c", "release"}, RunOpts{
		Env:  map[string]string{"SWIFTPM_ENABLE_PLUGINS": "1"},
		Mode: xcodecommand.ModeCombined,
	})

	// Then
	require.NoError(t, err)
	assert.Equal(t, "Build complete!\n", string(out.Stdout))
}

func Test_GivenPathOverride_WhenRun_ThenExecutableIsResolvedAgainstIt(t *testing.T) {
	// Given
	locator, mocks := createLocatorAndMocks(t)
	xcode := locator.New(testDeveloperDir)

	mocks.fileSystem.executables["/usr/bin/swift"] = true
	mocks.fileSystem.executables["/opt/swift/bin/swift"] = true
	mocks.runner.On("Run", mock.Anything, "/opt/swift/bin/swift", []string{"--version"}, mock.Anything, xcodecommand.ModeStdout).
		Return(stdout(""), nil)

	// When
	_, err := xcode.Run(context.Background(), []string{"swift", "--version"}, RunOpts{
		Env: map[string]string{"PATH": "/opt/swift/bin"},
	})

	// Then
	require.NoError(t, err)
}

func Test_GivenMissingExecutable_WhenRun_ThenFailsWithNotFound(t *testing.T) {
	// Given
	locator, mocks := createLocatorAndMocks(t)
	xcode := locator.New(testDeveloperDir)

	// When
	_, err := xcode.Run(context.Background(), []string{"swiftlint", "lint"}, RunOpts{})

	// Then
	require.ErrorIs(t, err, ErrExecutableNotFound)
	var notFound *ExecutableNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "swiftlint", notFound.Name)
	assert.Contains(t, err.Error(), "swiftlint")
	mocks.runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func Test_GivenEmptyCommand_WhenRun_ThenFails(t *testing.T) {
	// Given
	locator, _ := createLocatorAndMocks(t)

	// When
	_, err := locator.New(testDeveloperDir).Run(context.Background(), nil, RunOpts{})

	// Then
	require.Error(t, err)
}

func Test_GivenXcode_WhenXcrun_ThenRunsXcrunWithInstallationEnvironment(t *testing.T) {
	// Given
	locator, mocks := createLocatorAndMocks(t)
	xcode := locator.New(testDeveloperDir)

	mocks.runner.On("Run", mock.Anything, testXcrun, []string{"simctl", "list"}, developerDirEnv(testDeveloperDir), xcodecommand.ModeStdout).
		Return(stdout("== Devices ==\n"), nil).Twice()

	// When
	first, err := xcode.Xcrun(context.Background(), []string{"simctl", "list"}, nil)
	require.NoError(t, err)
	delete(mocks.fileSystem.executables, testXcrun)
	second, err := xcode.Xcrun(context.Background(), []string{"simctl", "list"}, nil)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "== Devices ==\n", first)
	assert.Equal(t, first, second)
}

func Test_GivenNoXcrun_WhenXcrun_ThenFailsWithNotFound(t *testing.T) {
	// Given
	locator, mocks := createLocatorAndMocks(t)
	delete(mocks.fileSystem.executables, testXcrun)

	// When
	_, err := locator.New(testDeveloperDir).Xcrun(context.Background(), []string{"xcodebuild", "-version"}, nil)

	// Then
	require.ErrorIs(t, err, ErrExecutableNotFound)
}
