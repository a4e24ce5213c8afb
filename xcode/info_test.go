package xcode

import (
	"context"
	"errors"
	"testing"

	"github.com/bitrise-steplib/steps-xcode-invoke/xcodecommand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_GivenXcodebuildOutput_WhenVersion_ThenParsesBuildVersion(t *testing.T) {
	// Given
	locator, mocks := createLocatorAndMocks(t)
	xcode := locator.New(testDeveloperDir)
	mockXcodebuildVersion(mocks.runner, testDeveloperDir, "Xcode 13.2.1\nBuild version 13C100\n")

	// When
	info, infoOK := xcode.XcodebuildInfo(context.Background())
	buildNumber, buildNumberOK := xcode.BuildNumber(context.Background())
	version, versionOK := xcode.Version(context.Background())

	// Then
	require.True(t, infoOK)
	assert.Equal(t, "13.2.1", info.Version)
	assert.Equal(t, "13C100", info.BuildVersion)
	assert.Equal(t, int64(13), info.MajorVersion)

	require.True(t, buildNumberOK)
	assert.Equal(t, "13C100", buildNumber)

	require.True(t, versionOK)
	assert.Equal(t, "13C100", version.String())
	assert.Equal(t, int64(13), version.Major)
	assert.Equal(t, int64(2), version.Minor)
}

func Test_GivenSwiftOutput_WhenSwiftVersion_ThenParsesSemanticVersion(t *testing.T) {
	// Given
	locator, mocks := createLocatorAndMocks(t)
	xcode := locator.New(testDeveloperDir)
	mockSwiftVersion(mocks.runner, mocks.fileSystem, defaultSwiftPath(testDeveloperDir),
		"Apple Swift version 5.5 (swiftlang-1300.0.31.1 clang-1300.0.29.1)\nTarget: x86_64-apple-macosx11.0\n")

	// When
	info, infoOK := xcode.SwiftInfo(context.Background())
	swiftVersion, swiftVersionOK := xcode.SwiftVersion(context.Background())

	// Then
	require.True(t, infoOK)
	assert.Equal(t, "5.5", info.Raw)
	assert.Equal(t, "1300.0.31.1", info.Build)

	require.True(t, swiftVersionOK)
	assert.Equal(t, "5.5.0", swiftVersion.String())
}

func Test_GivenToolchainOverride_WhenSwiftVersion_ThenOverrideCompilerIsAsked(t *testing.T) {
	// Given
	locator, mocks := createLocatorAndMocks(t)
	xcode := locator.New(testDeveloperDir).WithToolchain(testToolchain)
	mockSwiftVersion(mocks.runner, mocks.fileSystem, defaultSwiftPath(testDeveloperDir), swiftOutput("5.5"))
	mockSwiftVersion(mocks.runner, mocks.fileSystem, testToolchain+"/usr/bin/swift", "Apple Swift version 5.9 (swift-5.9-RELEASE)\n")

	// When
	swiftVersion, ok := xcode.SwiftVersion(context.Background())

	// Then
	require.True(t, ok)
	assert.Equal(t, "5.9.0", swiftVersion.String())
}

func Test_GivenGarbageOutput_WhenIntrospecting_ThenVersionsAreAbsent(t *testing.T) {
	// Given
	locator, mocks := createLocatorAndMocks(t)
	xcode := locator.New(testDeveloperDir)
	mockXcodebuildVersion(mocks.runner, testDeveloperDir, "garbage output")
	mockSwiftVersion(mocks.runner, mocks.fileSystem, defaultSwiftPath(testDeveloperDir), "garbage output")

	// When
	_, buildNumberOK := xcode.BuildNumber(context.Background())
	_, versionOK := xcode.Version(context.Background())
	swiftVersion, swiftVersionOK := xcode.SwiftVersion(context.Background())

	// Then
	assert.False(t, buildNumberOK)
	assert.False(t, versionOK)
	assert.False(t, swiftVersionOK)
	assert.Nil(t, swiftVersion)
}

func Test_GivenFailingTool_WhenIntrospecting_ThenVersionsAreAbsent(t *testing.T) {
	// Given
	locator, mocks := createLocatorAndMocks(t)
	xcode := locator.New(testDeveloperDir)
	mocks.runner.On("Run", mock.Anything, testXcrun, mock.Anything, mock.Anything, xcodecommand.ModeStdout).
		Return(xcodecommand.Output{ExitCode: -1}, errors.New("signal: killed"))

	// When
	_, ok := xcode.Version(context.Background())
	_, swiftOK := xcode.SwiftVersion(context.Background())

	// Then
	assert.False(t, ok)
	assert.False(t, swiftOK)
}

func Test_GivenNonZeroExitWithValidOutput_WhenVersion_ThenOutputIsStillParsed(t *testing.T) {
	// Given
	locator, mocks := createLocatorAndMocks(t)
	xcode := locator.New(testDeveloperDir)
	mocks.runner.On("Run", mock.Anything, testXcrun, []string{"xcodebuild", "-version"}, mock.Anything, xcodecommand.ModeStdout).
		Return(xcodecommand.Output{Stdout: []byte(xcodebuildOutput("12.5.1", "12E507")), ExitCode: 1}, nil)

	// When
	version, ok := xcode.Version(context.Background())

	// Then
	require.True(t, ok)
	assert.Equal(t, "12E507", version.String())
}
