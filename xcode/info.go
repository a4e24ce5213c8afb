package xcode

import (
	"context"

	"github.com/bitrise-steplib/steps-xcode-invoke/xcodecommand"
	"github.com/bitrise-steplib/steps-xcode-invoke/xcodeversion"
	"github.com/hashicorp/go-version"
)

// XcodebuildInfo returns the parsed `xcodebuild -version` output.
// The bool is false if xcodebuild could not be run or its output is not recognised.
func (x *Xcode) XcodebuildInfo(ctx context.Context) (xcodeversion.Version, bool) {
	out, err := x.Xcrun(ctx, []string{"xcodebuild", "-version"}, nil)
	if err != nil {
		x.locator.logger.Debugf("Failed to run xcodebuild of %s: %s", x, err)
		return xcodeversion.Version{}, false
	}

	info, err := xcodeversion.ParseXcodebuildVersion(out)
	if err != nil {
		x.locator.logger.Debugf("Unknown xcodebuild version of %s: %s", x, err)
		return xcodeversion.Version{}, false
	}
	return info, true
}

// SwiftInfo returns the parsed `swift --version` output.
//
// swift is resolved through the installation's PATH rather than xcrun,
// so a toolchain override reports its own compiler.
func (x *Xcode) SwiftInfo(ctx context.Context) (xcodeversion.SwiftInfo, bool) {
	out, err := x.Run(ctx, []string{"swift", "--version"}, RunOpts{Mode: xcodecommand.ModeStdout})
	if err != nil {
		x.locator.logger.Debugf("Failed to run swift of %s: %s", x, err)
		return xcodeversion.SwiftInfo{}, false
	}

	info, err := xcodeversion.ParseSwiftVersion(string(out.Stdout))
	if err != nil {
		x.locator.logger.Debugf("Unknown Swift version of %s: %s", x, err)
		return xcodeversion.SwiftInfo{}, false
	}
	return info, true
}

// BuildNumber returns the build identifier, for example 13C100.
func (x *Xcode) BuildNumber(ctx context.Context) (string, bool) {
	info, ok := x.XcodebuildInfo(ctx)
	if !ok {
		return "", false
	}
	return info.BuildVersion, true
}

// Version returns the build identifier as an ordered version.
func (x *Xcode) Version(ctx context.Context) (xcodeversion.BuildVersion, bool) {
	buildNumber, ok := x.BuildNumber(ctx)
	if !ok {
		return xcodeversion.BuildVersion{}, false
	}

	v, err := xcodeversion.ParseBuildVersion(buildNumber)
	if err != nil {
		x.locator.logger.Debugf("Unknown build version of %s: %s", x, err)
		return xcodeversion.BuildVersion{}, false
	}
	return v, true
}

// SwiftVersion ...
func (x *Xcode) SwiftVersion(ctx context.Context) (*version.Version, bool) {
	info, ok := x.SwiftInfo(ctx)
	if !ok {
		return nil, false
	}
	return info.Version, true
}
