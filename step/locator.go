package step

import (
	"context"
	"fmt"

	"github.com/bitrise-steplib/steps-xcode-invoke/xcode"
	"github.com/bitrise-steplib/steps-xcode-invoke/xcodecommand"
	"github.com/bitrise-steplib/steps-xcode-invoke/xcodeversion"
	"github.com/hashicorp/go-version"
)

// Installation is the part of xcode.Xcode the step relies on.
type Installation interface {
	fmt.Stringer
	DeveloperDir() string
	Toolchain() string
	XcodebuildInfo(ctx context.Context) (xcodeversion.Version, bool)
	SwiftVersion(ctx context.Context) (*version.Version, bool)
	Run(ctx context.Context, args []string, opts xcode.RunOpts) (xcodecommand.Output, error)
}

// XcodeLocator ...
type XcodeLocator interface {
	Installation(developerDir, toolchain string) Installation
	Selected(ctx context.Context) (Installation, error)
	FindSwiftVersion(ctx context.Context, swiftVersion *version.Version) (Installation, error)
}

type xcodeLocator struct {
	locator *xcode.Locator
}

// NewXcodeLocator ...
func NewXcodeLocator(locator *xcode.Locator) XcodeLocator {
	return xcodeLocator{locator: locator}
}

func (l xcodeLocator) Installation(developerDir, toolchain string) Installation {
	installation := l.locator.New(developerDir)
	if toolchain != "" {
		installation = installation.WithToolchain(toolchain)
	}
	return installation
}

func (l xcodeLocator) Selected(ctx context.Context) (Installation, error) {
	installation, err := l.locator.Selected(ctx)
	if err != nil {
		return nil, err
	}
	return installation, nil
}

func (l xcodeLocator) FindSwiftVersion(ctx context.Context, swiftVersion *version.Version) (Installation, error) {
	installation, err := l.locator.FindSwiftVersion(ctx, swiftVersion)
	if err != nil {
		return nil, err
	}
	return installation, nil
}
