package xcode

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-xcode-invoke/xcodecommand"
	"github.com/bitrise-steplib/steps-xcode-invoke/xcodeversion"
)

const xcodeBundleQuery = "kMDItemCFBundleIdentifier == 'com.apple.dt.Xcode'"

// ToolchainBases are the directories holding installed .xctoolchain bundles.
var ToolchainBases = []string{
	"/Library/Developer/Toolchains",
	"~/Library/Developer/Toolchains",
}

// Xcode 7.3 is the first release which can run a toolchain other than its own.
var minToolchainOverrideVersion = xcodeversion.MustParseBuildVersion("7D175")

const defaultConcurrency = 4

// Locator discovers the Xcode installations of the host.
type Locator struct {
	logger        log.Logger
	runner        xcodecommand.Runner
	fileSystem    FileSystem
	envRepository env.Repository

	toolchainBases []string
	concurrency    int
}

// NewLocator ...
func NewLocator(logger log.Logger, runner xcodecommand.Runner, fileSystem FileSystem, envRepository env.Repository) *Locator {
	return &Locator{
		logger:         logger,
		runner:         runner,
		fileSystem:     fileSystem,
		envRepository:  envRepository,
		toolchainBases: ToolchainBases,
		concurrency:    defaultConcurrency,
	}
}

// New returns the installation with the given developer directory.
func (l *Locator) New(developerDir string) *Xcode {
	return &Xcode{
		developerDir: developerDir,
		locator:      l,
	}
}

// Selected returns the installation chosen by xcode-select.
func (l *Locator) Selected(ctx context.Context) (*Xcode, error) {
	out, err := l.runner.Run(ctx, "xcode-select", []string{"-p"}, nil, xcodecommand.ModeStdout)
	if err != nil {
		return nil, fmt.Errorf("failed to get the selected Xcode: %w", err)
	}

	developerDir := strings.TrimSpace(string(out.Stdout))
	if developerDir == "" {
		return nil, errors.New("failed to get the selected Xcode: xcode-select returned no developer directory")
	}
	return l.New(developerDir), nil
}

// Xcodes yields the installations found by Spotlight, in the order they are reported.
func (l *Locator) Xcodes(ctx context.Context) iter.Seq[*Xcode] {
	return func(yield func(*Xcode) bool) {
		out, err := l.runner.Run(ctx, "mdfind", []string{xcodeBundleQuery}, nil, xcodecommand.ModeStdout)
		if err != nil {
			l.logger.Warnf("Failed to list Xcode installations: %s", err)
			return
		}

		for _, line := range strings.Split(string(out.Stdout), "\n") {
			bundlePath := strings.TrimSpace(line)
			if bundlePath == "" {
				continue
			}

			if !yield(l.New(filepath.Join(bundlePath, "Contents", "Developer"))) {
				return
			}
		}
	}
}

// AllXcodes ...
func (l *Locator) AllXcodes(ctx context.Context) []*Xcode {
	return slices.Collect(l.Xcodes(ctx))
}

// Toolchains returns the installed toolchain directories, system-wide ones first.
func (l *Locator) Toolchains() []string {
	var toolchains []string
	for _, base := range l.toolchainBases {
		toolchains = append(toolchains, l.toolchainsIn(base)...)
	}
	return toolchains
}

func (l *Locator) toolchainsIn(base string) []string {
	dir, err := l.fileSystem.ExpandHome(base)
	if err != nil {
		l.logger.Debugf("Failed to expand toolchain directory (%s): %s", base, err)
		return nil
	}
	if !l.fileSystem.Exists(dir) {
		return nil
	}

	children, err := l.fileSystem.ReadDir(dir)
	if err != nil {
		l.logger.Debugf("Failed to list toolchain directory (%s): %s", dir, err)
		return nil
	}

	var toolchains []string
	seen := map[string]bool{}
	for _, child := range children {
		realPath, err := l.fileSystem.EvalSymlinks(child)
		if err != nil {
			l.logger.Debugf("Failed to resolve toolchain (%s): %s", child, err)
			continue
		}
		if seen[realPath] {
			continue
		}
		seen[realPath] = true

		if l.fileSystem.IsDir(realPath) {
			toolchains = append(toolchains, realPath)
		}
	}
	return toolchains
}

// XcodesWithToolchains yields, for every installation supporting toolchain
// overrides, one variant per installed toolchain followed by the installation
// itself. Other installations, including those with unknown version, are yielded once.
func (l *Locator) XcodesWithToolchains(ctx context.Context) iter.Seq[*Xcode] {
	return func(yield func(*Xcode) bool) {
		var (
			toolchains       []string
			toolchainsLoaded bool
		)

		for xcode := range l.Xcodes(ctx) {
			if l.supportsToolchains(ctx, xcode) {
				if !toolchainsLoaded {
					toolchains = l.Toolchains()
					toolchainsLoaded = true
				}

				for _, toolchain := range toolchains {
					if !yield(xcode.WithToolchain(toolchain)) {
						return
					}
				}
			}

			if !yield(xcode) {
				return
			}
		}
	}
}

// AllXcodesWithToolchains ...
func (l *Locator) AllXcodesWithToolchains(ctx context.Context) []*Xcode {
	return slices.Collect(l.XcodesWithToolchains(ctx))
}

func (l *Locator) supportsToolchains(ctx context.Context, xcode *Xcode) bool {
	v, ok := xcode.Version(ctx)
	if !ok {
		return false
	}
	return !v.LessThan(minToolchainOverrideVersion)
}
