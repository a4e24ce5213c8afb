package xcode

import (
	"context"
	"errors"
	"fmt"

	"github.com/bitrise-steplib/steps-xcode-invoke/xcodeversion"
	"github.com/hashicorp/go-version"
	"golang.org/x/sync/errgroup"
)

// ErrUnknownVersion is returned when an installation's build version cannot be determined.
var ErrUnknownVersion = errors.New("unknown Xcode build version")

// ErrNotFound ...
var ErrNotFound = errors.New("no matching Xcode found")

// Compare orders two installations by build version.
// It fails with ErrUnknownVersion if either version is unknown.
func Compare(ctx context.Context, a, b *Xcode) (int, error) {
	aVersion, ok := a.Version(ctx)
	if !ok {
		return 0, fmt.Errorf("%s: %w", a, ErrUnknownVersion)
	}
	bVersion, ok := b.Version(ctx)
	if !ok {
		return 0, fmt.Errorf("%s: %w", b, ErrUnknownVersion)
	}
	return aVersion.Compare(bVersion), nil
}

type swiftMatch struct {
	matched      bool
	buildVersion xcodeversion.BuildVersion
}

// FindSwiftVersion returns the installation with the highest build version
// whose Swift compiler has the given version. Toolchain overrides are candidates too.
//
// Installations with unknown build version are skipped. On equal build versions
// the one enumerated last wins, so an installation's own toolchain is preferred
// over an override reporting the same Swift version.
func (l *Locator) FindSwiftVersion(ctx context.Context, swiftVersion *version.Version) (*Xcode, error) {
	candidates := l.AllXcodesWithToolchains(ctx)
	matches := make([]swiftMatch, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)
	for i, candidate := range candidates {
		g.Go(func() error {
			candidateSwiftVersion, ok := candidate.SwiftVersion(gctx)
			if !ok || !candidateSwiftVersion.Equal(swiftVersion) {
				return nil
			}

			buildVersion, ok := candidate.Version(gctx)
			if !ok {
				l.logger.Debugf("Skipping %s with Swift %s: %s", candidate, swiftVersion, ErrUnknownVersion)
				return nil
			}

			matches[i] = swiftMatch{matched: true, buildVersion: buildVersion}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		best        *Xcode
		bestVersion xcodeversion.BuildVersion
	)
	for i, match := range matches {
		if !match.matched {
			continue
		}
		if best == nil || match.buildVersion.Compare(bestVersion) >= 0 {
			best = candidates[i]
			bestVersion = match.buildVersion
		}
	}

	if best == nil {
		return nil, fmt.Errorf("Swift %s: %w", swiftVersion, ErrNotFound)
	}
	return best, nil
}
