package xcodeversion

import (
	"fmt"
	"regexp"

	"github.com/hashicorp/go-version"
)

// Matches `swift --version` output, for example:
// Apple Swift version 5.5 (swiftlang-1300.0.31.1 clang-1300.0.29.1)
// Swift version 5.9-dev (LLVM 1e1c8f8, Swift 7c4a2b5)
var swiftVersionRegexp = regexp.MustCompile(`(?im)Swift version (\d+(?:\.\d+)*(?:-[0-9A-Za-z.]+)?)\s+\((?:swift(?:lang)?-([\d.]+))?`)

// SwiftInfo is the parsed output of `swift --version`.
type SwiftInfo struct {
	Version *version.Version
	Raw     string
	Build   string
}

// ParseSwiftVersion returns the first Swift version found in the output.
func ParseSwiftVersion(out string) (SwiftInfo, error) {
	match := swiftVersionRegexp.FindStringSubmatch(out)
	if match == nil {
		return SwiftInfo{}, ErrNoMatch
	}

	ver, err := version.NewVersion(match[1])
	if err != nil {
		return SwiftInfo{}, fmt.Errorf("invalid swift version (%s): %w", match[1], err)
	}

	return SwiftInfo{
		Version: ver,
		Raw:     match[1],
		Build:   match[2],
	}, nil
}
