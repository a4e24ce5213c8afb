package xcodeversion

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/hashicorp/go-version"
)

// ErrNoMatch is returned when a tool's output does not have the expected shape.
var ErrNoMatch = errors.New("output does not match the expected pattern")

var xcodebuildVersionRegexp = regexp.MustCompile(`(?i)\AXcode (.*?)\s*Build version (.*?)\s*\z`)

// Version is the parsed output of `xcodebuild -version`.
type Version struct {
	Version      string
	BuildVersion string
	MajorVersion int64
}

// ParseXcodebuildVersion parses output in the form:
//
//	Xcode 13.2.1
//	Build version 13C100
func ParseXcodebuildVersion(out string) (Version, error) {
	match := xcodebuildVersionRegexp.FindStringSubmatch(out)
	if match == nil {
		return Version{}, ErrNoMatch
	}

	v := Version{
		Version:      match[1],
		BuildVersion: match[2],
	}

	// Beta builds report a marketing version like "15.0 Beta".
	if fields := strings.Fields(v.Version); len(fields) > 0 {
		if ver, err := version.NewVersion(fields[0]); err == nil && len(ver.Segments64()) > 0 {
			v.MajorVersion = ver.Segments64()[0]
		}
	}

	return v, nil
}

// String ...
func (v Version) String() string {
	return fmt.Sprintf("%s (%s)", v.Version, v.BuildVersion)
}

// IsZero reports whether the version was never parsed.
func (v Version) IsZero() bool {
	return strings.TrimSpace(v.Version) == "" && strings.TrimSpace(v.BuildVersion) == ""
}
