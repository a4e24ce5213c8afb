package xcodeversion

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Apple build identifiers look like 13C100 or 13A5212g:
// <major><minor letter><number>[pre-release suffix].
var buildVersionRegexp = regexp.MustCompile(`^(\d+)([A-Za-z])(\d*)([a-z]*)$`)

// BuildVersion is an Apple build identifier with a total order.
//
// The minor version is encoded by the letter (A=0, B=1, ...), the numeric
// part encodes the patch release in its thousands and the build below it,
// so 6D1002 is 6.3.1 build 2.
//
// Beta builds are often numbered from 5000 up, so such a beta sorts above the
// release of the same minor version: 13A5212g > 13A233.
type BuildVersion struct {
	Major  int64
	Minor  int64
	Patch  int64
	Build  int64
	Suffix string

	original string
}

// ParseBuildVersion ...
func ParseBuildVersion(s string) (BuildVersion, error) {
	s = strings.TrimSpace(s)
	match := buildVersionRegexp.FindStringSubmatch(s)
	if match == nil {
		return BuildVersion{}, fmt.Errorf("invalid build version (%s): %w", s, ErrNoMatch)
	}

	major, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return BuildVersion{}, fmt.Errorf("invalid build version (%s): %w", s, err)
	}
	var number int64
	if match[3] != "" {
		if number, err = strconv.ParseInt(match[3], 10, 64); err != nil {
			return BuildVersion{}, fmt.Errorf("invalid build version (%s): %w", s, err)
		}
	}

	return BuildVersion{
		Major:    major,
		Minor:    int64(strings.ToUpper(match[2])[0] - 'A'),
		Patch:    number / 1000,
		Build:    number % 1000,
		Suffix:   match[4],
		original: s,
	}, nil
}

// MustParseBuildVersion is like ParseBuildVersion but panics on error.
func MustParseBuildVersion(s string) BuildVersion {
	v, err := ParseBuildVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Compare returns -1, 0 or 1.
// A version without suffix is greater than the same version with one.
func (v BuildVersion) Compare(other BuildVersion) int {
	for _, pair := range [][2]int64{
		{v.Major, other.Major},
		{v.Minor, other.Minor},
		{v.Patch, other.Patch},
		{v.Build, other.Build},
	} {
		if pair[0] < pair[1] {
			return -1
		}
		if pair[0] > pair[1] {
			return 1
		}
	}

	switch {
	case v.Suffix == other.Suffix:
		return 0
	case v.Suffix == "":
		return 1
	case other.Suffix == "":
		return -1
	case v.Suffix < other.Suffix:
		return -1
	default:
		return 1
	}
}

// LessThan ...
func (v BuildVersion) LessThan(other BuildVersion) bool {
	return v.Compare(other) < 0
}

// Equal ...
func (v BuildVersion) Equal(other BuildVersion) bool {
	return v.Compare(other) == 0
}

// IsBeta reports whether the build carries a pre-release suffix.
func (v BuildVersion) IsBeta() bool {
	return v.Suffix != ""
}

// String returns the identifier the version was parsed from.
func (v BuildVersion) String() string {
	if v.original != "" {
		return v.original
	}
	return fmt.Sprintf("%d%c%d%s", v.Major, rune('A'+v.Minor), v.Patch*1000+v.Build, v.Suffix)
}
