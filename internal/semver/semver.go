package semver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrParse is returned for malformed version strings
var ErrParse = errors.New("malformed version string")

// ErrOverflow is returned when incrementing a component would wrap
var ErrOverflow = errors.New("version component overflow")

// ErrNoAction is returned when no bump action was requested
var ErrNoAction = errors.New("no version action requested")

// Version represents an immutable semantic version with an optional
// free-form suffix (e.g. "-pre1")
type Version struct {
	Major  int
	Minor  int
	Patch  int
	Suffix string
}

// Parse parses a version string of the form MAJOR.MINOR.PATCH[SUFFIX].
// The string must already be trimmed - callers reading from files are
// responsible for stripping the trailing newline.
func Parse(s string) (Version, error) {
	parts := strings.Split(s, ".")

	if len(parts) < 3 {
		return Version{}, fmt.Errorf("%w: %q needs at least 3 dot-separated components", ErrParse, s)
	}

	for i := 0; i < 3; i++ {
		if parts[i] == "" {
			return Version{}, fmt.Errorf("%w: %q has an empty component", ErrParse, s)
		}
	}

	major, err := strconv.Atoi(parts[0])

	if err != nil {
		return Version{}, fmt.Errorf("%w: invalid major component %q", ErrParse, parts[0])
	}

	minor, err := strconv.Atoi(parts[1])

	if err != nil {
		return Version{}, fmt.Errorf("%w: invalid minor component %q", ErrParse, parts[1])
	}

	// The third component carries the patch number as its leading numeric
	// run; whatever follows it starts the suffix.
	digits := leadingDigits(parts[2])

	if digits == "" {
		return Version{}, fmt.Errorf("%w: invalid patch component %q", ErrParse, parts[2])
	}

	patch, err := strconv.Atoi(digits)

	if err != nil {
		return Version{}, fmt.Errorf("%w: invalid patch component %q", ErrParse, parts[2])
	}

	if major < 0 || minor < 0 {
		return Version{}, fmt.Errorf("%w: %q has negative components", ErrParse, s)
	}

	suffix := parts[2][len(digits):]

	if len(parts) > 3 {
		suffix = suffix + "." + strings.Join(parts[3:], ".")
	}

	return Version{
		Major:  major,
		Minor:  minor,
		Patch:  patch,
		Suffix: suffix,
	}, nil
}

// String returns the canonical MAJOR.MINOR.PATCH[SUFFIX] form
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d%s", v.Major, v.Minor, v.Patch, v.Suffix)
}

// leadingDigits returns the run of ascii digits at the start of s
func leadingDigits(s string) string {
	i := 0

	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}

	return s[:i]
}
