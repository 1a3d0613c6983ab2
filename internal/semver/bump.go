package semver

import "fmt"

// Kind enumerates the supported bump actions
type Kind string

const (
	// PatchBump increments the patch component
	PatchBump Kind = "patch"
	// MinorBump increments the minor component and zeroes patch
	MinorBump Kind = "minor"
	// MajorBump increments the major component and zeroes minor and patch
	MajorBump Kind = "major"
	// SetVersion replaces the version with an explicit value
	SetVersion Kind = "set"
)

// Action represents a single bump request. It is constructed once per
// invocation and consumed once by Bump.
type Action struct {
	Kind Kind
	// Explicit holds the requested version when Kind is SetVersion
	Explicit Version
}

// Bump applies action to current and returns the resulting version.
// A non-nil suffix overrides the suffix of the result outright, even when
// empty. Without an override, bump actions keep the current suffix and
// SetVersion keeps the explicit version's own suffix, falling back to the
// current suffix when the explicit version carried none.
func Bump(current Version, action Action, suffix *string) (Version, error) {
	next := current

	switch action.Kind {
	case PatchBump:
		patch, err := increment(current.Patch)

		if err != nil {
			return Version{}, fmt.Errorf("patch %w", err)
		}

		next.Patch = patch
	case MinorBump:
		minor, err := increment(current.Minor)

		if err != nil {
			return Version{}, fmt.Errorf("minor %w", err)
		}

		next.Minor = minor
		next.Patch = 0
	case MajorBump:
		major, err := increment(current.Major)

		if err != nil {
			return Version{}, fmt.Errorf("major %w", err)
		}

		next.Major = major
		next.Minor = 0
		next.Patch = 0
	case SetVersion:
		next = action.Explicit

		if next.Suffix == "" {
			next.Suffix = current.Suffix
		}
	default:
		return Version{}, ErrNoAction
	}

	if suffix != nil {
		next.Suffix = *suffix
	}

	return next, nil
}

// increment bumps n by one, guarding against integer wrap-around
func increment(n int) (int, error) {
	next := n + 1

	if next <= n {
		return 0, fmt.Errorf("%w: %d", ErrOverflow, n)
	}

	return next, nil
}
