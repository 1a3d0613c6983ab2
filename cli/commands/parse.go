package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robgonnella/bumpver/internal/semver"
)

// ErrUnknownArgument is returned for unrecognized action tokens so main
// can exit with the usage status code
var ErrUnknownArgument = errors.New("unknown argument")

// parseAction turns the positional arguments into a bump action. No
// arguments yield a nil action, which is only valid for reset-only runs.
func parseAction(args []string) (*semver.Action, error) {
	if len(args) == 0 {
		return nil, nil
	}

	token := args[0]

	switch token {
	case "pbump", "+":
		if len(args) > 1 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownArgument, args[1])
		}

		return &semver.Action{Kind: semver.PatchBump}, nil
	case "mbump", "++":
		if len(args) > 1 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownArgument, args[1])
		}

		return &semver.Action{Kind: semver.MinorBump}, nil
	case "Mbump":
		if len(args) > 1 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownArgument, args[1])
		}

		return &semver.Action{Kind: semver.MajorBump}, nil
	case "setver":
		if len(args) < 2 {
			return nil, fmt.Errorf("%w: setver requires a version argument", ErrUnknownArgument)
		}

		explicit, err := semver.Parse(args[1])

		if err != nil {
			return nil, err
		}

		return &semver.Action{Kind: semver.SetVersion, Explicit: explicit}, nil
	default:
		// a bare dotted-version-looking token sets the version explicitly
		if strings.Count(token, ".") >= 2 {
			explicit, err := semver.Parse(token)

			if err != nil {
				return nil, err
			}

			if len(args) > 1 {
				return nil, fmt.Errorf("%w: %s", ErrUnknownArgument, args[1])
			}

			return &semver.Action{Kind: semver.SetVersion, Explicit: explicit}, nil
		}

		return nil, fmt.Errorf("%w: %s", ErrUnknownArgument, token)
	}
}
