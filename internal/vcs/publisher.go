package vcs

import (
	"context"
	"errors"
	"fmt"

	"github.com/robgonnella/bumpver/internal/logger"
)

// ErrUnsafeCommit is returned when the working tree holds changes beyond
// the files this run edited and force was not set
var ErrUnsafeCommit = errors.New("working tree has unrelated changes")

// Options controls which publish steps run
type Options struct {
	// DryRun reports every step without executing it
	DryRun bool
	// Stage stages edited files
	Stage bool
	// Commit commits staged files
	Commit bool
	// Force skips the clean working tree check before committing
	Force bool
	// Tag creates a tag after a successful commit
	Tag bool
}

// DefaultNamer builds commit messages from a fixed header plus the new
// version, and uses the bare version string as tag name
type DefaultNamer struct {
	Header string
}

// CommitMessage implements Namer for DefaultNamer
func (n DefaultNamer) CommitMessage(version string) string {
	return fmt.Sprintf("%s %s", n.Header, version)
}

// TagName implements Namer for DefaultNamer
func (n DefaultNamer) TagName(version string) string {
	return version
}

// Publisher drives the stage -> commit -> tag sequence for a single bump.
// Each step only runs when requested and every failure aborts the whole
// invocation.
type Publisher struct {
	git   VersionControl
	namer Namer
	log   logger.Logger
}

// NewPublisher returns a new instance of Publisher
func NewPublisher(git VersionControl, namer Namer) *Publisher {
	return &Publisher{
		git:   git,
		namer: namer,
		log:   logger.New(),
	}
}

// Status reports which publish steps actually ran. Dry runs report every
// step as skipped.
type Status struct {
	Staged    bool
	Committed bool
	Tagged    bool
}

// Publish stages, commits and tags the edited files per opts
func (p *Publisher) Publish(
	ctx context.Context,
	version string,
	editedFiles []string,
	opts Options,
) (Status, error) {
	status := Status{}

	if !opts.Stage {
		return status, nil
	}

	for _, file := range editedFiles {
		if opts.DryRun {
			p.log.Info().Str("file", file).Msg("pretend: stage")
			continue
		}

		if err := p.git.Add(ctx, file); err != nil {
			return status, err
		}

		status.Staged = true
	}

	if !opts.Commit {
		return status, nil
	}

	message := p.namer.CommitMessage(version)

	if message == "" {
		// a deployment disabled committing via its Namer
		p.log.Info().Msg("empty commit message: skipping commit")
		return status, nil
	}

	if !opts.DryRun && !opts.Force {
		changed, err := p.git.ChangedCount(ctx)

		if err != nil {
			return status, err
		}

		if changed != len(editedFiles) {
			return status, fmt.Errorf(
				"%w: %d files changed but only %d were edited by this run",
				ErrUnsafeCommit,
				changed,
				len(editedFiles),
			)
		}
	}

	if opts.DryRun {
		p.log.Info().Str("message", message).Msg("pretend: commit")
	} else {
		if err := p.git.Commit(ctx, message); err != nil {
			return status, err
		}

		status.Committed = true
	}

	if !opts.Tag {
		return status, nil
	}

	tagName := p.namer.TagName(version)

	if tagName == "" {
		p.log.Info().Msg("empty tag name: skipping tag")
		return status, nil
	}

	if opts.DryRun {
		p.log.Info().Str("tag", tagName).Msg("pretend: tag")
		return status, nil
	}

	if err := p.git.Tag(ctx, tagName); err != nil {
		return status, err
	}

	status.Tagged = true

	return status, nil
}
