package core

import (
	"context"
	"path"

	"github.com/robgonnella/bumpver/internal/config"
	"github.com/robgonnella/bumpver/internal/history"
	"github.com/robgonnella/bumpver/internal/logger"
	"github.com/robgonnella/bumpver/internal/rewrite"
	"github.com/robgonnella/bumpver/internal/semver"
	"github.com/robgonnella/bumpver/internal/vcs"
)

// Result summarizes a completed run for reporting
type Result struct {
	OldVersion   string
	NewVersion   string
	Action       semver.Kind
	UpdatedFiles []string
	Committed    bool
	Tagged       bool
}

// Core wires the bump pipeline together: reset, parse, bump, rewrite,
// stage, commit, tag, record. Every step is a blocking call executed
// strictly in sequence and any failure aborts the invocation. There is no
// rollback - earlier rewrites stay on disk when a later step fails, which
// is what the reset option exists to recover from.
type Core struct {
	conf      *config.Config
	opts      config.RunOptions
	git       vcs.VersionControl
	publisher *vcs.Publisher
	rewriter  *rewrite.Rewriter
	ledger    history.Service
	log       logger.Logger
}

// New returns a new core module for the given configuration
func New(
	conf *config.Config,
	opts config.RunOptions,
	git vcs.VersionControl,
	namer vcs.Namer,
	ledger history.Service,
) *Core {
	return &Core{
		conf:      conf,
		opts:      opts,
		git:       git,
		publisher: vcs.NewPublisher(git, namer),
		rewriter:  rewrite.NewRewriter(opts.DryRun),
		ledger:    ledger,
		log:       logger.New(),
	}
}

// Files returns the version file and target paths this configuration
// would touch
func (c *Core) Files() []string {
	files := []string{c.conf.VersionFile}

	for _, target := range c.conf.Targets {
		files = append(files, target.Path)
	}

	return files
}

// Run executes the bump pipeline. A nil action is only valid when reset
// was requested, in which case the reset is the whole run.
func (c *Core) Run(ctx context.Context, action *semver.Action) (*Result, error) {
	if c.opts.Reset {
		if err := c.reset(ctx); err != nil {
			return nil, err
		}
	}

	if action == nil {
		if c.opts.Reset {
			return &Result{}, nil
		}

		return nil, semver.ErrNoAction
	}

	versionPath := path.Join(c.opts.SrcDir, c.conf.VersionFile)

	raw, err := rewrite.ReadVersionFile(versionPath)

	if err != nil {
		return nil, err
	}

	current, err := semver.Parse(raw)

	if err != nil {
		return nil, err
	}

	next, err := semver.Bump(current, *action, c.opts.SuffixOverride())

	if err != nil {
		return nil, err
	}

	c.log.Info().
		Str("current", current.String()).
		Str("next", next.String()).
		Str("action", string(action.Kind)).
		Msg("bumping version")

	// paths are kept relative to the source directory so they can be
	// handed to the version control system as-is
	edited := []string{}

	for _, target := range c.conf.Targets {
		pattern, err := rewrite.CompilePattern(target.Pattern)

		if err != nil {
			return nil, err
		}

		targetPath := path.Join(c.opts.SrcDir, target.Path)

		if _, err := c.rewriter.RewriteFile(targetPath, pattern, next.String()); err != nil {
			return nil, err
		}

		edited = append(edited, target.Path)
	}

	if err := c.rewriter.WriteVersionFile(versionPath, next.String()); err != nil {
		return nil, err
	}

	edited = append(edited, c.conf.VersionFile)

	status, err := c.publisher.Publish(ctx, next.String(), edited, vcs.Options{
		DryRun: c.opts.DryRun,
		Stage:  c.opts.Stage,
		Commit: c.opts.Commit,
		Force:  c.opts.ForceCommit,
		Tag:    c.opts.Tag,
	})

	if err != nil {
		return nil, err
	}

	result := &Result{
		OldVersion:   current.String(),
		NewVersion:   next.String(),
		Action:       action.Kind,
		UpdatedFiles: edited,
		Committed:    status.Committed,
		Tagged:       status.Tagged,
	}

	if !c.opts.DryRun {
		err := c.ledger.Record(&history.Record{
			Project:    c.conf.Name,
			OldVersion: result.OldVersion,
			NewVersion: result.NewVersion,
			Action:     string(result.Action),
			Committed:  result.Committed,
			Tagged:     result.Tagged,
		})

		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// reset restores the version file from HEAD before anything else runs
func (c *Core) reset(ctx context.Context) error {
	if c.opts.DryRun {
		c.log.Info().
			Str("file", c.conf.VersionFile).
			Msg("pretend: reset version file from HEAD")

		return nil
	}

	err := c.git.CheckoutHead(ctx, c.conf.VersionFile)

	if err != nil {
		return err
	}

	c.log.Info().
		Str("file", c.conf.VersionFile).
		Msg("reset version file from HEAD")

	return nil
}
