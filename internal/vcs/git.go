package vcs

import (
	"context"
	"strings"

	"github.com/robgonnella/bumpver/internal/command"
)

// statusCodes are the porcelain status letters that count as a change to
// the working tree
const statusCodes = "MADRCU"

// Git represents an implementation of the VersionControl interface using git
type Git struct {
	runner command.Runner
}

// NewGit returns a new instance of Git
func NewGit(runner command.Runner) *Git {
	return &Git{runner: runner}
}

// Add implements the Add method in the VersionControl interface for git
func (g *Git) Add(ctx context.Context, paths ...string) error {
	args := append([]string{"add", "--"}, paths...)

	return g.runner.Run(ctx, "git", args...)
}

// Commit implements the Commit method in the VersionControl interface for git
func (g *Git) Commit(ctx context.Context, message string) error {
	return g.runner.Run(ctx, "git", "commit", "-m", message)
}

// Tag implements the Tag method in the VersionControl interface for git
func (g *Git) Tag(ctx context.Context, name string) error {
	return g.runner.Run(ctx, "git", "tag", "-m", name, name)
}

// CheckoutHead restores path from HEAD, discarding local modifications
func (g *Git) CheckoutHead(ctx context.Context, path string) error {
	return g.runner.Run(ctx, "git", "checkout", "HEAD", "--", path)
}

// ChangedCount counts tracked files with pending changes
func (g *Git) ChangedCount(ctx context.Context) (int, error) {
	out, err := g.runner.Output(ctx, "git", "status", "--porcelain")

	if err != nil {
		return 0, err
	}

	count := 0

	for _, line := range strings.Split(string(out), "\n") {
		if len(line) < 2 {
			continue
		}

		if strings.ContainsAny(line[:2], statusCodes) {
			count++
		}
	}

	return count, nil
}
