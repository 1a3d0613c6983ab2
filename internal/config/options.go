package config

// RunOptions is the immutable per-invocation configuration built once from
// CLI arguments. It is passed by value to every component - no component
// mutates it.
type RunOptions struct {
	// SrcDir is the project directory holding the version file and targets
	SrcDir string
	// DryRun computes and reports every action without executing anything
	// that mutates state
	DryRun bool
	// Stage stages edited files with the version control system
	Stage bool
	// Commit commits staged files
	Commit bool
	// ForceCommit commits even when the working tree holds unrelated changes
	ForceCommit bool
	// Tag tags the commit with the new version
	Tag bool
	// Reset checks the version file out from HEAD before doing anything else
	Reset bool
	// Suffix replaces the version suffix when SuffixSet is true
	Suffix string
	// SuffixSet records whether a suffix override was supplied, so an
	// explicitly empty suffix can clear an existing one
	SuffixSet bool
}

// Normalize applies the flag implication rules after parsing: tagging or
// force-committing implies committing, and committing implies staging
func (o RunOptions) Normalize() RunOptions {
	if o.Tag || o.ForceCommit {
		o.Commit = true
	}

	if o.Commit {
		o.Stage = true
	}

	return o
}

// SuffixOverride returns the suffix override as a pointer, nil when none
// was supplied
func (o RunOptions) SuffixOverride() *string {
	if !o.SuffixSet {
		return nil
	}

	return &o.Suffix
}
