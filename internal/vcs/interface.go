package vcs

import "context"

//go:generate mockgen -destination=../mock/vcs/mock_vcs.go -package=mock_vcs . VersionControl,Namer

// VersionControl interface for interacting with version control systems
type VersionControl interface {
	// Add stages the given files for commit
	Add(ctx context.Context, paths ...string) error
	// Commit commits staged changes with the given message
	Commit(ctx context.Context, message string) error
	// Tag creates an annotated tag at HEAD
	Tag(ctx context.Context, name string) error
	// CheckoutHead restores a path to its state at HEAD
	CheckoutHead(ctx context.Context, path string) error
	// ChangedCount reports how many tracked files currently show a
	// modified, added, deleted, renamed, copied or updated status
	ChangedCount(ctx context.Context) (int, error)
}

// Namer generates the commit message and tag name for a bump. A deployment
// may supply its own implementation to customize either, or return empty
// strings to suppress committing or tagging entirely.
type Namer interface {
	CommitMessage(version string) string
	TagName(version string) string
}
