package vcs

import "context"

// Client is the capability interface over a version control system
type Client interface {
	// Available reports whether the VCS can be used at all
	Available(ctx context.Context, dir string) bool
	// InsideWorkTree reports whether dir is inside a git working tree
	InsideWorkTree(ctx context.Context, dir string) bool
	// InsideMercurial reports whether dir is inside a Mercurial repository
	InsideMercurial(ctx context.Context, dir string) bool
	// Init creates a new repository in dir
	Init(ctx context.Context, dir string) error
	// CheckoutBranch points HEAD at a new branch
	CheckoutBranch(ctx context.Context, dir, branch string) error
	// CommitAll stages every file and records one commit
	CommitAll(ctx context.Context, dir, message string) error
}

// MetadataDir is the name of the repository metadata directory created by Init
const MetadataDir = ".git"
