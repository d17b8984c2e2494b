package vcs

import (
	"context"

	"github.com/quantmind-br/create-example/internal/runner"
)

// CLIClient drives the git and hg binaries
type CLIClient struct {
	runner runner.Runner
}

// NewCLIClient creates a new CLIClient
func NewCLIClient(r runner.Runner) *CLIClient {
	return &CLIClient{runner: r}
}

func (c *CLIClient) Available(ctx context.Context, dir string) bool {
	return c.runner.Run(ctx, dir, "git", "--version") == nil
}

func (c *CLIClient) InsideWorkTree(ctx context.Context, dir string) bool {
	return c.runner.Run(ctx, dir, "git", "rev-parse", "--is-inside-work-tree") == nil
}

func (c *CLIClient) InsideMercurial(ctx context.Context, dir string) bool {
	return c.runner.Run(ctx, dir, "hg", "--cwd", ".", "root") == nil
}

func (c *CLIClient) Init(ctx context.Context, dir string) error {
	return c.runner.Run(ctx, dir, "git", "init")
}

func (c *CLIClient) CheckoutBranch(ctx context.Context, dir, branch string) error {
	return c.runner.Run(ctx, dir, "git", "checkout", "-b", branch)
}

func (c *CLIClient) CommitAll(ctx context.Context, dir, message string) error {
	if err := c.runner.Run(ctx, dir, "git", "add", "-A"); err != nil {
		return err
	}
	return c.runner.Run(ctx, dir, "git", "commit", "-m", message)
}
