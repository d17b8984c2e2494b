package vcs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Signature is the author recorded by GoGitClient commits
type Signature struct {
	Name  string
	Email string
}

// GoGitClient implements Client on go-git
type GoGitClient struct {
	author Signature
	now    func() time.Time
}

// NewGoGitClient creates a new GoGitClient
func NewGoGitClient(author Signature) *GoGitClient {
	return &GoGitClient{author: author, now: time.Now}
}

// Available is always true: go-git is linked in
func (c *GoGitClient) Available(ctx context.Context, dir string) bool {
	return true
}

func (c *GoGitClient) InsideWorkTree(ctx context.Context, dir string) bool {
	_, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	return err == nil
}

// InsideMercurial walks from dir towards the root looking for a .hg directory
func (c *GoGitClient) InsideMercurial(ctx context.Context, dir string) bool {
	current, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	for {
		if info, err := os.Stat(filepath.Join(current, ".hg")); err == nil && info.IsDir() {
			return true
		}
		parent := filepath.Dir(current)
		if parent == current {
			return false
		}
		current = parent
	}
}

func (c *GoGitClient) Init(ctx context.Context, dir string) error {
	_, err := git.PlainInit(dir, false)
	return err
}

// CheckoutBranch repoints HEAD; on a fresh repository the branch is unborn
// until the first commit
func (c *GoGitClient) CheckoutBranch(ctx context.Context, dir, branch string) error {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return err
	}
	ref := plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName(branch))
	return repo.Storer.SetReference(ref)
}

func (c *GoGitClient) CommitAll(ctx context.Context, dir, message string) error {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return err
	}
	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("stage files: %w", err)
	}
	_, err = wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  c.author.Name,
			Email: c.author.Email,
			When:  c.now(),
		},
	})
	return err
}
