package vcs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/quantmind-br/create-example/internal/domain"
	"github.com/quantmind-br/create-example/internal/utils"
)

// Initializer creates a repository with one commit in a project directory
type Initializer struct {
	client    Client
	branch    string
	message   string
	removeAll func(string) error
	logger    *utils.Logger
}

// InitializerOptions contains options for creating an Initializer
type InitializerOptions struct {
	Client        Client
	DefaultBranch string
	CommitMessage string
	Logger        *utils.Logger
	// RemoveAll deletes the metadata directory on rollback. Defaults to os.RemoveAll.
	RemoveAll func(string) error
}

// NewInitializer creates a new Initializer
func NewInitializer(opts InitializerOptions) *Initializer {
	removeAll := opts.RemoveAll
	if removeAll == nil {
		removeAll = os.RemoveAll
	}
	return &Initializer{
		client:    opts.Client,
		branch:    opts.DefaultBranch,
		message:   opts.CommitMessage,
		removeAll: removeAll,
		logger:    opts.Logger.OrNop().WithComponent("vcs"),
	}
}

// Init runs the state machine once and reports exactly one status
func (i *Initializer) Init(ctx context.Context, dir string) domain.VcsInitResult {
	if !i.client.Available(ctx, dir) {
		return domain.VcsInitResult{Status: domain.GitNotFound}
	}

	if i.client.InsideWorkTree(ctx, dir) || i.client.InsideMercurial(ctx, dir) {
		return domain.VcsInitResult{Status: domain.GitAlreadyInRepository}
	}

	if err := i.client.Init(ctx, dir); err != nil {
		i.logger.Debug().Err(err).Str("dir", dir).Msg("Repository init failed")
		return domain.VcsInitResult{Status: domain.GitInitFailed}
	}

	result := domain.VcsInitResult{DidInit: true}
	if err := i.commit(ctx, dir); err != nil {
		i.logger.Debug().Err(err).Str("dir", dir).Msg("Initial commit failed, rolling back")
		result.Status = domain.GitCommitFailed
		result.RolledBack = i.rollback(dir)
		return result
	}

	result.Status = domain.GitSuccess
	return result
}

func (i *Initializer) commit(ctx context.Context, dir string) error {
	if err := i.client.CheckoutBranch(ctx, dir, i.branch); err != nil {
		return err
	}
	return i.client.CommitAll(ctx, dir, i.message)
}

// rollback removes the metadata directory created by this run.
// Failure is reported, never retried.
func (i *Initializer) rollback(dir string) bool {
	meta := filepath.Join(dir, MetadataDir)
	if err := i.removeAll(meta); err != nil {
		i.logger.Debug().Err(err).Str("path", meta).Msg("Rollback failed")
		return false
	}
	return !utils.PathExists(meta)
}
