package app

import (
	"fmt"
	"os"

	"github.com/quantmind-br/create-example/internal/archive"
	"github.com/quantmind-br/create-example/internal/cache"
	"github.com/quantmind-br/create-example/internal/config"
	"github.com/quantmind-br/create-example/internal/fetcher"
	"github.com/quantmind-br/create-example/internal/pkgmgr"
	"github.com/quantmind-br/create-example/internal/remote"
	"github.com/quantmind-br/create-example/internal/runner"
	"github.com/quantmind-br/create-example/internal/utils"
	"github.com/quantmind-br/create-example/internal/vcs"
	"github.com/quantmind-br/create-example/internal/workspace"
)

// NewHTTPClient creates the client shared by the probe, the catalog and the
// archive download
func NewHTTPClient(cfg *config.Config, logger *utils.Logger) *fetcher.Client {
	return fetcher.NewClient(fetcher.ClientOptions{
		Timeout:   cfg.Network.Timeout,
		UserAgent: cfg.Network.UserAgent,
		Token:     os.Getenv("GITHUB_TOKEN"),
		Logger:    logger,
	})
}

// NewVcsClient selects the VCS backend from config
func NewVcsClient(cfg *config.Config, r runner.Runner) vcs.Client {
	if cfg.Git.Backend == config.BackendGoGit {
		return vcs.NewGoGitClient(vcs.Signature{
			Name:  cfg.Git.AuthorName,
			Email: cfg.Git.AuthorEmail,
		})
	}
	return vcs.NewCLIClient(r)
}

// NewStages wires the production implementation of every stage
func NewStages(cfg *config.Config, logger *utils.Logger) *Stages {
	client := NewHTTPClient(cfg, logger)
	r := runner.NewExecRunner(logger)

	return &Stages{
		Exists: remote.NewExistenceChecker(remote.ExistenceCheckerOptions{
			Client:     client,
			APIBaseURL: cfg.Source.APIBaseURL(),
			Timeout:    cfg.Network.ProbeTimeout,
			Logger:     logger,
		}),
		Dir: workspace.NewProvisioner(logger),
		Fetch: archive.NewFetcher(archive.FetcherOptions{
			Client:  client,
			TempDir: utils.ExpandPath(cfg.Archive.TempDir),
			Prefix:  cfg.Archive.TempPrefix,
			Logger:  logger,
		}),
		Extract:  archive.NewExtractor(logger),
		Resolver: pkgmgr.NewResolver(nil, cfg.Install.DefaultManager),
		Install:  pkgmgr.NewInstaller(r, logger),
		Vcs: vcs.NewInitializer(vcs.InitializerOptions{
			Client:        NewVcsClient(cfg, r),
			DefaultBranch: cfg.Git.DefaultBranch,
			CommitMessage: cfg.Git.CommitMessage,
			Logger:        logger,
		}),
	}
}

// NewCatalog creates the example catalog. With caching enabled the returned
// close function releases the badger store; it is never nil.
func NewCatalog(cfg *config.Config, logger *utils.Logger) (*remote.Catalog, func() error, error) {
	opts := remote.CatalogOptions{
		Client:     NewHTTPClient(cfg, logger),
		CacheTTL:   cfg.Cache.TTL,
		Host:       cfg.Source.Host,
		APIBaseURL: cfg.Source.APIBaseURL(),
		Logger:     logger,
	}

	closeFn := func() error { return nil }
	if cfg.Cache.Enabled {
		dir := utils.ExpandPath(cfg.Cache.Directory)
		if dir == "" {
			dir = config.CacheDir()
		}
		c, err := cache.NewBadgerCache(cache.Options{
			Directory: dir,
			Logger:    cfg.Logging.Level == "debug",
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open cache: %w", err)
		}
		opts.Cache = c
		closeFn = c.Close
	}

	return remote.NewCatalog(opts), closeFn, nil
}
