package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"

	"github.com/quantmind-br/create-example/internal/config"
	"github.com/quantmind-br/create-example/internal/domain"
	"github.com/quantmind-br/create-example/internal/fetcher"
	"github.com/quantmind-br/create-example/internal/remote"
	"github.com/quantmind-br/create-example/internal/utils"
)

// statusNotFound is the abort token of a negative existence check
type statusNotFound struct{}

func (statusNotFound) String() string { return "not-found" }

// RetryDownload reports whether a failed fetch+extract attempt is worth
// repeating: only download failures are
func RetryDownload(err error) bool {
	return errors.Is(err, domain.ErrDownloadFailed)
}

// Orchestrator runs the provisioning pipeline
type Orchestrator struct {
	config      *config.Config
	stages      *Stages
	reporter    Reporter
	retrier     *fetcher.Retrier
	skipInstall bool
	skipGit     bool
	workingDir  string
	logger      *utils.Logger
	metrics     *metricz.Registry
	tracer      *tracez.Tracer
}

// OrchestratorOptions contains options for creating an orchestrator
type OrchestratorOptions struct {
	Config   *config.Config
	Logger   *utils.Logger
	Reporter Reporter
	// Stages overrides the production stages, mainly for tests
	Stages    *Stages
	NoInstall bool
	NoGit     bool
	// Retrier overrides the retry policy derived from network.retries
	Retrier *fetcher.Retrier
	// WorkingDir shortens paths in messages. Defaults to the process working directory.
	WorkingDir string
}

// NewOrchestrator creates a new orchestrator with the given configuration
func NewOrchestrator(opts OrchestratorOptions) (*Orchestrator, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := opts.Logger.OrNop()

	stages := opts.Stages
	if stages == nil {
		stages = NewStages(cfg, logger)
	}

	reporter := opts.Reporter
	if reporter == nil {
		reporter = NopReporter{}
	}

	workingDir := opts.WorkingDir
	if workingDir == "" {
		if wd, err := os.Getwd(); err == nil {
			workingDir = wd
		}
	}

	retrier := opts.Retrier
	if retrier == nil && cfg.Network.Retries > 0 {
		retrierOpts := fetcher.DefaultRetrierOptions()
		retrierOpts.MaxRetries = cfg.Network.Retries
		retrierOpts.RetryIf = RetryDownload
		retrier = fetcher.NewRetrier(retrierOpts)
	}

	return &Orchestrator{
		config:      cfg,
		stages:      stages,
		reporter:    reporter,
		retrier:     retrier,
		skipInstall: opts.NoInstall || !cfg.Install.Enabled,
		skipGit:     opts.NoGit || !cfg.Git.Enabled,
		workingDir:  workingDir,
		logger:      logger.WithComponent("pipeline"),
		metrics:     newMetrics(),
		tracer:      tracez.New(),
	}, nil
}

// Run executes every stage in order. Abort-class outcomes return a
// *domain.AbortError together with the partial result; degraded outcomes
// are reported and the run continues.
func (o *Orchestrator) Run(ctx context.Context, req domain.ExampleRequest) (*domain.Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	startTime := time.Now()
	result := &domain.Result{Request: req}
	o.metrics.Counter(PipelineRunsTotal).Inc()

	ctx, span := o.tracer.StartSpan(ctx, PipelineRunSpan)
	span.SetTag(TagExample, req.Example)
	defer span.Finish()

	abort := func(err error) (*domain.Result, error) {
		o.metrics.Counter(PipelineAbortedTotal).Inc()
		span.SetTag(TagOutcome, OutcomeAborted)
		return result, err
	}
	logger := o.logger.WithExample(req.Example)
	display := utils.DisplayPath(req.Destination, o.workingDir)

	logger.Info().
		Str("org", req.Organization).
		Str("repo", req.Repository).
		Str("branch", req.Branch).
		Str("destination", req.Destination).
		Msg("Starting pipeline")

	if err := o.checkExists(ctx, req, result); err != nil {
		return abort(err)
	}

	if err := o.makeDir(ctx, req, display, result); err != nil {
		return abort(err)
	}

	if err := o.fetchAndExtract(ctx, req, display, result); err != nil {
		return abort(err)
	}

	// resolved once so install and the summary agree
	result.PackageManager = o.stages.Resolver.Resolve()

	o.install(ctx, req, result)
	o.initVcs(ctx, req, result)

	o.reporter.Summary(Summary{
		Example:        req.Example,
		Path:           display,
		PackageManager: result.PackageManager,
		Installed:      result.Install == domain.InstallSuccess,
		RunCommand:     result.PackageManager.RunCommand("dev"),
		Degraded:       result.Degraded(),
	})

	outcome := OutcomeSuccess
	if result.Degraded() {
		outcome = OutcomeDegraded
		o.metrics.Counter(PipelineDegradedTotal).Inc()
	}
	span.SetTag(TagOutcome, outcome)
	o.metrics.Gauge(PipelineDurationMs).Set(float64(time.Since(startTime).Milliseconds()))

	logger.Info().
		Dur("duration", time.Since(startTime)).
		Str("install", result.Install.String()).
		Str("git", result.Git.Status.String()).
		Msg("Pipeline completed")

	return result, nil
}

func (o *Orchestrator) checkExists(ctx context.Context, req domain.ExampleRequest, result *domain.Result) error {
	o.reporter.Start(domain.StageExists, fmt.Sprintf("Checking if example exists in %s", req.Repository))

	ctx, finish := o.startStage(ctx, domain.StageExists)
	result.Found = o.stages.Exists.Exists(ctx, req.Organization, req.Repository, req.Example, req.Branch)
	if !result.Found {
		finish(statusNotFound{}.String())
		o.reporter.Fail(domain.StageExists, fmt.Sprintf("Could not locate an example named %q", req.Example))
		o.reporter.Box("Example not found", o.examplesHint(req))
		return domain.NewAbortError(domain.StageExists, statusNotFound{}, domain.ErrExampleNotFound)
	}

	finish("found")
	o.reporter.Succeed(domain.StageExists, fmt.Sprintf("Example found in %s repository", req.Repository))
	return nil
}

func (o *Orchestrator) makeDir(ctx context.Context, req domain.ExampleRequest, display string, result *domain.Result) error {
	o.reporter.Start(domain.StageDirectory, fmt.Sprintf("Creating directory %s.", display))

	_, finish := o.startStage(ctx, domain.StageDirectory)
	result.Dir = o.stages.Dir.MakeDir(req.Destination)
	finish(result.Dir.String())
	switch result.Dir {
	case domain.DirAlready:
		o.reporter.Warn(domain.StageDirectory, fmt.Sprintf("Directory %s already exists. Files will be overwritten.", display))
	case domain.DirCreated:
		o.reporter.Succeed(domain.StageDirectory, fmt.Sprintf("Directory %s created.", display))
	case domain.DirFailed:
		o.reporter.Fail(domain.StageDirectory, fmt.Sprintf("Failed to create directory %s.", display))
		return domain.NewAbortError(domain.StageDirectory, result.Dir, domain.ErrDirectoryFailed)
	default:
		panic(fmt.Sprintf("unhandled directory status %d", result.Dir))
	}
	return nil
}

// fetchAndExtract runs the download+extract pair, retrying the whole pair
// on download failure when network.retries is set
func (o *Orchestrator) fetchAndExtract(ctx context.Context, req domain.ExampleRequest, display string, result *domain.Result) error {
	archiveURL := remote.ArchiveURL(o.config.Source.CodeloadBaseURL(), req.Organization, req.Repository, req.Branch)

	var lastErr error
	attempt := func() error {
		lastErr = o.fetchAndExtractOnce(ctx, archiveURL, req, display, result)
		return lastErr
	}

	if o.retrier == nil {
		return attempt()
	}

	err := o.retrier.Retry(ctx, attempt, func(err error, wait time.Duration) {
		o.logger.Debug().Err(err).Dur("wait", wait).Msg("Retrying download")
		o.reporter.Warn(domain.StageDownload, fmt.Sprintf("Retrying download in %s.", wait.Round(time.Second)))
	})

	// a cancel during the wait surfaces as ctx.Err(); keep the abort of the
	// attempt that was already reported
	var abort *domain.AbortError
	if err != nil && !errors.As(err, &abort) && errors.As(lastErr, &abort) {
		o.logger.Debug().Err(err).Msg("Retry interrupted")
		return lastErr
	}
	return err
}

func (o *Orchestrator) fetchAndExtractOnce(ctx context.Context, archiveURL string, req domain.ExampleRequest, display string, result *domain.Result) error {
	o.reporter.Start(domain.StageDownload,
		fmt.Sprintf("Downloading files for example %s. This might take a moment.", req.Example))

	o.metrics.Counter(DownloadAttemptsTotal).Inc()
	fetchCtx, finish := o.startStage(ctx, domain.StageDownload)
	tmp, download := o.stages.Fetch.Fetch(fetchCtx, archiveURL, o.reporter.Transfer)
	finish(download.String())
	result.Download = download
	switch download {
	case domain.DownloadSuccess:
		o.reporter.Succeed(domain.StageDownload, fmt.Sprintf("Downloaded files for example %s.", req.Example))
	case domain.DownloadFailed:
		o.reporter.Fail(domain.StageDownload, fmt.Sprintf("Failed to download example %s.", req.Example))
		return domain.NewAbortError(domain.StageDownload, download, domain.ErrDownloadFailed)
	default:
		tmp.Release()
		panic(fmt.Sprintf("unhandled download status %d", download))
	}

	o.reporter.Start(domain.StageExtract, fmt.Sprintf("Extracting example into %s.", display))

	extractCtx, finish := o.startStage(ctx, domain.StageExtract)
	result.Extract = o.stages.Extract.Extract(extractCtx, tmp, req.Destination, req)
	finish(result.Extract.String())
	switch result.Extract {
	case domain.ExtractSuccess:
		o.reporter.Succeed(domain.StageExtract, fmt.Sprintf("Example extracted into %s.", display))
	case domain.ExtractFailed:
		o.reporter.Fail(domain.StageExtract, fmt.Sprintf("Failed to extract example %s.", req.Example))
		return domain.NewAbortError(domain.StageExtract, result.Extract, domain.ErrExtractFailed)
	default:
		panic(fmt.Sprintf("unhandled extract status %d", result.Extract))
	}
	return nil
}

func (o *Orchestrator) install(ctx context.Context, req domain.ExampleRequest, result *domain.Result) {
	if o.skipInstall {
		result.Install = domain.InstallSkipped
		return
	}

	pm := result.PackageManager
	o.reporter.Start(domain.StageInstall, fmt.Sprintf("Installing dependencies with %s.", pm.Name))

	ctx, finish := o.startStage(ctx, domain.StageInstall)
	result.Install = o.stages.Install.Install(ctx, req.Destination, pm)
	finish(result.Install.String())
	switch result.Install {
	case domain.InstallSuccess:
		o.reporter.Succeed(domain.StageInstall, fmt.Sprintf("Dependencies installed with %s.", pm.Name))
	case domain.InstallFailed:
		o.reporter.Warn(domain.StageInstall,
			fmt.Sprintf("Failed to install dependencies. Run %q inside the project to retry.", pm.Name+" install"))
	case domain.InstallSkipped:
	default:
		panic(fmt.Sprintf("unhandled install status %d", result.Install))
	}
}

func (o *Orchestrator) initVcs(ctx context.Context, req domain.ExampleRequest, result *domain.Result) {
	if o.skipGit {
		result.Git = domain.VcsInitResult{Status: domain.GitSkipped}
		return
	}

	o.reporter.Start(domain.StageGit, "Initializing a git repository.")

	ctx, finish := o.startStage(ctx, domain.StageGit)
	result.Git = o.stages.Vcs.Init(ctx, req.Destination)
	finish(result.Git.Status.String())
	switch result.Git.Status {
	case domain.GitSuccess:
		o.reporter.Succeed(domain.StageGit, "Initialized a git repository.")
	case domain.GitNotFound:
		o.reporter.Warn(domain.StageGit, "Git was not found. Skipping repository initialization.")
	case domain.GitAlreadyInRepository:
		o.reporter.Warn(domain.StageGit, "Already inside a repository. Skipping repository initialization.")
	case domain.GitInitFailed:
		o.reporter.Warn(domain.StageGit, "Failed to initialize a git repository.")
	case domain.GitCommitFailed:
		msg := "Failed to create the initial commit. The repository was removed."
		if !result.Git.RolledBack {
			msg = "Failed to create the initial commit. Remove the .git directory before retrying."
		}
		o.reporter.Warn(domain.StageGit, msg)
	case domain.GitSkipped:
	default:
		panic(fmt.Sprintf("unhandled git status %d", result.Git.Status))
	}
}

func (o *Orchestrator) examplesHint(req domain.ExampleRequest) []string {
	source := o.config.Source
	source.Organization = req.Organization
	source.Repository = req.Repository
	source.Branch = req.Branch
	return ExamplesHint(source)
}

// ExamplesHint is the body of the notice that points users at the catalog
func ExamplesHint(source config.SourceConfig) []string {
	return []string{
		fmt.Sprintf("You can find %s examples at:", source.Repository),
		"",
		source.TreeURL(),
	}
}
