package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/quantmind-br/create-example/internal/config"
	"github.com/quantmind-br/create-example/internal/domain"
	"github.com/quantmind-br/create-example/internal/fetcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func antdRequest(dest string) domain.ExampleRequest {
	return domain.ExampleRequest{
		Organization: "refinedev",
		Repository:   "refine",
		Example:      "antd",
		Branch:       "master",
		Destination:  dest,
	}
}

func newTestOrchestrator(t *testing.T, f *fakeStages, reporter Reporter, mutate func(*OrchestratorOptions)) *Orchestrator {
	t.Helper()
	opts := OrchestratorOptions{
		Config:     config.Default(),
		Stages:     f.stages(),
		Reporter:   reporter,
		WorkingDir: "/work",
	}
	if mutate != nil {
		mutate(&opts)
	}
	o, err := NewOrchestrator(opts)
	require.NoError(t, err)
	t.Cleanup(o.Close)
	return o
}

func TestNewOrchestrator_RequiresConfig(t *testing.T) {
	_, err := NewOrchestrator(OrchestratorOptions{})
	assert.Error(t, err)
}

func TestOrchestrator_Run_Success(t *testing.T) {
	f := happyStages()
	reporter := &recordingReporter{}
	o := newTestOrchestrator(t, f, reporter, nil)

	result, err := o.Run(context.Background(), antdRequest("/work/my-app"))
	require.NoError(t, err)

	assert.Equal(t, []string{"exists", "dir", "fetch", "extract", "resolve", "install", "git"}, f.calls)
	assert.Equal(t, "https://codeload.github.com/refinedev/refine/tar.gz/master", f.fetchURL)

	assert.True(t, result.Found)
	assert.Equal(t, domain.DirCreated, result.Dir)
	assert.Equal(t, domain.DownloadSuccess, result.Download)
	assert.Equal(t, domain.ExtractSuccess, result.Extract)
	assert.Equal(t, domain.InstallSuccess, result.Install)
	assert.Equal(t, domain.GitSuccess, result.Git.Status)
	assert.False(t, result.Degraded())

	// the manager used for install is the one suggested afterwards
	assert.Equal(t, result.PackageManager, f.installPM)
	require.NotNil(t, reporter.summary)
	assert.Equal(t, "pnpm dev", reporter.summary.RunCommand)
	assert.Equal(t, "./my-app", reporter.summary.Path)
	assert.True(t, reporter.summary.Installed)
	assert.False(t, reporter.summary.Degraded)
	assert.NotContains(t, reporter.events, "fail:exists")
}

func TestOrchestrator_Run_NotFoundAbortsBeforeDirectory(t *testing.T) {
	f := happyStages()
	f.found = false
	reporter := &recordingReporter{}
	o := newTestOrchestrator(t, f, reporter, nil)

	dest := filepath.Join(t.TempDir(), "doesnotexist123")
	req := antdRequest(dest)
	req.Example = "doesnotexist123"

	result, err := o.Run(context.Background(), req)
	require.Error(t, err)

	var abort *domain.AbortError
	require.ErrorAs(t, err, &abort)
	assert.Equal(t, domain.StageExists, abort.Stage)
	assert.Equal(t, "not-found", abort.Status)
	assert.ErrorIs(t, err, domain.ErrExampleNotFound)

	assert.Equal(t, []string{"exists"}, f.calls)
	assert.False(t, result.Found)
	assert.NoDirExists(t, dest)
	assert.Equal(t, []string{"Example not found"}, reporter.boxes)
	assert.Nil(t, reporter.summary)
}

func TestOrchestrator_Run_DirectoryFailedAborts(t *testing.T) {
	f := happyStages()
	f.dir = domain.DirFailed
	o := newTestOrchestrator(t, f, &recordingReporter{}, nil)

	_, err := o.Run(context.Background(), antdRequest("/root-owned/app"))
	assert.ErrorIs(t, err, domain.ErrDirectoryFailed)
	assert.Equal(t, []string{"exists", "dir"}, f.calls)
}

func TestOrchestrator_Run_DirectoryAlreadyExistsContinues(t *testing.T) {
	f := happyStages()
	f.dir = domain.DirAlready
	reporter := &recordingReporter{}
	o := newTestOrchestrator(t, f, reporter, nil)

	result, err := o.Run(context.Background(), antdRequest("/work/my-app"))
	require.NoError(t, err)
	assert.Equal(t, domain.DirAlready, result.Dir)
	assert.Contains(t, reporter.events, "warn:directory")
	assert.Contains(t, reporter.messages, "Directory ./my-app already exists. Files will be overwritten.")
}

func TestOrchestrator_Run_DownloadFailedAborts(t *testing.T) {
	f := happyStages()
	f.downloads = []domain.DownloadStatus{domain.DownloadFailed}
	o := newTestOrchestrator(t, f, &recordingReporter{}, nil)

	result, err := o.Run(context.Background(), antdRequest("/work/my-app"))

	var abort *domain.AbortError
	require.ErrorAs(t, err, &abort)
	assert.Equal(t, domain.StageDownload, abort.Stage)
	assert.Equal(t, "download-failed", abort.Status)
	assert.Equal(t, []string{"exists", "dir", "fetch"}, f.calls, "no extraction after a failed download")
	assert.Equal(t, domain.DownloadFailed, result.Download)
}

func TestOrchestrator_Run_ExtractFailedAborts(t *testing.T) {
	f := happyStages()
	f.extract = domain.ExtractFailed
	o := newTestOrchestrator(t, f, &recordingReporter{}, nil)

	_, err := o.Run(context.Background(), antdRequest("/work/my-app"))
	assert.ErrorIs(t, err, domain.ErrExtractFailed)
	assert.Equal(t, []string{"exists", "dir", "fetch", "extract"}, f.calls)
}

func TestOrchestrator_Run_DegradedStagesContinue(t *testing.T) {
	gitOutcomes := []domain.VcsInitResult{
		{Status: domain.GitNotFound},
		{Status: domain.GitAlreadyInRepository},
		{Status: domain.GitInitFailed},
		{Status: domain.GitCommitFailed, DidInit: true, RolledBack: true},
		{Status: domain.GitCommitFailed, DidInit: true},
	}

	for _, git := range gitOutcomes {
		t.Run(git.Status.String(), func(t *testing.T) {
			f := happyStages()
			f.install = domain.InstallFailed
			f.git = git
			reporter := &recordingReporter{}
			o := newTestOrchestrator(t, f, reporter, nil)

			result, err := o.Run(context.Background(), antdRequest("/work/my-app"))
			require.NoError(t, err)
			assert.True(t, result.Degraded())
			assert.Contains(t, reporter.events, "warn:install")
			assert.Contains(t, reporter.events, "warn:git")
			require.NotNil(t, reporter.summary)
			assert.True(t, reporter.summary.Degraded)
			assert.False(t, reporter.summary.Installed)
		})
	}
}

func TestOrchestrator_Run_SkipFlags(t *testing.T) {
	f := happyStages()
	o := newTestOrchestrator(t, f, &recordingReporter{}, func(opts *OrchestratorOptions) {
		opts.NoInstall = true
		opts.NoGit = true
	})

	result, err := o.Run(context.Background(), antdRequest("/work/my-app"))
	require.NoError(t, err)
	assert.Equal(t, domain.InstallSkipped, result.Install)
	assert.Equal(t, domain.GitSkipped, result.Git.Status)
	assert.NotContains(t, f.calls, "install")
	assert.NotContains(t, f.calls, "git")
	assert.False(t, result.Degraded())
}

func TestOrchestrator_Run_SkipFromConfig(t *testing.T) {
	f := happyStages()
	o := newTestOrchestrator(t, f, &recordingReporter{}, func(opts *OrchestratorOptions) {
		opts.Config.Install.Enabled = false
		opts.Config.Git.Enabled = false
	})

	result, err := o.Run(context.Background(), antdRequest("/work/my-app"))
	require.NoError(t, err)
	assert.Equal(t, domain.InstallSkipped, result.Install)
	assert.Equal(t, domain.GitSkipped, result.Git.Status)
}

func fastRetrier(retries int) *fetcher.Retrier {
	return fetcher.NewRetrier(fetcher.RetrierOptions{
		MaxRetries:      retries,
		InitialInterval: time.Millisecond,
		MaxInterval:     time.Millisecond,
		Multiplier:      1,
		RetryIf:         RetryDownload,
	})
}

func TestOrchestrator_Run_RetriesDownload(t *testing.T) {
	f := happyStages()
	f.downloads = []domain.DownloadStatus{domain.DownloadFailed, domain.DownloadSuccess}
	reporter := &recordingReporter{}
	o := newTestOrchestrator(t, f, reporter, func(opts *OrchestratorOptions) {
		opts.Retrier = fastRetrier(2)
	})

	result, err := o.Run(context.Background(), antdRequest("/work/my-app"))
	require.NoError(t, err)
	assert.Equal(t, 2, f.fetchCalls)
	assert.Equal(t, domain.DownloadSuccess, result.Download)
	assert.Contains(t, reporter.events, "warn:download")
}

func TestOrchestrator_Run_RetriesExhausted(t *testing.T) {
	f := happyStages()
	f.downloads = []domain.DownloadStatus{domain.DownloadFailed}
	o := newTestOrchestrator(t, f, &recordingReporter{}, func(opts *OrchestratorOptions) {
		opts.Retrier = fastRetrier(2)
	})

	_, err := o.Run(context.Background(), antdRequest("/work/my-app"))
	assert.ErrorIs(t, err, domain.ErrDownloadFailed)
	assert.Equal(t, 3, f.fetchCalls)
}

// cancelOnWarn cancels the run as soon as a retry is announced
type cancelOnWarn struct {
	*recordingReporter
	cancel context.CancelFunc
}

func (r cancelOnWarn) Warn(s domain.Stage, msg string) {
	r.recordingReporter.Warn(s, msg)
	r.cancel()
}

func TestOrchestrator_Run_CanceledDuringRetryWaitStillAborts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f := happyStages()
	f.downloads = []domain.DownloadStatus{domain.DownloadFailed}
	reporter := &recordingReporter{}
	o := newTestOrchestrator(t, f, cancelOnWarn{recordingReporter: reporter, cancel: cancel}, func(opts *OrchestratorOptions) {
		opts.Retrier = fetcher.NewRetrier(fetcher.RetrierOptions{
			MaxRetries:      3,
			InitialInterval: time.Minute,
			MaxInterval:     time.Minute,
			RetryIf:         RetryDownload,
		})
	})

	_, err := o.Run(ctx, antdRequest("/work/my-app"))

	var abort *domain.AbortError
	require.ErrorAs(t, err, &abort)
	assert.Equal(t, domain.StageDownload, abort.Stage)
	assert.ErrorIs(t, err, domain.ErrDownloadFailed)
	assert.Equal(t, 1, f.fetchCalls)
	assert.Contains(t, reporter.events, "fail:download")
}

func TestOrchestrator_Run_ExtractFailureIsNotRetried(t *testing.T) {
	f := happyStages()
	f.extract = domain.ExtractFailed
	o := newTestOrchestrator(t, f, &recordingReporter{}, func(opts *OrchestratorOptions) {
		opts.Retrier = fastRetrier(3)
	})

	_, err := o.Run(context.Background(), antdRequest("/work/my-app"))
	assert.ErrorIs(t, err, domain.ErrExtractFailed)
	assert.Equal(t, 1, f.fetchCalls)
}

func TestOrchestrator_Run_InvalidRequest(t *testing.T) {
	f := happyStages()
	o := newTestOrchestrator(t, f, nil, nil)

	req := antdRequest("/work/app")
	req.Example = "../etc"
	_, err := o.Run(context.Background(), req)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "example", validationErr.Field)
	assert.Empty(t, f.calls)
}

func TestRetryDownload(t *testing.T) {
	assert.True(t, RetryDownload(domain.NewAbortError(domain.StageDownload, domain.DownloadFailed, domain.ErrDownloadFailed)))
	assert.False(t, RetryDownload(domain.NewAbortError(domain.StageExtract, domain.ExtractFailed, domain.ErrExtractFailed)))
	assert.False(t, RetryDownload(errors.New("other")))
}

func TestExamplesHint(t *testing.T) {
	lines := ExamplesHint(config.Default().Source)
	assert.Equal(t, []string{
		"You can find refine examples at:",
		"",
		"github.com/refinedev/refine/tree/master/examples",
	}, lines)
}
