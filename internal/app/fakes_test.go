package app

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/quantmind-br/create-example/internal/archive"
	"github.com/quantmind-br/create-example/internal/domain"
)

// recordingReporter keeps every event as "<kind>:<stage>"
type recordingReporter struct {
	mu       sync.Mutex
	events   []string
	messages []string
	boxes    []string
	summary  *Summary
}

func (r *recordingReporter) add(kind string, stage domain.Stage, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, fmt.Sprintf("%s:%s", kind, stage))
	r.messages = append(r.messages, msg)
}

func (r *recordingReporter) Start(s domain.Stage, msg string)   { r.add("start", s, msg) }
func (r *recordingReporter) Succeed(s domain.Stage, msg string) { r.add("succeed", s, msg) }
func (r *recordingReporter) Warn(s domain.Stage, msg string)    { r.add("warn", s, msg) }
func (r *recordingReporter) Fail(s domain.Stage, msg string)    { r.add("fail", s, msg) }
func (r *recordingReporter) Transfer(int64) io.Writer           { return io.Discard }
func (r *recordingReporter) Box(title string, _ []string)       { r.boxes = append(r.boxes, title) }
func (r *recordingReporter) Summary(s Summary)                  { r.summary = &s }

// fakeStages implements every stage interface with scripted outcomes
type fakeStages struct {
	found      bool
	dir        domain.DirStatus
	downloads  []domain.DownloadStatus // consumed per call; last one repeats
	extract    domain.ExtractStatus
	pm         domain.PackageManager
	install    domain.InstallStatus
	git        domain.VcsInitResult
	calls      []string
	fetchCalls int
	fetchURL   string
	installPM  domain.PackageManager
}

func (f *fakeStages) Exists(ctx context.Context, org, repo, example, branch string) bool {
	f.calls = append(f.calls, "exists")
	return f.found
}

func (f *fakeStages) MakeDir(path string) domain.DirStatus {
	f.calls = append(f.calls, "dir")
	return f.dir
}

func (f *fakeStages) Fetch(ctx context.Context, url string, progress archive.ProgressFunc) (*archive.TempArchive, domain.DownloadStatus) {
	f.calls = append(f.calls, "fetch")
	f.fetchURL = url
	status := f.downloads[len(f.downloads)-1]
	if f.fetchCalls < len(f.downloads) {
		status = f.downloads[f.fetchCalls]
	}
	f.fetchCalls++
	return nil, status
}

func (f *fakeStages) Extract(ctx context.Context, a *archive.TempArchive, root string, req domain.ExampleRequest) domain.ExtractStatus {
	f.calls = append(f.calls, "extract")
	return f.extract
}

func (f *fakeStages) Resolve() domain.PackageManager {
	f.calls = append(f.calls, "resolve")
	return f.pm
}

func (f *fakeStages) Install(ctx context.Context, dir string, pm domain.PackageManager) domain.InstallStatus {
	f.calls = append(f.calls, "install")
	f.installPM = pm
	return f.install
}

func (f *fakeStages) Init(ctx context.Context, dir string) domain.VcsInitResult {
	f.calls = append(f.calls, "git")
	return f.git
}

func (f *fakeStages) stages() *Stages {
	return &Stages{
		Exists:   f,
		Dir:      f,
		Fetch:    f,
		Extract:  f,
		Resolver: f,
		Install:  f,
		Vcs:      f,
	}
}

// happyStages succeeds at every stage
func happyStages() *fakeStages {
	return &fakeStages{
		found:     true,
		dir:       domain.DirCreated,
		downloads: []domain.DownloadStatus{domain.DownloadSuccess},
		extract:   domain.ExtractSuccess,
		pm:        domain.PackageManager{Name: "pnpm", Version: "8.6.0"},
		install:   domain.InstallSuccess,
		git:       domain.VcsInitResult{Status: domain.GitSuccess, DidInit: true},
	}
}
