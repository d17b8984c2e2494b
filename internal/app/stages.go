package app

import (
	"context"

	"github.com/quantmind-br/create-example/internal/archive"
	"github.com/quantmind-br/create-example/internal/domain"
)

// ExistenceProber confirms the example is present at a branch
type ExistenceProber interface {
	Exists(ctx context.Context, org, repo, example, branch string) bool
}

// DirMaker provisions the destination directory
type DirMaker interface {
	MakeDir(path string) domain.DirStatus
}

// ArchiveFetcher downloads the repository archive
type ArchiveFetcher interface {
	Fetch(ctx context.Context, url string, progress archive.ProgressFunc) (*archive.TempArchive, domain.DownloadStatus)
}

// ArchiveExtractor extracts the example subtree and releases the archive
type ArchiveExtractor interface {
	Extract(ctx context.Context, a *archive.TempArchive, root string, req domain.ExampleRequest) domain.ExtractStatus
}

// PackageManagerResolver names the package manager of this run
type PackageManagerResolver interface {
	Resolve() domain.PackageManager
}

// DependencyInstaller installs the project dependencies
type DependencyInstaller interface {
	Install(ctx context.Context, dir string, pm domain.PackageManager) domain.InstallStatus
}

// VcsInitializer creates the project repository
type VcsInitializer interface {
	Init(ctx context.Context, dir string) domain.VcsInitResult
}

// Stages holds one implementation per pipeline stage
type Stages struct {
	Exists   ExistenceProber
	Dir      DirMaker
	Fetch    ArchiveFetcher
	Extract  ArchiveExtractor
	Resolver PackageManagerResolver
	Install  DependencyInstaller
	Vcs      VcsInitializer
}
