package domain

// Stage names one unit of the provisioning pipeline
type Stage string

const (
	StageExists    Stage = "exists"
	StageDirectory Stage = "directory"
	StageDownload  Stage = "download"
	StageExtract   Stage = "extract"
	StageInstall   Stage = "install"
	StageGit       Stage = "git"
)

// Each stage reports a closed set of outcomes. The zero value of every
// status type is invalid so an unset status is never mistaken for success.

// DirStatus is the outcome of directory provisioning
type DirStatus int

const (
	dirInvalid DirStatus = iota
	DirAlready
	DirCreated
	DirFailed
)

func (s DirStatus) String() string {
	switch s {
	case DirAlready:
		return "already"
	case DirCreated:
		return "success"
	case DirFailed:
		return "failed"
	default:
		return "invalid"
	}
}

// DownloadStatus is the outcome of fetching the archive
type DownloadStatus int

const (
	downloadInvalid DownloadStatus = iota
	DownloadSuccess
	DownloadFailed
)

func (s DownloadStatus) String() string {
	switch s {
	case DownloadSuccess:
		return "success"
	case DownloadFailed:
		return "download-failed"
	default:
		return "invalid"
	}
}

// ExtractStatus is the outcome of extracting the example subtree
type ExtractStatus int

const (
	extractInvalid ExtractStatus = iota
	ExtractSuccess
	ExtractFailed
)

func (s ExtractStatus) String() string {
	switch s {
	case ExtractSuccess:
		return "success"
	case ExtractFailed:
		return "extract-failed"
	default:
		return "invalid"
	}
}

// InstallStatus is the outcome of installing dependencies
type InstallStatus int

const (
	installInvalid InstallStatus = iota
	InstallSuccess
	InstallFailed
	InstallSkipped
)

func (s InstallStatus) String() string {
	switch s {
	case InstallSuccess:
		return "success"
	case InstallFailed:
		return "install-failed"
	case InstallSkipped:
		return "skipped"
	default:
		return "invalid"
	}
}

// GitStatus is the outcome of repository initialization
type GitStatus int

const (
	gitInvalid GitStatus = iota
	GitNotFound
	GitAlreadyInRepository
	GitInitFailed
	GitCommitFailed
	GitSuccess
	GitSkipped
)

func (s GitStatus) String() string {
	switch s {
	case GitNotFound:
		return "git-not-found"
	case GitAlreadyInRepository:
		return "already-in-repository"
	case GitInitFailed:
		return "git-init-failed"
	case GitCommitFailed:
		return "git-commit-failed"
	case GitSuccess:
		return "success"
	case GitSkipped:
		return "skipped"
	default:
		return "invalid"
	}
}
