package domain

import (
	"fmt"
	"strings"

	"github.com/quantmind-br/create-example/internal/utils"
)

// ExampleRequest is the immutable input of one pipeline run
type ExampleRequest struct {
	Organization string
	Repository   string
	Example      string
	Branch       string
	Destination  string // absolute path of the project directory
}

// Validate checks that every field is set and that the example name is a
// single path segment
func (r ExampleRequest) Validate() error {
	required := map[string]string{
		"organization": r.Organization,
		"repository":   r.Repository,
		"example":      r.Example,
		"branch":       r.Branch,
		"destination":  r.Destination,
	}
	for _, field := range []string{"organization", "repository", "example", "branch", "destination"} {
		if strings.TrimSpace(required[field]) == "" {
			return NewValidationError(field, "must not be empty")
		}
	}
	if !utils.IsValidFilename(r.Example) {
		return NewValidationError("example", fmt.Sprintf("%q is not a valid example name", r.Example))
	}
	return nil
}

// SubtreePrefix is the in-archive path of the example directory, e.g.
// "refine-master/examples/antd/". Slashes in the branch become dashes, the
// same way the archive host names its top-level directory.
func (r ExampleRequest) SubtreePrefix() string {
	return fmt.Sprintf("%s-%s/examples/%s/", r.Repository, strings.ReplaceAll(r.Branch, "/", "-"), r.Example)
}

// PackageManager identifies the package manager used for install and for
// the next-step instructions of one run
type PackageManager struct {
	Name    string
	Version string // empty when unknown
}

func (p PackageManager) String() string {
	if p.Version == "" {
		return p.Name
	}
	return p.Name + "@" + p.Version
}

// RunCommand renders the command that runs a package.json script
func (p PackageManager) RunCommand(script string) string {
	switch p.Name {
	case "yarn", "pnpm":
		return p.Name + " " + script
	default:
		return p.Name + " run " + script
	}
}

// VcsInitResult is the outcome of the version control stage.
// DidInit is true only when this run created the repository; RolledBack
// reports whether a failed commit was undone by removing the metadata.
type VcsInitResult struct {
	Status     GitStatus
	DidInit    bool
	RolledBack bool
}

// Result aggregates every stage outcome of a run
type Result struct {
	Request        ExampleRequest
	PackageManager PackageManager
	Found          bool
	Dir            DirStatus
	Download       DownloadStatus
	Extract        ExtractStatus
	Install        InstallStatus
	Git            VcsInitResult
}

// Degraded reports whether a best-effort stage did not succeed
func (r *Result) Degraded() bool {
	return r.Install == InstallFailed || (r.Git.Status != GitSuccess && r.Git.Status != GitSkipped)
}
