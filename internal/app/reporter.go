package app

import (
	"io"

	"github.com/quantmind-br/create-example/internal/domain"
)

// Reporter is the presentation collaborator of the pipeline. It receives
// progress per stage and never influences control flow.
type Reporter interface {
	Start(stage domain.Stage, msg string)
	Succeed(stage domain.Stage, msg string)
	Warn(stage domain.Stage, msg string)
	Fail(stage domain.Stage, msg string)
	// Transfer is called when a download starts and returns a writer that
	// observes the downloaded bytes, or nil
	Transfer(total int64) io.Writer
	// Box prints a framed notice
	Box(title string, lines []string)
	Summary(s Summary)
}

// Summary is the closing report of a completed run
type Summary struct {
	Example        string
	Path           string // as shown to the user, e.g. ./my-app
	PackageManager domain.PackageManager
	Installed      bool
	RunCommand     string
	Degraded       bool
}

// NopReporter discards everything
type NopReporter struct{}

func (NopReporter) Start(domain.Stage, string)   {}
func (NopReporter) Succeed(domain.Stage, string) {}
func (NopReporter) Warn(domain.Stage, string)    {}
func (NopReporter) Fail(domain.Stage, string)    {}
func (NopReporter) Transfer(int64) io.Writer     { return nil }
func (NopReporter) Box(string, []string)         {}
func (NopReporter) Summary(Summary)              {}
