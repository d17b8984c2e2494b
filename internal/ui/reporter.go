package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/quantmind-br/create-example/internal/app"
	"github.com/quantmind-br/create-example/internal/domain"
	"github.com/quantmind-br/create-example/internal/utils"
)

// spinnerInterval is the animation period of the stage spinner
const spinnerInterval = 100 * time.Millisecond

var _ app.Reporter = (*TerminalReporter)(nil)

// TerminalReporter prints one status line per stage outcome. On a terminal
// the running stage is shown as a spinner and downloads as a byte counter;
// otherwise only the final lines are written.
type TerminalReporter struct {
	out      io.Writer
	animated bool

	mu      sync.Mutex
	spinner *progressbar.ProgressBar
	bar     *progressbar.ProgressBar
	stop    chan struct{}
	done    chan struct{}
}

// NewTerminalReporter creates a reporter writing to out. animated enables
// spinners and progress bars and should only be set for a TTY.
func NewTerminalReporter(out io.Writer, animated bool) *TerminalReporter {
	return &TerminalReporter{out: out, animated: animated}
}

func (r *TerminalReporter) Start(stage domain.Stage, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clearLocked()
	if !r.animated {
		return
	}

	r.spinner = utils.NewSpinner(r.out, msg)
	r.stop = make(chan struct{})
	r.done = make(chan struct{})
	go spin(r.spinner, r.stop, r.done)
}

func spin(bar *progressbar.ProgressBar, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			_ = bar.Add(1)
		}
	}
}

func (r *TerminalReporter) Succeed(stage domain.Stage, msg string) {
	r.line(SuccessStyle.Render(SymbolSuccess), msg)
}

func (r *TerminalReporter) Warn(stage domain.Stage, msg string) {
	r.line(WarnStyle.Render(SymbolWarn), msg)
}

func (r *TerminalReporter) Fail(stage domain.Stage, msg string) {
	r.line(ErrorStyle.Render(SymbolFail), msg)
}

// Transfer swaps the spinner for a byte counter
func (r *TerminalReporter) Transfer(total int64) io.Writer {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.animated {
		return nil
	}
	r.clearLocked()
	r.bar = utils.NewBytesBar(r.out, total, utils.DescDownloading)
	return r.bar
}

func (r *TerminalReporter) Box(title string, lines []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clearLocked()
	fmt.Fprintln(r.out, RenderBox(title, lines))
}

func (r *TerminalReporter) Summary(s app.Summary) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clearLocked()
	fmt.Fprintln(r.out, RenderBox(SummaryTitle(s), SummaryLines(s)))
}

// SummaryTitle is the headline of the closing box
func SummaryTitle(s app.Summary) string {
	if s.Degraded {
		return fmt.Sprintf("Created %s with warnings", s.Example)
	}
	return fmt.Sprintf("Success! Created %s", s.Example)
}

// SummaryLines lists the next steps, using the package manager of the run
func SummaryLines(s app.Summary) []string {
	lines := []string{
		"Start by typing:",
		"",
		PathStyle.Render("cd " + s.Path),
	}
	if !s.Installed {
		lines = append(lines, PathStyle.Render(s.PackageManager.Name+" install"))
	}
	lines = append(lines, PathStyle.Render(s.RunCommand))
	return lines
}

func (r *TerminalReporter) line(symbol, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clearLocked()
	fmt.Fprintf(r.out, "%s %s\n", symbol, strings.TrimSpace(msg))
}

// clearLocked stops and erases any running spinner or bar
func (r *TerminalReporter) clearLocked() {
	if r.stop != nil {
		close(r.stop)
		<-r.done
		r.stop, r.done = nil, nil
	}
	if r.spinner != nil {
		_ = r.spinner.Clear()
		r.spinner = nil
	}
	if r.bar != nil {
		_ = r.bar.Finish()
		r.bar = nil
	}
}

// Close stops any animation left running
func (r *TerminalReporter) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearLocked()
}
