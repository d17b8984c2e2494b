package utils

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// DescDownloading labels the archive transfer bar
const DescDownloading = "Downloading"

// NewSpinner creates an indeterminate spinner writing to w.
//
// The spinner only advances when Add is called, so callers animate it from a
// ticker and Clear it before printing the final status line.
func NewSpinner(w io.Writer, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionClearOnFinish(),
	)
}

// NewBytesBar creates a byte-counting bar for a transfer of total bytes.
// Use total < 0 when the size is unknown.
func NewBytesBar(w io.Writer, total int64, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowBytes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
}
