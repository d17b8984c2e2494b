package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/zoobzio/clockz"

	"github.com/quantmind-br/create-example/internal/domain"
	"github.com/quantmind-br/create-example/internal/utils"
)

// maxCreateAttempts bounds the retries on a temp name collision
const maxCreateAttempts = 5

// Downloader streams a remote resource into a writer
type Downloader interface {
	Download(ctx context.Context, url string, w io.Writer, progress func(total int64) io.Writer) (int64, error)
}

// ProgressFunc receives the announced size of a download (-1 when unknown)
// and returns a writer that observes every downloaded chunk, or nil
type ProgressFunc func(total int64) io.Writer

// Fetcher downloads archives into private temporary files
type Fetcher struct {
	client Downloader
	dir    string
	prefix string
	clock  clockz.Clock
	logger *utils.Logger
}

// FetcherOptions contains options for creating a Fetcher
type FetcherOptions struct {
	Client Downloader
	// TempDir holds the temporary file. Empty means the working directory.
	TempDir string
	Prefix  string
	// Clock stamps temporary file names. Defaults to the real clock.
	Clock  clockz.Clock
	Logger *utils.Logger
}

// NewFetcher creates a new Fetcher
func NewFetcher(opts FetcherOptions) *Fetcher {
	clock := opts.Clock
	if clock == nil {
		clock = clockz.RealClock
	}
	return &Fetcher{
		client: opts.Client,
		dir:    opts.TempDir,
		prefix: opts.Prefix,
		clock:  clock,
		logger: opts.Logger.OrNop().WithComponent("archive"),
	}
}

// Fetch streams url into a new temporary file. On success the caller owns
// the returned handle; on failure the partial file has already been
// released and the handle is nil.
func (f *Fetcher) Fetch(ctx context.Context, url string, progress ProgressFunc) (*TempArchive, domain.DownloadStatus) {
	file, err := f.createTemp()
	if err != nil {
		f.logger.Debug().Err(err).Msg("Failed to create temporary archive")
		return nil, domain.DownloadFailed
	}
	archive := newTempArchive(file.Name())

	f.logger.Debug().Str("url", url).Str("temp", archive.Path()).Msg("Downloading archive")

	n, err := f.client.Download(ctx, url, file, progress)
	if closeErr := file.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close temporary archive: %w", closeErr)
	}
	if err != nil {
		f.logger.Debug().Err(err).Str("url", url).Msg("Download failed")
		archive.Release()
		return nil, domain.DownloadFailed
	}

	f.logger.Debug().Int64("bytes", n).Msg("Archive saved")
	return archive, domain.DownloadSuccess
}

// createTemp opens <dir>/<prefix>-<unix nanos> exclusively. A collision
// with a concurrent run moves on to a later timestamp.
func (f *Fetcher) createTemp() (*os.File, error) {
	dir := f.dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = wd
	}

	var lastErr error
	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		name := fmt.Sprintf("%s-%d", f.prefix, f.clock.Now().UnixNano()+int64(attempt))
		file, err := os.OpenFile(filepath.Join(dir, name), os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
		if err == nil {
			return file, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}
