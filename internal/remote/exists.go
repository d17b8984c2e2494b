package remote

import (
	"context"
	"net/http"
	"time"

	"github.com/quantmind-br/create-example/internal/utils"
)

// HeadClient issues HEAD requests
type HeadClient interface {
	Head(ctx context.Context, url string) (int, error)
}

// ExistenceChecker probes the metadata API for an example directory
type ExistenceChecker struct {
	client  HeadClient
	apiBase string
	timeout time.Duration
	logger  *utils.Logger
}

// ExistenceCheckerOptions contains options for creating an ExistenceChecker
type ExistenceCheckerOptions struct {
	Client     HeadClient
	APIBaseURL string // e.g. https://api.github.com
	Timeout    time.Duration
	Logger     *utils.Logger
}

// NewExistenceChecker creates a new ExistenceChecker
func NewExistenceChecker(opts ExistenceCheckerOptions) *ExistenceChecker {
	return &ExistenceChecker{
		client:  opts.Client,
		apiBase: opts.APIBaseURL,
		timeout: opts.Timeout,
		logger:  opts.Logger.OrNop().WithComponent("exists"),
	}
}

// Exists performs a single probe and reports whether the example is present.
// It fails closed: a transport error, a timeout and any status other than
// 200 all mean "not found". There is no retry.
func (c *ExistenceChecker) Exists(ctx context.Context, org, repo, example, branch string) bool {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	probeURL := ContentsURL(c.apiBase, org, repo, example, branch)
	status, err := c.client.Head(ctx, probeURL)
	if err != nil {
		c.logger.Debug().Err(err).Str("url", probeURL).Msg("Existence probe failed")
		return false
	}

	c.logger.Debug().Int("status", status).Str("url", probeURL).Msg("Existence probe answered")
	return status == http.StatusOK
}
