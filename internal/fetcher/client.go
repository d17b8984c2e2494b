package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/quantmind-br/create-example/internal/domain"
	"github.com/quantmind-br/create-example/internal/utils"
	"github.com/quantmind-br/create-example/pkg/version"
)

// Client talks to the metadata API and the archive host
type Client struct {
	httpClient *http.Client
	userAgent  string
	token      string
	logger     *utils.Logger
}

// ClientOptions contains options for creating a Client
type ClientOptions struct {
	// Timeout bounds a whole request including the body transfer
	Timeout    time.Duration
	UserAgent  string
	Token      string // sent as "Authorization: token <t>" when set
	HTTPClient *http.Client
	Logger     *utils.Logger
}

// DefaultClientOptions returns default client options.
// The token is taken from GITHUB_TOKEN.
func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		Timeout:   5 * time.Minute,
		UserAgent: version.UserAgent(),
		Token:     os.Getenv("GITHUB_TOKEN"),
	}
}

// NewClient creates a new Client
func NewClient(opts ClientOptions) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = version.UserAgent()
	}

	return &Client{
		httpClient: httpClient,
		userAgent:  userAgent,
		token:      opts.Token,
		logger:     opts.Logger.OrNop().WithComponent("fetcher"),
	}
}

// Head issues a HEAD request and returns the response status code
func (c *Client) Head(ctx context.Context, url string) (int, error) {
	resp, err := c.do(ctx, http.MethodHead, url)
	if err != nil {
		return 0, err
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}

// Download streams the body of a GET request into w.
//
// When progress is non-nil it is called once with the announced content
// length (-1 when unknown) and the returned writer receives a copy of every
// chunk written to w.
func (c *Client) Download(ctx context.Context, url string, w io.Writer, progress func(total int64) io.Writer) (int64, error) {
	resp, err := c.do(ctx, http.MethodGet, url)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, domain.NewFetchError(url, resp.StatusCode, fmt.Errorf("unexpected status %s", resp.Status))
	}

	dst := w
	if progress != nil {
		if pw := progress(resp.ContentLength); pw != nil {
			dst = io.MultiWriter(w, pw)
		}
	}

	n, err := io.Copy(dst, resp.Body)
	if err != nil {
		return n, domain.NewFetchError(url, 0, fmt.Errorf("read body: %w", err))
	}

	c.logger.Debug().Str("url", url).Int64("bytes", n).Msg("Download complete")
	return n, nil
}

// GetJSON fetches url and decodes the JSON body into v
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	resp, err := c.do(ctx, http.MethodGet, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.NewFetchError(url, resp.StatusCode, fmt.Errorf("unexpected status %s", resp.Status))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	c.logger.Debug().Str("method", method).Str("url", url).Msg("HTTP request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %v", domain.ErrTimeout, err)
		}
		return nil, domain.NewFetchError(url, 0, err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		c.logger.Debug().Str("url", url).Msg("Rate limited by remote host")
	}
	return resp, nil
}
