package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/quantmind-br/create-example/internal/cache"
	"github.com/quantmind-br/create-example/internal/domain"
	"github.com/quantmind-br/create-example/internal/utils"
)

// JSONClient fetches and decodes JSON documents
type JSONClient interface {
	GetJSON(ctx context.Context, url string, v any) error
}

// Catalog lists the examples available at a branch
type Catalog struct {
	client   JSONClient
	cache    domain.Cache
	cacheTTL time.Duration
	host     string
	apiBase  string
	logger   *utils.Logger
}

// CatalogOptions contains options for creating a Catalog
type CatalogOptions struct {
	Client     JSONClient
	Cache      domain.Cache // optional
	CacheTTL   time.Duration
	Host       string // cache key component
	APIBaseURL string
	Logger     *utils.Logger
}

// contentEntry is one element of the contents API directory listing
type contentEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
}

// NewCatalog creates a new Catalog
func NewCatalog(opts CatalogOptions) *Catalog {
	return &Catalog{
		client:   opts.Client,
		cache:    opts.Cache,
		cacheTTL: opts.CacheTTL,
		host:     opts.Host,
		apiBase:  opts.APIBaseURL,
		logger:   opts.Logger.OrNop().WithComponent("catalog"),
	}
}

// List returns the sorted example names at branch
func (c *Catalog) List(ctx context.Context, org, repo, branch string) ([]string, error) {
	key := cache.CatalogKey(c.host, org, repo, branch)

	if c.cache != nil {
		names, err := c.fromCache(ctx, key)
		if err == nil {
			c.logger.Debug().Int("examples", len(names)).Msg("Catalog served from cache")
			return names, nil
		}
		if !errors.Is(err, domain.ErrCacheMiss) {
			c.logger.Debug().Err(err).Msg("Ignoring unreadable catalog cache entry")
		}
	}

	var entries []contentEntry
	if err := c.client.GetJSON(ctx, ContentsURL(c.apiBase, org, repo, "", branch), &entries); err != nil {
		return nil, fmt.Errorf("list examples: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type == "dir" {
			names = append(names, e.Name)
		}
	}
	sort.Strings(names)

	if c.cache != nil {
		if data, err := json.Marshal(names); err == nil {
			if err := c.cache.Set(ctx, key, data, c.cacheTTL); err != nil {
				c.logger.Debug().Err(err).Msg("Failed to cache catalog")
			}
		}
	}

	return names, nil
}

func (c *Catalog) fromCache(ctx context.Context, key string) ([]string, error) {
	data, err := c.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, err
	}
	return names, nil
}
