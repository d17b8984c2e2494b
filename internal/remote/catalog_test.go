package remote_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/quantmind-br/create-example/internal/cache"
	"github.com/quantmind-br/create-example/internal/domain"
	"github.com/quantmind-br/create-example/internal/fetcher"
	"github.com/quantmind-br/create-example/internal/mocks"
	"github.com/quantmind-br/create-example/internal/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const listing = `[
	{"name": "tutorial", "path": "examples/tutorial", "type": "dir"},
	{"name": "README.md", "path": "examples/README.md", "type": "file"},
	{"name": "antd", "path": "examples/antd", "type": "dir"}
]`

func listingServer(t *testing.T, calls *int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		assert.Equal(t, "/repos/refinedev/refine/contents/examples", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(listing))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCatalog_List_DirectoriesOnly(t *testing.T) {
	calls := 0
	server := listingServer(t, &calls)

	catalog := remote.NewCatalog(remote.CatalogOptions{
		Client:     fetcher.NewClient(fetcher.ClientOptions{HTTPClient: server.Client()}),
		APIBaseURL: server.URL,
	})

	names, err := catalog.List(context.Background(), "refinedev", "refine", "master")
	require.NoError(t, err)
	assert.Equal(t, []string{"antd", "tutorial"}, names)
	assert.Equal(t, 1, calls)
}

func TestCatalog_List_UsesCache(t *testing.T) {
	calls := 0
	server := listingServer(t, &calls)

	c, err := cache.NewBadgerCache(cache.Options{InMemory: true})
	require.NoError(t, err)
	defer c.Close()

	catalog := remote.NewCatalog(remote.CatalogOptions{
		Client:     fetcher.NewClient(fetcher.ClientOptions{HTTPClient: server.Client()}),
		Cache:      c,
		CacheTTL:   time.Hour,
		Host:       "github.com",
		APIBaseURL: server.URL,
	})

	first, err := catalog.List(context.Background(), "refinedev", "refine", "master")
	require.NoError(t, err)
	second, err := catalog.List(context.Background(), "refinedev", "refine", "master")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
	assert.True(t, c.Has(context.Background(), cache.CatalogKey("github.com", "refinedev", "refine", "master")))
}

func TestCatalog_List_CacheErrorsAreIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := mocks.NewMockCache(ctrl)

	calls := 0
	server := listingServer(t, &calls)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("corrupt"))
	mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), time.Minute).Return(errors.New("read-only"))

	catalog := remote.NewCatalog(remote.CatalogOptions{
		Client:     fetcher.NewClient(fetcher.ClientOptions{HTTPClient: server.Client()}),
		Cache:      mockCache,
		CacheTTL:   time.Minute,
		APIBaseURL: server.URL,
	})

	names, err := catalog.List(context.Background(), "refinedev", "refine", "master")
	require.NoError(t, err)
	assert.Equal(t, []string{"antd", "tutorial"}, names)
}

func TestCatalog_List_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	catalog := remote.NewCatalog(remote.CatalogOptions{
		Client:     fetcher.NewClient(fetcher.ClientOptions{HTTPClient: server.Client()}),
		APIBaseURL: server.URL,
	})

	_, err := catalog.List(context.Background(), "refinedev", "refine", "nope")
	require.Error(t, err)

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
}
