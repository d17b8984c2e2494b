package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		check   func(*testing.T, *Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			modify: func(c *Config) {},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, *Default(), *c)
			},
		},
		{
			name: "empty source falls back to defaults",
			modify: func(c *Config) {
				c.Source = SourceConfig{}
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultHost, c.Source.Host)
				assert.Equal(t, DefaultOrganization, c.Source.Organization)
				assert.Equal(t, DefaultRepository, c.Source.Repository)
				assert.Equal(t, DefaultBranch, c.Source.Branch)
			},
		},
		{
			name: "host with scheme is rejected",
			modify: func(c *Config) {
				c.Source.Host = "https://github.com"
			},
			wantErr: "invalid source.host",
		},
		{
			name: "short timeouts are repaired",
			modify: func(c *Config) {
				c.Network.Timeout = 0
				c.Network.ProbeTimeout = time.Millisecond
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultTimeout, c.Network.Timeout)
				assert.Equal(t, DefaultProbeTimeout, c.Network.ProbeTimeout)
			},
		},
		{
			name: "negative retries are rejected",
			modify: func(c *Config) {
				c.Network.Retries = -1
			},
			wantErr: "invalid network.retries",
		},
		{
			name: "unknown git backend is rejected",
			modify: func(c *Config) {
				c.Git.Backend = "svn"
			},
			wantErr: "invalid git.backend",
		},
		{
			name: "empty git settings fall back to defaults",
			modify: func(c *Config) {
				c.Git.Backend = ""
				c.Git.DefaultBranch = ""
				c.Git.CommitMessage = ""
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, BackendCLI, c.Git.Backend)
				assert.Equal(t, DefaultGitBranch, c.Git.DefaultBranch)
				assert.Equal(t, DefaultCommitMessage, c.Git.CommitMessage)
			},
		},
		{
			name: "empty temp prefix and package manager fall back",
			modify: func(c *Config) {
				c.Archive.TempPrefix = ""
				c.Install.DefaultManager = ""
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultTempPrefix, c.Archive.TempPrefix)
				assert.Equal(t, DefaultPackageManager, c.Install.DefaultManager)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestSourceConfig_URLs(t *testing.T) {
	s := Default().Source

	assert.Equal(t, "https://api.github.com", s.APIBaseURL())
	assert.Equal(t, "https://codeload.github.com", s.CodeloadBaseURL())
	assert.Equal(t, "github.com/refinedev/refine/tree/master/examples", s.TreeURL())

	s.APIURL = "https://ghe.example.com/api/v3/"
	s.CodeloadURL = "https://ghe.example.com/codeload"
	assert.Equal(t, "https://ghe.example.com/api/v3", s.APIBaseURL())
	assert.Equal(t, "https://ghe.example.com/codeload", s.CodeloadBaseURL())
}

func TestLoadFrom_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, DefaultOrganization, cfg.Source.Organization)
	assert.Equal(t, DefaultTimeout, cfg.Network.Timeout)
	assert.True(t, cfg.Install.Enabled)
	assert.Equal(t, BackendCLI, cfg.Git.Backend)
	assert.False(t, cfg.Cache.Enabled)
}

func TestLoadFrom_File(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
source:
  branch: next
network:
  retries: 2
  probe_timeout: 3s
git:
  backend: go-git
  enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v := viper.New()
	v.SetConfigFile(path)

	cfg, err := LoadFrom(v)
	require.NoError(t, err)

	assert.Equal(t, "next", cfg.Source.Branch)
	assert.Equal(t, 2, cfg.Network.Retries)
	assert.Equal(t, 3*time.Second, cfg.Network.ProbeTimeout)
	assert.Equal(t, BackendGoGit, cfg.Git.Backend)
	assert.False(t, cfg.Git.Enabled)
	// untouched keys keep their defaults
	assert.Equal(t, DefaultRepository, cfg.Source.Repository)
}

func TestLoadFrom_Env(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CREATE_EXAMPLE_SOURCE_ORGANIZATION", "acme")
	t.Setenv("CREATE_EXAMPLE_INSTALL_ENABLED", "false")

	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "acme", cfg.Source.Organization)
	assert.False(t, cfg.Install.Enabled)
}

func TestLoadFrom_BrokenFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source: [unterminated"), 0o644))

	v := viper.New()
	v.SetConfigFile(path)

	_, err := LoadFrom(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestSave(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Source.Branch = "next"
	cfg.Network.Timeout = 90 * time.Second
	require.NoError(t, Save(cfg, path, false))

	err := Save(cfg, path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	require.NoError(t, Save(cfg, path, true))

	v := viper.New()
	v.SetConfigFile(path)
	loaded, err := LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, "next", loaded.Source.Branch)
	assert.Equal(t, 90*time.Second, loaded.Network.Timeout)
}

func TestDirs(t *testing.T) {
	assert.Equal(t, filepath.Join(ConfigDir(), "config.yaml"), ConfigFilePath())
	assert.Equal(t, "create-example", filepath.Base(CacheDir()))
	assert.Equal(t, CacheDir(), Default().Cache.Directory)
}
