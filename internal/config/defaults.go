package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default values
const (
	DefaultHost         = "github.com"
	DefaultOrganization = "refinedev"
	DefaultRepository   = "refine"
	DefaultBranch       = "master"

	DefaultTimeout      = 5 * time.Minute
	DefaultProbeTimeout = 10 * time.Second
	DefaultRetries      = 0

	DefaultTempPrefix = ".refine-example.temp"

	DefaultInstallEnabled = true
	DefaultPackageManager = "npm"

	DefaultGitEnabled    = true
	DefaultGitBranch     = "main"
	DefaultCommitMessage = "Initial commit from create-example"
	DefaultAuthorName    = "create-example"
	DefaultAuthorEmail   = "create-example@users.noreply.github.com"

	DefaultCacheEnabled = false
	DefaultCacheTTL     = time.Hour

	DefaultLogLevel  = "warn"
	DefaultLogFormat = "pretty"
)

// EnvPrefix is the prefix of environment overrides, e.g. CREATE_EXAMPLE_SOURCE_BRANCH
const EnvPrefix = "CREATE_EXAMPLE"

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".create-example"
	}
	return filepath.Join(home, ".create-example")
}

// CacheDir returns the cache directory path, under the XDG cache home
func CacheDir() string {
	return filepath.Join(xdg.CacheHome, "create-example")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			Host:         DefaultHost,
			Organization: DefaultOrganization,
			Repository:   DefaultRepository,
			Branch:       DefaultBranch,
		},
		Network: NetworkConfig{
			Timeout:      DefaultTimeout,
			ProbeTimeout: DefaultProbeTimeout,
			Retries:      DefaultRetries,
		},
		Archive: ArchiveConfig{
			TempPrefix: DefaultTempPrefix,
		},
		Install: InstallConfig{
			Enabled:        DefaultInstallEnabled,
			DefaultManager: DefaultPackageManager,
		},
		Git: GitConfig{
			Enabled:       DefaultGitEnabled,
			Backend:       BackendCLI,
			DefaultBranch: DefaultGitBranch,
			CommitMessage: DefaultCommitMessage,
			AuthorName:    DefaultAuthorName,
			AuthorEmail:   DefaultAuthorEmail,
		},
		Cache: CacheConfig{
			Enabled:   DefaultCacheEnabled,
			TTL:       DefaultCacheTTL,
			Directory: CacheDir(),
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
