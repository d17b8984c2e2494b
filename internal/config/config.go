package config

import (
	"fmt"
	"strings"
	"time"
)

// Config represents the application configuration
type Config struct {
	Source  SourceConfig  `mapstructure:"source" yaml:"source"`
	Network NetworkConfig `mapstructure:"network" yaml:"network"`
	Archive ArchiveConfig `mapstructure:"archive" yaml:"archive"`
	Install InstallConfig `mapstructure:"install" yaml:"install"`
	Git     GitConfig     `mapstructure:"git" yaml:"git"`
	Cache   CacheConfig   `mapstructure:"cache" yaml:"cache"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// SourceConfig identifies the monorepo that hosts the examples
type SourceConfig struct {
	Host         string `mapstructure:"host" yaml:"host"`
	Organization string `mapstructure:"organization" yaml:"organization"`
	Repository   string `mapstructure:"repository" yaml:"repository"`
	Branch       string `mapstructure:"branch" yaml:"branch"`
	// APIURL and CodeloadURL replace the URLs derived from Host, e.g. for
	// a GitHub Enterprise instance
	APIURL      string `mapstructure:"api_url" yaml:"api_url,omitempty"`
	CodeloadURL string `mapstructure:"codeload_url" yaml:"codeload_url,omitempty"`
}

// NetworkConfig contains HTTP settings
type NetworkConfig struct {
	Timeout      time.Duration `mapstructure:"timeout" yaml:"timeout"`
	ProbeTimeout time.Duration `mapstructure:"probe_timeout" yaml:"probe_timeout"`
	// Retries is the number of extra attempts of the whole download+extract
	// stage. Zero keeps the single-attempt behavior.
	Retries   int    `mapstructure:"retries" yaml:"retries"`
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`
}

// ArchiveConfig contains temporary archive settings
type ArchiveConfig struct {
	TempDir    string `mapstructure:"temp_dir" yaml:"temp_dir"` // empty means the working directory
	TempPrefix string `mapstructure:"temp_prefix" yaml:"temp_prefix"`
}

// InstallConfig contains dependency install settings
type InstallConfig struct {
	Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
	DefaultManager string `mapstructure:"default_manager" yaml:"default_manager"`
}

// GitConfig contains repository initialization settings
type GitConfig struct {
	Enabled       bool   `mapstructure:"enabled" yaml:"enabled"`
	Backend       string `mapstructure:"backend" yaml:"backend"`
	DefaultBranch string `mapstructure:"default_branch" yaml:"default_branch"`
	CommitMessage string `mapstructure:"commit_message" yaml:"commit_message"`
	AuthorName    string `mapstructure:"author_name" yaml:"author_name"`
	AuthorEmail   string `mapstructure:"author_email" yaml:"author_email"`
}

// CacheConfig contains catalog cache settings
type CacheConfig struct {
	Enabled   bool          `mapstructure:"enabled" yaml:"enabled"`
	TTL       time.Duration `mapstructure:"ttl" yaml:"ttl"`
	Directory string        `mapstructure:"directory" yaml:"directory"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Git backends
const (
	BackendCLI   = "cli"
	BackendGoGit = "go-git"
)

// Validate validates the configuration, repairing values that have a safe default
func (c *Config) Validate() error {
	if c.Source.Host == "" {
		c.Source.Host = DefaultHost
	}
	if c.Source.Organization == "" {
		c.Source.Organization = DefaultOrganization
	}
	if c.Source.Repository == "" {
		c.Source.Repository = DefaultRepository
	}
	if c.Source.Branch == "" {
		c.Source.Branch = DefaultBranch
	}
	if strings.ContainsAny(c.Source.Host, "/:") {
		return fmt.Errorf("invalid source.host %q: expected a bare host name", c.Source.Host)
	}
	if c.Network.Timeout < time.Second {
		c.Network.Timeout = DefaultTimeout
	}
	if c.Network.ProbeTimeout < time.Second {
		c.Network.ProbeTimeout = DefaultProbeTimeout
	}
	if c.Network.Retries < 0 {
		return fmt.Errorf("invalid network.retries %d: must not be negative", c.Network.Retries)
	}
	if c.Archive.TempPrefix == "" {
		c.Archive.TempPrefix = DefaultTempPrefix
	}
	if c.Install.DefaultManager == "" {
		c.Install.DefaultManager = DefaultPackageManager
	}
	switch c.Git.Backend {
	case "":
		c.Git.Backend = BackendCLI
	case BackendCLI, BackendGoGit:
	default:
		return fmt.Errorf("invalid git.backend %q: expected %q or %q", c.Git.Backend, BackendCLI, BackendGoGit)
	}
	if c.Git.DefaultBranch == "" {
		c.Git.DefaultBranch = DefaultGitBranch
	}
	if c.Git.CommitMessage == "" {
		c.Git.CommitMessage = DefaultCommitMessage
	}
	if c.Cache.TTL < time.Minute {
		c.Cache.TTL = DefaultCacheTTL
	}
	return nil
}

// APIBaseURL returns the metadata API root, e.g. https://api.github.com
func (s SourceConfig) APIBaseURL() string {
	if s.APIURL != "" {
		return strings.TrimRight(s.APIURL, "/")
	}
	return "https://api." + s.Host
}

// CodeloadBaseURL returns the archive host root, e.g. https://codeload.github.com
func (s SourceConfig) CodeloadBaseURL() string {
	if s.CodeloadURL != "" {
		return strings.TrimRight(s.CodeloadURL, "/")
	}
	return "https://codeload." + s.Host
}

// TreeURL returns the browsable examples directory, for user-facing hints
func (s SourceConfig) TreeURL() string {
	return fmt.Sprintf("%s/%s/%s/tree/%s/examples", s.Host, s.Organization, s.Repository, s.Branch)
}
