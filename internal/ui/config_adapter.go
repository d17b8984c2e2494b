package ui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/quantmind-br/create-example/internal/config"
)

// ConfigValues holds the editable form state. Numbers and durations are
// kept as strings so huh inputs can bind to them directly.
type ConfigValues struct {
	Host         string
	Organization string
	Repository   string
	Branch       string

	Timeout      string
	ProbeTimeout string
	Retries      string
	UserAgent    string

	InstallEnabled bool
	DefaultManager string

	GitEnabled    bool
	GitBackend    string
	DefaultBranch string
	CommitMessage string
	AuthorName    string
	AuthorEmail   string

	CacheEnabled   bool
	CacheTTL       string
	CacheDirectory string

	LogLevel  string
	LogFormat string

	// base carries settings the editor does not expose
	base config.Config
}

// FromConfig creates ConfigValues from a Config struct
func FromConfig(cfg *config.Config) *ConfigValues {
	return &ConfigValues{
		Host:         cfg.Source.Host,
		Organization: cfg.Source.Organization,
		Repository:   cfg.Source.Repository,
		Branch:       cfg.Source.Branch,

		Timeout:      formatDuration(cfg.Network.Timeout),
		ProbeTimeout: formatDuration(cfg.Network.ProbeTimeout),
		Retries:      strconv.Itoa(cfg.Network.Retries),
		UserAgent:    cfg.Network.UserAgent,

		InstallEnabled: cfg.Install.Enabled,
		DefaultManager: cfg.Install.DefaultManager,

		GitEnabled:    cfg.Git.Enabled,
		GitBackend:    cfg.Git.Backend,
		DefaultBranch: cfg.Git.DefaultBranch,
		CommitMessage: cfg.Git.CommitMessage,
		AuthorName:    cfg.Git.AuthorName,
		AuthorEmail:   cfg.Git.AuthorEmail,

		CacheEnabled:   cfg.Cache.Enabled,
		CacheTTL:       formatDuration(cfg.Cache.TTL),
		CacheDirectory: cfg.Cache.Directory,

		LogLevel:  cfg.Logging.Level,
		LogFormat: cfg.Logging.Format,

		base: *cfg,
	}
}

// ToConfig converts ConfigValues back to a validated Config struct
func (v *ConfigValues) ToConfig() (*config.Config, error) {
	timeout, err := parseDurationOrDefault(v.Timeout, config.DefaultTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid timeout: %w", err)
	}

	probeTimeout, err := parseDurationOrDefault(v.ProbeTimeout, config.DefaultProbeTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid probe_timeout: %w", err)
	}

	retries, err := parseIntOrDefault(v.Retries, config.DefaultRetries)
	if err != nil {
		return nil, fmt.Errorf("invalid retries: %w", err)
	}

	cacheTTL, err := parseDurationOrDefault(v.CacheTTL, config.DefaultCacheTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid cache_ttl: %w", err)
	}

	cfg := v.base
	cfg.Source.Host = v.Host
	cfg.Source.Organization = v.Organization
	cfg.Source.Repository = v.Repository
	cfg.Source.Branch = v.Branch

	cfg.Network = config.NetworkConfig{
		Timeout:      timeout,
		ProbeTimeout: probeTimeout,
		Retries:      retries,
		UserAgent:    v.UserAgent,
	}
	cfg.Install = config.InstallConfig{
		Enabled:        v.InstallEnabled,
		DefaultManager: v.DefaultManager,
	}
	cfg.Git = config.GitConfig{
		Enabled:       v.GitEnabled,
		Backend:       v.GitBackend,
		DefaultBranch: v.DefaultBranch,
		CommitMessage: v.CommitMessage,
		AuthorName:    v.AuthorName,
		AuthorEmail:   v.AuthorEmail,
	}
	cfg.Cache = config.CacheConfig{
		Enabled:   v.CacheEnabled,
		TTL:       cacheTTL,
		Directory: v.CacheDirectory,
	}
	cfg.Logging = config.LoggingConfig{
		Level:  v.LogLevel,
		Format: v.LogFormat,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func formatDuration(d time.Duration) string {
	if d == 0 {
		return ""
	}
	return d.String()
}

func parseDurationOrDefault(s string, defaultVal time.Duration) (time.Duration, error) {
	if s == "" {
		return defaultVal, nil
	}
	return time.ParseDuration(s)
}

func parseIntOrDefault(s string, defaultVal int) (int, error) {
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}
