package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Load loads configuration from file, environment, and defaults.
// Uses the global viper instance to access CLI flag bindings.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom loads configuration through the given viper instance
func LoadFrom(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(ConfigDir())
	v.AddConfigPath(".")

	// A missing config file is fine; a broken one is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("source.host", DefaultHost)
	v.SetDefault("source.organization", DefaultOrganization)
	v.SetDefault("source.repository", DefaultRepository)
	v.SetDefault("source.branch", DefaultBranch)
	v.SetDefault("source.api_url", "")
	v.SetDefault("source.codeload_url", "")

	v.SetDefault("network.timeout", DefaultTimeout)
	v.SetDefault("network.probe_timeout", DefaultProbeTimeout)
	v.SetDefault("network.retries", DefaultRetries)
	v.SetDefault("network.user_agent", "")

	v.SetDefault("archive.temp_dir", "")
	v.SetDefault("archive.temp_prefix", DefaultTempPrefix)

	v.SetDefault("install.enabled", DefaultInstallEnabled)
	v.SetDefault("install.default_manager", DefaultPackageManager)

	v.SetDefault("git.enabled", DefaultGitEnabled)
	v.SetDefault("git.backend", BackendCLI)
	v.SetDefault("git.default_branch", DefaultGitBranch)
	v.SetDefault("git.commit_message", DefaultCommitMessage)
	v.SetDefault("git.author_name", DefaultAuthorName)
	v.SetDefault("git.author_email", DefaultAuthorEmail)

	v.SetDefault("cache.enabled", DefaultCacheEnabled)
	v.SetDefault("cache.ttl", DefaultCacheTTL)
	v.SetDefault("cache.directory", CacheDir())

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}

// Save writes cfg as YAML to path, creating parent directories.
// An existing file is only replaced when overwrite is set.
func Save(cfg *Config, path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists", path)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}
