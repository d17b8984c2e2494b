package ui

import (
	"github.com/charmbracelet/huh"

	"github.com/quantmind-br/create-example/internal/config"
	"github.com/quantmind-br/create-example/internal/pkgmgr"
)

func CreateSourceForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("host").
				Title("Host").
				Description("Git host serving the examples repository").
				Value(&values.Host).
				Placeholder(config.DefaultHost).
				Validate(ValidateHost),

			huh.NewInput().
				Key("organization").
				Title("Organization").
				Value(&values.Organization).
				Placeholder(config.DefaultOrganization).
				Validate(ValidateSegment),

			huh.NewInput().
				Key("repository").
				Title("Repository").
				Value(&values.Repository).
				Placeholder(config.DefaultRepository).
				Validate(ValidateSegment),

			huh.NewInput().
				Key("branch").
				Title("Branch").
				Description("Branch the examples are downloaded from").
				Value(&values.Branch).
				Placeholder(config.DefaultBranch).
				Validate(ValidateRequired),
		),
	).WithTheme(GetTheme())
}

func CreateNetworkForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("timeout").
				Title("Download Timeout").
				Description("Timeout for the archive download (e.g., 30s, 5m)").
				Value(&values.Timeout).
				Placeholder("5m").
				Validate(ValidateDuration),

			huh.NewInput().
				Key("probe_timeout").
				Title("Probe Timeout").
				Description("Timeout for the example existence check").
				Value(&values.ProbeTimeout).
				Placeholder("10s").
				Validate(ValidateDuration),

			huh.NewInput().
				Key("retries").
				Title("Retries").
				Description("Extra attempts when the download fails (0 disables)").
				Value(&values.Retries).
				Placeholder("0").
				Validate(ValidateNonNegativeInt),

			huh.NewInput().
				Key("user_agent").
				Title("User Agent").
				Description("Leave empty for the default").
				Value(&values.UserAgent),
		),
	).WithTheme(GetTheme())
}

func CreateInstallForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("enabled").
				Title("Install Dependencies").
				Description("Run the package manager after extraction").
				Value(&values.InstallEnabled),

			huh.NewSelect[string]().
				Key("default_manager").
				Title("Default Package Manager").
				Description("Used when the invoking package manager is unknown").
				Options(huh.NewOptions(pkgmgr.Known...)...).
				Value(&values.DefaultManager).
				Validate(ValidatePackageManager),
		),
	).WithTheme(GetTheme())
}

func CreateGitForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("enabled").
				Title("Initialize Git").
				Description("Create a repository with an initial commit").
				Value(&values.GitEnabled),

			huh.NewSelect[string]().
				Key("backend").
				Title("Backend").
				Description("cli shells out to git, go-git needs no git binary").
				Options(
					huh.NewOption("git CLI", config.BackendCLI),
					huh.NewOption("go-git (embedded)", config.BackendGoGit),
				).
				Value(&values.GitBackend).
				Validate(ValidateGitBackend),

			huh.NewInput().
				Key("default_branch").
				Title("Default Branch").
				Value(&values.DefaultBranch).
				Placeholder(config.DefaultGitBranch).
				Validate(ValidateRequired),

			huh.NewInput().
				Key("commit_message").
				Title("Commit Message").
				Value(&values.CommitMessage).
				Placeholder(config.DefaultCommitMessage).
				Validate(ValidateRequired),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("author_name").
				Title("Author Name").
				Description("Only used by the go-git backend").
				Value(&values.AuthorName).
				Placeholder(config.DefaultAuthorName),

			huh.NewInput().
				Key("author_email").
				Title("Author Email").
				Value(&values.AuthorEmail).
				Placeholder(config.DefaultAuthorEmail).
				Validate(ValidateEmail),
		),
	).WithTheme(GetTheme())
}

func CreateCacheForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("enabled").
				Title("Enable Cache").
				Description("Cache the example list between runs").
				Value(&values.CacheEnabled),

			huh.NewInput().
				Key("ttl").
				Title("Cache TTL").
				Description("How long to keep the example list (e.g., 1h)").
				Value(&values.CacheTTL).
				Placeholder("1h").
				Validate(ValidateDuration),

			huh.NewInput().
				Key("directory").
				Title("Cache Directory").
				Description("Leave empty for the default location").
				Value(&values.CacheDirectory),
		),
	).WithTheme(GetTheme())
}

func CreateLoggingForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("level").
				Title("Log Level").
				Options(
					huh.NewOption("Debug", "debug"),
					huh.NewOption("Info", "info"),
					huh.NewOption("Warn", "warn"),
					huh.NewOption("Error", "error"),
					huh.NewOption("Disabled", "disabled"),
				).
				Value(&values.LogLevel).
				Validate(ValidateLogLevel),

			huh.NewSelect[string]().
				Key("format").
				Title("Log Format").
				Options(
					huh.NewOption("Pretty", "pretty"),
					huh.NewOption("JSON", "json"),
				).
				Value(&values.LogFormat).
				Validate(ValidateLogFormat),
		),
	).WithTheme(GetTheme())
}

func GetFormForCategory(categoryID string, values *ConfigValues) *huh.Form {
	switch categoryID {
	case "source":
		return CreateSourceForm(values)
	case "network":
		return CreateNetworkForm(values)
	case "install":
		return CreateInstallForm(values)
	case "git":
		return CreateGitForm(values)
	case "cache":
		return CreateCacheForm(values)
	case "logging":
		return CreateLoggingForm(values)
	default:
		return nil
	}
}
