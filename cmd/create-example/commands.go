package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/quantmind-br/create-example/internal/app"
	"github.com/quantmind-br/create-example/internal/config"
	"github.com/quantmind-br/create-example/internal/pkgmgr"
	"github.com/quantmind-br/create-example/internal/runner"
	"github.com/quantmind-br/create-example/internal/ui"
	"github.com/quantmind-br/create-example/internal/vcs"
)

// doctorTimeout bounds the API reachability check
const doctorTimeout = 10 * time.Second

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available examples",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		return runList(ctx, cmd.OutOrStdout(), cfg)
	},
}

func runList(ctx context.Context, out io.Writer, cfg *config.Config) error {
	catalog, closeCatalog, err := app.NewCatalog(cfg, log)
	if err != nil {
		return err
	}
	defer closeCatalog()

	names, err := catalog.List(ctx, cfg.Source.Organization, cfg.Source.Repository, cfg.Source.Branch)
	if err != nil {
		return fmt.Errorf("failed to list examples: %w", err)
	}
	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	return nil
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system dependencies",
	Long:  "Verifies the tools used after extraction and the reachability of the examples host.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), doctorTimeout)
		defer cancel()

		return runDoctor(ctx, cmd.OutOrStdout(), cfg, doctorDeps{
			Runner: runner.NewExecRunner(log),
			Head:   app.NewHTTPClient(cfg, log).Head,
			Lookup: os.LookupEnv,
		})
	},
}

type doctorDeps struct {
	Runner runner.Runner
	Head   func(ctx context.Context, url string) (int, error)
	Lookup pkgmgr.EnvLookup
}

// runDoctor prints one line per check and returns errReported when a
// critical check failed. git, hg and the package manager are optional: their
// absence only degrades a run.
func runDoctor(ctx context.Context, out io.Writer, cfg *config.Config, deps doctorDeps) error {
	fmt.Fprintln(out, "Checking system dependencies...")
	allPassed := true

	// Check 1: examples host
	fmt.Fprint(out, "  Examples API: ")
	apiURL := cfg.Source.APIBaseURL()
	if status, err := deps.Head(ctx, apiURL); err != nil {
		fmt.Fprintf(out, "FAILED (%v)\n", err)
		allPassed = false
	} else if status >= 400 {
		fmt.Fprintf(out, "FAILED (HTTP %d from %s)\n", status, apiURL)
		allPassed = false
	} else {
		fmt.Fprintf(out, "OK (%s)\n", apiURL)
	}

	// Check 2: git
	fmt.Fprint(out, "  git: ")
	switch {
	case cfg.Git.Backend == config.BackendGoGit:
		fmt.Fprintln(out, "OK (embedded go-git backend)")
	case vcs.NewCLIClient(deps.Runner).Available(ctx, "."):
		path, _ := deps.Runner.LookPath("git")
		fmt.Fprintf(out, "OK (%s)\n", path)
	default:
		fmt.Fprintln(out, "NOT FOUND (repository initialization will be skipped)")
	}

	// Check 3: Mercurial, only used to avoid nesting a repository
	fmt.Fprint(out, "  hg: ")
	if path, err := deps.Runner.LookPath("hg"); err == nil {
		fmt.Fprintf(out, "OK (%s)\n", path)
	} else {
		fmt.Fprintln(out, "not installed")
	}

	// Check 4: package manager
	pm := pkgmgr.NewResolver(deps.Lookup, cfg.Install.DefaultManager).Resolve()
	fmt.Fprintf(out, "  Package manager: %s ", pm)
	if path, err := deps.Runner.LookPath(pm.Name); err == nil {
		fmt.Fprintf(out, "OK (%s)\n", path)
	} else {
		fmt.Fprintln(out, "NOT FOUND (dependencies will not be installed)")
	}

	fmt.Fprintln(out)
	if !allPassed {
		fmt.Fprintln(out, "Some checks failed. Please resolve the issues above.")
		return errReported
	}
	fmt.Fprintln(out, "All critical checks passed!")
	return nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath()
		force, _ := cmd.Flags().GetBool("force")
		if err := config.Save(config.Default(), path, force); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
		return nil
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the configuration interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		path := configPath()
		return ui.RunConfigEditor(ui.EditorOptions{
			Config: cfg,
			SaveFunc: func(c *config.Config) error {
				return config.Save(c, path, true)
			},
			Accessible: os.Getenv("ACCESSIBLE") != "",
		})
	},
}

func init() {
	configInitCmd.Flags().BoolP("force", "f", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configEditCmd)
}

// configPath is the file written by the config commands
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.ConfigFilePath()
}
