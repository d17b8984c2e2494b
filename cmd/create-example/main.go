package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quantmind-br/create-example/internal/app"
	"github.com/quantmind-br/create-example/internal/config"
	"github.com/quantmind-br/create-example/internal/domain"
	"github.com/quantmind-br/create-example/internal/ui"
	"github.com/quantmind-br/create-example/internal/utils"
	"github.com/quantmind-br/create-example/pkg/version"
)

var (
	cfgFile     string
	verbose     bool
	interactive bool
	log         *utils.Logger

	// Dependencies for testing
	stdout     io.Writer = os.Stdout
	isTerminal           = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
	selectExample     = ui.SelectExample
	promptDestination = ui.PromptDestination
)

// errReported marks failures whose message was already shown to the user
var errReported = errors.New("already reported")

func main() {
	if err := rootCmd.Execute(); err != nil {
		var abort *domain.AbortError
		if !errors.As(err, &abort) && !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "create-example [example] [destination]",
	Short: "Create a project from a refine example",
	Long: `create-example downloads one example directory from the refine monorepo
into a new project directory, installs its dependencies with the package
manager that invoked it and initializes a git repository.

The example can be given by name (antd) or as a tree URL such as
https://github.com/refinedev/refine/tree/master/examples/antd.`,
	Version:       version.Short(),
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.create-example/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("branch", "b", config.DefaultBranch, "Branch to take the example from")
	rootCmd.PersistentFlags().String("org", config.DefaultOrganization, "Organization owning the examples repository")
	rootCmd.PersistentFlags().String("repo", config.DefaultRepository, "Repository holding the examples directory")

	rootCmd.Flags().Bool("no-install", false, "Skip dependency installation")
	rootCmd.Flags().Bool("no-git", false, "Skip git initialization")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick the example from a list")

	// Bind flags to viper
	_ = viper.BindPFlag("source.branch", rootCmd.PersistentFlags().Lookup("branch"))
	_ = viper.BindPFlag("source.organization", rootCmd.PersistentFlags().Lookup("org"))
	_ = viper.BindPFlag("source.repository", rootCmd.PersistentFlags().Lookup("repo"))

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// loadConfig loads configuration and the logger derived from it
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	log = utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Verbose: verbose,
	})
	return cfg, nil
}

// signalContext is cancelled on SIGINT or SIGTERM
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
			log.OrNop().Info().Msg("Shutting down gracefully...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	reporter := ui.NewTerminalReporter(stdout, isTerminal())
	defer reporter.Close()

	example := ""
	if len(args) > 0 {
		ref := app.DetectExampleRef(args[0])
		if ref.Kind == app.RefUnknown {
			return fmt.Errorf("invalid example %q: expected a name like antd or a tree URL", args[0])
		}
		applyRef(cfg, ref, cmd)
		example = ref.Example
	}

	if example == "" {
		if !interactive {
			reporter.Fail(domain.StageExists, "you must specify an example name")
			reporter.Box("No example provided", app.ExamplesHint(cfg.Source))
			return errReported
		}
		example, err = pickExample(ctx, cfg)
		if err != nil {
			return err
		}
	}

	destination, err := resolveDestination(args, example, interactive)
	if err != nil {
		return err
	}

	noInstall, _ := cmd.Flags().GetBool("no-install")
	noGit, _ := cmd.Flags().GetBool("no-git")

	orchestrator, err := app.NewOrchestrator(app.OrchestratorOptions{
		Config:    cfg,
		Logger:    log,
		Reporter:  reporter,
		NoInstall: noInstall,
		NoGit:     noGit,
	})
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}
	defer orchestrator.Close()

	_, err = orchestrator.Run(ctx, buildRequest(cfg, example, destination))
	return err
}

// applyRef copies the source coordinates of a tree URL into cfg. Flags given
// explicitly on the command line take precedence.
func applyRef(cfg *config.Config, ref app.ExampleRef, cmd *cobra.Command) {
	set := func(dst *string, value, flag string) {
		if value == "" || cmd.Flags().Changed(flag) {
			return
		}
		*dst = value
	}
	if ref.Host != "" {
		cfg.Source.Host = ref.Host
	}
	set(&cfg.Source.Organization, ref.Organization, "org")
	set(&cfg.Source.Repository, ref.Repository, "repo")
	set(&cfg.Source.Branch, ref.Branch, "branch")
}

func buildRequest(cfg *config.Config, example, destination string) domain.ExampleRequest {
	return domain.ExampleRequest{
		Organization: cfg.Source.Organization,
		Repository:   cfg.Source.Repository,
		Example:      example,
		Branch:       cfg.Source.Branch,
		Destination:  destination,
	}
}

// resolveDestination returns the absolute project directory. It defaults
// to the example name in the working directory.
func resolveDestination(args []string, example string, ask bool) (string, error) {
	dest := example
	switch {
	case len(args) > 1 && args[1] != "":
		dest = args[1]
	case ask:
		answer, err := promptDestination(example, false)
		if err != nil {
			return "", err
		}
		dest = answer
	}

	abs, err := filepath.Abs(utils.ExpandPath(dest))
	if err != nil {
		return "", fmt.Errorf("invalid destination %q: %w", dest, err)
	}
	return abs, nil
}

func pickExample(ctx context.Context, cfg *config.Config) (string, error) {
	catalog, closeCatalog, err := app.NewCatalog(cfg, log)
	if err != nil {
		return "", err
	}
	defer closeCatalog()

	names, err := catalog.List(ctx, cfg.Source.Organization, cfg.Source.Repository, cfg.Source.Branch)
	if err != nil {
		return "", fmt.Errorf("failed to list examples: %w", err)
	}
	return selectExample(names, os.Getenv("ACCESSIBLE") != "")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Full())
	},
}
