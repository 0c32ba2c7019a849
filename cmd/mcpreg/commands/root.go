// Package commands implements the CLI commands for mcpreg.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcpreg/cmd"
	"github.com/thoreinstein/mcpreg/internal/catalog"
	"github.com/thoreinstein/mcpreg/internal/config"
	"github.com/thoreinstein/mcpreg/internal/errors"
	"github.com/thoreinstein/mcpreg/internal/logging"
	"github.com/thoreinstein/mcpreg/internal/view"
)

// DebugEnv raises verbosity when no -v flag is given: 1/true for debug,
// 2 for trace.
const DebugEnv = "MCPREG_DEBUG"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configPath holds the value of the --config flag.
var configPath string

// appConfig is the configuration loaded before any subcommand runs.
var appConfig *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default: ./config.yaml or $XDG_CONFIG_HOME/mcpreg/config.yaml)")

	rootCmd.Version = cmd.Summary()
	rootCmd.SetVersionTemplate("mcpreg version {{.Version}}\n")

	// Silence errors and usage so main controls error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	appConfig, configLoadErr = config.Load(configPath)
}

var rootCmd = &cobra.Command{
	Use:   "mcpreg",
	Short: "Browse the MCP Registry catalog",
	Long: `mcpreg is a catalog of Model Context Protocol integrations.

It serves the registry's catalog and detail pages over HTTP, and renders the
same views in the terminal: list integrations, show an integration's
overview, tools and API tabs, and print the configuration snippet for
Claude Desktop, VS Code or Cursor.`,
	Example: `  # Serve the web catalog
  mcpreg serve --addr :8080

  # List featured integrations
  mcpreg list --featured

  # Show the tools tab of an integration
  mcpreg show github --tab tools

  # Print the Cursor configuration as YAML
  mcpreg config postgres --client Cursor --format yaml

  See Also: mcpreg init, mcpreg browse`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "Pass either -q or -v")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		if v == 0 {
			if val, ok := os.LookupEnv(DebugEnv); ok {
				switch val {
				case "1", "true":
					v = 2
				case "2":
					v = 3
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{Level: level}

	var primary slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primary = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primary = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handler := primary
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "Check the --log-file path")
		}
		handler = logging.NewMultiHandler(primary, slog.NewJSONHandler(f, opts))
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))
	return nil
}

// checkConfig surfaces config load errors, except for commands that must
// work without a valid config.
func checkConfig(cmd *cobra.Command) error {
	switch cmd.Name() {
	case "help", "version", "init", "gen-doc":
		return nil
	}
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	return nil
}

// currentConfig returns the loaded config, or defaults when loading was
// skipped.
func currentConfig() *config.Config {
	if appConfig == nil {
		return config.Default()
	}
	return appConfig
}

// slugger returns the author slug policy from config.
func slugger() catalog.Slugger {
	return catalog.Slugger{SanitizeAuthor: currentConfig().Slug.SanitizeAuthor}
}

// loadCatalog returns the configured catalog file, or the built-in table.
func loadCatalog() (*catalog.Catalog, error) {
	path := currentConfig().CatalogFile
	if path == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.LoadFile(path)
	if err != nil {
		return nil, errors.NewUserError(err, "Run: mcpreg validate "+path)
	}
	return c, nil
}

// newResolver builds the view resolver from config.
func newResolver() (*view.Resolver, error) {
	c, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	return view.NewResolver(c, slugger()), nil
}

// defaultState is the initial detail selection, honoring default_client.
func defaultState() view.State {
	st := view.NewState()
	if name := currentConfig().DefaultClient; name != "" {
		_ = st.SelectClient(name)
	}
	return st
}

// PrintError writes err and any suggestion for the user.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", color.RedString("Error:"), err)
	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintf(w, "%s\n", exitErr.Suggestion)
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
