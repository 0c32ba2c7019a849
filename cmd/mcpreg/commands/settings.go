package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/mcpreg/internal/config"
	"github.com/thoreinstein/mcpreg/internal/editor"
	"github.com/thoreinstein/mcpreg/internal/errors"
	"github.com/thoreinstein/mcpreg/internal/paths"
	"github.com/thoreinstein/mcpreg/pkg/fileutil"
)

func init() {
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsListCmd)
	settingsCmd.AddCommand(settingsPathCmd)
	settingsCmd.AddCommand(settingsEditCmd)
	rootCmd.AddCommand(settingsCmd)
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect mcpreg configuration",
	Long: `Inspect the effective mcpreg configuration: file values merged with
defaults and MCPREG_* environment overrides.

Without a subcommand, lists all values.`,
	Example: `  # List everything
  mcpreg settings

  # One value
  mcpreg settings get server.addr

  See Also: mcpreg init`,
	RunE: func(c *cobra.Command, _ []string) error {
		return listSettings(c.OutOrStdout())
	},
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a configuration value",
	Long:  `Print a single configuration value. Nested keys use dots, e.g. server.addr.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return getSetting(c.OutOrStdout(), args[0])
	},
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values as YAML",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		return listSettings(c.OutOrStdout())
	},
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file in use",
	Args:  cobra.NoArgs,
	Run: func(c *cobra.Command, _ []string) {
		path := config.FileUsed()
		if path == "" {
			path = paths.ConfigFile() + " (not created)"
		}
		fmt.Fprintln(c.OutOrStdout(), path)
	},
}

var settingsEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the configuration file in $EDITOR",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		path := config.FileUsed()
		if path == "" {
			path = paths.ConfigFile()
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return errors.NewUserError(errors.Newf("config file not found at %s", path), "Run: mcpreg init")
		}
		fmt.Fprintf(c.OutOrStdout(), "Location: %s\n", path)
		return editor.Open(path)
	},
}

func getSetting(w io.Writer, key string) error {
	if !viper.IsSet(key) {
		return errors.NewUserError(errors.Newf("unknown setting %q", key), "Run: mcpreg settings list")
	}
	fmt.Fprintln(w, viper.GetString(key))
	return nil
}

func listSettings(w io.Writer) error {
	data, err := fileutil.MarshalYAML(newConfigFile(currentConfig()))
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return errors.Wrap(err, "writing settings")
}
