package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcpreg/internal/catalog"
	"github.com/thoreinstein/mcpreg/internal/client"
	"github.com/thoreinstein/mcpreg/internal/errors"
	"github.com/thoreinstein/mcpreg/internal/logging"
	"github.com/thoreinstein/mcpreg/internal/translate"
	"github.com/thoreinstein/mcpreg/pkg/fileutil"
)

var (
	configClient string
	configFormat string
	configOutput string
)

func init() {
	configCmd.Flags().StringVarP(&configClient, "client", "c", "", "Client profile: "+strings.Join(client.Names(), ", "))
	configCmd.Flags().StringVarP(&configFormat, "format", "f", "json", "Output format: json, yaml, toml")
	configCmd.Flags().StringVarP(&configOutput, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config <id|path>",
	Short: "Print an integration's client configuration",
	Long: `Print the configuration snippet that installs an integration into a
client application, as shown on the overview tab.

The snippet is rendered from the client's template with the integration's
lower-cased name and author. JSON output is the template verbatim; yaml and
toml re-encode it for clients that prefer those formats.`,
	Example: `  # Claude Desktop configuration for GitHub
  mcpreg config github

  # Cursor configuration as YAML, written to a file
  mcpreg config slack --client Cursor --format yaml --output slack.yaml

  See Also: mcpreg show, mcpreg pick`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func runConfig(c *cobra.Command, args []string) error {
	format, err := translate.ParseFormat(configFormat)
	if err != nil {
		return errors.NewUserError(err, "Valid formats: json, yaml, toml")
	}
	st, err := parseState("", configClient)
	if err != nil {
		return err
	}
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	id := catalog.IDFromSegments(catalog.Segments(args[0]))
	rec, ok := cat.Lookup(id)
	if !ok {
		return errors.NewUserError(errors.Wrapf(errors.ErrIntegrationNotFound, "%q", id), "Run: mcpreg list")
	}

	profile, _ := client.Lookup(st.Client)
	out, err := profile.RenderAs(slugger(), rec, format)
	if err != nil {
		return err
	}

	if configOutput == "" {
		fmt.Fprintln(c.OutOrStdout(), strings.TrimRight(out, "\n"))
		return nil
	}
	if err := fileutil.AtomicWriteText(configOutput, out, fileutil.DefaultFilePerm); err != nil {
		return errors.NewSystemError(errors.Wrapf(err, "writing %s", configOutput), "Check that the directory exists and is writable")
	}
	logging.FromContext(c.Context()).Info("wrote client configuration",
		"integration", rec.ID, "client", profile.Name, "path", configOutput)
	return nil
}
