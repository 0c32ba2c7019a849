package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcpreg/internal/catalog"
	"github.com/thoreinstein/mcpreg/internal/client"
	"github.com/thoreinstein/mcpreg/internal/errors"
)

var pickClient string

func init() {
	pickCmd.Flags().StringVarP(&pickClient, "client", "c", "", "Client profile: "+strings.Join(client.Names(), ", "))
	rootCmd.AddCommand(pickCmd)
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Fuzzy-find an integration and print its configuration",
	Long: `Fuzzy-find an integration by name, category or author, with a preview of
its configuration, then print the configuration for the chosen client.`,
	Example: `  # Pick and print the Claude Desktop configuration
  mcpreg pick

  # Pick for VS Code and save it
  mcpreg pick --client "VS Code" > mcp.json

  See Also: mcpreg config, mcpreg browse`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

// finder selects an index from records; replaced in tests.
var finder = func(records []catalog.Integration, preview func(i int) string) (int, error) {
	return fuzzyfinder.Find(
		records,
		func(i int) string {
			return fmt.Sprintf("%s: %s (%s, by %s)", records[i].ID, records[i].Name, records[i].Category, records[i].Author)
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return preview(i)
		}),
	)
}

func runPick(c *cobra.Command, _ []string) error {
	st, err := parseState("", pickClient)
	if err != nil {
		return err
	}
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	return pick(c.OutOrStdout(), cat.All(), st.Client)
}

func pick(w io.Writer, records []catalog.Integration, clientName string) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "No integrations found.")
		return nil
	}
	profile, ok := client.Lookup(clientName)
	if !ok {
		profile = client.Default()
	}
	s := slugger()

	idx, err := finder(records, func(i int) string {
		r := records[i]
		return fmt.Sprintf("%s\n\n%s\n\n%s Configuration:\n%s",
			s.PackageName(r), r.Description, profile.Name, profile.RenderWith(s, r))
	})
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive pick failed")
	}

	fmt.Fprintln(w, profile.RenderWith(s, records[idx]))
	return nil
}
