package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcpreg/internal/tui"
)

func init() {
	rootCmd.AddCommand(browseCmd)
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	Long: `Open the catalog in an interactive terminal browser.

Keys:
  j/k, arrows   move
  enter         open the detail view
  tab, 1-3      switch tabs
  c             cycle client profiles
  y             copy the configuration to the clipboard
  esc           back to the catalog
  q             quit`,
	Args: cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		resolver, err := newResolver()
		if err != nil {
			return err
		}
		return tui.Run(c.Context(), resolver)
	},
}
