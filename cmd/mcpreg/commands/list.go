package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcpreg/internal/view"
)

var (
	listFeatured bool
	listJSON     bool
)

func init() {
	listCmd.Flags().BoolVar(&listFeatured, "featured", false, "Only list featured integrations")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog integrations",
	Long: `List the integrations of the catalog page.

Without flags, prints the featured section followed by every integration,
in catalog order.`,
	Example: `  # List everything
  mcpreg list

  # Featured only, as JSON
  mcpreg list --featured --json

  See Also: mcpreg show`,
	Args: cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		resolver, err := newResolver()
		if err != nil {
			return err
		}
		return runList(c.OutOrStdout(), resolver.CatalogPage())
	},
}

// listItem is a card in JSON output.
type listItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Author      string `json:"author"`
	Stars       int    `json:"stars"`
	Path        string `json:"path"`
}

func runList(w io.Writer, page view.CatalogPage) error {
	if listJSON {
		cards := page.All
		if listFeatured {
			cards = page.Featured
		}
		items := make([]listItem, 0, len(cards))
		for _, c := range cards {
			items = append(items, listItem{
				ID:          c.ID,
				Name:        c.Name,
				Description: c.Description,
				Category:    c.Category,
				Author:      c.Author,
				Stars:       c.Stars,
				Path:        c.Href,
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	printCards(w, "Featured Integrations", page.Featured)
	if !listFeatured {
		fmt.Fprintln(w)
		printCards(w, "All Integrations", page.All)
	}
	return nil
}

func printCards(w io.Writer, title string, cards []view.Card) {
	heading := color.New(color.FgCyan, color.Bold)
	heading.Fprintln(w, title)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tSTARS\tAUTHOR")
	for _, c := range cards {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", c.ID, c.Name, c.Category, c.Stars, c.Author)
	}
	tw.Flush()
}
