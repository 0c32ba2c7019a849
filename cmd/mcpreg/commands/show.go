package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcpreg/internal/catalog"
	"github.com/thoreinstein/mcpreg/internal/client"
	"github.com/thoreinstein/mcpreg/internal/errors"
	"github.com/thoreinstein/mcpreg/internal/view"
)

var (
	showTab    string
	showClient string
	showJSON   bool
)

func init() {
	showCmd.Flags().StringVarP(&showTab, "tab", "t", string(view.TabOverview), "Tab to show: overview, tools, api")
	showCmd.Flags().StringVarP(&showClient, "client", "c", "", "Client profile: "+strings.Join(client.Names(), ", "))
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <id|path>",
	Short: "Show an integration's detail view",
	Long: `Show the detail view of an integration.

The argument is an identifier or a full detail path; only the last path
segment is used for lookup, so /server/@github/github-mcp-server/github
and github are equivalent. Unknown identifiers print the not-found page
and exit with status 1.`,
	Example: `  # Overview with the Claude Desktop configuration
  mcpreg show github

  # Tools tab
  mcpreg show /server/@slack/slack-mcp-server/slack --tab tools

  # Overview with the VS Code configuration
  mcpreg show postgres --client "VS Code"

  See Also: mcpreg config, mcpreg list`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(c *cobra.Command, args []string) error {
	st, err := parseState(showTab, showClient)
	if err != nil {
		return err
	}
	resolver, err := newResolver()
	if err != nil {
		return err
	}

	w := c.OutOrStdout()
	page, ok := resolver.Detail(catalog.Segments(args[0]), st)
	if !ok {
		printNotFound(w)
		return errors.NewUserError(
			errors.Wrapf(errors.ErrIntegrationNotFound, "%q", catalog.IDFromSegments(catalog.Segments(args[0]))),
			"Run: mcpreg list",
		)
	}

	if showJSON {
		return writeDetailJSON(w, page)
	}
	printDetail(w, page)
	return nil
}

// parseState builds a State from flag values. Empty values keep the
// initial tab and the configured default client.
func parseState(tab, clientName string) (view.State, error) {
	st := defaultState()

	if tab != "" {
		t, err := view.ParseTab(tab)
		if err != nil {
			return st, errors.NewUserError(err, "Valid tabs: overview, tools, api")
		}
		_ = st.SelectTab(t)
	}

	if clientName != "" {
		if err := st.SelectClient(clientName); err != nil {
			return st, errors.NewUserError(err, "Valid clients: "+strings.Join(client.Names(), ", "))
		}
	}
	return st, nil
}

func printNotFound(w io.Writer) {
	color.New(color.Bold).Fprintln(w, view.NotFoundTitle)
	fmt.Fprintln(w, view.NotFoundMessage)
	fmt.Fprintf(w, "%s: /\n", view.NotFoundLink)
}

// detailJSON is the machine-readable detail view.
type detailJSON struct {
	Integration catalog.Integration `json:"integration"`
	PackageName string              `json:"packageName"`
	Tab         string              `json:"tab"`
	Client      string              `json:"client"`
	Stats       map[string]string   `json:"stats"`
	Config      string              `json:"config,omitempty"`
	Tools       []view.ToolDoc      `json:"tools,omitempty"`
	API         string              `json:"api,omitempty"`
}

func writeDetailJSON(w io.Writer, p view.DetailPage) error {
	out := detailJSON{
		Integration: p.Integration,
		PackageName: p.PackageName,
		Tab:         string(p.State.Tab),
		Client:      p.State.Client,
		Stats: map[string]string{
			"monthlyToolCalls": p.Stats.MonthlyToolCalls,
			"successRate":      p.Stats.SuccessRate,
			"license":          p.Stats.License,
			"published":        p.Stats.Published,
			"category":         p.Stats.Category,
		},
	}
	switch p.State.Tab {
	case view.TabTools:
		out.Tools = p.ToolDocs
	case view.TabAPI:
		out.API = p.API
	default:
		out.Config = p.Config
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printDetail(w io.Writer, p view.DetailPage) {
	bold := color.New(color.Bold)
	dim := color.New(color.FgHiBlack)
	accent := color.New(color.FgCyan, color.Bold)
	code := color.New(color.FgGreen)

	dim.Fprintf(w, "Home › Servers › %s\n\n", p.PackageName)
	bold.Fprintln(w, p.PackageName)
	fmt.Fprintln(w, p.Integration.LongDescription)
	fmt.Fprintln(w)

	if p.Homepage != "" {
		fmt.Fprintf(w, "Homepage: %s\n", p.Homepage)
	}
	fmt.Fprintf(w, "GitHub:   %s\n\n", p.GitHubURL)

	fmt.Fprintf(w, "Monthly Tool Calls  %s\n", color.GreenString(p.Stats.MonthlyToolCalls))
	fmt.Fprintf(w, "Success Rate        %s\n", color.BlueString(p.Stats.SuccessRate))
	fmt.Fprintf(w, "License             %s\n", p.Stats.License)
	fmt.Fprintf(w, "Published           %s\n", p.Stats.Published)
	fmt.Fprintf(w, "Category            %s\n\n", p.Stats.Category)

	var tabs []string
	for _, t := range p.Tabs {
		if t.Active {
			tabs = append(tabs, "["+t.Label+"]")
		} else {
			tabs = append(tabs, " "+t.Label+" ")
		}
	}
	fmt.Fprintln(w, strings.Join(tabs, " "))
	fmt.Fprintln(w)

	switch p.State.Tab {
	case view.TabTools:
		accent.Fprintln(w, "Tools")
		for _, d := range p.ToolDocs {
			fmt.Fprintln(w)
			bold.Fprintln(w, d.Name)
			fmt.Fprintln(w, d.Description)
			code.Fprintln(w, "  "+d.Comment)
			code.Fprintln(w, "  "+d.Call)
		}
	case view.TabAPI:
		accent.Fprintln(w, "API Reference")
		fmt.Fprintln(w, "Model Context Protocol Interface")
		fmt.Fprintln(w)
		code.Fprintln(w, p.API)
	default:
		accent.Fprintln(w, "Install")
		var clients []string
		for _, cl := range p.Clients {
			if cl.Active {
				clients = append(clients, "["+cl.Name+"]")
			} else {
				clients = append(clients, " "+cl.Name+" ")
			}
		}
		fmt.Fprintln(w, strings.Join(clients, " "))
		fmt.Fprintln(w)
		bold.Fprintln(w, p.ConfigTitle)
		code.Fprintln(w, p.Config)
		fmt.Fprintln(w)
		accent.Fprintln(w, "Available Tools")
		for _, t := range p.Tools {
			fmt.Fprintf(w, "  %s  %s\n", t.Name, dim.Sprint(t.Summary))
		}
	}
}
