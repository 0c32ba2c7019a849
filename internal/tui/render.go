package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thoreinstein/mcpreg/internal/view"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	metaStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	activeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true).Underline(true)
	codeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	starStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	frameStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(1, 2)
)

// View implements tea.Model.
func (m Model) View() string {
	var body, help string
	if m.screen == ScreenDetail {
		body = renderDetail(m.detail)
		help = "tab/1-3: tab  c: client  y: copy config  esc: back  q: quit"
	} else {
		body = renderCatalog(m.page, m.entries, m.cursor)
		help = "j/k: move  enter: open  q: quit"
	}

	lines := []string{frameStyle.Render(body)}
	if m.status != "" {
		lines = append(lines, m.status)
	}
	lines = append(lines, footerStyle.Render(help))
	return strings.Join(lines, "\n")
}

func renderCatalog(page view.CatalogPage, entries []entry, cursor int) string {
	lines := []string{titleStyle.Render(page.Title), metaStyle.Render(page.Tagline)}

	var cats []string
	for _, c := range page.Categories {
		if c.Active {
			cats = append(cats, activeStyle.Render(c.Name))
		} else {
			cats = append(cats, c.Name)
		}
	}
	lines = append(lines, "", strings.Join(cats, "  "))

	if len(entries) == 0 {
		lines = append(lines, "", "(no integrations)")
		return strings.Join(lines, "\n")
	}

	section := ""
	for i, e := range entries {
		if e.section != section {
			section = e.section
			lines = append(lines, "", sectionStyle.Render(section))
		}
		prefix := "  "
		if i == cursor {
			prefix = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%s %s  %s  %s",
			prefix,
			e.card.Name,
			starStyle.Render(fmt.Sprintf("★ %d", e.card.Stars)),
			metaStyle.Render(e.card.Category),
			metaStyle.Render("by "+e.card.Author),
		))
		lines = append(lines, "    "+e.card.Description)
	}
	return strings.Join(lines, "\n")
}

func renderDetail(p view.DetailPage) string {
	lines := []string{
		metaStyle.Render("Home › Servers › " + p.PackageName),
		"",
		titleStyle.Render(p.PackageName),
		p.Integration.LongDescription,
		"",
	}

	var links []string
	if p.Homepage != "" {
		links = append(links, "Homepage: "+p.Homepage)
	}
	links = append(links, "GitHub: "+p.GitHubURL)
	lines = append(lines, metaStyle.Render(strings.Join(links, "  ")))

	lines = append(lines, "",
		fmt.Sprintf("Monthly Tool Calls: %s   Success Rate: %s", p.Stats.MonthlyToolCalls, p.Stats.SuccessRate),
		fmt.Sprintf("License: %s   Published: %s   Category: %s", p.Stats.License, p.Stats.Published, p.Stats.Category),
		"",
	)

	var tabs []string
	for i, t := range p.Tabs {
		label := fmt.Sprintf("%d %s", i+1, t.Label)
		if t.Active {
			label = activeStyle.Render(label)
		}
		tabs = append(tabs, label)
	}
	lines = append(lines, strings.Join(tabs, "   "), "")

	switch p.State.Tab {
	case view.TabTools:
		lines = append(lines, sectionStyle.Render("Tools"))
		for _, d := range p.ToolDocs {
			lines = append(lines, "", titleStyle.Render(d.Name), d.Description,
				codeStyle.Render(d.Comment), codeStyle.Render(d.Call))
		}
	case view.TabAPI:
		lines = append(lines,
			sectionStyle.Render("API Reference"),
			"Model Context Protocol Interface",
			"",
			codeStyle.Render(p.API),
		)
	default:
		var clients []string
		for _, c := range p.Clients {
			if c.Active {
				clients = append(clients, activeStyle.Render(c.Name))
			} else {
				clients = append(clients, c.Name)
			}
		}
		lines = append(lines,
			sectionStyle.Render("Install"),
			strings.Join(clients, "  "),
			"",
			titleStyle.Render(p.ConfigTitle),
			codeStyle.Render(p.Config),
			"",
			sectionStyle.Render("Available Tools"),
		)
		for _, t := range p.Tools {
			lines = append(lines, "  "+t.Name+"  "+metaStyle.Render(t.Summary))
		}
	}
	return strings.Join(lines, "\n")
}
