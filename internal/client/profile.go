// Package client defines the AI client profiles an integration can be
// installed into and renders their configuration snippets.
package client

import "slices"

// Placeholder tokens substituted by Render.
const (
	// NameToken is replaced with the lower-cased integration name.
	NameToken = "INTEGRATION_NAME"
	// AuthorToken is replaced with "@" plus the lower-cased author.
	AuthorToken = "@author"
)

// Profile is a named client application and its configuration template.
type Profile struct {
	Name     string
	Template string
}

var profiles = []Profile{
	{
		Name: "Claude Desktop",
		Template: `{
  "mcpServers": {
    "INTEGRATION_NAME": {
      "command": "npx",
      "args": ["-y", "@author/INTEGRATION_NAME-mcp-server"]
    }
  }
}`,
	},
	{
		Name: "VS Code",
		Template: `{
  "mcp": {
    "servers": {
      "INTEGRATION_NAME": {
        "command": "npx",
        "args": ["-y", "@author/INTEGRATION_NAME-mcp-server"]
      }
    }
  }
}`,
	},
	{
		Name: "Cursor",
		Template: `{
  "mcp": {
    "servers": {
      "INTEGRATION_NAME": {
        "command": "npx", 
        "args": ["-y", "@author/INTEGRATION_NAME-mcp-server"]
      }
    }
  }
}`,
	},
}

// Profiles returns the fixed client profiles in display order.
func Profiles() []Profile {
	return slices.Clone(profiles)
}

// Names returns the profile names in display order.
func Names() []string {
	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = p.Name
	}
	return names
}

// Default returns the first profile, the initial selection of a detail view.
func Default() Profile {
	return profiles[0]
}

// Lookup finds a profile by exact name.
func Lookup(name string) (Profile, bool) {
	for _, p := range profiles {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}
