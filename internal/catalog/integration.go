package catalog

// Integration is a static description of one third-party connector.
type Integration struct {
	// ID is the unique key into the table and the last segment of detail paths.
	ID string `json:"id" yaml:"id" toml:"id"`

	// Name is the display name, e.g. "Google Drive".
	Name string `json:"name" yaml:"name" toml:"name"`

	// Description is the one-line summary shown on catalog cards.
	Description string `json:"description" yaml:"description" toml:"description"`

	// LongDescription is shown under the detail heading.
	LongDescription string `json:"longDescription" yaml:"long_description" toml:"long_description"`

	Category string `json:"category" yaml:"category" toml:"category"`
	Author   string `json:"author" yaml:"author" toml:"author"`

	// Stars is the popularity score.
	Stars    int  `json:"stars" yaml:"stars" toml:"stars"`
	Featured bool `json:"featured" yaml:"featured" toml:"featured"`

	MonthlyToolCalls int `json:"monthlyToolCalls" yaml:"monthly_tool_calls" toml:"monthly_tool_calls"`

	// SuccessRate is a percentage, e.g. 99.8.
	SuccessRate float64 `json:"successRate" yaml:"success_rate" toml:"success_rate"`

	License string `json:"license" yaml:"license" toml:"license"`

	// Published is the publish date as YYYY-MM-DD.
	Published string `json:"published" yaml:"published" toml:"published"`

	// Homepage is optional.
	Homepage string `json:"homepage,omitempty" yaml:"homepage,omitempty" toml:"homepage,omitempty"`

	// GitHub is the source repository as owner/repo.
	GitHub string `json:"github" yaml:"github" toml:"github"`

	// Tools lists tool names in display order.
	Tools []string `json:"tools" yaml:"tools" toml:"tools"`
}

// RepositoryURL returns the GitHub URL for the source repository.
func (i Integration) RepositoryURL() string {
	return "https://github.com/" + i.GitHub
}

// clone returns a copy that shares no slices with i.
func (i Integration) clone() Integration {
	i.Tools = append([]string(nil), i.Tools...)
	return i
}
