package catalog

// categories is the fixed category bar shown on the catalog page.
var categories = []string{
	"All",
	"Development Tools",
	"Data Analysis",
	"Communication",
	"Productivity",
	"Cloud Services",
}

// builtin is the sample integration table, in display order.
var builtin = []Integration{
	{
		ID:               "github",
		Name:             "GitHub",
		Description:      "Interact with GitHub repositories, issues, and pull requests",
		Category:         "Development Tools",
		Author:           "GitHub",
		Stars:            1234,
		Featured:         true,
		MonthlyToolCalls: 45672,
		SuccessRate:      99.8,
		License:          "MIT",
		Published:        "2024-01-15",
		Homepage:         "https://github.com",
		GitHub:           "github/github-mcp-server",
		Tools:            []string{"search_repositories", "create_issue", "get_pull_requests", "create_branch"},
		LongDescription:  "Enable seamless integration with GitHub repositories. Search for repositories, manage issues, create and review pull requests, and perform various repository operations directly through the Model Context Protocol.",
	},
	{
		ID:               "postgres",
		Name:             "Postgres",
		Description:      "Query and manage PostgreSQL databases",
		Category:         "Data Analysis",
		Author:           "PostgreSQL Team",
		Stars:            856,
		Featured:         true,
		MonthlyToolCalls: 23890,
		SuccessRate:      99.5,
		License:          "PostgreSQL",
		Published:        "2024-02-01",
		Homepage:         "https://postgresql.org",
		GitHub:           "postgres/postgres-mcp-server",
		Tools:            []string{"execute_query", "get_schema", "create_table", "backup_database"},
		LongDescription:  "Connect and interact with PostgreSQL databases through the Model Context Protocol. Execute queries, manage schemas, create tables, and perform database operations with full SQL support.",
	},
	{
		ID:               "slack",
		Name:             "Slack",
		Description:      "Send messages and interact with Slack workspaces",
		Category:         "Communication",
		Author:           "Slack",
		Stars:            642,
		Featured:         false,
		MonthlyToolCalls: 18734,
		SuccessRate:      99.2,
		License:          "MIT",
		Published:        "2024-02-10",
		Homepage:         "https://slack.com",
		GitHub:           "slack/slack-mcp-server",
		Tools:            []string{"send_message", "create_channel", "get_users", "upload_file"},
		LongDescription:  "Integrate with Slack workspaces to send messages, manage channels, interact with users, and handle file uploads through the Model Context Protocol interface.",
	},
	{
		ID:               "google-drive",
		Name:             "Google Drive",
		Description:      "Access and manage files in Google Drive",
		Category:         "Productivity",
		Author:           "Google",
		Stars:            923,
		Featured:         true,
		MonthlyToolCalls: 31456,
		SuccessRate:      99.7,
		License:          "Apache-2.0",
		Published:        "2024-01-20",
		Homepage:         "https://drive.google.com",
		GitHub:           "google/drive-mcp-server",
		Tools:            []string{"list_files", "upload_file", "download_file", "share_file", "create_folder"},
		LongDescription:  "Seamlessly access and manage Google Drive files and folders. Upload, download, share files, create folders, and perform comprehensive file management operations.",
	},
	{
		ID:               "aws-s3",
		Name:             "AWS S3",
		Description:      "Manage objects and buckets in Amazon S3",
		Category:         "Cloud Services",
		Author:           "AWS",
		Stars:            756,
		Featured:         false,
		MonthlyToolCalls: 27891,
		SuccessRate:      99.9,
		License:          "Apache-2.0",
		Published:        "2024-01-25",
		Homepage:         "https://aws.amazon.com/s3",
		GitHub:           "aws/s3-mcp-server",
		Tools:            []string{"list_objects", "upload_object", "download_object", "delete_object", "create_bucket"},
		LongDescription:  "Comprehensive Amazon S3 integration for managing buckets and objects. Upload, download, list, and delete objects, create and manage buckets with full S3 API support.",
	},
	{
		ID:               "discord",
		Name:             "Discord",
		Description:      "Send messages and manage Discord servers",
		Category:         "Communication",
		Author:           "Discord",
		Stars:            489,
		Featured:         false,
		MonthlyToolCalls: 15234,
		SuccessRate:      98.9,
		License:          "MIT",
		Published:        "2024-02-15",
		Homepage:         "https://discord.com",
		GitHub:           "discord/discord-mcp-server",
		Tools:            []string{"send_message", "create_channel", "manage_roles", "get_members"},
		LongDescription:  "Connect with Discord servers and channels. Send messages, create channels, manage user roles, and interact with server members through the Discord API.",
	},
}
