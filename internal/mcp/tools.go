package mcp

// Tool represents an MCP tool definition
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

var articleRefSchema = map[string]any{
	"type":        "string",
	"description": "Position in the current listing (1-based) or the article key",
}

// ToolDefinitions contains all available MCP tools
var ToolDefinitions = []Tool{
	{
		Name:        "list_articles",
		Description: "List top headlines ranked by relevance, with optional sort, category, source, tag and search filters. Returns one page.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"sort": map[string]any{
					"type":        "string",
					"enum":        []string{"relevance", "date", "popularity"},
					"description": "Ordering of the listing (default: relevance)",
				},
				"category": map[string]any{
					"type":        "string",
					"description": "Restrict to a category. Use 'all' or omit for no filter. Cannot be combined with tag.",
				},
				"source": map[string]any{
					"type":        "string",
					"description": "Restrict to a source name, e.g. 'BBC News'. Use 'all' or omit for no filter.",
				},
				"tag": map[string]any{
					"type":        "string",
					"description": "Trending tag; case-sensitive match on title, description or content",
				},
				"query": map[string]any{
					"type":        "string",
					"description": "Search text; case-sensitive match on title or description boosts relevance",
				},
				"page": map[string]any{
					"type":        "integer",
					"description": "Page number (default: 1)",
				},
				"refresh": map[string]any{
					"type":        "boolean",
					"description": "Refetch headlines even if the filters did not change",
				},
			},
		},
	},
	{
		Name:        "suggest_titles",
		Description: "Suggest loaded headline titles containing a partial query (at least 3 characters, case-sensitive).",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "Partial search text",
				},
			},
			"required": []string{"query"},
		},
	},
	{
		Name:        "record_feedback",
		Description: "Record an up or down vote for an article. Votes persist and shift future relevance ranking.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"article": articleRefSchema,
				"direction": map[string]any{
					"type": "string",
					"enum": []string{"up", "down"},
				},
			},
			"required": []string{"article", "direction"},
		},
	},
	{
		Name:        "summarize_article",
		Description: "Get an article's details, score breakdown, short summary and related links.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"article": articleRefSchema,
			},
			"required": []string{"article"},
		},
	},
	{
		Name:        "match_themes",
		Description: "Extract topics from free text and map them onto the news theme taxonomy.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{
					"type":        "string",
					"description": "Free-text query to analyze",
				},
			},
			"required": []string{"text"},
		},
	},
}
