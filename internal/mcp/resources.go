package mcp

// Resource defines an MCP resource
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MimeType    string `json:"mimeType,omitempty"`
}

// ResourceDefinitions lists all available resources
var ResourceDefinitions = []Resource{
	{
		URI:         "newsfeed://credibility",
		Name:        "Source Credibility",
		Description: "Trust score per news source used in relevance ranking",
		MimeType:    "text/plain",
	},
	{
		URI:         "newsfeed://feedback",
		Name:        "Feedback Ledger",
		Description: "Recorded up/down votes per article key, highest net first",
		MimeType:    "text/plain",
	},
	{
		URI:         "newsfeed://taxonomy",
		Name:        "Theme Taxonomy",
		Description: "Theme, sub-theme and keyword hierarchy used by match_themes",
		MimeType:    "text/plain",
	},
}

// resourcesListResult is the response for resources/list
type resourcesListResult struct {
	Resources []Resource `json:"resources"`
}

// readResourceParams is the params for resources/read
type readResourceParams struct {
	URI string `json:"uri"`
}

// readResourceResult is the response for resources/read
type readResourceResult struct {
	Contents []resourceContent `json:"contents"`
}

type resourceContent struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType,omitempty"`
	Text     string `json:"text,omitempty"`
}
