// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agent

import (
	"context"
	"encoding/json"

	"github.com/tmc/langchaingo/llms"

	"github.com/pdiddy/scidirect/pkg/types"
)

// ArticleSource is the subset of the ScienceDirect client the agent
// exposes to the model as tools. Satisfied by *sciencedirect.Client;
// tests supply a mock.
type ArticleSource interface {
	Search(ctx context.Context, query string, limit int) ([]types.Article, error)
	Article(ctx context.Context, pii string) (types.Article, error)
}

const (
	toolSearch = "search_articles"
	toolGet    = "get_article_details"
)

// toolDefs describes the two tools offered to the model.
func toolDefs() []llms.Tool {
	return []llms.Tool{
		{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        toolSearch,
				Description: "Search ScienceDirect for scientific articles matching a query.",
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"query": map[string]any{
							"type":        "string",
							"description": "Search query for finding articles",
						},
						"limit": map[string]any{
							"type":        "integer",
							"description": "Maximum number of articles to return",
						},
					},
					"required": []string{"query"},
				},
			},
		},
		{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        toolGet,
				Description: "Retrieve detailed information about one article by its PII (Publisher Item Identifier).",
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"pii": map[string]any{
							"type":        "string",
							"description": "PII of the article to retrieve",
						},
					},
					"required": []string{"pii"},
				},
			},
		},
	}
}

// toolArgs covers the argument shapes of both tools.
type toolArgs struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
	PII   string `json:"pii"`
}

// runTool executes one tool call and renders the result as JSON for the
// model. Tool failures are downgraded to an error payload so a failed
// search degrades the answer instead of aborting the run.
func (a *Agent) runTool(ctx context.Context, call llms.ToolCall) (string, []types.Article) {
	if call.FunctionCall == nil {
		return toolError("malformed tool call"), nil
	}

	var args toolArgs
	if err := json.Unmarshal([]byte(call.FunctionCall.Arguments), &args); err != nil {
		return toolError("invalid arguments: " + err.Error()), nil
	}

	switch call.FunctionCall.Name {
	case toolSearch:
		limit := args.Limit
		if limit <= 0 || limit > a.cfg.MaxArticles {
			limit = a.cfg.MaxArticles
		}
		articles, err := a.source.Search(ctx, args.Query, limit)
		if err != nil {
			return toolError(err.Error()), nil
		}
		return marshalToolResult(articles), articles

	case toolGet:
		article, err := a.source.Article(ctx, args.PII)
		if err != nil {
			return toolError(err.Error()), nil
		}
		return marshalToolResult([]types.Article{article}), []types.Article{article}

	default:
		return toolError("unknown tool " + call.FunctionCall.Name), nil
	}
}

// marshalToolResult renders articles as a JSON payload for the model.
func marshalToolResult(articles []types.Article) string {
	data, err := json.Marshal(struct {
		Articles []types.Article `json:"articles"`
	}{articles})
	if err != nil {
		return toolError("encoding result: " + err.Error())
	}
	return string(data)
}

func toolError(msg string) string {
	data, _ := json.Marshal(struct {
		Error string `json:"error"`
	}{msg})
	return string(data)
}
