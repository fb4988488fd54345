// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package agent answers research questions by driving an LLM through
// ScienceDirect search tools and collecting the articles it consults.
package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/tmc/langchaingo/llms"

	"github.com/pdiddy/scidirect/pkg/types"
)

const (
	defaultMaxArticles   = 5
	defaultMaxIterations = 8
)

// systemPrompt frames the model as a literature-analysis assistant and
// pins the final-turn output format so the answer can be parsed.
const systemPrompt = `You are a scientific research assistant specializing in analyzing academic literature. Your role is to search for relevant scientific articles using the ScienceDirect database and provide comprehensive, evidence-based answers to research questions. Always cite the specific articles you reference and provide a balanced view of the findings. Focus on recent, peer-reviewed research when possible.

When you have finished researching and are not calling a tool, reply with a single JSON object of the form {"answer": "...", "summary": "..."} where answer is the synthesized, cited answer and summary is a brief recap of the findings. Do not include any text outside the JSON object.`

// questionTmpl renders the opening user turn for one research run.
var questionTmpl = template.Must(template.New("question").Parse(
	`Please research the following scientific question: "{{.Question}}". Search for up to {{.MaxArticles}} relevant articles, analyze their findings, and provide a comprehensive answer with citations.`))

// Response is the structured result of a research run.
type Response struct {
	// Answer is the synthesized answer to the question.
	Answer string `json:"answer" yaml:"answer"`

	// Articles lists the articles consulted while answering, in first-seen
	// order with duplicates removed.
	Articles []types.Article `json:"articles" yaml:"articles"`

	// Summary is a brief recap of the findings.
	Summary string `json:"summary" yaml:"summary"`
}

// Agent runs the tool-calling loop against a model and an article source.
type Agent struct {
	model  llms.Model
	source ArticleSource
	cfg    types.AgentConfig
}

// New builds an agent, applying defaults for unset limits.
func New(model llms.Model, source ArticleSource, cfg types.AgentConfig) *Agent {
	if cfg.MaxArticles <= 0 {
		cfg.MaxArticles = defaultMaxArticles
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = defaultMaxIterations
	}
	return &Agent{model: model, source: source, cfg: cfg}
}

// Answer researches a question and returns a response. Model failures
// are downgraded to a valid response carrying an apologetic answer and
// zero articles rather than propagated; this is the one boundary that
// swallows errors, so an upstream outage still yields a usable reply.
func (a *Agent) Answer(ctx context.Context, question string) Response {
	resp, err := a.run(ctx, question)
	if err != nil {
		return Response{
			Answer:   fmt.Sprintf("I encountered an error while researching: %v", err),
			Articles: []types.Article{},
			Summary:  "Unable to complete the research due to an error.",
		}
	}
	return resp
}

// run drives the model until it stops calling tools or the iteration
// bound is reached. Articles returned by tools are accumulated and
// attached to the final response.
func (a *Agent) run(ctx context.Context, question string) (Response, error) {
	prompt, err := renderQuestion(question, a.cfg.MaxArticles)
	if err != nil {
		return Response{}, fmt.Errorf("rendering prompt: %w", err)
	}

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}

	var collected []types.Article

	for i := 0; i < a.cfg.MaxIterations; i++ {
		resp, err := a.model.GenerateContent(ctx, messages, llms.WithTools(toolDefs()))
		if err != nil {
			return Response{}, fmt.Errorf("model call: %w", err)
		}
		if len(resp.Choices) == 0 {
			return Response{}, fmt.Errorf("model returned no choices")
		}
		choice := resp.Choices[0]

		if len(choice.ToolCalls) == 0 {
			return finalResponse(choice.Content, dedupeArticles(collected)), nil
		}

		aiMsg := llms.MessageContent{Role: llms.ChatMessageTypeAI}
		if choice.Content != "" {
			aiMsg.Parts = append(aiMsg.Parts, llms.TextPart(choice.Content))
		}
		for _, tc := range choice.ToolCalls {
			aiMsg.Parts = append(aiMsg.Parts, tc)
		}
		messages = append(messages, aiMsg)

		for _, tc := range choice.ToolCalls {
			result, articles := a.runTool(ctx, tc)
			collected = append(collected, articles...)

			name := ""
			if tc.FunctionCall != nil {
				name = tc.FunctionCall.Name
			}
			messages = append(messages, llms.MessageContent{
				Role: llms.ChatMessageTypeTool,
				Parts: []llms.ContentPart{
					llms.ToolCallResponse{ToolCallID: tc.ID, Name: name, Content: result},
				},
			})
		}
	}

	return finalResponse("Maximum tool iterations reached before a final answer was produced.",
		dedupeArticles(collected)), nil
}

// finalResponse interprets the model's closing message. The system
// prompt asks for a JSON object with answer and summary; a model that
// replies in prose degrades to using the raw text as the answer.
func finalResponse(text string, articles []types.Article) Response {
	var parsed struct {
		Answer  string `json:"answer"`
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &parsed); err == nil && parsed.Answer != "" {
		return Response{Answer: parsed.Answer, Summary: parsed.Summary, Articles: articles}
	}
	return Response{Answer: text, Articles: articles}
}

// stripCodeFence removes a surrounding markdown code fence, which some
// models wrap around JSON despite instructions.
func stripCodeFence(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```json")
	t = strings.TrimPrefix(t, "```")
	if i := strings.LastIndex(t, "```"); i >= 0 {
		t = t[:i]
	}
	return strings.TrimSpace(t)
}

// dedupeArticles drops repeat articles collected across tool calls,
// keyed by PII, then DOI, then lowercased title. First occurrence wins.
func dedupeArticles(articles []types.Article) []types.Article {
	seen := make(map[string]bool, len(articles))
	out := make([]types.Article, 0, len(articles))
	for _, a := range articles {
		key := articleKey(a)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, a)
	}
	return out
}

func articleKey(a types.Article) string {
	switch {
	case a.PII != nil && *a.PII != "":
		return "pii:" + *a.PII
	case a.DOI != nil && *a.DOI != "":
		return "doi:" + *a.DOI
	default:
		return "title:" + strings.ToLower(a.Title)
	}
}

func renderQuestion(question string, maxArticles int) (string, error) {
	var buf bytes.Buffer
	err := questionTmpl.Execute(&buf, struct {
		Question    string
		MaxArticles int
	}{question, maxArticles})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
