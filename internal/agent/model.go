// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agent

import (
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/pdiddy/scidirect/pkg/types"
)

const defaultModelName = "gpt-4o-mini"

// NewModel constructs the LLM named by cfg.Model. The selector follows
// the "provider:model" form; a bare name is treated as an OpenAI model.
func NewModel(cfg types.AgentConfig) (llms.Model, error) {
	provider, name := splitModelSelector(cfg.Model)
	if provider != "openai" {
		return nil, fmt.Errorf("unsupported model provider %q (only openai is supported)", provider)
	}

	opts := []openai.Option{openai.WithModel(name)}
	if cfg.OpenAIKey != "" {
		opts = append(opts, openai.WithToken(cfg.OpenAIKey))
	}
	return openai.New(opts...)
}

// splitModelSelector splits "provider:model". An empty selector yields
// the default OpenAI model.
func splitModelSelector(s string) (provider, name string) {
	if s == "" {
		return "openai", defaultModelName
	}
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return "openai", s
}
