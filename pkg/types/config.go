// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ClientConfig holds settings for the ScienceDirect API client.
type ClientConfig struct {
	// APIKey is the Elsevier API key. Required.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// AuthToken is an optional Elsevier session token (X-ELS-Authtoken).
	AuthToken string `json:"auth_token,omitempty" yaml:"auth_token,omitempty"`

	// InstToken is an optional institutional access token (X-ELS-Insttoken).
	InstToken string `json:"inst_token,omitempty" yaml:"inst_token,omitempty"`

	// Debug enriches failure messages with upstream status codes, response
	// bodies, and headers. Off by default so upstream detail is not leaked.
	Debug bool `json:"debug" yaml:"debug"`

	// Timeout is the HTTP request timeout (default 30s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "scidirect/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// AgentConfig holds settings for the research agent.
type AgentConfig struct {
	// Model selects the LLM as "provider:model" (default "openai:gpt-4o-mini").
	// A bare model name is treated as an OpenAI model.
	Model string `json:"model" yaml:"model"`

	// OpenAIKey is the authentication key for the OpenAI API.
	OpenAIKey string `json:"openai_key,omitempty" yaml:"openai_key,omitempty"`

	// MaxArticles caps how many articles a single search tool call may
	// return to the model (default 5).
	MaxArticles int `json:"max_articles" yaml:"max_articles"`

	// MaxIterations bounds the tool-calling loop (default 8).
	MaxIterations int `json:"max_iterations" yaml:"max_iterations"`
}
