// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the scidirect CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/scidirect/internal/secrets"
	"github.com/pdiddy/scidirect/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the scidirect CLI.
var rootCmd = &cobra.Command{
	Use:   "scidirect",
	Short: "Search ScienceDirect and answer research questions with citations",
	Long: `scidirect queries the Elsevier ScienceDirect API for scholarly articles
and drives an LLM research agent that synthesizes cited answers.

Use search and article for direct API access, ask for a one-shot agent
answer, and chat for an interactive session.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./scidirect.yaml or ~/.config/scidirect/config.yaml)")
	rootCmd.PersistentFlags().StringP("api-key", "k", "", "Elsevier API key")
	rootCmd.PersistentFlags().StringP("inst-token", "t", "", "Elsevier institutional token")
	rootCmd.PersistentFlags().Bool("debug", false, "enrich error messages with upstream status, headers, and body")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("scidirect")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "scidirect"))
		}
	}

	viper.SetEnvPrefix("SCIDIRECT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// clientConfig assembles the client configuration with the precedence
// flag > environment > .secrets/ file > config file.
func clientConfig(cmd *cobra.Command) types.ClientConfig {
	apiKey, _ := cmd.Flags().GetString("api-key")
	instToken, _ := cmd.Flags().GetString("inst-token")
	debug, _ := cmd.Flags().GetBool("debug")

	return types.ClientConfig{
		APIKey: firstNonEmpty(apiKey, os.Getenv("ELSEVIER_API_KEY"),
			loadedSecrets["elsevier-api-key"], viper.GetString("client.api_key")),
		AuthToken: firstNonEmpty(os.Getenv("ELSEVIER_AUTH_TOKEN"),
			loadedSecrets["elsevier-auth-token"], viper.GetString("client.auth_token")),
		InstToken: firstNonEmpty(instToken, os.Getenv("ELSEVIER_INST_TOKEN"),
			loadedSecrets["elsevier-inst-token"], viper.GetString("client.inst_token")),
		Debug:     debug || isTruthy(os.Getenv("DEBUG")) || viper.GetBool("client.debug"),
		Timeout:   viper.GetDuration("client.timeout"),
		UserAgent: "scidirect/" + version,
	}
}

// agentConfig assembles the agent configuration with the same precedence
// as clientConfig.
func agentConfig(cmd *cobra.Command) types.AgentConfig {
	maxArticles, _ := cmd.Flags().GetInt("max-articles")

	return types.AgentConfig{
		Model: firstNonEmpty(os.Getenv("DEFAULT_MODEL"), viper.GetString("agent.model")),
		OpenAIKey: firstNonEmpty(os.Getenv("OPENAI_API_KEY"),
			loadedSecrets["openai-api-key"], viper.GetString("agent.openai_key")),
		MaxArticles:   maxArticles,
		MaxIterations: viper.GetInt("agent.max_iterations"),
	}
}

// firstNonEmpty returns the first non-empty value.
func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// isTruthy reports whether an environment flag value means "on".
func isTruthy(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "yes":
		return true
	}
	return false
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
