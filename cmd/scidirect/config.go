// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scidirect/internal/httputil"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configured credentials and model selection",
	Long: `Config reports which credentials are set, with key values masked, and
which model the agent would use. Useful for diagnosing authentication
failures without printing secrets.`,
	Run: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	ccfg := clientConfig(cmd)
	acfg := agentConfig(cmd)

	printCredential("Elsevier API key", ccfg.APIKey, true)
	printCredential("Elsevier auth token", ccfg.AuthToken, false)
	printCredential("Institutional token", ccfg.InstToken, false)
	printCredential("OpenAI API key", acfg.OpenAIKey, true)

	model := acfg.Model
	if model == "" {
		model = "openai:gpt-4o-mini"
	}
	fmt.Printf("Model: %s\n", model)
	fmt.Printf("Debug: %v\n", ccfg.Debug)
}

func printCredential(label, value string, required bool) {
	switch {
	case value != "":
		fmt.Printf("%s: %s\n", label, httputil.MaskKey(value))
	case required:
		fmt.Printf("%s: not set (required)\n", label)
	default:
		fmt.Printf("%s: not set (optional)\n", label)
	}
}

func init() {
	configCmd.Flags().Int("max-articles", 5, "maximum articles the agent may request per search")

	rootCmd.AddCommand(configCmd)
}
