// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scidirect/internal/sciencedirect"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search ScienceDirect for scholarly articles",
	Long: `Search issues one query against the ScienceDirect search API and prints
the matching articles. The result count is clamped to the provider's
ceiling of 200.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	client, err := sciencedirect.NewClient(clientConfig(cmd))
	if err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	asJSON, _ := cmd.Flags().GetBool("json")
	asYAML, _ := cmd.Flags().GetBool("yaml")

	articles, err := client.Search(context.Background(), args[0], limit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	switch {
	case asJSON:
		return sciencedirect.FormatJSON(articles, os.Stdout)
	case asYAML:
		return sciencedirect.FormatYAML(articles, os.Stdout)
	default:
		sciencedirect.FormatTable(articles, os.Stdout)
		sciencedirect.FormatAbstracts(articles, os.Stdout)
		return nil
	}
}

func init() {
	searchCmd.Flags().IntP("limit", "l", 5, "maximum number of results (clamped to 200)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().Bool("yaml", false, "output results as YAML")

	rootCmd.AddCommand(searchCmd)
}
