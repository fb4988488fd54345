// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scidirect/internal/sciencedirect"
	"github.com/pdiddy/scidirect/pkg/types"
)

var articleCmd = &cobra.Command{
	Use:   "article [pii]",
	Short: "Retrieve one article by its PII",
	Long: `Article fetches a single article from the ScienceDirect retrieval API by
its Publisher Item Identifier and prints its details.`,
	Args: cobra.ExactArgs(1),
	RunE: runArticle,
}

func runArticle(cmd *cobra.Command, args []string) error {
	client, err := sciencedirect.NewClient(clientConfig(cmd))
	if err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	asYAML, _ := cmd.Flags().GetBool("yaml")

	article, err := client.Article(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("article retrieval failed: %w", err)
	}

	switch {
	case asJSON:
		return sciencedirect.FormatJSON([]types.Article{article}, os.Stdout)
	case asYAML:
		return sciencedirect.FormatYAML([]types.Article{article}, os.Stdout)
	default:
		sciencedirect.FormatArticle(article, os.Stdout)
		return nil
	}
}

func init() {
	articleCmd.Flags().Bool("json", false, "output the article as JSON")
	articleCmd.Flags().Bool("yaml", false, "output the article as YAML")

	rootCmd.AddCommand(articleCmd)
}
