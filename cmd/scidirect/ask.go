// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scidirect/internal/agent"
	"github.com/pdiddy/scidirect/internal/sciencedirect"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a research question and get a cited answer",
	Long: `Ask runs the research agent once: the LLM searches ScienceDirect through
its tools, analyzes the findings, and prints a synthesized answer with the
articles it consulted.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	client, err := sciencedirect.NewClient(clientConfig(cmd))
	if err != nil {
		return err
	}

	acfg := agentConfig(cmd)
	model, err := agent.NewModel(acfg)
	if err != nil {
		return err
	}

	a := agent.New(model, client, acfg)

	fmt.Fprintln(os.Stderr, "Researching your question...")
	resp := a.Answer(context.Background(), args[0])

	printResponse(resp)
	return nil
}

// printResponse writes an agent response in the answer / references /
// summary layout shared by ask and chat.
func printResponse(resp agent.Response) {
	fmt.Println("ANSWER:")
	fmt.Println(resp.Answer)

	if len(resp.Articles) > 0 {
		fmt.Println("\nREFERENCES:")
		sciencedirect.FormatReferences(resp.Articles, os.Stdout)
	}

	if resp.Summary != "" {
		fmt.Println("\nSUMMARY:")
		fmt.Println(resp.Summary)
	}
}

func init() {
	askCmd.Flags().IntP("max-articles", "m", 5, "maximum articles the agent may request per search")

	rootCmd.AddCommand(askCmd)
}
