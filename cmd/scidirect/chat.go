// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scidirect/internal/agent"
	"github.com/pdiddy/scidirect/internal/sciencedirect"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive session with the research agent",
	Long: `Chat reads questions from stdin one at a time and answers each through
the research agent. Type "quit" or "exit" to end the session.`,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
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

	fmt.Println("Scientific Research Assistant")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("Ask me any scientific question, and I'll search the literature for you.")
	fmt.Println("Type 'quit' or 'exit' to end the session.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Your question: ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(question) {
		case "quit", "exit", "q":
			fmt.Println("Goodbye!")
			return nil
		case "":
			continue
		}

		fmt.Println("\nSearching scientific literature...")
		resp := a.Answer(context.Background(), question)

		fmt.Println(strings.Repeat("=", 50))
		printResponse(resp)
		fmt.Println(strings.Repeat("=", 50))
		fmt.Println()
	}
	return scanner.Err()
}

func init() {
	chatCmd.Flags().IntP("max-articles", "m", 5, "maximum articles the agent may request per search")

	rootCmd.AddCommand(chatCmd)
}
