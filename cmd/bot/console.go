package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rollkeeper/roll-api/internal/config"
)

var consoleUser string

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Run a local stdin REPL",
	Long:  `Read chat commands from stdin and print the bot's responses, for local play and debugging without a Discord connection.`,
	RunE:  runConsole,
}

func init() {
	consoleCmd.Flags().StringVar(&consoleUser, "user", "console", "user ID to issue commands as")
}

func runConsole(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	handler, err := buildHandler(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		if resp := handler.HandleMessage(ctx, consoleUser, scanner.Text()); resp != "" {
			fmt.Println(resp)
		}
		fmt.Print("> ")
	}
	return scanner.Err()
}
