// Package main is the entry point for the dice-rolling bot
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "roll-api",
	Short: "Tabletop dice-rolling assistant",
	Long:  `roll-api interprets chat commands for tabletop play: macro resolution, dice expressions with advantage/disadvantage, and character management backed by Redis.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(consoleCmd)
}
