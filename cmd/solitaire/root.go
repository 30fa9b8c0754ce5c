package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "solitaire",
	Short: "Klondike solitaire in the terminal",
	Long: `Solitaire deals a game of Klondike and reads one command per line from the
terminal, a script file or a pipe. Type "?" during a game for the command list.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "YAML file with play settings")
	rootCmd.PersistentFlags().Bool("debug", false, "Log engine events to stderr")
}
