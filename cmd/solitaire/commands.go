package main

import (
	"fmt"

	"github.com/aretw0/solitaire/pkg/command"
	"github.com/spf13/cobra"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the in-game commands",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), command.Plain())
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}
