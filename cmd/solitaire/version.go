package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/solitaire"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of solitaire",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "solitaire version %s\n", strings.TrimSpace(solitaire.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
