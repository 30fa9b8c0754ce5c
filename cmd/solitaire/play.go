package main

import (
	"github.com/aretw0/solitaire/internal/cli"
	"github.com/aretw0/solitaire/internal/config"
	"github.com/spf13/cobra"
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Klondike interactively",
	Long: `Deals a new game and plays it until "q" or the end of input.
Flags override the values of the --config file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		applyFlagOverrides(cmd, &cfg)

		script, _ := cmd.Flags().GetString("script")
		echo, _ := cmd.Flags().GetBool("echo")
		jsonMode, _ := cmd.Flags().GetBool("json")

		return cli.Execute(cmd.Context(), cli.RunOptions{
			Config: cfg,
			Script: script,
			Echo:   echo,
			JSON:   jsonMode,
			Stdin:  cmd.InOrStdin(),
			Stdout: cmd.OutOrStdout(),
		})
	},
}

// applyFlagOverrides copies every flag the user set onto cfg.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		seed, _ := flags.GetUint64("seed")
		cfg.Seed = &seed
	}
	if flags.Changed("show-hidden") {
		cfg.ShowHidden, _ = flags.GetBool("show-hidden")
	}
	if flags.Changed("color") {
		cfg.Color, _ = flags.GetString("color")
	}
	if flags.Changed("no-banner") {
		noBanner, _ := flags.GetBool("no-banner")
		cfg.Banner = !noBanner
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr, _ = flags.GetString("metrics-addr")
	}
	if flags.Changed("prompt") {
		cfg.Prompt, _ = flags.GetString("prompt")
	}
}

func addPlayFlags(c *cobra.Command) {
	c.Flags().Uint64("seed", 0, "Shuffle seed for reproducible deals")
	c.Flags().Bool("show-hidden", false, "Show face-down tableau cards")
	c.Flags().String("color", config.ColorAuto, "Color mode: auto, always or never")
	c.Flags().String("script", "", "Read commands from a file")
	c.Flags().Bool("echo", false, "Echo each command after the prompt")
	c.Flags().Bool("no-banner", false, "Skip the title banner")
	c.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :2112)")
	c.Flags().String("prompt", "", "Replace the command prompt")
	c.Flags().Bool("json", false, "Read and write JSON lines")
}

func init() {
	rootCmd.AddCommand(playCmd)

	// 'play' is the default when no command is given, so the root
	// carries the same flags.
	addPlayFlags(playCmd)
	addPlayFlags(rootCmd)
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = playCmd.RunE
}
