package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/solitaire/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFlagOverrides(t *testing.T) {
	cmd := &cobra.Command{Use: "play"}
	addPlayFlags(cmd)
	cmd.Flags().Bool("debug", false, "")
	require.NoError(t, cmd.ParseFlags([]string{
		"--seed", "12", "--show-hidden", "--color", "never", "--no-banner", "--debug", "--prompt", "$ ",
	}))

	cfg := config.Default()
	cfg.MetricsAddr = ":9000"
	applyFlagOverrides(cmd, &cfg)

	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(12), *cfg.Seed)
	assert.True(t, cfg.ShowHidden)
	assert.Equal(t, config.ColorNever, cfg.Color)
	assert.False(t, cfg.Banner)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "$ ", cfg.Prompt)
	assert.Equal(t, ":9000", cfg.MetricsAddr, "unset flags keep the file value")
}

func TestApplyFlagOverrides_Untouched(t *testing.T) {
	cmd := &cobra.Command{Use: "play"}
	addPlayFlags(cmd)
	require.NoError(t, cmd.ParseFlags(nil))

	cfg := config.Default()
	applyFlagOverrides(cmd, &cfg)
	assert.Equal(t, config.Default(), cfg)
}

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  []string
	}{
		{
			name: "commands",
			args: []string{"commands"},
			want: []string{"t C1 C2", "Quit the game"},
		},
		{
			name: "version",
			args: []string{"version"},
			want: []string{"solitaire version "},
		},
		{
			name:  "play by default",
			args:  []string{"--seed", "8", "--color", "never", "--no-banner"},
			stdin: "m\nq\n",
			want:  []string{"Welcome to Solitaire!", "Game exited."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			rootCmd.SetArgs(tt.args)
			rootCmd.SetIn(strings.NewReader(tt.stdin))
			rootCmd.SetOut(&out)
			t.Cleanup(func() {
				rootCmd.SetArgs(nil)
				rootCmd.SetIn(nil)
				rootCmd.SetOut(nil)
			})

			require.NoError(t, rootCmd.Execute())
			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}
