package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/solitaire/internal/config"
)

// RunOptions contains all the configuration for the play command.
type RunOptions struct {
	// Config is the file configuration with flag overrides applied.
	Config config.Config
	// Script reads commands from a file instead of Stdin.
	Script string
	// Echo prints every command read after the prompt.
	Echo bool
	// JSON switches to JSON lines on both sides.
	JSON bool

	// Stdin and Stdout default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
}

// Execute handles the 'play' command logic: it resolves the input source
// and hands over to RunSession.
func Execute(ctx context.Context, opts RunOptions) error {
	if err := opts.Config.Validate(); err != nil {
		return err
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	if opts.Script != "" {
		f, err := os.Open(opts.Script)
		if err != nil {
			return fmt.Errorf("error opening --script: %w", err)
		}
		defer f.Close()
		opts.Stdin = f
	}

	return RunSession(ctx, opts)
}
