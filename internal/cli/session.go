package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/solitaire"
	"github.com/aretw0/solitaire/internal/logging"
	"github.com/aretw0/solitaire/internal/metrics"
	"github.com/aretw0/solitaire/internal/presentation/tui"
	"github.com/aretw0/solitaire/pkg/domain"
	"github.com/aretw0/solitaire/pkg/runner"
	"github.com/muesli/termenv"
)

// RunSession plays games until the player quits, the input ends or the
// process is interrupted.
func RunSession(ctx context.Context, opts RunOptions) error {
	cfg := opts.Config
	logger := logging.ForSession(cfg.Debug)

	sigCtx := NewSignalContext(ctx)
	defer sigCtx.Cancel()

	profile := resolveProfile(cfg.Color, opts.Stdout)
	if opts.JSON {
		profile = termenv.Ascii
	}

	if cfg.Banner && !opts.JSON && opts.Script == "" {
		tui.PrintBanner(opts.Stdout, profile, solitaire.Version)
	}

	var hooks []domain.LifecycleHooks
	if cfg.Debug {
		hooks = append(hooks, createDebugHooks(logger))
	}
	if cfg.MetricsAddr != "" {
		collector := metrics.NewCollector()
		hooks = append(hooks, collector.Hooks())

		metricsCtx, stopMetrics := context.WithCancel(sigCtx)
		served := make(chan error, 1)
		go func() {
			served <- collector.Serve(metricsCtx, cfg.MetricsAddr, logger)
		}()
		defer func() {
			stopMetrics()
			if err := <-served; err != nil {
				logger.Warn("metrics server failed", "addr", cfg.MetricsAddr, "error", err)
			}
		}()
	}

	engine, err := createEngine(cfg, logger, domain.MergeHooks(hooks...))
	if err != nil {
		return err
	}

	handler, err := createHandler(opts, profile)
	if err != nil {
		return err
	}

	board := tui.Board{Profile: profile, ShowHidden: cfg.ShowHidden}
	r := runner.NewRunner(
		runner.WithLogger(logger),
		runner.WithInputHandler(handler),
		runner.WithBoardRenderer(board.Render),
	)

	runErr := r.Run(sigCtx, engine)
	if sigCtx.Err() != nil && runErr == nil {
		runErr = sigCtx.Err()
	}

	logCompletion(opts.Stdout, runErr, sigCtx.Signal(), opts.JSON)
	logger.Info("session finished", "game_id", engine.Game().ID, "commands", len(engine.History()), "error", runErr)

	return handleExecutionError(runErr)
}

// createHandler picks the IO strategy: JSON lines, or text with help
// rendered through glamour.
func createHandler(opts RunOptions, profile termenv.Profile) (runner.IOHandler, error) {
	if opts.JSON {
		return runner.NewJSONHandler(opts.Stdin, opts.Stdout), nil
	}

	render, err := tui.NewRenderer(profile != termenv.Ascii)
	if err != nil {
		return nil, fmt.Errorf("error creating help renderer: %w", err)
	}

	textOpts := []runner.TextHandlerOption{
		runner.WithTextHandlerRenderer(render),
		runner.WithEcho(opts.Echo),
	}
	if opts.Config.Prompt != "" {
		textOpts = append(textOpts, runner.WithPrompt(opts.Config.Prompt))
	}
	return runner.NewTextHandler(opts.Stdin, opts.Stdout, textOpts...), nil
}
