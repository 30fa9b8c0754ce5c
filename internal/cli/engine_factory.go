package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/solitaire"
	"github.com/aretw0/solitaire/internal/config"
	"github.com/aretw0/solitaire/pkg/domain"
)

// createEngine initializes a solitaire engine with standard CLI conventions.
func createEngine(cfg config.Config, logger *slog.Logger, hooks domain.LifecycleHooks) (*solitaire.Engine, error) {
	engineOpts := []solitaire.Option{
		solitaire.WithLogger(logger),
		solitaire.WithLifecycleHooks(hooks),
	}

	// A fixed seed replays the same sequence of deals, N included.
	if cfg.Seed != nil {
		engineOpts = append(engineOpts, solitaire.WithSeed(*cfg.Seed))
	}

	engine, err := solitaire.New(engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, nil
}
