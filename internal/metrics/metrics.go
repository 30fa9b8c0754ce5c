// Package metrics counts deals, commands and wins through the engine's
// lifecycle hooks and exposes them for Prometheus scraping.
package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/solitaire/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

// Collector owns the solitaire series and the registry they live in.
type Collector struct {
	registry *prometheus.Registry

	deals    prometheus.Counter
	commands *prometheus.CounterVec
	wins     prometheus.Counter
	winMoves prometheus.Histogram
}

// NewCollector registers the series on a private registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		deals: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "solitaire_deals_total",
			Help: "Total number of games dealt",
		}),
		commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "solitaire_commands_total",
				Help: "Total number of commands by action and result",
			},
			[]string{"action", "result"},
		),
		wins: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "solitaire_games_won_total",
			Help: "Total number of games won",
		}),
		winMoves: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "solitaire_win_moves",
			Help:    "Moves applied in won games",
			Buckets: prometheus.LinearBuckets(50, 25, 8),
		}),
	}
	c.registry.MustRegister(c.deals, c.commands, c.wins, c.winMoves)
	return c
}

// Hooks returns lifecycle hooks that feed the collector.
func (c *Collector) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDeal: func(_ context.Context, _ *domain.DealEvent) {
			c.deals.Inc()
		},
		OnCommand: func(_ context.Context, e *domain.CommandEvent) {
			c.commands.WithLabelValues(e.Action, string(e.Result)).Inc()
		},
		OnWin: func(_ context.Context, e *domain.WinEvent) {
			c.wins.Inc()
			c.winMoves.Observe(float64(e.Moves))
		},
	}
}

// Handler serves the registry on GET /metrics.
func (c *Collector) Handler() http.Handler {
	r := chi.NewRouter()
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{}))
	return r
}

// Serve listens on addr until ctx is done, then shuts the server down.
func (c *Collector) Serve(ctx context.Context, addr string, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           c.Handler(),
		ReadHeaderTimeout: shutdownTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("metrics server listening", "addr", addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("metrics server shutdown incomplete", "error", err)
			return srv.Close()
		}
		logger.Debug("metrics server stopped")
		return nil
	}
}
