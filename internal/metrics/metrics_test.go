package metrics

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/solitaire/pkg/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Hooks(t *testing.T) {
	c := NewCollector()
	hooks := c.Hooks()
	ctx := context.Background()

	hooks.OnDeal(ctx, &domain.DealEvent{StockCount: 24})
	hooks.OnDeal(ctx, &domain.DealEvent{StockCount: 24})
	hooks.OnCommand(ctx, &domain.CommandEvent{Action: "stock_to_waste", Result: domain.ResultOK})
	hooks.OnCommand(ctx, &domain.CommandEvent{Action: "stock_to_waste", Result: domain.ResultOK})
	hooks.OnCommand(ctx, &domain.CommandEvent{Action: "waste_to_foundation", Result: domain.ResultRejected})
	hooks.OnWin(ctx, &domain.WinEvent{Moves: 76})

	assert.Equal(t, 2.0, testutil.ToFloat64(c.deals))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.commands.WithLabelValues("stock_to_waste", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.commands.WithLabelValues("waste_to_foundation", "rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.wins))
	assert.Equal(t, 1, testutil.CollectAndCount(c.winMoves))
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector()
	c.Hooks().OnDeal(context.Background(), &domain.DealEvent{})

	srv := httptest.NewServer(c.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "solitaire_deals_total 1")

	resp2, err := http.Post(srv.URL+"/metrics", "text/plain", strings.NewReader(""))
	require.NoError(t, err)
	resp2.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp2.StatusCode)
}

func TestCollector_ServeStopsOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewCollector().Serve(ctx, addr, slog.New(slog.DiscardHandler))
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/metrics")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
