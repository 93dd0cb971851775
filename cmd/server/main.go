// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal packages.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/kvverti/serve-ex/internal/platform/config"
	"github.com/kvverti/serve-ex/internal/platform/httpserver"
	"github.com/kvverti/serve-ex/internal/platform/logger"
	"github.com/kvverti/serve-ex/internal/platform/metrics"
	"github.com/kvverti/serve-ex/internal/receipt"
	"github.com/kvverti/serve-ex/internal/receipt/handler"
)

func main() {
	fs := ff.NewFlagSet("receipts-server")
	var (
		addr              = fs.StringLong("addr", config.DefaultAddr, "HTTP listen address")
		readHeaderTimeout = fs.DurationLong("read-header-timeout", config.DefaultReadHeaderTimeout, "limit on reading request headers")
		shutdownTimeout   = fs.DurationLong("shutdown-timeout", config.DefaultShutdownTimeout, "graceful shutdown drain window")
	)
	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("RECEIPTS")); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Server{
		Addr:              *addr,
		ReadHeaderTimeout: *readHeaderTimeout,
		ShutdownTimeout:   *shutdownTimeout,
	}

	log := logger.New()
	m := metrics.New()

	store := receipt.NewInMemoryStore()
	service := receipt.NewService(store)
	h := handler.New(service, log, m)

	router := chi.NewRouter()
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())
	h.Register(router)

	srv := httpserver.New(cfg, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting receipt server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
