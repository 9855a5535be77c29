package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IsaacDSC/eventory/cmd/setup"
	"github.com/IsaacDSC/eventory/internal/catalog"
	"github.com/IsaacDSC/eventory/internal/cfg"
	"github.com/IsaacDSC/eventory/internal/notify"
	"github.com/IsaacDSC/eventory/pkg/logs"
	"github.com/benbjohnson/clock"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// go run ./cmd/api --service=server
// go run ./cmd/api --service=worker
// go run ./cmd/api            (both)
func main() {
	service := flag.String("service", "all", "service to run: server, worker or all")
	flag.Parse()

	conf, err := cfg.Load()
	if err != nil {
		logs.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	cfg.SetConfig(conf)

	logs.SetDefault(logs.New(logs.WithLevel(logs.ParseLevel(conf.LogLevel)), logs.WithMaskedEmails("to", "email", "buyer_email")).With("service", *service))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := setup.NewDependencies(ctx, conf)
	if err != nil {
		logs.Error("Failed to initialize dependencies", "error", err)
		os.Exit(1)
	}

	runServer := *service == "server" || *service == "all"
	runWorker := *service == "worker" || *service == "all"
	if !runServer && !runWorker {
		logs.Error("Unknown service", "service", *service)
		os.Exit(2)
	}

	g, gctx := errgroup.WithContext(ctx)

	if runServer {
		catalogDeps := catalog.Deps{
			Fetch:     deps.Fetch,
			Cache:     deps.Cache,
			Repo:      deps.Store,
			Publisher: deps.Publisher,
			Clock:     clock.New(),
		}
		routes := append(catalog.Routes(catalogDeps), setup.AdminRoutes(conf.Admin, catalog.AdminRoutes(catalogDeps))...)
		srv := setup.NewServer(conf.ApiPort, routes...)

		g.Go(func() error {
			logs.Info("Starting HTTP server", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})

		g.Go(func() error {
			<-gctx.Done()
			start := time.Now()
			logs.Info("Shutting down servers...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			err := srv.Shutdown(shutdownCtx)
			logs.Info("HTTP server stopped", "elapsed_time", time.Since(start))
			return err
		})
	}

	if runWorker {
		relay := notify.NewRelay(conf.Notify.RelayURL, conf.Notify.Timeout.Std())
		worker, mux := setup.NewWorker(conf, notify.GetHandles(relay)...)

		g.Go(func() error {
			logs.Info("Starting worker", "queues", conf.AsynqConfig.Queues, "concurrency", conf.AsynqConfig.Concurrency)
			if err := worker.Start(mux); err != nil {
				return err
			}

			<-gctx.Done()
			start := time.Now()
			worker.Shutdown()
			logs.Info("Worker stopped", "elapsed_time", time.Since(start))
			return nil
		})
	}

	err = g.Wait()

	closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if closeErr := deps.Close(closeCtx); closeErr != nil {
		logs.Warn("Failed to close dependencies", "error", closeErr)
	}

	if err != nil {
		logs.Error("Service stopped with error", "error", err)
		os.Exit(1)
	}

	logs.Info("All servers shutdown complete")
}
