package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"antcolony/internal/scenario"
	"antcolony/internal/sim"
	"antcolony/internal/stream"

	"github.com/pkg/errors"
)

func newLogger(level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})), nil
}

func main() {
	addr := flag.String("addr", ":8080", "server listen address")
	root := flag.String("scenarios", "./assets/simulations", "directory holding the scenarios")
	name := flag.String("scenario", "", "scenario to run, the first one found if empty")
	tick := flag.Duration("tick", 10*time.Millisecond, "wall clock time between two simulation steps")
	level := flag.String("log-level", "info", "log level: debug, info, warn or error")
	flag.Parse()

	logger, err := newLogger(*level)
	if err != nil {
		log.Fatalf("invalid log level: %v", err)
	}
	slog.SetDefault(logger)

	dir, err := scenario.Resolve(*root, *name)
	if err != nil {
		log.Fatalf("unable to find scenario: %v", err)
	}
	sc, err := scenario.Load(dir, logger)
	if err != nil {
		log.Fatalf("unable to load scenario: %v", err)
	}
	simulation, err := sim.New(sc, logger)
	if err != nil {
		log.Fatalf("unable to start simulation: %v", err)
	}
	hub := stream.NewHub(simulation, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		var last time.Time
		err := simulation.Run(ctx, *tick, func(snap sim.Snapshot) {
			// spectators don't need every tick
			if time.Since(last) < sc.Config.BroadcastInterval.Duration {
				return
			}
			last = time.Now()
			hub.Broadcast(snap)
		})
		if err != nil {
			logger.Error("simulation aborted", "err", err)
			stop()
		}
	}()

	mux := http.NewServeMux()
	mux.Handle("/ws/stream", hub)
	srv := &http.Server{Addr: *addr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown failed", "err", err)
		}
	}()

	logger.Info("serving spectators", "addr", *addr, "path", "/ws/stream", "scenario", sc.Name)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed: %v", err)
	}
}
