package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"taskbound/internal/config"
	"taskbound/internal/engine"
	"taskbound/internal/server"
	"taskbound/internal/store"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if v, err := log.ParseLevel(os.Getenv("TASKBOUND_LOG_LEVEL")); err == nil {
		log.SetLevel(v)
	}

	cfg := config.FromEnv()
	clock := engine.RealClock{}

	files, err := store.New(cfg.DataDir, cfg.AppVersion)
	if err != nil {
		log.WithError(err).Fatal("open data dir")
	}

	// Load whatever survived the last run and replay the wall-clock time the
	// process was away before anything can observe the state.
	doc := files.Load()
	initial := engine.Rehydrate(doc, cfg.AppVersion, clock.Now())

	st := engine.NewStore(initial, engine.Policy{
		ScoreOnAutoStrike: cfg.ScoreOnStrike,
		ReviveOnAddTime:   cfg.ReviveOnAddTime,
	})

	saver := store.NewSaver(files, st, cfg.SaveDebounce)
	st.Subscribe(saver.Notify)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticker := engine.NewTicker(st, clock, cfg.TickInterval)
	go ticker.Run(ctx)

	e := server.New(st, clock)
	go func() {
		log.WithField("addr", cfg.Addr).Info("taskbound listening")
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("server shutdown")
	}

	// Write any snapshot still waiting on the debounce timer so the next
	// launch catches up from this moment, not from the last quiet period.
	saver.Flush()
}
