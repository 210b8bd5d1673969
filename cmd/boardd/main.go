// Command boardd runs the in-memory board backend for local development
// and end-to-end testing of the gossip client. Data lives only as long as
// the process.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gossipboard/gossip-client/internal/config"
	"github.com/gossipboard/gossip-client/internal/repository"
	"github.com/gossipboard/gossip-client/internal/router"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := config.LoadDotEnv(); err != nil {
		log.Error("load .env", "error", err)
		os.Exit(1)
	}
	cfg := config.LoadServer()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var rdb *redis.Client
	if cfg.RateLimit.Enabled {
		client, err := config.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn("rate limiting disabled", "error", err)
		} else {
			rdb = client
			defer rdb.Close()
		}
	}

	e := router.New(cfg, repository.NewBoard(cfg.SeedTopics), rdb)
	addr := ":" + cfg.Port
	log.Info("listening", "addr", addr, "env", cfg.Env, "rate_limit", rdb != nil)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err)
			stop()
		}
	}()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "error", err)
	}
}
