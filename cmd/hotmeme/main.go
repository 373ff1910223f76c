package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	redditadapter "github.com/ericfisherdev/hotmeme/internal/adapter/driven/reddit"
	httphandler "github.com/ericfisherdev/hotmeme/internal/adapter/driving/http"
	webhandler "github.com/ericfisherdev/hotmeme/internal/adapter/driving/web"
	"github.com/ericfisherdev/hotmeme/internal/application"
	"github.com/ericfisherdev/hotmeme/internal/config"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (fail fast on missing required env vars).
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr(),
		"credentials", cfg.Credentials,
		"user_agent", cfg.UserAgent,
		"upstream_timeout", cfg.UpstreamTimeout,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Wire the Reddit adapter and the fetch pipeline.
	redditClient := redditadapter.NewClient(cfg.UserAgent, cfg.UpstreamTimeout, slog.Default())
	memeSvc := application.NewMemeService(redditClient, redditClient, cfg.Credentials)

	// 4. Create web handler and register routes.
	mux := http.NewServeMux()
	webhandler.RegisterRoutes(mux, webhandler.NewHandler(memeSvc, slog.Default()))

	handler := httphandler.ApplyMiddleware(mux, slog.Default())

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// 5. Bind before serving so a busy port is a startup failure.
	ln, err := net.Listen("tcp", cfg.ListenAddr())
	if err != nil {
		return fmt.Errorf("binding %s: %w", cfg.ListenAddr(), err)
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	slog.Info("hotmeme started", "listen_addr", ln.Addr().String(), "subreddit", redditadapter.Subreddit)

	// 6. Wait for shutdown signal or a server failure.
	select {
	case <-ctx.Done():
		slog.Info("shutting down")
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	}

	// 7. Graceful shutdown with 10s timeout to drain in-flight requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}
