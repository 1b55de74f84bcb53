package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/tendant/simple-catalog/pkg/catalog/api"
	"github.com/tendant/simple-catalog/pkg/catalog/config"
)

func main() {
	// Optional .env file; real environment variables take precedence
	_ = godotenv.Load()

	serverConfig, err := config.LoadServerConfig()
	if err != nil {
		slog.Error("Failed to load server configuration", "err", err)
		os.Exit(1)
	}

	logger := serverConfig.Logger()
	slog.SetDefault(logger)

	svc, err := serverConfig.BuildService(context.Background())
	if err != nil {
		slog.Error("Failed to build service", "err", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", serverConfig.Port),
		Handler:           api.NewRouter(svc, serverConfig.RouterOptions(logger)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Catalog server starting", "port", serverConfig.Port, "env", serverConfig.Environment)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "err", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "err", err)
		os.Exit(1)
	}

	slog.Info("Server exiting")
}
