package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/tendant/chi-demo/app"
	"github.com/tendant/simple-catalog/pkg/catalog/api"
	"github.com/tendant/simple-catalog/pkg/catalog/config"
)

// catalog-app serves the catalog on the chi-demo application shell, which
// supplies the listener, default middleware, metrics and the healthz endpoints.
func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadServerConfig()
	if err != nil {
		slog.Error("Failed to read configuration", "err", err)
		os.Exit(1)
	}
	slog.SetDefault(cfg.Logger())

	svc, err := cfg.BuildService(context.Background())
	if err != nil {
		slog.Error("Failed to build service", "err", err)
		os.Exit(1)
	}

	appConfig := app.DefaultAppConfig()
	opts := []app.Option{
		app.WithAppConfig(appConfig),
		app.WithReqLogger(app.DefaultHttpLogger()),
		app.WithMetrics(appConfig.Metrics.Enabled),
	}
	// The shell's CORS handler runs at the mux level, so preflights are
	// answered before route matching.
	if len(cfg.CORSOrigins) > 0 {
		corsOptions := app.DefaultCorsOptions()
		corsOptions.AllowedOrigins = cfg.CORSOrigins
		corsOptions.AllowedHeaders = append(corsOptions.AllowedHeaders, "X-Request-ID")
		opts = append(opts, app.WithCors(corsOptions))
	}
	server := app.NewApp(opts...)

	app.RoutesHealthz(server.R)
	app.RoutesHealthzReady(server.R)

	contentHandler := api.NewContentHandler(svc)
	server.R.Group(func(r chi.Router) {
		r.Use(api.RequestIDMiddleware, api.RecoveryMiddleware)
		if cfg.MaxBodyBytes > 0 {
			r.Use(api.RequestSizeLimitMiddleware(cfg.MaxBodyBytes))
		}
		api.MountRoot(r)
		r.Mount("/content", contentHandler.Routes())
	})

	server.Run()
}
