package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/tendant/simple-catalog/pkg/catalog"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "catalog-service"

// RouterOptions tunes the router built by NewRouter. Zero values disable the
// corresponding middleware.
type RouterOptions struct {
	Logger         *slog.Logger
	RequestTimeout time.Duration
	MaxBodyBytes   int64
	// CORSOrigins lists the origins allowed cross-origin access; "*" allows
	// any. Nil disables CORS handling.
	CORSOrigins []string
}

// NewRouter returns the complete HTTP surface of the catalog: the content
// routes under /content plus the root and health endpoints.
func NewRouter(service catalog.Service, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	chain := NewMiddlewareChain()
	if len(opts.CORSOrigins) > 0 {
		chain.Then(CORSMiddleware(opts.CORSOrigins, nil, nil))
	}
	chain.Then(RequestIDMiddleware).Then(LoggingMiddleware(opts.Logger)).Then(RecoveryMiddleware)
	if opts.MaxBodyBytes > 0 {
		chain.Then(RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	}
	r.Use(chain.Wrap)
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}

	MountRoot(r)
	r.Mount("/content", NewContentHandler(service).Routes())

	return r
}

// MountRoot registers the service banner and health endpoints on r.
func MountRoot(r chi.Router) {
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, MessageResponse{Message: "Catalog Service API"})
	})
	r.Get("/health", handleHealth)
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp int64  `json:"timestamp"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, HealthResponse{
		Status:    "healthy",
		Service:   ServiceName,
		Timestamp: time.Now().Unix(),
	})
}
