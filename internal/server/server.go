package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/craftplanner/internal/crafting"
	"github.com/osse101/craftplanner/internal/handler"
	"github.com/osse101/craftplanner/internal/logger"
	"github.com/osse101/craftplanner/internal/metrics"
)

// Options configures the HTTP server
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Version        string
	CatalogItems   int
	Readiness      handler.HealthChecker
}

type Server struct {
	httpServer      *http.Server
	craftingService crafting.Service
}

// NewServer creates a new Server instance
func NewServer(opts Options, craftingService crafting.Service) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, craftingService),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		craftingService: craftingService,
	}
}

// NewRouter builds the middleware stack and routes
func NewRouter(opts Options, craftingService crafting.Service) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(opts.Readiness))
	r.Get("/version", handler.HandleVersion(opts.Version, opts.CatalogItems))
	r.Handle("/metrics", promhttp.Handler())

	items := handler.NewItemHandlers(craftingService)
	sessions := handler.NewSessionHandlers(craftingService)

	r.Route(APIPrefix, func(r chi.Router) {
		r.Get("/resolve", items.HandleResolve)

		r.Route("/items", func(r chi.Router) {
			r.Get("/", items.HandleListItems)
			r.Get("/{itemID}", items.HandleGetItem)
			r.Get("/{itemID}/tree", items.HandleRecipeTree)
			r.Get("/{itemID}/calculate", items.HandleCalculate)
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", sessions.HandleCreateSession)

			r.Route("/{"+handler.SessionIDParam+"}", func(r chi.Router) {
				r.Delete("/", sessions.HandleDeleteSession)

				r.Route("/inventory", func(r chi.Router) {
					r.Get("/", sessions.HandleGetInventory)
					r.Put("/", sessions.HandleSetInventory)
					r.Delete("/", sessions.HandleClearInventory)
					r.Delete("/{itemID}", sessions.HandleRemoveInventoryItem)
				})

				r.Route("/build", func(r chi.Router) {
					r.Get("/", sessions.HandleGetBuildList)
					r.Post("/", sessions.HandleAddToBuildList)
					r.Delete("/", sessions.HandleClearBuildList)
					r.Put("/{itemID}", sessions.HandleUpdateBuildListItem)
					r.Delete("/{itemID}", sessions.HandleRemoveFromBuildList)
				})

				r.Get("/effective/{itemID}", sessions.HandleEffectiveQuantity)
				r.Get("/materials", sessions.HandleRequiredMaterials)
				r.Get("/materials/all", sessions.HandleAllMaterials)
				r.Get("/shopping", sessions.HandleShoppingList)
				r.Get("/steps", sessions.HandleCraftingSteps)
				r.Get("/buildings", sessions.HandleBuildings)
				r.Get("/report", sessions.HandleReport)
			})
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip logging for health checks and scrapes
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		// Honour an upstream request id so traces line up across proxies
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
