package rest

import (
	"net/http"

	"prioritize/application/commands/bus"
	querybus "prioritize/application/queries/bus"
	"prioritize/interfaces/http/rest/handlers"
	"prioritize/interfaces/http/rest/middleware"
	pkgerrors "prioritize/pkg/errors"
	"prioritize/pkg/observability"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// RouterConfig holds the switches for optional router features
type RouterConfig struct {
	EnableCORS     bool
	AllowedOrigins []string
	EnableMetrics  bool
}

// Router creates and configures the HTTP router
type Router struct {
	commandBus   *bus.CommandBus
	queryBus     *querybus.QueryBus
	errorHandler *pkgerrors.ErrorHandler
	metrics      *observability.Collector
	config       RouterConfig
	logger       *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	errorHandler *pkgerrors.ErrorHandler,
	metrics *observability.Collector,
	config RouterConfig,
	logger *zap.Logger,
) *Router {
	return &Router{
		commandBus:   commandBus,
		queryBus:     queryBus,
		errorHandler: errorHandler,
		metrics:      metrics,
		config:       config,
		logger:       logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Logger(rt.logger))
	router.Use(middleware.Metrics(rt.metrics))
	router.Use(rt.errorHandler.Middleware)

	if rt.config.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: rt.config.AllowedOrigins,
			AllowedMethods: []string{"GET", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID", "traceparent", "tracestate"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		rt.errorHandler.HandleStatus(w, r, http.StatusNotFound, "route not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		rt.errorHandler.HandleStatus(w, r, http.StatusMethodNotAllowed, "method not allowed")
	})

	router.Get("/health", rt.healthCheck)
	if rt.config.EnableMetrics {
		router.Handle("/metrics", rt.metrics.Handler())
	}

	graphHandler := handlers.NewGraphHandler(rt.queryBus, rt.errorHandler, rt.logger)
	router.Get("/app/name", graphHandler.GetAppName)

	router.Route("/item", func(r chi.Router) {
		itemHandler := handlers.NewItemHandler(rt.commandBus, rt.errorHandler, rt.logger)
		edgeHandler := handlers.NewEdgeHandler(rt.commandBus, rt.errorHandler, rt.logger)

		r.Get("/vis", graphHandler.GetVisDataSet)
		r.Get("/graphviz", graphHandler.GetGraphviz)
		r.Put("/put", itemHandler.PutItem)
		r.Put("/put-edge", edgeHandler.PutEdge)
		r.Patch("/rename", itemHandler.RenameItem)
		r.Delete("/remove", itemHandler.RemoveItem)
		r.Delete("/remove-edge", edgeHandler.RemoveEdge)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
