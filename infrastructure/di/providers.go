package di

import (
	"prioritize/application/commands"
	"prioritize/application/commands/bus"
	commandhandlers "prioritize/application/commands/handlers"
	"prioritize/application/ports"
	"prioritize/application/queries"
	querybus "prioritize/application/queries/bus"
	queryhandlers "prioritize/application/queries/handlers"
	"prioritize/infrastructure/config"
	"prioritize/infrastructure/graphclient"
	"prioritize/infrastructure/persistence/memory"
	"prioritize/interfaces/http/rest"
	pkgerrors "prioritize/pkg/errors"
	"prioritize/pkg/observability"

	"go.uber.org/zap"
)

const metricsNamespace = "prioritize"

// ProvideLogLevel creates the runtime adjustable log level
func ProvideLogLevel(cfg *config.Config) (zap.AtomicLevel, error) {
	return observability.NewAtomicLevel(cfg.LogLevel)
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config, level zap.AtomicLevel) (*zap.Logger, error) {
	return observability.NewLogger(cfg.Environment, level)
}

// ProvideMetrics creates the metrics collector
func ProvideMetrics() *observability.Collector {
	return observability.NewCollector(metricsNamespace)
}

// ProvideItemStore creates the item store
func ProvideItemStore(logger *zap.Logger) ports.ItemStore {
	return memory.NewItemStore(logger)
}

// ProvideCommandBus creates a command bus with registered handlers
func ProvideCommandBus(
	store ports.ItemStore,
	metrics *observability.Collector,
	logger *zap.Logger,
) (*bus.CommandBus, error) {
	commandBus := bus.NewCommandBus(
		bus.LoggingMiddleware(logger),
		bus.MetricsMiddleware(metrics),
	)

	registrations := []struct {
		cmd     bus.Command
		handler bus.CommandHandler
	}{
		{commands.PutItemCommand{}, commandhandlers.NewPutItemHandler(store, logger)},
		{commands.PutEdgeCommand{}, commandhandlers.NewPutEdgeHandler(store, logger)},
		{commands.RenameItemCommand{}, commandhandlers.NewRenameItemHandler(store, logger)},
		{commands.RemoveItemCommand{}, commandhandlers.NewRemoveItemHandler(store, logger)},
		{commands.RemoveEdgeCommand{}, commandhandlers.NewRemoveEdgeHandler(store, logger)},
	}
	for _, r := range registrations {
		if err := commandBus.Register(r.cmd, r.handler); err != nil {
			return nil, err
		}
	}

	return commandBus, nil
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(store ports.ItemStore, cfg *config.Config, logger *zap.Logger) (*querybus.QueryBus, error) {
	queryBus := querybus.NewQueryBus()

	registrations := []struct {
		query   querybus.Query
		handler querybus.QueryHandler
	}{
		{queries.GetVisDataSetQuery{}, queryhandlers.NewGetVisDataSetHandler(store, logger)},
		{queries.GetGraphvizQuery{}, queryhandlers.NewGetGraphvizHandler(store)},
		{queries.GetAppNameQuery{}, queryhandlers.NewGetAppNameHandler(cfg.AppName)},
	}
	for _, r := range registrations {
		if err := queryBus.Register(r.query, r.handler); err != nil {
			return nil, err
		}
	}

	return queryBus, nil
}

// ProvideErrorHandler creates the HTTP error handler
func ProvideErrorHandler(cfg *config.Config, logger *zap.Logger) *pkgerrors.ErrorHandler {
	return pkgerrors.NewErrorHandler(logger, cfg.IsDevelopment())
}

// ProvideRouter creates the HTTP router
func ProvideRouter(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	errorHandler *pkgerrors.ErrorHandler,
	metrics *observability.Collector,
	cfg *config.Config,
	logger *zap.Logger,
) *rest.Router {
	return rest.NewRouter(commandBus, queryBus, errorHandler, metrics, rest.RouterConfig{
		EnableCORS:     cfg.EnableCORS,
		AllowedOrigins: cfg.AllowedOrigins,
		EnableMetrics:  cfg.EnableMetrics,
	}, logger)
}

// ProvideClientOptions builds the graph client's network configuration
func ProvideClientOptions(cfg *config.Config) graphclient.Options {
	return graphclient.Options{
		BaseURL:     cfg.ServiceURL,
		ContentType: cfg.ContentType,
		Timeout:     cfg.RequestTimeout,
		Breaker: graphclient.BreakerConfig{
			MaxRequests:  cfg.Breaker.MaxRequests,
			Interval:     cfg.Breaker.Interval,
			Timeout:      cfg.Breaker.Timeout,
			FailureRatio: cfg.Breaker.FailureRatio,
			MinRequests:  cfg.Breaker.MinRequests,
		},
	}
}

// ProvideGraphClient creates the graph service client
func ProvideGraphClient(
	opts graphclient.Options,
	metrics *observability.Collector,
	logger *zap.Logger,
) (*graphclient.Client, error) {
	return graphclient.NewClient(opts, metrics, logger)
}
