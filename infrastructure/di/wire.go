//go:build wireinject
// +build wireinject

package di

import (
	"prioritize/application/commands/bus"
	"prioritize/application/editor"
	"prioritize/application/ports"
	querybus "prioritize/application/queries/bus"
	"prioritize/infrastructure/config"
	"prioritize/infrastructure/graphclient"
	"prioritize/interfaces/http/rest"
	pkgerrors "prioritize/pkg/errors"
	"prioritize/pkg/observability"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// ServerContainer holds the dependencies of the graph service
type ServerContainer struct {
	Config       *config.Config
	Level        zap.AtomicLevel
	Logger       *zap.Logger
	Metrics      *observability.Collector
	Store        ports.ItemStore
	CommandBus   *bus.CommandBus
	QueryBus     *querybus.QueryBus
	ErrorHandler *pkgerrors.ErrorHandler
	Router       *rest.Router
}

// EditorContainer holds the dependencies of an edit session
type EditorContainer struct {
	Config  *config.Config
	Level   zap.AtomicLevel
	Logger  *zap.Logger
	Metrics *observability.Collector
	Client  *graphclient.Client
	Session *editor.Session
}

// CommonSet provides what both binaries need
var CommonSet = wire.NewSet(
	ProvideLogLevel,
	ProvideLogger,
	ProvideMetrics,
)

// ServerSet provides the graph service
var ServerSet = wire.NewSet(
	CommonSet,
	ProvideItemStore,
	ProvideCommandBus,
	ProvideQueryBus,
	ProvideErrorHandler,
	ProvideRouter,
	wire.Struct(new(ServerContainer), "*"),
)

// EditorSet provides the editor core on top of the HTTP graph client
var EditorSet = wire.NewSet(
	CommonSet,
	ProvideClientOptions,
	ProvideGraphClient,
	wire.Bind(new(ports.GraphService), new(*graphclient.Client)),
	editor.NewSnapshotFetcher,
	wire.Bind(new(editor.SnapshotSource), new(*editor.SnapshotFetcher)),
	editor.NewIdentityResolver,
	editor.NewDispatcher,
	editor.NewSession,
	wire.Struct(new(EditorContainer), "*"),
)

// InitializeServer creates a fully wired graph service container
func InitializeServer(cfg *config.Config) (*ServerContainer, error) {
	wire.Build(ServerSet)
	return nil, nil
}

// InitializeEditor creates a fully wired edit session around renderer
func InitializeEditor(cfg *config.Config, renderer ports.Renderer, signal ports.ErrorSignal) (*EditorContainer, error) {
	wire.Build(EditorSet)
	return nil, nil
}
