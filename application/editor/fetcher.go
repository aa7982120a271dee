package editor

import (
	"context"
	"sync/atomic"

	"prioritize/application/ports"
	"prioritize/domain/core/entities"
	pkgerrors "prioritize/pkg/errors"
	"prioritize/pkg/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "prioritize/editor"

// SnapshotFetcher pulls the whole graph from the graph service and hands it
// to the renderer. It keeps the last good snapshot; a failed fetch leaves
// it on screen and raises the error signal.
type SnapshotFetcher struct {
	service  ports.GraphService
	renderer ports.Renderer
	signal   ports.ErrorSignal
	metrics  *observability.Collector
	logger   *zap.Logger
	tracer   trace.Tracer

	current atomic.Pointer[entities.Snapshot]
}

// NewSnapshotFetcher creates a fetcher that starts from an empty snapshot
func NewSnapshotFetcher(
	service ports.GraphService,
	renderer ports.Renderer,
	signal ports.ErrorSignal,
	metrics *observability.Collector,
	logger *zap.Logger,
) *SnapshotFetcher {
	f := &SnapshotFetcher{
		service:  service,
		renderer: renderer,
		signal:   signal,
		metrics:  metrics,
		logger:   logger,
		tracer:   otel.Tracer(tracerName),
	}
	f.current.Store(entities.EmptySnapshot())
	return f
}

// Current returns the snapshot that is rendered right now
func (f *SnapshotFetcher) Current() *entities.Snapshot {
	return f.current.Load()
}

// Fetch replaces the rendered graph with the service's current one and
// triggers a redraw.
func (f *SnapshotFetcher) Fetch(ctx context.Context) (*entities.Snapshot, error) {
	ctx, span := f.tracer.Start(ctx, "editor.fetch_snapshot")
	defer span.End()

	ds, err := f.service.Snapshot(ctx)
	if err != nil {
		return nil, f.fail(span, err)
	}

	snapshot, err := entities.NewSnapshot(*ds)
	if err != nil {
		return nil, f.fail(span, err)
	}

	f.current.Store(snapshot)
	f.renderer.SetData(snapshot)
	f.renderer.Redraw()

	f.metrics.RecordRefresh("ok")
	span.SetAttributes(
		attribute.Int("snapshot.nodes", snapshot.NodeCount()),
		attribute.Int("snapshot.edges", snapshot.EdgeCount()),
	)
	f.logger.Debug("Snapshot refreshed",
		zap.Int("nodes", snapshot.NodeCount()),
		zap.Int("edges", snapshot.EdgeCount()),
	)

	return snapshot, nil
}

func (f *SnapshotFetcher) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	f.metrics.RecordRefresh(string(pkgerrors.Kind(err)))
	f.logger.Warn("Snapshot refresh failed, keeping previous snapshot", zap.Error(err))
	f.signal.Signal(err)
	return err
}
