package editor

import (
	"context"
	"fmt"
	"sync"

	"prioritize/application/ports"
	"prioritize/domain/core/entities"
	"prioritize/domain/core/valueobjects"
	pkgerrors "prioritize/pkg/errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Session is the edit-session reconciler. It runs one intent at a time:
// the remote call settles, the completion is confirmed or cancelled, and
// only then is the snapshot fetched again. Intents rejected before any
// network call leave the rendered snapshot untouched.
type Session struct {
	mu         sync.Mutex
	dispatcher *Dispatcher
	fetcher    *SnapshotFetcher
	service    ports.GraphService
	signal     ports.ErrorSignal
	logger     *zap.Logger
	tracer     trace.Tracer
}

// NewSession creates a new edit session
func NewSession(
	dispatcher *Dispatcher,
	fetcher *SnapshotFetcher,
	service ports.GraphService,
	signal ports.ErrorSignal,
	logger *zap.Logger,
) *Session {
	return &Session{
		dispatcher: dispatcher,
		fetcher:    fetcher,
		service:    service,
		signal:     signal,
		logger:     logger,
		tracer:     otel.Tracer(tracerName),
	}
}

// Open loads the first snapshot
func (s *Session) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.fetcher.Fetch(ctx)
	return err
}

// Title returns the window title for the session
func (s *Session) Title(ctx context.Context) (string, error) {
	name, err := s.service.AppName(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s | prioritize", name), nil
}

// Snapshot returns the snapshot currently rendered
func (s *Session) Snapshot() *entities.Snapshot {
	return s.fetcher.Current()
}

// Refresh fetches the snapshot on user request
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.fetcher.Fetch(ctx)
	return err
}

// CreateNode handles the add-node intent
func (s *Session) CreateNode(ctx context.Context, tentative entities.Node, label string, done *Completion[entities.Node]) error {
	return s.run(ctx, IntentCreateNode, func(ctx context.Context) (bool, error) {
		return s.dispatcher.CreateNode(ctx, tentative, label, done)
	})
}

// CreateEdge handles the add-edge intent
func (s *Session) CreateEdge(ctx context.Context, tentative entities.Edge, done *Completion[entities.Edge]) error {
	return s.run(ctx, IntentCreateEdge, func(ctx context.Context) (bool, error) {
		return s.dispatcher.CreateEdge(ctx, tentative, done)
	})
}

// DeleteNode handles the delete-node intent
func (s *Session) DeleteNode(ctx context.Context, handle valueobjects.Handle, done *Completion[entities.Node]) error {
	return s.run(ctx, IntentDeleteNode, func(ctx context.Context) (bool, error) {
		return s.dispatcher.DeleteNode(ctx, handle, done)
	})
}

// DeleteEdge handles the delete-edge intent
func (s *Session) DeleteEdge(ctx context.Context, handle valueobjects.EdgeHandle, done *Completion[entities.Edge]) error {
	return s.run(ctx, IntentDeleteEdge, func(ctx context.Context) (bool, error) {
		return s.dispatcher.DeleteEdge(ctx, handle, done)
	})
}

// RenameNode handles the rename-node intent
func (s *Session) RenameNode(ctx context.Context, handle valueobjects.Handle, label string, done *Completion[entities.Node]) error {
	return s.run(ctx, IntentRenameNode, func(ctx context.Context) (bool, error) {
		return s.dispatcher.RenameNode(ctx, handle, label, done)
	})
}

// run executes one intent and, when it reached the graph service, refreshes
// the snapshot after the completion has settled. The intent's own error is
// returned; a failed refresh is already signalled by the fetcher.
func (s *Session) run(ctx context.Context, intent Intent, op func(context.Context) (bool, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, span := s.tracer.Start(ctx, "editor."+string(intent))
	defer span.End()

	dispatched, err := op(ctx)
	span.SetAttributes(attribute.Bool("intent.dispatched", dispatched))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		// Local validation failures are silent rollbacks
		if !pkgerrors.IsValidation(err) {
			s.signal.Signal(err)
		}
	}

	if dispatched {
		if _, ferr := s.fetcher.Fetch(ctx); ferr != nil {
			s.logger.Debug("Refresh after intent failed",
				zap.String("intent", string(intent)),
				zap.Error(ferr),
			)
		}
	}

	return err
}
