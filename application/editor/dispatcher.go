package editor

import (
	"context"
	"fmt"

	"prioritize/application/ports"
	"prioritize/domain/core/entities"
	"prioritize/domain/core/valueobjects"
	pkgerrors "prioritize/pkg/errors"
	"prioritize/pkg/observability"

	"go.uber.org/zap"
)

// Intent names the kind of edit a user asked for
type Intent string

const (
	IntentCreateNode Intent = "create_node"
	IntentCreateEdge Intent = "create_edge"
	IntentDeleteNode Intent = "delete_node"
	IntentDeleteEdge Intent = "delete_edge"
	IntentRenameNode Intent = "rename_node"
)

// Dispatcher turns edit intents into calls to the graph service. Every
// operation runs its local checks first, issues at most one remote call and
// settles the completion exactly once before it returns. The dispatched
// result tells the caller whether the graph service was contacted.
type Dispatcher struct {
	service  ports.GraphService
	resolver *IdentityResolver
	metrics  *observability.Collector
	logger   *zap.Logger
}

// NewDispatcher creates a new dispatcher
func NewDispatcher(
	service ports.GraphService,
	resolver *IdentityResolver,
	metrics *observability.Collector,
	logger *zap.Logger,
) *Dispatcher {
	return &Dispatcher{
		service:  service,
		resolver: resolver,
		metrics:  metrics,
		logger:   logger,
	}
}

// CreateNode persists a tentative node under the label the user entered.
// An empty or cancelled prompt rolls the node back without a remote call.
func (d *Dispatcher) CreateNode(
	ctx context.Context,
	tentative entities.Node,
	proposed string,
	done *Completion[entities.Node],
) (dispatched bool, err error) {
	label, err := valueobjects.NewLabel(proposed)
	if err != nil {
		return false, rollback(d, done, IntentCreateNode, err)
	}

	if err := d.service.PutItem(ctx, label.String()); err != nil {
		return true, rollback(d, done, IntentCreateNode, err)
	}

	tentative.Label = label.String()
	return true, confirm(d, done, IntentCreateNode, tentative)
}

// CreateEdge persists a tentative edge between two rendered nodes.
// Self-loops are rolled back before any remote call.
func (d *Dispatcher) CreateEdge(
	ctx context.Context,
	tentative entities.Edge,
	done *Completion[entities.Edge],
) (dispatched bool, err error) {
	if tentative.From == tentative.To {
		return false, rollback(d, done, IntentCreateEdge,
			pkgerrors.NewValidationError("an edge cannot connect a node to itself"))
	}

	from, err := d.resolver.LabelOf(tentative.From)
	if err != nil {
		return false, rollback(d, done, IntentCreateEdge, err)
	}
	to, err := d.resolver.LabelOf(tentative.To)
	if err != nil {
		return false, rollback(d, done, IntentCreateEdge, err)
	}

	if err := d.service.PutEdge(ctx, from, to); err != nil {
		return true, rollback(d, done, IntentCreateEdge, err)
	}

	tentative.FromLabel = from
	tentative.ToLabel = to
	return true, confirm(d, done, IntentCreateEdge, tentative)
}

// DeleteNode removes a rendered node; the service drops its edges with it
func (d *Dispatcher) DeleteNode(
	ctx context.Context,
	handle valueobjects.Handle,
	done *Completion[entities.Node],
) (dispatched bool, err error) {
	node, err := d.resolver.NodeOf(handle)
	if err != nil {
		return false, rollback(d, done, IntentDeleteNode, err)
	}

	if err := d.service.RemoveItem(ctx, node.Label); err != nil {
		return true, rollback(d, done, IntentDeleteNode, err)
	}

	return true, confirm(d, done, IntentDeleteNode, node)
}

// DeleteEdge removes a rendered edge
func (d *Dispatcher) DeleteEdge(
	ctx context.Context,
	handle valueobjects.EdgeHandle,
	done *Completion[entities.Edge],
) (dispatched bool, err error) {
	edge, err := d.resolver.EdgeOf(handle)
	if err != nil {
		return false, rollback(d, done, IntentDeleteEdge, err)
	}

	if err := d.service.RemoveEdge(ctx, edge.FromLabel, edge.ToLabel); err != nil {
		return true, rollback(d, done, IntentDeleteEdge, err)
	}

	return true, confirm(d, done, IntentDeleteEdge, edge)
}

// RenameNode moves a rendered node to a new label. An empty, cancelled or
// unchanged label is a no-op that never reaches the service.
func (d *Dispatcher) RenameNode(
	ctx context.Context,
	handle valueobjects.Handle,
	proposed string,
	done *Completion[entities.Node],
) (dispatched bool, err error) {
	node, err := d.resolver.NodeOf(handle)
	if err != nil {
		return false, rollback(d, done, IntentRenameNode, err)
	}

	label, err := valueobjects.NewLabel(proposed)
	if err != nil {
		return false, rollback(d, done, IntentRenameNode, err)
	}
	if label.String() == node.Label {
		return false, rollback(d, done, IntentRenameNode,
			pkgerrors.NewValidationError(fmt.Sprintf("label %q is unchanged", node.Label)))
	}

	if err := d.service.RenameItem(ctx, node.Label, label.String()); err != nil {
		return true, rollback(d, done, IntentRenameNode, err)
	}

	node.Label = label.String()
	return true, confirm(d, done, IntentRenameNode, node)
}

func confirm[T any](d *Dispatcher, done *Completion[T], intent Intent, value T) error {
	if err := done.Confirm(value); err != nil {
		d.logger.Error("Intent settled twice", zap.String("intent", string(intent)), zap.Error(err))
		return err
	}
	d.metrics.RecordIntent(string(intent), Confirmed.String())
	d.logger.Info("Intent confirmed", zap.String("intent", string(intent)))
	return nil
}

// rollback cancels the completion and hands cause back to the caller
func rollback[T any](d *Dispatcher, done *Completion[T], intent Intent, cause error) error {
	if err := done.Cancel(); err != nil {
		d.logger.Error("Intent settled twice", zap.String("intent", string(intent)), zap.Error(err))
	}

	kind := pkgerrors.Kind(cause)
	d.metrics.RecordIntent(string(intent), string(kind))

	fields := []zap.Field{
		zap.String("intent", string(intent)),
		zap.String("reason", string(kind)),
		zap.Error(cause),
	}
	switch kind {
	case pkgerrors.ErrorTypeValidation:
		d.logger.Debug("Intent rolled back", fields...)
	case pkgerrors.ErrorTypeUnknownHandle:
		d.logger.Error("Intent rolled back on inconsistent state", fields...)
	default:
		d.logger.Warn("Intent rolled back", fields...)
	}
	return cause
}
