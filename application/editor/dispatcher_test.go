package editor

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"prioritize/application/ports/mocks"
	"prioritize/domain/core/entities"
	"prioritize/domain/core/valueobjects"
	pkgerrors "prioritize/pkg/errors"
	"prioritize/pkg/observability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticSource struct {
	snapshot *entities.Snapshot
}

func (s staticSource) Current() *entities.Snapshot {
	return s.snapshot
}

// testSnapshot holds x (2), y (3) and the edge x -> y (1)
func testSnapshot(t *testing.T) *entities.Snapshot {
	t.Helper()
	s, err := entities.NewSnapshot(entities.DataSet{
		Nodes: []entities.VisNode{
			{ID: 2, Label: "y", Value: 1, Group: "group5"},
			{ID: 3, Label: "x", Group: "group0"},
		},
		Edges: []entities.VisEdge{{From: 3, To: 2}},
	})
	require.NoError(t, err)
	return s
}

func newTestDispatcher(t *testing.T) (*Dispatcher, *mocks.MockGraphService) {
	t.Helper()
	service := new(mocks.MockGraphService)
	resolver := NewIdentityResolver(staticSource{testSnapshot(t)})
	return NewDispatcher(service, resolver, observability.NewCollector("test"), zap.NewNop()), service
}

func TestDispatcher_CreateNode_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	d, service := newTestDispatcher(t)
	service.On("PutItem", mock.Anything, "z").Return(nil)
	done := NewCompletion[entities.Node](nil)

	// Act
	dispatched, err := d.CreateNode(ctx, entities.Node{Handle: -1}, " z ", done)

	// Assert
	require.NoError(t, err)
	assert.True(t, dispatched)
	assert.Equal(t, Confirmed, done.Result().Outcome)
	assert.Equal(t, "z", done.Result().Value.Label)
	assert.Equal(t, valueobjects.Handle(-1), done.Result().Value.Handle)
	service.AssertExpectations(t)
}

func TestDispatcher_CreateNode_EmptyLabel(t *testing.T) {
	ctx := context.Background()
	d, service := newTestDispatcher(t)
	done := NewCompletion[entities.Node](nil)

	dispatched, err := d.CreateNode(ctx, entities.Node{Handle: -1}, "", done)

	assert.False(t, dispatched)
	assert.True(t, pkgerrors.IsValidation(err))
	assert.Equal(t, Cancelled, done.Result().Outcome)
	service.AssertNotCalled(t, "PutItem", mock.Anything, mock.Anything)
}

func TestDispatcher_CreateNode_Rejected(t *testing.T) {
	ctx := context.Background()
	d, service := newTestDispatcher(t)
	rejected := pkgerrors.NewRemoteRejectedError("PUT /item/put", http.StatusConflict, "exists")
	service.On("PutItem", mock.Anything, "x").Return(rejected)
	done := NewCompletion[entities.Node](nil)

	dispatched, err := d.CreateNode(ctx, entities.Node{Handle: -1}, "x", done)

	assert.True(t, dispatched)
	assert.True(t, pkgerrors.IsRemoteRejected(err))
	assert.Equal(t, Cancelled, done.Result().Outcome)
}

func TestDispatcher_CreateEdge_SelfLoop(t *testing.T) {
	ctx := context.Background()
	d, service := newTestDispatcher(t)
	done := NewCompletion[entities.Edge](nil)

	dispatched, err := d.CreateEdge(ctx, entities.Edge{Handle: -1, From: 3, To: 3}, done)

	assert.False(t, dispatched)
	assert.True(t, pkgerrors.IsValidation(err))
	assert.Equal(t, Cancelled, done.Result().Outcome)
	service.AssertNotCalled(t, "PutEdge", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatcher_CreateEdge_Success(t *testing.T) {
	ctx := context.Background()
	d, service := newTestDispatcher(t)
	service.On("PutEdge", mock.Anything, "y", "x").Return(nil)
	done := NewCompletion[entities.Edge](nil)

	dispatched, err := d.CreateEdge(ctx, entities.Edge{Handle: -1, From: 2, To: 3}, done)

	require.NoError(t, err)
	assert.True(t, dispatched)
	result := done.Result()
	assert.Equal(t, Confirmed, result.Outcome)
	assert.Equal(t, "y", result.Value.FromLabel)
	assert.Equal(t, "x", result.Value.ToLabel)
	service.AssertExpectations(t)
}

func TestDispatcher_CreateEdge_UnknownHandle(t *testing.T) {
	ctx := context.Background()
	d, service := newTestDispatcher(t)
	done := NewCompletion[entities.Edge](nil)

	dispatched, err := d.CreateEdge(ctx, entities.Edge{Handle: -1, From: 2, To: -4}, done)

	assert.False(t, dispatched)
	assert.True(t, pkgerrors.IsUnknownHandle(err))
	assert.Equal(t, Cancelled, done.Result().Outcome)
	service.AssertNotCalled(t, "PutEdge", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatcher_DeleteNode(t *testing.T) {
	ctx := context.Background()
	d, service := newTestDispatcher(t)
	service.On("RemoveItem", mock.Anything, "x").Return(nil)
	done := NewCompletion[entities.Node](nil)

	dispatched, err := d.DeleteNode(ctx, 3, done)

	require.NoError(t, err)
	assert.True(t, dispatched)
	assert.Equal(t, "x", done.Result().Value.Label)
	service.AssertExpectations(t)
}

func TestDispatcher_DeleteNode_NetworkFailure(t *testing.T) {
	ctx := context.Background()
	d, service := newTestDispatcher(t)
	service.On("RemoveItem", mock.Anything, "x").
		Return(pkgerrors.NewNetworkError("DELETE /item/remove failed", errors.New("connection refused")))
	done := NewCompletion[entities.Node](nil)

	dispatched, err := d.DeleteNode(ctx, 3, done)

	assert.True(t, dispatched)
	assert.True(t, pkgerrors.IsNetwork(err))
	assert.Equal(t, Cancelled, done.Result().Outcome)
}

func TestDispatcher_DeleteNode_UnknownHandle(t *testing.T) {
	ctx := context.Background()
	d, service := newTestDispatcher(t)
	done := NewCompletion[entities.Node](nil)

	dispatched, err := d.DeleteNode(ctx, 42, done)

	assert.False(t, dispatched)
	assert.True(t, pkgerrors.IsUnknownHandle(err))
	service.AssertNotCalled(t, "RemoveItem", mock.Anything, mock.Anything)
}

func TestDispatcher_DeleteEdge(t *testing.T) {
	ctx := context.Background()
	d, service := newTestDispatcher(t)
	service.On("RemoveEdge", mock.Anything, "x", "y").Return(nil)
	done := NewCompletion[entities.Edge](nil)

	dispatched, err := d.DeleteEdge(ctx, 1, done)

	require.NoError(t, err)
	assert.True(t, dispatched)
	assert.Equal(t, Confirmed, done.Result().Outcome)
	service.AssertExpectations(t)
}

func TestDispatcher_DeleteEdge_UnknownHandle(t *testing.T) {
	ctx := context.Background()
	d, service := newTestDispatcher(t)
	done := NewCompletion[entities.Edge](nil)

	dispatched, err := d.DeleteEdge(ctx, 7, done)

	assert.False(t, dispatched)
	assert.True(t, pkgerrors.IsUnknownHandle(err))
	service.AssertNotCalled(t, "RemoveEdge", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatcher_RenameNode(t *testing.T) {
	ctx := context.Background()
	d, service := newTestDispatcher(t)
	service.On("RenameItem", mock.Anything, "x", "w").Return(nil)
	done := NewCompletion[entities.Node](nil)

	dispatched, err := d.RenameNode(ctx, 3, "w", done)

	require.NoError(t, err)
	assert.True(t, dispatched)
	assert.Equal(t, "w", done.Result().Value.Label)
	assert.Equal(t, valueobjects.Handle(3), done.Result().Value.Handle)
	service.AssertExpectations(t)
}

func TestDispatcher_RenameNode_NoOp(t *testing.T) {
	tests := []struct {
		name  string
		label string
	}{
		{name: "cancelled", label: ""},
		{name: "blank", label: "   "},
		{name: "unchanged", label: "x"},
		{name: "unchanged after trim", label: " x "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, service := newTestDispatcher(t)
			done := NewCompletion[entities.Node](nil)

			dispatched, err := d.RenameNode(context.Background(), 3, tt.label, done)

			assert.False(t, dispatched)
			assert.True(t, pkgerrors.IsValidation(err))
			assert.Equal(t, Cancelled, done.Result().Outcome)
			service.AssertNotCalled(t, "RenameItem", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestDispatcher_RenameNode_Rejected(t *testing.T) {
	ctx := context.Background()
	d, service := newTestDispatcher(t)
	service.On("RenameItem", mock.Anything, "x", "y").
		Return(pkgerrors.NewRemoteRejectedError("PATCH /item/rename", http.StatusConflict, ""))
	done := NewCompletion[entities.Node](nil)

	dispatched, err := d.RenameNode(ctx, 3, "y", done)

	assert.True(t, dispatched)
	assert.True(t, pkgerrors.IsRemoteRejected(err))
	assert.Equal(t, Cancelled, done.Result().Outcome)
}

func TestIdentityResolver(t *testing.T) {
	r := NewIdentityResolver(staticSource{testSnapshot(t)})

	label, err := r.LabelOf(2)
	require.NoError(t, err)
	assert.Equal(t, "y", label)

	_, err = r.LabelOf(-1)
	assert.True(t, pkgerrors.IsUnknownHandle(err))

	edge, err := r.EdgeOf(1)
	require.NoError(t, err)
	assert.Equal(t, "x", edge.FromLabel)
	assert.Equal(t, "y", edge.ToLabel)

	_, err = r.EdgeOf(2)
	assert.True(t, pkgerrors.IsUnknownHandle(err))
}
