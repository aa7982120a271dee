package mocks

import (
	"context"

	"prioritize/domain/core/entities"

	"github.com/stretchr/testify/mock"
)

// MockGraphService is a mock implementation of ports.GraphService
type MockGraphService struct {
	mock.Mock
}

func (m *MockGraphService) Snapshot(ctx context.Context) (*entities.DataSet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.DataSet), args.Error(1)
}

func (m *MockGraphService) AppName(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGraphService) PutItem(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockGraphService) PutEdge(ctx context.Context, from, to string) error {
	args := m.Called(ctx, from, to)
	return args.Error(0)
}

func (m *MockGraphService) RenameItem(ctx context.Context, oldName, newName string) error {
	args := m.Called(ctx, oldName, newName)
	return args.Error(0)
}

func (m *MockGraphService) RemoveItem(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockGraphService) RemoveEdge(ctx context.Context, from, to string) error {
	args := m.Called(ctx, from, to)
	return args.Error(0)
}

// MockRenderer is a mock implementation of ports.Renderer
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) SetData(snapshot *entities.Snapshot) {
	m.Called(snapshot)
}

func (m *MockRenderer) Redraw() {
	m.Called()
}

// MockErrorSignal is a mock implementation of ports.ErrorSignal
type MockErrorSignal struct {
	mock.Mock
}

func (m *MockErrorSignal) Signal(err error) {
	m.Called(err)
}
