package implementation

import (
	"context"

	"impl-tracker/core/compare"
	"impl-tracker/feature/implementation/store"
	"impl-tracker/feature/objects/models"

	"github.com/stretchr/testify/mock"
)

type mockDocuments struct {
	mock.Mock
}

func (m *mockDocuments) Get(ctx context.Context, kind models.Kind, id string) (*store.Document, error) {
	args := m.Called(ctx, kind, id)
	if doc, ok := args.Get(0).(*store.Document); ok {
		return doc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDocuments) Put(ctx context.Context, doc *store.Document) error {
	return m.Called(ctx, doc).Error(0)
}

type mockSnapshots struct {
	mock.Mock
}

func (m *mockSnapshots) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSnapshots) Put(ctx context.Context, key string, data []byte) error {
	return m.Called(ctx, key, data).Error(0)
}

type mockNames struct {
	mock.Mock
}

func (m *mockNames) ResolveNames(ctx context.Context, kind compare.ResolveKind, ids []string) (map[string]string, error) {
	args := m.Called(ctx, kind, ids)
	if names, ok := args.Get(0).(map[string]string); ok {
		return names, args.Error(1)
	}
	return nil, args.Error(1)
}
