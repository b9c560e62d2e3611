package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/homeglue/spotify-home-search/internal/app/services/search"
)

type MockClient struct {
	mock.Mock
}

func (m *MockClient) Search(ctx context.Context, query string, kind search.Kind, limit int) ([]search.Item, error) {
	args := m.Called(ctx, query, kind, limit)

	var items []search.Item
	if args.Get(0) != nil {
		items = args.Get(0).([]search.Item)
	}

	return items, args.Error(1)
}

func (m *MockClient) CurrentUserPlaylists(ctx context.Context, limit int) ([]search.Item, error) {
	args := m.Called(ctx, limit)

	var items []search.Item
	if args.Get(0) != nil {
		items = args.Get(0).([]search.Item)
	}

	return items, args.Error(1)
}

type MockClientResolver struct {
	mock.Mock
}

func (m *MockClientResolver) Resolve(ctx context.Context) (search.Client, error) {
	args := m.Called(ctx)

	var client search.Client
	if args.Get(0) != nil {
		client = args.Get(0).(search.Client)
	}

	return client, args.Error(1)
}

func (m *MockClientResolver) UserPlaylists(ctx context.Context) ([]search.Item, error) {
	args := m.Called(ctx)

	var items []search.Item
	if args.Get(0) != nil {
		items = args.Get(0).([]search.Item)
	}

	return items, args.Error(1)
}

func (m *MockClientResolver) Clear() bool {
	args := m.Called()

	return args.Bool(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)

	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)

	return args.Error(0)
}
