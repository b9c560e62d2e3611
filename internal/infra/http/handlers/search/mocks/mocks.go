package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	appsearch "github.com/homeglue/spotify-home-search/internal/app/services/search"
)

type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, query string, searchType string) (appsearch.Result, error) {
	args := m.Called(ctx, query, searchType)

	var result appsearch.Result
	if args.Get(0) != nil {
		result = args.Get(0).(appsearch.Result)
	}

	return result, args.Error(1)
}

func (m *MockSearchService) ClearCache(ctx context.Context) appsearch.ClearResult {
	args := m.Called(ctx)

	return args.Get(0).(appsearch.ClearResult)
}
