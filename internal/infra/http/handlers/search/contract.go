package search

import (
	"context"

	appsearch "github.com/homeglue/spotify-home-search/internal/app/services/search"
)

type SearchService interface {
	Search(ctx context.Context, query string, searchType string) (appsearch.Result, error)
	ClearCache(ctx context.Context) appsearch.ClearResult
}
