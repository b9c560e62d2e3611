package search

import (
	"context"
	"time"

	"github.com/homeglue/spotify-home-search/internal/infra/registry"
)

// Item is the shape the service requires from every search result. Both
// fields must be populated for an item to be usable.
type Item struct {
	URI  string `json:"uri"`
	Name string `json:"name"`
}

// Client is the streaming client handle resolved through the entity
// registry. Search results are returned in the client's own relevance
// order.
type Client interface {
	Search(ctx context.Context, query string, kind Kind, limit int) ([]Item, error)
	CurrentUserPlaylists(ctx context.Context, limit int) ([]Item, error)
}

// Coordinator is the capability a media player entity must expose for
// the resolver to borrow its client.
type Coordinator interface {
	Client() Client
}

// CoordinatorProvider is satisfied by entities backed by a coordinator.
type CoordinatorProvider interface {
	Coordinator() Coordinator
}

// Registry enumerates the live entities of the host process.
type Registry interface {
	EntityIDs() []string
	Domain(name string) []registry.Entity
}

// ClientResolver produces a client handle on demand and owns the
// single-slot cache behind it.
type ClientResolver interface {
	Resolve(ctx context.Context) (Client, error)
	UserPlaylists(ctx context.Context) ([]Item, error)
	Clear() bool
}

// Cache is the response cache for public search results.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
