package search

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	mediaPlayerDomain = "media_player"
	entityMarker      = "spotify"

	userPlaylistLimit = 50
)

// Resolver finds the spotify client handle by walking the entity
// registry: the first media player entity whose id contains "spotify"
// must expose a coordinator, which must expose a client. The handle is
// kept in a single-slot cache together with the source entity id and
// the user's playlists; the slot is valid only while that entity id is
// still live, checked lazily on every use.
type Resolver struct {
	registry Registry

	mu            sync.Mutex
	client        Client
	entityID      string
	playlists     []Item
	havePlaylists bool
}

func NewResolver(registry Registry) *Resolver {
	return &Resolver{registry: registry}
}

// Resolve returns the cached client handle, or scans the registry for a
// fresh one. It fails with ErrNotConfigured when no spotify media
// player entity exists, and ErrNotAvailable when the entity lacks the
// coordinator/client structure.
func (r *Resolver) Resolve(ctx context.Context) (Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.resolveLocked(ctx)
}

func (r *Resolver) resolveLocked(_ context.Context) (Client, error) {
	if r.client != nil {
		if slices.Contains(r.registry.EntityIDs(), r.entityID) {
			logrus.Debug("Using cached spotify client")
			return r.client, nil
		}

		logrus.WithField("entity_id", r.entityID).Info("Cached spotify entity no longer exists, invalidating cache")
		r.clearLocked()
	}

	logrus.Debug("Cache miss, performing spotify entity lookup")

	var found CoordinatorProvider
	var foundID string
	for _, entity := range r.registry.Domain(mediaPlayerDomain) {
		if !strings.Contains(strings.ToLower(entity.EntityID()), entityMarker) {
			continue
		}

		provider, ok := entity.(CoordinatorProvider)
		if !ok {
			return nil, fmt.Errorf("%w: entity %s has no coordinator", ErrNotAvailable, entity.EntityID())
		}

		found = provider
		foundID = entity.EntityID()
		break
	}
	if found == nil {
		return nil, ErrNotConfigured
	}

	coordinator := found.Coordinator()
	if coordinator == nil {
		return nil, fmt.Errorf("%w: entity %s has no coordinator", ErrNotAvailable, foundID)
	}

	client := coordinator.Client()
	if client == nil {
		return nil, fmt.Errorf("%w: coordinator of %s has no client", ErrNotAvailable, foundID)
	}

	r.client = client
	r.entityID = foundID
	logrus.WithField("entity_id", foundID).Info("Cached spotify client")

	return client, nil
}

// UserPlaylists returns the user's saved playlists, fetching them at
// most once per cache generation. An empty library is cached too.
func (r *Resolver) UserPlaylists(ctx context.Context) ([]Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	client, err := r.resolveLocked(ctx)
	if err != nil {
		return nil, err
	}

	if r.havePlaylists {
		logrus.Debug("Using cached user playlists")
		return r.playlists, nil
	}

	playlists, err := client.CurrentUserPlaylists(ctx, userPlaylistLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrClient, err.Error())
	}

	r.playlists = playlists
	r.havePlaylists = true
	logrus.WithField("count", len(playlists)).Debug("Cached user playlists")

	return playlists, nil
}

// Clear empties every cache slot and reports whether any was populated.
func (r *Resolver) Clear() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.client == nil && !r.havePlaylists {
		return false
	}

	r.clearLocked()

	return true
}

func (r *Resolver) clearLocked() {
	r.client = nil
	r.entityID = ""
	r.playlists = nil
	r.havePlaylists = false
}
