package spotify

import (
	"github.com/homeglue/spotify-home-search/internal/app/services/search"
)

// Coordinator owns the API client on behalf of a media player entity,
// mirroring how the platform's Spotify integration structures its
// entities.
type Coordinator struct {
	client *Client
}

func NewCoordinator(client *Client) *Coordinator {
	return &Coordinator{client: client}
}

func (c *Coordinator) Client() search.Client {
	if c == nil || c.client == nil {
		return nil
	}

	return c.client
}

// MediaPlayerEntity is the registry entry the search service resolves
// its client through.
type MediaPlayerEntity struct {
	id          string
	coordinator *Coordinator
}

func NewMediaPlayerEntity(id string, coordinator *Coordinator) *MediaPlayerEntity {
	return &MediaPlayerEntity{
		id:          id,
		coordinator: coordinator,
	}
}

func (e *MediaPlayerEntity) EntityID() string {
	return e.id
}

func (e *MediaPlayerEntity) Domain() string {
	return "media_player"
}

func (e *MediaPlayerEntity) Coordinator() search.Coordinator {
	if e.coordinator == nil {
		return nil
	}

	return e.coordinator
}
