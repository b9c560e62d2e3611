// Package spotify wraps the Spotify Web API client behind the shape
// the search service expects, and defines the media player entity
// through which the service discovers it.
package spotify

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	spotifyLib "github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/homeglue/spotify-home-search/internal/app/services/search"
)

type Config struct {
	ClientID     string
	ClientSecret string

	// HTTPClient overrides the transport used for token and API
	// requests. Nil means http.DefaultClient.
	HTTPClient *http.Client

	Tracer trace.Tracer
}

type Client struct {
	tracer trace.Tracer
	config clientcredentials.Config

	mu  sync.RWMutex
	api *spotifyLib.Client
}

func New(ctx context.Context, cfg Config) (*Client, error) {
	spotifyConfig := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}

	if cfg.HTTPClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, cfg.HTTPClient)
	}

	token, err := spotifyConfig.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("spotify token: %w", err)
	}

	httpClient := spotifyauth.New().Client(ctx, token)

	return &Client{
		tracer: cfg.Tracer,
		config: spotifyConfig,
		api:    spotifyLib.New(httpClient),
	}, nil
}

// Search queries the public catalog and flattens the kind-specific
// result page into items.
func (c *Client) Search(ctx context.Context, query string, kind search.Kind, limit int) ([]search.Item, error) {
	ctx, span := c.tracer.Start(ctx, "SpotifyClient.Search")
	defer span.End()

	span.SetAttributes(
		attribute.String("query", query),
		attribute.String("type", string(kind)),
	)

	searchType, err := toSearchType(kind)
	if err != nil {
		return nil, err
	}

	if err := c.renewTokenIfNeeded(ctx); err != nil {
		return nil, err
	}

	results, err := c.apiClient().Search(ctx, query, searchType, spotifyLib.Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("spotify search: %w", err)
	}

	return itemsFrom(results, kind), nil
}

// CurrentUserPlaylists returns the saved playlists of the account the
// client is authorized for.
func (c *Client) CurrentUserPlaylists(ctx context.Context, limit int) ([]search.Item, error) {
	ctx, span := c.tracer.Start(ctx, "SpotifyClient.CurrentUserPlaylists")
	defer span.End()

	if err := c.renewTokenIfNeeded(ctx); err != nil {
		return nil, err
	}

	page, err := c.apiClient().CurrentUsersPlaylists(ctx, spotifyLib.Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("spotify user playlists: %w", err)
	}

	items := make([]search.Item, 0, len(page.Playlists))
	for _, playlist := range page.Playlists {
		items = append(items, search.Item{URI: string(playlist.URI), Name: playlist.Name})
	}

	return items, nil
}

func (c *Client) apiClient() *spotifyLib.Client {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.api
}

// renewTokenIfNeeded recreates the API client when the current token is
// less than five minutes from expiry.
func (c *Client) renewTokenIfNeeded(ctx context.Context) error {
	token, err := c.apiClient().Token()
	if err != nil {
		return fmt.Errorf("spotify token: %w", err)
	}
	if time.Until(token.Expiry) > 5*time.Minute {
		return nil
	}

	fresh, err := c.config.Token(ctx)
	if err != nil {
		return fmt.Errorf("spotify token refresh: %w", err)
	}

	httpClient := spotifyauth.New().Client(ctx, fresh)

	c.mu.Lock()
	c.api = spotifyLib.New(httpClient)
	c.mu.Unlock()

	logrus.Info("Spotify token refreshed")

	return nil
}

func toSearchType(kind search.Kind) (spotifyLib.SearchType, error) {
	switch kind {
	case search.KindArtist:
		return spotifyLib.SearchTypeArtist, nil
	case search.KindAlbum:
		return spotifyLib.SearchTypeAlbum, nil
	case search.KindTrack:
		return spotifyLib.SearchTypeTrack, nil
	case search.KindPlaylist:
		return spotifyLib.SearchTypePlaylist, nil
	default:
		return 0, fmt.Errorf("unsearchable kind: %s", kind)
	}
}

func itemsFrom(results *spotifyLib.SearchResult, kind search.Kind) []search.Item {
	if results == nil {
		return nil
	}

	var items []search.Item

	switch kind {
	case search.KindArtist:
		if results.Artists == nil {
			return nil
		}
		for _, artist := range results.Artists.Artists {
			items = append(items, search.Item{URI: string(artist.URI), Name: artist.Name})
		}
	case search.KindAlbum:
		if results.Albums == nil {
			return nil
		}
		for _, album := range results.Albums.Albums {
			items = append(items, search.Item{URI: string(album.URI), Name: album.Name})
		}
	case search.KindTrack:
		if results.Tracks == nil {
			return nil
		}
		for _, track := range results.Tracks.Tracks {
			items = append(items, search.Item{URI: string(track.URI), Name: track.Name})
		}
	case search.KindPlaylist:
		if results.Playlists == nil {
			return nil
		}
		for _, playlist := range results.Playlists.Playlists {
			items = append(items, search.Item{URI: string(playlist.URI), Name: playlist.Name})
		}
	}

	return items
}
