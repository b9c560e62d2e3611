// Package search implements the two service operations of the
// integration: searching the streaming catalog for an artist, album,
// track or playlist, and resetting the cached client handle.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrEmptyQuery    = fmt.Errorf("no query provided")
	ErrInvalidKind   = fmt.Errorf("invalid search type")
	ErrNotConfigured = fmt.Errorf("spotify not configured")
	ErrNotAvailable  = fmt.Errorf("spotify client not available")
	ErrNoResults     = fmt.Errorf("no results found")
	ErrInvalidItem   = fmt.Errorf("invalid item data")
	ErrClient        = fmt.Errorf("spotify client error")
)

// Kind is a supported search type.
type Kind string

const (
	KindArtist       Kind = "artist"
	KindAlbum        Kind = "album"
	KindTrack        Kind = "track"
	KindPlaylist     Kind = "playlist"
	KindUserPlaylist Kind = "user_playlist"
)

// ParseKind validates a raw search type.
func ParseKind(raw string) (Kind, error) {
	switch Kind(raw) {
	case KindArtist, KindAlbum, KindTrack, KindPlaylist, KindUserPlaylist:
		return Kind(raw), nil
	default:
		return "", fmt.Errorf("%w: %q (must be one of artist, album, track, playlist, user_playlist)", ErrInvalidKind, raw)
	}
}

// Result is the successful outcome of a search: the best-matching
// item's identifier, display name and result type.
type Result struct {
	URI  string `json:"uri"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// ClearResult reports the outcome of a cache reset.
type ClearResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Config carries the service options.
type Config struct {
	// CacheTTL bounds the lifetime of response-cache entries.
	CacheTTL time.Duration

	// NormalizeQueries strips voice-assistant filler words from
	// queries before searching.
	NormalizeQueries bool
}

type Service struct {
	tracer    trace.Tracer
	resolver  ClientResolver
	cache     Cache
	cacheTTL  time.Duration
	normalize bool
}

func New(
	tracer trace.Tracer,
	resolver ClientResolver,
	cache Cache,
	cfg Config,
) *Service {
	return &Service{
		tracer:    tracer,
		resolver:  resolver,
		cache:     cache,
		cacheTTL:  cfg.CacheTTL,
		normalize: cfg.NormalizeQueries,
	}
}

// ClearCache drops the cached client handle and user playlists. It
// reports whether anything was actually cleared and never fails.
func (s *Service) ClearCache(ctx context.Context) ClearResult {
	_, span := s.tracer.Start(ctx, "SearchService.ClearCache")
	defer span.End()

	if !s.resolver.Clear() {
		return ClearResult{Success: false, Message: "Cache was already empty"}
	}

	logrus.Info("Cleared spotify client cache")

	return ClearResult{Success: true, Message: "Cache cleared"}
}
