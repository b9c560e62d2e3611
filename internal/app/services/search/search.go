package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

const searchLimit = 10

// Search resolves the streaming client and returns the best-matching
// item for the query. Every failure comes back as a wrapped sentinel
// error; nothing panics across this boundary.
func (s *Service) Search(ctx context.Context, rawQuery string, rawKind string) (Result, error) {
	ctx, span := s.tracer.Start(ctx, "SearchService.Search")
	defer span.End()

	if strings.TrimSpace(rawQuery) == "" {
		return Result{}, ErrEmptyQuery
	}

	kind, err := ParseKind(rawKind)
	if err != nil {
		return Result{}, err
	}

	query := rawQuery
	if s.normalize {
		query = Normalize(rawQuery, kind)
		logrus.WithFields(logrus.Fields{
			"raw":   rawQuery,
			"query": query,
			"type":  kind,
		}).Debug("Normalized query")
	}

	// User playlist lookups depend on mutable library state, so only
	// public kinds go through the response cache.
	key := "spotify:" + string(kind) + ":" + query
	if kind != KindUserPlaylist {
		if val, err := s.cache.Get(ctx, key); err == nil && val != "" {
			var cached Result
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	client, err := s.resolver.Resolve(ctx)
	if err != nil {
		return Result{}, err
	}

	var result Result
	switch kind {
	case KindUserPlaylist:
		result, err = s.searchUserPlaylists(ctx, client, query)
	case KindAlbum:
		result, err = s.searchAlbum(ctx, client, query)
	default:
		result, err = s.searchCatalog(ctx, client, query, kind)
	}
	if err != nil {
		return Result{}, err
	}

	if kind != KindUserPlaylist {
		if payload, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(ctx, key, payload, s.cacheTTL); err != nil {
				span.RecordError(err)
			}
		}
	}

	return result, nil
}

// searchCatalog runs one public search and applies the
// exact-match-then-first-result policy.
func (s *Service) searchCatalog(ctx context.Context, client Client, query string, kind Kind) (Result, error) {
	items, err := client.Search(ctx, query, kind, searchLimit)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrClient, err.Error())
	}
	if len(items) == 0 {
		return Result{}, fmt.Errorf("%w: no %s found for: %s", ErrNoResults, kind, query)
	}

	item, exact := selectMatch(items, query)
	logSelection(kind, item, matchLabel(exact))

	return resultFrom(item, kind)
}

// searchAlbum behaves like searchCatalog but widens to a track search
// when no album title matches a multi-word query exactly. Voice
// assistants routinely mislabel song requests as albums; taking the top
// track is the better answer in that case.
func (s *Service) searchAlbum(ctx context.Context, client Client, query string) (Result, error) {
	items, err := client.Search(ctx, query, KindAlbum, searchLimit)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrClient, err.Error())
	}
	if len(items) == 0 {
		return Result{}, fmt.Errorf("%w: no %s found for: %s", ErrNoResults, KindAlbum, query)
	}

	item, exact := selectMatch(items, query)
	if !exact && len(strings.Fields(query)) >= 2 {
		tracks, err := client.Search(ctx, query, KindTrack, searchLimit)
		if err == nil && len(tracks) > 0 {
			logSelection(KindTrack, tracks[0], "album fallback")
			return resultFrom(tracks[0], KindTrack)
		}
	}

	logSelection(KindAlbum, item, matchLabel(exact))

	return resultFrom(item, KindAlbum)
}

// searchUserPlaylists looks through the user's saved playlists first,
// preferring an exact name match, then a substring match. Only when the
// library yields nothing does it fall back to a public playlist search.
func (s *Service) searchUserPlaylists(ctx context.Context, client Client, query string) (Result, error) {
	playlists, err := s.resolver.UserPlaylists(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Could not retrieve user playlists, falling back to public search")
	} else {
		if item, ok := findExact(playlists, query); ok {
			logSelection(KindPlaylist, item, "user library exact match")
			return resultFrom(item, KindPlaylist)
		}
		if item, ok := findSubstring(playlists, query); ok {
			logSelection(KindPlaylist, item, "user library partial match")
			return resultFrom(item, KindPlaylist)
		}
	}

	return s.searchCatalog(ctx, client, query, KindPlaylist)
}

// resultFrom rejects items missing either required field.
func resultFrom(item Item, kind Kind) (Result, error) {
	if item.URI == "" || item.Name == "" {
		return Result{}, fmt.Errorf("%w: invalid %s data from spotify", ErrInvalidItem, kind)
	}

	// user_playlist results are still playlists to the caller.
	resultType := kind
	if kind == KindUserPlaylist {
		resultType = KindPlaylist
	}

	return Result{URI: item.URI, Name: item.Name, Type: string(resultType)}, nil
}

func matchLabel(exact bool) string {
	if exact {
		return "exact match"
	}
	return "first result"
}

func logSelection(kind Kind, item Item, match string) {
	logrus.WithFields(logrus.Fields{
		"type":  kind,
		"name":  item.Name,
		"uri":   item.URI,
		"match": match,
	}).Info("Selected search result")
}
