package search

import "strings"

// Normalize strips the command words a voice assistant tends to leave
// in a query ("play", "artist", "song", ...) so the catalog search sees
// only the name the user meant. Pure function.
func Normalize(raw string, kind Kind) string {
	query := strings.ToLower(strings.TrimSpace(raw))
	query = strings.TrimPrefix(query, "play ")

	switch kind {
	case KindArtist:
		query = strings.ReplaceAll(query, "artist ", "")
		query = strings.ReplaceAll(query, "group ", "")
		query = strings.ReplaceAll(query, "band ", "")
	case KindAlbum:
		query = strings.ReplaceAll(query, "album ", "")
	case KindTrack:
		query = strings.ReplaceAll(query, "song ", "")
		query = strings.ReplaceAll(query, "track ", "")
	case KindPlaylist, KindUserPlaylist:
		query = strings.ReplaceAll(query, "playlists", "")
		query = strings.ReplaceAll(query, "playlist", "")
	}

	return strings.Join(strings.Fields(query), " ")
}
