package filter

import (
	"slices"
	"strings"

	"github.com/s0up4200/twitchclient/helix"
)

// GameEnv exposes a game to filter expressions
func GameEnv(g *helix.Game) map[string]any {
	return map[string]any{
		"ID":        g.ID(),
		"Name":      g.Name(),
		"BoxArtURL": g.BoxArtURL(),
		"IGDBID":    g.IGDBID(),
	}
}

// StreamEnv exposes a stream to filter expressions
func StreamEnv(s *helix.Stream) map[string]any {
	tags := s.Tags()
	lowerTags := make([]string, len(tags))
	for i, tag := range tags {
		lowerTags[i] = strings.ToLower(tag)
	}

	return map[string]any{
		"ID":          s.ID(),
		"UserID":      s.UserID(),
		"UserLogin":   s.UserLogin(),
		"UserName":    s.UserName(),
		"GameID":      s.GameID(),
		"GameName":    s.GameName(),
		"Title":       s.Title(),
		"ViewerCount": s.ViewerCount(),
		"StartedAt":   s.StartedAt(),
		"Language":    s.Language(),
		"Tags":        tags,
		"IsMature":    s.IsMature(),
		"hasTag": func(tag string) bool {
			return slices.Contains(lowerTags, strings.ToLower(tag))
		},
	}
}

// Apply returns the items that match f, preserving order
func Apply[T any](f CompiledFilter, items []T, env EnvFunc[T]) []T {
	if f == nil {
		return items
	}

	matches := make([]T, 0, len(items))
	for _, item := range items {
		if f.Match(env(item)) {
			matches = append(matches, item)
		}
	}
	return matches
}
