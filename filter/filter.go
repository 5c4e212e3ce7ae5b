// Package filter narrows Helix result sets with expr-lang expressions.
//
// Expressions see the fields of the row being evaluated, for games ID, Name,
// BoxArtURL and IGDBID, for streams ID, UserID, UserLogin, UserName, GameID,
// GameName, Title, ViewerCount, StartedAt, Language, Tags and IsMature. The
// helpers containsFold, hasPrefixFold, hasSuffixFold, lower, upper and hasTag
// are always available. The case-sensitive infix operators work as usual:
//
//	lower(Title) contains "coffee" and GameName startsWith "League"
//
//	f, err := filter.NewCompiler().Compile(`ViewerCount > 500 and hasTag("english")`)
//	live := filter.Streams(f, page.Data)
package filter

import "github.com/s0up4200/twitchclient/helix"

// Games returns the games matching f
func Games(f CompiledFilter, games []*helix.Game) []*helix.Game {
	return Apply(f, games, GameEnv)
}

// Streams returns the streams matching f
func Streams(f CompiledFilter, streams []*helix.Stream) []*helix.Stream {
	return Apply(f, streams, StreamEnv)
}
