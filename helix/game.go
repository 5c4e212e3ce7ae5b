package helix

import (
	"encoding/json"
	"maps"
	"strconv"
	"strings"
)

// GameData is the wire shape of a game row
type GameData struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BoxArtURL string `json:"box_art_url"`
	IGDBID    string `json:"igdb_id,omitempty"`

	// Extra keeps row fields not modelled above, verbatim
	Extra map[string]json.RawMessage `json:"-"`
}

// gameFields has GameData's layout without its JSON methods
type gameFields GameData

var knownGameFields = []string{"id", "name", "box_art_url", "igdb_id"}

// UnmarshalJSON decodes a row, keeping unknown fields in Extra
func (d *GameData) UnmarshalJSON(b []byte) error {
	var fields gameFields
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(b, &all); err != nil {
		return err
	}
	for _, key := range knownGameFields {
		delete(all, key)
	}

	fields.Extra = nil
	if len(all) > 0 {
		fields.Extra = all
	}

	*d = GameData(fields)
	return nil
}

// MarshalJSON encodes the row together with any Extra fields
func (d GameData) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(gameFields(d))
	if err != nil || len(d.Extra) == 0 {
		return known, err
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(known, &merged); err != nil {
		return nil, err
	}
	for key, value := range d.Extra {
		if _, modelled := merged[key]; !modelled {
			merged[key] = value
		}
	}
	return json.Marshal(merged)
}

// Game is a read-only view over a game row
type Game struct {
	data   GameData
	client *Client
}

// NewGame wraps data. client may be nil; it is only used by Streams.
func NewGame(data GameData, client *Client) *Game {
	return &Game{data: data, client: client}
}

// ID returns the game ID
func (g *Game) ID() string { return g.data.ID }

// Name returns the game name
func (g *Game) Name() string { return g.data.Name }

// BoxArtURL returns the box art URL template, containing {width} and {height}
func (g *Game) BoxArtURL() string { return g.data.BoxArtURL }

// IGDBID returns the IGDB identifier, if known
func (g *Game) IGDBID() string { return g.data.IGDBID }

// BoxArtURLForSize fills the box art URL template with the given dimensions
func (g *Game) BoxArtURLForSize(width, height int) string {
	return strings.NewReplacer(
		"{width}", strconv.Itoa(width),
		"{height}", strconv.Itoa(height),
	).Replace(g.data.BoxArtURL)
}

// Data returns a copy of the underlying row
func (g *Game) Data() GameData {
	data := g.data
	data.Extra = maps.Clone(g.data.Extra)
	return data
}

// MarshalJSON encodes the row only
func (g *Game) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.data)
}

// Streams creates a paginator over the live streams playing this game
func (g *Game) Streams() (*PaginatedRequest[StreamData, *Stream], error) {
	if g.client == nil {
		return nil, ErrNoClient
	}
	return g.client.Streams().GetStreamsPaginated(StreamFilter{GameIDs: []string{g.data.ID}}), nil
}
