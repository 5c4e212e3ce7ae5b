package helix

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// StreamType is the live state reported for a stream
type StreamType string

const (
	// StreamTypeLive marks a live stream
	StreamTypeLive StreamType = "live"
	// StreamTypeNone is reported when the type is unknown
	StreamTypeNone StreamType = ""
)

// StreamData is the wire shape of a stream row
type StreamData struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	UserLogin    string     `json:"user_login"`
	UserName     string     `json:"user_name"`
	GameID       string     `json:"game_id"`
	GameName     string     `json:"game_name"`
	Type         StreamType `json:"type"`
	Title        string     `json:"title"`
	ViewerCount  int        `json:"viewer_count"`
	StartedAt    time.Time  `json:"started_at"`
	Language     string     `json:"language"`
	ThumbnailURL string     `json:"thumbnail_url"`
	Tags         []string   `json:"tags"`
	IsMature     bool       `json:"is_mature"`
}

// Stream is a read-only view over a stream row
type Stream struct {
	data   StreamData
	client *Client
}

// NewStream wraps data
func NewStream(data StreamData, client *Client) *Stream {
	return &Stream{data: data, client: client}
}

// ID returns the stream ID
func (s *Stream) ID() string { return s.data.ID }

// UserID returns the broadcaster's user ID
func (s *Stream) UserID() string { return s.data.UserID }

// UserLogin returns the broadcaster's login name
func (s *Stream) UserLogin() string { return s.data.UserLogin }

// UserName returns the broadcaster's display name
func (s *Stream) UserName() string { return s.data.UserName }

// GameID returns the ID of the game being played, empty when unset
func (s *Stream) GameID() string { return s.data.GameID }

// GameName returns the name of the game being played
func (s *Stream) GameName() string { return s.data.GameName }

// Type returns the live state, StreamTypeNone when unknown
func (s *Stream) Type() StreamType { return s.data.Type }

// Title returns the stream title
func (s *Stream) Title() string { return s.data.Title }

// ViewerCount returns the current number of viewers
func (s *Stream) ViewerCount() int { return s.data.ViewerCount }

// StartedAt returns when the broadcast started
func (s *Stream) StartedAt() time.Time { return s.data.StartedAt }

// Language returns the broadcast language as an ISO 639-1 code
func (s *Stream) Language() string { return s.data.Language }

// ThumbnailURL returns the thumbnail URL template, containing {width} and {height}
func (s *Stream) ThumbnailURL() string { return s.data.ThumbnailURL }

// IsMature reports whether the stream is intended for mature audiences
func (s *Stream) IsMature() bool { return s.data.IsMature }

// Tags returns a copy of the stream tags
func (s *Stream) Tags() []string {
	return append([]string(nil), s.data.Tags...)
}

// ThumbnailURLForSize fills the thumbnail URL template with the given dimensions
func (s *Stream) ThumbnailURLForSize(width, height int) string {
	return strings.NewReplacer(
		"{width}", strconv.Itoa(width),
		"{height}", strconv.Itoa(height),
	).Replace(s.data.ThumbnailURL)
}

// Data returns a copy of the underlying row
func (s *Stream) Data() StreamData {
	d := s.data
	d.Tags = s.Tags()
	return d
}

// MarshalJSON encodes the row only
func (s *Stream) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.data)
}

// User fetches the broadcaster of this stream
func (s *Stream) User(ctx context.Context) (*User, error) {
	if s.client == nil {
		return nil, ErrNoClient
	}
	return s.client.Users().GetUserByID(ctx, s.data.UserID)
}

// Game fetches the game being played, or nil when none is set
func (s *Stream) Game(ctx context.Context) (*Game, error) {
	if s.client == nil {
		return nil, ErrNoClient
	}
	if s.data.GameID == "" {
		return nil, nil
	}
	return s.client.Games().GetGameByID(ctx, s.data.GameID)
}
