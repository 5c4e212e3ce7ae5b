package pubsub

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FrameType is the type of a PubSub protocol frame
type FrameType string

const (
	FrameTypePing      FrameType = "PING"
	FrameTypePong      FrameType = "PONG"
	FrameTypeListen    FrameType = "LISTEN"
	FrameTypeUnlisten  FrameType = "UNLISTEN"
	FrameTypeMessage   FrameType = "MESSAGE"
	FrameTypeResponse  FrameType = "RESPONSE"
	FrameTypeReconnect FrameType = "RECONNECT"
)

// Frame is a message received from the PubSub server
type Frame struct {
	Type  FrameType  `json:"type"`
	Nonce string     `json:"nonce,omitempty"`
	Error string     `json:"error,omitempty"`
	Data  *FrameData `json:"data,omitempty"`
}

// FrameData is the payload of a MESSAGE frame. Message is itself JSON,
// encoded as a string.
type FrameData struct {
	Topic   string `json:"topic"`
	Message string `json:"message"`
}

// ParseFrame decodes a raw server frame
func ParseFrame(raw []byte) (*Frame, error) {
	var frame Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return nil, &MalformedPayloadError{Err: err}
	}
	if frame.Type == "" {
		return nil, &MalformedPayloadError{Field: "type"}
	}
	return &frame, nil
}

// TopicChannelPoints is the channel points topic name
const TopicChannelPoints = "channel-points-channel-v1"

// Topic is a parsed PubSub topic such as channel-points-channel-v1.44322889
type Topic struct {
	Name string
	Args []string
}

// ParseTopic splits a topic into its name and arguments
func ParseTopic(s string) (Topic, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return Topic{}, fmt.Errorf("%w: %q", ErrInvalidTopic, s)
	}
	for _, p := range parts {
		if p == "" {
			return Topic{}, fmt.Errorf("%w: %q", ErrInvalidTopic, s)
		}
	}
	return Topic{Name: parts[0], Args: parts[1:]}, nil
}

// ChannelPointsTopic builds the channel points topic for a channel
func ChannelPointsTopic(channelID string) Topic {
	return Topic{Name: TopicChannelPoints, Args: []string{channelID}}
}

// String joins the topic back together
func (t Topic) String() string {
	return strings.Join(append([]string{t.Name}, t.Args...), ".")
}
