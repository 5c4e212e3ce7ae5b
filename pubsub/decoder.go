package pubsub

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/s0up4200/twitchclient/helix"
)

// Message is a decoded topic message
type Message interface {
	MessageType() string
}

var _ Message = (*RedemptionMessage)(nil)

// DecodeMessage decodes the topic message carried by a MESSAGE frame.
// client is handed to the message for later enrichment and may be nil.
func DecodeMessage(frame *Frame, client *helix.Client) (Message, error) {
	if frame.Type != FrameTypeMessage || frame.Data == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotMessage, frame.Type)
	}

	topic, err := ParseTopic(frame.Data.Topic)
	if err != nil {
		return nil, err
	}

	switch topic.Name {
	case TopicChannelPoints:
		return decodeChannelPoints([]byte(frame.Data.Message), client)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedTopic, topic.Name)
	}
}

func decodeChannelPoints(message []byte, client *helix.Client) (Message, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(message, &head); err != nil {
		return nil, &MalformedPayloadError{Err: err}
	}

	switch head.Type {
	case MessageTypeRewardRedeemed:
		return NewRedemptionMessage(message, client)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMessageType, head.Type)
	}
}

// Decoder turns raw frames into messages bound to a Helix client
type Decoder struct {
	client *helix.Client
	logger zerolog.Logger
}

// NewDecoder creates a Decoder. client may be nil.
func NewDecoder(client *helix.Client, logger zerolog.Logger) *Decoder {
	return &Decoder{client: client, logger: logger}
}

// Decode parses a raw frame and decodes its topic message
func (d *Decoder) Decode(raw []byte) (Message, error) {
	frame, err := ParseFrame(raw)
	if err != nil {
		return nil, err
	}

	msg, err := DecodeMessage(frame, d.client)
	if err != nil {
		d.logger.Debug().Err(err).Str("type", string(frame.Type)).Msg("Skipping PubSub frame")
		return nil, err
	}

	d.logger.Trace().
		Str("topic", frame.Data.Topic).
		Str("message_type", msg.MessageType()).
		Msg("Decoded PubSub message")

	return msg, nil
}
