package pubsub

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrMalformedPayload indicates a payload is missing required fields
	ErrMalformedPayload = errors.New("malformed payload")
	// ErrNotMessage indicates a frame that carries no topic message
	ErrNotMessage = errors.New("frame is not a topic message")
	// ErrUnsupportedTopic indicates a topic this package has no decoder for
	ErrUnsupportedTopic = errors.New("unsupported topic")
	// ErrUnsupportedMessageType indicates a message type this package has no decoder for
	ErrUnsupportedMessageType = errors.New("unsupported message type")
	// ErrInvalidTopic indicates a topic string that cannot be parsed
	ErrInvalidTopic = errors.New("invalid topic")
)

// MalformedPayloadError reports which part of a payload failed to decode
type MalformedPayloadError struct {
	Field string
	Err   error
}

func (e *MalformedPayloadError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed payload: missing %s", e.Field)
	}
	return fmt.Sprintf("malformed payload: %v", e.Err)
}

func (e *MalformedPayloadError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrMalformedPayload) match
func (e *MalformedPayloadError) Is(target error) bool {
	return target == ErrMalformedPayload
}
