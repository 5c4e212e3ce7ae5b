package pubsub

import (
	"context"
	"encoding/json"
	"time"

	"github.com/s0up4200/twitchclient/helix"
)

// MessageTypeRewardRedeemed is the inner type of a redemption message
const MessageTypeRewardRedeemed = "reward-redeemed"

// RedemptionStatus is the fulfilment state of a redemption
type RedemptionStatus string

const (
	// RedemptionStatusFulfilled marks a completed redemption
	RedemptionStatusFulfilled RedemptionStatus = "FULFILLED"
	// RedemptionStatusUnfulfilled marks a redemption awaiting fulfilment
	RedemptionStatusUnfulfilled RedemptionStatus = "UNFULFILLED"
)

type redemptionPayload struct {
	Type string             `json:"type,omitempty"`
	Data *redemptionWrapper `json:"data"`
}

type redemptionWrapper struct {
	Timestamp  time.Time       `json:"timestamp"`
	Redemption *redemptionData `json:"redemption"`
}

type redemptionData struct {
	ID         string           `json:"id"`
	User       *redemptionUser  `json:"user"`
	ChannelID  string           `json:"channel_id"`
	RedeemedAt time.Time        `json:"redeemed_at"`
	Reward     *rewardData      `json:"reward"`
	UserInput  *string          `json:"user_input,omitempty"`
	Status     RedemptionStatus `json:"status"`
}

type redemptionUser struct {
	ID          string `json:"id"`
	Login       string `json:"login,omitempty"`
	DisplayName string `json:"display_name"`
}

type rewardData struct {
	ID                  string `json:"id"`
	ChannelID           string `json:"channel_id"`
	Title               string `json:"title"`
	Prompt              string `json:"prompt"`
	Cost                int    `json:"cost"`
	IsUserInputRequired bool   `json:"is_user_input_required"`
	IsSubOnly           bool   `json:"is_sub_only"`
}

// RedemptionMessage informs about a user redeeming a channel points reward.
// It is a read-only view; the payload is validated when it is built.
type RedemptionMessage struct {
	data   redemptionPayload
	client *helix.Client
}

// NewRedemptionMessage decodes a redemption payload. client may be nil; it
// is only needed for User.
func NewRedemptionMessage(payload []byte, client *helix.Client) (*RedemptionMessage, error) {
	var data redemptionPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, &MalformedPayloadError{Err: err}
	}

	if err := data.validate(); err != nil {
		return nil, err
	}

	return &RedemptionMessage{data: data, client: client}, nil
}

func (p *redemptionPayload) validate() error {
	switch {
	case p.Data == nil:
		return &MalformedPayloadError{Field: "data"}
	case p.Data.Redemption == nil:
		return &MalformedPayloadError{Field: "data.redemption"}
	case p.Data.Redemption.ID == "":
		return &MalformedPayloadError{Field: "data.redemption.id"}
	case p.Data.Redemption.Reward == nil:
		return &MalformedPayloadError{Field: "data.redemption.reward"}
	case p.Data.Redemption.Reward.ID == "":
		return &MalformedPayloadError{Field: "data.redemption.reward.id"}
	case p.Data.Redemption.User == nil:
		return &MalformedPayloadError{Field: "data.redemption.user"}
	case p.Data.Redemption.User.ID == "":
		return &MalformedPayloadError{Field: "data.redemption.user.id"}
	case p.Data.Redemption.User.DisplayName == "":
		return &MalformedPayloadError{Field: "data.redemption.user.display_name"}
	}
	return nil
}

func (m *RedemptionMessage) redemption() *redemptionData { return m.data.Data.Redemption }

// MessageType returns the inner PubSub message type
func (m *RedemptionMessage) MessageType() string { return MessageTypeRewardRedeemed }

// RewardID returns the ID of the redeemed reward
func (m *RedemptionMessage) RewardID() string { return m.redemption().Reward.ID }

// RedemptionID returns the ID of the redemption itself
func (m *RedemptionMessage) RedemptionID() string { return m.redemption().ID }

// UserInput returns the text the user entered. ok is false when the reward
// took no input.
func (m *RedemptionMessage) UserInput() (input string, ok bool) {
	if m.redemption().UserInput == nil {
		return "", false
	}
	return *m.redemption().UserInput, true
}

// UserID returns the ID of the redeeming user
func (m *RedemptionMessage) UserID() string { return m.redemption().User.ID }

// UserName returns the display name of the redeeming user
func (m *RedemptionMessage) UserName() string { return m.redemption().User.DisplayName }

// UserLogin returns the login of the redeeming user, if sent
func (m *RedemptionMessage) UserLogin() string { return m.redemption().User.Login }

// ChannelID returns the channel the reward was redeemed in
func (m *RedemptionMessage) ChannelID() string { return m.redemption().ChannelID }

// RewardTitle returns the reward title
func (m *RedemptionMessage) RewardTitle() string { return m.redemption().Reward.Title }

// RewardPrompt returns the reward prompt
func (m *RedemptionMessage) RewardPrompt() string { return m.redemption().Reward.Prompt }

// RewardCost returns the reward cost in channel points
func (m *RedemptionMessage) RewardCost() int { return m.redemption().Reward.Cost }

// IsUserInputRequired reports whether the reward asks for text input
func (m *RedemptionMessage) IsUserInputRequired() bool {
	return m.redemption().Reward.IsUserInputRequired
}

// IsSubOnly reports whether the reward is limited to subscribers
func (m *RedemptionMessage) IsSubOnly() bool { return m.redemption().Reward.IsSubOnly }

// RedeemedAt returns when the reward was redeemed
func (m *RedemptionMessage) RedeemedAt() time.Time { return m.redemption().RedeemedAt }

// Status returns the fulfilment state
func (m *RedemptionMessage) Status() RedemptionStatus { return m.redemption().Status }

// Timestamp returns when the event was sent
func (m *RedemptionMessage) Timestamp() time.Time { return m.data.Data.Timestamp }

// User fetches the redeeming user from Helix. It returns nil, nil if the
// user no longer exists.
func (m *RedemptionMessage) User(ctx context.Context) (*helix.User, error) {
	if m.client == nil {
		return nil, helix.ErrNoClient
	}
	return m.client.Users().GetUserByID(ctx, m.UserID())
}
