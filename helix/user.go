package helix

import (
	"encoding/json"
	"time"
)

// UserData is the wire shape of a user row
type UserData struct {
	ID              string    `json:"id"`
	Login           string    `json:"login"`
	DisplayName     string    `json:"display_name"`
	Type            string    `json:"type"`
	BroadcasterType string    `json:"broadcaster_type"`
	Description     string    `json:"description"`
	ProfileImageURL string    `json:"profile_image_url"`
	OfflineImageURL string    `json:"offline_image_url"`
	Email           string    `json:"email,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// User is a read-only view over a user row
type User struct {
	data   UserData
	client *Client
}

// NewUser wraps data
func NewUser(data UserData, client *Client) *User {
	return &User{data: data, client: client}
}

func (u *User) ID() string                    { return u.data.ID }
func (u *User) Name() string                  { return u.data.Login }
func (u *User) DisplayName() string           { return u.data.DisplayName }
func (u *User) Description() string           { return u.data.Description }
func (u *User) ProfilePictureURL() string     { return u.data.ProfileImageURL }
func (u *User) OfflinePlaceholderURL() string { return u.data.OfflineImageURL }
func (u *User) Type() string                  { return u.data.Type }
func (u *User) BroadcasterType() string       { return u.data.BroadcasterType }
func (u *User) CreatedAt() time.Time          { return u.data.CreatedAt }

// Data returns a copy of the underlying row
func (u *User) Data() UserData { return u.data }

// MarshalJSON encodes the row only
func (u *User) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.data)
}
