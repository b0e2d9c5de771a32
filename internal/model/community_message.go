package model

import "time"

// CommunityMessage is a public post on the community message board.
type CommunityMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	Avatar    *string   `json:"avatar"` // null when the poster gave none
	CreatedAt time.Time `json:"createdAt"`
}

// NewCommunityMessage is the insertable shape of a CommunityMessage.
type NewCommunityMessage struct {
	Name    string
	Message string
	Avatar  *string
}
