package proto

import (
	"encoding/json"
	"time"
)

// Inbound message types understood by the server. Anything else is
// ignored at the boundary.
const (
	TypeUsername = "username"
	TypeMessage  = "message"
)

// Inbound is a frame received from a client. Type selects which of the
// optional fields is meaningful.
type Inbound struct {
	Type     string `json:"type"`
	Username string `json:"username,omitempty"`
	Content  string `json:"content,omitempty"`
}

// Outbound is a frame delivered to clients. Type is always "message",
// for chat and system notices alike; system notices carry the username
// "System".
type Outbound struct {
	Type      string `json:"type"`
	Username  string `json:"username"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// NewOutbound builds an outbound frame with an ISO-8601 UTC timestamp.
func NewOutbound(username, content string, ts time.Time) Outbound {
	return Outbound{
		Type:      TypeMessage,
		Username:  username,
		Content:   content,
		Timestamp: ts.UTC().Format(time.RFC3339),
	}
}

// Encode serializes the frame for the wire.
func (o Outbound) Encode() ([]byte, error) {
	return json.Marshal(o)
}
