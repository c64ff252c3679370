package core

import "time"

// MessageKind distinguishes who authored an outbound message.
type MessageKind int

const (
	// MessageChat is a user-authored room message.
	MessageChat MessageKind = iota
	// MessageSystemNotice is a server-generated room announcement.
	MessageSystemNotice
)

// SystemName is the display name carried by server-generated notices.
const SystemName = "System"

// Message is the domain model for an outbound room message. The
// timestamp is assigned when the message is built for broadcast, so
// every recipient sees the same instant.
type Message struct {
	Kind      MessageKind
	From      string
	Content   string
	Timestamp time.Time
}

// ChatMessage builds a user message stamped with the current time.
func ChatMessage(from, content string) Message {
	return Message{
		Kind:      MessageChat,
		From:      from,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
}

// SystemNotice builds a server announcement stamped with the current time.
func SystemNotice(content string) Message {
	return Message{
		Kind:      MessageSystemNotice,
		From:      SystemName,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
}
