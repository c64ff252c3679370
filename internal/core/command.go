package core

// CommandKind describes what an inbound frame asks the hub to do.
type CommandKind int

const (
	// CommandRename sets the client's display name.
	CommandRename CommandKind = iota
	// CommandChat broadcasts a chat message to the client's room.
	CommandChat
)

// Command is a decoded client request handed to the hub. Exactly one of
// the payload fields is meaningful, selected by Kind.
type Command struct {
	Kind    CommandKind
	Name    string // CommandRename: the new display name
	Content string // CommandChat: the message text
}
