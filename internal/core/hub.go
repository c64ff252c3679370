package core

import (
	"sync"

	"github.com/rs/zerolog"
)

// Notice texts fixed by the wire protocol. The join notice cannot name
// the joiner because the client has not introduced itself yet.
const (
	joinNotice  = "A user joined the room"
	leaveNotice = " left the room"
)

// Hub is the protocol state machine driven by connection open, message,
// and close events. It is the only component that mutates the registry
// and index, and the only caller of the broadcaster. Events for
// different connections may arrive concurrently; a single hub lock
// serializes them, which is safe because Conn.Send never blocks.
type Hub struct {
	mu    sync.Mutex
	rooms *RoomRegistry
	conns *ConnIndex
	cast  *Broadcaster
	log   *zerolog.Logger
}

// NewHub wires the hub to its registry, index, and broadcaster.
func NewHub(rooms *RoomRegistry, conns *ConnIndex, cast *Broadcaster, logger *zerolog.Logger) *Hub {
	return &Hub{
		rooms: rooms,
		conns: conns,
		cast:  cast,
		log:   logger,
	}
}

// HandleOpen registers a new connection in the given room and announces
// the arrival to the whole room, joiner included.
func (h *Hub) HandleOpen(conn Conn, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	client := NewClient(conn, room)
	h.conns.Put(conn.ID(), client)
	h.rooms.Add(room, client)

	h.log.Info().
		Str("conn_id", conn.ID()).
		Str("room", room).
		Int("members", h.rooms.Size(room)).
		Msg("client connected")

	h.cast.Broadcast(room, SystemNotice(joinNotice), "")
}

// HandleCommand dispatches a decoded inbound command for a connection.
// Commands for unknown connections and commands missing their required
// field are logged and dropped without touching any state.
func (h *Hub) HandleCommand(conn Conn, cmd Command) {
	h.mu.Lock()
	defer h.mu.Unlock()

	client, ok := h.conns.Get(conn.ID())
	if !ok {
		h.log.Warn().
			Str("code", ErrCodeProtocolViolation).
			Str("conn_id", conn.ID()).
			Msg("command for unknown connection")
		return
	}

	switch cmd.Kind {
	case CommandRename:
		if cmd.Name == "" {
			h.logMalformed(conn, "rename without a name")
			return
		}
		old := client.Name
		client.Name = cmd.Name
		h.log.Info().
			Str("conn_id", conn.ID()).
			Str("from", old).
			Str("to", cmd.Name).
			Str("room", client.Room).
			Msg("display name set")
	case CommandChat:
		if cmd.Content == "" {
			h.logMalformed(conn, "chat without content")
			return
		}
		// No exclusion: the sender receives its own echo.
		h.cast.Broadcast(client.Room, ChatMessage(client.Name, cmd.Content), "")
	default:
		h.logMalformed(conn, "unhandled command kind")
	}
}

// HandleClose removes the connection's session and announces the
// departure. Duplicate closes are no-ops, so the leave notice goes out
// at most once; the leaver is already out of the membership set when
// the notice is broadcast.
func (h *Hub) HandleClose(conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	client, ok := h.conns.Get(conn.ID())
	if !ok {
		return
	}

	h.rooms.Remove(client.Room, client)
	h.conns.Remove(conn.ID())

	h.log.Info().
		Str("conn_id", conn.ID()).
		Str("name", client.Name).
		Str("room", client.Room).
		Int("members", h.rooms.Size(client.Room)).
		Msg("client disconnected")

	h.cast.Broadcast(client.Room, SystemNotice(client.Name+leaveNotice), "")
}

func (h *Hub) logMalformed(conn Conn, msg string) {
	h.log.Debug().
		Str("code", ErrCodeMalformedPayload).
		Str("conn_id", conn.ID()).
		Msg(msg)
}
