package core

import "github.com/rs/zerolog"

// EncodeFunc renders a domain message as the frame delivered to
// recipients. Broadcast calls it exactly once per message, so every
// recipient receives a byte-identical payload.
type EncodeFunc func(Message) ([]byte, error)

// DeliveryReport summarizes one fan-out: how many open members a send
// was attempted for, and how many of those sends succeeded. Delivery is
// best-effort and at-most-once; a failed send is not retried.
type DeliveryReport struct {
	Attempted int
	Delivered int
}

// Broadcaster fans a message out to every open member of a room.
type Broadcaster struct {
	rooms  *RoomRegistry
	encode EncodeFunc
	log    *zerolog.Logger
}

// NewBroadcaster constructs a broadcaster over the given registry.
func NewBroadcaster(rooms *RoomRegistry, encode EncodeFunc, logger *zerolog.Logger) *Broadcaster {
	return &Broadcaster{
		rooms:  rooms,
		encode: encode,
		log:    logger,
	}
}

// Broadcast delivers msg to every open member of the room, skipping the
// connection identified by excludeID when non-empty. Membership is
// copied out of the registry under its lock; the sends themselves
// happen outside it. One recipient's failed send is logged and does not
// stop delivery to the rest.
func (b *Broadcaster) Broadcast(room string, msg Message, excludeID string) DeliveryReport {
	var report DeliveryReport

	members := b.rooms.Members(room)
	if len(members) == 0 {
		b.log.Debug().Str("room", room).Msg("broadcast to empty room")
		return report
	}

	data, err := b.encode(msg)
	if err != nil {
		b.log.Error().Err(err).Str("room", room).Msg("encode broadcast payload")
		return report
	}

	for _, member := range members {
		conn := member.Conn
		if excludeID != "" && conn.ID() == excludeID {
			continue
		}
		if !conn.IsOpen() {
			continue
		}
		report.Attempted++
		if err := conn.Send(data); err != nil {
			b.log.Warn().Err(err).
				Str("code", ErrCodeDeliveryFailure).
				Str("room", room).
				Str("conn_id", conn.ID()).
				Msg("send to recipient failed")
			continue
		}
		report.Delivered++
	}

	b.log.Debug().
		Str("room", room).
		Int("delivered", report.Delivered).
		Int("attempted", report.Attempted).
		Msg("broadcast complete")

	return report
}
