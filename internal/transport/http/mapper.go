package http

import (
	"github.com/dpetruhin/roomcast-server/internal/core"
	"github.com/dpetruhin/roomcast-server/internal/proto"
)

// commandFromInbound maps a decoded wire frame to a hub command. The
// second return is false for frame types the protocol does not know;
// field-level validation (empty name, empty content) is the hub's job.
func commandFromInbound(in proto.Inbound) (core.Command, bool) {
	switch in.Type {
	case proto.TypeUsername:
		return core.Command{Kind: core.CommandRename, Name: in.Username}, true
	case proto.TypeMessage:
		return core.Command{Kind: core.CommandChat, Content: in.Content}, true
	default:
		return core.Command{}, false
	}
}

// EncodeMessage renders a domain message as its wire frame. The
// broadcaster calls this once per fan-out so every recipient receives
// identical bytes.
func EncodeMessage(msg core.Message) ([]byte, error) {
	return proto.NewOutbound(msg.From, msg.Content, msg.Timestamp).Encode()
}
