package http

import (
	"context"
	"errors"
	"io"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dpetruhin/roomcast-server/internal/config"
	"github.com/dpetruhin/roomcast-server/internal/core"
	"github.com/dpetruhin/roomcast-server/internal/proto"
)

// WSHandler upgrades HTTP connections and bridges them to the hub.
type WSHandler struct {
	hub         *core.Hub
	defaultRoom string
	readLimit   int64
	queueSize   int
	log         *zerolog.Logger
}

// NewWSHandler builds a new WebSocket handler.
func NewWSHandler(hub *core.Hub, cfg *config.Config, logger *zerolog.Logger) *WSHandler {
	return &WSHandler{
		hub:         hub,
		defaultRoom: cfg.DefaultRoom,
		readLimit:   cfg.MaxMessageBytes,
		queueSize:   cfg.SendQueueSize,
		log:         logger,
	}
}

// Serve handles both /ws and /ws/:room; an empty room parameter lands
// the connection in the default room.
func (h *WSHandler) Serve(c *gin.Context) {
	room := c.Param("room")
	if room == "" {
		room = h.defaultRoom
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("ws accept error")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "internal error")

	if h.readLimit > 0 {
		conn.SetReadLimit(h.readLimit)
	}

	wc := newWSConn(h.queueSize)
	h.hub.HandleOpen(wc, room)

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	errCh := make(chan error, 2)
	go func() {
		errCh <- h.readLoop(ctx, conn, wc)
	}()
	go func() {
		errCh <- h.writeLoop(ctx, conn, wc)
	}()

	err = <-errCh
	cancel() // stop the other goroutine
	wc.close()
	h.hub.HandleClose(wc)
	<-errCh

	status := websocket.StatusNormalClosure
	reason := "closing"
	if err != nil && !errors.Is(err, context.Canceled) {
		if errors.Is(err, io.EOF) {
			err = nil
		}
		if s := websocket.CloseStatus(err); s != 0 {
			status = s
		}
		if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
			err = nil
		}
		if err != nil {
			if status == websocket.StatusNormalClosure {
				status = websocket.StatusInternalError
			}
			reason = err.Error()
			h.log.Warn().Err(err).Str("conn_id", wc.ID()).Msg("ws connection closed with error")
		}
	}

	conn.Close(status, reason)
}

func (h *WSHandler) readLoop(ctx context.Context, conn *websocket.Conn, wc *wsConn) error {
	for {
		var inbound proto.Inbound
		if err := wsjson.Read(ctx, conn, &inbound); err != nil {
			return err
		}

		cmd, ok := commandFromInbound(inbound)
		if !ok {
			h.log.Debug().
				Str("conn_id", wc.ID()).
				Str("type", inbound.Type).
				Msg("unhandled inbound type")
			continue
		}
		h.hub.HandleCommand(wc, cmd)
	}
}

func (h *WSHandler) writeLoop(ctx context.Context, conn *websocket.Conn, wc *wsConn) error {
	for {
		select {
		case frame := <-wc.out:
			if err := conn.Write(ctx, websocket.MessageText, frame); err != nil {
				h.log.Warn().Err(err).Str("conn_id", wc.ID()).Msg("write ws frame")
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
