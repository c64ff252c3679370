package http

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/zerolog"

	"github.com/dpetruhin/roomcast-server/internal/config"
	"github.com/dpetruhin/roomcast-server/internal/core"
	"github.com/dpetruhin/roomcast-server/internal/proto"
)

func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := zerolog.Nop()
	cfg := config.Default()

	rooms := core.NewRoomRegistry(&logger)
	conns := core.NewConnIndex()
	cast := core.NewBroadcaster(rooms, EncodeMessage, &logger)
	hub := core.NewHub(rooms, conns, cast, &logger)

	server := NewServer(hub, &cfg, &logger)
	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)

	return ts
}

func dialWS(ctx context.Context, t *testing.T, ts *httptest.Server, path string) *websocket.Conn {
	t.Helper()

	wsURL := strings.Replace(ts.URL, "http", "ws", 1) + path
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", path, err)
	}
	t.Cleanup(func() {
		conn.Close(websocket.StatusNormalClosure, "done")
	})

	return conn
}

func readFrame(ctx context.Context, t *testing.T, conn *websocket.Conn) proto.Outbound {
	t.Helper()

	var frame proto.Outbound
	if err := wsjson.Read(ctx, conn, &frame); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	return frame
}

func sendInbound(ctx context.Context, t *testing.T, conn *websocket.Conn, in proto.Inbound) {
	t.Helper()

	if err := wsjson.Write(ctx, conn, in); err != nil {
		t.Fatalf("write inbound: %v", err)
	}
}
