package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/dpetruhin/roomcast-server/internal/core"
	"github.com/dpetruhin/roomcast-server/internal/proto"
)

func TestHealthEndpoint(t *testing.T) {
	ts := startTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}

func TestChatPageServed(t *testing.T) {
	ts := startTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("page request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "<html") {
		t.Fatalf("unexpected page response: %d, %d bytes", resp.StatusCode, len(body))
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type: %s", ct)
	}
}

func TestJoinRenameChatRoundTrip(t *testing.T) {
	ts := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	connA := dialWS(ctx, t, ts, "/ws")

	// The joiner sees its own join notice.
	frame := readFrame(ctx, t, connA)
	if frame.Type != proto.TypeMessage || frame.Username != core.SystemName {
		t.Fatalf("unexpected first frame: %+v", frame)
	}
	if frame.Content != "A user joined the room" {
		t.Fatalf("unexpected join notice: %q", frame.Content)
	}

	connB := dialWS(ctx, t, ts, "/ws")

	// Both members see B's arrival.
	if frame = readFrame(ctx, t, connA); frame.Username != core.SystemName {
		t.Fatalf("A expected join notice, got %+v", frame)
	}
	if frame = readFrame(ctx, t, connB); frame.Username != core.SystemName {
		t.Fatalf("B expected join notice, got %+v", frame)
	}

	sendInbound(ctx, t, connA, proto.Inbound{Type: proto.TypeUsername, Username: "alice"})
	sendInbound(ctx, t, connA, proto.Inbound{Type: proto.TypeMessage, Content: "hi there"})

	// The rename produced no broadcast, so the chat is the next frame for
	// both the observer and the sender itself.
	for _, conn := range []*websocket.Conn{connB, connA} {
		frame = readFrame(ctx, t, conn)
		if frame.Type != proto.TypeMessage || frame.Username != "alice" || frame.Content != "hi there" {
			t.Fatalf("unexpected chat frame: %+v", frame)
		}
		if _, err := time.Parse(time.RFC3339, frame.Timestamp); err != nil {
			t.Fatalf("timestamp %q is not RFC 3339: %v", frame.Timestamp, err)
		}
	}
}

func TestLeaveNoticeOnDisconnect(t *testing.T) {
	ts := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	connA := dialWS(ctx, t, ts, "/ws/alpha")
	readFrame(ctx, t, connA) // own join notice

	connB := dialWS(ctx, t, ts, "/ws/alpha")
	readFrame(ctx, t, connA) // B's join notice
	readFrame(ctx, t, connB) // own join notice

	sendInbound(ctx, t, connA, proto.Inbound{Type: proto.TypeUsername, Username: "alice"})
	connA.Close(websocket.StatusNormalClosure, "bye")

	frame := readFrame(ctx, t, connB)
	if frame.Username != core.SystemName || frame.Content != "alice left the room" {
		t.Fatalf("unexpected leave notice: %+v", frame)
	}
}

func TestMessagesDoNotCrossRooms(t *testing.T) {
	ts := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	alpha := dialWS(ctx, t, ts, "/ws/alpha")
	readFrame(ctx, t, alpha)

	general := dialWS(ctx, t, ts, "/ws")
	readFrame(ctx, t, general)

	sendInbound(ctx, t, alpha, proto.Inbound{Type: proto.TypeMessage, Content: "only alpha"})

	// The sender gets its echo in alpha.
	frame := readFrame(ctx, t, alpha)
	if frame.Content != "only alpha" {
		t.Fatalf("alpha member missed the message: %+v", frame)
	}

	// The general member must not receive anything.
	quietCtx, quietCancel := context.WithTimeout(ctx, 300*time.Millisecond)
	defer quietCancel()
	var stray proto.Outbound
	if err := wsjson.Read(quietCtx, general, &stray); err == nil {
		t.Fatalf("message crossed rooms: %+v", stray)
	}
}

func TestUnknownAndMalformedInboundIgnored(t *testing.T) {
	ts := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := dialWS(ctx, t, ts, "/ws")
	readFrame(ctx, t, conn) // own join notice

	sendInbound(ctx, t, conn, proto.Inbound{Type: "presence"})            // unknown type
	sendInbound(ctx, t, conn, proto.Inbound{Type: proto.TypeMessage})     // chat without content
	sendInbound(ctx, t, conn, proto.Inbound{Type: proto.TypeMessage, Content: "still here"})

	// The two bad frames produced nothing; the valid chat arrives next and
	// still carries the default name.
	frame := readFrame(ctx, t, conn)
	if frame.Username != core.DefaultName || frame.Content != "still here" {
		t.Fatalf("unexpected frame after ignored inputs: %+v", frame)
	}
}
