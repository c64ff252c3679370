package core

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// fakeConn records frames instead of writing to a socket. A conn can be
// marked closed (skipped by broadcast) or broken (attempted, but every
// send fails).
type fakeConn struct {
	id string

	mu     sync.Mutex
	open   bool
	broken bool
	frames [][]byte
}

var errBrokenPipe = errors.New("broken pipe")

func newFakeConn(id string) *fakeConn {
	return &fakeConn{id: id, open: true}
}

func (c *fakeConn) ID() string { return c.id }

func (c *fakeConn) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

func (c *fakeConn) Send(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.open {
		return ErrConnClosed
	}
	if c.broken {
		return errBrokenPipe
	}
	c.frames = append(c.frames, data)
	return nil
}

func (c *fakeConn) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = false
}

func (c *fakeConn) breakPipe() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.broken = true
}

func (c *fakeConn) frameCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.frames)
}

// frame is the decoded wire shape the tests assert against.
type frame struct {
	Type      string `json:"type"`
	Username  string `json:"username"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

func (c *fakeConn) decodedFrames() []frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]frame, 0, len(c.frames))
	for _, raw := range c.frames {
		var f frame
		if err := json.Unmarshal(raw, &f); err != nil {
			continue
		}
		out = append(out, f)
	}
	return out
}

func (c *fakeConn) lastFrame() (frame, bool) {
	frames := c.decodedFrames()
	if len(frames) == 0 {
		return frame{}, false
	}
	return frames[len(frames)-1], true
}

// testEncode mirrors the wire encoding without importing the transport
// layer.
func testEncode(msg Message) ([]byte, error) {
	return json.Marshal(map[string]string{
		"type":      "message",
		"username":  msg.From,
		"content":   msg.Content,
		"timestamp": msg.Timestamp.UTC().Format(time.RFC3339),
	})
}

func newTestHub() (*Hub, *RoomRegistry, *ConnIndex) {
	logger := zerolog.Nop()
	rooms := NewRoomRegistry(&logger)
	conns := NewConnIndex()
	cast := NewBroadcaster(rooms, testEncode, &logger)
	return NewHub(rooms, conns, cast, &logger), rooms, conns
}
