package http

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/dpetruhin/roomcast-server/internal/core"
)

var errSendQueueFull = errors.New("send queue full")

// wsConn adapts a websocket connection to the core.Conn surface. Frames
// are queued on a buffered channel drained by the connection's write
// loop, so a broadcast never blocks on a slow reader: when the queue is
// full the frame is dropped and the send reports a failure.
type wsConn struct {
	id        string
	out       chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func newWSConn(queueSize int) *wsConn {
	return &wsConn{
		id:   uuid.NewString(),
		out:  make(chan []byte, queueSize),
		done: make(chan struct{}),
	}
}

func (c *wsConn) ID() string { return c.id }

func (c *wsConn) IsOpen() bool {
	select {
	case <-c.done:
		return false
	default:
		return true
	}
}

func (c *wsConn) Send(data []byte) error {
	select {
	case <-c.done:
		return core.ErrConnClosed
	default:
	}

	select {
	case c.out <- data:
		return nil
	case <-c.done:
		return core.ErrConnClosed
	default:
		return errSendQueueFull
	}
}

// close marks the connection unusable for further sends. Idempotent.
func (c *wsConn) close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}
