package core

import "errors"

// ErrConnClosed is returned by Send when the connection can no longer
// accept frames.
var ErrConnClosed = errors.New("connection closed")

// Conn is the capability surface the core needs from a transport
// connection: a stable identity, liveness, and a best-effort send.
// The registry never sees the underlying transport object.
type Conn interface {
	// ID returns an identifier that is stable for the connection's lifetime.
	ID() string
	// IsOpen reports whether the connection can still accept frames.
	IsOpen() bool
	// Send queues an already-encoded frame for delivery. It must not block
	// indefinitely; implementations drop the frame and return an error when
	// the connection cannot take it.
	Send(data []byte) error
}
