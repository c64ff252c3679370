package core

import "sync"

// ConnIndex resolves a connection identity back to its session state.
// A miss on an incoming event means the transport delivered a message
// for a connection whose open was never recorded or whose close already
// completed; callers treat that as a recoverable protocol violation.
type ConnIndex struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

// NewConnIndex constructs an empty index.
func NewConnIndex() *ConnIndex {
	return &ConnIndex{clients: make(map[string]*Client)}
}

// Put records the session for a connection identity.
func (ix *ConnIndex) Put(id string, c *Client) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.clients[id] = c
}

// Get returns the session for a connection identity, if recorded.
func (ix *ConnIndex) Get(id string) (*Client, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	c, ok := ix.clients[id]
	return c, ok
}

// Remove forgets a connection identity. Removing an unknown identity is
// a no-op.
func (ix *ConnIndex) Remove(id string) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	delete(ix.clients, id)
}

// Len returns the number of tracked connections, for diagnostics.
func (ix *ConnIndex) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.clients)
}
