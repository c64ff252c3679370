package core

import (
	"sync"

	"github.com/rs/zerolog"
)

// RoomRegistry maps room names to their current membership. Rooms are
// created lazily on first reference and never deleted: an empty room
// stays addressable for the life of the process. At chat scale the set
// of distinct room names is small enough that reaping is not worth the
// extra coordination.
type RoomRegistry struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
	log   *zerolog.Logger
}

// NewRoomRegistry constructs an empty registry.
func NewRoomRegistry(logger *zerolog.Logger) *RoomRegistry {
	return &RoomRegistry{
		rooms: make(map[string]map[*Client]struct{}),
		log:   logger,
	}
}

// getOrCreate returns the membership set for name, creating it on first
// use. Creation is logged exactly once per name. Callers must hold mu.
func (r *RoomRegistry) getOrCreate(name string) map[*Client]struct{} {
	set, ok := r.rooms[name]
	if !ok {
		set = make(map[*Client]struct{})
		r.rooms[name] = set
		r.log.Info().Str("room", name).Msg("room created")
	}
	return set
}

// Add inserts the client into the named room, creating the room if needed.
func (r *RoomRegistry) Add(name string, c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getOrCreate(name)[c] = struct{}{}
}

// Remove deletes the client from the named room. Removing a non-member,
// or removing from a room that was never created, is a no-op.
func (r *RoomRegistry) Remove(name string, c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if set, ok := r.rooms[name]; ok {
		delete(set, c)
	}
}

// Size returns the current member count of the named room.
func (r *RoomRegistry) Size(name string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms[name])
}

// Members returns a point-in-time copy of the room's membership. The
// copy lets callers fan out to connections without holding the lock
// while adds and removes proceed concurrently.
func (r *RoomRegistry) Members(name string) []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	set := r.rooms[name]
	members := make([]*Client, 0, len(set))
	for c := range set {
		members = append(members, c)
	}
	return members
}
