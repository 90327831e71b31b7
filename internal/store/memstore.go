package store

import (
	"sync"

	"github.com/smiitm/literature/internal/shared"
)

type MemoryStore struct {
	mu    sync.RWMutex
	rooms map[string]*shared.Room
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms: map[string]*shared.Room{},
	}
}

func (m *MemoryStore) GetRoom(roomID string) (*shared.Room, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[roomID]
	return r, ok
}

func (m *MemoryStore) SaveRoom(r *shared.Room) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rooms[r.RoomID] = r
}

func (m *MemoryStore) DeleteRoom(roomID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rooms, roomID)
}

// Rooms returns a snapshot of all live rooms.
func (m *MemoryStore) Rooms() []*shared.Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*shared.Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		out = append(out, r)
	}
	return out
}
