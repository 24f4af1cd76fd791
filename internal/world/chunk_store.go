package world

import (
	"slices"
	"sync"
)

// ChunkStore is the synchronized chunk map written during generation.
type ChunkStore struct {
	chunks map[ChunkCoord]*Chunk
	mu     sync.RWMutex
}

// NewChunkStore creates an empty chunk store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{
		chunks: make(map[ChunkCoord]*Chunk),
	}
}

// Insert stores a generated chunk under its own position, replacing any
// chunk previously stored there.
func (cs *ChunkStore) Insert(chunk *Chunk) {
	cs.mu.Lock()
	cs.chunks[chunk.Position] = chunk
	cs.mu.Unlock()
}

// Chunk returns the chunk at coord, if present.
func (cs *ChunkStore) Chunk(coord ChunkCoord) (*Chunk, bool) {
	cs.mu.RLock()
	c, ok := cs.chunks[coord]
	cs.mu.RUnlock()
	return c, ok
}

// Len returns the number of stored chunks.
func (cs *ChunkStore) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.chunks)
}

// Freeze copies the current contents into a read-only ChunkMap. Callers
// freeze once generation has finished; the map is then safe for any
// number of concurrent readers without locking.
func (cs *ChunkStore) Freeze() ChunkMap {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	m := make(ChunkMap, len(cs.chunks))
	for k, v := range cs.chunks {
		m[k] = v
	}
	return m
}

// ChunkMap is an immutable snapshot of the world's chunks.
type ChunkMap map[ChunkCoord]*Chunk

// Chunk returns the chunk at coord, if present.
func (m ChunkMap) Chunk(coord ChunkCoord) (*Chunk, bool) {
	c, ok := m[coord]
	return c, ok
}

// Coords returns all chunk coordinates in deterministic order.
func (m ChunkMap) Coords() []ChunkCoord {
	out := make([]ChunkCoord, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.SortFunc(out, func(a, b ChunkCoord) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return out
}

// TypeAtWorld returns the voxel type at a world-space position, or air when
// the containing chunk is absent.
func (m ChunkMap) TypeAtWorld(wx, wy, wz int) VoxelType {
	coord, local := ChunkOf(wx, wy, wz)
	c, ok := m[coord]
	if !ok {
		return VoxelAir
	}
	return c.TypeAt(int(local.X), int(local.Y), int(local.Z))
}
