package statusbar

// #region imports
import (
	"sync"

	"github.com/google/uuid"
)

// #endregion imports

// #region local-service

// LocalService is an in-process TileService holding tiles in memory.
// Replacing a tile at an existing key keeps its instance id; listeners
// are notified of every publish and remove.
type LocalService struct {
	mu        sync.Mutex
	tiles     map[TileKey]PublishedTile
	listeners []TileListener
}

// NewLocalService returns an empty tile host.
func NewLocalService() *LocalService {
	return &LocalService{tiles: make(map[TileKey]PublishedTile)}
}

// AddListener registers l for publish and remove notifications.
// Listeners are invoked synchronously under the service lock.
func (s *LocalService) AddListener(l TileListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Publish creates or replaces the tile at key.
func (s *LocalService) Publish(key TileKey, tile CustomTile) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.tiles[key]
	if !ok {
		p = PublishedTile{Key: key, InstanceID: uuid.NewString()}
	}
	p.Tile = tile
	s.tiles[key] = p

	for _, l := range s.listeners {
		l.TilePublished(p)
	}
	return p.InstanceID, nil
}

// Remove deletes the tile at key, if present.
func (s *LocalService) Remove(key TileKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tiles[key]; !ok {
		return nil
	}
	delete(s.tiles, key)
	for _, l := range s.listeners {
		l.TileRemoved(key)
	}
	return nil
}

// Tiles lists the live tiles for user.
func (s *LocalService) Tiles(user int) []PublishedTile {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []PublishedTile
	for _, p := range s.tiles {
		if p.Key.User == user {
			out = append(out, p)
		}
	}
	return out
}

// #endregion local-service
