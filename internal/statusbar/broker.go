package statusbar

// #region imports
import (
	"log"
	"sync"
	"sync/atomic"
)

// #endregion imports

// #region broker

// Broker is the client-facing tile handle. It starts on a no-op
// backend and is switched to the real service exactly once; callers
// never observe an intermediate state and never need nil checks.
type Broker struct {
	svc atomic.Value // serviceHolder

	connectMu sync.Mutex
	connected bool
}

// serviceHolder keeps atomic.Value happy: the stored concrete type must
// never change, but the backend swaps from no-op to the real service.
type serviceHolder struct {
	s TileService
}

// NewBroker returns a broker on the no-op backend.
func NewBroker() *Broker {
	b := &Broker{}
	b.svc.Store(serviceHolder{s: noopService{}})
	return b
}

// Connect switches the broker to svc. Only the first call takes
// effect; later calls are ignored and return false.
func (b *Broker) Connect(svc TileService) bool {
	b.connectMu.Lock()
	defer b.connectMu.Unlock()
	if b.connected {
		return false
	}
	b.svc.Store(serviceHolder{s: svc})
	b.connected = true
	return true
}

// Connected reports whether the real service is attached.
func (b *Broker) Connected() bool {
	b.connectMu.Lock()
	defer b.connectMu.Unlock()
	return b.connected
}

func (b *Broker) service() TileService {
	return b.svc.Load().(serviceHolder).s
}

// Publish forwards to the backend. On the no-op backend the tile is
// silently dropped and an empty instance id returned.
func (b *Broker) Publish(key TileKey, tile CustomTile) string {
	id, err := b.service().Publish(key, tile)
	if err != nil {
		log.Printf("[TILE] publish %s: %v", key, err)
		return ""
	}
	return id
}

// Remove forwards to the backend.
func (b *Broker) Remove(key TileKey) {
	if err := b.service().Remove(key); err != nil {
		log.Printf("[TILE] remove %s: %v", key, err)
	}
}

// Tiles lists the live tiles for user. Empty before Connect.
func (b *Broker) Tiles(user int) []PublishedTile {
	return b.service().Tiles(user)
}

// #endregion broker

// #region noop-backend

// noopService swallows everything. Default backend until Connect.
type noopService struct{}

func (noopService) Publish(TileKey, CustomTile) (string, error) { return "", nil }
func (noopService) Remove(TileKey) error                        { return nil }
func (noopService) Tiles(int) []PublishedTile                   { return nil }

// #endregion noop-backend
