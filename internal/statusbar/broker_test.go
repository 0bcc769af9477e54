package statusbar

import (
	"fmt"
	"testing"
)

// #region helpers

type recordingListener struct {
	published []PublishedTile
	removed   []TileKey
}

func (l *recordingListener) TilePublished(p PublishedTile) { l.published = append(l.published, p) }
func (l *recordingListener) TileRemoved(k TileKey)         { l.removed = append(l.removed, k) }

type failingService struct{}

func (failingService) Publish(TileKey, CustomTile) (string, error) {
	return "", fmt.Errorf("host unavailable")
}
func (failingService) Remove(TileKey) error      { return fmt.Errorf("host unavailable") }
func (failingService) Tiles(int) []PublishedTile { return nil }

func weatherKey() TileKey {
	return TileKey{User: 0, Pkg: "org.cyanogenmod.weather", Tag: "forecast", ID: 1}
}

// #endregion helpers

func TestBrokerBeforeConnectIsInert(t *testing.T) {
	b := NewBroker()
	if b.Connected() {
		t.Fatal("fresh broker must not report connected")
	}

	id := b.Publish(weatherKey(), CustomTile{Label: "Weather"})
	if id != "" {
		t.Fatalf("no-op backend should return empty instance id, got %q", id)
	}
	b.Remove(weatherKey())
	if tiles := b.Tiles(0); tiles != nil {
		t.Fatalf("no-op backend should list nothing, got %v", tiles)
	}
}

func TestBrokerConnectsExactlyOnce(t *testing.T) {
	b := NewBroker()
	real := NewLocalService()
	if !b.Connect(real) {
		t.Fatal("first connect must succeed")
	}
	if b.Connect(NewLocalService()) {
		t.Fatal("second connect must be rejected")
	}
	if !b.Connected() {
		t.Fatal("broker should report connected")
	}

	b.Publish(weatherKey(), CustomTile{Label: "Weather"})
	if got := len(real.Tiles(0)); got != 1 {
		t.Fatalf("tile should land on the first backend, got %d tiles", got)
	}
}

func TestBrokerSwallowsBackendErrors(t *testing.T) {
	b := NewBroker()
	b.Connect(failingService{})

	if id := b.Publish(weatherKey(), CustomTile{}); id != "" {
		t.Fatalf("failed publish should yield empty id, got %q", id)
	}
	b.Remove(weatherKey()) // must not panic
}

func TestRepublishKeepsInstanceID(t *testing.T) {
	s := NewLocalService()
	first, err := s.Publish(weatherKey(), CustomTile{Label: "Weather", ContentText: "11C"})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if first == "" {
		t.Fatal("expected a non-empty instance id")
	}
	second, err := s.Publish(weatherKey(), CustomTile{Label: "Weather", ContentText: "13C"})
	if err != nil {
		t.Fatalf("republish: %v", err)
	}
	if second != first {
		t.Fatalf("instance id must be stable across republish: %q != %q", second, first)
	}
	tiles := s.Tiles(0)
	if len(tiles) != 1 || tiles[0].Tile.ContentText != "13C" {
		t.Fatalf("expected one updated tile, got %v", tiles)
	}
}

func TestTilesAreScopedPerUser(t *testing.T) {
	s := NewLocalService()
	s.Publish(TileKey{User: 0, Pkg: "a", ID: 1}, CustomTile{Label: "u0"})
	s.Publish(TileKey{User: 10, Pkg: "a", ID: 1}, CustomTile{Label: "u10"})

	if got := s.Tiles(0); len(got) != 1 || got[0].Tile.Label != "u0" {
		t.Fatalf("user 0 listing wrong: %v", got)
	}
	if got := s.Tiles(10); len(got) != 1 || got[0].Tile.Label != "u10" {
		t.Fatalf("user 10 listing wrong: %v", got)
	}
}

func TestListenerSeesPublishAndRemove(t *testing.T) {
	s := NewLocalService()
	l := &recordingListener{}
	s.AddListener(l)

	s.Publish(weatherKey(), CustomTile{Label: "Weather"})
	s.Remove(weatherKey())
	s.Remove(weatherKey()) // absent: no event

	if len(l.published) != 1 || l.published[0].Key != weatherKey() {
		t.Fatalf("expected one publish event, got %v", l.published)
	}
	if len(l.removed) != 1 {
		t.Fatalf("expected exactly one remove event, got %v", l.removed)
	}
}
