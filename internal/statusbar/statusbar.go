// Package statusbar publishes custom quick-settings tiles on behalf of
// client packages. The broker front-end keeps callers insulated from
// the tile service lifecycle: before the service comes up (or if it
// never does) every call lands on a harmless no-op implementation.
package statusbar

import "fmt"

// #region types

// CustomTile is the published payload of one quick-settings tile.
type CustomTile struct {
	Label        string
	ContentText  string
	Icon         string
	IntentAction string

	// ContentBlob carries an optional binary attachment, such as an
	// encoded weather record backing a weather tile.
	ContentBlob []byte
}

// TileKey identifies a tile slot. A publish to an existing key
// replaces the tile in place.
type TileKey struct {
	User int
	Pkg  string
	Tag  string
	ID   int
}

func (k TileKey) String() string {
	return fmt.Sprintf("%d/%s/%s/%d", k.User, k.Pkg, k.Tag, k.ID)
}

// #endregion types

// #region service-interface

// TileService is the backing tile host.
type TileService interface {
	// Publish creates or replaces the tile at key and returns its
	// instance id, stable across replacements of the same key.
	Publish(key TileKey, tile CustomTile) (string, error)

	// Remove deletes the tile at key. Removing an absent key is not
	// an error.
	Remove(key TileKey) error

	// Tiles lists the live tiles for one user.
	Tiles(user int) []PublishedTile
}

// PublishedTile is a tile as held by the service.
type PublishedTile struct {
	Key        TileKey
	InstanceID string
	Tile       CustomTile
}

// TileListener observes tile churn, for surfaces that render tiles.
type TileListener interface {
	TilePublished(p PublishedTile)
	TileRemoved(key TileKey)
}

// #endregion service-interface
