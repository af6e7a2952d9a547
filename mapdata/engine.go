// Package mapdata holds the tile-grid world representation the renderer
// draws from: per-cell tile records, the walkability mesh, and the entity
// collection.
package mapdata

import (
	"github.com/yohamta/donburi"
)

// Engine is the active map: a width x height grid of tile records plus the
// entities placed on it. The renderer reads it per frame; mutation happens
// strictly between frames (level transitions, entity spawns).
type Engine struct {
	width     int
	height    int
	tiles     []Tile
	walkMesh  []SubCell
	levelType RegionType

	world         donburi.World
	entities      []Entity
	entitiesDirty bool
}

// NewEngine creates an empty map of the given size. All sub-cells start
// walkable.
func NewEngine(width, height int, levelType RegionType) *Engine {
	mesh := make([]SubCell, width*SubCellsPerTile*height*SubCellsPerTile)
	for i := range mesh {
		mesh[i].Walkable = true
	}

	return &Engine{
		width:     width,
		height:    height,
		tiles:     make([]Tile, width*height),
		walkMesh:  mesh,
		levelType: levelType,
		world:     donburi.NewWorld(),
	}
}

// Size returns the map dimensions in tiles.
func (m *Engine) Size() (int, int) {
	return m.width, m.height
}

// LevelType returns the region this map belongs to.
func (m *Engine) LevelType() RegionType {
	return m.levelType
}

// TileAt returns the tile record at the given coordinates, or nil when out
// of bounds.
func (m *Engine) TileAt(x, y int) *Tile {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return nil
	}
	return &m.tiles[y*m.width+x]
}

// SetTile replaces the tile record at the given coordinates. Out-of-bounds
// coordinates are ignored.
func (m *Engine) SetTile(x, y int, t Tile) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	m.tiles[y*m.width+x] = t
}

// Tiles returns the full tile grid, row-major. Used by the tile image cache
// rebuild; treat as read-only.
func (m *Engine) Tiles() []Tile {
	return m.tiles
}

// WalkMesh returns the flattened 5x5-per-tile walkability mesh, row-major
// over sub-cells.
func (m *Engine) WalkMesh() []SubCell {
	return m.walkMesh
}

// SetWalkable marks one sub-cell of a tile. Out-of-bounds coordinates are
// ignored.
func (m *Engine) SetWalkable(tileX, tileY, subX, subY int, walkable bool) {
	if tileX < 0 || tileY < 0 || tileX >= m.width || tileY >= m.height {
		return
	}
	if subX < 0 || subY < 0 || subX >= SubCellsPerTile || subY >= SubCellsPerTile {
		return
	}

	row := tileY*SubCellsPerTile + subY
	col := tileX*SubCellsPerTile + subX
	m.walkMesh[row*m.width*SubCellsPerTile+col].Walkable = walkable
}
