package mapdata

// TileType discriminates the geometry role of a wall sub-record. The set is
// closed; renderers switch over it and an unmapped value is a programmer
// error, not data.
type TileType int

const (
	TileFloor TileType = iota // 0
	TileWallLeft
	TileWallRight
	TileWallCornerNorthRight
	TileWallCornerNorthLeft
	TileWallEndLeft
	TileWallEndRight
	TileWallCornerSouth
	TileDoorLeft
	TileDoorRight
	TileSpecialLeft // 10
	TileSpecialRight
	TilePillar
	TileShadow
	TileDecoration
	TileRoof // 15
	TileWallLowerLeft
	TileWallLowerRight
	TileWallLowerCornerNorthRight
	TileWallLowerCornerNorthLeft
	TileWallLowerEndLeft // 20
	TileWallLowerEndRight
	TileWallLowerCornerSouth
)

// LowerWall reports whether the type renders in the floor pass, beneath
// entities.
func (t TileType) LowerWall() bool {
	return t >= TileWallLowerLeft && t <= TileWallLowerCornerSouth
}

// UpperWall reports whether the type renders above entities on the "below"
// layer.
func (t TileType) UpperWall() bool {
	switch t {
	case TileWallLeft, TileWallRight,
		TileWallCornerNorthRight, TileWallCornerNorthLeft,
		TileWallEndLeft, TileWallEndRight, TileWallCornerSouth,
		TileDoorLeft, TileDoorRight,
		TilePillar, TileDecoration:
		return true
	}
	return false
}

// Special reports whether the type is a marker tile (warps, spawn points)
// rather than renderable geometry.
func (t TileType) Special() bool {
	return t == TileSpecialLeft || t == TileSpecialRight
}

// Wall is one wall sub-record of a tile.
type Wall struct {
	Style    int
	Sequence int
	Type     TileType
	Prop1    byte
	Hidden   bool
	YAdjust  int
	// RandomIndex selects among baked variants of the same
	// style/sequence/type combination.
	RandomIndex int
}

// FloorShadow is one floor or shadow sub-record of a tile.
type FloorShadow struct {
	Style    int
	Sequence int
	Prop1    byte
	Hidden   bool
	YAdjust  int
	Animated bool
	// RandomIndex selects the variant for non-animated floors and shadows.
	RandomIndex int
}

// Tile is the immutable per-cell level data. The renderer reads it every
// frame and never mutates it.
type Tile struct {
	Walls   []Wall
	Floors  []FloorShadow
	Shadows []FloorShadow
}

// SubCell is one cell of the 5x5 per-tile walkability mesh.
type SubCell struct {
	Walkable bool
}

// SubCellsPerTile is the walk mesh resolution along each tile axis.
const SubCellsPerTile = 5
