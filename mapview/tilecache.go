package mapview

import (
	"log"

	"github.com/feralgiant/duskhollow/assets"
	"github.com/feralgiant/duskhollow/config"
	"github.com/feralgiant/duskhollow/mapdata"
	"github.com/feralgiant/duskhollow/surface"
)

// AssetLoader resolves tile art and palettes. Implemented by assets.Loader;
// tests substitute stubs.
type AssetLoader interface {
	LoadImage(style, sequence, tileType, frame int, pal *assets.Palette) (surface.Image, error)
	LoadPalette(path string) (*assets.Palette, error)
}

type cacheKey struct {
	style    int
	sequence int
	tileType int
	frame    int
}

// TileCache maps (style, sequence, type, frame) tuples to renderable
// images. It is rebuilt wholesale on map change and read-only during
// rendering; a miss is an expected condition, not an error.
type TileCache struct {
	records map[cacheKey]surface.Image
}

func NewTileCache() *TileCache {
	return &TileCache{records: make(map[cacheKey]surface.Image)}
}

// Get returns the cached image for the tuple, or false when the variant was
// never baked.
func (c *TileCache) Get(style, sequence, tileType, frame int) (surface.Image, bool) {
	img, ok := c.records[cacheKey{style, sequence, tileType, frame}]
	return img, ok
}

// Insert stores an image under the tuple.
func (c *TileCache) Insert(style, sequence, tileType, frame int, img surface.Image) {
	c.records[cacheKey{style, sequence, tileType, frame}] = img
}

// Len returns the number of cached images.
func (c *TileCache) Len() int {
	return len(c.records)
}

// Rebuild scans the map's tile set and resolves every distinct combination
// the renderer may look up: walls at their variant index, animated floors at
// every clock frame, static floors and shadows at their variant index.
// Combinations the loader cannot resolve are omitted; level data routinely
// references variants that were never baked.
func (c *TileCache) Rebuild(engine *mapdata.Engine, loader AssetLoader, pal *assets.Palette) {
	c.records = make(map[cacheKey]surface.Image)
	missing := 0

	for _, tile := range engine.Tiles() {
		for _, wall := range tile.Walls {
			missing += c.resolve(loader, pal, wall.Style, wall.Sequence, int(wall.Type), wall.RandomIndex)
		}

		for _, floor := range tile.Floors {
			if floor.Animated {
				for frame := 0; frame < config.C.FrameCount; frame++ {
					missing += c.resolve(loader, pal, floor.Style, floor.Sequence, int(mapdata.TileFloor), frame)
				}
			} else {
				missing += c.resolve(loader, pal, floor.Style, floor.Sequence, int(mapdata.TileFloor), floor.RandomIndex)
			}
		}

		for _, shadow := range tile.Shadows {
			missing += c.resolve(loader, pal, shadow.Style, shadow.Sequence, int(mapdata.TileShadow), shadow.RandomIndex)
		}
	}

	log.Printf("Tile cache rebuilt: %d images, %d unresolved variants", len(c.records), missing)
}

func (c *TileCache) resolve(loader AssetLoader, pal *assets.Palette, style, sequence, tileType, frame int) int {
	key := cacheKey{style, sequence, tileType, frame}
	if _, ok := c.records[key]; ok {
		return 0
	}

	img, err := loader.LoadImage(style, sequence, tileType, frame, pal)
	if err != nil {
		return 1
	}

	c.records[key] = img
	return 0
}
