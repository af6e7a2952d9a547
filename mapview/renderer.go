// Package mapview renders the tile-grid world to the screen: camera and
// viewport transforms, the tile image cache and the multi-pass tile+entity
// draw loop.
package mapview

import (
	"image/color"
	"log"
	"math"

	vec "github.com/yohamta/donburi/features/math"

	"github.com/feralgiant/duskhollow/assets"
	"github.com/feralgiant/duskhollow/config"
	"github.com/feralgiant/duskhollow/mapdata"
	"github.com/feralgiant/duskhollow/surface"
	"github.com/feralgiant/duskhollow/terminal"
)

// Horizontal bias applied in ortho space before every tile blit, so the
// diamond's left corner lands on the tile origin.
const orthoBiasX = -80

// Shadows layer a translucent white tint over the shadow image.
var shadowTint = color.RGBA{R: 255, G: 255, B: 255, A: 160}

// MapRenderer manages the viewport and Camera, requests tile and entity
// data from the map engine and turns it into ordered draw calls.
type MapRenderer struct {
	loader        AssetLoader
	engine        *mapdata.Engine
	palette       *assets.Palette
	viewport      *Viewport
	Camera        Camera
	cache         *TileCache
	debugVisLevel int
	lastFrameTime float64
	currentFrame  int
}

// New creates a MapRenderer for the given engine and binds the debug
// visualization command. When the engine's region is known, the act palette
// loads and the tile cache builds immediately; a region without a palette is
// a construction failure.
func New(loader AssetLoader, engine *mapdata.Engine, term *terminal.Terminal) (*MapRenderer, error) {
	mr := &MapRenderer{
		loader:   loader,
		engine:   engine,
		viewport: NewViewport(0, 0, config.C.Width, config.C.Height),
		cache:    NewTileCache(),
	}

	mr.viewport.SetCamera(&mr.Camera)

	if err := term.BindAction("mapdebugvis", "set map debug visualization level", func(level int) {
		mr.debugVisLevel = level
	}); err != nil {
		return nil, err
	}

	if engine.LevelType() != mapdata.RegionNone {
		if err := mr.generateTileCache(); err != nil {
			return nil, err
		}
	}

	return mr, nil
}

// RegenerateTileCache rebuilds the tile image cache for the current engine.
// Call strictly between frames.
func (mr *MapRenderer) RegenerateTileCache() error {
	return mr.generateTileCache()
}

// SetMapEngine swaps the map this renderer draws and rebuilds the tile
// cache. Call strictly between frames.
func (mr *MapRenderer) SetMapEngine(engine *mapdata.Engine) error {
	mr.engine = engine
	return mr.generateTileCache()
}

func (mr *MapRenderer) generateTileCache() error {
	palettePath, err := paletteForRegion(mr.engine.LevelType())
	if err != nil {
		return err
	}

	palette, err := mr.loader.LoadPalette(palettePath)
	if err != nil {
		return err
	}

	mr.palette = palette
	mr.cache.Rebuild(mr.engine, mr.loader, mr.palette)
	return nil
}

// Render draws the visible portion of the map in four passes:
//
// Pass 1: lower wall tiles, floor tiles and tile shadows.
//
// Pass 2: entities below walls.
//
// Pass 3: upper wall tiles and entities above walls.
//
// Pass 4: roof tiles.
//
// The optional debug overlay draws between passes 2 and 3.
func (mr *MapRenderer) Render(target surface.Surface) {
	startX, startY, endX, endY := mr.visibleTileBounds()

	mr.renderPass1(target, startX, startY, endX, endY)
	mr.renderPass2(target, startX, startY, endX, endY)

	if mr.debugVisLevel > 0 {
		mr.renderDebug(mr.debugVisLevel, target, startX, startY, endX, endY)
	}

	mr.renderPass3(target, startX, startY, endX, endY)
	mr.renderPass4(target, startX, startY, endX, endY)
}

// visibleTileBounds projects the viewport onto the tile grid, with vertical
// margins above and below so tall walls bordering the screen still draw.
// The margins derive from the logical height (a third above, three quarters
// below), then the rectangle clamps to the map bounds.
func (mr *MapRenderer) visibleTileBounds() (startX, startY, endX, endY int) {
	mapWidth, mapHeight := mr.engine.Size()
	width := mr.viewport.screenRect.Width
	height := mr.viewport.screenRect.Height

	stxf, styf := mr.viewport.ScreenToWorld(width/2, -height/3)
	etxf, etyf := mr.viewport.ScreenToWorld(width/2, height+height*3/4)

	startX = int(math.Max(0, math.Floor(stxf)))
	startY = int(math.Max(0, math.Floor(styf)))
	endX = int(math.Min(float64(mapWidth), math.Ceil(etxf)))
	endY = int(math.Min(float64(mapHeight), math.Ceil(etyf)))

	return startX, startY, endX, endY
}

// Lower wall tiles, floor tiles and tile shadows.
func (mr *MapRenderer) renderPass1(target surface.Surface, startX, startY, endX, endY int) {
	for tileY := startY; tileY < endY; tileY++ {
		for tileX := startX; tileX < endX; tileX++ {
			tile := mr.engine.TileAt(tileX, tileY)
			if tile == nil {
				continue
			}
			mr.viewport.PushTranslationWorld(float64(tileX), float64(tileY))
			mr.renderTilePass1(tile, target)
			mr.viewport.PopTranslation()
		}
	}
}

// Entities below walls.
func (mr *MapRenderer) renderPass2(target surface.Surface, startX, startY, endX, endY int) {
	for tileY := startY; tileY < endY; tileY++ {
		for tileX := startX; tileX < endX; tileX++ {
			mr.viewport.PushTranslationWorld(float64(tileX), float64(tileY))

			// TODO: bucket entities by tile once per frame instead of
			// rescanning the collection per tile per pass
			for _, entity := range mr.engine.Entities() {
				if entity.GetLayer() != mapdata.LayerBelow {
					continue
				}

				entityX, entityY := entity.GetPosition()
				if int(entityX) != tileX || int(entityY) != tileY {
					continue
				}

				target.PushTranslation(mr.viewport.GetTranslationScreen())
				entity.Render(target)
				target.Pop()
			}

			mr.viewport.PopTranslation()
		}
	}
}

// Upper wall tiles and entities above walls.
func (mr *MapRenderer) renderPass3(target surface.Surface, startX, startY, endX, endY int) {
	for tileY := startY; tileY < endY; tileY++ {
		for tileX := startX; tileX < endX; tileX++ {
			tile := mr.engine.TileAt(tileX, tileY)
			mr.viewport.PushTranslationWorld(float64(tileX), float64(tileY))
			if tile != nil {
				mr.renderTilePass2(tile, target)
			}

			for _, entity := range mr.engine.Entities() {
				if entity.GetLayer() == mapdata.LayerBelow {
					continue
				}

				entityX, entityY := entity.GetPosition()
				if int(entityX) != tileX || int(entityY) != tileY {
					continue
				}

				target.PushTranslation(mr.viewport.GetTranslationScreen())
				entity.Render(target)
				target.Pop()
			}

			mr.viewport.PopTranslation()
		}
	}
}

// Roof tiles.
func (mr *MapRenderer) renderPass4(target surface.Surface, startX, startY, endX, endY int) {
	for tileY := startY; tileY < endY; tileY++ {
		for tileX := startX; tileX < endX; tileX++ {
			tile := mr.engine.TileAt(tileX, tileY)
			if tile == nil {
				continue
			}
			mr.viewport.PushTranslationWorld(float64(tileX), float64(tileY))
			mr.renderTilePass3(tile, target)
			mr.viewport.PopTranslation()
		}
	}
}

func (mr *MapRenderer) renderTilePass1(tile *mapdata.Tile, target surface.Surface) {
	for _, wall := range tile.Walls {
		if !wall.Hidden && wall.Prop1 != 0 && wall.Type.LowerWall() {
			mr.renderWall(wall, target)
		}
	}

	for _, floor := range tile.Floors {
		if !floor.Hidden && floor.Prop1 != 0 {
			mr.renderFloor(floor, target)
		}
	}

	for _, shadow := range tile.Shadows {
		if !shadow.Hidden && shadow.Prop1 != 0 {
			mr.renderShadow(shadow, target)
		}
	}
}

func (mr *MapRenderer) renderTilePass2(tile *mapdata.Tile, target surface.Surface) {
	for _, wall := range tile.Walls {
		if !wall.Hidden && wall.Type.UpperWall() {
			mr.renderWall(wall, target)
		}
	}
}

func (mr *MapRenderer) renderTilePass3(tile *mapdata.Tile, target surface.Surface) {
	for _, wall := range tile.Walls {
		if wall.Type == mapdata.TileRoof {
			mr.renderWall(wall, target)
		}
	}
}

func (mr *MapRenderer) renderFloor(tile mapdata.FloorShadow, target surface.Surface) {
	var img surface.Image
	var ok bool
	if !tile.Animated {
		img, ok = mr.cache.Get(tile.Style, tile.Sequence, int(mapdata.TileFloor), tile.RandomIndex)
	} else {
		img, ok = mr.cache.Get(tile.Style, tile.Sequence, int(mapdata.TileFloor), mr.currentFrame)
	}

	if !ok {
		log.Printf("Render called on uncached floor {%v,%v}", tile.Style, tile.Sequence)
		return
	}

	mr.viewport.PushTranslationOrtho(orthoBiasX, float64(tile.YAdjust))
	defer mr.viewport.PopTranslation()

	target.PushTranslation(mr.viewport.GetTranslationScreen())
	defer target.Pop()

	target.Render(img)
}

func (mr *MapRenderer) renderWall(tile mapdata.Wall, target surface.Surface) {
	img, ok := mr.cache.Get(tile.Style, tile.Sequence, int(tile.Type), tile.RandomIndex)
	if !ok {
		log.Printf("Render called on uncached wall {%v,%v,%v}", tile.Style, tile.Sequence, tile.Type)
		return
	}

	mr.viewport.PushTranslationOrtho(orthoBiasX, float64(tile.YAdjust))
	defer mr.viewport.PopTranslation()

	target.PushTranslation(mr.viewport.GetTranslationScreen())
	defer target.Pop()

	target.Render(img)
}

func (mr *MapRenderer) renderShadow(tile mapdata.FloorShadow, target surface.Surface) {
	img, ok := mr.cache.Get(tile.Style, tile.Sequence, int(mapdata.TileShadow), tile.RandomIndex)
	if !ok {
		log.Printf("Render called on uncached shadow {%v,%v}", tile.Style, tile.Sequence)
		return
	}

	defer mr.viewport.PushTranslationOrtho(orthoBiasX, float64(tile.YAdjust)).PopTranslation()

	target.PushTranslation(mr.viewport.GetTranslationScreen())
	target.PushColor(shadowTint)

	defer target.PopN(2)

	target.Render(img)
}

// Advance is called once per frame. It accumulates elapsed time into the
// animation clock and advances the camera.
func (mr *MapRenderer) Advance(elapsed float64) {
	mr.lastFrameTime += elapsed
	framesAdvanced := int(mr.lastFrameTime / config.C.FrameDuration)
	mr.lastFrameTime -= float64(framesAdvanced) * config.C.FrameDuration

	mr.currentFrame = (mr.currentFrame + framesAdvanced) % config.C.FrameCount

	mr.Camera.Advance(elapsed)
}

// CurrentFrame returns the animation clock's frame index.
func (mr *MapRenderer) CurrentFrame() int {
	return mr.currentFrame
}

// MoveCameraTo sets the position of the Camera to the given world position.
func (mr *MapRenderer) MoveCameraTo(position vec.Vec2) {
	mr.Camera.MoveTo(position)
}

// MoveCameraBy adds the given vector to the current position of the Camera.
func (mr *MapRenderer) MoveCameraBy(v vec.Vec2) {
	mr.Camera.MoveBy(v)
}

// SetCameraTarget starts the camera gliding toward the given position.
func (mr *MapRenderer) SetCameraTarget(position vec.Vec2) {
	mr.Camera.SetTarget(position)
}

// MoveCameraTargetBy adds the given vector to the Camera's target.
func (mr *MapRenderer) MoveCameraTargetBy(v vec.Vec2) {
	mr.Camera.MoveTargetBy(v)
}

// ScreenToWorld returns the world position for the given screen (pixel)
// position.
func (mr *MapRenderer) ScreenToWorld(x, y int) (float64, float64) {
	return mr.viewport.ScreenToWorld(x, y)
}

// ScreenToOrtho returns the orthogonal position, without the isometric
// rotation, for the given screen (pixel) position.
func (mr *MapRenderer) ScreenToOrtho(x, y int) (float64, float64) {
	return mr.viewport.ScreenToOrtho(x, y)
}

// WorldToOrtho returns the orthogonal position for the given world position.
func (mr *MapRenderer) WorldToOrtho(x, y float64) (float64, float64) {
	return mr.viewport.WorldToOrtho(x, y)
}

// WorldToScreen returns the screen (pixel) position for the given world
// position as two ints.
func (mr *MapRenderer) WorldToScreen(x, y float64) (int, int) {
	return mr.viewport.WorldToScreen(x, y)
}

// WorldToScreenF returns the screen (pixel) position for the given world
// position as two float64s.
func (mr *MapRenderer) WorldToScreenF(x, y float64) (float64, float64) {
	return mr.viewport.WorldToScreenF(x, y)
}

// ViewportToLeft shifts the viewport left, making room for a panel on the
// right.
func (mr *MapRenderer) ViewportToLeft() {
	mr.viewport.toLeft()
}

// ViewportToRight shifts the viewport right, making room for a panel on the
// left.
func (mr *MapRenderer) ViewportToRight() {
	mr.viewport.toRight()
}

// ViewportDefault resets the viewport to its default position.
func (mr *MapRenderer) ViewportDefault() {
	mr.viewport.resetAlign()
}
