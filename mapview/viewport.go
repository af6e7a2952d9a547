package mapview

import (
	"math"

	vec "github.com/yohamta/donburi/features/math"
)

// Screen-space size of one tile in the diagonal isometric projection. One
// world unit maps to a 160x80 diamond; a 5x5 sub-cell is 32x16.
const (
	orthoHalfTileWidth  = 80
	orthoHalfTileHeight = 40
)

// Horizontal step applied to the screen rectangle when a UI panel opens on
// one side (half the panel width).
const viewportShift = 200

type viewportAlign int

const (
	alignCenter viewportAlign = iota
	alignLeft
	alignRight
)

type screenRect struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Viewport converts between world (isometric tile), orthogonal and screen
// coordinates, relative to the camera and the current translation stack.
// The stack must be balanced within a frame: every push is matched by
// exactly one pop, including on early-return paths.
type Viewport struct {
	defaultScreenRect screenRect
	screenRect        screenRect
	camera            *Camera
	align             viewportAlign
	transStack        []vec.Vec2
	transCurrent      vec.Vec2
}

func NewViewport(x, y, width, height int) *Viewport {
	rect := screenRect{Left: x, Top: y, Width: width, Height: height}
	return &Viewport{
		defaultScreenRect: rect,
		screenRect:        rect,
	}
}

// SetCamera attaches the shared camera the transforms read from. The
// viewport never mutates it.
func (v *Viewport) SetCamera(camera *Camera) {
	v.camera = camera
}

// WorldToOrtho removes the isometric rotation from a world position.
func (v *Viewport) WorldToOrtho(x, y float64) (float64, float64) {
	return (x - y) * orthoHalfTileWidth, (x + y) * orthoHalfTileHeight
}

// OrthoToWorld is the inverse of WorldToOrtho.
func (v *Viewport) OrthoToWorld(x, y float64) (float64, float64) {
	return (x/orthoHalfTileWidth + y/orthoHalfTileHeight) / 2,
		(y/orthoHalfTileHeight - x/orthoHalfTileWidth) / 2
}

// OrthoToScreenF offsets an orthogonal position by the camera and the screen
// rectangle, yielding pixels. The camera sits at the rectangle center.
func (v *Viewport) OrthoToScreenF(x, y float64) (float64, float64) {
	camX, camY := v.cameraOrtho()
	return x - camX + float64(v.screenRect.Left) + float64(v.screenRect.Width)/2,
		y - camY + float64(v.screenRect.Top) + float64(v.screenRect.Height)/2
}

// OrthoToScreen is OrthoToScreenF floored to pixel coordinates, matching
// WorldToScreen so the two paths agree left and above the origin.
func (v *Viewport) OrthoToScreen(x, y float64) (int, int) {
	sx, sy := v.OrthoToScreenF(x, y)
	return int(math.Floor(sx)), int(math.Floor(sy))
}

// ScreenToOrthoF is the inverse of OrthoToScreenF.
func (v *Viewport) ScreenToOrthoF(x, y float64) (float64, float64) {
	camX, camY := v.cameraOrtho()
	return x + camX - float64(v.screenRect.Left) - float64(v.screenRect.Width)/2,
		y + camY - float64(v.screenRect.Top) - float64(v.screenRect.Height)/2
}

// ScreenToWorld returns the world position under a screen pixel.
func (v *Viewport) ScreenToWorld(x, y int) (float64, float64) {
	ox, oy := v.ScreenToOrthoF(float64(x), float64(y))
	return v.OrthoToWorld(ox, oy)
}

// ScreenToOrtho returns the orthogonal position under a screen pixel.
func (v *Viewport) ScreenToOrtho(x, y int) (float64, float64) {
	return v.ScreenToOrthoF(float64(x), float64(y))
}

// WorldToScreenF projects a world position to screen pixels.
func (v *Viewport) WorldToScreenF(x, y float64) (float64, float64) {
	ox, oy := v.WorldToOrtho(x, y)
	return v.OrthoToScreenF(ox, oy)
}

// WorldToScreen is WorldToScreenF truncated to pixel coordinates.
func (v *Viewport) WorldToScreen(x, y float64) (int, int) {
	sx, sy := v.WorldToScreenF(x, y)
	return int(math.Floor(sx)), int(math.Floor(sy))
}

// PushTranslationWorld offsets subsequent conversions by a world-space
// vector.
func (v *Viewport) PushTranslationWorld(x, y float64) *Viewport {
	ox, oy := v.WorldToOrtho(x, y)
	return v.PushTranslationOrtho(ox, oy)
}

// PushTranslationOrtho offsets subsequent conversions by an ortho-space
// vector. Returns the viewport so a push can be chained with a deferred
// PopTranslation.
func (v *Viewport) PushTranslationOrtho(x, y float64) *Viewport {
	v.transStack = append(v.transStack, v.transCurrent)
	v.transCurrent = vec.Vec2{X: v.transCurrent.X + x, Y: v.transCurrent.Y + y}
	return v
}

// PopTranslation restores the translation saved by the most recent push.
func (v *Viewport) PopTranslation() {
	n := len(v.transStack)
	if n == 0 {
		panic("viewport: translation stack underflow")
	}
	v.transCurrent = v.transStack[n-1]
	v.transStack = v.transStack[:n-1]
}

// GetTranslationScreen returns the screen position of the current cumulative
// translation.
func (v *Viewport) GetTranslationScreen() (int, int) {
	return v.OrthoToScreen(v.transCurrent.X, v.transCurrent.Y)
}

func (v *Viewport) cameraOrtho() (float64, float64) {
	if v.camera == nil {
		return 0, 0
	}
	pos := v.camera.Position()
	return v.WorldToOrtho(pos.X, pos.Y)
}

func (v *Viewport) toLeft() {
	if v.align == alignLeft {
		return
	}
	v.resetAlign()
	v.screenRect.Left -= viewportShift
	v.align = alignLeft
}

func (v *Viewport) toRight() {
	if v.align == alignRight {
		return
	}
	v.resetAlign()
	v.screenRect.Left += viewportShift
	v.align = alignRight
}

func (v *Viewport) resetAlign() {
	v.screenRect = v.defaultScreenRect
	v.align = alignCenter
}
