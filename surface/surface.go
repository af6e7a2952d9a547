// Package surface abstracts the draw target the map renderer writes to.
// Draw state (translations and color tints) is kept on an explicit stack so
// that per-tile rendering can bracket its output with push/pop pairs.
package surface

import (
	"image"
	"image/color"
)

// Image is an opaque renderable handle. *ebiten.Image satisfies it; tests
// substitute lightweight stubs.
type Image interface {
	Bounds() image.Rectangle
}

// Surface is a draw target with stack-scoped translation and tint state.
// Every Push must be matched by exactly one Pop before the frame ends.
type Surface interface {
	// PushTranslation offsets all subsequent draws by (x, y) screen pixels.
	PushTranslation(x, y int)

	// PushColor multiplies the current tint with the given color.
	PushColor(c color.Color)

	// Pop restores the draw state saved by the most recent push.
	Pop()

	// PopN pops n states in one call.
	PopN(n int)

	// Render draws an image at the current translation with the current tint.
	Render(img Image)

	// DrawLine draws a line from the current translation to (+dx, +dy).
	DrawLine(dx, dy int, c color.Color)

	// DrawRect fills a w x h rectangle at the current translation.
	DrawRect(w, h int, c color.Color)

	// DrawTextf draws formatted text at the current translation.
	DrawTextf(format string, args ...interface{})
}
