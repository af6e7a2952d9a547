package mapview

import (
	"image/color"

	"github.com/feralgiant/duskhollow/mapdata"
	"github.com/feralgiant/duskhollow/surface"
)

var (
	debugSubTileColor   = color.RGBA{R: 80, G: 80, B: 255, A: 50}
	debugTileColor      = color.RGBA{R: 255, G: 255, B: 255, A: 100}
	debugCollisionColor = color.RGBA{R: 128, G: 0, B: 0, A: 100}
)

func (mr *MapRenderer) renderDebug(debugVisLevel int, target surface.Surface, startX, startY, endX, endY int) {
	for tileY := startY; tileY < endY; tileY++ {
		for tileX := startX; tileX < endX; tileX++ {
			mr.viewport.PushTranslationWorld(float64(tileX), float64(tileY))
			mr.renderTileDebug(tileX, tileY, debugVisLevel, target)
			mr.viewport.PopTranslation()
		}
	}
}

// renderTileDebug draws the tile's diamond outline and coordinates; at
// level 2 it adds sub-tile grid lines, special-wall labels and the 5x5
// walkability markers.
func (mr *MapRenderer) renderTileDebug(ax, ay, debugVisLevel int, target surface.Surface) {
	screenX1, screenY1 := mr.viewport.WorldToScreen(float64(ax), float64(ay))
	screenX2, screenY2 := mr.viewport.WorldToScreen(float64(ax+1), float64(ay))
	screenX3, screenY3 := mr.viewport.WorldToScreen(float64(ax), float64(ay+1))

	target.PushTranslation(screenX1, screenY1)
	defer target.Pop()

	target.DrawLine(screenX2-screenX1, screenY2-screenY1, debugTileColor)
	target.DrawLine(screenX3-screenX1, screenY3-screenY1, debugTileColor)
	target.PushTranslation(-10, 10)
	target.DrawTextf("%v, %v", ax, ay)
	target.Pop()

	if debugVisLevel > 1 {
		for i := 1; i <= 4; i++ {
			x2 := i * 16
			y2 := i * 8

			target.PushTranslation(-x2, y2)
			target.DrawLine(80, 40, debugSubTileColor)
			target.Pop()

			target.PushTranslation(x2, y2)
			target.DrawLine(-80, 40, debugSubTileColor)
			target.Pop()
		}

		tile := mr.engine.TileAt(ax, ay)
		if tile != nil {
			for i, wall := range tile.Walls {
				if wall.Type.Special() {
					target.PushTranslation(-20, 10+(i+1)*14)
					target.DrawTextf("s: %v-%v", wall.Style, wall.Sequence)
					target.Pop()
				}
			}
		}

		mapWidth, _ := mr.engine.Size()
		mesh := mr.engine.WalkMesh()
		sub := mapdata.SubCellsPerTile

		for yy := 0; yy < sub; yy++ {
			for xx := 0; xx < sub; xx++ {
				isoX := (xx - yy) * 16
				isoY := (xx + yy) * 8

				cell := mesh[(yy+ay*sub)*mapWidth*sub+xx+ax*sub]
				if !cell.Walkable {
					target.PushTranslation(isoX-3, isoY+4)
					target.DrawRect(5, 5, debugCollisionColor)
					target.Pop()
				}
			}
		}
	}
}
