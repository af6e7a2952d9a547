package surface

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type drawState struct {
	x, y int
	tint ebiten.ColorScale
}

// Ebiten renders onto an *ebiten.Image. Construct one per Draw call; the
// struct only carries the per-frame draw state stack.
type Ebiten struct {
	screen *ebiten.Image
	face   text.Face
	stack  []drawState
	cur    drawState
}

// NewEbiten wraps a screen image. The face is used for DrawTextf.
func NewEbiten(screen *ebiten.Image, face text.Face) *Ebiten {
	return &Ebiten{screen: screen, face: face}
}

func (s *Ebiten) PushTranslation(x, y int) {
	s.stack = append(s.stack, s.cur)
	s.cur.x += x
	s.cur.y += y
}

func (s *Ebiten) PushColor(c color.Color) {
	s.stack = append(s.stack, s.cur)
	s.cur.tint.ScaleWithColor(c)
}

func (s *Ebiten) Pop() {
	n := len(s.stack)
	if n == 0 {
		panic("surface: pop with empty draw state stack")
	}
	s.cur = s.stack[n-1]
	s.stack = s.stack[:n-1]
}

func (s *Ebiten) PopN(n int) {
	for i := 0; i < n; i++ {
		s.Pop()
	}
}

func (s *Ebiten) Render(img Image) {
	e, ok := img.(*ebiten.Image)
	if !ok {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(s.cur.x), float64(s.cur.y))
	op.ColorScale.ScaleWithColorScale(s.cur.tint)
	s.screen.DrawImage(e, op)
}

func (s *Ebiten) DrawLine(dx, dy int, c color.Color) {
	x0, y0 := float32(s.cur.x), float32(s.cur.y)
	vector.StrokeLine(s.screen, x0, y0, x0+float32(dx), y0+float32(dy), 1, c, false)
}

func (s *Ebiten) DrawRect(w, h int, c color.Color) {
	vector.DrawFilledRect(s.screen, float32(s.cur.x), float32(s.cur.y), float32(w), float32(h), c, false)
}

func (s *Ebiten) DrawTextf(format string, args ...interface{}) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(s.cur.x), float64(s.cur.y))
	text.Draw(s.screen, fmt.Sprintf(format, args...), s.face, op)
}
