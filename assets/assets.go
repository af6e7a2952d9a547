// Package assets resolves tile art and palettes from an asset filesystem.
package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io/fs"

	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/feralgiant/duskhollow/surface"
)

// Palette is a 256-entry color table. Indexed tile art is remapped through
// the act palette before upload.
type Palette [256]color.RGBA

// ColorPalette converts to the stdlib palette form used by image.Paletted.
func (p *Palette) ColorPalette() color.Palette {
	out := make(color.Palette, len(p))
	for i, c := range p {
		out[i] = c
	}
	return out
}

// Loader loads tile images and palettes from an asset filesystem (a
// directory in development, an embedded FS in release builds).
type Loader struct {
	fsys  fs.FS
	cache map[imageKey]*ebiten.Image
}

// imageKey includes the palette so that the same sprite remapped through a
// different act palette is a distinct cache entry.
type imageKey struct {
	path string
	pal  *Palette
}

func NewLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys:  fsys,
		cache: make(map[imageKey]*ebiten.Image),
	}
}

// LoadImage resolves one tile sprite. Tile art is laid out as
// tiles/<style>/<sequence>/<type>_<frame>.png. Indexed images are remapped
// through pal when given. Missing variants return an error; callers decide
// whether that is tolerable.
func (l *Loader) LoadImage(style, sequence, tileType, frame int, pal *Palette) (surface.Image, error) {
	path := fmt.Sprintf("tiles/%d/%d/%d_%d.png", style, sequence, tileType, frame)
	key := imageKey{path: path, pal: pal}
	if img, ok := l.cache[key]; ok {
		return img, nil
	}

	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read tile image %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode tile image %s: %w", path, err)
	}

	if paletted, ok := img.(*image.Paletted); ok && pal != nil {
		paletted.Palette = pal.ColorPalette()
	}

	e := ebiten.NewImageFromImage(img)
	l.cache[key] = e
	return e, nil
}

// LoadPalette reads a raw 256-entry RGB palette file.
func (l *Loader) LoadPalette(path string) (*Palette, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read palette %s: %w", path, err)
	}
	if len(data) != 256*3 {
		return nil, fmt.Errorf("palette %s: %d bytes, want %d", path, len(data), 256*3)
	}

	var pal Palette
	for i := 0; i < 256; i++ {
		pal[i] = color.RGBA{
			R: data[i*3],
			G: data[i*3+1],
			B: data[i*3+2],
			A: 0xff,
		}
	}
	return &pal, nil
}
