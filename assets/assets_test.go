package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

func rawPalette() []byte {
	data := make([]byte, 256*3)
	for i := 0; i < 256; i++ {
		data[i*3] = byte(i)
		data[i*3+1] = byte(255 - i)
		data[i*3+2] = 128
	}
	return data
}

func TestLoadPalette(t *testing.T) {
	fsys := fstest.MapFS{
		"palettes/act1.pal": &fstest.MapFile{Data: rawPalette()},
	}

	pal, err := NewLoader(fsys).LoadPalette("palettes/act1.pal")
	if err != nil {
		t.Fatalf("LoadPalette: %v", err)
	}

	if pal[0].R != 0 || pal[0].G != 255 || pal[0].B != 128 || pal[0].A != 255 {
		t.Fatalf("pal[0] = %+v", pal[0])
	}
	if pal[200].R != 200 || pal[200].G != 55 {
		t.Fatalf("pal[200] = %+v", pal[200])
	}
}

func TestLoadPaletteWrongSize(t *testing.T) {
	fsys := fstest.MapFS{
		"palettes/short.pal": &fstest.MapFile{Data: make([]byte, 100)},
	}

	if _, err := NewLoader(fsys).LoadPalette("palettes/short.pal"); err == nil {
		t.Fatal("expected an error for a truncated palette")
	}
}

func TestLoadPaletteMissing(t *testing.T) {
	if _, err := NewLoader(fstest.MapFS{}).LoadPalette("palettes/nope.pal"); err == nil {
		t.Fatal("expected an error for a missing palette")
	}
}

func TestColorPalette(t *testing.T) {
	fsys := fstest.MapFS{
		"palettes/act1.pal": &fstest.MapFile{Data: rawPalette()},
	}

	pal, err := NewLoader(fsys).LoadPalette("palettes/act1.pal")
	if err != nil {
		t.Fatalf("LoadPalette: %v", err)
	}

	cp := pal.ColorPalette()
	if len(cp) != 256 {
		t.Fatalf("palette has %d colors, want 256", len(cp))
	}
	r, g, b, a := cp[10].RGBA()
	if r>>8 != 10 || g>>8 != 245 || b>>8 != 128 || a>>8 != 255 {
		t.Fatalf("cp[10] = (%d, %d, %d, %d)", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestLoadImageMissing(t *testing.T) {
	if _, err := NewLoader(fstest.MapFS{}).LoadImage(1, 0, 0, 0, nil); err == nil {
		t.Fatal("expected an error for a missing tile image")
	}
}

func palettedPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewPaletted(image.Rect(0, 0, 2, 2), color.Palette{
		color.RGBA{0, 0, 0, 255},
		color.RGBA{255, 255, 255, 255},
	})
	img.SetColorIndex(0, 0, 1)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestLoadImageCachesPerPalette(t *testing.T) {
	fsys := fstest.MapFS{
		"tiles/1/0/0_0.png": &fstest.MapFile{Data: palettedPNG(t)},
	}
	loader := NewLoader(fsys)

	actOne := &Palette{}
	actTwo := &Palette{}
	for i := range actTwo {
		actTwo[i] = color.RGBA{R: 255, A: 255}
	}

	first, err := loader.LoadImage(1, 0, 0, 0, actOne)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}

	// same path, different act palette: must not alias the first remap
	second, err := loader.LoadImage(1, 0, 0, 0, actTwo)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if first == second {
		t.Fatal("images for different palettes share one cache entry")
	}

	// same path and palette hits the cache
	again, err := loader.LoadImage(1, 0, 0, 0, actOne)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if again != first {
		t.Fatal("repeated load with the same palette should reuse the entry")
	}
}
