package mapview

import (
	"errors"
	"fmt"
	"testing"

	"github.com/feralgiant/duskhollow/assets"
	"github.com/feralgiant/duskhollow/config"
	"github.com/feralgiant/duskhollow/mapdata"
	"github.com/feralgiant/duskhollow/surface"
)

// selectiveLoader resolves only the variants listed in available.
type selectiveLoader struct {
	available map[string]bool
	requests  []string
}

func (l *selectiveLoader) LoadImage(style, sequence, tileType, frame int, pal *assets.Palette) (surface.Image, error) {
	key := fmt.Sprintf("%d/%d/%d/%d", style, sequence, tileType, frame)
	l.requests = append(l.requests, key)
	if !l.available[key] {
		return nil, errors.New("not baked")
	}
	return fakeImage{name: key}, nil
}

func (l *selectiveLoader) LoadPalette(path string) (*assets.Palette, error) {
	return &assets.Palette{}, nil
}

func TestTileCacheGetMiss(t *testing.T) {
	c := NewTileCache()
	if _, ok := c.Get(1, 2, 3, 4); ok {
		t.Fatal("empty cache returned an image")
	}
}

func TestTileCacheInsertGet(t *testing.T) {
	c := NewTileCache()
	c.Insert(1, 2, 3, 4, fakeImage{name: "x"})

	img, ok := c.Get(1, 2, 3, 4)
	if !ok {
		t.Fatal("inserted image not found")
	}
	if img.(fakeImage).name != "x" {
		t.Fatalf("got %v, want x", img)
	}
	if _, ok := c.Get(1, 2, 3, 5); ok {
		t.Fatal("lookup matched the wrong frame")
	}
}

func TestTileCacheRebuildOmitsUnresolvable(t *testing.T) {
	engine := mapdata.NewEngine(2, 2, mapdata.RegionAct1Village)
	engine.SetTile(0, 0, mapdata.Tile{
		Floors: []mapdata.FloorShadow{
			{Style: 1, Sequence: 0, Prop1: 1},
			{Style: 9, Sequence: 9, Prop1: 1},
		},
	})

	loader := &selectiveLoader{available: map[string]bool{"1/0/0/0": true}}
	c := NewTileCache()
	c.Rebuild(engine, loader, &assets.Palette{})

	if c.Len() != 1 {
		t.Fatalf("cache has %d images, want 1", c.Len())
	}
	if _, ok := c.Get(1, 0, int(mapdata.TileFloor), 0); !ok {
		t.Fatal("resolvable floor variant missing")
	}
	if _, ok := c.Get(9, 9, int(mapdata.TileFloor), 0); ok {
		t.Fatal("unresolvable variant should be omitted")
	}
}

func TestTileCacheRebuildAnimatedFloorFrames(t *testing.T) {
	engine := mapdata.NewEngine(1, 1, mapdata.RegionAct1Village)
	engine.SetTile(0, 0, mapdata.Tile{
		Floors: []mapdata.FloorShadow{{Style: 1, Sequence: 0, Prop1: 1, Animated: true}},
	})

	loader := &selectiveLoader{available: map[string]bool{}}
	for frame := 0; frame < config.C.FrameCount; frame++ {
		loader.available[fmt.Sprintf("1/0/0/%d", frame)] = true
	}

	c := NewTileCache()
	c.Rebuild(engine, loader, &assets.Palette{})

	if c.Len() != config.C.FrameCount {
		t.Fatalf("cache has %d images, want one per frame (%d)", c.Len(), config.C.FrameCount)
	}
	for frame := 0; frame < config.C.FrameCount; frame++ {
		if _, ok := c.Get(1, 0, int(mapdata.TileFloor), frame); !ok {
			t.Fatalf("frame %d missing", frame)
		}
	}
}

func TestTileCacheRebuildWallAtVariantIndex(t *testing.T) {
	engine := mapdata.NewEngine(1, 1, mapdata.RegionAct1Village)
	engine.SetTile(0, 0, mapdata.Tile{
		Walls: []mapdata.Wall{{Style: 3, Sequence: 1, Type: mapdata.TileWallLeft, Prop1: 1, RandomIndex: 2}},
	})

	loader := &selectiveLoader{available: map[string]bool{"3/1/1/2": true}}
	c := NewTileCache()
	c.Rebuild(engine, loader, &assets.Palette{})

	if _, ok := c.Get(3, 1, int(mapdata.TileWallLeft), 2); !ok {
		t.Fatal("wall variant missing at its random index")
	}
}
