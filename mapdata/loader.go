package mapdata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// Tile layer kinds recognized in TMX files, via the "kind" layer property.
const (
	layerKindFloor  = "floor"
	layerKindWall   = "wall"
	layerKindShadow = "shadow"
)

// Load parses an isometric Tiled map into an Engine. Layers tagged with a
// "kind" property contribute floor, wall or shadow sub-records in layer
// order; tileset tile properties carry the style/sequence/type triple and
// render adjustments. The map's "region" property selects the act palette.
func Load(fsys fs.FS, path string) (*Engine, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	if levelMap.Orientation != "isometric" {
		return nil, fmt.Errorf("map %s: orientation %q, want isometric", path, levelMap.Orientation)
	}

	region := ParseRegion(levelMap.Properties.GetString("region"))
	engine := NewEngine(levelMap.Width, levelMap.Height, region)

	for _, layer := range levelMap.Layers {
		kind := layer.Properties.GetString("kind")
		if kind == "" {
			continue
		}

		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				layerTile := layer.Tiles[y*levelMap.Width+x]
				if layerTile.IsNil() {
					continue
				}

				props, err := tileProperties(layerTile)
				if err != nil {
					return nil, fmt.Errorf("map %s layer %s (%d,%d): %w", path, layer.Name, x, y, err)
				}

				tile := engine.TileAt(x, y)
				switch kind {
				case layerKindFloor:
					tile.Floors = append(tile.Floors, makeFloorShadow(props, x, y))
				case layerKindShadow:
					tile.Shadows = append(tile.Shadows, makeFloorShadow(props, x, y))
				case layerKindWall:
					wall := makeWall(props, x, y)
					tile.Walls = append(tile.Walls, wall)
					if !wall.Type.Special() && wall.Type != TileShadow {
						blockTile(engine, x, y)
					}
				default:
					return nil, fmt.Errorf("map %s layer %s: unknown kind %q", path, layer.Name, kind)
				}

				if kind == layerKindFloor && !props.walkable {
					blockTile(engine, x, y)
				}
			}
		}
	}

	return engine, nil
}

type tileProps struct {
	style    int
	sequence int
	tileType int
	yAdjust  int
	animated bool
	hidden   bool
	walkable bool
	variants int
}

func tileProperties(layerTile *tiled.LayerTile) (tileProps, error) {
	tilesetTile, err := layerTile.Tileset.GetTilesetTile(layerTile.ID)
	if err != nil {
		return tileProps{}, fmt.Errorf("tileset tile %d: %w", layerTile.ID, err)
	}

	p := tilesetTile.Properties
	props := tileProps{
		style:    p.GetInt("style"),
		sequence: p.GetInt("sequence"),
		tileType: p.GetInt("tileType"),
		yAdjust:  p.GetInt("yAdjust"),
		animated: p.GetBool("animated"),
		hidden:   p.GetBool("hidden"),
		walkable: true,
		variants: p.GetInt("variants"),
	}
	if p.GetString("walkable") != "" {
		props.walkable = p.GetBool("walkable")
	}
	return props, nil
}

func makeFloorShadow(p tileProps, x, y int) FloorShadow {
	return FloorShadow{
		Style:       p.style,
		Sequence:    p.sequence,
		Prop1:       1,
		Hidden:      p.hidden,
		YAdjust:     p.yAdjust,
		Animated:    p.animated,
		RandomIndex: variantIndex(x, y, p.variants),
	}
}

func makeWall(p tileProps, x, y int) Wall {
	return Wall{
		Style:       p.style,
		Sequence:    p.sequence,
		Type:        TileType(p.tileType),
		Prop1:       1,
		Hidden:      p.hidden,
		YAdjust:     p.yAdjust,
		RandomIndex: variantIndex(x, y, p.variants),
	}
}

// variantIndex picks a stable pseudo-random variant per cell so reloading a
// map keeps the same look.
func variantIndex(x, y, variants int) int {
	if variants <= 1 {
		return 0
	}
	h := uint32(x)*0x9E3779B1 ^ uint32(y)*0x85EBCA77
	return int(h % uint32(variants))
}

func blockTile(engine *Engine, x, y int) {
	for sy := 0; sy < SubCellsPerTile; sy++ {
		for sx := 0; sx < SubCellsPerTile; sx++ {
			engine.SetWalkable(x, y, sx, sy, false)
		}
	}
}
