package mapview

import (
	"fmt"

	"github.com/feralgiant/duskhollow/mapdata"
)

// Palette resource paths, one per act.
const (
	PaletteAct1 = "palettes/act1.pal"
	PaletteAct2 = "palettes/act2.pal"
	PaletteAct3 = "palettes/act3.pal"
	PaletteAct4 = "palettes/act4.pal"
	PaletteAct5 = "palettes/act5.pal"
)

// paletteForRegion maps a region to its act palette path. Rendering cannot
// proceed without a palette, so an unknown region is an error rather than a
// fallback.
func paletteForRegion(levelType mapdata.RegionType) (string, error) {
	switch levelType {
	case mapdata.RegionAct1Village, mapdata.RegionAct1Forest, mapdata.RegionAct1Cave,
		mapdata.RegionAct1Crypt, mapdata.RegionAct1Chapel:
		return PaletteAct1, nil
	case mapdata.RegionAct2Town, mapdata.RegionAct2Sewer, mapdata.RegionAct2Desert,
		mapdata.RegionAct2Tomb:
		return PaletteAct2, nil
	case mapdata.RegionAct3Port, mapdata.RegionAct3Jungle, mapdata.RegionAct3Temple:
		return PaletteAct3, nil
	case mapdata.RegionAct4Citadel, mapdata.RegionAct4Mesa, mapdata.RegionAct4Lava:
		return PaletteAct4, nil
	case mapdata.RegionAct5Highlands, mapdata.RegionAct5Siege, mapdata.RegionAct5IceCaves,
		mapdata.RegionAct5Keep:
		return PaletteAct5, nil
	default:
		return "", fmt.Errorf("no palette for region %d", levelType)
	}
}
