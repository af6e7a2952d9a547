package mapview

import (
	"testing"

	"github.com/feralgiant/duskhollow/mapdata"
)

func TestPaletteForRegion(t *testing.T) {
	cases := []struct {
		region mapdata.RegionType
		want   string
	}{
		{mapdata.RegionAct1Village, PaletteAct1},
		{mapdata.RegionAct1Crypt, PaletteAct1},
		{mapdata.RegionAct2Desert, PaletteAct2},
		{mapdata.RegionAct3Jungle, PaletteAct3},
		{mapdata.RegionAct4Lava, PaletteAct4},
		{mapdata.RegionAct5Keep, PaletteAct5},
	}

	for _, c := range cases {
		got, err := paletteForRegion(c.region)
		if err != nil {
			t.Fatalf("paletteForRegion(%d): %v", c.region, err)
		}
		if got != c.want {
			t.Errorf("paletteForRegion(%d) = %s, want %s", c.region, got, c.want)
		}
	}
}

func TestPaletteForUnknownRegion(t *testing.T) {
	if _, err := paletteForRegion(mapdata.RegionNone); err == nil {
		t.Fatal("expected an error for RegionNone")
	}
	if _, err := paletteForRegion(mapdata.RegionType(999)); err == nil {
		t.Fatal("expected an error for an unmapped region")
	}
}
