package mapdata

// RegionType identifies the area of the game world a map belongs to. Regions
// group into five acts, which determine the palette used for tile art.
type RegionType int

const (
	RegionNone RegionType = iota

	RegionAct1Village
	RegionAct1Forest
	RegionAct1Cave
	RegionAct1Crypt
	RegionAct1Chapel

	RegionAct2Town
	RegionAct2Sewer
	RegionAct2Desert
	RegionAct2Tomb

	RegionAct3Port
	RegionAct3Jungle
	RegionAct3Temple

	RegionAct4Citadel
	RegionAct4Mesa
	RegionAct4Lava

	RegionAct5Highlands
	RegionAct5Siege
	RegionAct5IceCaves
	RegionAct5Keep
)

var regionNames = map[string]RegionType{
	"act1_village":   RegionAct1Village,
	"act1_forest":    RegionAct1Forest,
	"act1_cave":      RegionAct1Cave,
	"act1_crypt":     RegionAct1Crypt,
	"act1_chapel":    RegionAct1Chapel,
	"act2_town":      RegionAct2Town,
	"act2_sewer":     RegionAct2Sewer,
	"act2_desert":    RegionAct2Desert,
	"act2_tomb":      RegionAct2Tomb,
	"act3_port":      RegionAct3Port,
	"act3_jungle":    RegionAct3Jungle,
	"act3_temple":    RegionAct3Temple,
	"act4_citadel":   RegionAct4Citadel,
	"act4_mesa":      RegionAct4Mesa,
	"act4_lava":      RegionAct4Lava,
	"act5_highlands": RegionAct5Highlands,
	"act5_siege":     RegionAct5Siege,
	"act5_icecaves":  RegionAct5IceCaves,
	"act5_keep":      RegionAct5Keep,
}

// ParseRegion resolves a region name from map data. Unknown names yield
// RegionNone; callers decide whether that is acceptable.
func ParseRegion(name string) RegionType {
	return regionNames[name]
}
