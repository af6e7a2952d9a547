package config

// RenderConfig contains the logical screen and animation clock configuration
type RenderConfig struct {
	// Logical resolution. Window size may differ; Layout scales to this.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Animation clock
	FrameDuration float64 `yaml:"frameDuration"` // seconds per animation frame
	FrameCount    int     `yaml:"frameCount"`    // frames per animation cycle
}

// CameraConfig contains camera movement configuration
type CameraConfig struct {
	Speed          float64 `yaml:"speed"`          // world units per second toward a target
	SnapEpsilon    float64 `yaml:"snapEpsilon"`    // distance at which the camera snaps onto its target
	KeyScrollSpeed float64 `yaml:"keyScrollSpeed"` // world units per second for keyboard scrolling
}

// DebugConfig contains debug overlay configuration
type DebugConfig struct {
	// Overlay verbosity at startup (0=off, 1=tiles, 2=sub-tiles)
	VisLevel int `yaml:"visLevel"`
}

var (
	// C is the global render configuration
	C RenderConfig

	// Camera is the global camera configuration
	Camera CameraConfig

	// Debug is the global debug configuration
	Debug DebugConfig
)

func init() {
	C = RenderConfig{
		Width:         800,
		Height:        600,
		FrameDuration: 0.1,
		FrameCount:    10,
	}

	Camera = CameraConfig{
		Speed:          12,
		SnapEpsilon:    0.05,
		KeyScrollSpeed: 8,
	}

	Debug = DebugConfig{
		VisLevel: 0,
	}
}
