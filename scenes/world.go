package scenes

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	vec "github.com/yohamta/donburi/features/math"

	"github.com/feralgiant/duskhollow/assets"
	"github.com/feralgiant/duskhollow/config"
	"github.com/feralgiant/duskhollow/fonts"
	"github.com/feralgiant/duskhollow/mapdata"
	"github.com/feralgiant/duskhollow/mapview"
	"github.com/feralgiant/duskhollow/persist"
	"github.com/feralgiant/duskhollow/surface"
	"github.com/feralgiant/duskhollow/terminal"
	"github.com/feralgiant/duskhollow/ui"
)

const assetDir = "assets"

// Cursor distance from the window border that triggers edge scrolling.
const edgeScrollMargin = 4

// WorldScene drives the map renderer: it advances the camera and animation
// clock, feeds input into camera control and debug commands, and hosts the
// side panel.
type WorldScene struct {
	renderer *mapview.MapRenderer
	term     *terminal.Terminal
	panel    *ui.SidePanel
	watcher  *mapdata.Watcher

	mapPath    string
	debugLevel int
	face       text.Face
}

// NewWorldScene loads the given map (relative to the asset directory) and
// wires the renderer, debug terminal, side panel and map file watcher.
func NewWorldScene(mapPath string) (*WorldScene, error) {
	fsys := os.DirFS(assetDir)

	engine, err := mapdata.Load(fsys, mapPath)
	if err != nil {
		return nil, err
	}

	term := terminal.New()
	renderer, err := mapview.New(assets.NewLoader(fsys), engine, term)
	if err != nil {
		return nil, fmt.Errorf("create map renderer: %w", err)
	}

	width, height := engine.Size()
	renderer.MoveCameraTo(vec.Vec2{X: float64(width) / 2, Y: float64(height) / 2})

	s := &WorldScene{
		renderer: renderer,
		term:     term,
		mapPath:  mapPath,
		face:     text.NewGoXFace(fonts.Debug.Get()),
	}

	s.panel = ui.NewSidePanel(
		text.NewGoXFace(fonts.Panel.Get()),
		text.NewGoXFace(fonts.DebugSmall.Get()),
		renderer.ViewportToLeft,
		renderer.ViewportDefault,
		s.setDebugLevel,
	)

	s.spawnMarkers(engine)

	if watcher, err := mapdata.NewWatcher(assetDir + "/maps"); err == nil {
		s.watcher = watcher
	} else {
		log.Printf("Map watcher disabled: %v", err)
	}

	if saved, err := persist.LoadSettings(); err == nil && saved != nil {
		s.panel.SetDebugLevel(saved.DebugVisLevel)
		s.panel.SetOpen(saved.PanelOpen)
	} else if config.Debug.VisLevel > 0 {
		s.panel.SetDebugLevel(config.Debug.VisLevel)
	}

	return s, nil
}

// Close stops the map watcher and its goroutine.
func (s *WorldScene) Close() {
	if s.watcher != nil {
		_ = s.watcher.Close()
	}
}

func (s *WorldScene) Update() {
	elapsed := 1.0 / float64(ebiten.TPS())

	s.handleMapReload()
	s.handleInput(elapsed)

	s.panel.Update()
	s.renderer.Advance(elapsed)
}

func (s *WorldScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	target := surface.NewEbiten(screen, s.face)
	s.renderer.Render(target)

	s.panel.Draw(screen)
}

func (s *WorldScene) handleInput(elapsed float64) {
	step := config.Camera.KeyScrollSpeed * elapsed
	var move vec.Vec2

	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		move.X -= step
		move.Y -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		move.X += step
		move.Y += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		move.X -= step
		move.Y += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		move.X += step
		move.Y -= step
	}

	// edge scrolling, only while the cursor is inside the window
	cx, cy := ebiten.CursorPosition()
	if cx >= 0 && cy >= 0 && cx < config.C.Width && cy < config.C.Height {
		if cx < edgeScrollMargin {
			move.X -= step
			move.Y += step
		}
		if cx >= config.C.Width-edgeScrollMargin {
			move.X += step
			move.Y -= step
		}
		if cy < edgeScrollMargin {
			move.X -= step
			move.Y -= step
		}
		if cy >= config.C.Height-edgeScrollMargin {
			move.X += step
			move.Y += step
		}
	}

	if move.X != 0 || move.Y != 0 {
		s.renderer.MoveCameraBy(move)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !s.panel.Open() {
		wx, wy := s.renderer.ScreenToWorld(ebiten.CursorPosition())
		s.renderer.SetCameraTarget(vec.Vec2{X: wx, Y: wy})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		s.panel.Toggle()
		s.saveSettings()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.panel.CycleDebugLevel()
	}
}

// setDebugLevel routes panel and hotkey changes through the debug command
// registry, the same path an in-game console would use.
func (s *WorldScene) setDebugLevel(level int) {
	s.debugLevel = level
	if err := s.term.Execute(fmt.Sprintf("mapdebugvis %d", level)); err != nil {
		log.Printf("mapdebugvis: %v", err)
	}
	s.saveSettings()
}

func (s *WorldScene) saveSettings() {
	_ = persist.SaveSettings(&persist.SavedSettings{
		DebugVisLevel: s.debugLevel,
		PanelOpen:     s.panel.Open(),
	})
}

// handleMapReload swaps the engine when the watcher reports a change to the
// active map. The swap happens here, between frames, never mid-render.
func (s *WorldScene) handleMapReload() {
	if s.watcher == nil {
		return
	}

	select {
	case _, ok := <-s.watcher.Events:
		if !ok {
			s.watcher = nil
			return
		}
		engine, err := mapdata.Load(os.DirFS(assetDir), s.mapPath)
		if err != nil {
			log.Printf("Map reload failed: %v", err)
			return
		}
		if err := s.renderer.SetMapEngine(engine); err != nil {
			log.Printf("Map reload failed: %v", err)
			return
		}
		s.spawnMarkers(engine)
		log.Printf("Map reloaded: %s", s.mapPath)
	case err, ok := <-s.watcher.Errors:
		if !ok {
			s.watcher = nil
			return
		}
		log.Printf("Map watcher: %v", err)
	default:
	}
}

// spawnMarkers places a few stand-in entities so entity layering is visible
// before real actors are hooked up.
func (s *WorldScene) spawnMarkers(engine *mapdata.Engine) {
	width, height := engine.Size()
	cx, cy := float64(width)/2, float64(height)/2

	engine.AddEntity(&markerEntity{
		x: cx, y: cy,
		layer: mapdata.LayerBelow,
		color: color.RGBA{80, 160, 255, 255},
	})
	engine.AddEntity(&markerEntity{
		x: cx + 2, y: cy + 1,
		layer: mapdata.LayerBelow + 1,
		color: color.RGBA{255, 120, 80, 255},
	})
}

type markerEntity struct {
	x, y  float64
	layer int
	color color.RGBA
}

func (m *markerEntity) GetPosition() (float64, float64) {
	return m.x, m.y
}

func (m *markerEntity) GetLayer() int {
	return m.layer
}

func (m *markerEntity) Render(target surface.Surface) {
	target.PushTranslation(-4, -16)
	target.DrawRect(8, 16, m.color)
	target.Pop()
}
