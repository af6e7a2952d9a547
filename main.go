package main

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/feralgiant/duskhollow/config"
	"github.com/feralgiant/duskhollow/fonts"
	"github.com/feralgiant/duskhollow/persist"
	"github.com/feralgiant/duskhollow/scenes"
)

const defaultMap = "maps/act1_village.tmx"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() (*Game, error) {
	fonts.LoadFont(fonts.Debug, goregular.TTF)
	fonts.LoadFontWithSize(fonts.DebugSmall, goregular.TTF, 8)
	fonts.LoadFontWithSize(fonts.Panel, goregular.TTF, 20)

	scene, err := scenes.NewWorldScene(defaultMap)
	if err != nil {
		return nil, err
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}, nil
}

// Close releases scene resources once the game loop has returned.
func (g *Game) Close() {
	if c, ok := g.scene.(interface{ Close() }); ok {
		c.Close()
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	if err := config.Load("duskhollow.yaml"); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Duskhollow")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := persist.Init(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	game, err := NewGame()
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
	game.Close()
}
