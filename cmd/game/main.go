package main

import (
	"log"

	"github.com/Garsondee/Neon-Drop/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	g := game.New()
	ebiten.SetWindowTitle("Neon Drop")
	ebiten.SetWindowSize(g.Width(), g.Height())
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
