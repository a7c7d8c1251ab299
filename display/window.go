// Package display shows a rendered figure in a desktop window.
package display

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Show opens a window holding img and blocks until the window is closed.
func Show(img image.Image, title string) error {
	g := newFigureGame(img)
	w, h := g.Layout(0, 0)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

type figureGame struct {
	src image.Image
	img *ebiten.Image
}

func newFigureGame(img image.Image) *figureGame {
	return &figureGame{src: img}
}

func (g *figureGame) Update() error {
	return nil
}

func (g *figureGame) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImageFromImage(g.src)
	}
	screen.DrawImage(g.img, nil)
}

// Layout keeps the logical screen at the figure size; ebiten scales it to
// the window.
func (g *figureGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.src.Bounds()
	return b.Dx(), b.Dy()
}
