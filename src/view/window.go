//go:build ebiten

package view

import (
	"context"
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"rewindlife/src/universe"
)

var (
	backgroundColor = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	cellColor       = color.RGBA{R: 210, G: 210, B: 210, A: 255}
)

// Window adapts the universe to the ebiten.Game interface
type Window struct {
	u        *universe.Universe
	pacer    *Pacer
	ctx      context.Context
	title    string
	width    int
	height   int
	cellSize int
}

// NewWindow creates the width x height pixels window, every cell takes cellSize x cellSize pixels
func NewWindow(title string, width int, height int, cellSize int) *Window {
	return &Window{
		title:    title,
		width:    width,
		height:   height,
		cellSize: cellSize,
		ctx:      context.Background(),
	}
}

func (w *Window) Register(u *universe.Universe) {
	w.u = u
	w.pacer = NewPacer(u.Options().Interval)
}

// Refresh is a no-op, the window redraws every frame
func (w *Window) Refresh() {}

// Start opens the window and runs the ebiten loop until the user quits or ctx is done
func (w *Window) Start(ctx context.Context) error {
	w.ctx = ctx
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowSize(w.width, w.height)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Update drains the input and advances the universe at the pacer's rate
func (w *Window) Update() error {
	if w.ctx.Err() != nil {
		w.u.Quit()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		w.u.Quit()
	}
	if !w.u.Running() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w.u.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		w.u.StepForward()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		w.u.StepBackward()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		w.u.Reseed()
	}

	mx, my := ebiten.CursorPosition()
	i, j := my/w.cellSize, mx/w.cellSize
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		w.u.BeginDraw(i, j)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		w.u.EndDraw()
	case w.u.Drawing():
		w.u.DrawAt(i, j)
	}

	if w.pacer.ShouldStep() {
		w.u.Tick()
	}
	return nil
}

// Draw renders the live cells as filled squares over the grid lines
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	game := w.u.Game()
	cs := float32(w.cellSize)
	for i := 0; i < game.Height(); i++ {
		for j := 0; j < game.Width(); j++ {
			if game.Cell(i, j).State() {
				vector.DrawFilledRect(screen, float32(j)*cs, float32(i)*cs, cs, cs, cellColor, false)
			}
		}
	}
	for x := w.cellSize; x < w.width; x += w.cellSize {
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(w.height), 1, cellColor, false)
	}
	for y := w.cellSize; y < w.height; y += w.cellSize {
		vector.StrokeLine(screen, 0, float32(y), float32(w.width), float32(y), 1, cellColor, false)
	}
}

// Layout returns the logical screen size
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}
