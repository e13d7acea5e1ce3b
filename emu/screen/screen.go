// Package screen is the windowed frontend: it draws the framebuffer with
// pixel and reads the hex keypad from the keyboard.
//
// Everything here must run on the main thread, i.e. inside pixelgl.Run.
package screen

import (
	"fmt"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"

	"github.com/beanboi7/chyp8/emu/cpu"
)

const title = "Chyp8"

type Window struct {
	*pixelgl.Window
	KeyMap map[pixelgl.Button]int

	scale float64
	imd   *imdraw.IMDraw
}

// NewWindow opens a window big enough for the display at the given
// magnification.
func NewWindow(scale int) (*Window, error) {
	if scale < 1 {
		return nil, fmt.Errorf("invalid scale %d", scale)
	}

	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, float64(cpu.Width*scale), float64(cpu.Height*scale)),
		VSync:  true,
	}

	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	w := &Window{
		Window: win,
		KeyMap: DefaultKeyMap(),
		scale:  float64(scale),
		imd:    imdraw.New(nil),
	}
	w.Clear(colornames.Black)
	w.Update()

	return w, nil
}

// Present draws a row-major framebuffer of cpu.Width x cpu.Height cells.
func (w *Window) Present(fb []byte) {
	w.imd.Clear()
	w.imd.Color = colornames.White

	for i, px := range fb {
		if px == 0 {
			continue
		}
		x := float64(i % cpu.Width)
		// pixel's origin is bottom left, the display's is top left
		y := float64(cpu.Height - 1 - i/cpu.Width)

		w.imd.Push(pixel.V(x*w.scale, y*w.scale), pixel.V((x+1)*w.scale, (y+1)*w.scale))
		w.imd.Rectangle(0)
	}

	w.Clear(colornames.Black)
	w.imd.Draw(w)
	w.Update()
}
