// Package headless provides window-less stand-ins for the display, keypad and
// buzzer, for running ROMs in scripts and tests.
package headless

import (
	"strings"

	"github.com/beanboi7/chyp8/emu/cpu"
)

// Display keeps the most recently presented frame.
type Display struct {
	Frame    []byte
	Presents int
}

func (d *Display) Present(fb []byte) {
	if d.Frame == nil {
		d.Frame = make([]byte, len(fb))
	}
	copy(d.Frame, fb)
	d.Presents++
}

// Input reports a fixed key vector. It asks the console to stop after
// QuitAfter polls when that is non-zero.
type Input struct {
	Keys      [16]bool
	QuitAfter int

	polls int
}

func (in *Input) Poll() (keys [16]bool, quit bool) {
	in.polls++
	if in.QuitAfter > 0 && in.polls > in.QuitAfter {
		return in.Keys, true
	}
	return in.Keys, false
}

// Buzzer records how many frames the buzzer was on.
type Buzzer struct {
	On     bool
	Frames int
}

func (b *Buzzer) Set(on bool) {
	b.On = on
	if on {
		b.Frames++
	}
}

// Render draws a framebuffer as text, one line per row.
func Render(fb []byte, on, off rune) string {
	var sb strings.Builder
	sb.Grow((cpu.Width + 1) * cpu.Height)

	for i, px := range fb {
		if px != 0 {
			sb.WriteRune(on)
		} else {
			sb.WriteRune(off)
		}
		if i%cpu.Width == cpu.Width-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
