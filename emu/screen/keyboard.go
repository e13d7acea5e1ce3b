package screen

import "github.com/faiface/pixel/pixelgl"

// DefaultKeyMap lays the hex keypad over the left side of a QWERTY keyboard:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  Q W E R
//	7 8 9 E      A S D F
//	A 0 B F      Z X C V
func DefaultKeyMap() map[pixelgl.Button]int {
	return map[pixelgl.Button]int{
		pixelgl.Key1: 0x1, pixelgl.Key2: 0x2, pixelgl.Key3: 0x3, pixelgl.Key4: 0xC,
		pixelgl.KeyQ: 0x4, pixelgl.KeyW: 0x5, pixelgl.KeyE: 0x6, pixelgl.KeyR: 0xD,
		pixelgl.KeyA: 0x7, pixelgl.KeyS: 0x8, pixelgl.KeyD: 0x9, pixelgl.KeyF: 0xE,
		pixelgl.KeyZ: 0xA, pixelgl.KeyX: 0x0, pixelgl.KeyC: 0xB, pixelgl.KeyV: 0xF,
	}
}

// Poll pumps window events and returns the keypad state. quit is set when the
// window is closed or escape is pressed.
func (w *Window) Poll() (keys [16]bool, quit bool) {
	w.UpdateInput()

	if w.Closed() || w.Pressed(pixelgl.KeyEscape) {
		return keys, true
	}

	for button, k := range w.KeyMap {
		if k >= 0 && k < len(keys) && w.Pressed(button) {
			keys[k] = true
		}
	}
	return keys, false
}
