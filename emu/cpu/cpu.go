// Package cpu is the CHIP-8 instruction engine: machine state, the ROM loader,
// the opcode decoder, the executor and a single-step cycle driver.
//
// The engine never paces itself and never touches a window or a keyboard. The
// caller owns the loop, feeds key state in with SetKey/SetKeys, calls Step once
// per instruction and Tick at 60Hz, and reads the framebuffer back out.
package cpu

import (
	"math/rand"
	"time"

	"github.com/retroenv/retrogolib/log"
)

const (
	memorySize = 4096
	romStart   = 0x200
	maxRomSize = memorySize - romStart

	fontStart = 0x000
	glyphSize = 5

	stackSize = 16
	numKeys   = 16

	// VF doubles as carry, borrow and collision flag
	flag = 0xF
)

// Display dimensions in pixels.
const (
	Width  = 64
	Height = 32
)

var FontSet = [80]uint8{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// EMU holds the complete state of one CHIP-8 machine. It is not safe for
// concurrent use; the caller interleaves Step, Tick and SetKeys itself.
type EMU struct {
	opcode     uint16
	memory     [memorySize]uint8
	V          [16]uint8
	I          uint16 //address register
	pc         uint16
	display    [Width * Height]uint8
	delayTimer uint8
	soundTimer uint8
	stack      [stackSize]uint16
	sp         uint16
	keyState   [numKeys]bool //written by the input side, read only here

	updateScreen bool //set by CLS and DRW
	fault        *Fault

	rnd    *rand.Rand
	logger *log.Logger
}

// Option configures an EMU at construction.
type Option func(*EMU)

// WithRand sets the generator used by RND. Pass a seeded generator to make
// runs reproducible.
func WithRand(rnd *rand.Rand) Option {
	return func(emu *EMU) {
		emu.rnd = rnd
	}
}

// WithLogger enables debug logging of loads and unrecognised opcodes.
func WithLogger(logger *log.Logger) Option {
	return func(emu *EMU) {
		emu.logger = logger
	}
}

// New returns a zeroed machine with the fontset in place and PC at the ROM
// load address.
func New(opts ...Option) *EMU {
	emu := &EMU{
		pc: romStart,
	}
	for _, opt := range opts {
		opt(emu)
	}
	if emu.rnd == nil {
		emu.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	emu.loadFont()
	return emu
}

func (emu *EMU) loadFont() {
	copy(emu.memory[fontStart:], FontSet[:])
}

func (emu *EMU) PC() uint16 {
	return emu.pc
}

func (emu *EMU) SP() uint16 {
	return emu.sp
}

// Opcode returns the most recently fetched opcode.
func (emu *EMU) Opcode() uint16 {
	return emu.opcode
}

func (emu *EMU) DelayTimer() uint8 {
	return emu.delayTimer
}

func (emu *EMU) SoundTimer() uint8 {
	return emu.soundTimer
}

// Sounding reports whether the buzzer should be on.
func (emu *EMU) Sounding() bool {
	return emu.soundTimer > 0
}

// Memory returns a copy of main memory.
func (emu *EMU) Memory() [memorySize]uint8 {
	return emu.memory
}

// Framebuffer returns a row-major copy of the display, one byte per pixel,
// each 0 or 1.
func (emu *EMU) Framebuffer() []byte {
	fb := make([]byte, len(emu.display))
	copy(fb, emu.display[:])
	return fb
}

// Pixel returns the cell at x, y. Out of range coordinates read as off.
func (emu *EMU) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return emu.display[y*Width+x] == 1
}

// DrawFlag reports whether the framebuffer changed since ClearDrawFlag.
func (emu *EMU) DrawFlag() bool {
	return emu.updateScreen
}

func (emu *EMU) ClearDrawFlag() {
	emu.updateScreen = false
}

// SetKey marks key k (0x0-0xF) as pressed or released. Other values are
// ignored.
func (emu *EMU) SetKey(k int, pressed bool) {
	if k < 0 || k >= numKeys {
		return
	}
	emu.keyState[k] = pressed
}

// SetKeys replaces the whole key vector.
func (emu *EMU) SetKeys(keys [numKeys]bool) {
	emu.keyState = keys
}

// Halted returns the fault that stopped the machine, or nil.
func (emu *EMU) Halted() *Fault {
	return emu.fault
}
