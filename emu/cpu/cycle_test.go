package cpu

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestProgram(t *testing.T) {
	// LD V0, 0x05; ADD V0, 0x03; CLS
	emu := New()
	assert.NoError(t, emu.LoadROM(writeROM(t, []byte{0x60, 0x05, 0x70, 0x03, 0x00, 0xE0})))

	stepN(t, emu, 3)

	assert.Equal(t, uint8(8), emu.V[0])
	assert.Equal(t, uint16(0x206), emu.PC())
	assert.Equal(t, uint16(0x00E0), emu.Opcode())
	for _, px := range emu.Framebuffer() {
		assert.Equal(t, uint8(0), px)
	}
}

func TestUnknownOpcodeIsNOP(t *testing.T) {
	emu := newTestEMU(t, 0x0123, 0xFFFF, 0x812F)
	before := emu.V

	stepN(t, emu, 3)
	assert.Equal(t, uint16(0x206), emu.PC())
	assert.Equal(t, before, emu.V)
}

func TestProgramCounterFault(t *testing.T) {
	emu := newTestEMU(t, 0x1FFF)

	stepN(t, emu, 1)
	assert.Equal(t, uint16(0xFFF), emu.PC())

	err := emu.Step()
	var f *Fault
	assert.True(t, errors.As(err, &f))
	assert.Equal(t, PCOutOfBounds, f.Kind)
	assert.Equal(t, 0xFFF, f.Addr)

	// halted machines stay halted
	again := emu.Step()
	assert.Equal(t, err, again)
	assert.True(t, emu.Halted() == f)
	assert.Equal(t, uint16(0xFFF), emu.PC())
}

func TestLastWordExecutes(t *testing.T) {
	emu := New()
	rom := make([]byte, maxRomSize)
	// LD V0, 0x2A in the last word of memory
	rom[maxRomSize-2] = 0x60
	rom[maxRomSize-1] = 0x2A
	// JP 0xFFE at the start
	rom[0] = 0x1F
	rom[1] = 0xFE
	assert.NoError(t, emu.LoadBytes(rom))

	stepN(t, emu, 2)
	assert.Equal(t, uint8(0x2A), emu.V[0])

	assert.Error(t, emu.Step())
}

func TestTick(t *testing.T) {
	emu := New()
	emu.delayTimer = 2
	emu.soundTimer = 1

	emu.Tick()
	assert.Equal(t, uint8(1), emu.DelayTimer())
	assert.Equal(t, uint8(0), emu.SoundTimer())
	assert.False(t, emu.Sounding())

	emu.Tick()
	emu.Tick()
	assert.Equal(t, uint8(0), emu.DelayTimer())
	assert.Equal(t, uint8(0), emu.SoundTimer())
}

func TestFaultMessage(t *testing.T) {
	f := &Fault{Kind: MemoryOutOfBounds, PC: 0x234, Opcode: 0xF033, Addr: 0x1001}
	assert.Equal(t, "machine fault: memory access out of bounds at 0x234 (opcode 0xF033, address 0x1001)", f.Error())

	f = &Fault{Kind: StackUnderflow, PC: 0x200, Opcode: 0x00EE}
	assert.Equal(t, "machine fault: stack underflow at 0x200 (opcode 0x00EE)", f.Error())
}
