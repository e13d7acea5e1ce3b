package cpu

// Step runs one fetch, decode and execute. It has no notion of time; the
// caller decides how often to call it.
//
// A returned error is always a *Fault. The machine is halted afterwards and
// keeps returning the same fault.
func (emu *EMU) Step() error {
	if emu.fault != nil {
		return emu.fault
	}

	at := emu.pc
	if int(at)+1 >= memorySize {
		emu.opcode = 0
		return emu.halt(&Fault{Kind: PCOutOfBounds, Addr: int(at)}, at)
	}

	emu.opcode = uint16(emu.memory[at])<<8 | uint16(emu.memory[at+1])
	emu.pc += 2

	if f := emu.execute(Decode(emu.opcode)); f != nil {
		return emu.halt(f, at)
	}
	return nil
}

func (emu *EMU) halt(f *Fault, at uint16) error {
	f.PC = at
	f.Opcode = emu.opcode
	emu.fault = f
	return f
}

// Tick counts both timers down by one. Call it at 60Hz.
func (emu *EMU) Tick() {
	if emu.delayTimer > 0 {
		emu.delayTimer--
	}
	if emu.soundTimer > 0 {
		emu.soundTimer--
	}
}
