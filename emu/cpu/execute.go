package cpu

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// execute applies ins to the machine. pc already points past ins.
//
// Arithmetic results and flags are computed from the operands as they were
// before the instruction. When the destination is VF, ADD keeps the carry
// while SUB, SHR, SUBN and SHL keep the result.
func (emu *EMU) execute(ins Instruction) *Fault {
	x, y := ins.X, ins.Y

	switch ins.Op {
	case OpNOP:
		if emu.logger != nil {
			emu.logger.Debug("unrecognised opcode",
				log.String("address", fmt.Sprintf("0x%03X", emu.pc-2)),
				log.String("opcode", fmt.Sprintf("0x%04X", ins.Opcode)))
		}

	case OpCLS:
		emu.display = [Width * Height]uint8{}
		emu.updateScreen = true

	case OpRET:
		if emu.sp == 0 {
			return &Fault{Kind: StackUnderflow}
		}
		emu.sp--
		emu.pc = emu.stack[emu.sp]

	case OpJP:
		emu.pc = ins.Addr

	case OpCALL:
		if emu.sp >= stackSize {
			return &Fault{Kind: StackOverflow}
		}
		emu.stack[emu.sp] = emu.pc
		emu.sp++
		emu.pc = ins.Addr

	case OpSE:
		emu.skipIf(emu.V[x] == ins.KK)
	case OpSNE:
		emu.skipIf(emu.V[x] != ins.KK)
	case OpSEV:
		emu.skipIf(emu.V[x] == emu.V[y])
	case OpSNEV:
		emu.skipIf(emu.V[x] != emu.V[y])

	case OpLD:
		emu.V[x] = ins.KK
	case OpADD:
		emu.V[x] += ins.KK

	case OpLDV:
		emu.V[x] = emu.V[y]
	case OpOR:
		emu.V[x] |= emu.V[y]
	case OpAND:
		emu.V[x] &= emu.V[y]
	case OpXOR:
		emu.V[x] ^= emu.V[y]

	case OpADDV:
		sum := uint16(emu.V[x]) + uint16(emu.V[y])
		emu.V[x] = uint8(sum)
		emu.V[flag] = boolToFlag(sum > 0xFF)

	case OpSUB:
		vx, vy := emu.V[x], emu.V[y]
		emu.V[flag] = boolToFlag(vx > vy)
		emu.V[x] = vx - vy

	case OpSHR:
		vx := emu.V[x]
		emu.V[flag] = vx & 0x1
		emu.V[x] = vx >> 1

	case OpSUBN:
		vx, vy := emu.V[x], emu.V[y]
		emu.V[flag] = boolToFlag(!(vx > vy))
		emu.V[x] = vy - vx

	case OpSHL:
		vx := emu.V[x]
		emu.V[flag] = vx >> 7
		emu.V[x] = vx << 1

	case OpLDI:
		emu.I = ins.Addr
	case OpJPV0:
		emu.pc = ins.Addr + uint16(emu.V[0])

	case OpRND:
		emu.V[x] = uint8(emu.rnd.Intn(256)) & ins.KK

	case OpDRW:
		return emu.draw(x, y, ins.N)

	case OpSKP:
		emu.skipIf(emu.keyState[emu.V[x]&0xF])
	case OpSKNP:
		emu.skipIf(!emu.keyState[emu.V[x]&0xF])

	case OpLDDT:
		emu.V[x] = emu.delayTimer
	case OpSTDT:
		emu.delayTimer = emu.V[x]
	case OpSTST:
		emu.soundTimer = emu.V[x]

	case OpLDK:
		for k, pressed := range emu.keyState {
			if pressed {
				emu.V[x] = uint8(k)
				return nil
			}
		}
		// nothing pressed, run this instruction again next cycle
		emu.pc -= 2

	case OpADDI:
		emu.I += uint16(emu.V[x])

	case OpLDF:
		emu.I = fontStart + uint16(emu.V[x]&0xF)*glyphSize

	case OpBCD:
		if f := emu.checkIndex(3); f != nil {
			return f
		}
		v := emu.V[x]
		emu.memory[emu.I] = v / 100
		emu.memory[emu.I+1] = (v / 10) % 10
		emu.memory[emu.I+2] = v % 10

	case OpSTR:
		if f := emu.checkIndex(int(x) + 1); f != nil {
			return f
		}
		copy(emu.memory[emu.I:], emu.V[:x+1])

	case OpLDR:
		if f := emu.checkIndex(int(x) + 1); f != nil {
			return f
		}
		copy(emu.V[:x+1], emu.memory[emu.I:])
	}

	return nil
}

// draw XORs an n-row sprite from memory at I onto the display at (Vx, Vy).
// The origin wraps, the sprite itself is clipped at the right and bottom
// edges.
func (emu *EMU) draw(x, y, n uint8) *Fault {
	if f := emu.checkIndex(int(n)); f != nil {
		return f
	}

	ox := int(emu.V[x]) % Width
	oy := int(emu.V[y]) % Height
	emu.V[flag] = 0

	for row := 0; row < int(n) && oy+row < Height; row++ {
		sprite := emu.memory[int(emu.I)+row]
		for col := 0; col < 8 && ox+col < Width; col++ {
			if sprite&(0x80>>col) == 0 {
				continue
			}
			cell := &emu.display[(oy+row)*Width+ox+col]
			if *cell == 1 {
				emu.V[flag] = 1
			}
			*cell ^= 1
		}
	}

	emu.updateScreen = true
	return nil
}

// checkIndex faults unless n bytes starting at I lie inside memory.
func (emu *EMU) checkIndex(n int) *Fault {
	if int(emu.I)+n > memorySize {
		return &Fault{Kind: MemoryOutOfBounds, Addr: int(emu.I) + n - 1}
	}
	return nil
}

func (emu *EMU) skipIf(cond bool) {
	if cond {
		emu.pc += 2
	}
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
