package cpu

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Op identifies a decoded instruction.
type Op uint8

const (
	OpNOP  Op = iota // unrecognised encoding
	OpCLS            // 00E0
	OpRET            // 00EE
	OpJP             // 1nnn
	OpCALL           // 2nnn
	OpSE             // 3xkk
	OpSNE            // 4xkk
	OpSEV            // 5xy0
	OpLD             // 6xkk
	OpADD            // 7xkk
	OpLDV            // 8xy0
	OpOR             // 8xy1
	OpAND            // 8xy2
	OpXOR            // 8xy3
	OpADDV           // 8xy4
	OpSUB            // 8xy5
	OpSHR            // 8xy6
	OpSUBN           // 8xy7
	OpSHL            // 8xyE
	OpSNEV           // 9xy0
	OpLDI            // Annn
	OpJPV0           // Bnnn
	OpRND            // Cxkk
	OpDRW            // Dxyn
	OpSKP            // Ex9E
	OpSKNP           // ExA1
	OpLDDT           // Fx07
	OpLDK            // Fx0A
	OpSTDT           // Fx15
	OpSTST           // Fx18
	OpADDI           // Fx1E
	OpLDF            // Fx29
	OpBCD            // Fx33
	OpSTR            // Fx55
	OpLDR            // Fx65

	numOps
)

// Instruction is a decoded opcode. Which operand fields are meaningful depends
// on Op; the rest are still filled in from their fixed bit positions.
type Instruction struct {
	Op     Op
	Opcode uint16

	X    uint8  // bits 8-11
	Y    uint8  // bits 4-7
	N    uint8  // bits 0-3
	KK   uint8  // bits 0-7
	Addr uint16 // bits 0-11
}

// Decode maps any 16-bit opcode to an instruction. Encodings that are not part
// of the instruction set decode to OpNOP.
func Decode(opcode uint16) Instruction {
	ins := Instruction{
		Opcode: opcode,
		X:      uint8(opcode>>8) & 0xF,
		Y:      uint8(opcode>>4) & 0xF,
		N:      uint8(opcode) & 0xF,
		KK:     uint8(opcode),
		Addr:   opcode & 0x0FFF,
	}

	switch opcode >> 12 {
	case 0x0:
		switch opcode & 0x00FF {
		case 0xE0:
			ins.Op = OpCLS
		case 0xEE:
			ins.Op = OpRET
		}
	case 0x1:
		ins.Op = OpJP
	case 0x2:
		ins.Op = OpCALL
	case 0x3:
		ins.Op = OpSE
	case 0x4:
		ins.Op = OpSNE
	case 0x5:
		ins.Op = OpSEV
	case 0x6:
		ins.Op = OpLD
	case 0x7:
		ins.Op = OpADD
	case 0x8:
		ins.Op = aluOps[ins.N]
	case 0x9:
		ins.Op = OpSNEV
	case 0xA:
		ins.Op = OpLDI
	case 0xB:
		ins.Op = OpJPV0
	case 0xC:
		ins.Op = OpRND
	case 0xD:
		ins.Op = OpDRW
	case 0xE:
		switch ins.KK {
		case 0x9E:
			ins.Op = OpSKP
		case 0xA1:
			ins.Op = OpSKNP
		}
	case 0xF:
		ins.Op = miscOps[ins.KK]
	}

	return ins
}

// 8xyN, indexed by N. Missing entries are OpNOP.
var aluOps = [16]Op{
	0x0: OpLDV,
	0x1: OpOR,
	0x2: OpAND,
	0x3: OpXOR,
	0x4: OpADDV,
	0x5: OpSUB,
	0x6: OpSHR,
	0x7: OpSUBN,
	0xE: OpSHL,
}

// FxKK, indexed by KK.
var miscOps = [256]Op{
	0x07: OpLDDT,
	0x0A: OpLDK,
	0x15: OpSTDT,
	0x18: OpSTST,
	0x1E: OpADDI,
	0x29: OpLDF,
	0x33: OpBCD,
	0x55: OpSTR,
	0x65: OpLDR,
}

// instructions names the assembler mnemonic of every op. OpNOP has none.
var instructions = [numOps]*chip8.Instruction{
	OpCLS:  chip8.Cls,
	OpRET:  chip8.Ret,
	OpJP:   chip8.Jp,
	OpCALL: chip8.Call,
	OpSE:   chip8.Se,
	OpSNE:  chip8.Sne,
	OpSEV:  chip8.Se,
	OpLD:   chip8.Ld,
	OpADD:  chip8.Add,
	OpLDV:  chip8.Ld,
	OpOR:   chip8.Or,
	OpAND:  chip8.And,
	OpXOR:  chip8.Xor,
	OpADDV: chip8.Add,
	OpSUB:  chip8.Sub,
	OpSHR:  chip8.Shr,
	OpSUBN: chip8.Subn,
	OpSHL:  chip8.Shl,
	OpSNEV: chip8.Sne,
	OpLDI:  chip8.Ld,
	OpJPV0: chip8.Jp,
	OpRND:  chip8.Rnd,
	OpDRW:  chip8.Drw,
	OpSKP:  chip8.Skp,
	OpSKNP: chip8.Sknp,
	OpLDDT: chip8.Ld,
	OpLDK:  chip8.Ld,
	OpSTDT: chip8.Ld,
	OpSTST: chip8.Ld,
	OpADDI: chip8.Add,
	OpLDF:  chip8.Ld,
	OpBCD:  chip8.Ld,
	OpSTR:  chip8.Ld,
	OpLDR:  chip8.Ld,
}

// Mnemonic returns the upper case instruction name, e.g. "LD".
func (ins Instruction) Mnemonic() string {
	if i := instructions[ins.Op]; i != nil {
		return strings.ToUpper(i.Name)
	}
	return "NOP"
}

// Operands formats the operands of ins, e.g. "V0, 0x05".
func (ins Instruction) Operands() string {
	switch ins.Op {
	case OpJP, OpCALL:
		return fmt.Sprintf("0x%03X", ins.Addr)
	case OpSE, OpSNE, OpLD, OpADD, OpRND:
		return fmt.Sprintf("V%X, 0x%02X", ins.X, ins.KK)
	case OpSEV, OpSNEV, OpLDV, OpOR, OpAND, OpXOR, OpADDV, OpSUB, OpSUBN:
		return fmt.Sprintf("V%X, V%X", ins.X, ins.Y)
	case OpSHR, OpSHL, OpSKP, OpSKNP:
		return fmt.Sprintf("V%X", ins.X)
	case OpLDI:
		return fmt.Sprintf("I, 0x%03X", ins.Addr)
	case OpJPV0:
		return fmt.Sprintf("V0, 0x%03X", ins.Addr)
	case OpDRW:
		return fmt.Sprintf("V%X, V%X, %d", ins.X, ins.Y, ins.N)
	case OpLDDT:
		return fmt.Sprintf("V%X, DT", ins.X)
	case OpLDK:
		return fmt.Sprintf("V%X, K", ins.X)
	case OpSTDT:
		return fmt.Sprintf("DT, V%X", ins.X)
	case OpSTST:
		return fmt.Sprintf("ST, V%X", ins.X)
	case OpADDI:
		return fmt.Sprintf("I, V%X", ins.X)
	case OpLDF:
		return fmt.Sprintf("F, V%X", ins.X)
	case OpBCD:
		return fmt.Sprintf("B, V%X", ins.X)
	case OpSTR:
		return fmt.Sprintf("[I], V%X", ins.X)
	case OpLDR:
		return fmt.Sprintf("V%X, [I]", ins.X)
	case OpNOP:
		return fmt.Sprintf("; 0x%04X", ins.Opcode)
	}
	return ""
}

// String returns the instruction in assembler syntax, e.g. "LD V0, 0x05".
func (ins Instruction) String() string {
	if operands := ins.Operands(); operands != "" {
		return ins.Mnemonic() + " " + operands
	}
	return ins.Mnemonic()
}
