package cpu

import (
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestDecodeTotal(t *testing.T) {
	seen := map[Op]bool{}

	for op := 0; op <= 0xFFFF; op++ {
		ins := Decode(uint16(op))

		assert.True(t, ins.Op < numOps, "opcode decoded to an unknown op")
		assert.Equal(t, uint16(op), ins.Opcode)
		assert.Equal(t, uint8(op>>8)&0xF, ins.X)
		assert.Equal(t, uint8(op>>4)&0xF, ins.Y)
		assert.Equal(t, uint8(op)&0xF, ins.N)
		assert.Equal(t, uint8(op), ins.KK)
		assert.Equal(t, uint16(op)&0xFFF, ins.Addr)
		assert.True(t, ins.String() != "")

		seen[ins.Op] = true
	}

	// every op, NOP included, is reachable from some encoding
	assert.Len(t, seen, int(numOps))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		opcode uint16
		op     Op
		text   string
	}{
		{0x00E0, OpCLS, "CLS"},
		{0x00EE, OpRET, "RET"},
		{0x0123, OpNOP, "NOP ; 0x0123"},
		{0x00E1, OpNOP, "NOP ; 0x00E1"},
		{0x1ABC, OpJP, "JP 0xABC"},
		{0x2ABC, OpCALL, "CALL 0xABC"},
		{0x3A42, OpSE, "SE VA, 0x42"},
		{0x4A42, OpSNE, "SNE VA, 0x42"},
		{0x5AB0, OpSEV, "SE VA, VB"},
		{0x5AB7, OpSEV, "SE VA, VB"},
		{0x6005, OpLD, "LD V0, 0x05"},
		{0x7003, OpADD, "ADD V0, 0x03"},
		{0x8120, OpLDV, "LD V1, V2"},
		{0x8121, OpOR, "OR V1, V2"},
		{0x8122, OpAND, "AND V1, V2"},
		{0x8123, OpXOR, "XOR V1, V2"},
		{0x8124, OpADDV, "ADD V1, V2"},
		{0x8125, OpSUB, "SUB V1, V2"},
		{0x8126, OpSHR, "SHR V1"},
		{0x8127, OpSUBN, "SUBN V1, V2"},
		{0x812E, OpSHL, "SHL V1"},
		{0x8128, OpNOP, "NOP ; 0x8128"},
		{0x812F, OpNOP, "NOP ; 0x812F"},
		{0x9AB0, OpSNEV, "SNE VA, VB"},
		{0xA123, OpLDI, "LD I, 0x123"},
		{0xB123, OpJPV0, "JP V0, 0x123"},
		{0xC30F, OpRND, "RND V3, 0x0F"},
		{0xD125, OpDRW, "DRW V1, V2, 5"},
		{0xE59E, OpSKP, "SKP V5"},
		{0xE5A1, OpSKNP, "SKNP V5"},
		{0xE500, OpNOP, "NOP ; 0xE500"},
		{0xF507, OpLDDT, "LD V5, DT"},
		{0xF50A, OpLDK, "LD V5, K"},
		{0xF515, OpSTDT, "LD DT, V5"},
		{0xF518, OpSTST, "LD ST, V5"},
		{0xF51E, OpADDI, "ADD I, V5"},
		{0xF529, OpLDF, "LD F, V5"},
		{0xF533, OpBCD, "LD B, V5"},
		{0xF555, OpSTR, "LD [I], V5"},
		{0xF565, OpLDR, "LD V5, [I]"},
		{0xF5FF, OpNOP, "NOP ; 0xF5FF"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			ins := Decode(tt.opcode)
			assert.Equal(t, tt.op, ins.Op)
			assert.Equal(t, tt.text, ins.String())
		})
	}
}

func TestMnemonics(t *testing.T) {
	for op := OpNOP + 1; op < numOps; op++ {
		assert.True(t, instructions[op] != nil, "op without instruction set entry")
	}
	assert.Equal(t, "NOP", Instruction{Op: OpNOP}.Mnemonic())
	assert.Equal(t, strings.ToUpper(chip8.Drw.Name), Decode(0xD125).Mnemonic())
	assert.Equal(t, strings.ToUpper(chip8.Ld.Name), Decode(0xF533).Mnemonic())
}

// Every encoding known to both decoders must carry the same instruction name.
func TestMnemonicsMatchOpcodeTable(t *testing.T) {
	for w := 0; w <= 0xFFFF; w++ {
		ins := Decode(uint16(w))
		if ins.Op == OpNOP {
			continue
		}

		for _, op := range chip8.Opcodes[w>>12] {
			if op.Info.Mask&uint16(w) != op.Info.Value {
				continue
			}
			if op.Instruction != nil {
				assert.Equal(t, op.Instruction.Name, instructions[ins.Op].Name)
			}
			break
		}
	}
}
