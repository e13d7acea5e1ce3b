package cmd

import (
	"fmt"
	"io"
	"io/ioutil"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/spf13/cobra"

	"github.com/beanboi7/chyp8/emu/cpu"
)

var decodeCmd = &cobra.Command{
	Use:   "decode `path/ROM`",
	Short: "list every word of a ROM as an instruction",
	Args:  cobra.ExactArgs(1),
	RunE:  Decode,
}

func Decode(cmd *cobra.Command, args []string) error {
	rom, err := ioutil.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", cpu.ErrIO, err)
	}
	listing(cmd.OutOrStdout(), rom)
	return nil
}

// listing prints address, opcode and mnemonic for each word as it would sit
// in memory. Words outside the instruction set are listed as data, a trailing
// odd byte is shown on its own.
func listing(w io.Writer, rom []byte) {
	addr := 0x200
	for i := 0; i+1 < len(rom); i += 2 {
		op := uint16(rom[i])<<8 | uint16(rom[i+1])
		if _, ok := lookup(op); !ok {
			fmt.Fprintf(w, "0x%03X  %04X  DW 0x%04X\n", addr+i, op, op)
			continue
		}
		fmt.Fprintf(w, "0x%03X  %04X  %s\n", addr+i, op, cpu.Decode(op))
	}
	if len(rom)%2 == 1 {
		fmt.Fprintf(w, "0x%03X  %02X\n", addr+len(rom)-1, rom[len(rom)-1])
	}
}

// lookup finds the instruction set entry matching the word w.
func lookup(w uint16) (chip8.Opcode, bool) {
	for _, op := range chip8.Opcodes[int(w>>12)] {
		if op.Info.Mask&w == op.Info.Value {
			return op, op.Instruction != nil
		}
	}
	return chip8.Opcode{}, false
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
