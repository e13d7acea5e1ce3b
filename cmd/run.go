package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/beanboi7/chyp8/emu/console"
	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/headless"
)

var runCmd = &cobra.Command{
	Use:   "run `path/ROM`",
	Short: "run a ROM without a window and print the final screen",
	Args:  cobra.ExactArgs(1),
	RunE:  Run,
}

var frames int

// chyp8 run 'path/to/ROM' -f 120
func Run(cmd *cobra.Command, args []string) error {
	s := loadSettings()
	logger := s.newLogger()

	emu, err := s.newEMU(args[0], logger)
	if err != nil {
		return err
	}

	display := &headless.Display{}
	c, err := console.New(emu, display, &headless.Input{}, &headless.Buzzer{}, s.pacing(), logger)
	if err != nil {
		return err
	}

	runErr := c.RunFrames(frames)
	printState(cmd.OutOrStdout(), emu, c.Frames())

	var f *cpu.Fault
	if errors.As(runErr, &f) {
		return runErr
	}
	return nil
}

func printState(w io.Writer, emu *cpu.EMU, frames int) {
	fmt.Fprint(w, headless.Render(emu.Framebuffer(), '#', '.'))
	fmt.Fprintf(w, "frames: %d  PC: 0x%03X  I: 0x%03X  SP: %d  DT: %d  ST: %d\n",
		frames, emu.PC(), emu.I, emu.SP(), emu.DelayTimer(), emu.SoundTimer())
	for i, v := range emu.V {
		fmt.Fprintf(w, "V%X: 0x%02X", i, v)
		if i%8 == 7 {
			fmt.Fprintln(w)
		} else {
			fmt.Fprint(w, "  ")
		}
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().IntVarP(&frames, "frames", "f", 600, "number of frames to run")
}
