package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/beanboi7/chyp8/emu/audio"
	"github.com/beanboi7/chyp8/emu/console"
	"github.com/beanboi7/chyp8/emu/headless"
	"github.com/beanboi7/chyp8/emu/screen"
	"github.com/retroenv/retrogolib/log"
)

var startCmd = &cobra.Command{
	Use:   "start `path/ROM`",
	Short: "load and start the Emulator",
	Args:  cobra.ExactArgs(1),
	RunE:  Start,
}

// chyp8 start 'path/to/ROM' -r 60 -s 10
func Start(cmd *cobra.Command, args []string) error {
	s := loadSettings()
	logger := s.newLogger()

	emu, err := s.newEMU(args[0], logger)
	if err != nil {
		return err
	}

	win, err := screen.NewWindow(s.Scale)
	if err != nil {
		return err
	}
	defer win.Destroy()

	var buzzer console.Buzzer = &headless.Buzzer{}
	if s.Beep != "" {
		b, err := audio.NewBuzzer(s.Beep)
		if err != nil {
			logger.Warn("audio disabled", log.String("error", err.Error()))
		} else {
			defer b.Close()
			buzzer = b
		}
	}

	c, err := console.New(emu, win, win, buzzer, s.pacing(), logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return c.Run(ctx)
}

func init() {
	rootCmd.AddCommand(startCmd)

	flags := startCmd.Flags()
	flags.IntP("scale", "s", 10, "window magnification")
	flags.String("beep", "", "mp3 sample played while the sound timer runs")

	bindFlags(flags, "scale", "beep")
}
