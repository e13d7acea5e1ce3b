package cmd

import (
	"math/rand"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/beanboi7/chyp8/emu/console"
	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/retroenv/retrogolib/log"
)

// settings is the merged view of flags, environment and config file.
type settings struct {
	Debug   bool
	Quiet   bool
	Seed    int64
	Clock   int
	Refresh int
	Scale   int
	Beep    string
}

// bindFlags makes each named flag the fallback for the viper key of the same
// name.
func bindFlags(flags *pflag.FlagSet, names ...string) {
	for _, name := range names {
		f := flags.Lookup(name)
		if f == nil {
			panic("unknown flag " + name)
		}
		if err := viper.BindPFlag(name, f); err != nil {
			panic(err)
		}
	}
}

func loadSettings() settings {
	return settings{
		Debug:   viper.GetBool("debug"),
		Quiet:   viper.GetBool("quiet"),
		Seed:    viper.GetInt64("seed"),
		Clock:   viper.GetInt("clock"),
		Refresh: viper.GetInt("refresh"),
		Scale:   viper.GetInt("scale"),
		Beep:    viper.GetString("beep"),
	}
}

// newLogger creates a logger with appropriate settings
func (s settings) newLogger() *log.Logger {
	cfg := log.DefaultConfig()
	if s.Debug {
		cfg.Level = log.DebugLevel
	} else if s.Quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

func (s settings) pacing() console.Config {
	return console.Config{
		Clock:   s.Clock,
		Refresh: s.Refresh,
	}
}

// newEMU builds a machine with the configured RNG seed and loads the ROM.
func (s settings) newEMU(romPath string, logger *log.Logger) (*cpu.EMU, error) {
	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	emu := cpu.New(
		cpu.WithRand(rand.New(rand.NewSource(seed))),
		cpu.WithLogger(logger),
	)
	if err := emu.LoadROM(romPath); err != nil {
		return nil, err
	}
	return emu, nil
}
