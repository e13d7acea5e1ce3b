// Package console owns the emulation loop: it paces the engine, ticks the
// timers and moves keys in and frames out between the engine and its
// collaborators.
package console

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/retroenv/retrogolib/log"
)

// Display receives the framebuffer whenever it has changed.
type Display interface {
	Present(fb []byte)
}

// Input reports the keypad state once per frame. quit ends the loop.
type Input interface {
	Poll() (keys [16]bool, quit bool)
}

// Buzzer is switched on while the sound timer is running.
type Buzzer interface {
	Set(on bool)
}

// Config sets the pacing of the loop.
type Config struct {
	Clock   int // instructions per second
	Refresh int // frames, and timer ticks, per second
}

// DefaultConfig runs 700 instructions per second at 60 frames per second.
func DefaultConfig() Config {
	return Config{
		Clock:   700,
		Refresh: 60,
	}
}

// ErrQuit is returned by RunFrames when the input asked to stop.
var ErrQuit = errors.New("quit requested")

type Console struct {
	emu     *cpu.EMU
	display Display
	input   Input
	buzzer  Buzzer
	logger  *log.Logger

	refresh       time.Duration
	stepsPerFrame int
	frames        int
}

func New(emu *cpu.EMU, display Display, input Input, buzzer Buzzer, cfg Config, logger *log.Logger) (*Console, error) {
	if cfg.Clock <= 0 || cfg.Refresh <= 0 {
		return nil, fmt.Errorf("invalid pacing: clock %d, refresh %d", cfg.Clock, cfg.Refresh)
	}

	steps := cfg.Clock / cfg.Refresh
	if steps < 1 {
		steps = 1
	}

	return &Console{
		emu:           emu,
		display:       display,
		input:         input,
		buzzer:        buzzer,
		logger:        logger,
		refresh:       time.Second / time.Duration(cfg.Refresh),
		stepsPerFrame: steps,
	}, nil
}

// Frames returns the number of frames completed.
func (c *Console) Frames() int {
	return c.frames
}

// Frame runs one frame without any pacing: poll keys, execute a frame's worth
// of instructions, tick the timers, update the buzzer and present the display
// if it changed.
func (c *Console) Frame() error {
	keys, quit := c.input.Poll()
	if quit {
		return ErrQuit
	}
	c.emu.SetKeys(keys)

	for i := 0; i < c.stepsPerFrame; i++ {
		if err := c.emu.Step(); err != nil {
			return err
		}
	}

	c.emu.Tick()
	c.buzzer.Set(c.emu.Sounding())

	if c.emu.DrawFlag() {
		c.display.Present(c.emu.Framebuffer())
		c.emu.ClearDrawFlag()
	}

	c.frames++
	return nil
}

// RunFrames runs n frames back to back.
func (c *Console) RunFrames(n int) error {
	for i := 0; i < n; i++ {
		if err := c.Frame(); err != nil {
			return err
		}
	}
	return nil
}

// Run runs frames at the configured refresh rate until ctx is done, the input
// asks to quit, or the machine faults. Only a fault is returned as an error.
func (c *Console) Run(ctx context.Context) error {
	if c.logger != nil {
		c.logger.Info("emulation started",
			log.Int("steps_per_frame", c.stepsPerFrame),
			log.String("frame", c.refresh.String()))
	}

	ticker := time.NewTicker(c.refresh)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.stopped()
			return nil
		case <-ticker.C:
		}

		err := c.Frame()
		switch {
		case err == nil:
		case errors.Is(err, ErrQuit):
			c.stopped()
			return nil
		default:
			if c.logger != nil {
				c.logger.Error("emulation halted", log.Err(err))
			}
			return err
		}
	}
}

func (c *Console) stopped() {
	if c.logger != nil {
		c.logger.Info("emulation stopped", log.Int("frames", c.frames))
	}
}
