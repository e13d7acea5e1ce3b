package cpu

import (
	"fmt"
	"io"
	"io/ioutil"

	"github.com/retroenv/retrogolib/log"
)

// LoadROM reads the file at filename into memory at 0x200. It is meant to be
// called once, before the first Step.
func (emu *EMU) LoadROM(filename string) error {
	rom, err := ioutil.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return emu.LoadBytes(rom)
}

// LoadReader reads a ROM from r until EOF.
func (emu *EMU) LoadReader(r io.Reader) error {
	rom, err := ioutil.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return emu.LoadBytes(rom)
}

// LoadBytes copies rom into memory at 0x200 and rewrites the fontset.
func (emu *EMU) LoadBytes(rom []byte) error {
	if len(rom) > maxRomSize {
		return fmt.Errorf("%w: %d bytes, can't cross %d", ErrRomTooLarge, len(rom), maxRomSize)
	}

	copy(emu.memory[romStart:], rom)
	emu.loadFont()

	if emu.logger != nil {
		emu.logger.Debug("rom loaded", log.Int("size", len(rom)))
	}
	return nil
}
