package cpu

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func writeROM(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.ch8")
	assert.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadROM(t *testing.T) {
	t.Run("fits exactly", func(t *testing.T) {
		rom := bytes.Repeat([]byte{0xAB}, memorySize-romStart)
		emu := New()

		assert.NoError(t, emu.LoadROM(writeROM(t, rom)))

		mem := emu.Memory()
		assert.Equal(t, uint8(0xAB), mem[romStart])
		assert.Equal(t, uint8(0xAB), mem[memorySize-1])
		assert.Equal(t, FontSet[:], mem[fontStart:fontStart+len(FontSet)])
	})

	t.Run("one byte too large", func(t *testing.T) {
		rom := make([]byte, memorySize-romStart+1)
		emu := New()

		err := emu.LoadROM(writeROM(t, rom))
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrRomTooLarge))
		assert.False(t, errors.Is(err, ErrIO))
	})

	t.Run("missing file", func(t *testing.T) {
		emu := New()

		err := emu.LoadROM(filepath.Join(t.TempDir(), "missing.ch8"))
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrIO))
	})

	t.Run("empty rom", func(t *testing.T) {
		emu := New()

		assert.NoError(t, emu.LoadROM(writeROM(t, nil)))
		assert.Equal(t, uint16(0x200), emu.PC())
	})
}

func TestLoadReader(t *testing.T) {
	emu := New()

	assert.NoError(t, emu.LoadReader(bytes.NewReader([]byte{0x60, 0x05})))

	mem := emu.Memory()
	assert.Equal(t, uint8(0x60), mem[romStart])
	assert.Equal(t, uint8(0x05), mem[romStart+1])
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestLoadReaderFailure(t *testing.T) {
	emu := New()

	err := emu.LoadReader(failingReader{})
	assert.True(t, errors.Is(err, ErrIO))
	assert.True(t, strings.Contains(err.Error(), "device gone"))
}
