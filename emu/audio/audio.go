// Package audio plays a looping sample for as long as the sound timer runs.
package audio

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
)

// Buzzer drives the speaker from the machine's sound timer. The sample is
// decoded once and looped, paused whenever the buzzer is off.
type Buzzer struct {
	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	on       bool
}

// NewBuzzer decodes the mp3 at path and starts it, paused, on the speaker.
func NewBuzzer(path string) (*Buzzer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening beep sample: %w", err)
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decoding beep sample: %w", err)
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		_ = streamer.Close()
		return nil, fmt.Errorf("initialising speaker: %w", err)
	}

	b := &Buzzer{
		streamer: streamer,
		ctrl:     &beep.Ctrl{Streamer: beep.Loop(-1, streamer), Paused: true},
	}
	speaker.Play(b.ctrl)

	return b, nil
}

// Set turns the buzzer on or off. Repeated calls with the same value are
// cheap.
func (b *Buzzer) Set(on bool) {
	if on == b.on {
		return
	}
	b.on = on

	speaker.Lock()
	b.ctrl.Paused = !on
	speaker.Unlock()
}

// Close silences the buzzer and releases the sample.
func (b *Buzzer) Close() error {
	b.Set(false)
	return b.streamer.Close()
}
