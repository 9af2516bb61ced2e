package game

import (
	"bytes"
	"io"
	"log/slog"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

// AudioManager plays short synthesized cues. A nil or disabled manager is silent.
type AudioManager struct {
	eat   *audio.Player
	crash *audio.Player
}

var (
	audioOnce sync.Once
	audioCtx  *audio.Context
)

// An ebiten audio context may only be created once per process.
func getAudioContext() *audio.Context {
	audioOnce.Do(func() {
		audioCtx = audio.NewContext(sampleRate)
	})
	return audioCtx
}

// NewAudioManager returns a silent manager unless enabled.
func NewAudioManager(enabled bool) *AudioManager {
	am := &AudioManager{}
	if !enabled {
		return am
	}
	ctx := getAudioContext()
	am.eat = newBeepPlayer(ctx, 60, 880)
	am.crash = newBeepPlayer(ctx, 400, 220)
	return am
}

func newBeepPlayer(ctx *audio.Context, durationMs int, freq float64) *audio.Player {
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(synthBeepWAV(sampleRate, durationMs, freq)))
	if err != nil {
		slog.Warn("decode beep", slog.String("error", err.Error()))
		return nil
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		slog.Warn("read beep", slog.String("error", err.Error()))
		return nil
	}
	return ctx.NewPlayerFromBytes(pcm)
}

func (am *AudioManager) play(p *audio.Player) {
	if am == nil || p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		return
	}
	p.Play()
}

func (am *AudioManager) PlayEat() {
	if am != nil {
		am.play(am.eat)
	}
}

func (am *AudioManager) PlayCrash() {
	if am != nil {
		am.play(am.crash)
	}
}

// synthBeepWAV returns a 16-bit PCM mono WAV of a sine beep.
func synthBeepWAV(sampleRate int, durationMs int, freq float64) []byte {
	numSamples := sampleRate * durationMs / 1000
	dataSize := numSamples * 2
	buf := make([]byte, 44+dataSize)

	copy(buf[0:4], "RIFF")
	putLE32(buf[4:8], uint32(len(buf)-8))
	copy(buf[8:12], "WAVE")
	copy(buf[12:16], "fmt ")
	putLE32(buf[16:20], 16)
	putLE16(buf[20:22], 1) // PCM
	putLE16(buf[22:24], 1) // mono
	putLE32(buf[24:28], uint32(sampleRate))
	putLE32(buf[28:32], uint32(sampleRate*2))
	putLE16(buf[32:34], 2)
	putLE16(buf[34:36], 16)
	copy(buf[36:40], "data")
	putLE32(buf[40:44], uint32(dataSize))

	const amp = 0.25
	for i := 0; i < numSamples; i++ {
		t := float64(i) / float64(sampleRate)
		// Linear fade out avoids a click at the end of the cue.
		fade := 1 - float64(i)/float64(numSamples)
		v := int16(math.Sin(2*math.Pi*freq*t) * 32767 * amp * fade)
		putLE16(buf[44+i*2:], uint16(v))
	}
	return buf
}

func putLE16(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

func putLE32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
