// Package chime plays a short alert tone through the system audio
// device when a step timer expires. All methods are safe on a nil
// receiver so callers can ignore audio-init failures.
package chime

import (
	"bytes"
	"encoding/binary"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/hammamikhairi/rasoi/internal/logger"
)

const (
	sampleRate   = 24000
	channelCount = 1

	toneHz     = 880
	beepLen    = 180 * time.Millisecond
	beepGap    = 120 * time.Millisecond
	beepCount  = 3
	volumePeak = 0.35
)

// Chime owns the audio context and plays the alert tone.
type Chime struct {
	ctx *oto.Context
	log *logger.Logger
	mu  sync.Mutex
	pcm []byte
}

// New initializes the system audio context. Returns an error if the
// audio device is unavailable; callers may proceed with a nil Chime.
func New(log *logger.Logger) (*Chime, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channelCount,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-readyChan

	log.Debug("chime initialized (rate=%d)", sampleRate)
	return &Chime{ctx: ctx, log: log, pcm: renderTone()}, nil
}

// Ring plays the alert tone synchronously. Blocks until playback
// finishes. No-op on a nil receiver.
func (c *Chime) Ring() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	player := c.ctx.NewPlayer(bytes.NewReader(c.pcm))
	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	player.Close()
	c.log.Debug("chime: played %d bytes of PCM", len(c.pcm))
}

// renderTone synthesizes the beep pattern as signed 16-bit PCM: short
// sine bursts with a fade-out envelope, separated by silence.
func renderTone() []byte {
	beepSamples := int(sampleRate * beepLen.Seconds())
	gapSamples := int(sampleRate * beepGap.Seconds())

	var buf bytes.Buffer
	for i := 0; i < beepCount; i++ {
		for n := 0; n < beepSamples; n++ {
			t := float64(n) / sampleRate
			envelope := 1.0 - float64(n)/float64(beepSamples)
			v := volumePeak * envelope * math.Sin(2*math.Pi*toneHz*t)
			binary.Write(&buf, binary.LittleEndian, int16(v*math.MaxInt16))
		}
		if i < beepCount-1 {
			for n := 0; n < gapSamples; n++ {
				binary.Write(&buf, binary.LittleEndian, int16(0))
			}
		}
	}
	return buf.Bytes()
}
