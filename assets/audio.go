package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"

	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
)

// AudioLoader builds and caches the synthesized sound effects. Every effect
// is a short square-wave sequence from the tone table; nothing is loaded
// from disk.
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // Cached PCM, 16-bit LE stereo
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX synthesizes a sound effect and caches it without creating a
// player. Call at startup to avoid building waves on first play.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}

	segments, ok := cfg.Sound.Tones[id]
	if !ok {
		return fmt.Errorf("no tone sequence for sound %d", id)
	}

	var pcm []byte
	for _, seg := range segments {
		pcm = append(pcm, synthTone(l.context.SampleRate(), seg)...)
	}

	l.sfxCache[id] = pcm
	return nil
}

// LoadSFX returns a new player each time so overlapping effects mix.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[id]))
}

// synthTone renders one square-wave segment as 16-bit LE stereo PCM. The
// last few hundred samples ramp down so segment boundaries do not click.
func synthTone(sampleRate int, seg cfg.ToneSegment) []byte {
	n := seg.Frames * sampleRate / 60
	buf := make([]byte, n*4)
	if seg.Freq <= 0 {
		return buf // rest
	}

	period := float64(sampleRate) / seg.Freq
	fade := n / 8
	for i := 0; i < n; i++ {
		amp := 6000.0
		if remaining := n - i; remaining < fade {
			amp *= float64(remaining) / float64(fade)
		}

		sample := int16(amp)
		if float64(i%int(period)) >= period/2 {
			sample = -sample
		}

		binary.LittleEndian.PutUint16(buf[i*4:], uint16(sample))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(sample))
	}
	return buf
}
