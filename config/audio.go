package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Gameplay sounds
	SoundCatch
	SoundLift
	SoundLoad
	SoundTruckFull
	SoundTruckReturn
	SoundMiss
	SoundGameOver
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
	SoundPause
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// ToneSegment is one note of a synthesized effect. Freq 0 is a rest.
type ToneSegment struct {
	Freq   float64
	Frames int // duration at 60fps
}

// SoundConfig maps sound IDs to their tone sequences. All effects are
// square waves generated at startup, the cartridge carries no samples.
type SoundConfig struct {
	Tones             map[SoundID][]ToneSegment
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		Tones: map[SoundID][]ToneSegment{
			SoundCatch: {{Freq: 880, Frames: 3}},
			SoundLift:  {{Freq: 988, Frames: 2}, {Freq: 1319, Frames: 2}},
			SoundLoad:  {{Freq: 659, Frames: 3}, {Freq: 880, Frames: 3}},
			SoundTruckFull: {
				{Freq: 523, Frames: 4},
				{Freq: 659, Frames: 4},
				{Freq: 784, Frames: 4},
				{Freq: 1047, Frames: 6},
			},
			SoundTruckReturn: {{Freq: 330, Frames: 5}, {Freq: 392, Frames: 5}},
			SoundMiss:        {{Freq: 196, Frames: 6}, {Freq: 131, Frames: 8}},
			SoundGameOver: {
				{Freq: 392, Frames: 8},
				{Freq: 330, Frames: 8},
				{Freq: 262, Frames: 8},
				{Freq: 196, Frames: 14},
			},
			SoundMenuNavigate: {{Freq: 523, Frames: 2}},
			SoundMenuSelect:   {{Freq: 784, Frames: 2}, {Freq: 1047, Frames: 3}},
			SoundPause:        {{Freq: 440, Frames: 2}, {Freq: 0, Frames: 2}, {Freq: 440, Frames: 2}},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundMiss:     1.3,
			SoundGameOver: 1.2,
		},
	}
}
