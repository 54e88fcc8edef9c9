package garden

import "fmt"

// Texture ids, in big-pad order.
const (
	Earth   SoundID = "earth"
	Rain    SoundID = "rain"
	Wind    SoundID = "wind"
	Thunder SoundID = "thunder"
	Trees   SoundID = "trees"
	Birds   SoundID = "birds"
	Insects SoundID = "insects"
	Sun     SoundID = "sun"
)

// Textures lists the background texture ids in pad order.
var Textures = []SoundID{Earth, Rain, Wind, Thunder, Trees, Birds, Insects, Sun}

// Tier is one of the four melodic growth stages.
type Tier int

const (
	Seeds Tier = iota
	Sprouts
	Buds
	Flowers
)

var tierNames = [...]string{"seed", "sprout", "bud", "flower"}

func (t Tier) String() string { return tierNames[t] }

// tierMult scales the pentatonic base frequency per tier.
var tierMult = [...]float64{1, 1.5, 2, 2.5}

// pentatonic is the melodic base scale: C4, D4, E4, G4.
var pentatonic = [...]float64{261.63, 293.66, 329.63, 392.00}

const (
	textureDur = 4.0
	melodicDur = 0.7

	// The off variant of a melodic pad mirrors a natural decay rather
	// than an abrupt cut: slightly flatter, half as long, softer.
	offFreqRatio = 0.85
	offDurRatio  = 0.5
	offVolRatio  = 0.6
)

// MelodicPad returns the id of melodic pad i in [0, 16): tier i/4,
// scale degree i%4.
func MelodicPad(i int) SoundID {
	return SoundID(fmt.Sprintf("%s_%d", Tier(i/4), i+1))
}

// OffID returns the id of a melodic pad's release variant.
func OffID(id SoundID) SoundID { return id + "_off" }

// Library builds the full fixed catalog: 8 looping textures and 16
// melodic pads, each pad with an on and a derived off variant.
func Library() []Recipe {
	rs := []Recipe{
		earthRecipe(), rainRecipe(), windRecipe(), thunderRecipe(),
		treesRecipe(), birdsRecipe(), insectsRecipe(), sunRecipe(),
	}
	for i := 0; i < 16; i++ {
		on := melodicRecipe(i)
		rs = append(rs, on, deriveOff(on))
	}
	return rs
}

// The texture voicings keep the interval structure, rhythm, and breathing
// of the toy's original sound design, transposed into the safety band.

func earthRecipe() Recipe {
	return Recipe{
		ID:   Earth,
		Kind: KindTexture,
		Gen: Generator{
			Kind: GenHarmonics,
			Freq: 220, // A3 root, fifth and octaves above
			Harmonics: []Harmonic{
				{1.5, 0.5}, {2, 0.35}, {3, 0.15},
			},
		},
		Env: Envelope{
			LFOs: []LFO{{Rate: 0.08, Depth: 0.18, Bias: 0.82}}, // 12.5 s breathing cycle
		},
		Duration: textureDur,
		Volume:   0.5,
	}
}

func rainRecipe() Recipe {
	return Recipe{
		ID:   Rain,
		Kind: KindTexture,
		Gen: Generator{
			Kind:        GenEvents,
			EventProb:   0.0004, // a handful of droplets per second
			EventFreqLo: 800,
			EventFreqHi: 1600,
			EventDur:    0.25,
			EventDecay:  8,
			AirNoise:    0.04,
		},
		Duration: textureDur,
		Volume:   0.4,
	}
}

func windRecipe() Recipe {
	// D4-G4-A4 chord with partials, as ratios of D4.
	return Recipe{
		ID:   Wind,
		Kind: KindTexture,
		Gen: Generator{
			Kind: GenHarmonics,
			Freq: 293.66,
			Harmonics: []Harmonic{
				{1.335, 0.83}, // G4
				{1.4983, 0.75}, // A4
				{1.5, 0.33}, {2, 0.17},
				{1.669, 0.25}, // G4 upper partial
				{1.124, 0.2},  // A4 sub-partial, warmth
			},
			AirNoise: 0.15,
		},
		Env: Envelope{
			LFOs: []LFO{
				{Rate: 0.25, Depth: 0.5, Bias: 0.5}, // main gust, one swell per loop
				{Rate: 1.0, Depth: 0.15},            // detail flutter
			},
		},
		Duration: textureDur,
		Volume:   0.3,
	}
}

func thunderRecipe() Recipe {
	return Recipe{
		ID:   Thunder,
		Kind: KindTexture,
		Gen: Generator{
			Kind: GenHarmonics,
			Freq: 220,
			Harmonics: []Harmonic{
				{1.5, 0.6}, {2, 0.5}, {3, 0.25},
			},
			Rumble: 0.12,
		},
		Env: Envelope{
			// Two strikes per loop, fast hit then long musical decay.
			Bursts: []Burst{
				{Start: 0.3, Dur: 1.8, Attack: 0.05, DecayRate: 1.2},
				{Start: 2.2, Dur: 1.8, Attack: 0.05, DecayRate: 1.2},
			},
		},
		Duration: textureDur,
		Volume:   0.73,
	}
}

func treesRecipe() Recipe {
	return Recipe{
		ID:   Trees,
		Kind: KindTexture,
		Gen: Generator{
			Kind:        GenEvents,
			Freq:        220, // creak drone under the rustles
			StackAmp:    0.3,
			EventProb:   0.0002,
			EventFreqLo: 200,
			EventFreqHi: 400,
			EventDur:    0.15,
			EventDecay:  12,
		},
		Env: Envelope{
			LFOs: []LFO{{Rate: 0.2, Depth: 0.3, Bias: 0.85}}, // slow creaking sway
		},
		Duration: textureDur,
		Volume:   0.33,
	}
}

func birdsRecipe() Recipe {
	return Recipe{
		ID:   Birds,
		Kind: KindTexture,
		Gen: Generator{
			Kind:        GenSine,
			Freq:        1200,
			WarbleRate:  8,
			WarbleDepth: 200,
		},
		Env: Envelope{
			// Three calls per loop.
			Bursts: []Burst{
				{Start: 0.2, Dur: 0.6, Attack: 0.05, DecayRate: 3},
				{Start: 1.5, Dur: 0.6, Attack: 0.05, DecayRate: 3},
				{Start: 2.9, Dur: 0.6, Attack: 0.05, DecayRate: 3},
			},
		},
		Duration: textureDur,
		Volume:   0.27,
	}
}

func insectsRecipe() Recipe {
	// Buzz duty cycle: the first 3/16 of every half second.
	bursts := make([]Burst, 8)
	for k := range bursts {
		bursts[k] = Burst{Start: float64(k) * 0.5, Dur: 0.1875, Attack: 0.01, DecayRate: 6}
	}
	return Recipe{
		ID:   Insects,
		Kind: KindTexture,
		Gen: Generator{
			Kind:        GenEvents,
			Freq:        400,
			WarbleRate:  20,
			WarbleDepth: 50,
			EventProb:   0.0001, // sparse clicks
			EventFreqLo: 800,
			EventFreqHi: 800,
			EventDur:    0.08,
			EventDecay:  20,
			EventAmp:    0.6,
		},
		Env:      Envelope{Bursts: bursts},
		Duration: textureDur,
		Volume:   0.2,
	}
}

func sunRecipe() Recipe {
	return Recipe{
		ID:   Sun,
		Kind: KindTexture,
		Gen: Generator{
			Kind: GenHarmonics,
			Freq: 261.63, // warm C4 drone
			Harmonics: []Harmonic{
				{1.5, 0.3}, {2, 0.2},
			},
		},
		Env: Envelope{
			LFOs: []LFO{{Rate: 0.5, Depth: 0.1}},
		},
		Duration: textureDur,
		Volume:   0.5,
	}
}

// melodicRecipe builds the on variant of pad i. Each tier has its own
// timbre: bell, soft, bright, sparkle.
func melodicRecipe(i int) Recipe {
	tier := Tier(i / 4)
	r := Recipe{
		ID:       MelodicPad(i),
		Kind:     KindMelodicOn,
		Duration: melodicDur,
		Volume:   0.9,
		Env:      Envelope{Attack: 0.02, FadeOut: 0.1},
	}
	r.Gen.Freq = pentatonic[i%4] * tierMult[tier]
	switch tier {
	case Seeds: // bell
		r.Gen.Kind = GenHarmonics
		r.Gen.Harmonics = []Harmonic{{2, 0.3}, {3, 0.1}}
		r.Env.DecayRate = 1.8
	case Sprouts: // soft
		r.Gen.Kind = GenSine
		r.Env.DecayRate = 1.2
	case Buds: // bright
		r.Gen.Kind = GenHarmonics
		r.Gen.Harmonics = []Harmonic{{1.5, 0.2}}
		r.Env.DecayRate = 1.4
	case Flowers: // sparkle
		r.Gen.Kind = GenHarmonics
		r.Gen.Harmonics = []Harmonic{{2.5, 0.4}, {4, 0.2}}
		r.Env.DecayRate = 1.6
	}
	return r
}

// deriveOff derives the release variant from an on recipe: 85% of the
// fundamental, half the duration, 60% of the volume, halved harmonic
// content, and a quicker but still natural decay.
func deriveOff(on Recipe) Recipe {
	off := on
	off.ID = OffID(on.ID)
	off.Kind = KindMelodicOff
	off.Gen.Freq = on.Gen.Freq * offFreqRatio
	off.Gen.Harmonics = halve(on.Gen.Harmonics)
	off.Duration = on.Duration * offDurRatio
	off.Volume = on.Volume * offVolRatio
	off.Env.Attack = 0.01
	off.Env.FadeOut = 0.05
	off.Env.DecayRate = on.Env.DecayRate * 2
	return off
}

func halve(hs []Harmonic) []Harmonic {
	out := make([]Harmonic, len(hs))
	for i, h := range hs {
		out[i] = Harmonic{h.Ratio, h.Amp / 2}
	}
	return out
}

// WelcomeChord is the opening ritual sound; ClosingNotes are the G-E-C
// goodnight descent. They are ordinary one-shot recipes outside the pad
// catalog.
const WelcomeChord SoundID = "welcome"

var ClosingNotes = []SoundID{"closing_1", "closing_2", "closing_3"}

// RitualRecipes returns the one-shot sounds played around a session.
func RitualRecipes() []Recipe {
	rs := []Recipe{chordRecipe(WelcomeChord, []float64{261.63, 329.63, 392.00}, 2.0)}
	for i, f := range []float64{392.00, 329.63, 261.63} {
		rs = append(rs, Recipe{
			ID:       ClosingNotes[i],
			Kind:     KindMelodicOn,
			Gen:      Generator{Kind: GenSine, Freq: f},
			Env:      Envelope{Attack: 0.01, DecayRate: 2, FadeOut: 0.05},
			Duration: 1.0,
			Volume:   0.67,
		})
	}
	return rs
}

// chordRecipe mixes equal-weight fundamentals, expressed as ratios of the
// lowest.
func chordRecipe(id SoundID, freqs []float64, dur float64) Recipe {
	hs := make([]Harmonic, 0, len(freqs)-1)
	for _, f := range freqs[1:] {
		hs = append(hs, Harmonic{f / freqs[0], 1})
	}
	return Recipe{
		ID:   id,
		Kind: KindMelodicOn,
		Gen: Generator{
			Kind:      GenHarmonics,
			Freq:      freqs[0],
			Harmonics: hs,
			StackAmp:  1 / float64(len(freqs)),
		},
		Env:      Envelope{Attack: 0.02, DecayRate: 0.5, FadeOut: 0.1},
		Duration: dur,
		Volume:   0.67,
	}
}
