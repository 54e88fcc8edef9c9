package garden

// SoundID identifies one entry in the sound catalog.
type SoundID string

// Kind classifies a recipe.
type Kind int

const (
	KindTexture Kind = iota
	KindMelodicOn
	KindMelodicOff
)

// GenKind is the closed set of generator variants. The synthesis pipeline
// matches it exhaustively.
type GenKind int

const (
	GenSine      GenKind = iota // single sinusoid, optionally warbled
	GenHarmonics                // weighted partial stack over the fundamental
	GenNoise                    // uniform white noise
	GenBrown                    // leaky-integrated (brown) noise
	GenEvents                   // stochastic micro-enveloped transients
)

// Generator describes a recipe's raw signal before shaping. Freq and
// Harmonics are the tonal stack; the Event fields configure stochastic
// transients; AirNoise and Rumble are optional white/brown noise beds
// layered under any kind.
type Generator struct {
	Kind      GenKind
	Freq      float64 // fundamental, Hz
	Harmonics []Harmonic
	StackAmp  float64 // overall stack gain; zero means 1

	WarbleRate  float64 // Hz, frequency modulation of the fundamental
	WarbleDepth float64 // Hz deviation

	EventProb   float64 // per-frame transient probability
	EventFreqLo float64 // Hz
	EventFreqHi float64 // Hz
	EventDur    float64 // seconds per transient
	EventDecay  float64 // 1/s transient decay
	EventAmp    float64 // zero means 1

	AirNoise float64 // white-noise bed amplitude
	Rumble   float64 // brown-noise bed amplitude
}

// Recipe is the immutable description of one sound. Recipes are created
// once from the catalog tables and never mutated; a buffer is fully
// regenerable from its recipe.
type Recipe struct {
	ID       SoundID
	Kind     Kind
	Gen      Generator
	Env      Envelope
	Duration float64 // seconds
	Volume   float64 // base volume, fraction of the safety ceiling
}
