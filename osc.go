package garden

import "math"

// SineOsc keeps its phase across calls, so frequency changes stay
// continuous and don't click.
type SineOsc struct {
	Params Params
	phase  float64
}

func (o *SineOsc) Sine(freq float64) float64 {
	_, o.phase = math.Modf(o.phase + freq/o.Params.SampleRate)
	return math.Sin(2 * math.Pi * o.phase)
}

// Harmonic is one weighted partial at a ratio of the fundamental.
type Harmonic struct {
	Ratio, Amp float64
}

// renderStack adds the generator's tonal content to a: the fundamental at
// unit amplitude plus its weighted partials, each with its own phase
// accumulator. A warble modulates the fundamental frequency.
func renderStack(p Params, g Generator, a Audio) {
	if g.Freq == 0 {
		return
	}
	amp := g.StackAmp
	if amp == 0 {
		amp = 1
	}
	oscs := make([]SineOsc, 1+len(g.Harmonics))
	for i := range oscs {
		oscs[i].Params = p
	}
	var warble SineOsc
	warble.Params = p
	for i := range a {
		f := g.Freq
		if g.WarbleDepth != 0 {
			f += g.WarbleDepth * warble.Sine(g.WarbleRate)
		}
		x := oscs[0].Sine(f)
		for j, h := range g.Harmonics {
			x += h.Amp * oscs[j+1].Sine(f * h.Ratio)
		}
		a[i] += amp * x
	}
}

// renderEvents adds stochastic transients: a per-frame Bernoulli draw
// starts a short micro-enveloped sine burst at a frequency drawn from the
// generator's band. Frames inside a sounding transient draw nothing.
func renderEvents(p Params, g Generator, src *NoiseSource, a Audio) {
	n := int(g.EventDur * p.SampleRate)
	if n <= 0 || g.EventProb <= 0 {
		return
	}
	amp := g.EventAmp
	if amp == 0 {
		amp = 1
	}
	const attack = 0.002
	dt := 1 / p.SampleRate
	osc := SineOsc{Params: p}
	for i := 0; i < len(a); {
		if !src.Chance(g.EventProb) {
			i++
			continue
		}
		f := src.Between(g.EventFreqLo, g.EventFreqHi)
		osc.phase = 0
		for j := 0; j < n && i < len(a); j, i = j+1, i+1 {
			t := float64(j) * dt
			env := t / attack
			if t >= attack {
				env = math.Exp(-g.EventDecay * (t - attack))
			}
			a[i] += amp * env * osc.Sine(f)
		}
	}
}
