package garden

import "math"

// LFO is a slow amplitude modulation: gain = bias + depth·sin(2πft).
// A zero Bias means 1.
type LFO struct {
	Rate, Depth, Bias float64
}

// Burst is a scheduled one-shot window inside a loop: silence outside
// [Start, Start+Dur], a fast ramp then exponential decay inside.
type Burst struct {
	Start, Dur float64
	Attack     float64 // seconds
	DecayRate  float64 // 1/s
}

func (b Burst) gain(t float64) float64 {
	t -= b.Start
	if t < 0 || t > b.Dur {
		return 0
	}
	if t < b.Attack {
		return t / b.Attack
	}
	return math.Exp(-b.DecayRate * (t - b.Attack))
}

// Envelope is an amplitude-only, length-preserving shaping of a sample
// block.
type Envelope struct {
	Attack    float64 // ramp from zero at buffer start, seconds
	CosAttack bool    // cosine ramp instead of linear
	DecayRate float64 // exp(-DecayRate·t); zero means none
	FadeOut   float64 // linear ramp to zero at buffer end, seconds
	LFOs      []LFO
	Bursts    []Burst // if set, gain is zero outside burst windows
}

func (e Envelope) apply(p Params, a Audio) {
	dt := 1 / p.SampleRate
	dur := float64(len(a)) * dt
	for i := range a {
		t := float64(i) * dt
		g := 1.0
		if len(e.Bursts) > 0 {
			g = 0
			for _, b := range e.Bursts {
				g += b.gain(t)
			}
		}
		if e.DecayRate != 0 {
			g *= math.Exp(-e.DecayRate * t)
		}
		if e.Attack > 0 && t < e.Attack {
			if e.CosAttack {
				g *= (1 - math.Cos(math.Pi*t/e.Attack)) / 2
			} else {
				g *= t / e.Attack
			}
		}
		if e.FadeOut > 0 && t > dur-e.FadeOut {
			g *= (dur - t) / e.FadeOut
		}
		for _, l := range e.LFOs {
			bias := l.Bias
			if bias == 0 {
				bias = 1
			}
			g *= bias + l.Depth*math.Sin(2*math.Pi*l.Rate*t)
		}
		a[i] *= g
	}
}
