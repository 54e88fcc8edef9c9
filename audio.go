package garden

import "math"

// Params carries the sample rate through the synthesis pipeline.
type Params struct {
	SampleRate float64
}

// Audio is a block of samples, nominally in [-1, 1].
type Audio []float64

func (z Audio) Zero() Audio {
	for i := range z {
		z[i] = 0
	}
	return z
}

func (z Audio) Add(x, y Audio) Audio {
	for i := range z {
		z[i] = x[i] + y[i]
	}
	return z
}

func (z Audio) Mul(x, y Audio) Audio {
	for i := range z {
		z[i] = x[i] * y[i]
	}
	return z
}

func (z Audio) MulX(x Audio, f float64) Audio {
	for i := range z {
		z[i] = x[i] * f
	}
	return z
}

// Peak returns the largest absolute sample value.
func (a Audio) Peak() float64 {
	p := 0.0
	for _, x := range a {
		if x := math.Abs(x); x > p {
			p = x
		}
	}
	return p
}

// Scale multiplies every sample by f in place.
func (a Audio) Scale(f float64) Audio {
	for i := range a {
		a[i] *= f
	}
	return a
}
