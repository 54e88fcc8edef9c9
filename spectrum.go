package garden

import (
	"math"
	"math/cmplx"

	"github.com/ktye/fft"
)

// DominantFreq returns the frequency of the strongest spectral bin of a,
// measured over a Hann-windowed power-of-two prefix. Used to verify that
// a buffer's dominant energy sits inside the safety band.
func DominantFreq(p Params, a Audio) float64 {
	n := 1
	for n*2 <= len(a) && n < 1<<14 {
		n *= 2
	}
	f, err := fft.New(n)
	if err != nil {
		panic(err)
	}
	buf := make([]complex128, n)
	for i := range buf {
		w := (1 - math.Cos(2*math.Pi*float64(i)/float64(n))) / 2
		buf[i] = complex(a[i]*w, 0)
	}
	buf = f.Transform(buf)
	best, bestMag := 0, 0.0
	for i := 1; i < n/2; i++ {
		if m := cmplx.Abs(buf[i]); m > bestMag {
			best, bestMag = i, m
		}
	}
	return float64(best) * p.SampleRate / float64(n)
}
