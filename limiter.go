package garden

import "fmt"

const (
	// SafetyCeiling is the maximum peak amplitude any cached buffer may
	// reach, as a fraction of full scale.
	SafetyCeiling = 0.3

	// MinFreq and MaxFreq bound all tonal content, in Hz.
	MinFreq = 200
	MaxFreq = 4000
)

// ConfigError reports a recipe whose parameters violate the safety
// limits. It is fatal at startup, before any audio device is opened.
type ConfigError struct {
	ID     SoundID
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("recipe %s: %s", e.ID, e.Reason)
}

// normalizePeak scales a uniformly so its peak equals target. Uniform
// scaling, never per-sample clipping, so the harmonic content is
// untouched.
func normalizePeak(a Audio, target float64) {
	if p := a.Peak(); p > 0 {
		a.Scale(target / p)
	}
}

// Validate checks a recipe's tonal content against the safety band and
// its scalar parameters against their ranges. It runs once at startup;
// the synthesis pipeline refuses recipes that fail it.
func (r Recipe) Validate() error {
	fail := func(format string, args ...interface{}) error {
		return &ConfigError{r.ID, fmt.Sprintf(format, args...)}
	}
	inBand := func(f float64, what string) error {
		if f < MinFreq || f > MaxFreq {
			return fail("%s %.4g Hz outside [%d, %d] Hz", what, f, MinFreq, MaxFreq)
		}
		return nil
	}
	checkStack := func() error {
		for _, f := range []float64{r.Gen.Freq - r.Gen.WarbleDepth, r.Gen.Freq + r.Gen.WarbleDepth} {
			if err := inBand(f, "fundamental"); err != nil {
				return err
			}
		}
		for _, h := range r.Gen.Harmonics {
			if err := inBand(r.Gen.Freq*h.Ratio, "partial"); err != nil {
				return err
			}
		}
		return nil
	}

	if r.Duration <= 0 {
		return fail("duration %.3g s", r.Duration)
	}
	if r.Volume <= 0 || r.Volume > 1 {
		return fail("volume %.3g outside (0, 1]", r.Volume)
	}
	switch r.Gen.Kind {
	case GenSine, GenHarmonics:
		if err := checkStack(); err != nil {
			return err
		}
	case GenEvents:
		if err := inBand(r.Gen.EventFreqLo, "event band low"); err != nil {
			return err
		}
		if err := inBand(r.Gen.EventFreqHi, "event band high"); err != nil {
			return err
		}
		if r.Gen.Freq != 0 {
			if err := checkStack(); err != nil {
				return err
			}
		}
	case GenNoise, GenBrown:
		// broadband, no tonal partials to check
	default:
		return fail("unknown generator kind %d", r.Gen.Kind)
	}
	return nil
}
