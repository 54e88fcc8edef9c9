package garden

// A voice adds its gain-scaled samples into an interleaved stereo frame
// and reports whether it has finished.
type voice interface {
	sing(out Audio, gain float64) (done bool)
}

// TextureVoice loops its buffer while active. Deactivating it silences
// the texture on the very next tick; the loop never plays out to its end.
type TextureVoice struct {
	buf    *Buffer
	active bool
	pos    int // cursor into the interleaved samples
}

func (v *TextureVoice) sing(out Audio, gain float64) bool {
	s := v.buf.Samples
	for i := range out {
		out[i] += gain * s[v.pos]
		v.pos++
		if v.pos == len(s) {
			v.pos = 0
		}
	}
	return false
}

// MelodicVoice plays its buffer once.
type MelodicVoice struct {
	pad SoundID
	buf *Buffer
	pos int
}

func (v *MelodicVoice) sing(out Audio, gain float64) bool {
	s := v.buf.Samples
	for i := 0; i < len(out) && v.pos < len(s); i++ {
		out[i] += gain * s[v.pos]
		v.pos++
	}
	return v.pos == len(s)
}
