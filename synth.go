package garden

// Synthesize renders one recipe to a cache-ready stereo buffer:
// generate, shape, limit, interleave. It is deterministic; the noise seed
// derives from the recipe id.
func Synthesize(p Params, r Recipe) (*Buffer, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	n := int(r.Duration * p.SampleRate)
	a := make(Audio, n)
	src := NewNoiseSource(SeedFor(r.ID))
	g := r.Gen
	switch g.Kind {
	case GenSine, GenHarmonics:
		renderStack(p, g, a)
	case GenNoise:
		for i := range a {
			a[i] += src.White()
		}
	case GenBrown:
		br := NewBrownNoise(src)
		for i := range a {
			a[i] += br.Next()
		}
	case GenEvents:
		renderStack(p, g, a)
		renderEvents(p, g, src, a)
	}
	if g.AirNoise > 0 {
		for i := range a {
			a[i] += g.AirNoise * src.White()
		}
	}
	if g.Rumble > 0 {
		br := NewBrownNoise(src)
		for i := range a {
			a[i] += g.Rumble * br.Next()
		}
	}
	r.Env.apply(p, a)
	normalizePeak(a, SafetyCeiling*r.Volume)
	return &Buffer{ID: r.ID, Kind: r.Kind, Samples: interleave(a)}, nil
}

// interleave duplicates a mono block into interleaved stereo.
func interleave(a Audio) Audio {
	out := make(Audio, 2*len(a))
	for i, x := range a {
		out[2*i], out[2*i+1] = x, x
	}
	return out
}
