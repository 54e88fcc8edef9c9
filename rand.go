package garden

import (
	"hash/fnv"
	"math/rand"
)

// NoiseSource is a seedable random sample source. Every noise-generating
// primitive draws from an explicit source so that a buffer is reproducible
// from its recipe alone.
type NoiseSource struct {
	rand *rand.Rand
}

func NewNoiseSource(seed int64) *NoiseSource {
	return &NoiseSource{rand: rand.New(rand.NewSource(seed))}
}

// White returns one uniform sample in [-1, 1].
func (n *NoiseSource) White() float64 {
	return 2*n.rand.Float64() - 1
}

// Chance reports one Bernoulli draw with probability p.
func (n *NoiseSource) Chance(p float64) bool {
	return n.rand.Float64() < p
}

// Between returns one uniform sample in [lo, hi].
func (n *NoiseSource) Between(lo, hi float64) float64 {
	return lo + (hi-lo)*n.rand.Float64()
}

// SeedFor derives a stable seed from a sound id.
func SeedFor(id SoundID) int64 {
	h := fnv.New64a()
	h.Write([]byte(id))
	return int64(h.Sum64())
}

// BrownNoise integrates white noise through a leaky accumulator, which
// keeps the walk bounded while preserving the low rumble character.
type BrownNoise struct {
	src *NoiseSource
	x   float64
}

func NewBrownNoise(src *NoiseSource) *BrownNoise {
	return &BrownNoise{src: src}
}

func (b *BrownNoise) Next() float64 {
	b.x = 0.98*b.x + 0.1*b.src.White()
	if b.x > 1 {
		b.x = 1
	} else if b.x < -1 {
		b.x = -1
	}
	return b.x
}
