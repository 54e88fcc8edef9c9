package garden

import "fmt"

// Buffer is an immutable, stereo-interleaved rendering of one recipe.
// Buffers belong to the Cache and are read-only after BuildCache.
type Buffer struct {
	ID      SoundID
	Kind    Kind
	Samples Audio
}

// Frames returns the buffer length in stereo frames.
func (b *Buffer) Frames() int { return len(b.Samples) / 2 }

// Cache holds every pre-generated buffer, keyed by sound id. It is built
// once at startup and read-only afterwards, so concurrent reads from
// playback triggers need no locking.
type Cache struct {
	params  Params
	buffers map[SoundID]*Buffer
}

// BuildCache synthesizes every recipe once, verifying the safety
// invariant on each buffer. It fails fast on the first bad recipe.
func BuildCache(p Params, recipes []Recipe) (*Cache, error) {
	c := &Cache{params: p, buffers: make(map[SoundID]*Buffer, len(recipes))}
	for _, r := range recipes {
		b, err := Synthesize(p, r)
		if err != nil {
			return nil, err
		}
		if peak := b.Samples.Peak(); peak > SafetyCeiling+1e-9 {
			return nil, &ConfigError{r.ID, fmt.Sprintf("peak %.3f exceeds safety ceiling %v", peak, SafetyCeiling)}
		}
		c.buffers[r.ID] = b
	}
	return c, nil
}

func (c *Cache) Get(id SoundID) (*Buffer, bool) {
	b, ok := c.buffers[id]
	return b, ok
}

func (c *Cache) Params() Params { return c.params }

func (c *Cache) Len() int { return len(c.buffers) }
