package garden

import (
	"log"
	"sort"
	"sync"
)

// Knob identifies one environmental control.
type Knob int

const (
	KnobMasterVolume Knob = iota
	KnobTemperature
	KnobWater
	KnobTimeOfDay
	KnobSeason
)

// EnvState is the set of normalized environmental parameters. Master
// volume and the time-of-day brightness scale the mix; temperature, water
// and season are stored and surfaced for display.
type EnvState struct {
	MasterVolume float64
	Temperature  float64
	Water        float64
	TimeOfDay    float64
	Season       float64
}

// Brightness maps time of day to a gain multiplier: 0.6 at dawn and dusk,
// 1.0 at midday, linear between.
func (e EnvState) Brightness() float64 {
	t := e.TimeOfDay
	if t > 0.5 {
		t = 1 - t
	}
	return 0.6 + 0.8*t
}

// Snapshot is the read-only state exposed to display collaborators.
type Snapshot struct {
	Textures []SoundID // active looping textures, pad order
	Melodic  []SoundID // pads with a sounding one-shot voice
	Env      EnvState
}

// Mixer owns all playback state: the texture loops, the one-shot melodic
// voices, and the environmental parameters that scale them at mix time.
// Events and ticks serialize on one mutex; event application is O(1), so
// the audio callback never waits long enough to underrun.
type Mixer struct {
	mu       sync.Mutex
	cache    *Cache
	textures map[SoundID]*TextureVoice
	order    []SoundID
	melodic  map[SoundID]*MelodicVoice
	levels   map[SoundID]float64
	env      EnvState
	scratch  Audio
}

func NewMixer(c *Cache) *Mixer {
	m := &Mixer{
		cache:    c,
		textures: make(map[SoundID]*TextureVoice),
		melodic:  make(map[SoundID]*MelodicVoice),
		levels:   make(map[SoundID]float64),
		env: EnvState{
			MasterVolume: 0.7,
			Temperature:  0.5,
			Water:        0.3,
			TimeOfDay:    0.5,
			Season:       0.5,
		},
	}
	for _, id := range Textures {
		if b, ok := c.Get(id); ok {
			m.textures[id] = &TextureVoice{buf: b}
			m.order = append(m.order, id)
		}
	}
	return m
}

// PadEvent routes a pad edge. Texture pads toggle their loop on press
// (release is a no-op); melodic pads start their on variant on press and
// their off variant on release, each replacing any voice still sounding
// for that pad. Unknown ids are logged and ignored.
func (m *Mixer) PadEvent(id SoundID, pressed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.textures[id]; ok {
		if !pressed {
			return
		}
		v.active = !v.active
		if v.active {
			v.pos = 0
		}
		return
	}
	if on, ok := m.cache.Get(id); ok && on.Kind == KindMelodicOn {
		buf := on
		if !pressed {
			off, ok := m.cache.Get(OffID(id))
			if !ok {
				return
			}
			buf = off
		}
		m.melodic[id] = &MelodicVoice{pad: id, buf: buf}
		return
	}
	log.Printf("garden: ignoring unknown pad %q", id)
}

// Trigger plays any cached one-shot buffer outside the pad catalog, used
// for the opening and closing rituals.
func (m *Mixer) Trigger(id SoundID) {
	b, ok := m.cache.Get(id)
	if !ok {
		log.Printf("garden: ignoring unknown sound %q", id)
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.melodic[id] = &MelodicVoice{pad: id, buf: b}
}

// KnobEvent updates one environmental parameter, clamped into [0, 1].
func (m *Mixer) KnobEvent(k Knob, v float64) {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	switch k {
	case KnobMasterVolume:
		m.env.MasterVolume = v
	case KnobTemperature:
		m.env.Temperature = v
	case KnobWater:
		m.env.Water = v
	case KnobTimeOfDay:
		m.env.TimeOfDay = v
	case KnobSeason:
		m.env.Season = v
	default:
		log.Printf("garden: ignoring unknown knob %d", k)
	}
}

// SetLevel sets a per-sound trim in [0, 1]; sounds default to 1.
func (m *Mixer) SetLevel(id SoundID, l float64) {
	if l < 0 {
		l = 0
	} else if l > 1 {
		l = 1
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.levels[id] = l
}

func (m *Mixer) level(id SoundID) float64 {
	if l, ok := m.levels[id]; ok {
		return l
	}
	return 1
}

// PullFrame fills out with the next interleaved stereo samples
// (len(out)/2 frames). It never blocks and does not allocate in steady
// state. Gains only attenuate, so no mix can exceed what the cache's
// safety ceiling already bounds per voice.
func (m *Mixer) PullFrame(out []float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(out)
	if cap(m.scratch) < n {
		m.scratch = make(Audio, n)
	}
	a := m.scratch[:n]
	a.Zero()
	master := m.env.MasterVolume * m.env.Brightness()
	for id, v := range m.textures {
		if !v.active {
			continue
		}
		v.sing(a, master*m.level(id))
	}
	for id, v := range m.melodic {
		if v.sing(a, master*m.level(id)) {
			delete(m.melodic, id)
		}
	}
	for i, x := range a {
		out[i] = float32(x)
	}
}

// State returns a snapshot of the active textures, sounding melodic pads
// and environmental parameters.
func (m *Mixer) State() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := Snapshot{Env: m.env}
	for _, id := range m.order {
		if m.textures[id].active {
			s.Textures = append(s.Textures, id)
		}
	}
	for id := range m.melodic {
		s.Melodic = append(s.Melodic, id)
	}
	sort.Slice(s.Melodic, func(i, j int) bool { return s.Melodic[i] < s.Melodic[j] })
	return s
}
