package garden

import (
	"testing"
)

func testMixer(t *testing.T) *Mixer {
	t.Helper()
	c, err := BuildCache(Params{SampleRate: 11025}, append(Library(), RitualRecipes()...))
	if err != nil {
		t.Fatalf("BuildCache: %v", err)
	}
	return NewMixer(c)
}

func silent(out []float32) bool {
	for _, x := range out {
		if x != 0 {
			return false
		}
	}
	return true
}

func TestTextureToggle(t *testing.T) {
	m := testMixer(t)
	out := make([]float32, 256)

	m.PullFrame(out)
	if !silent(out) {
		t.Error("fresh mixer not silent")
	}

	m.PadEvent(Earth, true)
	if s := m.State(); len(s.Textures) != 1 || s.Textures[0] != Earth {
		t.Fatalf("textures = %v, want [earth]", s.Textures)
	}
	m.PullFrame(out)
	if silent(out) {
		t.Error("active texture produced silence")
	}

	m.PadEvent(Earth, false) // release is a no-op for textures
	if s := m.State(); len(s.Textures) != 1 {
		t.Errorf("release toggled texture off: %v", s.Textures)
	}

	m.PadEvent(Earth, true)
	m.PullFrame(out)
	if !silent(out) {
		t.Error("toggled-off texture still audible")
	}
}

func TestTextureDoubleToggleWithinOneTick(t *testing.T) {
	m := testMixer(t)
	out := make([]float32, 256)
	m.PadEvent(Rain, true)
	m.PadEvent(Rain, true)
	m.PullFrame(out)
	if !silent(out) {
		t.Error("on-off within one tick should never sound")
	}
	if s := m.State(); len(s.Textures) != 0 {
		t.Errorf("textures = %v, want none", s.Textures)
	}
}

func TestUnknownPadIgnored(t *testing.T) {
	m := testMixer(t)
	m.PadEvent("volcano", true)
	m.KnobEvent(Knob(42), 0.5)
	if s := m.State(); len(s.Textures) != 0 || len(s.Melodic) != 0 {
		t.Errorf("unknown events changed state: %+v", s)
	}
}

func TestMelodicPressPlaysOnce(t *testing.T) {
	m := testMixer(t)
	pad := MelodicPad(0)
	out := make([]float32, 256)

	m.PadEvent(pad, true)
	if s := m.State(); len(s.Melodic) != 1 || s.Melodic[0] != pad {
		t.Fatalf("melodic = %v, want [%s]", s.Melodic, pad)
	}
	m.PullFrame(out)
	if silent(out) {
		t.Error("pressed pad produced silence")
	}

	onBuf, _ := m.cache.Get(pad)
	for i := 0; i < 2*len(onBuf.Samples)/len(out)+2; i++ {
		m.PullFrame(out)
	}
	if s := m.State(); len(s.Melodic) != 0 {
		t.Errorf("voice still sounding after buffer end: %v", s.Melodic)
	}
}

func TestMelodicRetriggerReplacesVoice(t *testing.T) {
	m := testMixer(t)
	pad := MelodicPad(3)
	out := make([]float32, 256)
	m.PadEvent(pad, true)
	m.PullFrame(out)
	m.PadEvent(pad, true)
	if s := m.State(); len(s.Melodic) != 1 {
		t.Errorf("retrigger left %d voices, want 1", len(s.Melodic))
	}
}

// A release swaps in the shorter off variant, so the pad must fall silent
// in roughly half the frames its on variant would take.
func TestMelodicReleasePlaysOffVariant(t *testing.T) {
	m := testMixer(t)
	pad := MelodicPad(15)
	out := make([]float32, 256)

	m.PadEvent(pad, true)
	m.PadEvent(pad, false)
	if s := m.State(); len(s.Melodic) != 1 {
		t.Fatalf("melodic = %v, want one off voice", s.Melodic)
	}

	offBuf, ok := m.cache.Get(OffID(pad))
	if !ok {
		t.Fatal("off buffer missing from cache")
	}
	offPulls := (len(offBuf.Samples) + len(out) - 1) / len(out)
	for i := 0; i < offPulls+1; i++ {
		m.PullFrame(out)
	}
	if s := m.State(); len(s.Melodic) != 0 {
		t.Errorf("off variant still sounding after %d pulls: %v", offPulls+1, s.Melodic)
	}
}

func TestMasterVolumeZeroSilencesMixOnly(t *testing.T) {
	m := testMixer(t)
	out := make([]float32, 256)
	m.PadEvent(Wind, true)
	m.KnobEvent(KnobMasterVolume, 0)
	m.PullFrame(out)
	if !silent(out) {
		t.Error("output audible at zero master volume")
	}
	if s := m.State(); len(s.Textures) != 1 {
		t.Error("muting dropped the active texture")
	}
}

func TestKnobClamping(t *testing.T) {
	m := testMixer(t)
	m.KnobEvent(KnobWater, 1.5)
	m.KnobEvent(KnobTemperature, -0.3)
	s := m.State()
	if s.Env.Water != 1 {
		t.Errorf("water = %g, want clamped to 1", s.Env.Water)
	}
	if s.Env.Temperature != 0 {
		t.Errorf("temperature = %g, want clamped to 0", s.Env.Temperature)
	}
}

func TestBrightnessCurve(t *testing.T) {
	for _, c := range []struct{ tod, want float64 }{
		{0, 0.6}, {0.25, 0.8}, {0.5, 1.0}, {0.75, 0.8}, {1, 0.6},
	} {
		e := EnvState{TimeOfDay: c.tod}
		if got := e.Brightness(); got != c.want {
			t.Errorf("Brightness(%g) = %g, want %g", c.tod, got, c.want)
		}
	}
}

func TestSetLevelMutesOneSound(t *testing.T) {
	m := testMixer(t)
	out := make([]float32, 256)
	m.PadEvent(Sun, true)
	m.SetLevel(Sun, 0)
	m.PullFrame(out)
	if !silent(out) {
		t.Error("zero-level texture still audible")
	}
}

func TestRitualTrigger(t *testing.T) {
	m := testMixer(t)
	out := make([]float32, 256)
	m.Trigger(WelcomeChord)
	m.PullFrame(out)
	if silent(out) {
		t.Error("welcome chord produced silence")
	}
	m.Trigger("no_such_ritual") // logged, ignored
	if s := m.State(); len(s.Melodic) != 1 {
		t.Errorf("melodic = %v, want only the chord", s.Melodic)
	}
}

// A short play session end to end: textures under a melody, environment
// shifts, then everything drains back to silence.
func TestSessionSequence(t *testing.T) {
	m := testMixer(t)
	out := make([]float32, 256)

	m.Trigger(WelcomeChord)
	m.PadEvent(Earth, true)
	m.PadEvent(Rain, true)
	m.PadEvent(MelodicPad(0), true)
	m.PadEvent(MelodicPad(0), false)
	m.PadEvent(MelodicPad(15), true)
	m.KnobEvent(KnobTimeOfDay, 0.9)

	for i := 0; i < 200; i++ {
		m.PullFrame(out)
	}
	s := m.State()
	if len(s.Textures) != 2 {
		t.Errorf("textures = %v, want earth and rain", s.Textures)
	}
	if len(s.Melodic) != 0 {
		t.Errorf("melodic voices never drained: %v", s.Melodic)
	}

	m.PadEvent(Rain, true)
	m.PadEvent(Earth, true)
	m.PullFrame(out)
	if !silent(out) {
		t.Error("mix not silent after all pads released")
	}
}
