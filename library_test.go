package garden

import (
	"math"
	"testing"
)

func libraryByID(t *testing.T) map[SoundID]Recipe {
	t.Helper()
	m := map[SoundID]Recipe{}
	for _, r := range Library() {
		if _, ok := m[r.ID]; ok {
			t.Fatalf("duplicate recipe id %q", r.ID)
		}
		m[r.ID] = r
	}
	return m
}

func TestLibraryCatalog(t *testing.T) {
	m := libraryByID(t)
	if len(m) != 8+16+16 {
		t.Errorf("catalog has %d recipes, want 40", len(m))
	}
	for _, id := range Textures {
		r, ok := m[id]
		if !ok {
			t.Errorf("missing texture %q", id)
			continue
		}
		if r.Kind != KindTexture {
			t.Errorf("%q kind = %d, want texture", id, r.Kind)
		}
		if r.Duration != textureDur {
			t.Errorf("%q duration = %g, want %g", id, r.Duration, textureDur)
		}
	}
}

func TestMelodicPadNames(t *testing.T) {
	for i, want := range map[int]SoundID{0: "seed_1", 4: "sprout_5", 9: "bud_10", 15: "flower_16"} {
		if got := MelodicPad(i); got != want {
			t.Errorf("MelodicPad(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestMelodicTierFrequencies(t *testing.T) {
	m := libraryByID(t)
	for i := 0; i < 16; i++ {
		r, ok := m[MelodicPad(i)]
		if !ok {
			t.Fatalf("missing melodic pad %d", i)
		}
		want := pentatonic[i%4] * tierMult[i/4]
		if r.Gen.Freq != want {
			t.Errorf("pad %d frequency = %g, want %g", i, r.Gen.Freq, want)
		}
	}
}

// The off variant derivation law must hold exactly for all 16 pads.
func TestOffVariantDerivation(t *testing.T) {
	m := libraryByID(t)
	for i := 0; i < 16; i++ {
		on, ok := m[MelodicPad(i)]
		if !ok {
			t.Fatalf("missing pad %d", i)
		}
		off, ok := m[OffID(on.ID)]
		if !ok {
			t.Fatalf("missing off variant for pad %d", i)
		}
		if off.Kind != KindMelodicOff {
			t.Errorf("pad %d off kind = %d", i, off.Kind)
		}
		if off.Gen.Freq != on.Gen.Freq*0.85 {
			t.Errorf("pad %d off freq = %g, want %g", i, off.Gen.Freq, on.Gen.Freq*0.85)
		}
		if off.Duration != on.Duration*0.5 {
			t.Errorf("pad %d off duration = %g, want %g", i, off.Duration, on.Duration*0.5)
		}
		if off.Volume != on.Volume*0.6 {
			t.Errorf("pad %d off volume = %g, want %g", i, off.Volume, on.Volume*0.6)
		}
		if len(off.Gen.Harmonics) != len(on.Gen.Harmonics) {
			t.Errorf("pad %d off harmonic count changed", i)
			continue
		}
		for j, h := range off.Gen.Harmonics {
			if math.Abs(h.Amp-on.Gen.Harmonics[j].Amp/2) > 1e-12 {
				t.Errorf("pad %d harmonic %d amp = %g, want halved %g", i, j, h.Amp, on.Gen.Harmonics[j].Amp/2)
			}
		}
	}
}

func TestAllRecipesValidate(t *testing.T) {
	for _, r := range append(Library(), RitualRecipes()...) {
		if err := r.Validate(); err != nil {
			t.Errorf("recipe %q fails validation: %v", r.ID, err)
		}
	}
}

func TestOffVariantsDoNotAliasOnHarmonics(t *testing.T) {
	m := libraryByID(t)
	on := m[MelodicPad(0)]
	off := m[OffID(MelodicPad(0))]
	if len(on.Gen.Harmonics) == 0 {
		t.Skip("pad has no harmonics")
	}
	off.Gen.Harmonics[0].Amp = 99
	if m2 := libraryByID(t); m2[MelodicPad(0)].Gen.Harmonics[0].Amp == 99 {
		t.Error("off variant shares harmonic backing array with on variant")
	}
	_ = off
}
