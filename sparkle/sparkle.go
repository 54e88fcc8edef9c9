//go:build cgo

package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	garden "github.com/sparkle/garden"
)

func main() {
	backend := flag.String("backend", "portaudio", "audio backend: portaudio, oto or none")
	flag.Parse()

	p := garden.Params{SampleRate: 22050}
	cache, err := garden.BuildCache(p, append(garden.Library(), garden.RitualRecipes()...))
	if err != nil {
		log.Fatalln("sparkle:", err)
	}
	m := garden.NewMixer(cache)

	var b garden.Backend
	switch *backend {
	case "oto":
		b = &garden.OtoBackend{Params: p}
	case "none":
		b = garden.NoneBackend{}
	default:
		b = &garden.PortAudioBackend{Params: p, FrameSize: 512}
	}
	ctl, err := garden.PlayAsync(m, b)
	if err != nil {
		log.Println("sparkle: no audio device, continuing silently:", err)
		ctl, _ = garden.PlayAsync(m, garden.NoneBackend{})
	}

	fmt.Println("The garden is waking up.")
	m.Trigger(garden.WelcomeChord)
	time.Sleep(2 * time.Second)

	step := func(desc string, f func()) {
		f()
		s := m.State()
		fmt.Printf("%-28s textures=%v melodic=%v\n", desc, s.Textures, s.Melodic)
		time.Sleep(1500 * time.Millisecond)
	}

	step("earth on", func() { m.PadEvent(garden.Earth, true) })
	step("rain on", func() { m.PadEvent(garden.Rain, true) })
	step("seed 1 press", func() { m.PadEvent(garden.MelodicPad(0), true) })
	step("seed 1 release", func() { m.PadEvent(garden.MelodicPad(0), false) })
	step("flower 16 press", func() { m.PadEvent(garden.MelodicPad(15), true) })
	step("flower 16 release", func() { m.PadEvent(garden.MelodicPad(15), false) })
	step("dusk", func() { m.KnobEvent(garden.KnobTimeOfDay, 0.9) })
	step("quieter", func() { m.KnobEvent(garden.KnobMasterVolume, 0.4) })
	step("rain off", func() { m.PadEvent(garden.Rain, true) })
	step("earth off", func() { m.PadEvent(garden.Earth, true) })

	fmt.Println("The garden is going to sleep.")
	for _, id := range garden.ClosingNotes {
		m.Trigger(id)
		time.Sleep(800 * time.Millisecond)
	}
	time.Sleep(1500 * time.Millisecond)

	ctl.Stop()
	<-ctl.Done
}
