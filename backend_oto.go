package garden

import (
	"encoding/binary"
	"math"

	"github.com/ebitengine/oto/v3"
)

// OtoBackend streams through ebitengine/oto, which pulls float32 LE
// bytes from an io.Reader.
type OtoBackend struct {
	Params Params

	ctx    *oto.Context
	player *oto.Player
}

func (b *OtoBackend) Start(pull func(out []float32)) error {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(b.Params.SampleRate),
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return err
	}
	<-ready
	b.ctx = ctx
	b.player = ctx.NewPlayer(&otoSource{pull: pull})
	b.player.Play()
	return nil
}

func (b *OtoBackend) Stop() error {
	if b.player == nil {
		return nil
	}
	err := b.player.Close()
	b.player = nil
	return err
}

type otoSource struct {
	pull func(out []float32)
	buf  []float32
}

func (s *otoSource) Read(p []byte) (int, error) {
	n := len(p) / 4
	n -= n % 2 // whole stereo frames only
	if n == 0 {
		return 0, nil
	}
	if len(s.buf) < n {
		s.buf = make([]float32, n)
	}
	samples := s.buf[:n]
	s.pull(samples)
	for i, x := range samples {
		binary.LittleEndian.PutUint32(p[4*i:], math.Float32bits(x))
	}
	return 4 * n, nil
}
