//go:build cgo

package garden

import "github.com/gordonklaus/portaudio"

// PortAudioBackend streams through the default output device.
type PortAudioBackend struct {
	Params    Params
	FrameSize int // frames per device buffer; 0 means 512

	stream *portaudio.Stream
}

func (b *PortAudioBackend) Start(pull func(out []float32)) error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}
	frames := b.FrameSize
	if frames == 0 {
		frames = 512
	}
	s, err := portaudio.OpenDefaultStream(0, 2, b.Params.SampleRate, frames, pull)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := s.Start(); err != nil {
		s.Close()
		portaudio.Terminate()
		return err
	}
	b.stream = s
	return nil
}

func (b *PortAudioBackend) Stop() error {
	if b.stream == nil {
		return nil
	}
	err := b.stream.Close()
	b.stream = nil
	if terr := portaudio.Terminate(); err == nil {
		err = terr
	}
	return err
}
