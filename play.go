package garden

import "log"

// Backend is the audio output device boundary. Start begins pulling
// interleaved stereo float32 frames through the callback; Stop closes the
// device.
type Backend interface {
	Start(pull func(out []float32)) error
	Stop() error
}

// PlayControl stops a running stream and reports when it has shut down.
type PlayControl struct {
	stop, Done chan struct{}
}

func (c PlayControl) Stop() {
	select {
	case c.stop <- struct{}{}:
	default:
	}
}

// PlayAsync starts streaming the mixer through b. If the device cannot be
// opened the error is returned and the mixer remains fully usable, so a
// caller may fall back to NoneBackend and reconnect later without
// resynthesis.
func PlayAsync(m *Mixer, b Backend) (PlayControl, error) {
	c := PlayControl{make(chan struct{}, 1), make(chan struct{}, 1)}
	if err := b.Start(m.PullFrame); err != nil {
		return c, err
	}
	go func() {
		<-c.stop
		if err := b.Stop(); err != nil {
			log.Println("garden:", err)
		}
		c.Done <- struct{}{}
	}()
	return c, nil
}
