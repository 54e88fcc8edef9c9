package garden

// NoneBackend is the headless fallback: no device is opened, but the
// engine keeps accepting events and frames stay pullable, so a later
// reconnect resumes where the session left off.
type NoneBackend struct{}

func (NoneBackend) Start(func(out []float32)) error { return nil }
func (NoneBackend) Stop() error                     { return nil }
