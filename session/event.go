package session

// Event is an input to Controller.Handle: ParamsChanged or ResetRequested.
type Event interface {
	event()
}

// ParamsChanged replaces the session parameters.
type ParamsChanged struct {
	Params Params
}

// ResetRequested restores the defaults and clears the noise cache.
type ResetRequested struct{}

func (ParamsChanged) event()  {}
func (ResetRequested) event() {}
