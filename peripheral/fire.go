package peripheral

// FireState records whether the processor caught fire.
type FireState struct {
	IsOnFire bool
}

// Fire is the fault peripheral. Undefined behaviour sets it on fire.
type Fire struct{}

func (Fire) Capability() Capability {
	return CAP_FIRE
}

func (Fire) Reset(state *State) {
	state.Fire.IsOnFire = false
}

// CatchFire raises the fault flag.
func (Fire) CatchFire(state *State) {
	state.Fire.IsOnFire = true
}
