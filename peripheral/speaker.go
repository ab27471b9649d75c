package peripheral

// BEEP is the sound emitted by Speaker.Beep.
const BEEP = 0

// AudioState is the buffer of sounds emitted so far.
type AudioState struct {
	Buffer []int
}

// Speaker is the audio peripheral.
type Speaker struct{}

func (Speaker) Capability() Capability {
	return CAP_AUDIO
}

func (Speaker) Reset(state *State) {
	state.Audio.Buffer = []int{}
}

// Beep emits the default sound.
func (sp Speaker) Beep(state *State) {
	sp.Sound(state, BEEP)
}

// Sound emits the numbered sound.
func (Speaker) Sound(state *State, sound int) {
	state.Audio.Buffer = append(state.Audio.Buffer, sound)
}
