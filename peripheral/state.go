package peripheral

// Peripheral is the contract every peripheral implements.
type Peripheral interface {
	Capability() Capability // Capability contributed by the peripheral.
	Reset(state *State)     // Reset the peripheral's fragment of state.
}

// State is the peripheral state of one running processor.
//
// Only the fragments whose capability is in Capabilities are meaningful.
type State struct {
	Capabilities CapabilitySet // Capabilities this state was built with.

	Lcd     LcdState
	Audio   AudioState
	Pixels  PixelState
	Fire    FireState
	Robot   RobotState
	Actions ActionState

	peripherals []Peripheral
}

// NewState creates a peripheral state for the given peripherals, and
// resets each of them.
func NewState(peripherals ...Peripheral) (state *State) {
	state = &State{
		peripherals: peripherals,
	}

	for _, p := range peripherals {
		state.Capabilities = state.Capabilities.With(p.Capability())
	}

	state.Reset()

	return
}

// Reset all the attached peripherals to their canonical empty state.
func (state *State) Reset() {
	for _, p := range state.peripherals {
		p.Reset(state)
	}
}

// CapabilitiesOf returns the union of the peripherals' capabilities.
func CapabilitiesOf(peripherals []Peripheral) (set CapabilitySet) {
	for _, p := range peripherals {
		set = set.With(p.Capability())
	}
	return
}

// SupportsLcd returns true if the state carries an LCD text output.
func SupportsLcd(state *State) bool {
	return state != nil && state.Capabilities.Has(CAP_LCD)
}

// SupportsAudio returns true if the state carries an audio buffer.
func SupportsAudio(state *State) bool {
	return state != nil && state.Capabilities.Has(CAP_AUDIO)
}

// SupportsPixels returns true if the state carries a pixel display.
func SupportsPixels(state *State) bool {
	return state != nil && state.Capabilities.Has(CAP_PIXELS)
}

// SupportsFire returns true if the state carries a fault flag.
func SupportsFire(state *State) bool {
	return state != nil && state.Capabilities.Has(CAP_FIRE)
}

// SupportsRobot returns true if the state carries a robot journey.
func SupportsRobot(state *State) bool {
	return state != nil && state.Capabilities.Has(CAP_ROBOT)
}

// SupportsActions returns true if the state carries an action log.
func SupportsActions(state *State) bool {
	return state != nil && state.Capabilities.Has(CAP_ACTIONS)
}
