package peripheral

// Coordinate is a grid location.
type Coordinate struct {
	Row    int
	Column int
}

// Action is a named event performed at a location.
type Action struct {
	Name string
	Data Coordinate
}

// ActionState is the log of performed actions.
type ActionState struct {
	Log []Action
}

// Actions is the action log peripheral.
type Actions struct{}

func (Actions) Capability() Capability {
	return CAP_ACTIONS
}

func (Actions) Reset(state *State) {
	state.Actions.Log = []Action{}
}

// Perform appends an action to the log.
func (Actions) Perform(state *State, action Action) {
	state.Actions.Log = append(state.Actions.Log, action)
}
