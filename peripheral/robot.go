package peripheral

// Direction a robot is facing.
type Direction int

//go:generate go tool stringer -linecomment -type=Direction
const (
	NORTH = Direction(0) // north
	EAST  = Direction(1) // east
	SOUTH = Direction(2) // south
	WEST  = Direction(3) // west
)

// Right returns the direction after a quarter turn clockwise.
func (d Direction) Right() Direction {
	return (d + 1) % 4
}

// Left returns the direction after a quarter turn anticlockwise.
func (d Direction) Left() Direction {
	return (d + 3) % 4
}

// delta is the row/column change of a single step.
func (d Direction) delta() (row, column int) {
	switch d {
	case NORTH:
		row = -1
	case EAST:
		column = 1
	case SOUTH:
		row = 1
	case WEST:
		column = -1
	}
	return
}

// Pose is one recorded robot position.
type Pose struct {
	Coordinate
	Facing Direction
}

// RobotState is the journey of the robot since reset.
//
// Poses[0] is the starting pose; Poses[Steps] is the current one.
type RobotState struct {
	Poses []Pose
	Steps int
}

// Last returns the current pose.
func (rs *RobotState) Last() Pose {
	return rs.Poses[rs.Steps]
}

func (rs *RobotState) append(pose Pose) {
	rs.Poses = append(rs.Poses[:rs.Steps+1], pose)
	rs.Steps++
}

// Robot is the robot journey peripheral.
type Robot struct {
	Start Pose // Starting pose after reset.
}

func (Robot) Capability() Capability {
	return CAP_ROBOT
}

func (r Robot) Reset(state *State) {
	state.Robot.Poses = []Pose{r.Start}
	state.Robot.Steps = 0
}

// Move drives the robot steps units in the direction it is facing.
func (Robot) Move(state *State, steps int) {
	pose := state.Robot.Last()
	dr, dc := pose.Facing.delta()
	pose.Row += dr * steps
	pose.Column += dc * steps
	state.Robot.append(pose)
}

// TurnLeft rotates the robot a quarter turn anticlockwise.
func (Robot) TurnLeft(state *State) {
	pose := state.Robot.Last()
	pose.Facing = pose.Facing.Left()
	state.Robot.append(pose)
}

// TurnRight rotates the robot a quarter turn clockwise.
func (Robot) TurnRight(state *State) {
	pose := state.Robot.Last()
	pose.Facing = pose.Facing.Right()
	state.Robot.append(pose)
}
