package peripheral

// Pixel is a single plotted pixel.
type Pixel struct {
	X     int
	Y     int
	Value int
}

// PixelState holds every pixel plotted since reset.
type PixelState struct {
	Plotted []Pixel // In plot order. Later plots override earlier ones.
}

// At returns the value of the most recent plot at (x, y).
func (ps *PixelState) At(x, y int) (value int, ok bool) {
	for n := len(ps.Plotted) - 1; n >= 0; n-- {
		px := ps.Plotted[n]
		if px.X == x && px.Y == y {
			return px.Value, true
		}
	}
	return
}

// PixelDisplay is the pixel grid peripheral.
type PixelDisplay struct{}

func (PixelDisplay) Capability() Capability {
	return CAP_PIXELS
}

func (PixelDisplay) Reset(state *State) {
	state.Pixels.Plotted = []Pixel{}
}

// Plot sets pixel (x, y) to value.
func (PixelDisplay) Plot(state *State, x, y, value int) {
	state.Pixels.Plotted = append(state.Pixels.Plotted, Pixel{X: x, Y: y, Value: value})
}
