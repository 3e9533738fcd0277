package physics

import "github.com/jakecoffman/cp"

// Intent is one tick of player input. Each Direction axis is -1, 0 or 1 and
// the vector is not normalized. Jump and Dash are edge-triggered requests.
type Intent struct {
	Direction cp.Vector
	Jump      bool
	Dash      bool
}

// Reset clears the intent to no input.
func (in *Intent) Reset() {
	*in = Intent{}
}
