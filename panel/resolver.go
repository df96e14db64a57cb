package panel

// State is the discrete panel state.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Opposite returns the other state.
func (s State) Opposite() State {
	if s == Open {
		return Closed
	}
	return Open
}

// Geometry is the part of the config the resolver depends on.
type Geometry struct {
	HandlerHeight float64
	MaxHeight     float64
	Sensitivity   float64
}

// Resolve decides the state a released panel should settle into. The
// boolean is false when the panel already rests at a bound and nothing
// needs to animate.
//
// The band is asymmetric: a closed panel opens once height passes
// MaxHeight/s, an open panel only closes once height drops below
// MaxHeight/s*(s-1).
func Resolve(g Geometry, height float64, current State) (State, bool) {
	if height > g.MaxHeight {
		return Open, true
	}
	if height == g.MaxHeight || height == g.HandlerHeight {
		return current, false
	}

	s := g.Sensitivity
	if s < 1 {
		// Band disabled: nearest bound wins.
		if height > (g.HandlerHeight+g.MaxHeight)/2 {
			return Open, true
		}
		return Closed, true
	}

	threshold := g.MaxHeight / s
	if current == Open {
		threshold = g.MaxHeight / s * (s - 1)
	}
	if height > threshold {
		return Open, true
	}
	return Closed, true
}
