package rotator

// Slide is one entry in a rotation. Title and Subtitle are optional.
type Slide struct {
	Media    string `json:"media" yaml:"media"`
	Alt      string `json:"alt" yaml:"alt"`
	Title    string `json:"title,omitempty" yaml:"title"`
	Subtitle string `json:"subtitle,omitempty" yaml:"subtitle"`
}

// State is a snapshot of a rotator. Target equals ActiveIndex while idle.
type State struct {
	ActiveIndex   int  `json:"active_index"`
	Transitioning bool `json:"transitioning"`
	Target        int  `json:"target"`
}

// CueEvent is delivered to a Surface when a timeline cue fires.
type CueEvent struct {
	Cue
	From int `json:"from"`
	To   int `json:"to"`
	// Slide is the destination slide; the surface shows its caption on CueSwap.
	Slide Slide `json:"slide"`
}

// Surface renders transitions. Its methods are called with the rotator's
// lock held and must not call back into the rotator.
type Surface interface {
	// HasTarget reports whether the element for the slide at index is
	// present. Transitions involving a missing element skip the animation.
	HasTarget(index int) bool
	Cue(ev CueEvent)
}
