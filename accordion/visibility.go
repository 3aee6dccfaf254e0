package accordion

import "fmt"

// Visibility is the animation phase of one card panel.
type Visibility int

const (
	// Hidden is the resting closed phase.
	Hidden Visibility = iota
	// StartDown marks an opening card that is waiting for its first
	// animation frame.
	StartDown
	// AnimatingDown is an opening card mid-transition.
	AnimatingDown
	// Shown is the resting open phase.
	Shown
	// StartUp marks a closing card that is waiting for its first
	// animation frame.
	StartUp
	// AnimatingUp is a closing card mid-transition.
	AnimatingUp
)

// Next returns the phase that follows v when a toggle click, an animation
// frame, or a transition completion fires. The function is total: every
// phase maps to exactly one successor in each mode.
//
// With animate=true a card walks the full cycle
// Hidden, StartDown, AnimatingDown, Shown, StartUp, AnimatingUp, Hidden.
// With animate=false it flips straight between Hidden and Shown; the
// mid-animation phases cannot arise in that mode and collapse to Shown.
func (v Visibility) Next(animate bool) Visibility {
	if !animate {
		if v == Shown {
			return Hidden
		}
		return Shown
	}
	switch v {
	case Hidden:
		return StartDown
	case StartDown:
		return AnimatingDown
	case AnimatingDown:
		return Shown
	case Shown:
		return StartUp
	case StartUp:
		return AnimatingUp
	case AnimatingUp:
		return Hidden
	default:
		return Shown
	}
}

// Transient reports whether v is a one-frame marker phase, advanced by the
// next armed animation frame.
func (v Visibility) Transient() bool {
	return v == StartDown || v == StartUp
}

// Animating reports whether v is mid-transition, awaiting a completion
// event.
func (v Visibility) Animating() bool {
	return v == AnimatingDown || v == AnimatingUp
}

var visibilityNames = [...]string{
	Hidden:        "hidden",
	StartDown:     "start-down",
	AnimatingDown: "animating-down",
	Shown:         "shown",
	StartUp:       "start-up",
	AnimatingUp:   "animating-up",
}

func (v Visibility) String() string {
	if v < 0 || int(v) >= len(visibilityNames) {
		return fmt.Sprintf("visibility(%d)", int(v))
	}
	return visibilityNames[v]
}

func parseVisibility(s string) (Visibility, error) {
	for i, name := range visibilityNames {
		if name == s {
			return Visibility(i), nil
		}
	}
	return Hidden, fmt.Errorf("unknown visibility %q", s)
}
