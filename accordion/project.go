package accordion

import "github.com/tinytelemetry/concertina/transition"

// PanelStyle is the projected presentation of one card's body panel: the
// target height in rows, whether content past that height is clipped, the
// transition declared on the height (nil when the panel jumps), and whether
// a completion event is bound to that transition.
type PanelStyle struct {
	Height     int
	Clip       bool
	Transition *transition.Spec
	Completes  bool
}

// ProjectPanel maps a card's animation state to its panel presentation.
// Hidden and opening-pending cards pin the panel at zero rows, clipped,
// with no transition; the animating phases declare the transition toward
// their target (the measured height downward to zero on close, upward to
// the measured height on open) and bind a completion event; shown and
// closing-pending cards sit at the measured height, unclipped. An
// unmeasured card's height reads as zero.
func ProjectPanel(cs CardState, spec transition.Spec) PanelStyle {
	height := 0
	if cs.Measured {
		height = cs.Height
	}
	switch cs.Visibility {
	case Hidden, StartDown:
		return PanelStyle{Height: 0, Clip: true}
	case AnimatingDown:
		return PanelStyle{Height: height, Clip: true, Transition: &spec, Completes: true}
	case AnimatingUp:
		return PanelStyle{Height: 0, Clip: true, Transition: &spec, Completes: true}
	default:
		return PanelStyle{Height: height, Clip: false}
	}
}
