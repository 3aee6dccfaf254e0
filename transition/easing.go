package transition

import (
	"fmt"
	"strings"

	"github.com/fogleman/ease"
)

// Curve is a named easing function mapping normalized elapsed time in
// [0, 1] to normalized progress.
type Curve struct {
	name string
	fn   func(float64) float64
}

var (
	// Linear progresses at constant speed.
	Linear = Curve{name: "linear", fn: ease.Linear}
	// EaseIn starts slow and accelerates.
	EaseIn = Curve{name: "ease-in", fn: ease.InCubic}
	// EaseOut starts fast and decelerates.
	EaseOut = Curve{name: "ease-out", fn: ease.OutCubic}
	// EaseInOut accelerates into the middle of the transition and
	// decelerates out of it.
	EaseInOut = Curve{name: "ease-in-out", fn: ease.InOutCubic}
)

// At evaluates the curve at t, clamping t to [0, 1]. The zero Curve is
// linear.
func (c Curve) At(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	if c.fn == nil {
		return t
	}
	return c.fn(t)
}

func (c Curve) String() string {
	if c.name == "" {
		return "linear"
	}
	return c.name
}

// ParseCurve resolves a CSS-style easing keyword.
func ParseCurve(s string) (Curve, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear":
		return Linear, nil
	case "ease-in", "easein":
		return EaseIn, nil
	case "ease-out", "easeout":
		return EaseOut, nil
	case "ease", "ease-in-out", "easeinout":
		return EaseInOut, nil
	default:
		return Curve{}, fmt.Errorf("unknown easing curve %q", s)
	}
}
