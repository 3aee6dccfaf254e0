// Package transition animates panel heights the way a browser runs a CSS
// height transition: a style declares a target value, a fixed duration, and
// an easing curve, and the engine interpolates the rendered value frame by
// frame until it lands, then emits the completion event the style bound.
package transition

import (
	"math"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDuration matches the classic 0.35s panel collapse timing.
const DefaultDuration = 350 * time.Millisecond

// DefaultFPS is the frame rate the engine ticks at while tweens are live.
const DefaultFPS = 60

// Spec declares how a property transitions.
type Spec struct {
	Property string
	Duration time.Duration
	Curve    Curve
}

// Default returns the stock height transition.
func Default() Spec {
	return Spec{Property: "height", Duration: DefaultDuration, Curve: EaseInOut}
}

// FrameMsg is delivered by the engine's frame tick while tweens are
// running. Route every message through Engine.Update; the engine ignores
// frames that are not its own.
type FrameMsg struct {
	Time time.Time
	id   int
}

var lastEngineID int64

func nextEngineID() int {
	return int(atomic.AddInt64(&lastEngineID, 1))
}

type tween struct {
	from, to   int
	start      time.Time
	spec       Spec
	completion tea.Msg
}

// at returns the eased height at time t.
func (tw *tween) at(t time.Time) int {
	if tw.spec.Duration <= 0 {
		return tw.to
	}
	progress := float64(t.Sub(tw.start)) / float64(tw.spec.Duration)
	eased := tw.spec.Curve.At(progress)
	return tw.from + int(math.Round(eased*float64(tw.to-tw.from)))
}

// Engine tracks the rendered height of each panel it has been told about
// and drives live tweens between style applications. Engine state is
// render-side only; it never belongs in application state.
//
// Engine is not safe for concurrent use; drive it from one program loop.
type Engine struct {
	id      int
	fps     int
	now     func() time.Time
	heights map[string]int
	tweens  map[string]*tween
	ticking bool
}

// EngineOption configures NewEngine.
type EngineOption func(*Engine)

// WithFPS sets the tick rate used while tweens are live.
func WithFPS(fps int) EngineOption {
	return func(e *Engine) {
		if fps > 0 {
			e.fps = fps
		}
	}
}

// WithClock substitutes the engine's time source, for tests.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine returns an engine with no live tweens.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		id:      nextEngineID(),
		fps:     DefaultFPS,
		now:     time.Now,
		heights: make(map[string]int),
		tweens:  make(map[string]*tween),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Snap applies a style with no transition declared: the panel jumps to
// height and a running tween is dropped without firing its completion.
func (e *Engine) Snap(id string, height int) {
	delete(e.tweens, id)
	e.heights[id] = height
}

// Animate applies a style with a transition declared: the panel tweens from
// its current rendered height toward target and fires completion when it
// lands. Re-applying the same target keeps the running tween and only
// refreshes its completion message. A panel already resting at the target
// lands on the next frame.
func (e *Engine) Animate(id string, target int, spec Spec, completion tea.Msg) {
	if tw, ok := e.tweens[id]; ok && tw.to == target {
		tw.completion = completion
		return
	}
	start := e.now()
	if e.heights[id] == target {
		start = start.Add(-spec.Duration)
	}
	e.tweens[id] = &tween{
		from:       e.heights[id],
		to:         target,
		start:      start,
		spec:       spec,
		completion: completion,
	}
}

// Height returns the current rendered height for id, or fallback when the
// engine has never seen the id.
func (e *Engine) Height(id string, fallback int) int {
	if tw, ok := e.tweens[id]; ok {
		return tw.at(e.now())
	}
	if h, ok := e.heights[id]; ok {
		return h
	}
	return fallback
}

// Animating reports whether any tween is live.
func (e *Engine) Animating() bool {
	return len(e.tweens) > 0
}

// Tick arms the frame tick when tweens are live. At most one tick is ever
// outstanding; it re-arms itself through Update until the last tween lands.
func (e *Engine) Tick() tea.Cmd {
	if len(e.tweens) == 0 || e.ticking {
		return nil
	}
	e.ticking = true
	return e.frame()
}

func (e *Engine) frame() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(e.fps), func(t time.Time) tea.Msg {
		return FrameMsg{Time: t, id: e.id}
	})
}

// Update advances all tweens on each of the engine's own frame messages,
// emits completion commands for tweens that landed, and re-arms the tick
// while any remain. Every other message returns nil.
func (e *Engine) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.id != e.id {
		return nil
	}
	e.ticking = false

	now := e.now()
	var cmds []tea.Cmd
	for id, tw := range e.tweens {
		e.heights[id] = tw.at(now)
		if now.Sub(tw.start) < tw.spec.Duration {
			continue
		}
		e.heights[id] = tw.to
		delete(e.tweens, id)
		if tw.completion != nil {
			done := tw.completion
			cmds = append(cmds, func() tea.Msg { return done })
		}
	}

	if cmd := e.Tick(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
