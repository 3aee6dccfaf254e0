// Package accordion renders vertically stacked collapsible card panels for
// Bubble Tea programs and animates each card's open and close
// independently.
//
// The host owns all animation state as an opaque State value threaded
// through its own model; the package never retains one. A toggle
// interaction measures the card's content height and advances its
// visibility in one step, publishing the next State through the config's
// ToMsg. Each time the host stores a published State it re-evaluates
// Subscriptions, which arms at most one pending frame command no matter how
// many cards are mid-transition, and Sync, which drives the height tweens
// and the completion events behind the rendered panels.
package accordion

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	zone "github.com/lrstanley/bubblezone"

	"github.com/tinytelemetry/concertina/transition"
)

// Config is the per-render configuration of an accordion. The same value
// feeds View, HandleMouse, Toggle, and Sync within one update cycle.
type Config struct {
	// ToMsg lifts a published State into the host's message type.
	ToMsg func(State) tea.Msg
	// WithAnimation selects animated transitions. When false, toggles
	// flip straight between Hidden and Shown and no frames are armed.
	WithAnimation bool
	// Cards is the ordered set of cards to render. Identities must be
	// non-empty and unique.
	Cards []Card
	// Width is the accordion's total width. Content is measured and
	// rendered at this width minus each card's frame.
	Width int
	// Focus optionally names a card whose frame is highlighted.
	Focus string
}

// Accordion binds the platform collaborators behind the card surface: a
// zone manager to resolve clicks, a transition engine to animate heights,
// and a diagnostics logger. It holds no application state.
type Accordion struct {
	zones     *zone.Manager
	ownsZones bool
	prefix    string
	engine    *transition.Engine
	spec      transition.Spec
	fps       int
	logger    *log.Logger
}

// Option configures New.
type Option func(*Accordion)

// WithZones shares a host-owned zone manager instead of creating one. The
// host keeps responsibility for closing it.
func WithZones(z *zone.Manager) Option {
	return func(a *Accordion) {
		a.zones = z
	}
}

// WithTransition overrides the height transition's duration and curve.
func WithTransition(spec transition.Spec) Option {
	return func(a *Accordion) {
		a.spec = spec
	}
}

// WithFPS overrides the animation frame rate.
func WithFPS(fps int) Option {
	return func(a *Accordion) {
		if fps > 0 {
			a.fps = fps
		}
	}
}

// WithEngine substitutes the transition engine, for tests that need an
// injected clock.
func WithEngine(e *transition.Engine) Option {
	return func(a *Accordion) {
		a.engine = e
	}
}

// WithLogger sets the diagnostics logger. Decode failures on the
// interaction path are reported here; the default discards them.
func WithLogger(l *log.Logger) Option {
	return func(a *Accordion) {
		if l != nil {
			a.logger = l
		}
	}
}

// New returns an accordion component.
func New(opts ...Option) *Accordion {
	a := &Accordion{
		spec:   transition.Default(),
		fps:    transition.DefaultFPS,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.zones == nil {
		a.zones = zone.New()
		a.ownsZones = true
	}
	a.prefix = a.zones.NewPrefix()
	if a.engine == nil {
		a.engine = transition.NewEngine(transition.WithFPS(a.fps))
	}
	return a
}

// Close releases the zone manager when the accordion created it; a manager
// shared through WithZones stays open.
func (a *Accordion) Close() {
	if a.ownsZones {
		a.zones.Close()
	}
}

// Scan is the zone scan pass. Apply it to the final composed view, after
// all layout, so the toggle zones resolve against absolute positions:
//
//	func (m model) View() string {
//		return m.acc.Scan(lipgloss.JoinVertical(lipgloss.Left, title, body))
//	}
func (a *Accordion) Scan(view string) string {
	return a.zones.Scan(view)
}

// Sync reconciles the engine with a freshly published State: panels whose
// projected style declares no transition snap to their target, panels whose
// style declares one tween toward it. A tween captures its completion
// message now, against this State, the way a completion handler is bound to
// a panel at render time. Hosts call Sync every time they store a new
// State, batched with Subscriptions; the returned command keeps the frames
// flowing.
func (a *Accordion) Sync(state State, cfg Config) tea.Cmd {
	for _, c := range cfg.Cards {
		cs := state.GetOrInit(c.id)
		style := ProjectPanel(cs, a.spec)
		if style.Transition == nil {
			a.engine.Snap(c.id, style.Height)
			continue
		}
		var completion tea.Msg
		if style.Completes && cfg.ToMsg != nil {
			completion = cfg.ToMsg(advanceCompleted(state, c.id, cfg.WithAnimation))
		}
		a.engine.Animate(c.id, style.Height, *style.Transition, completion)
	}
	return a.engine.Tick()
}

// Update routes the engine's frame messages. Call it from the host's
// update for messages the host does not recognize; everything that is not
// an engine frame returns nil.
func (a *Accordion) Update(msg tea.Msg) tea.Cmd {
	return a.engine.Update(msg)
}

// Animating reports whether any panel is mid-tween.
func (a *Accordion) Animating() bool {
	return a.engine.Animating()
}
