package accordion

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Decode failures on the interaction path. Each one means the host broke a
// configuration or markup precondition; the interaction that hit it
// produces no state update.
var (
	// ErrUnknownCard reports an interaction aimed at an identity the
	// config does not contain.
	ErrUnknownCard = errors.New("accordion: unknown card")
	// ErrNoIdentity reports a card constructed with an empty identity.
	ErrNoIdentity = errors.New("accordion: empty card identity")
	// ErrDuplicateIdentity reports two cards sharing one identity.
	ErrDuplicateIdentity = errors.New("accordion: duplicate card identity")
	// ErrNoWidth reports a config too narrow to hold card content.
	ErrNoWidth = errors.New("accordion: no content width")
)

// ToggleEvent is the decoded form of one toggle interaction: the card hit
// and its content height measured at interaction time.
type ToggleEvent struct {
	ID     string
	Height int
}

// decodeToggle is the extract half of the interaction pipeline: resolve id
// against the config and measure the card's content at the width it will
// render at. Never silently measures zero; a broken precondition returns
// an error instead.
func decodeToggle(cfg Config, id string) (ToggleEvent, error) {
	if id == "" {
		return ToggleEvent{}, ErrNoIdentity
	}
	var card Card
	matches := 0
	for _, c := range cfg.Cards {
		if c.id == id {
			card = c
			matches++
		}
	}
	switch {
	case matches == 0:
		return ToggleEvent{}, fmt.Errorf("%w: %q", ErrUnknownCard, id)
	case matches > 1:
		return ToggleEvent{}, fmt.Errorf("%w: %q", ErrDuplicateIdentity, id)
	}
	if contentWidth(card, cfg.Width) <= 0 {
		return ToggleEvent{}, fmt.Errorf("%w: %d columns", ErrNoWidth, cfg.Width)
	}
	return ToggleEvent{ID: id, Height: measureHeight(card, contentWidth(card, cfg.Width))}, nil
}

// applyToggle is the transform half: advance the card's visibility and
// store the measured height in one update.
func applyToggle(state State, ev ToggleEvent, animate bool) State {
	return state.Update(ev.ID, func(cs CardState) CardState {
		return CardState{
			Visibility: cs.Visibility.Next(animate),
			Height:     ev.Height,
			Measured:   true,
		}
	})
}

// advanceCompleted advances a card's visibility when its transition
// completes. The stored height is reused; completion never re-measures.
func advanceCompleted(state State, id string, animate bool) State {
	return state.Update(id, func(cs CardState) CardState {
		cs.Visibility = cs.Visibility.Next(animate)
		return cs
	})
}

// Toggle runs the interaction pipeline for the card with the given
// identity, as a keyboard binding or a host-synthesized click. On success
// the returned command publishes the next State through cfg.ToMsg. On a
// decode failure the State is untouched and the error is both returned and
// logged.
func (a *Accordion) Toggle(state State, cfg Config, id string) (tea.Cmd, error) {
	ev, err := decodeToggle(cfg, id)
	if err != nil {
		a.logger.Error("toggle ignored", "card", id, "err", err)
		return nil, err
	}
	next := applyToggle(state, ev, cfg.WithAnimation)
	return a.publish(cfg, next), nil
}

// HandleMouse resolves a left press against the marked toggle zones and
// runs the same pipeline as Toggle for the card it hits. Interactions that
// are not left presses, or that hit no toggle, return (nil, nil).
func (a *Accordion) HandleMouse(state State, cfg Config, msg tea.MouseMsg) (tea.Cmd, error) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil, nil
	}
	for _, c := range cfg.Cards {
		if !a.zones.Get(a.prefix + c.id).InBounds(msg) {
			continue
		}
		return a.Toggle(state, cfg, c.id)
	}
	return nil, nil
}

// publish lifts a State through the config's message path.
func (a *Accordion) publish(cfg Config, next State) tea.Cmd {
	if cfg.ToMsg == nil {
		return nil
	}
	msg := cfg.ToMsg(next)
	return func() tea.Msg { return msg }
}
