package accordion

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameInterval approximates one terminal animation frame.
const frameInterval = time.Second / 60

// advanceTransients returns the derived State in which every entry waiting
// on a frame has moved into its animating phase, plus whether any such
// entry existed. Heights and all other entries carry over untouched.
func advanceTransients(state State) (State, bool) {
	any := false
	for _, cs := range state.cards {
		if cs.Visibility.Transient() {
			any = true
			break
		}
	}
	if !any {
		return state, false
	}
	next := make(map[string]CardState, len(state.cards))
	for id, cs := range state.cards {
		switch cs.Visibility {
		case StartDown:
			cs.Visibility = AnimatingDown
		case StartUp:
			cs.Visibility = AnimatingUp
		}
		next[id] = cs
	}
	return State{cards: next}, true
}

// Subscriptions is the frame half of the animation contract. Hosts call it
// with the current State every time that State changes and batch the result
// into their command stream, alongside Sync:
//
//	case panelsMsg:
//		m.panels = msg.State
//		return m, tea.Batch(
//			accordion.Subscriptions(m.panels, toPanelsMsg),
//			m.acc.Sync(m.panels, m.accConfig()),
//		)
//
// When no card is waiting on a frame it returns nil. Otherwise it returns
// one one-shot frame command, shared by every waiting card, that delivers
// the derived State (each StartDown advanced to AnimatingDown, each StartUp
// to AnimatingUp) through toMsg. The derived State is computed now, at arm
// time, not when the frame fires.
func Subscriptions(state State, toMsg func(State) tea.Msg) tea.Cmd {
	derived, ok := advanceTransients(state)
	if !ok || toMsg == nil {
		return nil
	}
	msg := toMsg(derived)
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return msg
	})
}
