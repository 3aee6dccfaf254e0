package accordion

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// stateMsg lifts published States into a host message type for tests.
type stateMsg struct {
	state State
}

func liftState(s State) tea.Msg {
	return stateMsg{state: s}
}

// stateOf executes a command tree and returns the single published State it
// produces.
func stateOf(t *testing.T, cmd tea.Cmd) State {
	t.Helper()
	states := statesIn(t, collectMsgs(cmd))
	if len(states) != 1 {
		t.Fatalf("command published %d states, want 1", len(states))
	}
	return states[0]
}

// collectMsgs executes a command tree, flattening batches into the messages
// they produce.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, sub := range batch {
			out = append(out, collectMsgs(sub)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func statesIn(t *testing.T, msgs []tea.Msg) []State {
	t.Helper()
	var out []State
	for _, msg := range msgs {
		if sm, ok := msg.(stateMsg); ok {
			out = append(out, sm.state)
		}
	}
	return out
}

func TestSubscriptions_NilWhenNothingTransient(t *testing.T) {
	t.Parallel()

	if cmd := Subscriptions(InitialState(), liftState); cmd != nil {
		t.Fatal("empty state armed a frame")
	}

	settled := InitialState().
		Update("a", setCard(Shown, 10)).
		Update("b", setCard(AnimatingUp, 4)).
		Update("c", setCard(Hidden, 2))
	if cmd := Subscriptions(settled, liftState); cmd != nil {
		t.Fatal("settled state armed a frame")
	}
}

func TestSubscriptions_AdvancesAllTransientsInOneFrame(t *testing.T) {
	t.Parallel()

	s := InitialState().
		Update("opening", setCard(StartDown, 3)).
		Update("closing", setCard(StartUp, 7)).
		Update("resting", setCard(Shown, 2))

	cmd := Subscriptions(s, liftState)
	if cmd == nil {
		t.Fatal("transient state armed no frame")
	}

	derived := stateOf(t, cmd)

	if cs := derived.GetOrInit("opening"); cs.Visibility != AnimatingDown || cs.Height != 3 {
		t.Fatalf("opening = %+v, want AnimatingDown height 3", cs)
	}
	if cs := derived.GetOrInit("closing"); cs.Visibility != AnimatingUp || cs.Height != 7 {
		t.Fatalf("closing = %+v, want AnimatingUp height 7", cs)
	}
	if cs := derived.GetOrInit("resting"); cs != s.GetOrInit("resting") {
		t.Fatalf("resting entry changed: %+v", cs)
	}
}

func TestSubscriptions_DerivationCapturedAtArmTime(t *testing.T) {
	t.Parallel()

	s := InitialState().Update("a", setCard(StartDown, 5))
	cmd := Subscriptions(s, liftState)

	// A later change to the host's copy must not affect the armed frame.
	_ = s.Update("a", setCard(Shown, 99))

	derived := stateOf(t, cmd)
	if cs := derived.GetOrInit("a"); cs.Visibility != AnimatingDown || cs.Height != 5 {
		t.Fatalf("delivered entry = %+v, want AnimatingDown height 5", cs)
	}
}

func TestSubscriptions_NilToMsg(t *testing.T) {
	t.Parallel()

	s := InitialState().Update("a", setCard(StartDown, 5))
	if cmd := Subscriptions(s, nil); cmd != nil {
		t.Fatal("nil lift armed a frame")
	}
}
